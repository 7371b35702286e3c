package park

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SpriteCommon holds the location, bounds and list linkage shared by
// every sprite
type SpriteCommon struct {
	NextInQuadrant       uint16 `yaml:"next_in_quadrant"`
	Next                 uint16 `yaml:"next"`
	Previous             uint16 `yaml:"previous"`
	LinkedListTypeOffset uint8  `yaml:"linked_list_type_offset"`
	SpriteHeightNegative uint8  `yaml:"sprite_height_negative"`
	SpriteIndex          uint16 `yaml:"sprite_index"`
	Flags                uint16 `yaml:"flags"`
	X                    int16  `yaml:"x"`
	Y                    int16  `yaml:"y"`
	Z                    int16  `yaml:"z"`
	SpriteWidth          uint8  `yaml:"sprite_width"`
	SpriteHeightPositive uint8  `yaml:"sprite_height_positive"`
	SpriteLeft           int16  `yaml:"sprite_left"`
	SpriteTop            int16  `yaml:"sprite_top"`
	SpriteRight          int16  `yaml:"sprite_right"`
	SpriteBottom         int16  `yaml:"sprite_bottom"`
	SpriteDirection      uint8  `yaml:"sprite_direction"`
}

// Sprite is any live entity in the sprite pool
type Sprite interface {
	Common() *SpriteCommon
}

// NullSprite is an unused pool slot that still carries list linkage
type NullSprite struct {
	SpriteCommon `yaml:",inline"`
}

func (s *NullSprite) Common() *SpriteCommon { return &s.SpriteCommon }

// Vehicle is one car of a train
type Vehicle struct {
	SpriteCommon `yaml:",inline"`

	VehicleSpriteType uint8 `yaml:"vehicle_sprite_type"`
	BankRotation      uint8 `yaml:"bank_rotation"`
	RemainingDistance int32 `yaml:"remaining_distance"`
	Velocity          int32 `yaml:"velocity"`
	Acceleration      int32 `yaml:"acceleration"`

	RideIndex   uint8 `yaml:"ride_index"`
	VehicleType uint8 `yaml:"vehicle_type"`
	RideSubtype uint8 `yaml:"ride_subtype"`

	ColoursBody     uint8 `yaml:"colours_body"`
	ColoursTrim     uint8 `yaml:"colours_trim"`
	ColoursExtended uint8 `yaml:"colours_extended"`

	TrackProgress  uint16 `yaml:"track_progress"`
	TrackDirection uint8  `yaml:"track_direction"`
	TrackType      uint8  `yaml:"track_type"`
	TrackX         int16  `yaml:"track_x"`
	TrackY         int16  `yaml:"track_y"`
	TrackZ         int16  `yaml:"track_z"`

	NextVehicleOnTrain uint16 `yaml:"next_vehicle_on_train"`
	PrevVehicleOnRide  uint16 `yaml:"prev_vehicle_on_ride"`
	NextVehicleOnRide  uint16 `yaml:"next_vehicle_on_ride"`

	Var44       uint16 `yaml:"var_44"`
	Mass        uint16 `yaml:"mass"`
	UpdateFlags uint16 `yaml:"update_flags"`
	SwingSprite uint8  `yaml:"swing_sprite"`

	CurrentStation uint8 `yaml:"current_station"`
	CurrentTime    int16 `yaml:"current_time"`

	CrashX int16 `yaml:"crash_x"`
	CrashZ int16 `yaml:"crash_z"`

	Status   uint8 `yaml:"status"`
	SubState uint8 `yaml:"sub_state"`

	Peep              []uint16 `yaml:"peep,flow"`
	PeepTshirtColours []uint8  `yaml:"peep_tshirt_colours,flow"`

	NumSeats           uint8 `yaml:"num_seats"`
	NumPeeps           uint8 `yaml:"num_peeps"`
	NextFreeSeat       uint8 `yaml:"next_free_seat"`
	RestraintsPosition uint8 `yaml:"restraints_position"`

	Sound2Flags       uint16 `yaml:"sound2_flags"`
	SpinSprite        uint8  `yaml:"spin_sprite"`
	Sound1ID          uint8  `yaml:"sound1_id"`
	Sound1Volume      uint8  `yaml:"sound1_volume"`
	Sound2ID          uint8  `yaml:"sound2_id"`
	Sound2Volume      uint8  `yaml:"sound2_volume"`
	SoundVectorFactor uint8  `yaml:"sound_vector_factor"`
	ScreamSoundID     uint8  `yaml:"scream_sound_id"`

	TimeWaiting               uint16 `yaml:"time_waiting"`
	Speed                     uint8  `yaml:"speed"`
	PoweredAcceleration       uint8  `yaml:"powered_acceleration"`
	DodgemsCollisionDirection uint8  `yaml:"dodgems_collision_direction"`
	AnimationFrame            uint8  `yaml:"animation_frame"`

	VarC8 uint16 `yaml:"var_c8"`
	VarCA uint16 `yaml:"var_ca"`
	VarCD uint8  `yaml:"var_cd"`
	VarCE uint8  `yaml:"var_ce"`
	VarCF uint8  `yaml:"var_cf"`
	VarD3 uint8  `yaml:"var_d3"`

	LostTimeOut           uint16 `yaml:"lost_time_out"`
	VerticalDropCountdown int8   `yaml:"vertical_drop_countdown"`

	MiniGolfCurrentAnimation uint8 `yaml:"mini_golf_current_animation"`
	MiniGolfFlags            uint8 `yaml:"mini_golf_flags"`

	SeatRotation       uint8 `yaml:"seat_rotation"`
	TargetSeatRotation uint8 `yaml:"target_seat_rotation"`
}

func (s *Vehicle) Common() *SpriteCommon { return &s.SpriteCommon }

// Thought is one queued guest thought
type Thought struct {
	Type         uint8 `yaml:"type"`
	Item         uint8 `yaml:"item"`
	Freshness    uint8 `yaml:"freshness"`
	FreshTimeout uint8 `yaml:"fresh_timeout"`
}

// PathfindEntry is one remembered pathfinding junction
type PathfindEntry struct {
	X         uint8 `yaml:"x"`
	Y         uint8 `yaml:"y"`
	Z         uint8 `yaml:"z"`
	Direction uint8 `yaml:"direction"`
}

// Peep is one guest or staff member
type Peep struct {
	SpriteCommon `yaml:",inline"`

	ActionSpriteType uint8 `yaml:"action_sprite_type"`

	NameStringIdx uint16 `yaml:"name_string_idx"`

	NextX     uint16 `yaml:"next_x"`
	NextY     uint16 `yaml:"next_y"`
	NextZ     uint8  `yaml:"next_z"`
	NextFlags uint8  `yaml:"next_flags"`

	OutsideOfPark uint8 `yaml:"outside_of_park"`
	State         uint8 `yaml:"state"`
	SubState      uint8 `yaml:"sub_state"`
	SpriteType    uint8 `yaml:"sprite_type"`
	PeepType      uint8 `yaml:"peep_type"`
	NoOfRides     uint8 `yaml:"no_of_rides"`

	TshirtColour   uint8 `yaml:"tshirt_colour"`
	TrousersColour uint8 `yaml:"trousers_colour"`

	DestinationX         uint16 `yaml:"destination_x"`
	DestinationY         uint16 `yaml:"destination_y"`
	DestinationTolerance uint8  `yaml:"destination_tolerance"`
	Var37                uint8  `yaml:"var_37"`

	Energy          uint8 `yaml:"energy"`
	EnergyTarget    uint8 `yaml:"energy_target"`
	Happiness       uint8 `yaml:"happiness"`
	HappinessTarget uint8 `yaml:"happiness_target"`
	Nausea          uint8 `yaml:"nausea"`
	NauseaTarget    uint8 `yaml:"nausea_target"`
	Hunger          uint8 `yaml:"hunger"`
	Thirst          uint8 `yaml:"thirst"`
	Toilet          uint8 `yaml:"toilet"`
	Mass            uint8 `yaml:"mass"`
	TimeToConsume   uint8 `yaml:"time_to_consume"`
	Intensity       uint8 `yaml:"intensity"`
	NauseaTolerance uint8 `yaml:"nausea_tolerance"`

	WindowInvalidateFlags uint8 `yaml:"window_invalidate_flags"`

	PaidOnDrink     int16   `yaml:"paid_on_drink"`
	RideTypesBeenOn []uint8 `yaml:"ride_types_been_on,flow"`

	ItemExtraFlags    uint32 `yaml:"item_extra_flags"`
	ItemStandardFlags uint32 `yaml:"item_standard_flags"`

	Photo1RideRef uint8 `yaml:"photo1_ride_ref"`
	Photo2RideRef uint8 `yaml:"photo2_ride_ref"`
	Photo3RideRef uint8 `yaml:"photo3_ride_ref"`
	Photo4RideRef uint8 `yaml:"photo4_ride_ref"`

	CurrentRide        uint8 `yaml:"current_ride"`
	CurrentRideStation uint8 `yaml:"current_ride_station"`
	CurrentTrain       uint8 `yaml:"current_train"`
	TimeToSitdown      uint8 `yaml:"time_to_sitdown"`

	SpecialSprite           uint8 `yaml:"special_sprite"`
	NextActionSpriteType    uint8 `yaml:"next_action_sprite_type"`
	ActionSpriteImageOffset uint8 `yaml:"action_sprite_image_offset"`
	Action                  uint8 `yaml:"action"`
	ActionFrame             uint8 `yaml:"action_frame"`
	StepProgress            uint8 `yaml:"step_progress"`

	NextInQueue          uint16 `yaml:"next_in_queue"`
	Direction            uint8  `yaml:"direction"`
	InteractionRideIndex uint8  `yaml:"interaction_ride_index"`
	TimeInQueue          uint16 `yaml:"time_in_queue"`

	RidesBeenOn []uint8 `yaml:"rides_been_on,flow"`

	ID           uint32 `yaml:"id"`
	CashInPocket int32  `yaml:"cash_in_pocket"`
	CashSpent    int32  `yaml:"cash_spent"`
	TimeInPark   int32  `yaml:"time_in_park"`

	RejoinQueueTimeout  uint8  `yaml:"rejoin_queue_timeout"`
	PreviousRide        uint8  `yaml:"previous_ride"`
	PreviousRideTimeOut uint16 `yaml:"previous_ride_time_out"`

	Thoughts []Thought `yaml:"thoughts"`

	PathCheckOptimisation uint8 `yaml:"path_check_optimisation"`
	GuestHeadingToRideID  uint8 `yaml:"guest_heading_to_ride_id"`
	PeepIsLostCountdown   uint8 `yaml:"peep_is_lost_countdown"`

	PeepFlags       uint32          `yaml:"peep_flags"`
	PathfindGoal    PathfindEntry   `yaml:"pathfind_goal"`
	PathfindHistory []PathfindEntry `yaml:"pathfind_history"`

	NoActionFrameNum uint8 `yaml:"no_action_frame_num"`
	LitterCount      uint8 `yaml:"litter_count"`
	TimeOnRide       uint8 `yaml:"time_on_ride"`
	DisgustingCount  uint8 `yaml:"disgusting_count"`

	PaidToEnter     int16 `yaml:"paid_to_enter"`
	PaidOnRides     int16 `yaml:"paid_on_rides"`
	PaidOnFood      int16 `yaml:"paid_on_food"`
	PaidOnSouvenirs int16 `yaml:"paid_on_souvenirs"`

	NoOfFood      uint8 `yaml:"no_of_food"`
	NoOfDrinks    uint8 `yaml:"no_of_drinks"`
	NoOfSouvenirs uint8 `yaml:"no_of_souvenirs"`

	VandalismSeen              uint8 `yaml:"vandalism_seen"`
	VoucherType                uint8 `yaml:"voucher_type"`
	VoucherArguments           uint8 `yaml:"voucher_arguments"`
	SurroundingsThoughtTimeout uint8 `yaml:"surroundings_thought_timeout"`
	Angriness                  uint8 `yaml:"angriness"`
	TimeLost                   uint8 `yaml:"time_lost"`
	DaysInQueue                uint8 `yaml:"days_in_queue"`

	BalloonColour  uint8 `yaml:"balloon_colour"`
	UmbrellaColour uint8 `yaml:"umbrella_colour"`
	HatColour      uint8 `yaml:"hat_colour"`

	FavouriteRide       uint8 `yaml:"favourite_ride"`
	FavouriteRideRating uint8 `yaml:"favourite_ride_rating"`
}

func (s *Peep) Common() *SpriteCommon { return &s.SpriteCommon }

// Litter is one piece of litter or vomit on a path
type Litter struct {
	SpriteCommon `yaml:",inline"`
	LitterType   uint8  `yaml:"litter_type"`
	CreationTick uint32 `yaml:"creation_tick"`
}

func (s *Litter) Common() *SpriteCommon { return &s.SpriteCommon }

// SteamParticle is steam from a ride chimney or piston
type SteamParticle struct {
	SpriteCommon `yaml:",inline"`
	TimeToMove   uint16 `yaml:"time_to_move"`
	Frame        uint16 `yaml:"frame"`
}

func (s *SteamParticle) Common() *SpriteCommon { return &s.SpriteCommon }

// MoneyEffect is the floating amount shown when cash changes hands
type MoneyEffect struct {
	SpriteCommon `yaml:",inline"`
	MoveDelay    uint16 `yaml:"move_delay"`
	NumMovements uint8  `yaml:"num_movements"`
	Vertical     uint8  `yaml:"vertical"`
	Value        int32  `yaml:"value"`
	OffsetX      int16  `yaml:"offset_x"`
	Wiggle       uint16 `yaml:"wiggle"`
}

func (s *MoneyEffect) Common() *SpriteCommon { return &s.SpriteCommon }

// CrashedVehicleParticle is debris from a vehicle crash
type CrashedVehicleParticle struct {
	SpriteCommon      `yaml:",inline"`
	Frame             uint16  `yaml:"frame"`
	TimeToLive        uint16  `yaml:"time_to_live"`
	Colour            []uint8 `yaml:"colour,flow"`
	CrashedSpriteBase uint16  `yaml:"crashed_sprite_base"`
	VelocityX         int16   `yaml:"velocity_x"`
	VelocityY         int16   `yaml:"velocity_y"`
	VelocityZ         int16   `yaml:"velocity_z"`
	AccelerationX     int32   `yaml:"acceleration_x"`
	AccelerationY     int32   `yaml:"acceleration_y"`
	AccelerationZ     int32   `yaml:"acceleration_z"`
}

func (s *CrashedVehicleParticle) Common() *SpriteCommon { return &s.SpriteCommon }

// ExplosionCloud is the cloud shown when a vehicle crashes
type ExplosionCloud struct {
	SpriteCommon `yaml:",inline"`
	Frame        uint16 `yaml:"frame"`
}

func (s *ExplosionCloud) Common() *SpriteCommon { return &s.SpriteCommon }

// ExplosionFlare is the flash shown when a vehicle crashes
type ExplosionFlare struct {
	SpriteCommon `yaml:",inline"`
	Frame        uint16 `yaml:"frame"`
}

func (s *ExplosionFlare) Common() *SpriteCommon { return &s.SpriteCommon }

// CrashSplash is the splash shown when a vehicle crashes into water
type CrashSplash struct {
	SpriteCommon `yaml:",inline"`
	Frame        uint16 `yaml:"frame"`
}

func (s *CrashSplash) Common() *SpriteCommon { return &s.SpriteCommon }

// JumpingFountain is a water or snow fountain jet
type JumpingFountain struct {
	SpriteCommon  `yaml:",inline"`
	Snow          bool   `yaml:"snow"`
	NumTicksAlive uint8  `yaml:"num_ticks_alive"`
	Frame         uint16 `yaml:"frame"`
	FountainFlags uint8  `yaml:"fountain_flags"`
	TargetX       int16  `yaml:"target_x"`
	TargetY       int16  `yaml:"target_y"`
	Iteration     uint8  `yaml:"iteration"`
}

func (s *JumpingFountain) Common() *SpriteCommon { return &s.SpriteCommon }

// Balloon is a released balloon
type Balloon struct {
	SpriteCommon `yaml:",inline"`
	Popped       uint8  `yaml:"popped"`
	TimeToMove   uint8  `yaml:"time_to_move"`
	Frame        uint16 `yaml:"frame"`
	Colour       uint8  `yaml:"colour"`
}

func (s *Balloon) Common() *SpriteCommon { return &s.SpriteCommon }

// Duck is a duck swimming or flying over water
type Duck struct {
	SpriteCommon `yaml:",inline"`
	Frame        uint16 `yaml:"frame"`
	TargetX      int16  `yaml:"target_x"`
	TargetY      int16  `yaml:"target_y"`
	State        uint8  `yaml:"state"`
}

func (s *Duck) Common() *SpriteCommon { return &s.SpriteCommon }

// UnknownMisc preserves a misc sprite whose sub-type this build does
// not understand. Only its header survives a save.
type UnknownMisc struct {
	SpriteCommon `yaml:",inline"`
	Kind         uint8 `yaml:"misc_kind"`
}

func (s *UnknownMisc) Common() *SpriteCommon { return &s.SpriteCommon }

// SpriteSlot binds a sprite to its pool index. The YAML form carries a
// kind discriminator so the list can hold mixed sprite types.
type SpriteSlot struct {
	Index  uint16
	Sprite Sprite
}

// spriteKinds maps YAML discriminators to empty sprites
var spriteKinds = map[string]func() Sprite{
	"null":                     func() Sprite { return &NullSprite{} },
	"vehicle":                  func() Sprite { return &Vehicle{} },
	"peep":                     func() Sprite { return &Peep{} },
	"litter":                   func() Sprite { return &Litter{} },
	"steam_particle":           func() Sprite { return &SteamParticle{} },
	"money_effect":             func() Sprite { return &MoneyEffect{} },
	"crashed_vehicle_particle": func() Sprite { return &CrashedVehicleParticle{} },
	"explosion_cloud":          func() Sprite { return &ExplosionCloud{} },
	"explosion_flare":          func() Sprite { return &ExplosionFlare{} },
	"crash_splash":             func() Sprite { return &CrashSplash{} },
	"jumping_fountain":         func() Sprite { return &JumpingFountain{} },
	"balloon":                  func() Sprite { return &Balloon{} },
	"duck":                     func() Sprite { return &Duck{} },
	"unknown_misc":             func() Sprite { return &UnknownMisc{} },
}

// UnmarshalYAML decodes a sprite slot from its kind discriminator
func (s *SpriteSlot) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Index uint16 `yaml:"index"`
		Kind  string `yaml:"kind"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}
	newSprite, ok := spriteKinds[head.Kind]
	if !ok {
		return fmt.Errorf("unknown sprite kind %q", head.Kind)
	}
	sprite := newSprite()
	if err := node.Decode(sprite); err != nil {
		return err
	}
	s.Index = head.Index
	s.Sprite = sprite
	return nil
}
