package park

// RideTypeMiniGolf stores its hole count where other coasters store the
// inversion count
const RideTypeMiniGolf = 26

// Station is one live ride station. Entrance and exit are nil until
// placed.
type Station struct {
	Start          *XY   `yaml:"start"`
	Height         uint8 `yaml:"height"`
	Length         uint8 `yaml:"length"`
	Depart         uint8 `yaml:"depart"`
	TrainAtStation uint8 `yaml:"train_at_station"`
	Entrance       *XY   `yaml:"entrance"`
	Exit           *XY   `yaml:"exit"`
	LastPeepInQueue uint16 `yaml:"last_peep_in_queue"`
	SegmentLength  uint32 `yaml:"segment_length"`
	SegmentTime    uint16 `yaml:"segment_time"`
	QueueTime      uint8  `yaml:"queue_time"`
	QueueLength    uint16 `yaml:"queue_length"`
}

// VehicleColourEntry is one train's body and trim colours
type VehicleColourEntry struct {
	Body uint8 `yaml:"body"`
	Trim uint8 `yaml:"trim"`
}

// Measurement is a ride's recorded data series
type Measurement struct {
	Flags          uint8  `yaml:"flags"`
	LastUseTick    uint32 `yaml:"last_use_tick"`
	CurrentItem    uint16 `yaml:"current_item"`
	VehicleIndex   uint8  `yaml:"vehicle_index"`
	CurrentStation uint8  `yaml:"current_station"`
	Vertical       []int8  `yaml:"vertical,flow"`
	Lateral        []int8  `yaml:"lateral,flow"`
	Velocity       []uint8 `yaml:"velocity,flow"`
	Altitude       []uint8 `yaml:"altitude,flow"`
}

// NumItems returns the recorded sample count, bounded by the longest
// series
func (m *Measurement) NumItems() int {
	n := len(m.Velocity)
	if len(m.Altitude) > n {
		n = len(m.Altitude)
	}
	if len(m.Vertical) > n {
		n = len(m.Vertical)
	}
	if len(m.Lateral) > n {
		n = len(m.Lateral)
	}
	return n
}

// Ride is one live ride
type Ride struct {
	Index   int   `yaml:"index"`
	Type    uint8 `yaml:"type"`
	Subtype uint8 `yaml:"subtype"`
	Mode    uint8 `yaml:"mode"`
	Status  uint8 `yaml:"status"`

	Name          uint16 `yaml:"name"`
	NameArguments uint32 `yaml:"name_args"`
	OverallView   *XY    `yaml:"overall_view"`

	ColourSchemeType       uint8                `yaml:"colour_scheme_type"`
	VehicleColours         []VehicleColourEntry `yaml:"vehicle_colours"`
	VehicleColoursExtended []uint8              `yaml:"vehicle_colours_extended,flow"`

	Stations []Station `yaml:"stations"`
	Vehicles []uint16  `yaml:"vehicles,flow"`

	DepartFlags             uint8 `yaml:"depart_flags"`
	NumVehicles             uint8 `yaml:"num_vehicles"`
	NumCarsPerTrain         uint8 `yaml:"num_cars_per_train"`
	ProposedNumVehicles     uint8 `yaml:"proposed_num_vehicles"`
	ProposedNumCarsPerTrain uint8 `yaml:"proposed_num_cars_per_train"`
	MaxTrains               uint8 `yaml:"max_trains"`
	MinMaxCarsPerTrain      uint8 `yaml:"min_max_cars_per_train"`
	MinWaitingTime          uint8 `yaml:"min_waiting_time"`
	MaxWaitingTime          uint8 `yaml:"max_waiting_time"`
	OperationOption         uint8 `yaml:"operation_option"`

	BoatHireReturnDirection uint8 `yaml:"boat_hire_return_direction"`
	BoatHireReturnPosition  *XY   `yaml:"boat_hire_return_position"`

	SpecialTrackElements uint8 `yaml:"special_track_elements"`

	MaxSpeed                int32 `yaml:"max_speed"`
	AverageSpeed            int32 `yaml:"average_speed"`
	CurrentTestSegment      uint8 `yaml:"current_test_segment"`
	AverageSpeedTestTimeout uint8 `yaml:"average_speed_test_timeout"`

	MaxPositiveVerticalG int16  `yaml:"max_positive_vertical_g"`
	MaxNegativeVerticalG int16  `yaml:"max_negative_vertical_g"`
	MaxLateralG          int16  `yaml:"max_lateral_g"`
	PreviousVerticalG    int16  `yaml:"previous_vertical_g"`
	PreviousLateralG     int16  `yaml:"previous_lateral_g"`
	TestingFlags         uint32 `yaml:"testing_flags"`
	CurTestTrackLocation *XY    `yaml:"cur_test_track_location"`
	CurTestTrackZ        uint8  `yaml:"cur_test_track_z"`
	CurrentTestStation   uint8  `yaml:"current_test_station"`

	TurnCountDefault uint16 `yaml:"turn_count_default"`
	TurnCountBanked  uint16 `yaml:"turn_count_banked"`
	TurnCountSloped  uint16 `yaml:"turn_count_sloped"`

	Inversions       int `yaml:"inversions"`
	Holes            int `yaml:"holes"`
	ShelteredEighths int `yaml:"sheltered_eighths"`

	Drops                uint8 `yaml:"drops"`
	StartDropHeight      uint8 `yaml:"start_drop_height"`
	HighestDropHeight    uint8 `yaml:"highest_drop_height"`
	ShelteredLength      int32 `yaml:"sheltered_length"`
	Var11C               uint8 `yaml:"var_11c"`
	NumShelteredSections uint8 `yaml:"num_sheltered_sections"`

	CurNumCustomers     uint16   `yaml:"cur_num_customers"`
	NumCustomersTimeout uint16   `yaml:"num_customers_timeout"`
	NumCustomers        []uint16 `yaml:"num_customers,flow"`
	TotalCustomers      uint32   `yaml:"total_customers"`

	Price          uint16 `yaml:"price"`
	PriceSecondary uint16 `yaml:"price_secondary"`

	ChairliftBullwheelLocation []*XY   `yaml:"chairlift_bullwheel_location"`
	ChairliftBullwheelZ        []uint8 `yaml:"chairlift_bullwheel_z,flow"`
	ChairliftBullwheelRotation uint16  `yaml:"chairlift_bullwheel_rotation"`

	Excitement int16  `yaml:"excitement"`
	Intensity  int16  `yaml:"intensity"`
	Nausea     int16  `yaml:"nausea"`
	Value      uint16 `yaml:"value"`

	Satisfaction        uint8 `yaml:"satisfaction"`
	SatisfactionTimeOut uint8 `yaml:"satisfaction_time_out"`
	SatisfactionNext    uint8 `yaml:"satisfaction_next"`

	WindowInvalidateFlags uint16 `yaml:"window_invalidate_flags"`

	TotalProfit   int32 `yaml:"total_profit"`
	IncomePerHour int32 `yaml:"income_per_hour"`
	Profit        int32 `yaml:"profit"`

	Popularity        uint8 `yaml:"popularity"`
	PopularityTimeOut uint8 `yaml:"popularity_time_out"`
	PopularityNext    uint8 `yaml:"popularity_next"`
	NumRiders         uint8 `yaml:"num_riders"`

	MusicTuneID   uint8  `yaml:"music_tune_id"`
	Music         uint8  `yaml:"music"`
	MusicPosition uint32 `yaml:"music_position"`

	SlideInUse            uint8  `yaml:"slide_in_use"`
	SlidePeep             uint16 `yaml:"slide_peep"`
	SlidePeepTShirtColour uint8  `yaml:"slide_peep_tshirt_colour"`
	SpiralSlideProgress   uint8  `yaml:"spiral_slide_progress"`

	BuildDate  uint16 `yaml:"build_date"`
	UpkeepCost int16  `yaml:"upkeep_cost"`
	RaceWinner uint16 `yaml:"race_winner"`

	BreakdownReasonPending uint8  `yaml:"breakdown_reason_pending"`
	MechanicStatus         uint8  `yaml:"mechanic_status"`
	Mechanic               uint16 `yaml:"mechanic"`
	InspectionStation      uint8  `yaml:"inspection_station"`
	BrokenVehicle          uint8  `yaml:"broken_vehicle"`
	BrokenCar              uint8  `yaml:"broken_car"`
	BreakdownReason        uint8  `yaml:"breakdown_reason"`

	Reliability         uint16  `yaml:"reliability"`
	UnreliabilityFactor uint8   `yaml:"unreliability_factor"`
	Downtime            uint8   `yaml:"downtime"`
	InspectionInterval  uint8   `yaml:"inspection_interval"`
	LastInspection      uint8   `yaml:"last_inspection"`
	DowntimeHistory     []uint8 `yaml:"downtime_history,flow"`

	NoPrimaryItemsSold   uint32 `yaml:"no_primary_items_sold"`
	NoSecondaryItemsSold uint32 `yaml:"no_secondary_items_sold"`

	BreakdownSoundModifier   uint8 `yaml:"breakdown_sound_modifier"`
	NotFixedTimeout          uint8 `yaml:"not_fixed_timeout"`
	LastCrashType            uint8 `yaml:"last_crash_type"`
	ConnectedMessageThrottle uint8 `yaml:"connected_message_throttle"`

	TrackColourMain       []uint8 `yaml:"track_colour_main,flow"`
	TrackColourAdditional []uint8 `yaml:"track_colour_additional,flow"`
	TrackColourSupports   []uint8 `yaml:"track_colour_supports,flow"`

	EntranceStyle uint8 `yaml:"entrance_style"`

	VehicleChangeTimeout uint16 `yaml:"vehicle_change_timeout"`
	NumBlockBrakes       uint8  `yaml:"num_block_brakes"`
	LiftHillSpeed        uint8  `yaml:"lift_hill_speed"`
	GuestsFavourite      uint16 `yaml:"guests_favourite"`
	LifecycleFlags       uint32 `yaml:"lifecycle_flags"`

	TotalAirTime uint16 `yaml:"total_air_time"`
	NumCircuits  uint8  `yaml:"num_circuits"`

	CableLiftX int16  `yaml:"cable_lift_x"`
	CableLiftY int16  `yaml:"cable_lift_y"`
	CableLiftZ uint8  `yaml:"cable_lift_z"`
	CableLift  uint16 `yaml:"cable_lift"`

	Measurement *Measurement `yaml:"measurement"`
}
