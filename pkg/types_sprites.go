package pkg

// Packed sprite records. Each live sprite is serialized into a zeroed
// 256 byte pool slot, so records only define the meaningful prefix.
// Pad fields reproduce the gaps of the legacy in-memory layout so every
// field lands at the offset legacy readers expect.

// SpriteBase is the 31 byte header shared by every sprite record
type SpriteBase struct {
	SpriteIdentifier     uint8
	Type                 uint8
	NextInQuadrant       uint16
	Next                 uint16
	Previous             uint16
	LinkedListTypeOffset uint8
	SpriteHeightNegative uint8
	SpriteIndex          uint16
	Flags                uint16
	X                    int16
	Y                    int16
	Z                    int16
	SpriteWidth          uint8
	SpriteHeightPositive uint8
	SpriteLeft           int16
	SpriteTop            int16
	SpriteRight          int16
	SpriteBottom         int16
	SpriteDirection      uint8
}

// SpriteVehicle is the packed vehicle record
type SpriteVehicle struct {
	Base              SpriteBase
	VehicleSpriteType uint8
	BankRotation      uint8
	Pad21             [3]uint8
	RemainingDistance int32
	Velocity          int32
	Acceleration      int32
	RideIndex         uint8
	VehicleType       uint8
	Colours           VehicleColour
	TrackProgress     uint16
	TrackDirection    uint8
	TrackType         uint8
	TrackX            int16
	TrackY            int16
	TrackZ            int16
	NextVehicleOnTrain uint16
	PrevVehicleOnRide  uint16
	NextVehicleOnRide  uint16
	Var44             uint16
	Mass              uint16
	UpdateFlags       uint16
	SwingSprite       uint8
	CurrentStation    uint8
	CurrentTime       int16
	CrashZ            int16
	Status            uint8
	SubState          uint8
	Peep              [32]uint16
	PeepTshirtColours [32]uint8
	NumSeats          uint8
	NumPeeps          uint8
	NextFreeSeat      uint8
	RestraintsPosition uint8
	CrashX            int16
	Sound2Flags       uint16
	SpinSprite        uint8
	Sound1ID          uint8
	Sound1Volume      uint8
	Sound2ID          uint8
	Sound2Volume      uint8
	SoundVectorFactor uint8
	TimeWaiting       uint16
	Speed             uint8
	PoweredAcceleration uint8
	DodgemsCollisionDirection uint8
	AnimationFrame    uint8
	PadC6             [2]uint8
	VarC8             uint16
	VarCA             uint16
	ScreamSoundID     uint8
	VarCD             uint8
	VarCE             uint8
	VarCF             uint8
	LostTimeOut       uint16
	VerticalDropCountdown int8
	VarD3             uint8
	MiniGolfCurrentAnimation uint8
	MiniGolfFlags     uint8
	RideSubtype       uint8
	ColoursExtended   uint8
	SeatRotation      uint8
	TargetSeatRotation uint8
}

// PeepThought is one queued guest thought
type PeepThought struct {
	Type         uint8
	Item         uint8
	Freshness    uint8
	FreshTimeout uint8
}

// PathfindHistoryEntry is one remembered pathfinding junction
type PathfindHistoryEntry struct {
	X         uint8
	Y         uint8
	Z         uint8
	Direction uint8
}

// SpritePeep is the packed guest or staff record
type SpritePeep struct {
	Base                  SpriteBase
	Pad1F                 [3]uint8
	NameStringIdx         uint16
	NextX                 uint16
	NextY                 uint16
	NextZ                 uint8
	NextFlags             uint8
	OutsideOfPark         uint8
	State                 uint8
	SubState              uint8
	SpriteType            uint8
	PeepType              uint8
	NoOfRides             uint8
	TshirtColour          uint8
	TrousersColour        uint8
	DestinationX          uint16
	DestinationY          uint16
	DestinationTolerance  uint8
	Var37                 uint8
	Energy                uint8
	EnergyTarget          uint8
	Happiness             uint8
	HappinessTarget       uint8
	Nausea                uint8
	NauseaTarget          uint8
	Hunger                uint8
	Thirst                uint8
	Toilet                uint8
	Mass                  uint8
	TimeToConsume         uint8
	Intensity             uint8
	NauseaTolerance       uint8
	WindowInvalidateFlags uint8
	PaidOnDrink           int16
	RideTypesBeenOn       [16]uint8
	ItemExtraFlags        uint32
	Photo2RideRef         uint8
	Photo3RideRef         uint8
	Photo4RideRef         uint8
	Pad5F                 [9]uint8
	CurrentRide           uint8
	CurrentRideStation    uint8
	CurrentTrain          uint8
	TimeToSitdown         uint8
	SpecialSprite         uint8
	ActionSpriteType      uint8
	NextActionSpriteType  uint8
	ActionSpriteImageOffset uint8
	Action                uint8
	ActionFrame           uint8
	StepProgress          uint8
	Pad73                 uint8
	NextInQueue           uint16
	Direction             uint8
	InteractionRideIndex  uint8
	TimeInQueue           uint16
	RidesBeenOn           [32]uint8
	ID                    uint32
	CashInPocket          int32
	CashSpent             int32
	TimeInPark            int32
	RejoinQueueTimeout    uint8
	PreviousRide          uint8
	PreviousRideTimeOut   uint16
	Thoughts              [5]PeepThought
	PathCheckOptimisation uint8
	GuestHeadingToRideID  uint8
	PeepIsLostCountdown   uint8
	Photo1RideRef         uint8
	PeepFlags             uint32
	PathfindGoal          PathfindHistoryEntry
	PathfindHistory       [4]PathfindHistoryEntry
	NoActionFrameNum      uint8
	LitterCount           uint8
	TimeOnRide            uint8
	DisgustingCount       uint8
	PaidToEnter           int16
	PaidOnRides           int16
	PaidOnFood            int16
	PaidOnSouvenirs       int16
	NoOfFood              uint8
	NoOfDrinks            uint8
	NoOfSouvenirs         uint8
	VandalismSeen         uint8
	VoucherType           uint8
	VoucherArguments      uint8
	SurroundingsThoughtTimeout uint8
	Angriness             uint8
	TimeLost              uint8
	DaysInQueue           uint8
	BalloonColour         uint8
	UmbrellaColour        uint8
	HatColour             uint8
	FavouriteRide         uint8
	FavouriteRideRating   uint8
	PadF9                 [3]uint8
	ItemStandardFlags     uint32
}

// SpriteLitter is the packed litter record
type SpriteLitter struct {
	Base         SpriteBase
	Pad1F        [5]uint8
	CreationTick uint32
}

// SpriteSteamParticle is ride lift and station steam
type SpriteSteamParticle struct {
	Base       SpriteBase
	Pad1F      [5]uint8
	TimeToMove uint16
	Frame      uint16
}

// SpriteMoneyEffect is the floating cash amount shown on transactions
type SpriteMoneyEffect struct {
	Base         SpriteBase
	Pad1F        [5]uint8
	MoveDelay    uint16
	NumMovements uint8
	Vertical     uint8
	Value        int32
	Pad2C        [24]uint8
	OffsetX      int16
	Wiggle       uint16
}

// SpriteCrashedVehicleParticle is debris from a vehicle crash
type SpriteCrashedVehicleParticle struct {
	Base              SpriteBase
	Pad1F             [5]uint8
	Frame             uint16
	Pad26             [2]uint8
	TimeToLive        uint16
	Pad2A             [2]uint8
	Colour            [2]uint8
	CrashedSpriteBase uint16
	VelocityX         int16
	VelocityY         int16
	VelocityZ         int16
	Pad36             [2]uint8
	AccelerationX     int32
	AccelerationY     int32
	AccelerationZ     int32
}

// SpriteParticle covers explosion clouds, flares and crash splashes,
// which only animate a frame counter
type SpriteParticle struct {
	Base  SpriteBase
	Pad1F [7]uint8
	Frame uint16
}

// SpriteJumpingFountain is a water or snow fountain jet
type SpriteJumpingFountain struct {
	Base          SpriteBase
	Pad1F         [7]uint8
	NumTicksAlive uint8
	Frame         uint16
	Pad29         [6]uint8
	FountainFlags uint8
	TargetX       int16
	TargetY       int16
	Pad34         [18]uint8
	Iteration     uint16
}

// SpriteBalloon is a released balloon
type SpriteBalloon struct {
	Base       SpriteBase
	Pad1F      [5]uint8
	Popped     uint8
	TimeToMove uint8
	Frame      uint16
	Pad28      [4]uint8
	Colour     uint8
}

// SpriteDuck is a duck on water
type SpriteDuck struct {
	Base    SpriteBase
	Pad1F   [7]uint8
	Frame   uint16
	Pad28   [8]uint8
	TargetX int16
	TargetY int16
	Pad34   [20]uint8
	State   uint8
}
