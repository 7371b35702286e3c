package pkg

// On-disk structures of the classic save format. Every struct in this
// file is written with binary.Write in little endian order, so field
// widths and padding must match the original layout byte for byte.

// S6Header is the rotate-encoded first chunk of every save
type S6Header struct {
	Type             uint8
	ClassicFlag      uint8
	NumPackedObjects uint16
	Version          uint32
	MagicNumber      uint32
	Pad0C            [20]uint8
}

// ObjectEntry identifies a loaded object by flags, 8 byte name and
// checksum. Empty slots are written as 0xFF fill.
type ObjectEntry struct {
	Flags    uint32
	Name     [8]uint8
	Checksum uint32
}

// S6Info is the scenario information chunk
type S6Info struct {
	EditorStep    uint8
	Category      uint8
	ObjectiveType uint8
	ObjectiveArg1 uint8
	ObjectiveArg2 int32
	ObjectiveArg3 int16
	Pad00A        [62]uint8
	Name          [64]uint8
	Details       [256]uint8
	Entry         ObjectEntry
	Pad0198       [32355]uint8
	SourceGame    uint8
	SourceIndex   int16
	Pad7FFE       [2]uint8
}

// DateRand is the elapsed time and RNG state chunk
type DateRand struct {
	ElapsedMonths uint16
	CurrentDay    uint16
	ScenarioTicks uint32
	SrandSeed0    uint32
	SrandSeed1    uint32
}

// TileElement is one 8 byte map element
type TileElement struct {
	Type            uint8
	Flags           uint8
	BaseHeight      uint8
	ClearanceHeight uint8
	Properties      [4]uint8
}

// Tile element type values (bits 2..5 of the type byte)
const (
	TileElementTypeSurface      = 0 << 2
	TileElementTypePath         = 1 << 2
	TileElementTypeTrack        = 2 << 2
	TileElementTypeSmallScenery = 3 << 2
	TileElementTypeEntrance     = 4 << 2
	TileElementTypeWall         = 5 << 2
	TileElementTypeLargeScenery = 6 << 2
	TileElementTypeBanner       = 7 << 2
	TileElementTypeMask         = 0x3C
)

// Tile element flag bits
const (
	TileElementFlagGhost      = 0x10
	TileElementFlagLastOfTile = 0x80
)

// XY8 is a packed tile coordinate. Both bytes 0xFF mean unset.
type XY8 struct {
	X uint8
	Y uint8
}

// XY8Undefined returns the unset coordinate sentinel
func XY8Undefined() XY8 {
	return XY8{X: 0xFF, Y: 0xFF}
}

// VehicleColour is a body/trim colour pair
type VehicleColour struct {
	BodyColour uint8
	TrimColour uint8
}

// RatingTuple holds fixed point ride rating values
type RatingTuple struct {
	Excitement int16
	Intensity  int16
	Nausea     int16
}

// Ride is the 608 byte packed ride record
type Ride struct {
	Type             uint8
	Subtype          uint8
	Pad002           [2]uint8
	Mode             uint8
	ColourSchemeType uint8
	VehicleColours   [MaxVehiclesPerRide]VehicleColour
	Pad046           [2]uint8
	Status           uint8
	Name             uint16
	NameArguments    uint32
	OverallView      XY8

	StationStarts  [MaxStationsPerRide]XY8
	StationHeights [MaxStationsPerRide]uint8
	StationLength  [MaxStationsPerRide]uint8
	StationDepart  [MaxStationsPerRide]uint8
	TrainAtStation [MaxStationsPerRide]uint8
	Entrances      [MaxStationsPerRide]XY8
	Exits          [MaxStationsPerRide]XY8
	LastPeepInQueue [MaxStationsPerRide]uint16
	Length          [MaxStationsPerRide]uint32
	Time            [MaxStationsPerRide]uint16
	QueueTime       [MaxStationsPerRide]uint8
	QueueLength     [MaxStationsPerRide]uint16

	Vehicles [MaxVehiclesPerRide]uint16

	DepartFlags             uint8
	NumStations             uint8
	NumVehicles             uint8
	NumCarsPerTrain         uint8
	ProposedNumVehicles     uint8
	ProposedNumCarsPerTrain uint8
	MaxTrains               uint8
	MinMaxCarsPerTrain      uint8
	MinWaitingTime          uint8
	MaxWaitingTime          uint8
	OperationOption         uint8

	BoatHireReturnDirection uint8
	BoatHireReturnPosition  XY8

	SpecialTrackElements uint8
	Pad0D6               [2]uint8

	MaxSpeed                int32
	AverageSpeed            int32
	CurrentTestSegment      uint8
	AverageSpeedTestTimeout uint8
	Pad0E2                  [2]uint8

	MaxPositiveVerticalG int16
	MaxNegativeVerticalG int16
	MaxLateralG          int16
	PreviousVerticalG    int16
	PreviousLateralG     int16
	Pad106               [2]uint8
	TestingFlags         uint32
	CurTestTrackLocation XY8
	TurnCountDefault     uint16
	TurnCountBanked      uint16
	TurnCountSloped      uint16

	// Inversion count in the low 5 bits, sheltered eighths in the top 3
	Inversions        uint8
	Drops             uint8
	StartDropHeight   uint8
	HighestDropHeight uint8
	ShelteredLength   int32
	Var11C            uint8
	NumShelteredSections uint8
	CurTestTrackZ     uint8

	CurNumCustomers     uint16
	NumCustomersTimeout uint16
	NumCustomers        [10]uint16
	Price               uint16

	ChairliftBullwheelLocation [2]XY8
	ChairliftBullwheelZ        [2]uint8

	Ratings RatingTuple
	Value   uint16

	ChairliftBullwheelRotation uint16

	Satisfaction        uint8
	SatisfactionTimeOut uint8
	SatisfactionNext    uint8

	WindowInvalidateFlags uint16
	Pad14E                [2]uint8

	TotalCustomers uint32
	TotalProfit    int32

	Popularity        uint8
	PopularityTimeOut uint8
	PopularityNext    uint8
	NumRiders         uint8
	MusicTuneID       uint8
	SlideInUse        uint8
	SlidePeep         uint16
	Pad160            [14]uint8
	SlidePeepTShirtColour uint8
	Pad16F            [7]uint8
	SpiralSlideProgress uint8
	Pad177            [9]uint8

	BuildDate  uint16
	UpkeepCost int16
	RaceWinner uint16
	Pad186     [2]uint8

	MusicPosition uint32

	BreakdownReasonPending uint8
	MechanicStatus         uint8
	Mechanic               uint16
	InspectionStation      uint8
	BrokenVehicle          uint8
	BrokenCar              uint8
	BreakdownReason        uint8

	PriceSecondary uint16

	Reliability         uint16
	UnreliabilityFactor uint8
	Downtime            uint8
	InspectionInterval  uint8
	LastInspection      uint8
	DowntimeHistory     [8]uint8

	NoPrimaryItemsSold   uint32
	NoSecondaryItemsSold uint32

	BreakdownSoundModifier   uint8
	NotFixedTimeout          uint8
	LastCrashType            uint8
	ConnectedMessageThrottle uint8

	IncomePerHour int32
	Profit        int32

	TrackColourMain       [4]uint8
	TrackColourAdditional [4]uint8
	TrackColourSupports   [4]uint8

	Music         uint8
	EntranceStyle uint8

	VehicleChangeTimeout uint16
	NumBlockBrakes       uint8
	LiftHillSpeed        uint8
	GuestsFavourite      uint16
	LifecycleFlags       uint32

	VehicleColoursExtended [MaxVehiclesPerRide]uint8

	TotalAirTime       uint16
	CurrentTestStation uint8
	NumCircuits        uint8

	CableLiftX int16
	CableLiftY int16
	CableLiftZ uint8
	Pad1FD     [1]uint8
	CableLift  uint16

	MeasurementIndex uint8
	Pad208           [93]uint8
}

// RideMeasurement is one 19212 byte recorded data series slot
type RideMeasurement struct {
	RideIndex      uint8
	Flags          uint8
	LastUseTick    uint32
	NumItems       uint16
	CurrentItem    uint16
	VehicleIndex   uint8
	CurrentStation uint8
	Vertical       [RideMeasurementMaxItems]int8
	Lateral        [RideMeasurementMaxItems]int8
	Velocity       [RideMeasurementMaxItems]uint8
	Altitude       [RideMeasurementMaxItems]uint8
}

// RideRatingsCalcData is the incremental rating calculation scratch state
type RideRatingsCalcData struct {
	ProximityX          uint16
	ProximityY          uint16
	ProximityZ          uint16
	ProximityStartX     uint16
	ProximityStartY     uint16
	ProximityStartZ     uint16
	CurrentRide         uint8
	State               uint8
	ProximityTrackType  uint8
	ProximityBaseHeight uint8
	ProximityTotal      uint16
	ProximityScores     [26]uint16
	NumBrakes           uint16
	NumReversers        uint16
	StationFlags        uint16
	Pad4C               [62]uint8
}

// ResearchItem is one entry of the research order list
type ResearchItem struct {
	RawValue uint32
	Category uint8
}

// Banner is one placed banner record
type Banner struct {
	Type       uint8
	Flags      uint8
	StringIdx  uint16
	RideIndex  uint16
	Colour     uint8
	TextColour uint8
}

// MapAnimation is one animated map element reference
type MapAnimation struct {
	BaseZ uint8
	Type  uint8
	X     uint16
	Y     uint16
}

// NewsItem is one 268 byte news queue entry
type NewsItem struct {
	Type      uint8
	Flags     uint8
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	Pad0B     [1]uint8
	Text      [256]uint8
}

// Award is one active park award
type Award struct {
	Time uint16
	Type uint16
}

// PeepSpawn is one guest spawn point
type PeepSpawn struct {
	X         uint16
	Y         uint16
	Z         uint8
	Direction uint8
}

// TailCore is the first segment of the game state tail, from the sprite
// pool through the spawn points. Written for both save types.
type TailCore struct {
	NextFreeTileElementPointerIndex uint32
	Sprites                         [MaxSprites][SpriteSlotSize]uint8
	SpriteListsHead                 [NumSpriteLists]uint16
	SpriteListsCount                [NumSpriteLists]uint16
	ParkName                        uint16
	Pad013573D6                     [2]uint8
	ParkNameArgs                    uint32
	InitialCash                     int32
	CurrentLoan                     int32
	ParkFlags                       uint32
	ParkEntranceFee                 int16
	RCT1ParkEntranceX               int16
	RCT1ParkEntranceY               int16
	Pad013573EE                     [2]uint8
	RCT1ParkEntranceZ               uint8
	Pad013573F1                     [1]uint8
	PeepSpawns                      [MaxPeepSpawns]PeepSpawn
	GuestCountChangeModifier        uint8
	CurrentResearchLevel            uint8
	Pad01357400                     [4]uint8
}

// ResearchBitmasks holds the researched ride type, ride entry and track
// availability bitmasks. Scenario saves skip this segment.
type ResearchBitmasks struct {
	RideTypes   [MaxResearchedRideTypeQuads]uint32
	RideEntries [MaxResearchedRideEntryQuads]uint32
	TrackTypesA [MaxResearchedTrackTypeQuads]uint32
	TrackTypesB [MaxResearchedTrackTypeQuads]uint32
}

// GuestCounts is the tiny guest totals chunk
type GuestCounts struct {
	GuestsInPark        uint16
	GuestsHeadingForPark uint16
}

// ExpenditureTable is 16 months of per-type expenditure history.
// Scenario saves skip this segment.
type ExpenditureTable struct {
	Values [ExpenditureTypeCount * ExpenditureHistoryMonths]int32
}

// LastGuests holds the guest count baseline and staff uniform colours
type LastGuests struct {
	LastGuestsInPark      uint16
	Pad01357BCA           [3]uint8
	HandymanColour        uint8
	MechanicColour        uint8
	SecurityColour        uint8
}

// SceneryItemBitmask is the researched scenery bitmask. Scenario saves
// skip this segment.
type SceneryItemBitmask struct {
	Items [MaxResearchedSceneryItemQuads]uint32
}

// RatingHistories holds the park rating and guest count graphs.
// Scenario saves skip this segment.
type RatingHistories struct {
	ParkRatingHistory   [32]uint8
	GuestsInParkHistory [32]uint8
}

// Research is the 1082 byte research and objective chunk
type Research struct {
	ActiveResearchTypes        uint8
	ResearchProgressStage      uint8
	LastResearchedItemSubject  uint32
	Pad01357CF8                [1000]uint8
	NextResearchItem           uint32
	ResearchProgress           uint16
	NextResearchCategory       uint8
	NextResearchExpectedDay    uint8
	NextResearchExpectedMonth  uint8
	GuestInitialHappiness      uint8
	ParkSize                   uint16
	GuestGenerationProbability uint16
	TotalRideValueForMoney     uint16
	MaximumLoan                int32
	GuestInitialCash           int16
	GuestInitialHunger         uint8
	GuestInitialThirst         uint8
	ObjectiveType              uint8
	ObjectiveYear              uint8
	Pad013580FA                [2]uint8
	ObjectiveCurrency          int32
	ObjectiveGuests            uint16
	CampaignWeeksLeft          [MaxCampaigns]uint8
	CampaignRideIndex          [22]uint8
}

// BalanceHistory is the cash graph. Scenario saves skip this segment.
type BalanceHistory struct {
	Values [FinanceGraphSize]int32
}

// ExpenditureCurrent is the current month profit accumulators chunk
type ExpenditureCurrent struct {
	CurrentExpenditure          int32
	CurrentProfit               int32
	WeeklyProfitAverageDividend int32
	WeeklyProfitAverageDivisor  uint16
	Pad0135833A                 [2]uint8
}

// WeeklyProfitHistory is the profit graph. Scenario saves skip this
// segment.
type WeeklyProfitHistory struct {
	Values [FinanceGraphSize]int32
}

// ParkValueHistory is the park value graph. Scenario saves skip this
// segment.
type ParkValueHistory struct {
	Values [FinanceGraphSize]int32
}

// TailRest is the final segment of the game state tail, from the
// completed company value to the end of the image
type TailRest struct {
	CompletedCompanyValue uint32
	TotalAdmissions       uint32
	IncomeFromAdmissions  int32
	CompanyValue          int32
	PeepWarningThrottle   [16]uint8
	Awards                [MaxAwards]Award
	LandPrice             int16
	ConstructionRightsPrice int16
	Unk01358774           uint16
	Pad01358776           [2]uint8
	CDKey                 uint32
	Pad0135877C           [64]uint8
	GameVersionNumber     uint32
	CompletedCompanyValueRecord int32
	LoanHash              uint32
	RideCount             uint16
	Pad013587CA           [6]uint8
	HistoricalProfit      int32
	Pad013587D4           [4]uint8
	ScenarioCompletedName [32]uint8
	Cash                  int32
	Pad013587FC           [50]uint8
	ParkRatingCasualtyPenalty uint16
	MapSizeUnits          uint16
	MapSizeMinus2         uint16
	MapSize               uint16
	MapMaxXY              uint16
	SamePriceThroughout   uint32
	SuggestedMaxGuests    uint16
	ParkRatingWarningDays uint16
	LastEntranceStyle     uint8
	RCT1WaterColour       uint8
	Pad01358842           [2]uint8
	ResearchItems         [MaxResearchItems]ResearchItem
	MapBaseZ              uint16
	ScenarioName          [64]uint8
	ScenarioDescription   [256]uint8
	CurrentInterestRate   uint8
	Pad0135934B           [1]uint8
	SamePriceThroughoutExtended uint32
	ParkEntranceX         [MaxParkEntrances]int16
	ParkEntranceY         [MaxParkEntrances]int16
	ParkEntranceZ         [MaxParkEntrances]int16
	ParkEntranceDirection [MaxParkEntrances]uint8
	ScenarioFilename      [256]uint8
	SavedExpansionPackNames [3256]uint8
	Banners               [MaxBanners]Banner
	CustomStrings         [MaxCustomStrings][CustomStringSize]uint8
	GameTicks1            uint32
	Rides                 [MaxRides]Ride
	SavedAge              uint16
	SavedViewX            int16
	SavedViewY            int16
	SavedViewZoom         uint8
	SavedViewRotation     uint8
	MapAnimations         [MaxMapAnimations]MapAnimation
	NumMapAnimations      uint16
	Pad0138B582           [2]uint8
	RideRatingsCalcData   RideRatingsCalcData
	RideMeasurements      [MaxRideMeasurements]RideMeasurement
	NextGuestIndex        uint16
	GrassAndSceneryTilepos uint16
	PatrolAreas           [(MaxStaff + 4) * PatrolAreaSize]uint32
	StaffModes            [MaxStaff + 4]uint8
	Unk13CA73E            uint8
	Pad13CA73F            [1]uint8
	Unk13CA740            uint8
	Climate               uint8
	Pad13CA741            [6]uint8
	ClimateUpdateTimer    uint16
	CurrentWeather        uint8
	NextWeather           uint8
	Temperature           int8
	NextTemperature       int8
	CurrentWeatherEffect  uint8
	NextWeatherEffect     uint8
	CurrentWeatherGloom   uint8
	NextWeatherGloom      uint8
	CurrentRainLevel      uint8
	NextRainLevel         uint8
	NewsItems             [MaxNewsItems]NewsItem
	Pad13CE730            [64]uint8
	RCT1ScenarioFlags     uint32
	WidePathTileLoopX     uint16
	WidePathTileLoopY     uint16
	Pad13CE778            [432]uint8
}

// S6Data is the complete serialized image of a save file
type S6Data struct {
	Header S6Header
	Info   S6Info

	Objects [MaxObjectEntries]ObjectEntry

	DateRand     DateRand
	TileElements [MaxTileElements]TileElement

	Core                TailCore
	ResearchBitmasks    ResearchBitmasks
	GuestCounts         GuestCounts
	ExpenditureTable    ExpenditureTable
	LastGuests          LastGuests
	SceneryItemBitmask  SceneryItemBitmask
	ParkRating          uint16
	RatingHistories     RatingHistories
	Research            Research
	BalanceHistory      BalanceHistory
	ExpenditureCurrent  ExpenditureCurrent
	WeeklyProfitHistory WeeklyProfitHistory
	ParkValue           int32
	ParkValueHistory    ParkValueHistory
	Rest                TailRest
}
