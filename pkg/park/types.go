// Package park models live park state: the mutable, pointer friendly
// representation that gameplay logic works with, as opposed to the
// packed on-disk image. State trees are loaded from YAML fixtures.
package park

// XY is a tile coordinate
type XY struct {
	X uint8 `yaml:"x"`
	Y uint8 `yaml:"y"`
}

// ObjectRef identifies a loaded object occupying a slot of the object
// list
type ObjectRef struct {
	Slot     int    `yaml:"slot"`
	Flags    uint32 `yaml:"flags"`
	Name     string `yaml:"name"`
	Checksum uint32 `yaml:"checksum"`
}

// ScenarioInfo is the scenario metadata block
type ScenarioInfo struct {
	EditorStep    uint8  `yaml:"editor_step"`
	Category      uint8  `yaml:"category"`
	ObjectiveType uint8  `yaml:"objective_type"`
	ObjectiveArg1 uint8  `yaml:"objective_arg_1"`
	ObjectiveArg2 int32  `yaml:"objective_arg_2"`
	ObjectiveArg3 int16  `yaml:"objective_arg_3"`
	ObjectiveYear uint8  `yaml:"objective_year"`
	ObjectiveCurrency int32 `yaml:"objective_currency"`
	ObjectiveGuests   uint16 `yaml:"objective_guests"`
	Name          string `yaml:"name"`
	Details       string `yaml:"details"`
	SourceGame    uint8  `yaml:"source_game"`
	SourceIndex   int16  `yaml:"source_index"`
	CompletedName string `yaml:"completed_name"`
	CompletedCompanyValue uint32 `yaml:"completed_company_value"`
	CompletedCompanyValueRecord int32 `yaml:"completed_company_value_record"`
	Filename      string `yaml:"filename"`
	// Raw bytes of the expansion pack name table, preserved verbatim
	ExpansionPackNames []uint8 `yaml:"expansion_pack_names,flow"`
}

// GameDate is elapsed time and the RNG state
type GameDate struct {
	ElapsedMonths uint16 `yaml:"elapsed_months"`
	CurrentDay    uint16 `yaml:"current_day"`
	Ticks         uint32 `yaml:"ticks"`
	GameTicks     uint32 `yaml:"game_ticks"`
	SrandSeed0    uint32 `yaml:"srand_seed_0"`
	SrandSeed1    uint32 `yaml:"srand_seed_1"`
}

// TileElement is one live map element. The packed layout is kept
// because map logic addresses the properties bytes directly.
type TileElement struct {
	Type            uint8    `yaml:"type"`
	Flags           uint8    `yaml:"flags"`
	BaseHeight      uint8    `yaml:"base_height"`
	ClearanceHeight uint8    `yaml:"clearance_height"`
	Properties      [4]uint8 `yaml:"properties,flow"`
}

// ParkEntrance is one placed park entrance
type ParkEntrance struct {
	X         int16 `yaml:"x"`
	Y         int16 `yaml:"y"`
	Z         int16 `yaml:"z"`
	Direction uint8 `yaml:"direction"`
}

// PeepSpawn is one guest spawn point in world units
type PeepSpawn struct {
	X         uint16 `yaml:"x"`
	Y         uint16 `yaml:"y"`
	Z         uint16 `yaml:"z"`
	Direction uint8  `yaml:"direction"`
}

// Park holds park level settings and status
type Park struct {
	Name              uint16 `yaml:"name"`
	NameArgs          uint32 `yaml:"name_args"`
	Flags             uint32 `yaml:"flags"`
	EntranceFee       int16  `yaml:"entrance_fee"`
	Rating            uint16 `yaml:"rating"`
	RatingHistory     []uint8 `yaml:"rating_history,flow"`
	GuestsInParkHistory []uint8 `yaml:"guests_in_park_history,flow"`
	RatingCasualtyPenalty uint16 `yaml:"rating_casualty_penalty"`
	RatingWarningDays uint16 `yaml:"rating_warning_days"`
	Size              uint16 `yaml:"size"`
	Value             int32  `yaml:"value"`
	ValueHistory      []int32 `yaml:"value_history,flow"`
	CompanyValue      int32  `yaml:"company_value"`
	TotalAdmissions   uint32 `yaml:"total_admissions"`
	IncomeFromAdmissions int32 `yaml:"income_from_admissions"`
	Entrances         []ParkEntrance `yaml:"entrances"`
	PeepSpawns        []PeepSpawn    `yaml:"peep_spawns"`
	LandPrice         int16 `yaml:"land_price"`
	ConstructionRightsPrice int16 `yaml:"construction_rights_price"`
	SamePriceThroughout uint32 `yaml:"same_price_throughout"`
	SamePriceThroughoutExtended uint32 `yaml:"same_price_throughout_extended"`
	SuggestedMaxGuests uint16 `yaml:"suggested_max_guests"`
	LastEntranceStyle  uint8  `yaml:"last_entrance_style"`
	PeepWarningThrottle []uint8 `yaml:"peep_warning_throttle,flow"`
}

// Finance holds cash, loan and the historical money graphs
type Finance struct {
	Cash            int32   `yaml:"cash"`
	InitialCash     int32   `yaml:"initial_cash"`
	CurrentLoan     int32   `yaml:"current_loan"`
	MaximumLoan     int32   `yaml:"maximum_loan"`
	CurrentInterestRate uint8 `yaml:"current_interest_rate"`
	HistoricalProfit int32  `yaml:"historical_profit"`
	CurrentExpenditure int32 `yaml:"current_expenditure"`
	CurrentProfit   int32   `yaml:"current_profit"`
	WeeklyProfitAverageDividend int32 `yaml:"weekly_profit_average_dividend"`
	WeeklyProfitAverageDivisor  uint16 `yaml:"weekly_profit_average_divisor"`
	// 16 months of history per expenditure type, most recent first
	ExpenditureTable [][]int32 `yaml:"expenditure_table,flow"`
	BalanceHistory   []int32   `yaml:"balance_history,flow"`
	WeeklyProfitHistory []int32 `yaml:"weekly_profit_history,flow"`
}

// ResearchListItem is one entry of the invention order list
type ResearchListItem struct {
	RawValue uint32 `yaml:"raw_value"`
	Category uint8  `yaml:"category"`
}

// Research holds research progress and the researched item predicates
type Research struct {
	FundingLevel          uint8  `yaml:"funding_level"`
	ActiveResearchTypes   uint8  `yaml:"active_research_types"`
	ProgressStage         uint8  `yaml:"progress_stage"`
	Progress              uint16 `yaml:"progress"`
	LastResearchedItemSubject uint32 `yaml:"last_researched_item_subject"`
	NextItem              uint32 `yaml:"next_item"`
	NextCategory          uint8  `yaml:"next_category"`
	ExpectedDay           uint8  `yaml:"expected_day"`
	ExpectedMonth         uint8  `yaml:"expected_month"`

	// Indices with the researched predicate set
	RideTypes    []int `yaml:"ride_types,flow"`
	RideEntries  []int `yaml:"ride_entries,flow"`
	SceneryItems []int `yaml:"scenery_items,flow"`

	// Raw per-ride-type track piece availability words
	TrackTypesA []uint32 `yaml:"track_types_a,flow"`
	TrackTypesB []uint32 `yaml:"track_types_b,flow"`

	List []ResearchListItem `yaml:"list"`
}

// Guests holds park wide guest state
type Guests struct {
	GuestsInPark         uint16 `yaml:"guests_in_park"`
	GuestsHeadingForPark uint16 `yaml:"guests_heading_for_park"`
	LastGuestsInPark     uint16 `yaml:"last_guests_in_park"`
	NextGuestIndex       uint16 `yaml:"next_guest_index"`
	CountChangeModifier  uint8  `yaml:"count_change_modifier"`
	GenerationProbability uint16 `yaml:"generation_probability"`
	InitialHappiness     uint8  `yaml:"initial_happiness"`
	InitialCash          int16  `yaml:"initial_cash"`
	InitialHunger        uint8  `yaml:"initial_hunger"`
	InitialThirst        uint8  `yaml:"initial_thirst"`
}

// Staff holds staff colours, modes and patrol areas
type Staff struct {
	HandymanColour uint8 `yaml:"handyman_colour"`
	MechanicColour uint8 `yaml:"mechanic_colour"`
	SecurityColour uint8 `yaml:"security_colour"`
	Modes          []uint8 `yaml:"modes,flow"`
	PatrolAreas    []PatrolArea `yaml:"patrol_areas"`
}

// PatrolArea is one staff member's patrol bitmap, 128 words of 32 tiles
type PatrolArea struct {
	StaffIndex int      `yaml:"staff_index"`
	Words      []uint32 `yaml:"words,flow"`
}

// Climate holds weather state
type Climate struct {
	Current             uint8  `yaml:"current"`
	UpdateTimer         uint16 `yaml:"update_timer"`
	CurrentWeather      uint8  `yaml:"current_weather"`
	NextWeather         uint8  `yaml:"next_weather"`
	Temperature         int8   `yaml:"temperature"`
	NextTemperature     int8   `yaml:"next_temperature"`
	CurrentWeatherEffect uint8 `yaml:"current_weather_effect"`
	NextWeatherEffect   uint8  `yaml:"next_weather_effect"`
	CurrentWeatherGloom uint8  `yaml:"current_weather_gloom"`
	NextWeatherGloom    uint8  `yaml:"next_weather_gloom"`
	CurrentRainLevel    uint8  `yaml:"current_rain_level"`
	NextRainLevel       uint8  `yaml:"next_rain_level"`
}

// NewsEntry is one queued news message
type NewsEntry struct {
	Type      uint8  `yaml:"type"`
	Flags     uint8  `yaml:"flags"`
	Assoc     uint32 `yaml:"assoc"`
	Ticks     uint16 `yaml:"ticks"`
	MonthYear uint16 `yaml:"month_year"`
	Day       uint8  `yaml:"day"`
	Text      string `yaml:"text"`
}

// BannerEntry is one placed banner
type BannerEntry struct {
	Type       uint8  `yaml:"type"`
	Flags      uint8  `yaml:"flags"`
	StringIdx  uint16 `yaml:"string_idx"`
	RideIndex  uint16 `yaml:"ride_index"`
	Colour     uint8  `yaml:"colour"`
	TextColour uint8  `yaml:"text_colour"`
}

// MapAnimationEntry is one animated map element reference
type MapAnimationEntry struct {
	BaseZ uint8  `yaml:"base_z"`
	Type  uint8  `yaml:"type"`
	X     uint16 `yaml:"x"`
	Y     uint16 `yaml:"y"`
}

// AwardEntry is one active park award
type AwardEntry struct {
	Time uint16 `yaml:"time"`
	Type uint16 `yaml:"type"`
}

// MarketingCampaign is one running advertising campaign
type MarketingCampaign struct {
	Type      int `yaml:"type"`
	RideIndex int `yaml:"ride_index"`
	// ShopItemType is used instead of RideIndex by the free food or
	// drink campaign
	ShopItemType int `yaml:"shop_item_type"`
	WeeksLeft    int `yaml:"weeks_left"`
}

// SavedView is the stored viewport position
type SavedView struct {
	X        int16 `yaml:"x"`
	Y        int16 `yaml:"y"`
	Zoom     uint8 `yaml:"zoom"`
	Rotation uint8 `yaml:"rotation"`
	Age      uint16 `yaml:"age"`
}

// MapGeometry holds map sizing and miscellaneous map state
type MapGeometry struct {
	SizeUnits     uint16 `yaml:"size_units"`
	SizeMinus2    uint16 `yaml:"size_minus_2"`
	Size          uint16 `yaml:"size"`
	MaxXY         uint16 `yaml:"max_xy"`
	BaseZ         uint16 `yaml:"base_z"`
	GrassAndSceneryTilepos uint16 `yaml:"grass_and_scenery_tilepos"`
	WidePathTileLoopX uint16 `yaml:"wide_path_tile_loop_x"`
	WidePathTileLoopY uint16 `yaml:"wide_path_tile_loop_y"`
}

// RideRatingsCalc mirrors the incremental ratings calculation scratch
// state so a resumed save continues where it stopped
type RideRatingsCalc struct {
	ProximityX          uint16   `yaml:"proximity_x"`
	ProximityY          uint16   `yaml:"proximity_y"`
	ProximityZ          uint16   `yaml:"proximity_z"`
	ProximityStartX     uint16   `yaml:"proximity_start_x"`
	ProximityStartY     uint16   `yaml:"proximity_start_y"`
	ProximityStartZ     uint16   `yaml:"proximity_start_z"`
	CurrentRide         uint8    `yaml:"current_ride"`
	State               uint8    `yaml:"state"`
	ProximityTrackType  uint8    `yaml:"proximity_track_type"`
	ProximityBaseHeight uint8    `yaml:"proximity_base_height"`
	ProximityTotal      uint16   `yaml:"proximity_total"`
	ProximityScores     []uint16 `yaml:"proximity_scores,flow"`
	NumBrakes           uint16   `yaml:"num_brakes"`
	NumReversers        uint16   `yaml:"num_reversers"`
	StationFlags        uint16   `yaml:"station_flags"`
}

// RCT1 holds fields only meaningful for parks imported from the first
// game
type RCT1 struct {
	ParkEntranceX int16  `yaml:"park_entrance_x"`
	ParkEntranceY int16  `yaml:"park_entrance_y"`
	ParkEntranceZ uint8  `yaml:"park_entrance_z"`
	WaterColour   uint8  `yaml:"water_colour"`
	ScenarioFlags uint32 `yaml:"scenario_flags"`
}

// State is the complete live park state
type State struct {
	Scenario ScenarioInfo `yaml:"scenario"`
	Date     GameDate     `yaml:"date"`

	Objects []ObjectRef `yaml:"objects"`

	TileElements []TileElement `yaml:"tile_elements"`
	NextFreeTileElementPointerIndex uint32 `yaml:"next_free_tile_element_pointer_index"`
	Geometry MapGeometry `yaml:"geometry"`

	Sprites          []SpriteSlot `yaml:"sprites"`
	SpriteListsHead  []uint16     `yaml:"sprite_lists_head,flow"`
	SpriteListsCount []uint16     `yaml:"sprite_lists_count,flow"`

	Park     Park     `yaml:"park"`
	Finance  Finance  `yaml:"finance"`
	Research Research `yaml:"research"`
	Guests   Guests   `yaml:"guests"`
	Staff    Staff    `yaml:"staff"`
	Climate  Climate  `yaml:"climate"`

	Rides []*Ride `yaml:"rides"`

	Campaigns []MarketingCampaign `yaml:"campaigns"`
	Awards    []AwardEntry        `yaml:"awards"`
	News      []NewsEntry         `yaml:"news"`
	Banners   []BannerEntry       `yaml:"banners"`
	Strings   []string            `yaml:"strings"`

	MapAnimations []MapAnimationEntry `yaml:"map_animations"`

	RideRatings RideRatingsCalc `yaml:"ride_ratings"`
	SavedView   SavedView       `yaml:"saved_view"`
	RCT1        RCT1            `yaml:"rct1"`

	// Meaning unknown, carried through unchanged
	Unk13CA740 uint8 `yaml:"unk_13ca740"`
}
