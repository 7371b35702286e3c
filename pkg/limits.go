package pkg

// File header constants
const (
	S6TypeSavedGame = 0
	S6TypeScenario  = 1

	S6Version     = 120001
	S6MagicNumber = 0x00031144

	// Build number the classic game stamps into the tail of the file
	S6GameVersion = 201028
)

// Structure capacity limits of the save format
const (
	MaxObjectEntries        = 721
	MaxTileElements         = 0x30000
	MaxSprites              = 10000
	SpriteSlotSize          = 256
	NumSpriteLists          = 6
	MaxRides                = 255
	MaxRideMeasurements     = 8
	RideMeasurementMaxItems = 4800
	MaxStationsPerRide      = 4
	MaxVehiclesPerRide      = 32
	MaxResearchItems        = 500
	MaxNewsItems            = 61
	MaxBanners              = 250
	MaxCustomStrings        = 1024
	CustomStringSize        = 32
	MaxMapAnimations        = 2000
	MaxAwards               = 4
	MaxPeepSpawns           = 2
	MaxParkEntrances        = 4
	MaxStaff                = 200
	PatrolAreaSize          = 128
	MaxCampaigns            = 20
	MaxRideTypes            = 91
	MaxResearchedRideTypeQuads     = 8
	MaxResearchedRideEntryQuads    = 8
	MaxResearchedTrackTypeQuads    = 128
	MaxResearchedSceneryItemQuads  = 56
	ExpenditureTypeCount           = 14
	ExpenditureHistoryMonths       = 16
	FinanceGraphSize               = 128
)

// Sentinel values
const (
	RideTypeNull       = 0xFF
	RideIDNull         = 0xFF
	RideEntranceNull   = 0xFFFF
	SpriteIndexNull    = 0xFFFF
	StringIDNull       = 0
	PeepSpawnUndefined = 0xFFFF
	LocationNull       = -0x8000
	ResearchedItemsEnd = 0xFFFFFFFF
	ResearchedItemsSep = 0xFFFFFFFE
)

// Sprite identifiers (first byte of every sprite record)
const (
	SpriteIdentifierVehicle = 0
	SpriteIdentifierPeep    = 1
	SpriteIdentifierMisc    = 2
	SpriteIdentifierLitter  = 3
	SpriteIdentifierNull    = 0xFF
)

// Misc sprite sub-types
const (
	MiscSpriteSteamParticle = iota
	MiscSpriteMoneyEffect
	MiscSpriteCrashedVehicleParticle
	MiscSpriteExplosionCloud
	MiscSpriteCrashSplash
	MiscSpriteExplosionFlare
	MiscSpriteJumpingFountainWater
	MiscSpriteBalloon
	MiscSpriteDuck
	MiscSpriteJumpingFountainSnow
)

// Marketing campaign types that advertise a single ride and therefore
// carry a ride index argument
const (
	CampaignRideFree        = 1
	CampaignRide            = 3
	CampaignFoodOrDrinkFree = 5
	CampaignTypeCount       = 6
)

// Raw chunk sizes, matching the classic game's in-memory layout
const (
	headerChunkSize   = 0x20
	infoChunkSize     = 0x8000
	objectsChunkSize  = 0x2D10
	dateRandChunkSize = 16
	tileElementsSize  = 0x180000
	tailCoreSize      = 0x27104C
	savedGameTailSize = 0x2E8570
	tailRestSize      = 0x761E8
)
