package common

import (
	"fmt"
	"log"

	"github.com/fatih/color"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Level tags are colorized so warnings stand out when a large park state
// produces a long export log.
var (
	tagInfo  = color.New(color.FgCyan).Sprint("[INFO]")
	tagWarn  = color.New(color.FgYellow).Sprint("[WARN]")
	tagError = color.New(color.FgRed).Sprint("[ERROR]")
	tagDebug = color.New(color.FgHiBlack).Sprint("[DEBUG]")
)

// Error messages
const (
	ErrFailedToReadParkFile     = "failed to read park state file"
	ErrFailedToParseYAML        = "failed to parse YAML"
	ErrFailedToCreateOutputFile = "failed to create output file"
	ErrFailedToWriteChunk       = "failed to write chunk"
	ErrFailedToWriteChecksum    = "failed to write checksum"
	ErrFailedToWriteSaveFile    = "failed to write save file"
	ErrFailedToExportState      = "failed to export park state"
	ErrFailedToPackObjects      = "failed to write packed objects"
	ErrNoObjectRepository       = "packed objects requested but no object repository is configured"
	ErrSpatialIndexCycle        = "sprite cycle exists in spatial index"
	ErrSpriteListCycle          = "sprite cycle exists in sprite list"
	ErrChunkTooLarge            = "chunk data exceeds maximum encodable length"
)

// Info messages
const (
	InfoSavingGame      = "Saving game"
	InfoSavingScenario  = "Saving scenario"
	InfoSaveFileCreated = "Save file created successfully"
	InfoParkFileLoaded  = "Park state file loaded"
)

// Debug messages
const (
	DebugChunkWritten       = "Chunk %d: encoding=%d, %d bytes raw, %d bytes encoded"
	DebugChecksum           = "File checksum: 0x%08X over %d bytes"
	DebugRideExported       = "Ride %d: type=%d, %d stations"
	DebugMeasurementKept    = "Measurement slot %d assigned to ride %d (last use tick %d)"
	DebugGhostsRemoved      = "Removed %d ghost tile elements"
	DebugTracklessRemoved   = "Removed %d trackless rides"
	DebugSpritesExported    = "Exported %d live sprites"
	DebugParkStateStats     = "Park state: %d tile elements, %d sprites, %d rides"
	DebugResearchedBitCount = "Researched bitmask: %d of %d entries set"
)

// Warning messages
const (
	WarnDisjointSprites        = "Found %d disjoint null sprites"
	WarnUnknownSpriteKind      = "Sprite identifier %d can not be exported"
	WarnUnknownMiscSpriteKind  = "Misc. sprite type %d can not be exported"
	WarnMeasurementsDropped    = "Dropping %d ride measurements over format capacity"
	WarnTextTruncated          = "Text %q truncated to %d bytes"
	WarnTooManyNewsItems       = "Too many news items (%d), only first %d will be stored"
	WarnTooManyBanners         = "Too many banners (%d), only first %d will be stored"
	WarnTooManyCustomStrings   = "Too many custom strings (%d), only first %d will be stored"
	WarnTooManyMapAnimations   = "Too many map animations (%d), only first %d will be stored"
	WarnTooManyAwards          = "Too many awards (%d), only first %d will be stored"
	WarnTooManyResearchItems   = "Too many research items (%d), only first %d will be stored"
	WarnTooManyParkEntrances   = "Too many park entrances (%d), only first %d will be stored"
	WarnTooManyPeepSpawns      = "Too many peep spawns (%d), only first %d will be stored"
	WarnCampaignTypeOutOfRange = "Marketing campaign type %d out of range, skipped"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf(tagInfo+" "+message, args...)
	} else {
		log.Printf("%s %s", tagInfo, message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf(tagWarn+" "+message, args...)
	} else {
		log.Printf("%s %s", tagWarn, message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf(tagError+" "+message, args...)
	} else {
		log.Printf("%s %s", tagError, message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf(tagDebug+" "+message, args...)
	} else {
		log.Printf("%s %s", tagDebug, message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}

// FormatErrorString creates a formatted error with string details
func FormatErrorString(baseMessage, details string, args ...interface{}) error {
	if len(args) > 0 {
		return fmt.Errorf("%s: "+details, append([]interface{}{baseMessage}, args...)...)
	}
	return fmt.Errorf("%s: %s", baseMessage, details)
}
