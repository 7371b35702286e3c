package pkg

import (
	"github.com/hansbonini/parktools/pkg/common"
	"github.com/hansbonini/parktools/pkg/park"
)

// setResearchedBit sets bit (index mod 32) of word (index div 32),
// ignoring indices beyond the bitmask
func setResearchedBit(words []uint32, index int) bool {
	if index < 0 || index/32 >= len(words) {
		return false
	}
	words[index/32] |= 1 << (index % 32)
	return true
}

// exportResearchedRideTypes builds the researched ride type bitmask
func (e *S6Exporter) exportResearchedRideTypes(research *park.Research) {
	words := e.Data.ResearchBitmasks.RideTypes[:]
	for i := range words {
		words[i] = 0
	}
	set := 0
	for _, index := range research.RideTypes {
		if setResearchedBit(words, index) {
			set++
		}
	}
	common.LogDebug(common.DebugResearchedBitCount, set, len(words)*32)
}

// exportResearchedRideEntries builds the researched ride entry bitmask
func (e *S6Exporter) exportResearchedRideEntries(research *park.Research) {
	words := e.Data.ResearchBitmasks.RideEntries[:]
	for i := range words {
		words[i] = 0
	}
	for _, index := range research.RideEntries {
		setResearchedBit(words, index)
	}
}

// exportResearchedSceneryItems builds the researched scenery bitmask
func (e *S6Exporter) exportResearchedSceneryItems(research *park.Research) {
	words := e.Data.SceneryItemBitmask.Items[:]
	for i := range words {
		words[i] = 0
	}
	for _, index := range research.SceneryItems {
		setResearchedBit(words, index)
	}
}

// exportResearchedTrackTypes copies the raw per-ride-type track piece
// availability words
func (e *S6Exporter) exportResearchedTrackTypes(research *park.Research) {
	for i := range e.Data.ResearchBitmasks.TrackTypesA {
		e.Data.ResearchBitmasks.TrackTypesA[i] = 0
		e.Data.ResearchBitmasks.TrackTypesB[i] = 0
	}
	copy(e.Data.ResearchBitmasks.TrackTypesA[:], research.TrackTypesA)
	copy(e.Data.ResearchBitmasks.TrackTypesB[:], research.TrackTypesB)
}

// exportResearchList copies the invention order list. Unused slots are
// filled with the end of list sentinel.
func (e *S6Exporter) exportResearchList(research *park.Research) {
	list := research.List
	if len(list) > MaxResearchItems {
		common.LogWarn(common.WarnTooManyResearchItems, len(list), MaxResearchItems)
		list = list[:MaxResearchItems]
	}
	for i := range e.Data.Rest.ResearchItems {
		if i < len(list) {
			e.Data.Rest.ResearchItems[i] = ResearchItem{
				RawValue: list[i].RawValue,
				Category: list[i].Category,
			}
		} else {
			e.Data.Rest.ResearchItems[i] = ResearchItem{RawValue: ResearchedItemsEnd}
		}
	}
}
