package pkg

import "github.com/hansbonini/parktools/pkg/common"

// fixGhostTileElements removes ghost (preview) map elements from the
// exported tile pool. Ghosts are construction previews and must never
// persist. Each tile keeps at least one element so the per-tile chains
// stay walkable.
func (e *S6Exporter) fixGhostTileElements() int {
	elements := e.Data.TileElements[:]
	used := int(e.Data.Core.NextFreeTileElementPointerIndex)
	if used > len(elements) {
		used = len(elements)
	}

	removed := 0
	write := 0
	for read := 0; read < used; {
		// Collect one tile's element group
		end := read
		for end < used && elements[end].Flags&TileElementFlagLastOfTile == 0 {
			end++
		}
		if end < used {
			end++
		}

		groupStart := write
		for i := read; i < end; i++ {
			if elements[i].Flags&TileElementFlagGhost != 0 {
				removed++
				continue
			}
			elements[write] = elements[i]
			elements[write].Flags &^= TileElementFlagLastOfTile
			write++
		}
		if write == groupStart {
			// Every element was a ghost; keep the last one so the tile
			// is not left without elements
			elements[write] = elements[end-1]
			elements[write].Flags &^= TileElementFlagGhost
			elements[write].Flags &^= TileElementFlagLastOfTile
			write++
			removed--
		}
		elements[write-1].Flags |= TileElementFlagLastOfTile
		read = end
	}

	for i := write; i < used; i++ {
		elements[i] = TileElement{}
	}
	e.Data.Core.NextFreeTileElementPointerIndex = uint32(write)

	if removed > 0 {
		common.LogDebug(common.DebugGhostsRemoved, removed)
	}
	return removed
}

// removeTracklessRides blanks ride slots that no longer have any track
// on the map. Such rides are construction leftovers that would load as
// broken husks.
func (e *S6Exporter) removeTracklessRides() int {
	var hasTrack [MaxRides]bool
	used := int(e.Data.Core.NextFreeTileElementPointerIndex)
	if used > len(e.Data.TileElements) {
		used = len(e.Data.TileElements)
	}
	for i := 0; i < used; i++ {
		element := &e.Data.TileElements[i]
		if element.Type&TileElementTypeMask != TileElementTypeTrack {
			continue
		}
		rideIndex := element.Properties[3]
		if int(rideIndex) < MaxRides {
			hasTrack[rideIndex] = true
		}
	}

	removed := 0
	for i := range e.Data.Rest.Rides {
		if e.Data.Rest.Rides[i].Type == RideTypeNull || hasTrack[i] {
			continue
		}
		e.Data.Rest.Rides[i] = emptyRide()
		removed++
	}
	if removed > 0 {
		common.LogDebug(common.DebugTracklessRemoved, removed)
	}
	return removed
}
