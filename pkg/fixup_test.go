package pkg

import "testing"

// tile builds a surface element, optionally flagged
func tile(flags uint8) TileElement {
	return TileElement{Type: TileElementTypeSurface, Flags: flags, BaseHeight: 14}
}

func TestFixGhostTileElements(t *testing.T) {
	e := NewS6Exporter()
	elements := []TileElement{
		// Tile 0: surface + ghost track
		tile(0),
		{Type: TileElementTypeTrack, Flags: TileElementFlagGhost | TileElementFlagLastOfTile},
		// Tile 1: surface only
		tile(TileElementFlagLastOfTile),
		// Tile 2: surface + real wall
		tile(0),
		{Type: TileElementTypeWall, Flags: TileElementFlagLastOfTile},
	}
	copy(e.Data.TileElements[:], elements)
	e.Data.Core.NextFreeTileElementPointerIndex = uint32(len(elements))

	removed := e.fixGhostTileElements()
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if e.Data.Core.NextFreeTileElementPointerIndex != 4 {
		t.Errorf("next free index = %d, want 4", e.Data.Core.NextFreeTileElementPointerIndex)
	}
	// Tile 0 is now a single element and must carry the last flag
	if e.Data.TileElements[0].Flags&TileElementFlagLastOfTile == 0 {
		t.Error("tile 0 lost its last-of-tile terminator")
	}
	if e.Data.TileElements[1].Flags&TileElementFlagLastOfTile == 0 {
		t.Error("tile 1 terminator missing after compaction")
	}
	if e.Data.TileElements[3].Type&TileElementTypeMask != TileElementTypeWall {
		t.Error("real wall element lost during compaction")
	}
}

func TestFixGhostKeepsTileWithOnlyGhosts(t *testing.T) {
	e := NewS6Exporter()
	elements := []TileElement{
		{Type: TileElementTypeTrack, Flags: TileElementFlagGhost | TileElementFlagLastOfTile},
		tile(TileElementFlagLastOfTile),
	}
	copy(e.Data.TileElements[:], elements)
	e.Data.Core.NextFreeTileElementPointerIndex = 2

	e.fixGhostTileElements()
	if e.Data.Core.NextFreeTileElementPointerIndex != 2 {
		t.Fatalf("next free index = %d, want 2", e.Data.Core.NextFreeTileElementPointerIndex)
	}
	first := e.Data.TileElements[0]
	if first.Flags&TileElementFlagGhost != 0 {
		t.Error("kept element still flagged as ghost")
	}
	if first.Flags&TileElementFlagLastOfTile == 0 {
		t.Error("kept element lost its terminator")
	}
}

func TestRemoveTracklessRides(t *testing.T) {
	e := NewS6Exporter()

	e.Data.Rest.Rides[0] = emptyRide()
	e.Data.Rest.Rides[0].Type = 7
	e.Data.Rest.Rides[1] = emptyRide()
	e.Data.Rest.Rides[1].Type = 12

	// Ride 0 has track on the map, ride 1 does not
	trackElement := TileElement{Type: TileElementTypeTrack, Flags: TileElementFlagLastOfTile}
	trackElement.Properties[3] = 0
	e.Data.TileElements[0] = tile(0)
	e.Data.TileElements[1] = trackElement
	e.Data.Core.NextFreeTileElementPointerIndex = 2

	removed := e.removeTracklessRides()
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if e.Data.Rest.Rides[0].Type != 7 {
		t.Error("ride with track was removed")
	}
	if e.Data.Rest.Rides[1].Type != RideTypeNull {
		t.Error("trackless ride kept its slot")
	}
}
