package park

import "testing"

func linkedNulls(indices []uint16) []SpriteSlot {
	slots := make([]SpriteSlot, len(indices))
	for i, index := range indices {
		null := &NullSprite{}
		null.SpriteIndex = index
		null.Previous = SpriteIndexNull
		null.Next = SpriteIndexNull
		null.NextInQuadrant = SpriteIndexNull
		if i > 0 {
			null.Previous = indices[i-1]
		}
		if i < len(indices)-1 {
			null.Next = indices[i+1]
		}
		slots[i] = SpriteSlot{Index: index, Sprite: null}
	}
	return slots
}

func TestCheckSpriteListCyclesClean(t *testing.T) {
	state := &State{
		Sprites:         linkedNulls([]uint16{0, 1, 2}),
		SpriteListsHead: []uint16{0, SpriteIndexNull, SpriteIndexNull, SpriteIndexNull, SpriteIndexNull, SpriteIndexNull},
	}
	if got := state.CheckSpriteListCycles(); got != -1 {
		t.Errorf("CheckSpriteListCycles = %d, want -1", got)
	}
}

func TestCheckSpriteListCyclesDetects(t *testing.T) {
	slots := linkedNulls([]uint16{0, 1, 2})
	// Close the loop: 2 -> 1
	slots[2].Sprite.Common().Next = 1
	state := &State{
		Sprites:         slots,
		SpriteListsHead: []uint16{0, SpriteIndexNull, SpriteIndexNull, SpriteIndexNull, SpriteIndexNull, SpriteIndexNull},
	}
	if got := state.CheckSpriteListCycles(); got != 1 {
		t.Errorf("CheckSpriteListCycles = %d, want first revisited index 1", got)
	}
}

func TestCheckSpatialIndexCyclesDetects(t *testing.T) {
	slots := linkedNulls([]uint16{0, 1})
	slots[0].Sprite.Common().NextInQuadrant = 1
	slots[1].Sprite.Common().NextInQuadrant = 0
	state := &State{Sprites: slots}
	if got := state.CheckSpatialIndexCycles(); got < 0 {
		t.Error("CheckSpatialIndexCycles missed a two sprite loop")
	}

	slots[1].Sprite.Common().NextInQuadrant = SpriteIndexNull
	if got := state.CheckSpatialIndexCycles(); got != -1 {
		t.Errorf("CheckSpatialIndexCycles = %d on acyclic chains, want -1", got)
	}
}

func TestFixDisjointSprites(t *testing.T) {
	slots := linkedNulls([]uint16{0, 1})
	// A third null sprite not linked into the list
	orphan := &NullSprite{}
	orphan.SpriteIndex = 7
	orphan.Next = SpriteIndexNull
	orphan.Previous = SpriteIndexNull
	slots = append(slots, SpriteSlot{Index: 7, Sprite: orphan})

	state := &State{
		Sprites:         slots,
		SpriteListsHead: []uint16{0, SpriteIndexNull, SpriteIndexNull, SpriteIndexNull, SpriteIndexNull, SpriteIndexNull},
	}
	if fixed := state.FixDisjointSprites(); fixed != 1 {
		t.Fatalf("FixDisjointSprites = %d, want 1", fixed)
	}
	if state.SpriteListsHead[SpriteListNull] != 7 {
		t.Errorf("null list head = %d, want relinked orphan 7", state.SpriteListsHead[SpriteListNull])
	}
	if orphan.Next != 0 {
		t.Errorf("orphan next = %d, want previous head 0", orphan.Next)
	}
	// A second pass finds nothing left to fix
	if fixed := state.FixDisjointSprites(); fixed != 0 {
		t.Errorf("second FixDisjointSprites = %d, want 0", fixed)
	}
}

func TestClearUnusedSprites(t *testing.T) {
	null := &NullSprite{}
	null.SpriteIndex = 3
	null.Next = 4
	null.Previous = 2
	null.NextInQuadrant = 9
	null.X = 123
	null.Y = 456
	null.Flags = 0xFFFF

	peep := &Peep{}
	peep.SpriteIndex = 5
	peep.X = 100

	state := &State{Sprites: []SpriteSlot{
		{Index: 3, Sprite: null},
		{Index: 5, Sprite: peep},
	}}
	if cleared := state.ClearUnusedSprites(); cleared != 1 {
		t.Fatalf("ClearUnusedSprites = %d, want 1", cleared)
	}
	if null.X != 0 || null.Y != 0 || null.Flags != 0 {
		t.Error("null sprite kept stale position data")
	}
	if null.Next != 4 || null.Previous != 2 || null.NextInQuadrant != 9 || null.SpriteIndex != 3 {
		t.Error("null sprite lost its list linkage")
	}
	if peep.X != 100 {
		t.Error("live sprite was scrubbed")
	}
}
