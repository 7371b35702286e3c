package park

import "github.com/hansbonini/parktools/pkg/common"

// MaxSpriteSlots is the size of the sprite pool
const MaxSpriteSlots = 10000

// Sprite list identifiers, in SpriteListsHead order
const (
	SpriteListNull = iota
	SpriteListTrain
	SpriteListPeep
	SpriteListMisc
	SpriteListLitter
	SpriteListUnknown
)

// spriteIndexMap builds a pool index to sprite lookup table
func (s *State) spriteIndexMap() map[uint16]Sprite {
	byIndex := make(map[uint16]Sprite, len(s.Sprites))
	for i := range s.Sprites {
		byIndex[s.Sprites[i].Index] = s.Sprites[i].Sprite
	}
	return byIndex
}

// CheckSpriteListCycles walks each sprite list from its head and
// returns the index of the first sprite found twice, or -1 when all
// lists are acyclic
func (s *State) CheckSpriteListCycles() int {
	byIndex := s.spriteIndexMap()
	seen := make(map[uint16]bool, len(s.Sprites))
	for _, head := range s.SpriteListsHead {
		for k := range seen {
			delete(seen, k)
		}
		index := head
		for index != SpriteIndexNull {
			if seen[index] {
				return int(index)
			}
			seen[index] = true
			sprite := byIndex[index]
			if sprite == nil {
				break
			}
			index = sprite.Common().Next
		}
	}
	return -1
}

// CheckSpatialIndexCycles follows each sprite's quadrant chain and
// returns the index of the first sprite that links back onto its own
// chain, or -1 when all chains are acyclic
func (s *State) CheckSpatialIndexCycles() int {
	byIndex := s.spriteIndexMap()
	seen := make(map[uint16]bool, 32)
	for i := range s.Sprites {
		for k := range seen {
			delete(seen, k)
		}
		index := s.Sprites[i].Index
		for index != SpriteIndexNull {
			if seen[index] {
				return int(index)
			}
			seen[index] = true
			sprite := byIndex[index]
			if sprite == nil {
				break
			}
			index = sprite.Common().NextInQuadrant
		}
	}
	return -1
}

// FixDisjointSprites finds null sprites that are not reachable from the
// null list head and relinks them at the front of the list. Returns the
// number of sprites reattached.
func (s *State) FixDisjointSprites() int {
	if len(s.SpriteListsHead) <= SpriteListNull {
		return 0
	}
	byIndex := s.spriteIndexMap()
	reachable := make(map[uint16]bool, len(s.Sprites))
	index := s.SpriteListsHead[SpriteListNull]
	for index != SpriteIndexNull && !reachable[index] {
		reachable[index] = true
		sprite := byIndex[index]
		if sprite == nil {
			break
		}
		index = sprite.Common().Next
	}

	fixed := 0
	for i := range s.Sprites {
		null, ok := s.Sprites[i].Sprite.(*NullSprite)
		if !ok || reachable[s.Sprites[i].Index] {
			continue
		}
		// Relink at the head of the null list
		head := s.SpriteListsHead[SpriteListNull]
		null.Next = head
		null.Previous = SpriteIndexNull
		if headSprite := byIndex[head]; headSprite != nil {
			headSprite.Common().Previous = s.Sprites[i].Index
		}
		s.SpriteListsHead[SpriteListNull] = s.Sprites[i].Index
		reachable[s.Sprites[i].Index] = true
		fixed++
	}
	if fixed > 0 {
		common.LogWarn(common.WarnDisjointSprites, fixed)
	}
	return fixed
}

// ClearUnusedSprite resets every field of a null sprite except its list
// linkage, so stale gameplay data never reaches a save
func ClearUnusedSprite(sprite *NullSprite) {
	linkage := SpriteCommon{
		NextInQuadrant:       sprite.NextInQuadrant,
		Next:                 sprite.Next,
		Previous:             sprite.Previous,
		LinkedListTypeOffset: sprite.LinkedListTypeOffset,
		SpriteIndex:          sprite.SpriteIndex,
	}
	sprite.SpriteCommon = linkage
}

// ClearUnusedSprites scrubs every null sprite in the pool and returns
// how many were touched
func (s *State) ClearUnusedSprites() int {
	cleared := 0
	for i := range s.Sprites {
		if null, ok := s.Sprites[i].Sprite.(*NullSprite); ok {
			ClearUnusedSprite(null)
			cleared++
		}
	}
	return cleared
}

// SpriteIndexNull marks the end of a sprite list
const SpriteIndexNull = 0xFFFF
