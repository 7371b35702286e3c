package pkg

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hansbonini/parktools/pkg/park"
	"github.com/hansbonini/parktools/pkg/sawyer"
)

// testState builds a small but fully populated park state
func testState() *park.State {
	return &park.State{
		Scenario: park.ScenarioInfo{
			Name:               "Test Park",
			Details:            "A park for exercising the exporter",
			Filename:           "test_park.sc6",
			ExpansionPackNames: []uint8{'W', 'W', 0},
		},
		Unk13CA740: 0x5A,
		Date: park.GameDate{
			ElapsedMonths: 14,
			CurrentDay:    9,
			Ticks:         123456,
			GameTicks:     123456,
			SrandSeed0:    0xDEAD,
			SrandSeed1:    0xBEEF,
		},
		Objects: []park.ObjectRef{
			{Slot: 0, Flags: 0x87, Name: "PKENT1", Checksum: 0x1111},
		},
		TileElements: []park.TileElement{
			{Type: TileElementTypeSurface, Flags: TileElementFlagLastOfTile, BaseHeight: 14},
			{Type: TileElementTypeSurface, Flags: 0, BaseHeight: 14},
			{Type: TileElementTypeTrack, Flags: TileElementFlagLastOfTile, BaseHeight: 16},
		},
		NextFreeTileElementPointerIndex: 3,
		Sprites: []park.SpriteSlot{
			{Index: 0, Sprite: &park.Peep{
				SpriteCommon: park.SpriteCommon{SpriteIndex: 0, X: 100, Y: 200, Z: 14,
					Next: park.SpriteIndexNull, Previous: park.SpriteIndexNull,
					NextInQuadrant: park.SpriteIndexNull},
				Energy: 96, Happiness: 180,
			}},
			{Index: 1, Sprite: &park.Duck{
				SpriteCommon: park.SpriteCommon{SpriteIndex: 1, X: 50, Y: 60, Z: 0,
					Next: park.SpriteIndexNull, Previous: park.SpriteIndexNull,
					NextInQuadrant: park.SpriteIndexNull},
				Frame: 2, TargetX: 55, TargetY: 66,
			}},
		},
		SpriteListsHead:  []uint16{park.SpriteIndexNull, park.SpriteIndexNull, 0, 1, park.SpriteIndexNull, park.SpriteIndexNull},
		SpriteListsCount: []uint16{9998, 0, 1, 1, 0, 0},
		Park: park.Park{
			Name:   0xBEE5,
			Rating: 850,
			Entrances: []park.ParkEntrance{
				{X: 1024, Y: 512, Z: 14, Direction: 2},
			},
			PeepSpawns: []park.PeepSpawn{{X: 1050, Y: 500, Z: 224, Direction: 0}},
		},
		Finance: park.Finance{
			Cash:        200000,
			InitialCash: 100000,
			CurrentLoan: 50000,
			MaximumLoan: 300000,
		},
		Research: park.Research{
			RideTypes: []int{0, 5},
			List:      []park.ResearchListItem{{RawValue: 0x42, Category: 1}},
		},
		Guests: park.Guests{GuestsInPark: 1},
		Rides: []*park.Ride{
			{
				Index: 0,
				Type:  2,
				Stations: []park.Station{
					{Start: &park.XY{X: 5, Y: 5}, Entrance: &park.XY{X: 5, Y: 6}},
				},
				Measurement: &park.Measurement{LastUseTick: 99, Velocity: []uint8{10}},
			},
		},
		News:    []park.NewsEntry{{Type: 1, Text: "Test Park has opened"}},
		Strings: []string{"Dynamite Blaster"},
	}
}

// readChunks splits a serialized file into its chunk payload sizes and
// returns the trailing checksum
func readChunks(t *testing.T, data []byte) (sizes []int, checksum uint32) {
	t.Helper()
	body := data[:len(data)-4]
	checksum = binary.LittleEndian.Uint32(data[len(data)-4:])
	for offset := 0; offset < len(body); {
		if offset+5 > len(body) {
			t.Fatalf("truncated chunk header at offset %d", offset)
		}
		encoding := sawyer.Encoding(body[offset])
		length := int(binary.LittleEndian.Uint32(body[offset+1 : offset+5]))
		offset += 5
		if offset+length > len(body) {
			t.Fatalf("chunk at offset %d overruns file", offset-5)
		}
		decoded, err := sawyer.Decode(body[offset:offset+length], encoding)
		if err != nil {
			t.Fatalf("chunk decode failed: %v", err)
		}
		sizes = append(sizes, len(decoded))
		offset += length
	}
	return sizes, checksum
}

func TestSaveGameChunkLayout(t *testing.T) {
	e := NewS6Exporter()
	if err := e.Export(testState()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	var buf bytes.Buffer
	if err := e.Save(&buf, false); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sizes, checksum := readChunks(t, buf.Bytes())
	want := []int{headerChunkSize, objectsChunkSize, dateRandChunkSize, tileElementsSize, savedGameTailSize}
	if diff := cmp.Diff(want, sizes); diff != "" {
		t.Errorf("saved game chunk sizes mismatch (-want +got):\n%s", diff)
	}
	if got := sawyer.Checksum(buf.Bytes()[:buf.Len()-4]); got != checksum {
		t.Errorf("stored checksum 0x%08X, recomputed 0x%08X", checksum, got)
	}
	if e.Data.Header.Type != S6TypeSavedGame {
		t.Errorf("header type = %d, want saved game", e.Data.Header.Type)
	}
}

func TestSaveScenarioChunkLayout(t *testing.T) {
	e := NewS6Exporter()
	if err := e.Export(testState()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	var buf bytes.Buffer
	if err := e.Save(&buf, true); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sizes, _ := readChunks(t, buf.Bytes())
	want := []int{
		headerChunkSize, infoChunkSize, objectsChunkSize, dateRandChunkSize, tileElementsSize,
		tailCoreSize, 4, 8, 2, 1082, 16, 4, tailRestSize,
	}
	if diff := cmp.Diff(want, sizes); diff != "" {
		t.Errorf("scenario chunk sizes mismatch (-want +got):\n%s", diff)
	}
	if e.Data.Header.Type != S6TypeScenario {
		t.Errorf("header type = %d, want scenario", e.Data.Header.Type)
	}
}

func TestExportDeterministic(t *testing.T) {
	state := testState()

	var first, second bytes.Buffer
	e1 := NewS6Exporter()
	if err := e1.Export(state); err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	if err := e1.Save(&first, false); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	e2 := NewS6Exporter()
	if err := e2.Export(state); err != nil {
		t.Fatalf("second export failed: %v", err)
	}
	if err := e2.Save(&second, false); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("identical state produced different files")
	}
}

func TestExportClearsStaleData(t *testing.T) {
	e := NewS6Exporter()

	// Simulate a reused exporter with junk from a previous park
	e.Data.Rest.Rides[200].Type = 3
	e.Data.Objects[500] = ObjectEntry{Flags: 1, Checksum: 2}
	e.Data.Core.Sprites[5000][0] = SpriteIdentifierPeep
	e.Data.Rest.Banners[100].StringIdx = 77

	if err := e.Export(testState()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if e.Data.Rest.Rides[200].Type != RideTypeNull {
		t.Error("stale ride slot survived export")
	}
	if e.Data.Objects[500].Flags != 0xFFFFFFFF {
		t.Error("stale object entry survived export")
	}
	if e.Data.Core.Sprites[5000][0] != SpriteIdentifierNull {
		t.Error("stale sprite slot survived export")
	}
	if e.Data.Rest.Banners[100].StringIdx != 0 {
		t.Error("stale banner survived export")
	}
}

func TestExportFieldSemantics(t *testing.T) {
	state := testState()
	e := NewS6Exporter()
	if err := e.Export(state); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if e.Data.Header.Version != S6Version {
		t.Errorf("version = %d, want %d", e.Data.Header.Version, S6Version)
	}
	if e.Data.Header.MagicNumber != S6MagicNumber {
		t.Errorf("magic = 0x%08X, want 0x%08X", e.Data.Header.MagicNumber, S6MagicNumber)
	}
	if got := DecryptMoney(e.Data.Rest.Cash); got != state.Finance.Cash {
		t.Errorf("decrypted cash = %d, want %d", got, state.Finance.Cash)
	}
	wantHash := LoanHash(state.Finance.InitialCash, state.Finance.CurrentLoan, state.Finance.MaximumLoan)
	if e.Data.Rest.LoanHash != wantHash {
		t.Errorf("loan hash = 0x%08X, want 0x%08X", e.Data.Rest.LoanHash, wantHash)
	}
	if e.Data.Rest.RideCount != 1 {
		t.Errorf("ride count = %d, want 1", e.Data.Rest.RideCount)
	}
	if e.Data.Rest.GameVersionNumber != S6GameVersion {
		t.Errorf("game version = %d, want %d", e.Data.Rest.GameVersionNumber, S6GameVersion)
	}
	if e.Data.Rest.Unk13CA740 != 0x5A {
		t.Errorf("unk_13CA740 = 0x%02X, want 0x5A", e.Data.Rest.Unk13CA740)
	}
	if got := e.Data.Rest.SavedExpansionPackNames[:3]; got[0] != 'W' || got[1] != 'W' || got[2] != 0 {
		t.Errorf("expansion pack names prefix = %v, want [87 87 0]", got)
	}

	// Unused park entrance slots use the null location, not zero
	if e.Data.Rest.ParkEntranceX[1] != LocationNull {
		t.Errorf("unused entrance X = %d, want null location", e.Data.Rest.ParkEntranceX[1])
	}
	if e.Data.Rest.ParkEntranceX[0] != 1024 {
		t.Errorf("entrance 0 X = %d, want 1024", e.Data.Rest.ParkEntranceX[0])
	}
	// Spawn z is converted from world units; unused slots use the
	// undefined sentinel
	if e.Data.Core.PeepSpawns[0].Z != 14 {
		t.Errorf("spawn 0 Z = %d, want 14", e.Data.Core.PeepSpawns[0].Z)
	}
	if e.Data.Core.PeepSpawns[1].X != PeepSpawnUndefined {
		t.Errorf("unused spawn X = %d, want undefined", e.Data.Core.PeepSpawns[1].X)
	}

	// Sprite pool: slot 1 carries the duck, untouched slots are null
	if e.Data.Core.Sprites[1][0] != SpriteIdentifierMisc {
		t.Errorf("sprite 1 identifier = %d, want misc", e.Data.Core.Sprites[1][0])
	}
	if e.Data.Core.Sprites[1][1] != MiscSpriteDuck {
		t.Errorf("sprite 1 type = %d, want duck", e.Data.Core.Sprites[1][1])
	}
	if e.Data.Core.Sprites[2][0] != SpriteIdentifierNull {
		t.Errorf("sprite 2 identifier = %d, want null", e.Data.Core.Sprites[2][0])
	}
}

func TestSaveWithPackedObjectsRequiresRepository(t *testing.T) {
	e := NewS6Exporter()
	e.ExportObjectsList = []string{"PKENT1"}
	if err := e.Export(testState()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if e.Data.Header.NumPackedObjects != 1 {
		t.Errorf("NumPackedObjects = %d, want 1", e.Data.Header.NumPackedObjects)
	}
	var buf bytes.Buffer
	if err := e.Save(&buf, false); err == nil {
		t.Error("expected error when no object repository is configured")
	}
}
