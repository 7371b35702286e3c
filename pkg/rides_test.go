package pkg

import (
	"testing"

	"github.com/hansbonini/parktools/pkg/park"
)

func TestInversionsSaturate(t *testing.T) {
	tests := []struct {
		name             string
		rideType         uint8
		inversions       int
		holes            int
		shelteredEighths int
		expected         uint8
	}{
		{"plain", 2, 3, 0, 0, 3},
		{"clamped to 31", 2, 300, 0, 0, 0x1F},
		{"exactly 31", 2, 31, 0, 0, 0x1F},
		{"sheltered eighths in high bits", 2, 3, 0, 5, 3 | 5<<5},
		{"sheltered unaffected by clamp", 2, 300, 0, 7, 0x1F | 7<<5},
		{"mini golf stores holes", park.RideTypeMiniGolf, 0, 18, 0, 18},
		{"mini golf holes clamped", park.RideTypeMiniGolf, 0, 99, 2, 0x1F | 2<<5},
		{"negative clamps to zero", 2, -4, 0, 1, 0 | 1<<5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ride := &park.Ride{
				Type:             tt.rideType,
				Inversions:       tt.inversions,
				Holes:            tt.holes,
				ShelteredEighths: tt.shelteredEighths,
			}
			if got := packInversions(ride); got != tt.expected {
				t.Errorf("packInversions = 0x%02X, want 0x%02X", got, tt.expected)
			}
		})
	}
}

func TestExportRideEntranceSentinels(t *testing.T) {
	e := NewS6Exporter()
	ride := &park.Ride{
		Index: 0,
		Type:  2,
		Stations: []park.Station{
			{
				Start:    &park.XY{X: 10, Y: 12},
				Entrance: &park.XY{X: 0, Y: 0},
				// Exit not yet placed
			},
			{
				Start: &park.XY{X: 14, Y: 12},
			},
		},
	}
	dst := e.exportRide(ride)

	// A placed entrance at tile (0,0) must stay distinct from unset
	if dst.Entrances[0] != (XY8{X: 0, Y: 0}) {
		t.Errorf("entrance 0 = %+v, want (0,0)", dst.Entrances[0])
	}
	if dst.Exits[0] != XY8Undefined() {
		t.Errorf("exit 0 = %+v, want undefined sentinel", dst.Exits[0])
	}
	if dst.Entrances[1] != XY8Undefined() {
		t.Errorf("entrance 1 = %+v, want undefined sentinel", dst.Entrances[1])
	}
	// Station slots beyond the live count stay at the sentinel
	if dst.StationStarts[2] != XY8Undefined() {
		t.Errorf("station start 2 = %+v, want undefined sentinel", dst.StationStarts[2])
	}
	if dst.NumStations != 2 {
		t.Errorf("NumStations = %d, want 2", dst.NumStations)
	}
}

func TestExportRideVehicleSlots(t *testing.T) {
	e := NewS6Exporter()
	ride := &park.Ride{
		Index:    1,
		Type:     5,
		Vehicles: []uint16{100, 200},
	}
	dst := e.exportRide(ride)

	if dst.Vehicles[0] != 100 || dst.Vehicles[1] != 200 {
		t.Errorf("vehicles = %v, want slots 0,1 = 100,200", dst.Vehicles[:2])
	}
	for i := 2; i < MaxVehiclesPerRide; i++ {
		if dst.Vehicles[i] != SpriteIndexNull {
			t.Fatalf("vehicle slot %d = %d, want null sentinel", i, dst.Vehicles[i])
		}
	}
}

func TestEmptyRideSlot(t *testing.T) {
	dst := emptyRide()
	if dst.Type != RideTypeNull {
		t.Errorf("empty ride type = 0x%02X, want 0x%02X", dst.Type, RideTypeNull)
	}
	for i := 0; i < MaxStationsPerRide; i++ {
		if dst.Entrances[i] != XY8Undefined() || dst.Exits[i] != XY8Undefined() {
			t.Errorf("station %d entrance/exit not at sentinel", i)
		}
	}
}

func TestExportRideMeasurementIndexDefault(t *testing.T) {
	e := NewS6Exporter()
	dst := e.exportRide(&park.Ride{Index: 0, Type: 2})
	if dst.MeasurementIndex != 0 {
		t.Errorf("MeasurementIndex = %d, want 0 until a slot is assigned", dst.MeasurementIndex)
	}
}
