package pkg

import (
	"testing"

	"github.com/hansbonini/parktools/pkg/park"
)

func rideWithMeasurement(index int, lastUseTick uint32) *park.Ride {
	return &park.Ride{
		Index: index,
		Type:  2,
		Measurement: &park.Measurement{
			LastUseTick: lastUseTick,
			Velocity:    []uint8{1, 2, 3},
			Altitude:    []uint8{4, 5, 6},
		},
	}
}

func TestMeasurementEvictionKeepsMostRecent(t *testing.T) {
	ticks := []uint32{10, 50, 5, 90, 30}
	rides := make([]*park.Ride, 0, len(ticks)+1)
	for i, tick := range ticks {
		rides = append(rides, rideWithMeasurement(i, tick))
	}
	// Rides without measurements never consume slots
	rides = append(rides, &park.Ride{Index: 9, Type: 3})

	e := NewS6Exporter()
	e.exportRideMeasurements(rides)

	slots := e.Data.Rest.RideMeasurements
	wantOrder := []uint8{3, 1, 4, 0, 2} // ticks 90, 50, 30, 10, 5
	for slot, wantRide := range wantOrder {
		if slots[slot].RideIndex != wantRide {
			t.Errorf("slot %d holds ride %d, want ride %d", slot, slots[slot].RideIndex, wantRide)
		}
	}
	for slot := len(wantOrder); slot < MaxRideMeasurements; slot++ {
		if slots[slot].RideIndex != RideIDNull {
			t.Errorf("slot %d holds ride %d, want empty", slot, slots[slot].RideIndex)
		}
	}
}

func TestMeasurementForwardReference(t *testing.T) {
	rides := []*park.Ride{
		rideWithMeasurement(7, 100),
		rideWithMeasurement(3, 200),
	}
	e := NewS6Exporter()
	e.exportRides(rides)
	e.exportRideMeasurements(rides)

	if e.Data.Rest.Rides[3].MeasurementIndex != 0 {
		t.Errorf("ride 3 measurement index = %d, want 0", e.Data.Rest.Rides[3].MeasurementIndex)
	}
	if e.Data.Rest.Rides[7].MeasurementIndex != 1 {
		t.Errorf("ride 7 measurement index = %d, want 1", e.Data.Rest.Rides[7].MeasurementIndex)
	}
	if e.Data.Rest.RideMeasurements[0].RideIndex != 3 {
		t.Errorf("slot 0 back reference = %d, want 3", e.Data.Rest.RideMeasurements[0].RideIndex)
	}
}

func TestMeasurementOverflowDropsOldest(t *testing.T) {
	rides := make([]*park.Ride, 0, MaxRideMeasurements+2)
	for i := 0; i < MaxRideMeasurements+2; i++ {
		rides = append(rides, rideWithMeasurement(i, uint32(100+i)))
	}
	e := NewS6Exporter()
	e.exportRideMeasurements(rides)

	// The two oldest recordings (lowest ticks) lose their slots
	kept := make(map[uint8]bool)
	for _, slot := range e.Data.Rest.RideMeasurements {
		if slot.RideIndex != RideIDNull {
			kept[slot.RideIndex] = true
		}
	}
	if len(kept) != MaxRideMeasurements {
		t.Fatalf("%d rides kept, want %d", len(kept), MaxRideMeasurements)
	}
	if kept[0] || kept[1] {
		t.Error("oldest recordings kept, expected them dropped")
	}
}

func TestMeasurementSeriesCopied(t *testing.T) {
	ride := rideWithMeasurement(0, 10)
	ride.Measurement.Vertical = []int8{-1, -2}
	ride.Measurement.Lateral = []int8{3, 4}

	e := NewS6Exporter()
	e.exportRideMeasurements([]*park.Ride{ride})

	slot := &e.Data.Rest.RideMeasurements[0]
	if slot.NumItems != 3 {
		t.Errorf("NumItems = %d, want 3", slot.NumItems)
	}
	if slot.Velocity[0] != 1 || slot.Altitude[2] != 6 {
		t.Error("velocity/altitude series not copied")
	}
	if slot.Vertical[1] != -2 || slot.Lateral[0] != 3 {
		t.Error("vertical/lateral series not copied")
	}
}
