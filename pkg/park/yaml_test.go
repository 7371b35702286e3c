package park

import "testing"

const fixture = `
scenario:
  name: Forest Frontiers
  details: Develop a small park
date:
  elapsed_months: 8
  ticks: 42
objects:
  - slot: 0
    name: PKENT1
    flags: 135
tile_elements:
  - type: 0
    flags: 128
    base_height: 14
    clearance_height: 14
sprites:
  - kind: peep
    index: 0
    x: 100
    y: 200
    happiness: 220
  - kind: duck
    index: 1
    frame: 3
    target_x: 55
  - kind: vehicle
    index: 2
    ride_index: 4
    velocity: 1000
rides:
  - index: 0
    type: 2
    stations:
      - start: {x: 5, y: 5}
        entrance: {x: 5, y: 6}
    measurement:
      last_use_tick: 77
      velocity: [1, 2, 3]
park:
  rating: 900
  entrances:
    - {x: 1024, y: 512, z: 14, direction: 2}
`

func TestParseFixture(t *testing.T) {
	state, err := Parse([]byte(fixture))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if state.Scenario.Name != "Forest Frontiers" {
		t.Errorf("scenario name = %q", state.Scenario.Name)
	}
	if state.Date.ElapsedMonths != 8 || state.Date.Ticks != 42 {
		t.Errorf("date = %+v", state.Date)
	}
	if len(state.Objects) != 1 || state.Objects[0].Name != "PKENT1" {
		t.Errorf("objects = %+v", state.Objects)
	}
	if len(state.TileElements) != 1 || state.TileElements[0].BaseHeight != 14 {
		t.Errorf("tile elements = %+v", state.TileElements)
	}

	if len(state.Sprites) != 3 {
		t.Fatalf("sprites = %d, want 3", len(state.Sprites))
	}
	peep, ok := state.Sprites[0].Sprite.(*Peep)
	if !ok {
		t.Fatalf("sprite 0 is %T, want *Peep", state.Sprites[0].Sprite)
	}
	if peep.X != 100 || peep.Happiness != 220 {
		t.Errorf("peep = x %d happiness %d", peep.X, peep.Happiness)
	}
	duck, ok := state.Sprites[1].Sprite.(*Duck)
	if !ok {
		t.Fatalf("sprite 1 is %T, want *Duck", state.Sprites[1].Sprite)
	}
	if duck.Frame != 3 || duck.TargetX != 55 {
		t.Errorf("duck = %+v", duck)
	}
	vehicle, ok := state.Sprites[2].Sprite.(*Vehicle)
	if !ok {
		t.Fatalf("sprite 2 is %T, want *Vehicle", state.Sprites[2].Sprite)
	}
	if vehicle.RideIndex != 4 || vehicle.Velocity != 1000 {
		t.Errorf("vehicle = ride %d velocity %d", vehicle.RideIndex, vehicle.Velocity)
	}

	if len(state.Rides) != 1 {
		t.Fatalf("rides = %d, want 1", len(state.Rides))
	}
	ride := state.Rides[0]
	if ride.Stations[0].Entrance == nil || ride.Stations[0].Entrance.Y != 6 {
		t.Errorf("ride station entrance = %+v", ride.Stations[0].Entrance)
	}
	if ride.Measurement == nil || ride.Measurement.LastUseTick != 77 {
		t.Errorf("ride measurement = %+v", ride.Measurement)
	}
	if ride.Measurement.NumItems() != 3 {
		t.Errorf("measurement NumItems = %d, want 3", ride.Measurement.NumItems())
	}

	if state.Park.Rating != 900 || len(state.Park.Entrances) != 1 {
		t.Errorf("park = %+v", state.Park)
	}
}

func TestParseUnknownSpriteKind(t *testing.T) {
	_, err := Parse([]byte("sprites:\n  - kind: dragon\n    index: 0\n"))
	if err == nil {
		t.Error("expected error for unknown sprite kind")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte(":\n\t- broken"))
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}
