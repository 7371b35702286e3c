package pkg

import (
	"sort"

	"github.com/hansbonini/parktools/pkg/common"
	"github.com/hansbonini/parktools/pkg/park"
)

// exportRideMeasurements assigns the limited measurement slots to the
// most recently used recordings. Slots reference their ride and rides
// reference their slot, so both directions survive the save.
func (e *S6Exporter) exportRideMeasurements(rides []*park.Ride) {
	for i := range e.Data.Rest.RideMeasurements {
		e.Data.Rest.RideMeasurements[i] = RideMeasurement{RideIndex: RideIDNull}
	}

	withMeasurement := make([]*park.Ride, 0, len(rides))
	for _, ride := range rides {
		if ride != nil && ride.Measurement != nil {
			withMeasurement = append(withMeasurement, ride)
		}
	}
	sort.SliceStable(withMeasurement, func(i, j int) bool {
		return withMeasurement[i].Measurement.LastUseTick > withMeasurement[j].Measurement.LastUseTick
	})
	if len(withMeasurement) > MaxRideMeasurements {
		common.LogWarn(common.WarnMeasurementsDropped, len(withMeasurement)-MaxRideMeasurements)
		withMeasurement = withMeasurement[:MaxRideMeasurements]
	}

	for slot, ride := range withMeasurement {
		e.exportRideMeasurement(&e.Data.Rest.RideMeasurements[slot], ride)
		if ride.Index >= 0 && ride.Index < MaxRides {
			e.Data.Rest.Rides[ride.Index].MeasurementIndex = uint8(slot)
		}
		common.LogDebug(common.DebugMeasurementKept, slot, ride.Index, ride.Measurement.LastUseTick)
	}
}

// exportRideMeasurement transcodes one recorded data series
func (e *S6Exporter) exportRideMeasurement(dst *RideMeasurement, ride *park.Ride) {
	src := ride.Measurement
	dst.RideIndex = common.SafeIntToUint8(ride.Index)
	dst.Flags = src.Flags
	dst.LastUseTick = src.LastUseTick
	dst.CurrentItem = src.CurrentItem
	dst.VehicleIndex = src.VehicleIndex
	dst.CurrentStation = src.CurrentStation

	numItems := src.NumItems()
	if numItems > RideMeasurementMaxItems {
		numItems = RideMeasurementMaxItems
	}
	dst.NumItems = uint16(numItems)

	copy(dst.Vertical[:], src.Vertical)
	copy(dst.Lateral[:], src.Lateral)
	copy(dst.Velocity[:], src.Velocity)
	copy(dst.Altitude[:], src.Altitude)
}
