package pkg

import (
	"github.com/hansbonini/parktools/pkg/common"
	"github.com/hansbonini/parktools/pkg/park"
)

// emptyRide returns a ride slot in its unused form
func emptyRide() Ride {
	var dst Ride
	dst.Type = RideTypeNull
	for i := range dst.Entrances {
		dst.Entrances[i] = XY8Undefined()
		dst.Exits[i] = XY8Undefined()
	}
	return dst
}

// packXY converts an optional tile coordinate, writing the unset
// sentinel for nil
func packXY(xy *park.XY) XY8 {
	if xy == nil {
		return XY8Undefined()
	}
	return XY8{X: xy.X, Y: xy.Y}
}

// exportRide transcodes one live ride into its packed record
func (e *S6Exporter) exportRide(src *park.Ride) Ride {
	dst := emptyRide()

	dst.Type = src.Type
	dst.Subtype = src.Subtype
	dst.Mode = src.Mode
	dst.ColourSchemeType = src.ColourSchemeType
	for i, vc := range src.VehicleColours {
		if i >= MaxVehiclesPerRide {
			break
		}
		dst.VehicleColours[i] = VehicleColour{BodyColour: vc.Body, TrimColour: vc.Trim}
	}
	dst.Status = src.Status
	dst.Name = src.Name
	dst.NameArguments = src.NameArguments
	dst.OverallView = packXY(src.OverallView)

	numStations := len(src.Stations)
	if numStations > MaxStationsPerRide {
		numStations = MaxStationsPerRide
	}
	for i := 0; i < MaxStationsPerRide; i++ {
		if i >= numStations {
			dst.StationStarts[i] = XY8Undefined()
			continue
		}
		st := &src.Stations[i]
		dst.StationStarts[i] = packXY(st.Start)
		dst.StationHeights[i] = st.Height
		dst.StationLength[i] = st.Length
		dst.StationDepart[i] = st.Depart
		dst.TrainAtStation[i] = st.TrainAtStation
		dst.Entrances[i] = packXY(st.Entrance)
		dst.Exits[i] = packXY(st.Exit)
		dst.LastPeepInQueue[i] = st.LastPeepInQueue
		dst.Length[i] = st.SegmentLength
		dst.Time[i] = st.SegmentTime
		dst.QueueTime[i] = st.QueueTime
		dst.QueueLength[i] = st.QueueLength
	}
	dst.NumStations = uint8(numStations)

	for i := range dst.Vehicles {
		dst.Vehicles[i] = SpriteIndexNull
	}
	for i, v := range src.Vehicles {
		if i >= MaxVehiclesPerRide {
			break
		}
		dst.Vehicles[i] = v
	}

	dst.DepartFlags = src.DepartFlags
	dst.NumVehicles = src.NumVehicles
	dst.NumCarsPerTrain = src.NumCarsPerTrain
	dst.ProposedNumVehicles = src.ProposedNumVehicles
	dst.ProposedNumCarsPerTrain = src.ProposedNumCarsPerTrain
	dst.MaxTrains = src.MaxTrains
	dst.MinMaxCarsPerTrain = src.MinMaxCarsPerTrain
	dst.MinWaitingTime = src.MinWaitingTime
	dst.MaxWaitingTime = src.MaxWaitingTime
	dst.OperationOption = src.OperationOption

	dst.BoatHireReturnDirection = src.BoatHireReturnDirection
	dst.BoatHireReturnPosition = packXY(src.BoatHireReturnPosition)

	dst.SpecialTrackElements = src.SpecialTrackElements

	dst.MaxSpeed = src.MaxSpeed
	dst.AverageSpeed = src.AverageSpeed
	dst.CurrentTestSegment = src.CurrentTestSegment
	dst.AverageSpeedTestTimeout = src.AverageSpeedTestTimeout

	dst.MaxPositiveVerticalG = src.MaxPositiveVerticalG
	dst.MaxNegativeVerticalG = src.MaxNegativeVerticalG
	dst.MaxLateralG = src.MaxLateralG
	dst.PreviousVerticalG = src.PreviousVerticalG
	dst.PreviousLateralG = src.PreviousLateralG
	dst.TestingFlags = src.TestingFlags
	dst.CurTestTrackLocation = packXY(src.CurTestTrackLocation)
	dst.CurTestTrackZ = src.CurTestTrackZ
	dst.CurrentTestStation = src.CurrentTestStation

	dst.TurnCountDefault = src.TurnCountDefault
	dst.TurnCountBanked = src.TurnCountBanked
	dst.TurnCountSloped = src.TurnCountSloped

	dst.Inversions = packInversions(src)

	dst.Drops = src.Drops
	dst.StartDropHeight = src.StartDropHeight
	dst.HighestDropHeight = src.HighestDropHeight
	dst.ShelteredLength = src.ShelteredLength
	dst.Var11C = src.Var11C
	dst.NumShelteredSections = src.NumShelteredSections

	dst.CurNumCustomers = src.CurNumCustomers
	dst.NumCustomersTimeout = src.NumCustomersTimeout
	for i, n := range src.NumCustomers {
		if i >= len(dst.NumCustomers) {
			break
		}
		dst.NumCustomers[i] = n
	}
	dst.TotalCustomers = src.TotalCustomers

	dst.Price = src.Price
	dst.PriceSecondary = src.PriceSecondary

	for i := range dst.ChairliftBullwheelLocation {
		dst.ChairliftBullwheelLocation[i] = XY8Undefined()
	}
	for i, loc := range src.ChairliftBullwheelLocation {
		if i >= len(dst.ChairliftBullwheelLocation) {
			break
		}
		dst.ChairliftBullwheelLocation[i] = packXY(loc)
	}
	for i, z := range src.ChairliftBullwheelZ {
		if i >= len(dst.ChairliftBullwheelZ) {
			break
		}
		dst.ChairliftBullwheelZ[i] = z
	}
	dst.ChairliftBullwheelRotation = src.ChairliftBullwheelRotation

	dst.Ratings = RatingTuple{
		Excitement: src.Excitement,
		Intensity:  src.Intensity,
		Nausea:     src.Nausea,
	}
	dst.Value = src.Value

	dst.Satisfaction = src.Satisfaction
	dst.SatisfactionTimeOut = src.SatisfactionTimeOut
	dst.SatisfactionNext = src.SatisfactionNext

	dst.WindowInvalidateFlags = src.WindowInvalidateFlags

	dst.TotalProfit = src.TotalProfit
	dst.IncomePerHour = src.IncomePerHour
	dst.Profit = src.Profit

	dst.Popularity = src.Popularity
	dst.PopularityTimeOut = src.PopularityTimeOut
	dst.PopularityNext = src.PopularityNext
	dst.NumRiders = src.NumRiders

	dst.MusicTuneID = src.MusicTuneID
	dst.Music = src.Music
	dst.MusicPosition = src.MusicPosition

	dst.SlideInUse = src.SlideInUse
	dst.SlidePeep = src.SlidePeep
	dst.SlidePeepTShirtColour = src.SlidePeepTShirtColour
	dst.SpiralSlideProgress = src.SpiralSlideProgress

	dst.BuildDate = src.BuildDate
	dst.UpkeepCost = src.UpkeepCost
	dst.RaceWinner = src.RaceWinner

	dst.BreakdownReasonPending = src.BreakdownReasonPending
	dst.MechanicStatus = src.MechanicStatus
	dst.Mechanic = src.Mechanic
	dst.InspectionStation = src.InspectionStation
	dst.BrokenVehicle = src.BrokenVehicle
	dst.BrokenCar = src.BrokenCar
	dst.BreakdownReason = src.BreakdownReason

	dst.Reliability = src.Reliability
	dst.UnreliabilityFactor = src.UnreliabilityFactor
	dst.Downtime = src.Downtime
	dst.InspectionInterval = src.InspectionInterval
	dst.LastInspection = src.LastInspection
	for i, d := range src.DowntimeHistory {
		if i >= len(dst.DowntimeHistory) {
			break
		}
		dst.DowntimeHistory[i] = d
	}

	dst.NoPrimaryItemsSold = src.NoPrimaryItemsSold
	dst.NoSecondaryItemsSold = src.NoSecondaryItemsSold

	dst.BreakdownSoundModifier = src.BreakdownSoundModifier
	dst.NotFixedTimeout = src.NotFixedTimeout
	dst.LastCrashType = src.LastCrashType
	dst.ConnectedMessageThrottle = src.ConnectedMessageThrottle

	copy(dst.TrackColourMain[:], src.TrackColourMain)
	copy(dst.TrackColourAdditional[:], src.TrackColourAdditional)
	copy(dst.TrackColourSupports[:], src.TrackColourSupports)

	dst.EntranceStyle = src.EntranceStyle

	dst.VehicleChangeTimeout = src.VehicleChangeTimeout
	dst.NumBlockBrakes = src.NumBlockBrakes
	dst.LiftHillSpeed = src.LiftHillSpeed
	dst.GuestsFavourite = src.GuestsFavourite
	dst.LifecycleFlags = src.LifecycleFlags

	for i, c := range src.VehicleColoursExtended {
		if i >= MaxVehiclesPerRide {
			break
		}
		dst.VehicleColoursExtended[i] = c
	}

	dst.TotalAirTime = src.TotalAirTime
	dst.NumCircuits = src.NumCircuits

	dst.CableLiftX = src.CableLiftX
	dst.CableLiftY = src.CableLiftY
	dst.CableLiftZ = src.CableLiftZ
	dst.CableLift = src.CableLift

	// Left zero here; the measurement pass assigns slots to the rides
	// whose samples are kept
	dst.MeasurementIndex = 0

	common.LogDebug(common.DebugRideExported, src.Index, src.Type, numStations)
	return dst
}

// packInversions builds the shared inversions byte: the count lives in
// the low 5 bits, the sheltered eighths in the top 3. Mini golf stores
// its hole count in place of inversions.
func packInversions(src *park.Ride) uint8 {
	count := src.Inversions
	if src.Type == park.RideTypeMiniGolf {
		count = src.Holes
	}
	if count > 0x1F {
		count = 0x1F
	}
	if count < 0 {
		count = 0
	}
	return uint8(count) | uint8(src.ShelteredEighths&0x7)<<5
}
