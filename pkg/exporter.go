package pkg

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/hansbonini/parktools/pkg/common"
	"github.com/hansbonini/parktools/pkg/park"
	"github.com/hansbonini/parktools/pkg/sawyer"
)

// ObjectRepository supplies the original data of loaded objects so a
// save can embed them for players who lack the object files
type ObjectRepository interface {
	WritePackedObject(w io.Writer, name string) error
}

// S6Exporter transcodes live park state into the classic save format
type S6Exporter struct {
	Data S6Data

	// RemoveTracklessRides blanks ride slots without track on the map
	RemoveTracklessRides bool

	// ExportObjectsList names the objects to embed in the file
	ExportObjectsList []string

	// Objects resolves packed object data, required only when
	// ExportObjectsList is not empty
	Objects ObjectRepository
}

// NewS6Exporter creates an exporter with an empty image
func NewS6Exporter() *S6Exporter {
	return &S6Exporter{}
}

// Export populates the packed image from live park state. The state
// itself is never modified.
func (e *S6Exporter) Export(state *park.State) error {
	data := &e.Data

	data.Header.Version = S6Version
	data.Header.MagicNumber = S6MagicNumber
	data.Header.NumPackedObjects = common.SafeIntToUint16(len(e.ExportObjectsList))

	e.exportScenarioInfo(&state.Scenario)
	e.exportObjects(state.Objects)

	data.DateRand = DateRand{
		ElapsedMonths: state.Date.ElapsedMonths,
		CurrentDay:    state.Date.CurrentDay,
		ScenarioTicks: state.Date.Ticks,
		SrandSeed0:    state.Date.SrandSeed0,
		SrandSeed1:    state.Date.SrandSeed1,
	}

	e.exportTileElements(state)
	e.exportSprites(state)

	data.Core.ParkName = state.Park.Name
	data.Core.ParkNameArgs = state.Park.NameArgs
	data.Core.InitialCash = state.Finance.InitialCash
	data.Core.CurrentLoan = state.Finance.CurrentLoan
	data.Core.ParkFlags = state.Park.Flags
	data.Core.ParkEntranceFee = state.Park.EntranceFee
	data.Core.RCT1ParkEntranceX = state.RCT1.ParkEntranceX
	data.Core.RCT1ParkEntranceY = state.RCT1.ParkEntranceY
	data.Core.RCT1ParkEntranceZ = state.RCT1.ParkEntranceZ
	e.exportPeepSpawns(state.Park.PeepSpawns)
	data.Core.GuestCountChangeModifier = state.Guests.CountChangeModifier
	data.Core.CurrentResearchLevel = state.Research.FundingLevel

	e.exportResearchedRideTypes(&state.Research)
	e.exportResearchedRideEntries(&state.Research)
	e.exportResearchedTrackTypes(&state.Research)

	data.GuestCounts.GuestsInPark = state.Guests.GuestsInPark
	data.GuestCounts.GuestsHeadingForPark = state.Guests.GuestsHeadingForPark

	e.exportExpenditureTable(&state.Finance)

	data.LastGuests.LastGuestsInPark = state.Guests.LastGuestsInPark
	data.LastGuests.HandymanColour = state.Staff.HandymanColour
	data.LastGuests.MechanicColour = state.Staff.MechanicColour
	data.LastGuests.SecurityColour = state.Staff.SecurityColour

	e.exportResearchedSceneryItems(&state.Research)

	data.ParkRating = state.Park.Rating
	copy(data.RatingHistories.ParkRatingHistory[:], state.Park.RatingHistory)
	copy(data.RatingHistories.GuestsInParkHistory[:], state.Park.GuestsInParkHistory)

	e.exportResearch(state)
	e.exportMarketingCampaigns(state.Campaigns)

	copyInt32History(data.BalanceHistory.Values[:], state.Finance.BalanceHistory)
	data.ExpenditureCurrent = ExpenditureCurrent{
		CurrentExpenditure:          state.Finance.CurrentExpenditure,
		CurrentProfit:               state.Finance.CurrentProfit,
		WeeklyProfitAverageDividend: state.Finance.WeeklyProfitAverageDividend,
		WeeklyProfitAverageDivisor:  state.Finance.WeeklyProfitAverageDivisor,
	}
	copyInt32History(data.WeeklyProfitHistory.Values[:], state.Finance.WeeklyProfitHistory)
	data.ParkValue = state.Park.Value
	copyInt32History(data.ParkValueHistory.Values[:], state.Park.ValueHistory)

	rest := &data.Rest
	rest.CompletedCompanyValue = state.Scenario.CompletedCompanyValue
	rest.TotalAdmissions = state.Park.TotalAdmissions
	rest.IncomeFromAdmissions = state.Park.IncomeFromAdmissions
	rest.CompanyValue = state.Park.CompanyValue
	copy(rest.PeepWarningThrottle[:], state.Park.PeepWarningThrottle)
	e.exportAwards(state.Awards)
	rest.LandPrice = state.Park.LandPrice
	rest.ConstructionRightsPrice = state.Park.ConstructionRightsPrice
	rest.GameVersionNumber = S6GameVersion
	rest.CompletedCompanyValueRecord = state.Scenario.CompletedCompanyValueRecord
	rest.LoanHash = LoanHash(state.Finance.InitialCash, state.Finance.CurrentLoan, state.Finance.MaximumLoan)
	rest.RideCount = countRides(state.Rides)
	rest.HistoricalProfit = state.Finance.HistoricalProfit
	encodeString(rest.ScenarioCompletedName[:], state.Scenario.CompletedName)
	rest.Cash = EncryptMoney(state.Finance.Cash)
	rest.ParkRatingCasualtyPenalty = state.Park.RatingCasualtyPenalty
	rest.MapSizeUnits = state.Geometry.SizeUnits
	rest.MapSizeMinus2 = state.Geometry.SizeMinus2
	rest.MapSize = state.Geometry.Size
	rest.MapMaxXY = state.Geometry.MaxXY
	rest.SamePriceThroughout = state.Park.SamePriceThroughout
	rest.SuggestedMaxGuests = state.Park.SuggestedMaxGuests
	rest.ParkRatingWarningDays = state.Park.RatingWarningDays
	rest.LastEntranceStyle = state.Park.LastEntranceStyle
	rest.RCT1WaterColour = state.RCT1.WaterColour

	e.exportResearchList(&state.Research)

	rest.MapBaseZ = state.Geometry.BaseZ
	encodeString(rest.ScenarioName[:], state.Scenario.Name)
	encodeString(rest.ScenarioDescription[:], state.Scenario.Details)
	rest.CurrentInterestRate = state.Finance.CurrentInterestRate
	rest.SamePriceThroughoutExtended = state.Park.SamePriceThroughoutExtended

	e.exportParkEntrances(state.Park.Entrances)

	encodeString(rest.ScenarioFilename[:], state.Scenario.Filename)
	copy(rest.SavedExpansionPackNames[:], state.Scenario.ExpansionPackNames)

	e.exportBanners(state.Banners)
	e.exportCustomStrings(state.Strings)

	rest.GameTicks1 = state.Date.GameTicks

	e.exportRides(state.Rides)

	rest.SavedAge = state.SavedView.Age
	rest.SavedViewX = state.SavedView.X
	rest.SavedViewY = state.SavedView.Y
	rest.SavedViewZoom = state.SavedView.Zoom
	rest.SavedViewRotation = state.SavedView.Rotation

	e.exportMapAnimations(state.MapAnimations)
	e.exportRideRatingsCalcData(&state.RideRatings)
	e.exportRideMeasurements(state.Rides)

	rest.NextGuestIndex = state.Guests.NextGuestIndex
	rest.GrassAndSceneryTilepos = state.Geometry.GrassAndSceneryTilepos

	e.exportStaff(&state.Staff)
	rest.Unk13CA740 = state.Unk13CA740
	e.exportClimate(&state.Climate)
	e.exportNewsItems(state.News)

	rest.RCT1ScenarioFlags = state.RCT1.ScenarioFlags
	rest.WidePathTileLoopX = state.Geometry.WidePathTileLoopX
	rest.WidePathTileLoopY = state.Geometry.WidePathTileLoopY

	return nil
}

// SaveGame exports state and writes a saved game to a file
func (e *S6Exporter) SaveGame(path string, state *park.State) error {
	return e.saveFile(path, state, false)
}

// SaveScenario exports state and writes a scenario to a file
func (e *S6Exporter) SaveScenario(path string, state *park.State) error {
	return e.saveFile(path, state, true)
}

func (e *S6Exporter) saveFile(path string, state *park.State, isScenario bool) error {
	if err := e.Export(state); err != nil {
		return common.FormatError(common.ErrFailedToExportState, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateOutputFile, err)
	}
	defer f.Close()
	return e.Save(f, isScenario)
}

// Save writes the exported image as a chunked, checksummed file. The
// image must have been populated with Export first.
func (e *S6Exporter) Save(w io.Writer, isScenario bool) error {
	if isScenario {
		e.Data.Header.Type = S6TypeScenario
	} else {
		e.Data.Header.Type = S6TypeSavedGame
	}

	e.fixGhostTileElements()
	if e.RemoveTracklessRides {
		e.removeTracklessRides()
	}

	// The checksum covers every preceding byte, so buffer the whole
	// file before anything reaches the caller's stream
	var buf bytes.Buffer
	cw := sawyer.NewChunkWriter(&buf)

	if err := e.writeRegion(cw, sawyer.EncodingRotate, e.Data.Header); err != nil {
		return err
	}
	if isScenario {
		if err := e.writeRegion(cw, sawyer.EncodingRotate, e.Data.Info); err != nil {
			return err
		}
	}
	if len(e.ExportObjectsList) > 0 {
		if err := e.writePackedObjects(&buf); err != nil {
			return common.FormatError(common.ErrFailedToPackObjects, err)
		}
	}
	if err := e.writeRegion(cw, sawyer.EncodingRotate, e.Data.Objects); err != nil {
		return err
	}
	if err := e.writeRegion(cw, sawyer.EncodingRLECompressed, e.Data.DateRand); err != nil {
		return err
	}
	if err := e.writeRegion(cw, sawyer.EncodingRLECompressed, e.Data.TileElements); err != nil {
		return err
	}

	if isScenario {
		regions := []interface{}{
			e.Data.Core,
			e.Data.GuestCounts,
			e.Data.LastGuests,
			e.Data.ParkRating,
			e.Data.Research,
			e.Data.ExpenditureCurrent,
			e.Data.ParkValue,
			e.Data.Rest,
		}
		for _, region := range regions {
			if err := e.writeRegion(cw, sawyer.EncodingRLECompressed, region); err != nil {
				return err
			}
		}
	} else {
		// Saved games store the whole game state tail as one chunk
		tail, err := marshalRegions(
			e.Data.Core,
			e.Data.ResearchBitmasks,
			e.Data.GuestCounts,
			e.Data.ExpenditureTable,
			e.Data.LastGuests,
			e.Data.SceneryItemBitmask,
			e.Data.ParkRating,
			e.Data.RatingHistories,
			e.Data.Research,
			e.Data.BalanceHistory,
			e.Data.ExpenditureCurrent,
			e.Data.WeeklyProfitHistory,
			e.Data.ParkValue,
			e.Data.ParkValueHistory,
			e.Data.Rest,
		)
		if err != nil {
			return err
		}
		if len(tail) != savedGameTailSize {
			return common.FormatErrorString(common.ErrFailedToWriteSaveFile,
				"game state tail is %d bytes, expected %d", len(tail), savedGameTailSize)
		}
		if err := cw.WriteChunk(tail, sawyer.EncodingRLECompressed); err != nil {
			return common.FormatError(common.ErrFailedToWriteChunk, err)
		}
	}

	checksum := sawyer.Checksum(buf.Bytes())
	common.LogDebug(common.DebugChecksum, checksum, buf.Len())
	if err := binary.Write(&buf, binary.LittleEndian, checksum); err != nil {
		return common.FormatError(common.ErrFailedToWriteChecksum, err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return common.FormatError(common.ErrFailedToWriteSaveFile, err)
	}
	return nil
}

// writeRegion serializes a region struct and writes it as one chunk
func (e *S6Exporter) writeRegion(cw *sawyer.ChunkWriter, encoding sawyer.Encoding, region interface{}) error {
	raw, err := marshalRegions(region)
	if err != nil {
		return err
	}
	if err := cw.WriteChunk(raw, encoding); err != nil {
		return common.FormatError(common.ErrFailedToWriteChunk, err)
	}
	return nil
}

// marshalRegions serializes fixed width structs back to back in little
// endian order
func marshalRegions(regions ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	for _, region := range regions {
		if err := binary.Write(&buf, binary.LittleEndian, region); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// writePackedObjects embeds object data for every listed object
func (e *S6Exporter) writePackedObjects(w io.Writer) error {
	if e.Objects == nil {
		return common.FormatErrorString(common.ErrNoObjectRepository, "%d objects requested", len(e.ExportObjectsList))
	}
	for _, name := range e.ExportObjectsList {
		if err := e.Objects.WritePackedObject(w, name); err != nil {
			return err
		}
	}
	return nil
}

func (e *S6Exporter) exportScenarioInfo(src *park.ScenarioInfo) {
	info := &e.Data.Info
	info.EditorStep = src.EditorStep
	info.Category = src.Category
	info.ObjectiveType = src.ObjectiveType
	info.ObjectiveArg1 = src.ObjectiveArg1
	info.ObjectiveArg2 = src.ObjectiveArg2
	info.ObjectiveArg3 = src.ObjectiveArg3
	encodeString(info.Name[:], src.Name)
	encodeString(info.Details[:], src.Details)
	info.SourceGame = src.SourceGame
	info.SourceIndex = src.SourceIndex

	research := &e.Data.Research
	research.ObjectiveType = src.ObjectiveType
	research.ObjectiveYear = src.ObjectiveYear
	research.ObjectiveCurrency = src.ObjectiveCurrency
	research.ObjectiveGuests = src.ObjectiveGuests
}

// exportObjects fills the object entry table. Empty slots are 0xFF
// filled so loaders recognize them as unused.
func (e *S6Exporter) exportObjects(objects []park.ObjectRef) {
	for i := range e.Data.Objects {
		e.Data.Objects[i] = ObjectEntry{Flags: 0xFFFFFFFF, Checksum: 0xFFFFFFFF}
		for j := range e.Data.Objects[i].Name {
			e.Data.Objects[i].Name[j] = 0xFF
		}
	}
	for _, obj := range objects {
		if obj.Slot < 0 || obj.Slot >= MaxObjectEntries {
			continue
		}
		entry := ObjectEntry{Flags: obj.Flags, Checksum: obj.Checksum}
		name := obj.Name
		if len(name) > len(entry.Name) {
			name = name[:len(entry.Name)]
		}
		for j := range entry.Name {
			entry.Name[j] = ' '
		}
		copy(entry.Name[:], name)
		e.Data.Objects[obj.Slot] = entry
	}
}

func (e *S6Exporter) exportTileElements(state *park.State) {
	for i := range e.Data.TileElements {
		e.Data.TileElements[i] = TileElement{}
	}
	count := len(state.TileElements)
	if count > MaxTileElements {
		count = MaxTileElements
	}
	for i := 0; i < count; i++ {
		src := &state.TileElements[i]
		e.Data.TileElements[i] = TileElement{
			Type:            src.Type,
			Flags:           src.Flags,
			BaseHeight:      src.BaseHeight,
			ClearanceHeight: src.ClearanceHeight,
			Properties:      src.Properties,
		}
	}
	next := state.NextFreeTileElementPointerIndex
	if next > uint32(count) {
		next = uint32(count)
	}
	e.Data.Core.NextFreeTileElementPointerIndex = next
}

// exportPeepSpawns writes the spawn table, marking unused slots with
// the undefined sentinel rather than zero, which is a valid location
func (e *S6Exporter) exportPeepSpawns(spawns []park.PeepSpawn) {
	if len(spawns) > MaxPeepSpawns {
		common.LogWarn(common.WarnTooManyPeepSpawns, len(spawns), MaxPeepSpawns)
		spawns = spawns[:MaxPeepSpawns]
	}
	for i := range e.Data.Core.PeepSpawns {
		if i < len(spawns) {
			// The packed z is stored in small units, not world units
			e.Data.Core.PeepSpawns[i] = PeepSpawn{
				X:         spawns[i].X,
				Y:         spawns[i].Y,
				Z:         uint8(spawns[i].Z / 16),
				Direction: spawns[i].Direction,
			}
		} else {
			e.Data.Core.PeepSpawns[i] = PeepSpawn{X: PeepSpawnUndefined, Y: PeepSpawnUndefined}
		}
	}
}

func (e *S6Exporter) exportExpenditureTable(finance *park.Finance) {
	values := e.Data.ExpenditureTable.Values[:]
	for i := range values {
		values[i] = 0
	}
	for month, row := range finance.ExpenditureTable {
		if month >= ExpenditureHistoryMonths {
			break
		}
		for expType, value := range row {
			if expType >= ExpenditureTypeCount {
				break
			}
			values[month*ExpenditureTypeCount+expType] = value
		}
	}
}

func (e *S6Exporter) exportResearch(state *park.State) {
	research := &e.Data.Research
	research.ActiveResearchTypes = state.Research.ActiveResearchTypes
	research.ResearchProgressStage = state.Research.ProgressStage
	research.LastResearchedItemSubject = state.Research.LastResearchedItemSubject
	research.NextResearchItem = state.Research.NextItem
	research.ResearchProgress = state.Research.Progress
	research.NextResearchCategory = state.Research.NextCategory
	research.NextResearchExpectedDay = state.Research.ExpectedDay
	research.NextResearchExpectedMonth = state.Research.ExpectedMonth
	research.GuestInitialHappiness = state.Guests.InitialHappiness
	research.ParkSize = state.Park.Size
	research.GuestGenerationProbability = state.Guests.GenerationProbability
	research.TotalRideValueForMoney = totalRideValue(state.Rides)
	research.MaximumLoan = state.Finance.MaximumLoan
	research.GuestInitialCash = state.Guests.InitialCash
	research.GuestInitialHunger = state.Guests.InitialHunger
	research.GuestInitialThirst = state.Guests.InitialThirst
}

func (e *S6Exporter) exportAwards(awards []park.AwardEntry) {
	if len(awards) > MaxAwards {
		common.LogWarn(common.WarnTooManyAwards, len(awards), MaxAwards)
		awards = awards[:MaxAwards]
	}
	for i := range e.Data.Rest.Awards {
		e.Data.Rest.Awards[i] = Award{}
		if i < len(awards) {
			e.Data.Rest.Awards[i] = Award{Time: awards[i].Time, Type: awards[i].Type}
		}
	}
}

// exportParkEntrances writes the entrance table, marking unused slots
// with the null location sentinel
func (e *S6Exporter) exportParkEntrances(entrances []park.ParkEntrance) {
	if len(entrances) > MaxParkEntrances {
		common.LogWarn(common.WarnTooManyParkEntrances, len(entrances), MaxParkEntrances)
		entrances = entrances[:MaxParkEntrances]
	}
	rest := &e.Data.Rest
	for i := 0; i < MaxParkEntrances; i++ {
		if i < len(entrances) {
			rest.ParkEntranceX[i] = entrances[i].X
			rest.ParkEntranceY[i] = entrances[i].Y
			rest.ParkEntranceZ[i] = entrances[i].Z
			rest.ParkEntranceDirection[i] = entrances[i].Direction
		} else {
			rest.ParkEntranceX[i] = LocationNull
			rest.ParkEntranceY[i] = LocationNull
			rest.ParkEntranceZ[i] = 0
			rest.ParkEntranceDirection[i] = 0
		}
	}
}

func (e *S6Exporter) exportBanners(banners []park.BannerEntry) {
	if len(banners) > MaxBanners {
		common.LogWarn(common.WarnTooManyBanners, len(banners), MaxBanners)
		banners = banners[:MaxBanners]
	}
	for i := range e.Data.Rest.Banners {
		if i < len(banners) {
			e.Data.Rest.Banners[i] = Banner{
				Type:       banners[i].Type,
				Flags:      banners[i].Flags,
				StringIdx:  banners[i].StringIdx,
				RideIndex:  banners[i].RideIndex,
				Colour:     banners[i].Colour,
				TextColour: banners[i].TextColour,
			}
		} else {
			e.Data.Rest.Banners[i] = Banner{Type: 0xFF}
		}
	}
}

func (e *S6Exporter) exportCustomStrings(strings []string) {
	if len(strings) > MaxCustomStrings {
		common.LogWarn(common.WarnTooManyCustomStrings, len(strings), MaxCustomStrings)
		strings = strings[:MaxCustomStrings]
	}
	for i := range e.Data.Rest.CustomStrings {
		text := ""
		if i < len(strings) {
			text = strings[i]
		}
		encodeString(e.Data.Rest.CustomStrings[i][:], text)
	}
}

func (e *S6Exporter) exportRides(rides []*park.Ride) {
	for i := range e.Data.Rest.Rides {
		e.Data.Rest.Rides[i] = emptyRide()
	}
	for _, ride := range rides {
		if ride == nil || ride.Index < 0 || ride.Index >= MaxRides {
			continue
		}
		e.Data.Rest.Rides[ride.Index] = e.exportRide(ride)
	}
}

func (e *S6Exporter) exportMapAnimations(animations []park.MapAnimationEntry) {
	if len(animations) > MaxMapAnimations {
		common.LogWarn(common.WarnTooManyMapAnimations, len(animations), MaxMapAnimations)
		animations = animations[:MaxMapAnimations]
	}
	for i := range e.Data.Rest.MapAnimations {
		e.Data.Rest.MapAnimations[i] = MapAnimation{}
		if i < len(animations) {
			e.Data.Rest.MapAnimations[i] = MapAnimation{
				BaseZ: animations[i].BaseZ,
				Type:  animations[i].Type,
				X:     animations[i].X,
				Y:     animations[i].Y,
			}
		}
	}
	e.Data.Rest.NumMapAnimations = common.SafeIntToUint16(len(animations))
}

func (e *S6Exporter) exportRideRatingsCalcData(src *park.RideRatingsCalc) {
	dst := &e.Data.Rest.RideRatingsCalcData
	dst.ProximityX = src.ProximityX
	dst.ProximityY = src.ProximityY
	dst.ProximityZ = src.ProximityZ
	dst.ProximityStartX = src.ProximityStartX
	dst.ProximityStartY = src.ProximityStartY
	dst.ProximityStartZ = src.ProximityStartZ
	dst.CurrentRide = src.CurrentRide
	dst.State = src.State
	dst.ProximityTrackType = src.ProximityTrackType
	dst.ProximityBaseHeight = src.ProximityBaseHeight
	dst.ProximityTotal = src.ProximityTotal
	for i := range dst.ProximityScores {
		dst.ProximityScores[i] = 0
	}
	copy(dst.ProximityScores[:], src.ProximityScores)
	dst.NumBrakes = src.NumBrakes
	dst.NumReversers = src.NumReversers
	dst.StationFlags = src.StationFlags
}

func (e *S6Exporter) exportStaff(staff *park.Staff) {
	rest := &e.Data.Rest
	for i := range rest.StaffModes {
		rest.StaffModes[i] = 0
	}
	copy(rest.StaffModes[:], staff.Modes)

	for i := range rest.PatrolAreas {
		rest.PatrolAreas[i] = 0
	}
	for _, area := range staff.PatrolAreas {
		if area.StaffIndex < 0 || area.StaffIndex >= MaxStaff+4 {
			continue
		}
		base := area.StaffIndex * PatrolAreaSize
		for i, word := range area.Words {
			if i >= PatrolAreaSize {
				break
			}
			rest.PatrolAreas[base+i] = word
		}
	}
}

func (e *S6Exporter) exportClimate(climate *park.Climate) {
	rest := &e.Data.Rest
	rest.Climate = climate.Current
	rest.ClimateUpdateTimer = climate.UpdateTimer
	rest.CurrentWeather = climate.CurrentWeather
	rest.NextWeather = climate.NextWeather
	rest.Temperature = climate.Temperature
	rest.NextTemperature = climate.NextTemperature
	rest.CurrentWeatherEffect = climate.CurrentWeatherEffect
	rest.NextWeatherEffect = climate.NextWeatherEffect
	rest.CurrentWeatherGloom = climate.CurrentWeatherGloom
	rest.NextWeatherGloom = climate.NextWeatherGloom
	rest.CurrentRainLevel = climate.CurrentRainLevel
	rest.NextRainLevel = climate.NextRainLevel
}

func (e *S6Exporter) exportNewsItems(news []park.NewsEntry) {
	if len(news) > MaxNewsItems {
		common.LogWarn(common.WarnTooManyNewsItems, len(news), MaxNewsItems)
		news = news[:MaxNewsItems]
	}
	for i := range e.Data.Rest.NewsItems {
		e.Data.Rest.NewsItems[i] = NewsItem{}
		if i < len(news) {
			item := &e.Data.Rest.NewsItems[i]
			item.Type = news[i].Type
			item.Flags = news[i].Flags
			item.Assoc = news[i].Assoc
			item.Ticks = news[i].Ticks
			item.MonthYear = news[i].MonthYear
			item.Day = news[i].Day
			encodeString(item.Text[:], news[i].Text)
		}
	}
}

// countRides returns the number of occupied ride slots
func countRides(rides []*park.Ride) uint16 {
	count := 0
	for _, ride := range rides {
		if ride != nil && ride.Index >= 0 && ride.Index < MaxRides {
			count++
		}
	}
	return uint16(count)
}

// totalRideValue sums the value of every open ride, saturating at the
// field width
func totalRideValue(rides []*park.Ride) uint16 {
	total := 0
	for _, ride := range rides {
		if ride != nil {
			total += int(ride.Value)
		}
	}
	return common.SafeIntToUint16(total)
}

func copyInt32History(dst []int32, src []int32) {
	for i := range dst {
		dst[i] = 0
	}
	copy(dst, src)
}
