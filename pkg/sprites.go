package pkg

import (
	"bytes"
	"encoding/binary"

	"github.com/hansbonini/parktools/pkg/common"
	"github.com/hansbonini/parktools/pkg/park"
)

// exportSprites fills the sprite pool. Slots without a live sprite are
// written as null sprites so no stale pool data leaks into the file.
func (e *S6Exporter) exportSprites(state *park.State) {
	for i := range e.Data.Core.Sprites {
		slot := &e.Data.Core.Sprites[i]
		for j := range slot {
			slot[j] = 0
		}
		slot[0] = SpriteIdentifierNull
	}

	exported := 0
	for i := range state.Sprites {
		index := state.Sprites[i].Index
		if int(index) >= MaxSprites {
			continue
		}
		e.exportSprite(&e.Data.Core.Sprites[index], state.Sprites[i].Sprite)
		exported++
	}
	common.LogDebug(common.DebugSpritesExported, exported)

	for i, head := range state.SpriteListsHead {
		if i >= NumSpriteLists {
			break
		}
		e.Data.Core.SpriteListsHead[i] = head
	}
	for i, count := range state.SpriteListsCount {
		if i >= NumSpriteLists {
			break
		}
		e.Data.Core.SpriteListsCount[i] = count
	}
}

// exportSprite serializes one live sprite into its 256 byte pool slot
func (e *S6Exporter) exportSprite(slot *[SpriteSlotSize]uint8, sprite park.Sprite) {
	var record interface{}

	switch src := sprite.(type) {
	case *park.NullSprite:
		base := packSpriteBase(SpriteIdentifierNull, 0, src.Common())
		record = &base
	case *park.Vehicle:
		record = packVehicle(src)
	case *park.Peep:
		record = packPeep(src)
	case *park.Litter:
		record = &SpriteLitter{
			Base:         packSpriteBase(SpriteIdentifierLitter, src.LitterType, src.Common()),
			CreationTick: src.CreationTick,
		}
	case *park.SteamParticle:
		record = &SpriteSteamParticle{
			Base:       packSpriteBase(SpriteIdentifierMisc, MiscSpriteSteamParticle, src.Common()),
			TimeToMove: src.TimeToMove,
			Frame:      src.Frame,
		}
	case *park.MoneyEffect:
		record = &SpriteMoneyEffect{
			Base:         packSpriteBase(SpriteIdentifierMisc, MiscSpriteMoneyEffect, src.Common()),
			MoveDelay:    src.MoveDelay,
			NumMovements: src.NumMovements,
			Vertical:     src.Vertical,
			Value:        src.Value,
			OffsetX:      src.OffsetX,
			Wiggle:       src.Wiggle,
		}
	case *park.CrashedVehicleParticle:
		particle := &SpriteCrashedVehicleParticle{
			Base:              packSpriteBase(SpriteIdentifierMisc, MiscSpriteCrashedVehicleParticle, src.Common()),
			Frame:             src.Frame,
			TimeToLive:        src.TimeToLive,
			CrashedSpriteBase: src.CrashedSpriteBase,
			VelocityX:         src.VelocityX,
			VelocityY:         src.VelocityY,
			VelocityZ:         src.VelocityZ,
			AccelerationX:     src.AccelerationX,
			AccelerationY:     src.AccelerationY,
			AccelerationZ:     src.AccelerationZ,
		}
		copy(particle.Colour[:], src.Colour)
		record = particle
	case *park.ExplosionCloud:
		record = &SpriteParticle{
			Base:  packSpriteBase(SpriteIdentifierMisc, MiscSpriteExplosionCloud, src.Common()),
			Frame: src.Frame,
		}
	case *park.ExplosionFlare:
		record = &SpriteParticle{
			Base:  packSpriteBase(SpriteIdentifierMisc, MiscSpriteExplosionFlare, src.Common()),
			Frame: src.Frame,
		}
	case *park.CrashSplash:
		record = &SpriteParticle{
			Base:  packSpriteBase(SpriteIdentifierMisc, MiscSpriteCrashSplash, src.Common()),
			Frame: src.Frame,
		}
	case *park.JumpingFountain:
		kind := uint8(MiscSpriteJumpingFountainWater)
		if src.Snow {
			kind = MiscSpriteJumpingFountainSnow
		}
		record = &SpriteJumpingFountain{
			Base:          packSpriteBase(SpriteIdentifierMisc, kind, src.Common()),
			NumTicksAlive: src.NumTicksAlive,
			Frame:         src.Frame,
			FountainFlags: src.FountainFlags,
			TargetX:       src.TargetX,
			TargetY:       src.TargetY,
			Iteration:     uint16(src.Iteration),
		}
	case *park.Balloon:
		record = &SpriteBalloon{
			Base:       packSpriteBase(SpriteIdentifierMisc, MiscSpriteBalloon, src.Common()),
			Popped:     src.Popped,
			TimeToMove: src.TimeToMove,
			Frame:      src.Frame,
			Colour:     src.Colour,
		}
	case *park.Duck:
		record = &SpriteDuck{
			Base:    packSpriteBase(SpriteIdentifierMisc, MiscSpriteDuck, src.Common()),
			Frame:   src.Frame,
			TargetX: src.TargetX,
			TargetY: src.TargetY,
			State:   src.State,
		}
	case *park.UnknownMisc:
		// Only the header survives for sub-types this build does not
		// understand
		common.LogWarn(common.WarnUnknownMiscSpriteKind, src.Kind)
		base := packSpriteBase(SpriteIdentifierMisc, src.Kind, src.Common())
		record = &base
	default:
		common.LogWarn(common.WarnUnknownSpriteKind, 0)
		base := packSpriteBase(SpriteIdentifierNull, 0, sprite.Common())
		record = &base
	}

	var buf bytes.Buffer
	// Writing fixed width struct fields can not fail on a bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, record)
	copy(slot[:], buf.Bytes())
}

// packSpriteBase fills the 31 byte header every sprite record starts
// with
func packSpriteBase(identifier, spriteType uint8, src *park.SpriteCommon) SpriteBase {
	return SpriteBase{
		SpriteIdentifier:     identifier,
		Type:                 spriteType,
		NextInQuadrant:       src.NextInQuadrant,
		Next:                 src.Next,
		Previous:             src.Previous,
		LinkedListTypeOffset: src.LinkedListTypeOffset,
		SpriteHeightNegative: src.SpriteHeightNegative,
		SpriteIndex:          src.SpriteIndex,
		Flags:                src.Flags,
		X:                    src.X,
		Y:                    src.Y,
		Z:                    src.Z,
		SpriteWidth:          src.SpriteWidth,
		SpriteHeightPositive: src.SpriteHeightPositive,
		SpriteLeft:           src.SpriteLeft,
		SpriteTop:            src.SpriteTop,
		SpriteRight:          src.SpriteRight,
		SpriteBottom:         src.SpriteBottom,
		SpriteDirection:      src.SpriteDirection,
	}
}

func packVehicle(src *park.Vehicle) *SpriteVehicle {
	dst := &SpriteVehicle{
		Base:              packSpriteBase(SpriteIdentifierVehicle, src.VehicleSpriteType, src.Common()),
		VehicleSpriteType: src.VehicleSpriteType,
		BankRotation:      src.BankRotation,
		RemainingDistance: src.RemainingDistance,
		Velocity:          src.Velocity,
		Acceleration:      src.Acceleration,
		RideIndex:         src.RideIndex,
		VehicleType:       src.VehicleType,
		Colours:           VehicleColour{BodyColour: src.ColoursBody, TrimColour: src.ColoursTrim},
		TrackProgress:     src.TrackProgress,
		TrackDirection:    src.TrackDirection,
		TrackType:         src.TrackType,
		TrackX:            src.TrackX,
		TrackY:            src.TrackY,
		TrackZ:            src.TrackZ,
		NextVehicleOnTrain: src.NextVehicleOnTrain,
		PrevVehicleOnRide:  src.PrevVehicleOnRide,
		NextVehicleOnRide:  src.NextVehicleOnRide,
		Var44:             src.Var44,
		Mass:              src.Mass,
		UpdateFlags:       src.UpdateFlags,
		SwingSprite:       src.SwingSprite,
		CurrentStation:    src.CurrentStation,
		CurrentTime:       src.CurrentTime,
		CrashZ:            src.CrashZ,
		Status:            src.Status,
		SubState:          src.SubState,
		NumSeats:          src.NumSeats,
		NumPeeps:          src.NumPeeps,
		NextFreeSeat:      src.NextFreeSeat,
		RestraintsPosition: src.RestraintsPosition,
		CrashX:            src.CrashX,
		Sound2Flags:       src.Sound2Flags,
		SpinSprite:        src.SpinSprite,
		Sound1ID:          src.Sound1ID,
		Sound1Volume:      src.Sound1Volume,
		Sound2ID:          src.Sound2ID,
		Sound2Volume:      src.Sound2Volume,
		SoundVectorFactor: src.SoundVectorFactor,
		TimeWaiting:       src.TimeWaiting,
		Speed:             src.Speed,
		PoweredAcceleration: src.PoweredAcceleration,
		DodgemsCollisionDirection: src.DodgemsCollisionDirection,
		AnimationFrame:    src.AnimationFrame,
		VarC8:             src.VarC8,
		VarCA:             src.VarCA,
		ScreamSoundID:     src.ScreamSoundID,
		VarCD:             src.VarCD,
		VarCE:             src.VarCE,
		VarCF:             src.VarCF,
		LostTimeOut:       src.LostTimeOut,
		VerticalDropCountdown: src.VerticalDropCountdown,
		VarD3:             src.VarD3,
		MiniGolfCurrentAnimation: src.MiniGolfCurrentAnimation,
		MiniGolfFlags:     src.MiniGolfFlags,
		RideSubtype:       src.RideSubtype,
		ColoursExtended:   src.ColoursExtended,
		SeatRotation:      src.SeatRotation,
		TargetSeatRotation: src.TargetSeatRotation,
	}
	for i := range dst.Peep {
		dst.Peep[i] = SpriteIndexNull
	}
	for i, p := range src.Peep {
		if i >= len(dst.Peep) {
			break
		}
		dst.Peep[i] = p
	}
	copy(dst.PeepTshirtColours[:], src.PeepTshirtColours)
	return dst
}

func packPeep(src *park.Peep) *SpritePeep {
	dst := &SpritePeep{
		Base:          packSpriteBase(SpriteIdentifierPeep, src.ActionSpriteType, src.Common()),
		NameStringIdx: src.NameStringIdx,
		NextX:         src.NextX,
		NextY:         src.NextY,
		NextZ:         src.NextZ,
		NextFlags:     src.NextFlags,
		OutsideOfPark: src.OutsideOfPark,
		State:         src.State,
		SubState:      src.SubState,
		SpriteType:    src.SpriteType,
		PeepType:      src.PeepType,
		NoOfRides:     src.NoOfRides,
		TshirtColour:  src.TshirtColour,
		TrousersColour: src.TrousersColour,
		DestinationX:  src.DestinationX,
		DestinationY:  src.DestinationY,
		DestinationTolerance: src.DestinationTolerance,
		Var37:         src.Var37,
		Energy:        src.Energy,
		EnergyTarget:  src.EnergyTarget,
		Happiness:     src.Happiness,
		HappinessTarget: src.HappinessTarget,
		Nausea:        src.Nausea,
		NauseaTarget:  src.NauseaTarget,
		Hunger:        src.Hunger,
		Thirst:        src.Thirst,
		Toilet:        src.Toilet,
		Mass:          src.Mass,
		TimeToConsume: src.TimeToConsume,
		Intensity:     src.Intensity,
		NauseaTolerance: src.NauseaTolerance,
		WindowInvalidateFlags: src.WindowInvalidateFlags,
		PaidOnDrink:   src.PaidOnDrink,
		ItemExtraFlags: src.ItemExtraFlags,
		Photo2RideRef: src.Photo2RideRef,
		Photo3RideRef: src.Photo3RideRef,
		Photo4RideRef: src.Photo4RideRef,
		CurrentRide:   src.CurrentRide,
		CurrentRideStation: src.CurrentRideStation,
		CurrentTrain:  src.CurrentTrain,
		TimeToSitdown: src.TimeToSitdown,
		SpecialSprite: src.SpecialSprite,
		ActionSpriteType: src.ActionSpriteType,
		NextActionSpriteType: src.NextActionSpriteType,
		ActionSpriteImageOffset: src.ActionSpriteImageOffset,
		Action:        src.Action,
		ActionFrame:   src.ActionFrame,
		StepProgress:  src.StepProgress,
		NextInQueue:   src.NextInQueue,
		Direction:     src.Direction,
		InteractionRideIndex: src.InteractionRideIndex,
		TimeInQueue:   src.TimeInQueue,
		ID:            src.ID,
		CashInPocket:  src.CashInPocket,
		CashSpent:     src.CashSpent,
		TimeInPark:    src.TimeInPark,
		RejoinQueueTimeout: src.RejoinQueueTimeout,
		PreviousRide:  src.PreviousRide,
		PreviousRideTimeOut: src.PreviousRideTimeOut,
		PathCheckOptimisation: src.PathCheckOptimisation,
		GuestHeadingToRideID:  src.GuestHeadingToRideID,
		PeepIsLostCountdown:   src.PeepIsLostCountdown,
		Photo1RideRef: src.Photo1RideRef,
		PeepFlags:     src.PeepFlags,
		PathfindGoal: PathfindHistoryEntry{
			X: src.PathfindGoal.X, Y: src.PathfindGoal.Y,
			Z: src.PathfindGoal.Z, Direction: src.PathfindGoal.Direction,
		},
		NoActionFrameNum: src.NoActionFrameNum,
		LitterCount:      src.LitterCount,
		TimeOnRide:       src.TimeOnRide,
		DisgustingCount:  src.DisgustingCount,
		PaidToEnter:      src.PaidToEnter,
		PaidOnRides:      src.PaidOnRides,
		PaidOnFood:       src.PaidOnFood,
		PaidOnSouvenirs:  src.PaidOnSouvenirs,
		NoOfFood:         src.NoOfFood,
		NoOfDrinks:       src.NoOfDrinks,
		NoOfSouvenirs:    src.NoOfSouvenirs,
		VandalismSeen:    src.VandalismSeen,
		VoucherType:      src.VoucherType,
		VoucherArguments: src.VoucherArguments,
		SurroundingsThoughtTimeout: src.SurroundingsThoughtTimeout,
		Angriness:        src.Angriness,
		TimeLost:         src.TimeLost,
		DaysInQueue:      src.DaysInQueue,
		BalloonColour:    src.BalloonColour,
		UmbrellaColour:   src.UmbrellaColour,
		HatColour:        src.HatColour,
		FavouriteRide:    src.FavouriteRide,
		FavouriteRideRating: src.FavouriteRideRating,
		ItemStandardFlags:   src.ItemStandardFlags,
	}
	copy(dst.RideTypesBeenOn[:], src.RideTypesBeenOn)
	copy(dst.RidesBeenOn[:], src.RidesBeenOn)
	for i := range dst.Thoughts {
		dst.Thoughts[i].Type = 0xFF
	}
	for i, thought := range src.Thoughts {
		if i >= len(dst.Thoughts) {
			break
		}
		dst.Thoughts[i] = PeepThought{
			Type:         thought.Type,
			Item:         thought.Item,
			Freshness:    thought.Freshness,
			FreshTimeout: thought.FreshTimeout,
		}
	}
	for i, entry := range src.PathfindHistory {
		if i >= len(dst.PathfindHistory) {
			break
		}
		dst.PathfindHistory[i] = PathfindHistoryEntry{
			X: entry.X, Y: entry.Y, Z: entry.Z, Direction: entry.Direction,
		}
	}
	return dst
}
