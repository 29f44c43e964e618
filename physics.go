package chipcore

// tryMove is the shared movement primitive every mover's think function
// calls: bounds and terrain gate, thin-wall checks on both sides of the
// step, occupant interaction (including recursive block pushing), and —
// on success — the entry-terrain triggers (buttons, clone machines,
// teleporters, bear traps) (spec.md §4.6).
func tryMove(gs *GameState, e *Entity, dir Compass) bool {
	if e.Flags&FlagTrapped != 0 && gs.Field.At(e.Pos) == BearTrap && !gs.trapOpen(e.Pos) {
		return false
	}

	next := e.Pos.Add(dir.ToVec())
	if !next.InBounds(gs.Field.Width, gs.Field.Height) {
		bump(gs, e, dir)
		return false
	}

	fromBits := gs.Field.At(e.Pos).SolidBits()
	if fromBits&thinWallDeparting(dir) != 0 {
		bump(gs, e, dir)
		return false
	}

	destTerrain := gs.Field.At(next)
	destBits := destTerrain.SolidBits()
	if destBits&thinWallOpposite(dir) != 0 {
		bump(gs, e, dir)
		return false
	}

	wtw := e.Kind == KindPlayer && gs.PS.DevWTW
	if destBits&SolidWall != 0 && !wtw {
		bump(gs, e, dir)
		return false
	}

	if color, ok := isLock(destTerrain); ok && !wtw {
		if !e.Data.Solid.SolidKey {
			bump(gs, e, dir)
			return false
		}
		if gs.PS.Keys[color] == 0 {
			bump(gs, e, dir)
			return false
		}
		gs.PS.Keys[color]--
		gs.Field.Set(next, Floor)
		gs.events.push(EventLockOpened, LockOpenedPayload{Key: color})
		gs.events.push(EventTerrainUpdated, TerrainUpdatedPayload{Pos: next, Old: destTerrain, New: Floor})
	} else if !wtw && isBlockedByTerrainClass(destTerrain, e.Data.Solid) {
		bump(gs, e, dir)
		return false
	}

	if !resolveOccupants(gs, e, dir, next) {
		return false
	}

	e.FaceDir = dir
	e.StepDir = dir
	e.StepTime = gs.Time
	e.StepSpd = e.BaseSpd
	gs.QT.Move(e.Handle, e.Pos, next)
	from := e.Pos
	e.Pos = next
	e.Flags |= FlagNewPos

	if e.Kind == KindPlayer {
		gs.PS.Steps++
	}
	gs.events.push(EventEntityStep, EntityStepPayload{Handle: e.Handle, Kind: e.Kind, From: from, To: next, Dir: dir})

	applyEntryTriggers(gs, e)
	applyHazardTerrain(gs, e)

	return true
}

// applyHazardTerrain fires the consequences of landing on a hazard tile:
// Block and IceBlock convert or are consumed by it, and most creatures
// drown or burn. Folds the original's "flags & EF_NEW_POS" think-prelude
// check into the move that sets NEW_POS, since nothing else can change
// the tile underfoot before the mover's own next think runs — checking
// immediately is equivalent and sidesteps this module's per-tick
// clearTransient pass, which would otherwise wipe FlagNewPos before a
// deferred check ever saw it (original_source/chipcore/src/entities/
// {block,iceblock,tank,paramecium,walker}.rs).
func applyHazardTerrain(gs *GameState, e *Entity) {
	t := gs.Field.At(e.Pos)

	switch e.Kind {
	case KindBlock:
		if t == Water {
			gs.Field.Set(e.Pos, Dirt)
			gs.events.push(EventTerrainUpdated, TerrainUpdatedPayload{Pos: e.Pos, Old: Water, New: Dirt})
			gs.events.push(EventWaterSplash, WaterSplashPayload{Pos: e.Pos})
			gs.removeEntity(e)
		}

	case KindIceBlock:
		switch t {
		case Water:
			gs.Field.Set(e.Pos, Ice)
			gs.events.push(EventTerrainUpdated, TerrainUpdatedPayload{Pos: e.Pos, Old: Water, New: Ice})
			gs.events.push(EventEntityDrown, EntityDrownPayload{Handle: e.Handle, Kind: e.Kind, Pos: e.Pos})
			gs.events.push(EventWaterSplash, WaterSplashPayload{Pos: e.Pos})
			gs.removeEntity(e)
		case Fire:
			gs.Field.Set(e.Pos, Water)
			gs.events.push(EventTerrainUpdated, TerrainUpdatedPayload{Pos: e.Pos, Old: Fire, New: Water})
			gs.events.push(EventEntityBurn, EntityBurnPayload{Handle: e.Handle, Kind: e.Kind, Pos: e.Pos})
			gs.events.push(EventWaterSplash, WaterSplashPayload{Pos: e.Pos})
			gs.removeEntity(e)
		case Dirt:
			gs.Field.Set(e.Pos, Floor)
			gs.events.push(EventTerrainUpdated, TerrainUpdatedPayload{Pos: e.Pos, Old: Dirt, New: Floor})
		}

	default:
		if !isCreature(e.Kind) {
			return
		}
		switch t {
		case Water:
			// Gliders fly over water unharmed (glider.rs carries no
			// NEW_POS water branch at all).
			if e.Kind == KindGlider {
				return
			}
			gs.events.push(EventEntityDrown, EntityDrownPayload{Handle: e.Handle, Kind: e.Kind, Pos: e.Pos})
			gs.removeEntity(e)
		case Fire:
			// FireBall is immune to fire (spec.md §4.5).
			if e.Kind == KindFireBall {
				return
			}
			gs.events.push(EventEntityBurn, EntityBurnPayload{Handle: e.Handle, Kind: e.Kind, Pos: e.Pos})
			gs.removeEntity(e)
		}
	}
}

// resolveOccupants applies occupant-interaction rules for a mover entering
// a cell that already holds other entities: pushable blocks recurse into
// tryMove, everything else is resolved through the mover's SolidFlags.
func resolveOccupants(gs *GameState, e *Entity, dir Compass, next Vec2i) bool {
	occupants := gs.QT.Get(next)
	for _, h := range occupants {
		if h == InvalidHandle || h == e.Handle {
			continue
		}
		other, ok := gs.Store.Get(h)
		if !ok || other.Flags&FlagRemove != 0 {
			continue
		}

		switch {
		case other.Kind == KindBlock || other.Kind == KindIceBlock:
			if e.Kind != KindPlayer {
				bump(gs, e, dir)
				return false
			}
			if !tryMove(gs, other, dir) {
				bump(gs, e, dir)
				return false
			}
			other.Flags |= FlagMomentum
			gs.events.push(EventBlockPush, BlockPushPayload{Handle: other.Handle, Dir: dir})

		case isCreature(other.Kind):
			if e.Data.Solid.Creatures {
				bump(gs, e, dir)
				return false
			}
			if isCreature(e.Kind) && (other.Kind == KindPlayer) {
				gs.killPlayer(ReasonEaten)
			}

		case other.Kind == KindPlayer || other.Kind == KindPlayerNPC:
			if e.Data.Solid.Player {
				bump(gs, e, dir)
				return false
			}
			if isCreature(e.Kind) && other.Kind == KindPlayer {
				gs.killPlayer(ReasonEaten)
			}

		case other.Kind == KindThief:
			if e.Data.Solid.Thief {
				bump(gs, e, dir)
				return false
			}

		case isBoots(other.Kind):
			if e.Data.Solid.Boots {
				bump(gs, e, dir)
				return false
			}

		case other.Kind == KindChip:
			if e.Data.Solid.Chips {
				bump(gs, e, dir)
				return false
			}

		case other.Kind == KindSocket:
			if gs.PS.Chips < gs.Field.RequiredChips {
				bump(gs, e, dir)
				return false
			}
			gs.events.push(EventSocketFilled, SocketFilledPayload{Pos: next})
			gs.removeEntity(other)

		case other.Kind == KindBomb:
			gs.events.push(EventBombExplode, BombExplodePayload{Pos: next})
			gs.removeEntity(other)
			if e.Kind == KindPlayer {
				gs.killPlayer(ReasonBombed)
				return false
			}
			gs.removeEntity(e)
			return false

		default:
			if _, isK := isKey(other.Kind); isK {
				if e.Data.Solid.Keys {
					bump(gs, e, dir)
					return false
				}
			}
		}
	}
	return true
}

// bump records a failed move attempt. Only the player's bump count and
// activity are tracked — creature collisions are silent per spec.md §4.5.
func bump(gs *GameState, e *Entity, dir Compass) {
	if e.Kind != KindPlayer {
		return
	}
	gs.PS.Bonks++
	gs.PS.Activity = ActivityCollided
	gs.events.push(EventPlayerActivity, PlayerActivityPayload{Activity: gs.PS.Activity})
	gs.events.push(EventPlayerBump, PlayerBumpPayload{Pos: e.Pos, Dir: dir})
}

// tryTerrainMove applies the current tile's forced-movement rule (ice,
// ice corners, force floors, force-random) before falling back to a plain
// step in stepDir. This is the entry point every think function calls
// instead of tryMove directly, since terrain-forced movement applies to
// every mover, not just the player (spec.md §4.6).
func tryTerrainMove(gs *GameState, e *Entity, stepDir Compass) bool {
	t := gs.Field.At(e.Pos)

	switch {
	case t == Ice:
		return tryMove(gs, e, e.FaceDir)

	case isIceCorner(t):
		newDir, ok := iceCornerTurn(t, e.FaceDir)
		if !ok {
			newDir = e.FaceDir.TurnAround()
		}
		if newDir != e.FaceDir {
			e.FaceDir = newDir
			gs.events.push(EventEntityTurn, EntityTurnPayload{Handle: e.Handle, Dir: newDir})
		}
		return tryMove(gs, e, newDir)

	case t == ForceRandom:
		if e.Kind == KindPlayer && gs.PS.SuctionBoots {
			return tryMove(gs, e, stepDir)
		}
		return tryMove(gs, e, gs.Rand.Compass())

	default:
		if fd, ok := forceDirection(t); ok {
			if e.Kind == KindPlayer && gs.PS.SuctionBoots {
				return tryMove(gs, e, stepDir)
			}
			return tryMove(gs, e, fd)
		}
		return tryMove(gs, e, stepDir)
	}
}

// applyEntryTriggers fires the side effects bound to the tile a mover just
// stepped onto: toggle-wall buttons, clone-machine pulses, tank-reversing
// buttons, teleporters, and bear traps.
func applyEntryTriggers(gs *GameState, e *Entity) {
	t := gs.Field.At(e.Pos)
	switch t {
	case GreenButton:
		gs.toggleWalls()
	case RedButton:
		for _, c := range gs.Field.ConnsFrom(e.Pos) {
			gs.spawnClone(c.Dest)
		}
	case BlueButton:
		gs.reverseAllTanks()
	case Teleport:
		gs.teleportEntity(e)
	case BearTrap:
		if e.Flags&FlagTrapped == 0 {
			e.Flags |= FlagTrapped
			gs.events.push(EventEntityTrapped, EntityTrappedPayload{Handle: e.Handle, Pos: e.Pos})
		}
	}
}
