package chipcore

// thinkPlayer drains one direction from the input buffer, attempts the
// terrain-forced move, and applies the arriving tile's effects: hazards
// (water, fire), dirt conversion, item pickup, and the exit trigger
// (spec.md §4.5, Player).
func thinkPlayer(gs *GameState, e *Entity) {
	dir, held := gs.PS.Inbuf.ReadDir()
	if !held {
		return
	}
	if !tryTerrainMove(gs, e, dir) {
		return
	}
	applyPlayerTileEffects(gs, e)
}

func applyPlayerTileEffects(gs *GameState, e *Entity) {
	t := gs.Field.At(e.Pos)
	switch t {
	case Water:
		if gs.PS.Flippers {
			setPlayerActivity(gs, ActivitySwim)
		} else {
			gs.events.push(EventEntityDrown, EntityDrownPayload{Handle: e.Handle, Kind: e.Kind, Pos: e.Pos})
			gs.killPlayer(ReasonDrowned)
			return
		}

	case Fire:
		if gs.PS.FireBoots {
			setPlayerActivity(gs, ActivityWalk)
		} else {
			gs.events.push(EventEntityBurn, EntityBurnPayload{Handle: e.Handle, Kind: e.Kind, Pos: e.Pos})
			gs.killPlayer(ReasonBurned)
			return
		}

	case Dirt:
		gs.Field.Set(e.Pos, Floor)
		gs.events.push(EventTerrainUpdated, TerrainUpdatedPayload{Pos: e.Pos, Old: Dirt, New: Floor})

	case Ice, IceCornerNW, IceCornerNE, IceCornerSW, IceCornerSE:
		setPlayerActivity(gs, ActivitySkate)

	case ForceN, ForceS, ForceW, ForceE, ForceRandom:
		if gs.PS.SuctionBoots {
			setPlayerActivity(gs, ActivitySuction)
		} else {
			setPlayerActivity(gs, ActivitySlide)
		}

	case Exit:
		gs.winGame()
		return
	}

	collectItems(gs, e)
}

func setPlayerActivity(gs *GameState, a Activity) {
	if gs.PS.Activity == a {
		return
	}
	gs.PS.Activity = a
	gs.events.push(EventPlayerActivity, PlayerActivityPayload{Activity: a})
}

// collectItems picks up every item co-located with the player: chips,
// boots, and keys are consumed and removed; a thief tile strips every
// boot the player is carrying.
func collectItems(gs *GameState, e *Entity) {
	for _, h := range gs.QT.Get(e.Pos) {
		if h == InvalidHandle || h == e.Handle {
			continue
		}
		other, ok := gs.Store.Get(h)
		if !ok {
			continue
		}

		switch {
		case other.Kind == KindChip:
			gs.PS.Chips++
			gs.events.push(EventItemPickup, ItemPickupPayload{Kind: other.Kind, Pos: e.Pos})
			gs.removeEntity(other)

		case other.Kind == KindBootsFlippers:
			gs.PS.Flippers = true
			gs.events.push(EventItemPickup, ItemPickupPayload{Kind: other.Kind, Pos: e.Pos})
			gs.removeEntity(other)

		case other.Kind == KindBootsFire:
			gs.PS.FireBoots = true
			gs.events.push(EventItemPickup, ItemPickupPayload{Kind: other.Kind, Pos: e.Pos})
			gs.removeEntity(other)

		case other.Kind == KindBootsIce:
			gs.PS.IceSkates = true
			gs.events.push(EventItemPickup, ItemPickupPayload{Kind: other.Kind, Pos: e.Pos})
			gs.removeEntity(other)

		case other.Kind == KindBootsSuction:
			gs.PS.SuctionBoots = true
			gs.events.push(EventItemPickup, ItemPickupPayload{Kind: other.Kind, Pos: e.Pos})
			gs.removeEntity(other)

		case other.Kind == KindThief:
			gs.PS.Flippers = false
			gs.PS.FireBoots = false
			gs.PS.IceSkates = false
			gs.PS.SuctionBoots = false
			gs.events.push(EventItemsThief, ItemsThiefPayload{Handle: gs.PS.Handle})

		default:
			if color, ok := isKey(other.Kind); ok {
				gs.PS.Keys[color]++
				gs.events.push(EventItemPickup, ItemPickupPayload{Kind: other.Kind, Pos: e.Pos})
				gs.removeEntity(other)
			}
		}
	}
}

// thinkPlayerNPC is a passive recorded/ghost body: it never acts on its
// own, only via direct position writes a host or replay overlay performs.
func thinkPlayerNPC(gs *GameState, e *Entity) {}
