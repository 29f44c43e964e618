package chipcore

// thinkBlock drives a plain pushable block. It is inert except to keep
// sliding across ice or a force floor once momentum has been imparted by
// a push — otherwise it only moves when tryMove recurses into it from a
// pusher's resolveOccupants call (spec.md §4.5, Block).
func thinkBlock(gs *GameState, e *Entity) {
	continueBlockSlide(gs, e)
}

// thinkIceBlock drives an ice block: the same inert-unless-sliding
// movement as thinkBlock, but preceded by the bear-trap momentum
// continuation Lynx rulesets need to solve levels where a trap-released
// ice block must keep going in the direction that freed it
// (original_source/chipcore/src/entities/iceblock.rs, try_special_move).
func thinkIceBlock(gs *GameState, e *Entity) {
	if trySpecialMove(gs, e) {
		return
	}
	continueBlockSlide(gs, e)
}

func continueBlockSlide(gs *GameState, e *Entity) {
	t := gs.Field.At(e.Pos)
	switch {
	case t == Ice, isIceCorner(t), t == ForceRandom:
		tryTerrainMove(gs, e, e.StepDir)
	default:
		if _, ok := forceDirection(t); ok {
			tryTerrainMove(gs, e, e.StepDir)
		}
	}
}

// trySpecialMove continues an ice block that still carries the momentum of
// the push that put it on a bear trap: while it sits on the trap it keeps
// trying to step on in StepDir, so it leaves the moment the trap opens,
// rather than waiting for the next terrain-driven slide check to notice.
// It reports whether it moved
// the block, in which case the caller skips the ordinary slide check for
// this tick.
func trySpecialMove(gs *GameState, e *Entity) bool {
	if e.Flags&FlagMomentum == 0 || gs.Field.At(e.Pos) != BearTrap {
		return false
	}
	return tryMove(gs, e, e.StepDir)
}
