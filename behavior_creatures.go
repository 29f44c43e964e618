package chipcore

// tryDirections attempts a terrain-forced move in each candidate direction
// in order, stopping at the first that succeeds. Every creature AI below
// is a different ordering of this search, matching how Lynx-ruleset
// creatures pick a heading deterministically from their current facing
// (spec.md §4.5).
func tryDirections(gs *GameState, e *Entity, dirs [4]Compass) bool {
	for _, d := range dirs {
		if tryTerrainMove(gs, e, d) {
			return true
		}
	}
	return false
}

// thinkBug hugs its left wall: try turning left, then straight, then
// right, then reversing.
func thinkBug(gs *GameState, e *Entity) {
	f := e.FaceDir
	tryDirections(gs, e, [4]Compass{f.TurnLeft(), f, f.TurnRight(), f.TurnAround()})
}

// thinkParamecium hugs its right wall, the mirror image of Bug.
func thinkParamecium(gs *GameState, e *Entity) {
	f := e.FaceDir
	tryDirections(gs, e, [4]Compass{f.TurnRight(), f, f.TurnLeft(), f.TurnAround()})
}

// thinkFireBall tries straight first, then right, then left, before giving
// up and reversing.
func thinkFireBall(gs *GameState, e *Entity) {
	f := e.FaceDir
	tryDirections(gs, e, [4]Compass{f, f.TurnRight(), f.TurnLeft(), f.TurnAround()})
}

// thinkGlider is FireBall's mirror: straight, then left before right.
func thinkGlider(gs *GameState, e *Entity) {
	f := e.FaceDir
	tryDirections(gs, e, [4]Compass{f, f.TurnLeft(), f.TurnRight(), f.TurnAround()})
}

// thinkTank only ever tries to continue straight ahead. A blocked Tank
// simply waits — it never turns on its own, only via a blue button's
// reverseAllTanks.
func thinkTank(gs *GameState, e *Entity) {
	tryTerrainMove(gs, e, e.FaceDir)
}

// thinkTeeth chases the player: it prefers whichever axis (row or column)
// has the larger distance to close, falling back to the other axis, and
// never reverses into the player's last-known tile on its own.
func thinkTeeth(gs *GameState, e *Entity) {
	target, ok := gs.Store.Get(gs.PS.Handle)
	if !ok {
		return
	}
	dx := target.Pos.X - e.Pos.X
	dy := target.Pos.Y - e.Pos.Y

	var primary, secondary Compass
	switch {
	case dx == 0 && dy == 0:
		return
	case abs(dx) >= abs(dy):
		primary = horizontalDir(dx)
		secondary = verticalDir(dy)
	default:
		primary = verticalDir(dy)
		secondary = horizontalDir(dx)
	}

	if tryTerrainMove(gs, e, primary) {
		return
	}
	if secondary != primary {
		tryTerrainMove(gs, e, secondary)
	}
}

// thinkWalker moves straight until blocked, then picks randomly between
// turning left or right before resorting to reversing — the coin-flip
// variant (spec.md §4.8 resolves this Open Question explicitly).
func thinkWalker(gs *GameState, e *Entity) {
	f := e.FaceDir
	if tryTerrainMove(gs, e, f) {
		return
	}
	left, right := f.TurnLeft(), f.TurnRight()
	if gs.Rand.CoinFlip() {
		left, right = right, left
	}
	if tryTerrainMove(gs, e, left) {
		return
	}
	if tryTerrainMove(gs, e, right) {
		return
	}
	tryTerrainMove(gs, e, f.TurnAround())
}

// thinkBlob picks a uniformly random direction every think, retrying the
// other three if the first choice is blocked. Its double base speed
// (baseSpeedBlob) means it thinks half as often as everything else.
func thinkBlob(gs *GameState, e *Entity) {
	first := gs.Rand.Compass()
	dirs := [4]Compass{first, first.TurnLeft(), first.TurnRight(), first.TurnAround()}
	tryDirections(gs, e, dirs)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func horizontalDir(dx int) Compass {
	if dx < 0 {
		return Left
	}
	return Right
}

func verticalDir(dy int) Compass {
	if dy < 0 {
		return Up
	}
	return Down
}
