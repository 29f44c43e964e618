package chipcore

// Input bits, packed into a single byte so a replay can store one byte per
// tick (spec.md §6).
const (
	InputUp uint8 = 1 << iota
	InputLeft
	InputDown
	InputRight
	InputA
	InputB
	InputStart
	InputSelect
)

// Input is one tick's worth of button state.
type Input struct {
	Bits uint8
}

// DecodeInput unpacks a replay byte into an Input.
func DecodeInput(b byte) Input { return Input{Bits: b} }

// Encode packs the Input back into a replay byte.
func (i Input) Encode() byte { return i.Bits }

func (i Input) Up() bool     { return i.Bits&InputUp != 0 }
func (i Input) Left() bool   { return i.Bits&InputLeft != 0 }
func (i Input) Down() bool   { return i.Bits&InputDown != 0 }
func (i Input) Right() bool  { return i.Bits&InputRight != 0 }
func (i Input) A() bool      { return i.Bits&InputA != 0 }
func (i Input) B() bool      { return i.Bits&InputB != 0 }
func (i Input) Start() bool  { return i.Bits&InputStart != 0 }
func (i Input) Select() bool { return i.Bits&InputSelect != 0 }

// TimeState discriminates a running level from one the player has paused
// or finished.
type TimeState uint8

const (
	TimeRunning TimeState = iota
	TimeStopped
)

// GameState is the complete, I/O-free simulation state: the level, every
// live entity, the occupancy index, the player's inventory, the owned RNG
// stream, and the tick counter. A GameState produced by Parse with a given
// seed and fed an identical Input sequence always reaches bit-identical
// state (spec.md §1).
type GameState struct {
	Field *Field
	Store *EntityStore
	QT    *QuadTree
	PS    *PlayerState
	Rand  *Random

	Time      int32
	TimeState TimeState

	prevInput  Input
	events     eventLog
	buttonHeld map[Vec2i]bool
}

// NewGameState wires together a fresh, empty simulation over field. Callers
// normally reach GameState through Parse instead.
func NewGameState(field *Field, seed uint64) *GameState {
	return &GameState{
		Field:     field,
		Store:     NewEntityStore(),
		QT:        NewQuadTree(field.Width, field.Height),
		PS:        NewPlayerState(),
		Rand:      NewRandom(seed),
		TimeState: TimeRunning,
	}
}

// TakeEvents drains and returns every event accumulated since the last
// call, in emission order.
func (gs *GameState) TakeEvents() []GameEvent {
	return gs.events.take()
}

// IsGameOver reports whether the player's activity has reached a terminal
// state (spec.md §6).
func (gs *GameState) IsGameOver() bool {
	return gs.PS.Activity.IsTerminal()
}

// trapOpen reports whether the bear trap at pos is currently held open by
// an occupied brown button wired to it.
func (gs *GameState) trapOpen(pos Vec2i) bool {
	return gs.buttonHeld[pos]
}

// recomputeButtonHeld rebuilds, once per tick, the set of bear-trap cells
// currently held open by an occupied brown button. Recomputing from
// scratch each tick (rather than tracking enter/leave edges) keeps the
// state a pure function of current occupancy, which is what the
// determinism contract requires.
func (gs *GameState) recomputeButtonHeld() {
	for k := range gs.buttonHeld {
		delete(gs.buttonHeld, k)
	}
	if gs.buttonHeld == nil {
		gs.buttonHeld = make(map[Vec2i]bool)
	}
	for i, t := range gs.Field.Terrain {
		if t != BrownButton {
			continue
		}
		src := Vec2i{X: i % gs.Field.Width, Y: i / gs.Field.Width}
		if !gs.QT.HasAny(src) {
			continue
		}
		for _, c := range gs.Field.ConnsFrom(src) {
			gs.buttonHeld[c.Dest] = true
		}
	}
}

// toggleWalls flips every ToggleFloor/ToggleWall cell in the field, firing
// TerrainUpdated for each change (spec.md §4.6, green button).
func (gs *GameState) toggleWalls() {
	for i, t := range gs.Field.Terrain {
		var next Terrain
		switch t {
		case ToggleFloor:
			next = ToggleWall
		case ToggleWall:
			next = ToggleFloor
		default:
			continue
		}
		pos := Vec2i{X: i % gs.Field.Width, Y: i / gs.Field.Width}
		gs.Field.Terrain[i] = next
		gs.events.push(EventTerrainUpdated, TerrainUpdatedPayload{Pos: pos, Old: t, New: next})
	}
}

// reverseAllTanks flips every live Tank's facing 180 degrees (spec.md
// §4.6, blue button).
func (gs *GameState) reverseAllTanks() {
	gs.Store.Iterate(func(h EntityHandle) {
		e, ok := gs.Store.Get(h)
		if !ok || e.Kind != KindTank {
			return
		}
		e.FaceDir = e.FaceDir.TurnAround()
		e.StepDir = e.StepDir.TurnAround()
		gs.events.push(EventEntityTurn, EntityTurnPayload{Handle: e.Handle, Dir: e.FaceDir})
	})
}

// spawnClone instantiates a new, thinking entity of the same kind as the
// template currently occupying pos, leaving the template itself in place
// for the next pulse (spec.md §4.6, red button).
func (gs *GameState) spawnClone(pos Vec2i) {
	var templateHandle EntityHandle
	for _, h := range gs.QT.Get(pos) {
		if h == InvalidHandle {
			continue
		}
		if e, ok := gs.Store.Get(h); ok && e.Flags&FlagTemplate != 0 {
			templateHandle = h
			break
		}
	}
	template, ok := gs.Store.Get(templateHandle)
	if !ok {
		return
	}
	gs.spawnEntity(template.Kind, pos, template.FaceDir, false)
}

// teleportEntity relocates e to the destination of the teleporter wired to
// its current cell, if any (spec.md §4.6).
func (gs *GameState) teleportEntity(e *Entity) {
	conn, ok := gs.Field.ConnFrom(e.Pos)
	if !ok {
		return
	}
	from := e.Pos
	gs.QT.Move(e.Handle, from, conn.Dest)
	e.Pos = conn.Dest
	gs.events.push(EventEntityTeleport, EntityTeleportPayload{Handle: e.Handle, From: from, To: conn.Dest})
}

// killPlayer ends the game with the given reason.
func (gs *GameState) killPlayer(reason GameOverReason) {
	if gs.PS.Activity.IsTerminal() {
		return
	}
	switch reason {
	case ReasonDrowned:
		gs.PS.Activity = ActivityDrown
	case ReasonBurned:
		gs.PS.Activity = ActivityBurn
	case ReasonEaten:
		gs.PS.Activity = ActivityEaten
	case ReasonBombed:
		gs.PS.Activity = ActivityBombed
	}
	gs.events.push(EventPlayerActivity, PlayerActivityPayload{Activity: gs.PS.Activity})
	gs.events.push(EventGameOver, GameOverPayload{Reason: reason})
	gs.TimeState = TimeStopped
}

// removeEntity deletes e from both indexes and marks it gone, firing
// EntityRemoved. Safe to call from inside occupant-resolution loops since
// QuadTree.Get and EntityStore.Iterate both work from snapshots/stable
// pointers rather than live references to the slice being mutated.
func (gs *GameState) removeEntity(e *Entity) {
	if e.Flags&FlagRemove != 0 {
		return
	}
	gs.QT.Remove(e.Handle, e.Pos)
	gs.events.push(EventEntityRemoved, EntityRemovedPayload{Handle: e.Handle, Kind: e.Kind, Pos: e.Pos})
	e.Flags |= FlagRemove
	gs.Store.Remove(e.Handle)
}

// winGame ends the game successfully.
func (gs *GameState) winGame() {
	if gs.PS.Activity.IsTerminal() {
		return
	}
	gs.PS.Activity = ActivityWin
	gs.events.push(EventPlayerActivity, PlayerActivityPayload{Activity: gs.PS.Activity})
	gs.events.push(EventGameWin, nil)
	gs.TimeState = TimeStopped
}

// CheatForceWin ends the level in a win immediately, bypassing the Exit
// tile. It exists for the cheats package's button-code and console
// actions; core gameplay never calls it itself.
func (gs *GameState) CheatForceWin() {
	gs.winGame()
}

// spawnEntity allocates a new entity of kind at pos, wires its
// BehaviorTable, and indexes it. If isPlayer is true the new handle also
// becomes the tracked player handle.
func (gs *GameState) spawnEntity(kind EntityKind, pos Vec2i, face Compass, isPlayer bool) EntityHandle {
	h := gs.Store.Alloc()
	spd := int32(baseSpeedNormal)
	if kind == KindBlob {
		spd = baseSpeedBlob
	}
	e := Entity{
		Kind:     kind,
		Pos:      pos,
		FaceDir:  face,
		StepDir:  face,
		BaseSpd:  spd,
		StepSpd:  spd,
		StepTime: -spd, // eligible to act starting from tick 0
		Data:     behaviorFor(kind),
	}
	gs.Store.Put(h, e)
	gs.QT.Add(h, pos)
	gs.events.push(EventEntityCreated, EntityCreatedPayload{Handle: h, Kind: kind, Pos: pos})
	if isPlayer {
		gs.PS.Handle = h
	}
	return h
}

// updateInputBuffer translates raw button edges into the player's SOCD
// input buffer, and toggles the walk-through-walls cheat on an A+B rising
// edge (spec.md §4.4 step 1).
func (gs *GameState) updateInputBuffer(in Input) {
	edge := func(now, was bool) (pressed, released bool) {
		return now && !was, !now && was
	}

	if p, r := edge(in.Up(), gs.prevInput.Up()); p {
		gs.PS.Inbuf.Press(Up)
	} else if r {
		gs.PS.Inbuf.Release(Up)
	}
	if p, r := edge(in.Left(), gs.prevInput.Left()); p {
		gs.PS.Inbuf.Press(Left)
	} else if r {
		gs.PS.Inbuf.Release(Left)
	}
	if p, r := edge(in.Down(), gs.prevInput.Down()); p {
		gs.PS.Inbuf.Press(Down)
	} else if r {
		gs.PS.Inbuf.Release(Down)
	}
	if p, r := edge(in.Right(), gs.prevInput.Right()); p {
		gs.PS.Inbuf.Press(Right)
	} else if r {
		gs.PS.Inbuf.Release(Right)
	}

	abNow := in.A() && in.B()
	abWas := gs.prevInput.A() && gs.prevInput.B()
	if abNow && !abWas {
		gs.PS.DevWTW = !gs.PS.DevWTW
	}

	gs.prevInput = in
}

// Tick advances the simulation by one frame: input translation, activity
// decay, per-tick trap bookkeeping, then every eligible entity's think
// function in creation order (spec.md §4.4).
func (gs *GameState) Tick(in Input) {
	if gs.TimeState != TimeRunning {
		return
	}

	gs.updateInputBuffer(in)

	if gs.PS.Activity.transient() {
		gs.PS.Activity = ActivityWalk
	}

	gs.recomputeButtonHeld()

	gs.Store.Iterate(func(h EntityHandle) {
		e, ok := gs.Store.Get(h)
		if !ok {
			return
		}
		e.clearTransient()
		if e.Flags&(FlagRemove|FlagHidden|FlagTemplate) != 0 {
			return
		}
		if !e.Eligible(gs.Time) {
			return
		}
		e.Data.Think(gs, e)
	})

	gs.Time++

	if gs.Field.TimeLimit > 0 && gs.Time >= gs.Field.TimeLimit && !gs.PS.Activity.IsTerminal() {
		gs.killPlayer(ReasonOutOfTime)
	}
}
