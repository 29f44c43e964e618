package chipcore

// EventType enumerates the kinds of GameEvent the core emits. The host
// renders and plays sound from these; the core itself performs no I/O
// (spec.md §6).
type EventType uint8

const (
	EventEntityCreated EventType = iota
	EventEntityRemoved
	EventEntityStep
	EventEntityTurn
	EventEntityTeleport
	EventEntityHidden
	EventEntityDrown
	EventEntityBurn
	EventEntityTrapped
	EventPlayerActivity
	EventPlayerBump
	EventBlockPush
	EventItemPickup
	EventBombExplode
	EventWaterSplash
	EventFireworks
	EventSocketFilled
	EventItemsThief
	EventLockOpened
	EventTerrainUpdated
	EventGameWin
	EventGameOver
	EventSoundFx
)

// GameOverReason discriminates GameOverPayload.
type GameOverReason uint8

const (
	ReasonDrowned GameOverReason = iota
	ReasonBurned
	ReasonEaten
	ReasonBombed
	ReasonOutOfTime
)

// GameEvent is one entry in the ordered, append-only event log a host
// drains between ticks.
type GameEvent struct {
	Type    EventType
	Payload any
}

// Per-event payload structs. Events with no interesting payload (GameWin)
// carry a nil Payload.

type EntityCreatedPayload struct {
	Handle EntityHandle
	Kind   EntityKind
	Pos    Vec2i
}

type EntityRemovedPayload struct {
	Handle EntityHandle
	Kind   EntityKind
	Pos    Vec2i
}

type EntityStepPayload struct {
	Handle EntityHandle
	Kind   EntityKind
	From   Vec2i
	To     Vec2i
	Dir    Compass
}

type EntityTurnPayload struct {
	Handle EntityHandle
	Dir    Compass
}

type EntityTeleportPayload struct {
	Handle EntityHandle
	From   Vec2i
	To     Vec2i
}

type EntityHiddenPayload struct {
	Handle EntityHandle
}

type EntityDrownPayload struct {
	Handle EntityHandle
	Kind   EntityKind
	Pos    Vec2i
}

type EntityBurnPayload struct {
	Handle EntityHandle
	Kind   EntityKind
	Pos    Vec2i
}

type EntityTrappedPayload struct {
	Handle EntityHandle
	Pos    Vec2i
}

type PlayerActivityPayload struct {
	Activity Activity
}

type PlayerBumpPayload struct {
	Pos Vec2i
	Dir Compass
}

type BlockPushPayload struct {
	Handle EntityHandle
	Dir    Compass
}

type ItemPickupPayload struct {
	Kind EntityKind
	Pos  Vec2i
}

type BombExplodePayload struct {
	Pos Vec2i
}

type WaterSplashPayload struct {
	Pos Vec2i
}

type FireworksPayload struct {
	Pos Vec2i
}

type SocketFilledPayload struct {
	Pos Vec2i
}

type ItemsThiefPayload struct {
	Handle EntityHandle
}

type LockOpenedPayload struct {
	Key int
}

type TerrainUpdatedPayload struct {
	Pos Vec2i
	Old Terrain
	New Terrain
}

type GameOverPayload struct {
	Reason GameOverReason
}

type SoundFxPayload struct {
	Sound string
}

// eventLog is the ordered, append-only buffer a GameState accumulates
// during a tick and the host drains via GameState.TakeEvents. Simplified
// from a lock-free multi-producer ring buffer down to a plain slice: the
// core is single threaded and single-producer (spec.md §5), so there is
// nothing for atomics to protect.
type eventLog struct {
	events []GameEvent
}

func (l *eventLog) push(t EventType, payload any) {
	l.events = append(l.events, GameEvent{Type: t, Payload: payload})
}

// take returns every buffered event and clears the log.
func (l *eventLog) take() []GameEvent {
	out := l.events
	l.events = nil
	return out
}
