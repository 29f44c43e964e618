package chipcore

// Activity is the player's current transient animation/status state.
type Activity uint8

const (
	ActivityWalk Activity = iota
	ActivityPush
	ActivitySwim
	ActivityDrown
	ActivityBurn
	ActivitySkate
	ActivitySlide
	ActivitySuction
	ActivityCollided
	ActivityEaten
	ActivityBombed
	ActivityWin
)

// IsTerminal reports whether the activity ends the game (spec.md §6:
// IsGameOver iff activity is terminal).
func (a Activity) IsTerminal() bool {
	switch a {
	case ActivityDrown, ActivityBurn, ActivityEaten, ActivityBombed, ActivityWin:
		return true
	default:
		return false
	}
}

// transient reports whether the activity should decay back to Walk once
// its one-tick animation window elapses (spec.md §4.4 step 2).
func (a Activity) transient() bool {
	switch a {
	case ActivityPush, ActivityCollided:
		return true
	default:
		return false
	}
}

// Key colors, indexing PlayerState.Keys.
const (
	KeyColorBlue = iota
	KeyColorRed
	KeyColorGreen
	KeyColorYellow
	keyColorCount
)

// PlayerState is the player's inventory, input buffer, and activity.
type PlayerState struct {
	Handle EntityHandle
	Inbuf  *InputBuffer

	Activity Activity
	Steps    int32
	Bonks    int32
	Chips    int32
	Keys     [keyColorCount]uint8

	Flippers      bool
	FireBoots     bool
	IceSkates     bool
	SuctionBoots  bool

	DevWTW bool // walk-through-walls cheat
}

// NewPlayerState returns a fresh, empty inventory with its own input
// buffer.
func NewPlayerState() *PlayerState {
	return &PlayerState{
		Handle: InvalidHandle,
		Inbuf:  NewInputBuffer(),
	}
}
