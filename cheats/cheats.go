// Package cheats implements the debug console actions and in-game
// button-code cheats layered on top of a chipcore.GameState: give-all,
// walk-through-walls, remove-time-limit, and force-win (spec.md §6, not
// part of the deterministic replay contract — a replay recorded with
// cheats active is still bit-exact, it simply reaches a different state).
package cheats

import "github.com/lixenwraith/chipcore"

// Action mutates a running GameState outside the normal tick loop.
type Action func(gs *chipcore.GameState)

// Console maps a cheat name to the action it performs.
var Console = map[string]Action{
	"cheats.wtw!": func(gs *chipcore.GameState) {
		gs.PS.DevWTW = !gs.PS.DevWTW
	},
	"cheats.give!": func(gs *chipcore.GameState) {
		gs.PS.Flippers = true
		gs.PS.FireBoots = true
		gs.PS.IceSkates = true
		gs.PS.SuctionBoots = true
		for i := range gs.PS.Keys {
			gs.PS.Keys[i] = 255
		}
		gs.PS.Chips = gs.Field.RequiredChips
	},
	"cheats.time!": func(gs *chipcore.GameState) {
		gs.Field.TimeLimit = 0
	},
	"cheats.win!": func(gs *chipcore.GameState) {
		gs.CheatForceWin()
	},
}

// Run looks up name in Console and applies it to gs. It reports whether
// name was a known cheat.
func Run(name string, gs *chipcore.GameState) bool {
	action, ok := Console[name]
	if !ok {
		return false
	}
	action(gs)
	return true
}

// token is one button-press edge in a button-code sequence.
type token string

const (
	tUp    token = "Up"
	tDown  token = "Down"
	tLeft  token = "Left"
	tRight token = "Right"
	tA     token = "A"
	tB     token = "B"
)

// codes pairs a button sequence with the console action it fires once
// matched in full, oldest-first.
var codes = []struct {
	name string
	seq  []token
}{
	{"cheats.give!", []token{tUp, tUp, tDown, tDown, tLeft, tRight, tLeft, tRight, tB, tA}},
	{"cheats.wtw!", []token{tA, tB, tUp, tA, tB, tDown}},
	{"cheats.time!", []token{tA, tUp, tRight, tDown, tLeft, tUp, tA}},
	{"cheats.win!", []token{tA, tA, tA, tB, tB, tB}},
}

func longestCode() int {
	n := 0
	for _, c := range codes {
		if len(c.seq) > n {
			n = len(c.seq)
		}
	}
	return n
}

// Detector watches a stream of button-press edges for any of the known
// button codes and fires the matching cheat the tick the sequence
// completes.
type Detector struct {
	buf []token
}

// NewDetector returns an empty button-code watcher.
func NewDetector() *Detector {
	return &Detector{}
}

// directionToken reports the press-edge token for dir, if any is tracked.
func directionToken(dir chipcore.Compass) token {
	switch dir {
	case chipcore.Up:
		return tUp
	case chipcore.Down:
		return tDown
	case chipcore.Left:
		return tLeft
	case chipcore.Right:
		return tRight
	default:
		return ""
	}
}

// FeedDirection records a directional button press edge and applies any
// cheat it completes.
func (d *Detector) FeedDirection(dir chipcore.Compass, gs *chipcore.GameState) {
	d.feed(directionToken(dir), gs)
}

// FeedButton records an A/B press edge and applies any cheat it completes.
func (d *Detector) FeedButton(isA bool, gs *chipcore.GameState) {
	if isA {
		d.feed(tA, gs)
	} else {
		d.feed(tB, gs)
	}
}

func (d *Detector) feed(t token, gs *chipcore.GameState) {
	if t == "" {
		return
	}
	d.buf = append(d.buf, t)
	if max := longestCode(); len(d.buf) > max {
		d.buf = d.buf[len(d.buf)-max:]
	}
	for _, c := range codes {
		if matchesSuffix(d.buf, c.seq) {
			Run(c.name, gs)
			d.buf = d.buf[:0]
			return
		}
	}
}

func matchesSuffix(buf []token, seq []token) bool {
	if len(buf) < len(seq) {
		return false
	}
	tail := buf[len(buf)-len(seq):]
	for i := range seq {
		if tail[i] != seq[i] {
			return false
		}
	}
	return true
}
