package chipcore

// EntityKind enumerates the 25 creature/object/actor kinds the ruleset
// defines.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindPlayerNPC
	KindChip
	KindSocket
	KindBlock
	KindIceBlock
	KindBootsFlippers
	KindBootsFire
	KindBootsIce
	KindBootsSuction
	KindKeyBlue
	KindKeyRed
	KindKeyGreen
	KindKeyYellow
	KindThief
	KindBomb
	KindBug
	KindFireBall
	KindPinkBall
	KindTank
	KindGlider
	KindTeeth
	KindWalker
	KindBlob
	KindParamecium

	kindCount
)

// String returns a short name for diagnostics and event payloads.
func (k EntityKind) String() string {
	names := [kindCount]string{
		KindPlayer:        "Player",
		KindPlayerNPC:     "PlayerNPC",
		KindChip:          "Chip",
		KindSocket:        "Socket",
		KindBlock:         "Block",
		KindIceBlock:      "IceBlock",
		KindBootsFlippers: "BootsFlippers",
		KindBootsFire:     "BootsFire",
		KindBootsIce:      "BootsIce",
		KindBootsSuction:  "BootsSuction",
		KindKeyBlue:       "KeyBlue",
		KindKeyRed:        "KeyRed",
		KindKeyGreen:      "KeyGreen",
		KindKeyYellow:     "KeyYellow",
		KindThief:         "Thief",
		KindBomb:          "Bomb",
		KindBug:           "Bug",
		KindFireBall:      "FireBall",
		KindPinkBall:      "PinkBall",
		KindTank:          "Tank",
		KindGlider:        "Glider",
		KindTeeth:         "Teeth",
		KindWalker:        "Walker",
		KindBlob:          "Blob",
		KindParamecium:    "Paramecium",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// isCreature reports whether k is one of the nine mobile creature kinds
// (used by SolidFlags.Creatures occupant checks).
func isCreature(k EntityKind) bool {
	switch k {
	case KindBug, KindFireBall, KindPinkBall, KindTank, KindGlider, KindTeeth, KindWalker, KindBlob, KindParamecium:
		return true
	default:
		return false
	}
}

func isBoots(k EntityKind) bool {
	switch k {
	case KindBootsFlippers, KindBootsFire, KindBootsIce, KindBootsSuction:
		return true
	default:
		return false
	}
}

func isKey(k EntityKind) (color int, ok bool) {
	switch k {
	case KindKeyBlue:
		return 0, true
	case KindKeyRed:
		return 1, true
	case KindKeyGreen:
		return 2, true
	case KindKeyYellow:
		return 3, true
	default:
		return 0, false
	}
}

// EntityFlags is an independent bitset; no two bits are mutually
// exclusive. Bit-exactness of the bitset itself is not part of the
// determinism contract — only the observable behavior it gates is
// (spec.md §9).
type EntityFlags uint8

const (
	FlagRemove EntityFlags = 1 << iota
	FlagTrapped
	FlagHidden
	FlagButtonDown
	FlagTemplate
	FlagMomentum
	FlagNewPos
)

// baseSpeed is the number of ticks one step occupies. All movers use 12
// except the Blob, which uses 24 (spec.md §3).
const (
	baseSpeedNormal = 12
	baseSpeedBlob   = 24
)

// Entity is one actor on the Field: a player, a pushable block, or a
// creature. Handle is stable for the entity's lifetime; Data points at the
// kind's static BehaviorTable (think function + SolidFlags), shared by
// every instance of that kind.
type Entity struct {
	Handle   EntityHandle
	Kind     EntityKind
	Pos      Vec2i
	FaceDir  Compass
	StepDir  Compass
	BaseSpd  int32
	StepSpd  int32
	StepTime int32
	Flags    EntityFlags
	Data     *BehaviorTable
}

// Eligible reports whether the entity may begin a new move at tick now:
// now >= StepTime + StepSpd.
func (e *Entity) Eligible(now int32) bool {
	return now >= e.StepTime+e.StepSpd
}

func (e *Entity) clearTransient() {
	e.Flags &^= FlagNewPos
}

// SolidFlags states, for one mover kind, whether each passive obstacle
// class blocks it. It is co-located with the kind's think function inside
// BehaviorTable so that modding one updates the other coherently
// (spec.md §9).
type SolidFlags struct {
	Gravel       bool
	Fire         bool
	Dirt         bool
	Water        bool
	Exit         bool
	BlueFake     bool
	RecessedWall bool
	Keys         bool
	SolidKey     bool
	Boots        bool
	Chips        bool
	Creatures    bool
	Player       bool
	Thief        bool
	Hint         bool
}

// BehaviorTable is the per-kind dispatch entry: a think function invoked
// once per tick per live instance of the kind, plus the kind's SolidFlags.
// Dispatch is purely by EntityKind and the table is static package data —
// no vtables, no dynamic registration.
type BehaviorTable struct {
	Kind  EntityKind
	Think func(gs *GameState, e *Entity)
	Solid SolidFlags
}
