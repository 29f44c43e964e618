package chipcore

// behaviorTable is the static EntityKind -> BehaviorTable dispatch table.
// There is exactly one entry per kind, built once at package init and
// never mutated — no vtables, no dynamic registration (spec.md §4.5).
var behaviorTable = [kindCount]BehaviorTable{
	KindPlayer: {
		Kind:  KindPlayer,
		Think: thinkPlayer,
		Solid: SolidFlags{SolidKey: true, RecessedWall: true},
	},
	KindPlayerNPC: {
		Kind:  KindPlayerNPC,
		Think: thinkPlayerNPC,
		Solid: SolidFlags{Dirt: true, Exit: true, BlueFake: true, RecessedWall: true, Keys: true, Boots: true, Chips: true, Creatures: true, Player: true, Thief: true},
	},
	KindChip: {
		Kind:  KindChip,
		Think: thinkStatic,
		Solid: SolidFlags{},
	},
	KindSocket: {
		Kind:  KindSocket,
		Think: thinkStatic,
		Solid: SolidFlags{Keys: true, Boots: true, Chips: true, Creatures: true, Player: true},
	},
	KindBlock: {
		Kind:  KindBlock,
		Think: thinkBlock,
		Solid: SolidFlags{Dirt: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindIceBlock: {
		Kind:  KindIceBlock,
		Think: thinkIceBlock,
		Solid: SolidFlags{Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindBootsFlippers: {Kind: KindBootsFlippers, Think: thinkStatic},
	KindBootsFire:     {Kind: KindBootsFire, Think: thinkStatic},
	KindBootsIce:      {Kind: KindBootsIce, Think: thinkStatic},
	KindBootsSuction:  {Kind: KindBootsSuction, Think: thinkStatic},
	KindKeyBlue:       {Kind: KindKeyBlue, Think: thinkStatic},
	KindKeyRed:        {Kind: KindKeyRed, Think: thinkStatic},
	KindKeyGreen:      {Kind: KindKeyGreen, Think: thinkStatic},
	KindKeyYellow:     {Kind: KindKeyYellow, Think: thinkStatic},
	KindThief: {
		Kind:  KindThief,
		Think: thinkStatic,
		Solid: SolidFlags{RecessedWall: true},
	},
	KindBomb: {
		Kind:  KindBomb,
		Think: thinkStatic,
		Solid: SolidFlags{},
	},
	// Creature SolidFlags baseline (Gravel/Hint/BlueFake/Boots/Chips/Thief
	// all true, Player false, Water false) follows the fields recovered for
	// Walker/Tank in original_source/chipcore/src/entities/{walker,tank}.rs;
	// each kind then only overrides the element it is immune to. Water/Fire
	// left false (not solid) means the kind enters the hazard and
	// applyHazardTerrain kills it there, rather than bouncing off it.
	// SolidKey stays false, so locks block every creature outright.
	KindBug: {
		Kind:  KindBug,
		Think: thinkBug,
		Solid: SolidFlags{Fire: true, Dirt: true, Gravel: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindFireBall: {
		Kind:  KindFireBall,
		Think: thinkFireBall,
		Solid: SolidFlags{Dirt: true, Gravel: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindPinkBall: {
		Kind:  KindPinkBall,
		Think: thinkWalker,
		Solid: SolidFlags{Dirt: true, Gravel: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindTank: {
		Kind:  KindTank,
		Think: thinkTank,
		Solid: SolidFlags{Fire: true, Dirt: true, Gravel: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindGlider: {
		Kind:  KindGlider,
		Think: thinkGlider,
		Solid: SolidFlags{Fire: true, Dirt: true, Gravel: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindTeeth: {
		Kind:  KindTeeth,
		Think: thinkTeeth,
		Solid: SolidFlags{Dirt: true, Gravel: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindWalker: {
		Kind:  KindWalker,
		Think: thinkWalker,
		Solid: SolidFlags{Dirt: true, Gravel: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindBlob: {
		Kind:  KindBlob,
		Think: thinkBlob,
		Solid: SolidFlags{Fire: true, Dirt: true, Gravel: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
	KindParamecium: {
		Kind:  KindParamecium,
		Think: thinkParamecium,
		Solid: SolidFlags{Dirt: true, Gravel: true, Exit: true, BlueFake: true, RecessedWall: true, Boots: true, Chips: true, Creatures: true, Thief: true, Hint: true},
	},
}

// behaviors points at behaviorTable. It is assigned in init rather than at
// its declaration because the think functions in behaviorTable reach
// behaviorFor (through spawnEntity), which would otherwise be an
// initialization cycle.
var behaviors *[kindCount]BehaviorTable

func init() { behaviors = &behaviorTable }

// behaviorFor returns the static BehaviorTable entry for k.
func behaviorFor(k EntityKind) *BehaviorTable {
	return &behaviors[k]
}
