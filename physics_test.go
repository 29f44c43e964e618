package chipcore

import "testing"

// findByKind returns the first live entity of kind k, or ok=false if none
// remain in the store.
func findByKind(gs *GameState, k EntityKind) (h EntityHandle, ok bool) {
	gs.Store.Iterate(func(candidate EntityHandle) {
		if ok {
			return
		}
		if e, got := gs.Store.Get(candidate); got && e.Kind == k {
			h, ok = candidate, true
		}
	})
	return
}

// parkedPlayer returns an idle Player entity on the row below whatever
// mover scenario row 0 sets up, so Parse's one-Player invariant is
// satisfied without the player ever interacting with the test.
func parkedPlayer() EntityArgs {
	return EntityArgs{Kind: KindPlayer, Pos: Vec2i{X: 0, Y: 1}, FaceDir: Right}
}

func TestIceBlockWaterFillsToIce(t *testing.T) {
	dto := blankLevel(3, 2)
	dto.set(1, 0, Ice)
	dto.set(2, 0, Water)
	dto.Entities = []EntityArgs{
		parkedPlayer(),
		{Kind: KindIceBlock, Pos: Vec2i{X: 1, Y: 0}, FaceDir: Right},
	}
	gs, err := Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	gs.Tick(Input{})
	gs.TakeEvents()

	if got := gs.Field.At(Vec2i{X: 2, Y: 0}); got != Ice {
		t.Fatalf("water tile = %v after ice block entry, want Ice", got)
	}
	if _, ok := findByKind(gs, KindIceBlock); ok {
		t.Fatal("the ice block should have been consumed filling the water")
	}
}

func TestIceBlockFireFillsToWater(t *testing.T) {
	dto := blankLevel(3, 2)
	dto.set(1, 0, Ice)
	dto.set(2, 0, Fire)
	dto.Entities = []EntityArgs{
		parkedPlayer(),
		{Kind: KindIceBlock, Pos: Vec2i{X: 1, Y: 0}, FaceDir: Right},
	}
	gs, err := Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	gs.Tick(Input{})
	gs.TakeEvents()

	if got := gs.Field.At(Vec2i{X: 2, Y: 0}); got != Water {
		t.Fatalf("fire tile = %v after ice block entry, want Water", got)
	}
	if _, ok := findByKind(gs, KindIceBlock); ok {
		t.Fatal("the ice block should have been consumed quenching the fire")
	}
}

func TestIceBlockDirtClearsWithoutBeingConsumed(t *testing.T) {
	dto := blankLevel(3, 2)
	dto.set(1, 0, Ice)
	dto.set(2, 0, Dirt)
	dto.Entities = []EntityArgs{
		parkedPlayer(),
		{Kind: KindIceBlock, Pos: Vec2i{X: 1, Y: 0}, FaceDir: Right},
	}
	gs, err := Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	gs.Tick(Input{})
	gs.TakeEvents()

	if got := gs.Field.At(Vec2i{X: 2, Y: 0}); got != Floor {
		t.Fatalf("dirt tile = %v after ice block entry, want Floor", got)
	}
	h, ok := findByKind(gs, KindIceBlock)
	if !ok {
		t.Fatal("the ice block should still exist after clearing dirt")
	}
	e, _ := gs.Store.Get(h)
	if e.Pos != (Vec2i{X: 2, Y: 0}) {
		t.Fatalf("ice block pos = %v, want (2,0)", e.Pos)
	}
}

func TestIceBlockContinuesOutOfBearTrapOnMomentum(t *testing.T) {
	dto := blankLevel(4, 2)
	dto.set(1, 0, BearTrap)
	dto.Entities = []EntityArgs{
		parkedPlayer(),
		{Kind: KindIceBlock, Pos: Vec2i{X: 1, Y: 0}, FaceDir: Right},
	}
	gs, err := Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	h, ok := findByKind(gs, KindIceBlock)
	if !ok {
		t.Fatal("ice block missing after Parse")
	}
	e, _ := gs.Store.Get(h)
	e.Flags |= FlagMomentum

	gs.Tick(Input{})
	gs.TakeEvents()

	e, _ = gs.Store.Get(h)
	if e.Pos != (Vec2i{X: 2, Y: 0}) {
		t.Fatalf("ice block pos = %v, want (2,0) after the trap-release special move", e.Pos)
	}
}

func TestTankDrownsInWater(t *testing.T) {
	dto := blankLevel(3, 2)
	dto.set(2, 0, Water)
	dto.Entities = []EntityArgs{
		parkedPlayer(),
		{Kind: KindTank, Pos: Vec2i{X: 1, Y: 0}, FaceDir: Right},
	}
	gs, err := Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	gs.Tick(Input{})
	gs.TakeEvents()

	if _, ok := findByKind(gs, KindTank); ok {
		t.Fatal("the tank should have drowned stepping into water")
	}
}

func TestWalkerBurnsInFire(t *testing.T) {
	dto := blankLevel(3, 2)
	dto.set(2, 0, Fire)
	dto.Entities = []EntityArgs{
		parkedPlayer(),
		{Kind: KindWalker, Pos: Vec2i{X: 1, Y: 0}, FaceDir: Right},
	}
	gs, err := Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	gs.Tick(Input{})
	gs.TakeEvents()

	if _, ok := findByKind(gs, KindWalker); ok {
		t.Fatal("the walker should have burned stepping into fire")
	}
}

func TestGliderFliesOverWater(t *testing.T) {
	dto := blankLevel(3, 2)
	dto.set(2, 0, Water)
	dto.Entities = []EntityArgs{
		parkedPlayer(),
		{Kind: KindGlider, Pos: Vec2i{X: 1, Y: 0}, FaceDir: Right},
	}
	gs, err := Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	gs.Tick(Input{})
	gs.TakeEvents()

	h, ok := findByKind(gs, KindGlider)
	if !ok {
		t.Fatal("the glider should survive flying over water")
	}
	e, _ := gs.Store.Get(h)
	if e.Pos != (Vec2i{X: 2, Y: 0}) {
		t.Fatalf("glider pos = %v, want (2,0)", e.Pos)
	}
}

func TestFireBallIsImmuneToFire(t *testing.T) {
	dto := blankLevel(3, 2)
	dto.set(2, 0, Fire)
	dto.Entities = []EntityArgs{
		parkedPlayer(),
		{Kind: KindFireBall, Pos: Vec2i{X: 1, Y: 0}, FaceDir: Right},
	}
	gs, err := Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	gs.Tick(Input{})
	gs.TakeEvents()

	h, ok := findByKind(gs, KindFireBall)
	if !ok {
		t.Fatal("the fireball should be immune to fire")
	}
	e, _ := gs.Store.Get(h)
	if e.Pos != (Vec2i{X: 2, Y: 0}) {
		t.Fatalf("fireball pos = %v, want (2,0)", e.Pos)
	}
}
