package cheats

import (
	"testing"

	"github.com/lixenwraith/chipcore"
)

func blankLevel(width, height int) chipcore.LevelDTO {
	terrain := make([]chipcore.Terrain, width*height)
	for i := range terrain {
		terrain[i] = chipcore.Floor
	}
	return chipcore.LevelDTO{Width: width, Height: height, Terrain: terrain, RequiredChips: 3}
}

func newGameState(t *testing.T) *chipcore.GameState {
	t.Helper()
	dto := blankLevel(3, 3)
	dto.Entities = []chipcore.EntityArgs{{Kind: chipcore.KindPlayer, Pos: chipcore.Vec2i{X: 0, Y: 0}}}
	gs, err := chipcore.Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return gs
}

func TestConsoleGiveGrantsEverything(t *testing.T) {
	gs := newGameState(t)
	if !Run("cheats.give!", gs) {
		t.Fatal("cheats.give! should be a known console action")
	}
	if !gs.PS.Flippers || !gs.PS.FireBoots || !gs.PS.IceSkates || !gs.PS.SuctionBoots {
		t.Fatal("cheats.give! should grant all four boots")
	}
	if gs.PS.Chips != gs.Field.RequiredChips {
		t.Fatalf("Chips = %d, want %d", gs.PS.Chips, gs.Field.RequiredChips)
	}
}

func TestConsoleUnknownNameReportsFalse(t *testing.T) {
	gs := newGameState(t)
	if Run("cheats.nonexistent!", gs) {
		t.Fatal("an unknown cheat name should report false and change nothing")
	}
}

func TestConsoleWtwToggles(t *testing.T) {
	gs := newGameState(t)
	Run("cheats.wtw!", gs)
	if !gs.PS.DevWTW {
		t.Fatal("first cheats.wtw! should turn walk-through-walls on")
	}
	Run("cheats.wtw!", gs)
	if gs.PS.DevWTW {
		t.Fatal("second cheats.wtw! should toggle it back off")
	}
}

func TestDetectorMatchesWtwCode(t *testing.T) {
	gs := newGameState(t)
	d := NewDetector()

	d.FeedButton(true, gs)  // A
	d.FeedButton(false, gs) // B
	d.FeedDirection(chipcore.Up, gs)
	d.FeedButton(true, gs)  // A
	d.FeedButton(false, gs) // B
	d.FeedDirection(chipcore.Down, gs)

	if !gs.PS.DevWTW {
		t.Fatal("A,B,Up,A,B,Down should trigger the WTW cheat")
	}
}

func TestDetectorIgnoresPartialSequence(t *testing.T) {
	gs := newGameState(t)
	d := NewDetector()

	d.FeedButton(true, gs)
	d.FeedButton(false, gs)
	d.FeedDirection(chipcore.Up, gs)

	if gs.PS.DevWTW {
		t.Fatal("an incomplete sequence must not trigger a cheat")
	}
}

func TestDetectorMatchesWinCode(t *testing.T) {
	gs := newGameState(t)
	d := NewDetector()

	d.FeedButton(true, gs)
	d.FeedButton(true, gs)
	d.FeedButton(true, gs)
	d.FeedButton(false, gs)
	d.FeedButton(false, gs)
	d.FeedButton(false, gs)

	if !gs.IsGameOver() {
		t.Fatal("A,A,A,B,B,B should force a win")
	}
}
