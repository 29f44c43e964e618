package chipcore

import (
	"errors"
	"testing"
)

func TestParseValidLevel(t *testing.T) {
	dto := blankLevel(2, 2)
	dto.Entities = []EntityArgs{{Kind: KindPlayer, Pos: Vec2i{X: 0, Y: 0}, FaceDir: Right}}

	gs, err := Parse(dto, 7)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if gs.PS.Handle == InvalidHandle {
		t.Fatal("Parse should wire PlayerState.Handle to the spawned player")
	}
}

func TestParseRejectsMismatchedTerrainLength(t *testing.T) {
	dto := LevelDTO{Width: 3, Height: 3, Terrain: make([]Terrain, 4)}
	dto.Entities = []EntityArgs{{Kind: KindPlayer}}

	_, err := Parse(dto, 1)
	if !errors.Is(err, ErrMalformedLevel) {
		t.Fatalf("err = %v, want ErrMalformedLevel", err)
	}
}

func TestParseRejectsOutOfBoundsEntity(t *testing.T) {
	dto := blankLevel(2, 2)
	dto.Entities = []EntityArgs{
		{Kind: KindPlayer, Pos: Vec2i{X: 0, Y: 0}},
		{Kind: KindBlock, Pos: Vec2i{X: 5, Y: 5}},
	}

	_, err := Parse(dto, 1)
	if !errors.Is(err, ErrMalformedLevel) {
		t.Fatalf("err = %v, want ErrMalformedLevel", err)
	}
}

func TestParseRejectsMissingPlayer(t *testing.T) {
	dto := blankLevel(2, 2)
	dto.Entities = []EntityArgs{{Kind: KindBlock, Pos: Vec2i{X: 0, Y: 0}}}

	_, err := Parse(dto, 1)
	if !errors.Is(err, ErrMalformedLevel) {
		t.Fatalf("err = %v, want ErrMalformedLevel", err)
	}
}

func TestParseRejectsDuplicatePlayer(t *testing.T) {
	dto := blankLevel(2, 2)
	dto.Entities = []EntityArgs{
		{Kind: KindPlayer, Pos: Vec2i{X: 0, Y: 0}},
		{Kind: KindPlayer, Pos: Vec2i{X: 1, Y: 1}},
	}

	_, err := Parse(dto, 1)
	if !errors.Is(err, ErrMalformedLevel) {
		t.Fatalf("err = %v, want ErrMalformedLevel", err)
	}
}

func TestParseMarksTemplateFlag(t *testing.T) {
	dto := blankLevel(2, 2)
	dto.Entities = []EntityArgs{
		{Kind: KindPlayer, Pos: Vec2i{X: 0, Y: 0}},
		{Kind: KindTank, Pos: Vec2i{X: 1, Y: 1}, Template: true},
	}

	gs, err := Parse(dto, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	found := false
	gs.Store.Iterate(func(h EntityHandle) {
		if e, ok := gs.Store.Get(h); ok && e.Kind == KindTank {
			found = true
			if e.Flags&FlagTemplate == 0 {
				t.Fatal("template entity should carry FlagTemplate after Parse")
			}
		}
	})
	if !found {
		t.Fatal("tank entity missing from store")
	}
}
