package replay

import (
	"testing"

	"github.com/lixenwraith/chipcore"
)

func TestEncodeDecodeInputsRoundTrip(t *testing.T) {
	raw := []byte{0, chipcore.InputRight, chipcore.InputRight, 0, chipcore.InputUp | chipcore.InputA}

	encoded, err := EncodeInputs(raw)
	if err != nil {
		t.Fatalf("EncodeInputs: %v", err)
	}
	got, err := DecodeInputs(encoded)
	if err != nil {
		t.Fatalf("DecodeInputs: %v", err)
	}
	if len(got) != len(raw) {
		t.Fatalf("round-trip length = %d, want %d", len(got), len(raw))
	}
	for i := range raw {
		if got[i] != raw[i] {
			t.Fatalf("byte %d = %08b, want %08b", i, got[i], raw[i])
		}
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	dto := DTO{
		Ticks:    42,
		Realtime: 1.5,
		Steps:    10,
		Bonks:    2,
		Seed:     "c0ffee",
		Replay:   "not-really-compressed-but-opaque-here",
	}

	data, err := Marshal(dto)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != dto {
		t.Fatalf("round-trip = %+v, want %+v", got, dto)
	}
}

func TestSeedFromHex(t *testing.T) {
	v, err := SeedFromHex("c0ffee")
	if err != nil {
		t.Fatalf("SeedFromHex: %v", err)
	}
	if v != 0xc0ffee {
		t.Fatalf("SeedFromHex = %x, want c0ffee", v)
	}

	if _, err := SeedFromHex("not-hex"); err == nil {
		t.Fatal("SeedFromHex should reject a non-hex string")
	}
}

func blankLevel(width, height int) chipcore.LevelDTO {
	terrain := make([]chipcore.Terrain, width*height)
	for i := range terrain {
		terrain[i] = chipcore.Floor
	}
	return chipcore.LevelDTO{Width: width, Height: height, Terrain: terrain}
}

// TestValidateAcceptsMatchingCounters replays a short, known input stream
// against a level and asserts a DTO whose counters match the resulting
// GameState validates cleanly.
func TestValidateAcceptsMatchingCounters(t *testing.T) {
	level := blankLevel(3, 1)
	level.Entities = []chipcore.EntityArgs{
		{Kind: chipcore.KindPlayer, Pos: chipcore.Vec2i{X: 0, Y: 0}, FaceDir: chipcore.Right},
	}

	raw := []byte{chipcore.InputRight, chipcore.InputRight}
	encoded, err := EncodeInputs(raw)
	if err != nil {
		t.Fatalf("EncodeInputs: %v", err)
	}

	dto := DTO{
		Ticks:  2,
		Steps:  1, // a step takes 12 ticks, so only the first Right moves
		Bonks:  0,
		Seed:   "1",
		Replay: encoded,
	}

	if err := Validate(dto, level); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsMismatchedCounters(t *testing.T) {
	level := blankLevel(3, 1)
	level.Entities = []chipcore.EntityArgs{
		{Kind: chipcore.KindPlayer, Pos: chipcore.Vec2i{X: 0, Y: 0}, FaceDir: chipcore.Right},
	}

	raw := []byte{chipcore.InputRight, chipcore.InputRight}
	encoded, err := EncodeInputs(raw)
	if err != nil {
		t.Fatalf("EncodeInputs: %v", err)
	}

	dto := DTO{
		Ticks:  2,
		Steps:  99, // deliberately wrong
		Seed:   "1",
		Replay: encoded,
	}

	if err := Validate(dto, level); err == nil {
		t.Fatal("Validate should reject a step-count mismatch")
	}
}
