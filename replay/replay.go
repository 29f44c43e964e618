// Package replay implements the wire-format codec and validation harness
// for recorded input streams: a JSON envelope around a zlib-compressed,
// base64-encoded byte string, one byte per tick (spec.md §6).
package replay

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/lixenwraith/chipcore"
)

// DTO is the serializable replay envelope. Seed is hex-encoded so replays
// stay readable and diffable in version control.
type DTO struct {
	Date     string  `json:"date,omitempty"`
	Ticks    int32   `json:"ticks"`
	Realtime float32 `json:"realtime"`
	Steps    int32   `json:"steps"`
	Bonks    int32   `json:"bonks"`
	Seed     string  `json:"seed"`
	Replay   string  `json:"replay"`
}

// EncodeInputs compresses and base64-encodes a raw per-tick input byte
// stream for storage in DTO.Replay.
func EncodeInputs(raw []byte) (string, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		return "", fmt.Errorf("replay: compress inputs: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("replay: close compressor: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeInputs reverses EncodeInputs.
func DecodeInputs(encoded string) ([]byte, error) {
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("replay: decode base64: %w", err)
	}
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("replay: open decompressor: %w", err)
	}
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("replay: decompress inputs: %w", err)
	}
	return raw, nil
}

// Marshal encodes a DTO as JSON.
func Marshal(dto DTO) ([]byte, error) {
	b, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("replay: marshal: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a DTO from JSON.
func Unmarshal(data []byte) (DTO, error) {
	var dto DTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return DTO{}, fmt.Errorf("replay: unmarshal: %w", err)
	}
	return dto, nil
}

// SeedFromHex parses DTO.Seed into the uint64 chipcore.Parse expects.
func SeedFromHex(hex string) (uint64, error) {
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("replay: parse seed %q: %w", hex, err)
	}
	return v, nil
}

// Validate replays dto against level from a fresh GameState and asserts
// the recorded ticks/bonks/steps counters match what actually happens —
// the property a corrupted or hand-edited replay file fails (spec.md §8).
func Validate(dto DTO, level chipcore.LevelDTO) error {
	seed, err := SeedFromHex(dto.Seed)
	if err != nil {
		return err
	}
	inputs, err := DecodeInputs(dto.Replay)
	if err != nil {
		return err
	}

	gs, err := chipcore.Parse(level, seed)
	if err != nil {
		return fmt.Errorf("replay: parse level: %w", err)
	}

	for _, b := range inputs {
		gs.Tick(chipcore.DecodeInput(b))
		gs.TakeEvents()
		if gs.IsGameOver() {
			break
		}
	}

	if gs.Time != dto.Ticks {
		return fmt.Errorf("replay: tick mismatch: got %d want %d", gs.Time, dto.Ticks)
	}
	if gs.PS.Bonks != dto.Bonks {
		return fmt.Errorf("replay: bonk mismatch: got %d want %d", gs.PS.Bonks, dto.Bonks)
	}
	if gs.PS.Steps != dto.Steps {
		return fmt.Errorf("replay: step mismatch: got %d want %d", gs.PS.Steps, dto.Steps)
	}
	return nil
}
