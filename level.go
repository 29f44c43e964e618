package chipcore

import "fmt"

// EntityArgs describes one entity placement in a level's wire format.
type EntityArgs struct {
	Kind     EntityKind
	Pos      Vec2i
	FaceDir  Compass
	Template bool
}

// LevelDTO is the external, serializable description of a level: the
// terrain grid, its wiring, and the entities placed on it (spec.md §6).
// It is the boundary value between whatever storage/transport format a
// host uses and the in-memory Field/GameState the core operates on.
type LevelDTO struct {
	Width         int
	Height        int
	Terrain       []Terrain
	Connections   []Conn
	TimeLimit     int32
	RequiredChips int32
	Entities      []EntityArgs
}

// Parse builds a fresh GameState from dto and seed. The returned state has
// not yet ticked; TimeLimit-expiry and determinism both begin counting
// from Time == 0 on the first Tick call.
func Parse(dto LevelDTO, seed uint64) (*GameState, error) {
	field := &Field{
		Width:         dto.Width,
		Height:        dto.Height,
		Terrain:       dto.Terrain,
		Connections:   dto.Connections,
		TimeLimit:     dto.TimeLimit,
		RequiredChips: dto.RequiredChips,
	}
	if err := field.Validate(); err != nil {
		return nil, err
	}
	for i, t := range dto.Terrain {
		if t >= terrainCount {
			return nil, fmt.Errorf("%w: unknown terrain %d at index %d", ErrMalformedLevel, t, i)
		}
	}

	gs := NewGameState(field, seed)

	playerPlaced := false
	for _, a := range dto.Entities {
		if a.Kind >= kindCount {
			return nil, fmt.Errorf("%w: unknown entity kind %d", ErrMalformedLevel, a.Kind)
		}
		if !a.Pos.InBounds(field.Width, field.Height) {
			return nil, fmt.Errorf("%w: entity %v placed out of bounds at %v", ErrMalformedLevel, a.Kind, a.Pos)
		}
		isPlayer := a.Kind == KindPlayer
		h := gs.spawnEntity(a.Kind, a.Pos, a.FaceDir, isPlayer)
		if a.Template {
			if e, ok := gs.Store.Get(h); ok {
				e.Flags |= FlagTemplate
			}
		}
		if isPlayer {
			if playerPlaced {
				return nil, fmt.Errorf("%w: more than one Player entity", ErrMalformedLevel)
			}
			playerPlaced = true
		}
	}
	if !playerPlaced {
		return nil, fmt.Errorf("%w: no Player entity placed", ErrMalformedLevel)
	}

	return gs, nil
}
