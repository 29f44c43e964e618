package chipcore

import "errors"

// Error classes the core recognizes (spec.md §7). Callers use errors.Is to
// test which class a returned error belongs to; wrapped detail is added
// with fmt.Errorf("%w: ...", ErrX, ...).
var (
	// ErrMalformedLevel is returned by Parse when a LevelDTO fails
	// structural validation: unknown terrain or entity kind value, map size
	// mismatch, an entity/connection placed out of bounds, or a missing or
	// duplicate Player.
	ErrMalformedLevel = errors.New("chipcore: malformed level")

	// ErrInvariant marks an internal invariant violation (occupancy index
	// full, dangling handle). In StrictMode this is raised as a panic; the
	// error value exists for the rare code path that can report it as a
	// recoverable condition instead (see StrictMode in quadtree.go).
	ErrInvariant = errors.New("chipcore: invariant violation")
)

// StrictMode gates whether invariant violations panic (development/test
// builds) or are silently dropped to keep the simulation deterministic and
// running (release builds). spec.md §7: "fatal in debug; in release,
// best-effort no-op."
var StrictMode = false
