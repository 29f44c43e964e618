// Package chipcore implements the deterministic gameplay simulation core
// for a tile-based puzzle game in the Chip's Challenge (Lynx ruleset)
// lineage.
//
// The core owns the terrain grid, the entity store, the occupancy index,
// player input and inventory, the per-kind creature/object behavior
// tables, the movement/collision kernel, and the event log. It performs no
// I/O: a host supplies one Input per call to Tick and drains GameEvents
// between calls. Given identical (Field, seed, inputs) the core reproduces
// identical (time, bonks, steps, events) on every run — this is the
// property replays and test suites depend on.
package chipcore
