package chipcore

// thinkStatic is shared by every kind that never acts on its own: chip
// socket, thief, pickups, and the bomb. Each of these only does anything
// as the reactive target of a mover stepping onto its cell, which is
// handled in resolveOccupants and collectItems rather than here.
func thinkStatic(gs *GameState, e *Entity) {}
