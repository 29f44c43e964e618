package chipcore

// EntityHandle is an opaque, generational reference to an Entity. The low
// 32 bits are a slot index; the high 32 bits are a generation counter that
// is bumped every time the slot is recycled, so a handle captured before a
// Remove never resolves to the unrelated entity that later reuses the same
// slot. InvalidHandle (zero) is never issued by Alloc.
type EntityHandle uint64

// InvalidHandle is the reserved zero value meaning "no entity."
const InvalidHandle EntityHandle = 0

func newHandle(index, generation uint32) EntityHandle {
	return EntityHandle(generation)<<32 | EntityHandle(index)
}

func (h EntityHandle) index() uint32 {
	return uint32(h)
}

func (h EntityHandle) generation() uint32 {
	return uint32(h >> 32)
}

type entitySlot struct {
	entity     *Entity
	alive      bool
	generation uint32
}

// EntityStore is a handle-indexed container of Entity records. Iteration
// order matches insertion order and is never reordered by removals —
// creation ordering is part of the determinism contract (spec.md §4.3), so
// dead slots are skipped in place rather than compacted.
type EntityStore struct {
	slots []entitySlot
	order []EntityHandle
	free  []uint32
}

// NewEntityStore creates an empty store. Slot 0 is reserved and never
// allocated, so no issued handle equals InvalidHandle.
func NewEntityStore() *EntityStore {
	return &EntityStore{slots: make([]entitySlot, 1)}
}

// Alloc reserves a new handle without yet storing an Entity value at it.
// Callers follow Alloc with Put before the handle is visited by Iterate.
func (s *EntityStore) Alloc() EntityHandle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, entitySlot{})
	}
	gen := s.slots[idx].generation
	h := newHandle(idx, gen)
	s.slots[idx].alive = true
	s.order = append(s.order, h)
	return h
}

// Put stores e at the handle reserved by a prior Alloc call. e.Handle is
// overwritten with h so callers may construct the Entity value before
// knowing its handle.
func (s *EntityStore) Put(h EntityHandle, e Entity) {
	idx := h.index()
	if idx >= uint32(len(s.slots)) || !s.slots[idx].alive || s.slots[idx].generation != h.generation() {
		return
	}
	e.Handle = h
	s.slots[idx].entity = &e
}

// Get returns a mutable pointer to the entity behind h, or (nil, false) if
// h is stale or was never allocated. The same method serves both the
// "get" and "get_mut" roles spec.md §4.3 names — Go's pointer semantics
// make the distinction unnecessary. Each slot holds a pointer rather than
// an inline value so that Alloc growing s.slots via append never
// invalidates a *Entity a caller is still holding — a think function that
// spawns a clone mid-tick must not dangle the pointer the tick driver is
// iterating with.
func (s *EntityStore) Get(h EntityHandle) (*Entity, bool) {
	idx := h.index()
	if idx >= uint32(len(s.slots)) {
		return nil, false
	}
	slot := &s.slots[idx]
	if !slot.alive || slot.generation != h.generation() {
		return nil, false
	}
	return slot.entity, true
}

// Remove frees the slot behind h, bumping its generation so any retained
// copy of h becomes stale.
func (s *EntityStore) Remove(h EntityHandle) {
	idx := h.index()
	if idx >= uint32(len(s.slots)) {
		return
	}
	slot := &s.slots[idx]
	if !slot.alive {
		return
	}
	slot.alive = false
	slot.generation++
	slot.entity = nil
	s.free = append(s.free, idx)
}

// Iterate calls fn once for every live entity, in creation order.
func (s *EntityStore) Iterate(fn func(h EntityHandle)) {
	for _, h := range s.order {
		idx := h.index()
		if s.slots[idx].alive && s.slots[idx].generation == h.generation() {
			fn(h)
		}
	}
}

// Len returns the number of currently-live entities.
func (s *EntityStore) Len() int {
	n := 0
	for _, h := range s.order {
		idx := h.index()
		if s.slots[idx].alive && s.slots[idx].generation == h.generation() {
			n++
		}
	}
	return n
}
