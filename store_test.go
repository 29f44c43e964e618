package chipcore

import "testing"

func TestStoreAllocPutGet(t *testing.T) {
	s := NewEntityStore()
	h := s.Alloc()
	s.Put(h, Entity{Kind: KindBlock, Pos: Vec2i{X: 1, Y: 2}})

	e, ok := s.Get(h)
	if !ok {
		t.Fatal("Get after Put should succeed")
	}
	if e.Kind != KindBlock || e.Pos != (Vec2i{X: 1, Y: 2}) {
		t.Fatalf("got %+v, want Kind=Block Pos=(1,2)", e)
	}
	if e.Handle != h {
		t.Fatalf("Put should stamp e.Handle, got %v want %v", e.Handle, h)
	}
}

// TestStoreStaleHandleAfterRemove verifies the generational-handle
// contract: a handle captured before Remove must never resolve to an
// unrelated entity that later reuses the same slot.
func TestStoreStaleHandleAfterRemove(t *testing.T) {
	s := NewEntityStore()
	h1 := s.Alloc()
	s.Put(h1, Entity{Kind: KindChip})
	s.Remove(h1)

	h2 := s.Alloc()
	s.Put(h2, Entity{Kind: KindBomb})

	if h1 == h2 {
		t.Fatal("recycled slot must bump generation, producing a distinct handle")
	}
	if _, ok := s.Get(h1); ok {
		t.Fatal("stale handle from before Remove must not resolve")
	}
	e2, ok := s.Get(h2)
	if !ok || e2.Kind != KindBomb {
		t.Fatalf("fresh handle should resolve to the new entity, got %+v ok=%v", e2, ok)
	}
}

// TestStorePointerStableAcrossAlloc exercises the reason entitySlot.entity
// is a pointer: growing s.slots via append (from a second Alloc) must not
// invalidate a *Entity a caller obtained from an earlier Get.
func TestStorePointerStableAcrossAlloc(t *testing.T) {
	s := NewEntityStore()
	h1 := s.Alloc()
	s.Put(h1, Entity{Kind: KindTank, Pos: Vec2i{X: 0, Y: 0}})

	held, ok := s.Get(h1)
	if !ok {
		t.Fatal("Get should succeed")
	}

	for i := 0; i < 64; i++ {
		h := s.Alloc()
		s.Put(h, Entity{Kind: KindWalker, Pos: Vec2i{X: i, Y: i}})
	}

	held.Pos = Vec2i{X: 9, Y: 9}
	again, ok := s.Get(h1)
	if !ok {
		t.Fatal("Get should still succeed after many Allocs")
	}
	if again.Pos != (Vec2i{X: 9, Y: 9}) {
		t.Fatal("pointer captured before growth should still alias the same entity")
	}
}

func TestStoreIterateSkipsDeadAndPreservesOrder(t *testing.T) {
	s := NewEntityStore()
	h1 := s.Alloc()
	s.Put(h1, Entity{Kind: KindPlayer})
	h2 := s.Alloc()
	s.Put(h2, Entity{Kind: KindBlock})
	h3 := s.Alloc()
	s.Put(h3, Entity{Kind: KindTank})

	s.Remove(h2)

	var seen []EntityHandle
	s.Iterate(func(h EntityHandle) { seen = append(seen, h) })

	if len(seen) != 2 || seen[0] != h1 || seen[1] != h3 {
		t.Fatalf("Iterate = %v, want [%v %v] (creation order, dead slot skipped)", seen, h1, h3)
	}
	if n := s.Len(); n != 2 {
		t.Fatalf("Len = %d, want 2", n)
	}
}
