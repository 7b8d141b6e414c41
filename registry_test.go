package main

import (
	"math/rand"
	"testing"
)

func TestRegistryAddMoveRemove(t *testing.T) {
	reg := NewListenerRegistry(16)
	l := NewListener(0, nil)
	id := reg.Add(l, Vec3{X: 5, Y: 5})
	if reg.Len() != 1 {
		t.Fatalf("registry length %d after add, want 1", reg.Len())
	}

	hits := reg.ListenersWithin(Vec3{X: 5, Y: 5}, 1, nil)
	if len(hits) != 1 || hits[0].Listener != l {
		t.Fatalf("query after add returned %d hits", len(hits))
	}

	// Move across a cell boundary and query at the new position.
	reg.Move(id, Vec3{X: 100, Y: 100})
	if hits := reg.ListenersWithin(Vec3{X: 5, Y: 5}, 1, nil); len(hits) != 0 {
		t.Fatalf("stale position still queryable after move")
	}
	hits = reg.ListenersWithin(Vec3{X: 100, Y: 100}, 1, nil)
	if len(hits) != 1 || hits[0].Pos != (Vec3{X: 100, Y: 100}) {
		t.Fatalf("query after move returned %v", hits)
	}

	reg.Remove(id)
	if reg.Len() != 0 {
		t.Fatalf("registry length %d after remove, want 0", reg.Len())
	}
	if hits := reg.ListenersWithin(Vec3{X: 100, Y: 100}, 1, nil); len(hits) != 0 {
		t.Fatalf("removed listener still queryable")
	}

	// Unknown IDs are ignored.
	reg.Remove(id)
	reg.Move(id, Vec3{})
}

func TestRegistryQueryMatchesBruteForce(t *testing.T) {
	reg := NewListenerRegistry(16)
	rng := rand.New(rand.NewSource(7))

	type placed struct {
		l   *Listener
		pos Vec3
	}
	var all []placed
	for i := 0; i < 200; i++ {
		l := NewListener(0, nil)
		pos := Vec3{X: rng.Float64() * 256, Y: rng.Float64() * 256}
		reg.Add(l, pos)
		all = append(all, placed{l: l, pos: pos})
	}

	for trial := 0; trial < 50; trial++ {
		center := Vec3{X: rng.Float64() * 256, Y: rng.Float64() * 256}
		radius := rng.Float64() * 60
		got := reg.ListenersWithin(center, radius, nil)

		want := map[*Listener]bool{}
		for _, p := range all {
			if p.pos.DistanceTo(center) <= radius {
				want[p.l] = true
			}
		}
		if len(got) != len(want) {
			t.Fatalf("trial %d: query returned %d hits, brute force found %d", trial, len(got), len(want))
		}
		for _, h := range got {
			if !want[h.Listener] {
				t.Fatalf("trial %d: query returned a listener outside the radius", trial)
			}
		}
	}
}

func TestRegistryQueryAppendsToBuffer(t *testing.T) {
	reg := NewListenerRegistry(16)
	reg.Add(NewListener(0, nil), Vec3{X: 1})
	reg.Add(NewListener(0, nil), Vec3{X: 2})

	buf := make([]ListenerHit, 0, 8)
	out := reg.ListenersWithin(Vec3{}, 10, buf)
	if len(out) != 2 {
		t.Fatalf("query returned %d hits, want 2", len(out))
	}
	if cap(out) != cap(buf) {
		t.Fatalf("query reallocated a buffer with spare capacity")
	}
}

func TestRegistryZeroRadius(t *testing.T) {
	reg := NewListenerRegistry(16)
	reg.Add(NewListener(0, nil), Vec3{})
	if hits := reg.ListenersWithin(Vec3{}, 0, nil); len(hits) != 0 {
		t.Fatalf("zero-radius query returned %d hits", len(hits))
	}
}
