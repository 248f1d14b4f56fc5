package graphstore_test

import (
	"testing"

	"github.com/pajaro5/roadgraph/graphstore"
)

// TestStore_EdgeArenaUsage_TracksLiveRecords verifies live counts drop after
// RemoveEdge and capacity is non-zero.
func TestStore_EdgeArenaUsage_TracksLiveRecords(t *testing.T) {
	s := graphstore.NewStore(2)
	a := s.AddVertex(0, 0)
	b := s.AddVertex(1, 1)
	c := s.AddVertex(2, 2)

	if err := s.AddEdge(a, b, segPayload{forward: true, meters: 1}, nil); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := s.AddEdge(a, c, segPayload{forward: true, meters: 2}, nil); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	live, capacity := s.EdgeArenaUsage()
	if live != 2 {
		t.Fatalf("live = %d, want 2", live)
	}
	if capacity == 0 {
		t.Fatal("capacity = 0, want > 0")
	}

	if err := s.RemoveEdge(a, b); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	live, _ = s.EdgeArenaUsage()
	if live != 1 {
		t.Fatalf("live after RemoveEdge = %d, want 1", live)
	}
}

// TestStore_AddVertex_Monotonic verifies property P7: successive AddVertex
// calls return strictly increasing ids starting at 1.
func TestStore_AddVertex_Monotonic(t *testing.T) {
	s := graphstore.NewStore(4)

	a := s.AddVertex(1.0, 2.0)
	b := s.AddVertex(3.0, 4.0)
	c := s.AddVertex(5.0, 6.0)

	if a != 1 {
		t.Fatalf("first vertex id = %d, want 1", a)
	}
	if b != a+1 || c != b+1 {
		t.Fatalf("ids not strictly increasing: %d, %d, %d", a, b, c)
	}
}

// TestStore_AddVertex_GrowsTable exercises the growth path by adding more
// vertices than the initial size estimate.
func TestStore_AddVertex_GrowsTable(t *testing.T) {
	s := graphstore.NewStore(2)

	var last graphstore.VertexID
	for i := 0; i < 5; i++ {
		last = s.AddVertex(float32(i), float32(-i))
	}
	if last != 5 {
		t.Fatalf("last id = %d, want 5", last)
	}
	if s.VertexCount() != 5 {
		t.Fatalf("VertexCount() = %d, want 5", s.VertexCount())
	}

	lat, lon, ok := s.GetVertex(3)
	if !ok {
		t.Fatalf("GetVertex(3) not found after growth")
	}
	if lat != 2 || lon != -2 {
		t.Fatalf("GetVertex(3) = (%v, %v), want (2, -2)", lat, lon)
	}
}

// TestStore_SetVertex_OutOfRange verifies SetVertex rejects ids never
// handed out by AddVertex.
func TestStore_SetVertex_OutOfRange(t *testing.T) {
	s := graphstore.NewStore(4)
	s.AddVertex(0, 0)

	err := s.SetVertex(99, 1, 1)
	if err != graphstore.ErrOutOfRange {
		t.Fatalf("SetVertex(99, ...) error = %v, want ErrOutOfRange", err)
	}
}

// TestStore_SetVertex_Overwrites verifies coordinates are mutable via
// SetVertex.
func TestStore_SetVertex_Overwrites(t *testing.T) {
	s := graphstore.NewStore(4)
	v := s.AddVertex(1, 1)

	if err := s.SetVertex(v, 9, 9); err != nil {
		t.Fatalf("SetVertex: %v", err)
	}

	lat, lon, ok := s.GetVertex(v)
	if !ok || lat != 9 || lon != 9 {
		t.Fatalf("GetVertex(v) = (%v, %v, %v), want (9, 9, true)", lat, lon, ok)
	}
}

// TestStore_GetVertex_Absent verifies GetVertex returns ok=false for vertex
// id 0 (reserved) and for ids beyond nextVertexID.
func TestStore_GetVertex_Absent(t *testing.T) {
	s := graphstore.NewStore(4)
	s.AddVertex(0, 0)

	if _, _, ok := s.GetVertex(0); ok {
		t.Fatalf("GetVertex(0) = ok, want absent (id 0 reserved)")
	}
	if _, _, ok := s.GetVertex(42); ok {
		t.Fatalf("GetVertex(42) = ok, want absent (never assigned)")
	}
}

// TestStore_VertexCount_MatchesAddVertexCalls verifies VertexCount tracks
// nextVertexID - 1 across growth.
func TestStore_VertexCount_MatchesAddVertexCalls(t *testing.T) {
	s := graphstore.NewStore(1)
	if s.VertexCount() != 0 {
		t.Fatalf("VertexCount() on empty store = %d, want 0", s.VertexCount())
	}
	for i := 0; i < 10; i++ {
		s.AddVertex(0, 0)
	}
	if s.VertexCount() != 10 {
		t.Fatalf("VertexCount() = %d, want 10", s.VertexCount())
	}
}
