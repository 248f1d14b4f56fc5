package graphstore_test

import (
	"testing"

	"github.com/pajaro5/roadgraph/graphstore"
)

func BenchmarkAddEdge(b *testing.B) {
	s := graphstore.NewStore(b.N + 1)
	verts := make([]graphstore.VertexID, b.N+1)
	for i := range verts {
		verts[i] = s.AddVertex(float32(i), float32(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.AddEdge(verts[i], verts[i+1], segPayload{forward: true, meters: i}, nil); err != nil {
			b.Fatalf("AddEdge: %v", err)
		}
	}
}

func BenchmarkGetEdges(b *testing.B) {
	s := graphstore.NewStore(1)
	hub := s.AddVertex(0, 0)
	for i := 0; i < 64; i++ {
		v := s.AddVertex(float32(i), float32(i))
		if err := s.AddEdge(hub, v, segPayload{forward: true, meters: i}, nil); err != nil {
			b.Fatalf("AddEdge: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.GetEdges(hub); err != nil {
			b.Fatalf("GetEdges: %v", err)
		}
	}
}

func BenchmarkCompress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := graphstore.NewStore(256)
		verts := make([]graphstore.VertexID, 256)
		for j := range verts {
			verts[j] = s.AddVertex(float32(j), float32(j))
		}
		for j := 0; j < len(verts)-1; j++ {
			if err := s.AddEdge(verts[j], verts[j+1], segPayload{forward: true}, nil); err != nil {
				b.Fatalf("AddEdge: %v", err)
			}
			if j%3 == 0 {
				if err := s.RemoveEdge(verts[j], verts[j+1]); err != nil {
					b.Fatalf("RemoveEdge: %v", err)
				}
			}
		}
		b.StartTimer()

		s.Compress()
	}
}
