package graphstore_test

import (
	"fmt"

	"github.com/pajaro5/roadgraph/graphstore"
)

// roadSegment is a tiny standalone Payload used only in this example, kept
// separate from segPayload so the example reads as a self-contained unit.
type roadSegment struct {
	forward bool
	meters  int
}

func (r roadSegment) Forward() bool { return r.forward }

func (r roadSegment) Reverse() graphstore.Payload {
	return roadSegment{forward: !r.forward, meters: r.meters}
}

func Example() {
	s := graphstore.NewStore(0)

	origin := s.AddVertex(47.6062, -122.3321)
	dest := s.AddVertex(47.6205, -122.3493)

	if err := s.AddEdge(origin, dest, roadSegment{forward: true, meters: 1800}, nil); err != nil {
		fmt.Println("AddEdge failed:", err)
		return
	}

	seg, ok, err := s.GetEdge(dest, origin)
	if err != nil || !ok {
		fmt.Println("GetEdge failed:", err)
		return
	}

	fmt.Println(seg.(roadSegment).meters)
	// Output: 1800
}
