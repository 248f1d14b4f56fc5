package graphstore

// VertexID is a dense, non-negative vertex identifier. Ids are assigned
// monotonically starting at 1; id 0 is reserved and never handed out by
// AddVertex.
type VertexID = uint32

// none is the sentinel value for "no such edge" / "no such vertex head" /
// "freed edge slot". It is the maximum value of the index type.
const none uint32 = ^uint32(0)

// Edge record slot offsets within the edge arena. Every edge record occupies
// four consecutive uint32 slots starting at an index that is a multiple of
// 4; edgeSlots[e+nodeA] etc. address the fields of the record at e.
const (
	nodeA = 0 // id of the first endpoint as stored
	nodeB = 1 // id of the second endpoint as stored
	nextA = 2 // next edge index in nodeA's adjacency thread, or none
	nextB = 3 // next edge index in nodeB's adjacency thread, or none

	edgeRecordWidth = 4
)

// Default growth parameters: additive, not geometric, so a long-running
// loader never triggers a copy of the entire arena to grow by one slot.
const (
	defaultSizeEstimate = 1000
	vertexGrowthStep    = 10_000
	edgeSlotGrowthStep  = 10_000 // in uint32 slots; 10_000/4 payload entries
)

// coordinate is a single vertex's geographic position.
type coordinate struct {
	Lat float32
	Lon float32
}

// Store is the graph store: a vertex table, an edge arena threaded through
// two singly-linked lists per record, and a parallel payload arena. See the
// package doc comment for the storage model and concurrency contract.
type Store struct {
	// vertexHead[v] is the index of the head edge record in v's adjacency
	// thread, or none if v has no incident edges. Index 0 is never
	// meaningfully addressed (vertex id 0 is reserved).
	vertexHead []uint32
	coords     []coordinate

	// nextVertexID is the id that the next AddVertex call will hand out.
	// VertexCount() == nextVertexID - 1.
	nextVertexID uint32

	// edgeSlots is the flat edge arena: edgeRecordWidth uint32s per record.
	edgeSlots []uint32
	// payloads is parallel to edgeSlots at 1/edgeRecordWidth the
	// granularity: payloads[e/edgeRecordWidth] holds the payload for the
	// record at e.
	payloads []Payload
	// nextEdgeSlot is the first never-yet-used slot in edgeSlots; it is
	// always a multiple of edgeRecordWidth.
	nextEdgeSlot uint32
}

// NewStore allocates a Store sized for roughly sizeEstimate vertices and up
// to 3*sizeEstimate edges. sizeEstimate <= 0 selects the default of 1000.
//
// Complexity: O(sizeEstimate).
func NewStore(sizeEstimate int) *Store {
	if sizeEstimate <= 0 {
		sizeEstimate = defaultSizeEstimate
	}

	s := &Store{
		vertexHead:   make([]uint32, sizeEstimate),
		coords:       make([]coordinate, sizeEstimate),
		nextVertexID: 1,
		edgeSlots:    make([]uint32, 3*sizeEstimate*edgeRecordWidth),
		payloads:     make([]Payload, 3*sizeEstimate),
		nextEdgeSlot: 0,
	}
	fillNone(s.vertexHead)
	fillNone(s.edgeSlots)

	return s
}

// fillNone sets every element of buf to the none sentinel.
func fillNone(buf []uint32) {
	for i := range buf {
		buf[i] = none
	}
}
