package graphstore

import "errors"

// Sentinel errors for graphstore operations. Callers must branch on these
// with errors.Is; they are never wrapped with formatted context at the
// definition site.
var (
	// ErrOutOfRange indicates a vertex id argument is >= the store's
	// next-vertex-id counter, i.e. it was never returned by AddVertex.
	ErrOutOfRange = errors.New("graphstore: vertex id out of range")

	// ErrInvalidArgument indicates a self-loop (u == w) was requested, or a
	// payload whose Forward() flag is false was passed to AddEdge.
	ErrInvalidArgument = errors.New("graphstore: invalid argument")

	// ErrCorruptGraph indicates RemoveEdge located the edge from u's thread
	// but not from w's thread — a violation of invariant 2 (dual
	// reachability). This is fatal: it means the graph was mutated outside
	// the documented API, or a prior bug left the two threads inconsistent.
	ErrCorruptGraph = errors.New("graphstore: corrupt graph: edge not reachable from both endpoints")
)
