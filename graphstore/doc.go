// Package graphstore implements an in-memory dynamic undirected graph with
// directional edge payloads, used to back a road-network routing engine.
//
// Vertices carry geographic coordinates (latitude/longitude). Edges carry an
// opaque Payload whose orientation is meaningful: a payload read "from A to
// B" is always normalized to A→B regardless of how the underlying record is
// physically stored.
//
// Storage model
//
// The store is an intrusive doubly-threaded adjacency list over four
// parallel flat arrays: a vertex table (head edge slot + coordinate per
// vertex id), an edge arena (one 4-slot record per edge: two endpoints, two
// "next" thread pointers), and a payload arena parallel to the edge arena.
// Every edge record is simultaneously a node in two singly-linked lists, one
// per endpoint — walking, inserting, deleting, and compacting are all index
// arithmetic over the arrays, with no per-edge allocation.
//
// Concurrency
//
// A Store is single-writer with no internal synchronization: all operations
// assume exclusive access by the caller. Concurrent mutation is undefined
// behavior; concurrent read-only access is safe only while no writer is
// active, and callers must enforce that externally. Collaborators that need
// concurrent access wrap a Store behind their own locking, rather than
// paying for synchronization on every call here.
//
// Vertex ids and edge slot indices are opaque to callers. Vertex ids survive
// Compress (aside from a reclaimed trailing run of unused ids); edge slot
// indices do not and are never exposed through the public API.
package graphstore
