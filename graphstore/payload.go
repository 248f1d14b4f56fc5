package graphstore

// Payload is the contract the store requires from edge values. Payloads are
// opaque to graphstore: it never inspects anything about them beyond this
// contract, and stores them by value in the payload arena.
//
// Forward reports the payload's own orientation flag. AddEdge rejects
// payloads whose Forward() is false — callers always insert in the
// "forward" direction; the store itself decides when a payload needs to be
// reversed for storage or for return to the caller.
//
// Reverse returns a payload representing the opposite orientation. It must
// not mutate the receiver; graphstore may hold the original and the
// reversed value simultaneously (e.g. while canonicalizing a rediscovered
// edge).
type Payload interface {
	Forward() bool
	Reverse() Payload
}

// Comparator decides whether a duplicate AddEdge should overwrite the
// stored payload. Overlaps reports whether candidate should replace
// existing. A nil Comparator passed to AddEdge means unconditional
// overwrite; a non-nil Comparator that reports false leaves the stored
// payload untouched and performs no insertion.
type Comparator interface {
	Overlaps(candidate, existing Payload) bool
}
