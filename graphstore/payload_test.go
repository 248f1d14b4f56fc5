package graphstore_test

import "github.com/pajaro5/roadgraph/graphstore"

// segPayload is a minimal Payload used across the test suite: it carries a
// direction flag and an arbitrary comparable tag so tests can tell two
// payloads apart after a round trip through the store.
type segPayload struct {
	forward bool
	meters  int
	tag     string
}

func (p segPayload) Forward() bool { return p.forward }

func (p segPayload) Reverse() graphstore.Payload {
	return segPayload{forward: !p.forward, meters: p.meters, tag: p.tag}
}

// funcComparator adapts a plain function to graphstore.Comparator.
type funcComparator func(candidate, existing graphstore.Payload) bool

func (f funcComparator) Overlaps(candidate, existing graphstore.Payload) bool {
	return f(candidate, existing)
}

// alwaysOverlaps is a Comparator equivalent in effect to a nil Comparator,
// used where tests want to be explicit about overwrite intent.
var alwaysOverlaps = funcComparator(func(candidate, existing graphstore.Payload) bool { return true })

// neverOverlaps rejects every overwrite, leaving the stored payload intact.
var neverOverlaps = funcComparator(func(candidate, existing graphstore.Payload) bool { return false })
