// Package roadseg implements graphstore.Payload and graphstore.Comparator
// for road-network edges: a physical segment with a length, a speed
// limit, a one-way flag, and a functional class.
package roadseg

import "github.com/pajaro5/roadgraph/graphstore"

// Class classifies a road segment by its functional role, from fastest
// and least permeable (Motorway) to slowest and most permeable (Local).
type Class uint8

const (
	Motorway Class = iota
	Trunk
	Primary
	Secondary
	Tertiary
	Residential
	Local
)

// String renders the class name, falling back to "unknown" for values
// outside the declared range.
func (c Class) String() string {
	switch c {
	case Motorway:
		return "motorway"
	case Trunk:
		return "trunk"
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	case Residential:
		return "residential"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// Segment is a graphstore.Payload describing one physical road segment.
// A Segment is immutable once built: Reverse returns a new value rather
// than mutating the receiver.
type Segment struct {
	forward       bool
	LengthM       float32
	SpeedLimitKPH float32
	OneWay        bool
	Class         Class
}

// New builds a Segment in the forward orientation. Panics if lengthM is
// negative: a segment with negative length is a caller bug, not a
// representable edge.
func New(lengthM, speedLimitKPH float32, oneWay bool, class Class) Segment {
	if lengthM < 0 {
		panic("roadseg: lengthM must be >= 0")
	}
	return Segment{forward: true, LengthM: lengthM, SpeedLimitKPH: speedLimitKPH, OneWay: oneWay, Class: class}
}

// Forward reports this Segment's stored orientation.
func (s Segment) Forward() bool { return s.forward }

// Reverse returns the segment read in the opposite direction. Length,
// speed limit, one-way flag, and class are direction-independent
// properties of the physical road and are carried through unchanged.
func (s Segment) Reverse() graphstore.Payload {
	r := s
	r.forward = !s.forward
	return r
}

// TravelTimeSeconds estimates free-flow travel time along the segment at
// its posted speed limit. Returns 1e308, a finite stand-in for +Inf, if
// SpeedLimitKPH <= 0.
func (s Segment) TravelTimeSeconds() float64 {
	if s.SpeedLimitKPH <= 0 {
		return 1e308 // effectively +Inf without importing math for a single constant
	}
	return float64(s.LengthM) / (float64(s.SpeedLimitKPH) * 1000 / 3600)
}

// ClassOverlap is a graphstore.Comparator that overwrites an existing
// segment only when the candidate and existing segment share the same
// Class. A rediscovery that reclassifies the road is treated as not
// overlapping and leaves the existing segment in place.
type ClassOverlap struct{}

// Overlaps reports whether candidate shares existing's Class.
func (ClassOverlap) Overlaps(candidate, existing graphstore.Payload) bool {
	c, ok := candidate.(Segment)
	if !ok {
		return true
	}
	e, ok := existing.(Segment)
	if !ok {
		return true
	}
	return c.Class == e.Class
}
