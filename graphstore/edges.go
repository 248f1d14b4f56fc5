package graphstore

// NeighborEdge is one result of GetEdges: a neighbor vertex id paired with
// the payload normalized to read "from" the vertex GetEdges was called on.
type NeighborEdge struct {
	Neighbor VertexID
	Payload  Payload
}

// findOther returns the endpoint of edge record e that is not v.
// Precondition: v is one of the two endpoints stored at e.
func (s *Store) findOther(e uint32, v VertexID) VertexID {
	if s.edgeSlots[e+nodeA] == v {
		return s.edgeSlots[e+nodeB]
	}

	return s.edgeSlots[e+nodeA]
}

// threadNext returns the next edge index in v's adjacency thread at record
// e: whichever of NEXT_A/NEXT_B belongs to v.
func (s *Store) threadNext(e uint32, v VertexID) uint32 {
	if s.edgeSlots[e+nodeA] == v {
		return s.edgeSlots[e+nextA]
	}

	return s.edgeSlots[e+nextB]
}

// setThreadNext writes next into whichever of NEXT_A/NEXT_B belongs to v at
// record e.
func (s *Store) setThreadNext(e uint32, v VertexID, next uint32) {
	if s.edgeSlots[e+nodeA] == v {
		s.edgeSlots[e+nextA] = next
	} else {
		s.edgeSlots[e+nextB] = next
	}
}

// growEdges extends the edge arena by edgeSlotGrowthStep slots and the
// payload arena by the corresponding number of records, leaving new edge
// slots at none.
func (s *Store) growEdges() {
	grown := make([]uint32, len(s.edgeSlots)+edgeSlotGrowthStep)
	copy(grown, s.edgeSlots)
	fillNone(grown[len(s.edgeSlots):])
	s.edgeSlots = grown

	grownPayloads := make([]Payload, len(s.payloads)+edgeSlotGrowthStep/edgeRecordWidth)
	copy(grownPayloads, s.payloads)
	s.payloads = grownPayloads
}

// AddEdge creates the edge {u, w} with the given payload if absent, or
// overwrites the existing payload if present (subject to cmp, see
// Comparator). payload must have Forward() == true; u must differ from w.
//
// Steps:
//  1. Walk u's thread looking for an existing record with the other
//     endpoint == w, remembering the tail (last u-successor slot) in case
//     no match is found.
//  2. If found: canonicalize payload to the record's stored orientation and
//     overwrite per cmp (nil comparator ⇒ unconditional overwrite; a
//     comparator that reports no overlap ⇒ leave untouched, no error).
//  3. If not found: allocate a new 4-slot record (growing the arena if
//     full), link it at the tail of u's thread (or as u's head if u had no
//     edges), then walk w's thread to its tail and link it there too (or as
//     w's head).
//
// Complexity: O(deg(u) + deg(w)) for the thread walks; O(1) amortized
// beyond that.
// Concurrency: none — caller must hold exclusive access.
func (s *Store) AddEdge(u, w VertexID, payload Payload, cmp Comparator) error {
	if u == w {
		return ErrInvalidArgument
	}
	if !payload.Forward() {
		return ErrInvalidArgument
	}
	if u >= s.nextVertexID || w >= s.nextVertexID {
		return ErrOutOfRange
	}

	// Stage 1: scan u's thread for an existing {u,w} record.
	tailU := none
	cur := s.vertexHead[u]
	for cur != none {
		if s.findOther(cur, u) == w {
			// Stage 2: found — canonicalize orientation and overwrite.
			var canon Payload
			if s.edgeSlots[cur+nodeA] == u {
				canon = payload
			} else {
				canon = payload.Reverse()
			}
			idx := cur / edgeRecordWidth
			if cmp == nil || cmp.Overlaps(canon, s.payloads[idx]) {
				s.payloads[idx] = canon
			}

			return nil
		}
		tailU = cur
		cur = s.threadNext(cur, u)
	}

	// Stage 3: not found — allocate a new record.
	if int(s.nextEdgeSlot)+edgeRecordWidth > len(s.edgeSlots) {
		s.growEdges()
	}
	newSlot := s.nextEdgeSlot
	s.edgeSlots[newSlot+nodeA] = u
	s.edgeSlots[newSlot+nodeB] = w
	s.edgeSlots[newSlot+nextA] = none
	s.edgeSlots[newSlot+nextB] = none
	s.nextEdgeSlot += edgeRecordWidth
	s.payloads[newSlot/edgeRecordWidth] = payload

	// Link into u's thread.
	if tailU == none {
		s.vertexHead[u] = newSlot
	} else {
		s.setThreadNext(tailU, u, newSlot)
	}

	// Link into w's thread: walk to its tail (or empty head).
	if s.vertexHead[w] == none {
		s.vertexHead[w] = newSlot
	} else {
		tailW := s.vertexHead[w]
		for n := s.threadNext(tailW, w); n != none; n = s.threadNext(tailW, w) {
			tailW = n
		}
		s.setThreadNext(tailW, w, newSlot)
	}

	return nil
}

// unlinkFromThread walks v's thread looking for a record whose other
// endpoint is other; if found, unlinks it from v's thread (rewriting
// vertexHead[v] or the previous record's v-successor slot) and returns its
// edge index. Does not touch the other endpoint's thread.
func (s *Store) unlinkFromThread(v, other VertexID) (uint32, bool) {
	prev := none
	cur := s.vertexHead[v]
	for cur != none {
		if s.findOther(cur, v) == other {
			next := s.threadNext(cur, v)
			if prev == none {
				s.vertexHead[v] = next
			} else {
				s.setThreadNext(prev, v, next)
			}

			return cur, true
		}
		prev = cur
		cur = s.threadNext(cur, v)
	}

	return 0, false
}

// RemoveEdge deletes the edge {u, w} if present; a no-op if absent.
//
// Returns ErrOutOfRange for an unknown vertex, or ErrCorruptGraph if the
// edge was found from u's side but not from w's side (invariant-2
// violation: the edge was not reachable from both endpoints).
//
// Complexity: O(deg(u) + deg(w)).
// Concurrency: none — caller must hold exclusive access.
func (s *Store) RemoveEdge(u, w VertexID) error {
	if u >= s.nextVertexID || w >= s.nextVertexID {
		return ErrOutOfRange
	}
	if s.vertexHead[u] == none || s.vertexHead[w] == none {
		return nil
	}

	edgeID, foundU := s.unlinkFromThread(u, w)
	if !foundU {
		return nil
	}
	if _, foundW := s.unlinkFromThread(w, u); !foundW {
		return ErrCorruptGraph
	}

	s.edgeSlots[edgeID+nodeA] = none
	s.edgeSlots[edgeID+nodeB] = none
	s.edgeSlots[edgeID+nextA] = none
	s.edgeSlots[edgeID+nextB] = none
	s.payloads[edgeID/edgeRecordWidth] = nil

	return nil
}

// RemoveEdges deletes every edge incident to v. The neighbor list is
// materialized before any removal to avoid mutating v's thread while
// walking it.
//
// Complexity: O(deg(v)^2) worst case (each RemoveEdge rewalks both
// threads).
// Concurrency: none — caller must hold exclusive access.
func (s *Store) RemoveEdges(v VertexID) error {
	if v >= s.nextVertexID {
		return ErrOutOfRange
	}

	var neighbors []VertexID
	for cur := s.vertexHead[v]; cur != none; cur = s.threadNext(cur, v) {
		neighbors = append(neighbors, s.findOther(cur, v))
	}

	for _, n := range neighbors {
		if err := s.RemoveEdge(v, n); err != nil {
			return err
		}
	}

	return nil
}

// GetEdges returns every edge incident to v, in insertion order into v's
// thread, with payloads normalized to read "from v".
//
// Complexity: O(deg(v)).
func (s *Store) GetEdges(v VertexID) ([]NeighborEdge, error) {
	if v >= s.nextVertexID {
		return nil, ErrOutOfRange
	}

	var out []NeighborEdge
	for cur := s.vertexHead[v]; cur != none; cur = s.threadNext(cur, v) {
		p := s.payloads[cur/edgeRecordWidth]
		if s.edgeSlots[cur+nodeA] == v {
			out = append(out, NeighborEdge{Neighbor: s.edgeSlots[cur+nodeB], Payload: p})
		} else {
			out = append(out, NeighborEdge{Neighbor: s.edgeSlots[cur+nodeA], Payload: p.Reverse()})
		}
	}

	return out, nil
}

// ContainsEdge reports whether the edge {u, w} exists.
//
// Complexity: O(deg(u)).
func (s *Store) ContainsEdge(u, w VertexID) (bool, error) {
	if u >= s.nextVertexID || w >= s.nextVertexID {
		return false, ErrOutOfRange
	}

	for cur := s.vertexHead[u]; cur != none; cur = s.threadNext(cur, u) {
		if s.findOther(cur, u) == w {
			return true, nil
		}
	}

	return false, nil
}

// GetEdge returns the payload of edge {u, w} normalized to read "from u",
// or ok == false if no such edge exists.
//
// Complexity: O(deg(u)).
func (s *Store) GetEdge(u, w VertexID) (payload Payload, ok bool, err error) {
	if u >= s.nextVertexID || w >= s.nextVertexID {
		return nil, false, ErrOutOfRange
	}

	for cur := s.vertexHead[u]; cur != none; cur = s.threadNext(cur, u) {
		if s.findOther(cur, u) == w {
			p := s.payloads[cur/edgeRecordWidth]
			if s.edgeSlots[cur+nodeB] == u {
				return p.Reverse(), true, nil
			}

			return p, true, nil
		}
	}

	return nil, false, nil
}
