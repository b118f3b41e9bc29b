package mesh

import "math"

// Candidates on the reverse direction of the same edge get this angular
// distance, so walking Next never backtracks along the edge it arrived on
// unless there is nowhere else to go (a dangling edge).
const sameEdgePenalty = 1000.0

// DefineHalfedges instantiates both halfedges of every edge in the graph and
// assigns each halfedge its Next by clockwise angular sweep, so that walking
// Next pointers traces the boundary of the face immediately clockwise of
// each halfedge. Applied to the whole set, this decomposes the plan into
// disjoint closed loops, one per face, including the unbounded outer face.
func (g *Graph) DefineHalfedges() []*Halfedge {
	all := make([]*Halfedge, 0, 2*len(g.edges))
	for _, e := range g.edges {
		hI := e.defineHalfedge(e.VI, g.nextHalfedgeUID)
		g.nextHalfedgeUID++
		hJ := e.defineHalfedge(e.VJ, g.nextHalfedgeUID)
		g.nextHalfedgeUID++
		all = append(all, hI, hJ)
		e.VI.Halfedges = append(e.VI.Halfedges, hI)
		e.VJ.Halfedges = append(e.VJ.Halfedges, hJ)
	}

	// Second pass, now that every halfedge exists: h's Next leaves from the
	// vertex h points to, and among those candidates we take the one
	// angularly closest measured clockwise from the reverse of h's own
	// direction. Ties keep the earliest-registered candidate.
	for _, h := range all {
		vTo := h.Edge.OtherVertex(h.Vertex)
		reverseDir := h.Direction() - math.Pi
		var next *Halfedge
		best := math.Inf(1)
		for _, candidate := range vTo.Halfedges {
			var ang float64
			if candidate.Edge == h.Edge {
				// Otherwise we would always pick the conjugate as next.
				ang = sameEdgePenalty
			} else {
				ang = angReduce(reverseDir - candidate.Direction())
			}
			if ang < best {
				best = ang
				next = candidate
			}
		}
		h.Next = next
	}

	return all
}
