package mesh

import (
	"log"

	"github.com/logrusorgru/aurora"
)

// HalfedgeSet is used to mark halfedges during loop extraction.
type HalfedgeSet map[*Halfedge]struct{}

// ObtainClosedLoops partitions the halfedges into the cyclic sequences
// induced by Next. Since Next is a permutation of the halfedge set, every
// halfedge ends up in exactly one loop.
func ObtainClosedLoops(halfedges []*Halfedge) []Loop {
	var loops []Loop
	seen := make(HalfedgeSet, len(halfedges))
	for _, h := range halfedges {
		if _, ok := seen[h]; ok {
			continue
		}
		loop := Loop{h}
		seen[h] = struct{}{}
		for next := h.Next; next != h; next = next.Next {
			loop = append(loop, next)
			seen[next] = struct{}{}
		}
		loops = append(loops, loop)
	}
	return loops
}

// OrientLoops separates loops into external (clockwise, negative signed
// area), internal (counterclockwise, positive — the holes), and trivial
// (area within Epsilon of zero, e.g. h1 -> h2 -> h1 on a dangling edge).
func OrientLoops(loops []Loop) (external, internal, trivial []Loop) {
	for _, loop := range loops {
		area := PolygonArea(loop.Points())
		switch {
		case area > Epsilon:
			internal = append(internal, loop)
		case area < -Epsilon:
			external = append(external, loop)
		default:
			trivial = append(trivial, loop)
		}
	}
	return external, internal, trivial
}

// SanityChecks warns about results that usually mean the input layout is
// disconnected or self-intersecting. For a single simply-connected region we
// expect exactly one external loop and no trivial loops. These are warnings,
// not errors: it is the caller's call whether the model is actually wrong.
func SanityChecks(external, trivial []Loop) {
	for _, loop := range trivial {
		log.Printf("%s: found trivial loop through %v",
			aurora.Yellow("warning"), loop.Points())
	}
	if len(external) > 1 {
		log.Printf("%s: found %d external loops",
			aurora.Yellow("warning"), len(external))
		for i, loop := range external {
			log.Printf("  external loop %d: %v", i+1, loop.Points())
		}
	}
}
