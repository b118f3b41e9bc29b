package mesh

import "math"

// OverlapsOrCrosses checks if the edge overlaps or crosses another edge.
// Edges are allowed to share one vertex (returns false), but not to cross
// strictly inside their interiors or to overlap along a collinear stretch
// (returns true).
func (e *Edge) OverlapsOrCrosses(other *Edge) bool {
	// Origin and direction of this edge.
	ra := e.VI.Coords
	da := Point{e.VJ.Coords.X - ra.X, e.VJ.Coords.Y - ra.Y}
	// Origin and direction of the other edge.
	rb := other.VI.Coords
	db := Point{other.VJ.Coords.X - rb.X, other.VJ.Coords.Y - rb.Y}

	if Equal(dot(da, da), 0) {
		fatalf("zero-length edge %s", e)
	}
	if Equal(dot(db, db), 0) {
		fatalf("zero-length edge %s", other)
	}

	// Solve ra + u*da = rb + v*db, i.e. the 2x2 system with columns
	// (da, -db) and right hand side rb - ra.
	bx := rb.X - ra.X
	by := rb.Y - ra.Y
	det := da.X*(-db.Y) - (-db.X)*da.Y

	if Equal(det, 0) {
		// The edges are parallel: no solutions, or infinitely many. If they
		// are parallel but not collinear they cannot overlap. If they are
		// collinear they might, depending on their relative position along
		// the common line.

		// Project the other edge's origin onto this edge's line and measure
		// the perpendicular distance.
		t := (bx*da.X + by*da.Y) / dot(da, da)
		proj := Point{ra.X + t*da.X, ra.Y + t*da.Y}
		dist := math.Hypot(rb.X-proj.X, rb.Y-proj.Y)
		if !Equal(dist, 0) {
			return false
		}

		// Collinear. Express both endpoints of the other edge in this edge's
		// parametrization: ci for its start, cj for its end. ci/cj of 0 and 1
		// land on this edge's own endpoints.
		ci := (da.X*bx + da.Y*by) / dot(da, da)
		cj := (da.X*(bx+db.X) + da.Y*(by+db.Y)) / dot(da, da)

		// A clean shared endpoint is the only contact that does not count as
		// an overlap: one parameter sits exactly on 0 or 1 while the other
		// points away from the interior.
		if (ci < -Epsilon && Equal(cj, 0)) ||
			(ci > 1+Epsilon && Equal(cj, 1)) ||
			(Equal(ci, 1) && cj > 1+Epsilon) ||
			(Equal(ci, 0) && cj < -Epsilon) {
			return false
		}
		// Entirely before or entirely after: no contact at all.
		if (ci < -Epsilon && cj < -Epsilon) || (ci > 1+Epsilon && cj > 1+Epsilon) {
			return false
		}
		// Anything else straddles or sits inside (0, 1).
		return true
	}

	// Not parallel: a unique solution exists. The edges cross within their
	// lengths only if both parameters are strictly interior; extensions
	// crossing outside the segments are not an issue.
	u := (bx*(-db.Y) - (-db.X)*by) / det
	v := (da.X*by - da.Y*bx) / det
	return 0 < u && u < 1 && 0 < v && v < 1
}

func dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}
