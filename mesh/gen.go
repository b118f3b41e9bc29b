package mesh

// Section outline generators. Each builds an ordered vertex ring, runs it
// through the halfedge pipeline, and keeps the counterclockwise loop, so a
// section mesh always has positive area regardless of the order the outline
// was written in.

// RingMesh builds a single-loop mesh from an ordered vertex ring (first
// point not repeated at the end). The ring must be simple and have at least
// three points.
func RingMesh(pts []Point) *Mesh {
	if len(pts) < 3 {
		fatalf("ring needs at least three points, got %d", len(pts))
	}
	g := NewGraph()
	for i, p := range pts {
		g.Connect(p, pts[(i+1)%len(pts)])
	}
	halfedges := g.DefineHalfedges()
	_, internal, _ := OrientLoops(ObtainClosedLoops(halfedges))
	if len(internal) != 1 {
		fatalf("ring through %v is not a simple polygon", pts)
	}
	return &Mesh{Halfedges: internal[0]}
}

// RectMesh generates a b-by-h rectangular section centered on the origin.
func RectMesh(b, h float64) *Mesh {
	return RingMesh([]Point{
		{b / 2, h / 2},
		{-b / 2, h / 2},
		{-b / 2, -h / 2},
		{b / 2, -h / 2},
	})
}

// WMesh generates a wide-flange (W shape) outline centered on the origin.
// b is the flange width, d the section depth, tw the web thickness and tf
// the flange thickness.
func WMesh(b, d, tw, tf float64) *Mesh {
	return RingMesh([]Point{
		{b / 2, d / 2},
		{-b / 2, d / 2},
		{-b / 2, d/2 - tf},
		{-tw / 2, d/2 - tf},
		{-tw / 2, -d/2 + tf},
		{-b / 2, -d/2 + tf},
		{-b / 2, -d / 2},
		{b / 2, -d / 2},
		{b / 2, -d/2 + tf},
		{tw / 2, -d/2 + tf},
		{tw / 2, d/2 - tf},
		{b / 2, d/2 - tf},
	})
}

// HSSRectMesh generates a hollow rectangular (tube) section as two meshes:
// the outer boundary spanning x in [-h, h] and y in [-b, b], and the hole
// inset by the wall thickness t.
func HSSRectMesh(h, b, t float64) (outer, hole *Mesh) {
	outer = RingMesh([]Point{
		{h, b},
		{h, -b},
		{-h, -b},
		{-h, b},
	})
	hole = RingMesh([]Point{
		{h - t, b - t},
		{h - t, -b + t},
		{-h + t, -b + t},
		{-h + t, b - t},
	})
	return outer, hole
}
