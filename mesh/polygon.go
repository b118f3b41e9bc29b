package mesh

// Shoelace-type formulas for the area, centroid and second moments of simple
// polygons. Every function takes the boundary as an ordered ring without the
// first point repeated at the end; the wrap-around term is handled
// internally. The sign of the area encodes winding: counterclockwise is
// positive.

// Inertia collects the second moments of a polygon: the planar moments
// about the two axes, the product of inertia, the polar moment, and the
// polar moment divided by area (the mass-moment equivalent used for
// diaphragm rotational inertia).
type Inertia struct {
	Ixx    float64
	Iyy    float64
	Ixy    float64
	Ir     float64
	IrMass float64
}

// Properties aggregates the results of the polygon formulas. The moments
// are taken about the centroid.
type Properties struct {
	Area     float64
	Centroid Point
	Inertia  Inertia
}

// PolygonArea computes the signed area via the shoelace sum.
func PolygonArea(pts []Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// PolygonCentroid computes the area-weighted centroid. The polygon must
// have nonzero area.
func PolygonCentroid(pts []Point) Point {
	area := PolygonArea(pts)
	if Equal(area, 0) {
		fatalf("centroid of zero-area polygon through %v", pts)
	}
	var cx, cy float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		cross := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	return Point{cx / (6 * area), cy / (6 * area)}
}

// PolygonInertia computes the second moments about the coordinate axes.
// For moments about the centroid, shift the ring first; GeometricProperties
// does that for you.
func PolygonInertia(pts []Point) Inertia {
	area := PolygonArea(pts)
	var ixx, iyy, ixy float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		alpha := p.X*q.Y - q.X*p.Y
		ixx += (p.Y*p.Y + p.Y*q.Y + q.Y*q.Y) * alpha
		iyy += (p.X*p.X + p.X*q.X + q.X*q.X) * alpha
		ixy += (p.X*q.Y + 2*p.X*p.Y + 2*q.X*q.Y + q.X*p.Y) * alpha
	}
	ixx /= 12
	iyy /= 12
	ixy /= 24
	return Inertia{
		Ixx:    ixx,
		Iyy:    iyy,
		Ixy:    ixy,
		Ir:     ixx + iyy,
		IrMass: (ixx + iyy) / area,
	}
}

// GeometricProperties computes area, centroid and centroidal moments in one
// pass: it closes the ring, evaluates area and centroid, recenters the
// coordinates on the centroid, and evaluates the moments on the centered
// ring.
func GeometricProperties(pts []Point) Properties {
	closed := make([]Point, len(pts)+1)
	copy(closed, pts)
	closed[len(pts)] = pts[0]

	area := PolygonArea(closed)
	centroid := PolygonCentroid(closed)

	centered := make([]Point, len(closed))
	for i, p := range closed {
		centered[i] = Point{p.X - centroid.X, p.Y - centroid.Y}
	}

	return Properties{
		Area:     area,
		Centroid: centroid,
		Inertia:  PolygonInertia(centered),
	}
}

// GeometricProperties evaluates the polygon formulas on the mesh's halfedge
// ring.
func (m *Mesh) GeometricProperties() Properties {
	return GeometricProperties(m.Halfedges.Points())
}

// BoundingBox returns the min and max corners of the mesh.
func (m *Mesh) BoundingBox() (min, max Point) {
	pts := m.Halfedges.Points()
	min = pts[0]
	max = pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}
