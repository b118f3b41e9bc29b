package mesh

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// Fiber discretization: a section (outer boundary minus hole boundaries) is
// cut by a regular grid, and each nonempty cell intersection becomes one
// fiber, the integration patch of nonlinear section analysis. The boolean
// work is done by the clipper library, which operates on integer
// coordinates, so floats are scaled up on the way in and back down on the
// way out.

const clipperScale = 1e6

// A Fiber is one piece of a subdivided section. Area is signed with the
// ring's winding; a hole ring nested inside a grid cell comes out negative,
// so summing fiber areas reproduces the net section area.
type Fiber struct {
	Ring     []Point
	Area     float64
	Centroid Point
}

// SubdividePolygon cuts the region (outer minus holes) with a rectangular
// grid spanning the outer mesh's bounding box, with nx points along x and
// ny points along y, and returns the nonempty pieces. Used to define the
// fibers of fiber sections.
func SubdividePolygon(outer *Mesh, holes []*Mesh, nx, ny int) []*Fiber {
	remaining := subtractHoles(outer, holes)
	min, max := outer.BoundingBox()
	return gridPieces(remaining, linspace(min.X, max.X, nx), linspace(min.Y, max.Y, ny))
}

// SubdivideHSS cuts a hollow rectangular section directly along its wall
// thickness: three bands in each direction (the center band intersection is
// the hole and produces nothing), each band gridded 4x4. This avoids
// running the general grid across thin walls, where cells would degenerate
// into slivers.
func SubdivideHSS(h, b, t float64) []*Fiber {
	outer, hole := HSSRectMesh(h, b, t)
	remaining := subtractHoles(outer, []*Mesh{hole})
	min, max := outer.BoundingBox()

	xStops := []float64{min.X, min.X + t, max.X - t, max.X}
	yStops := []float64{min.Y, min.Y + t, max.Y - t, max.Y}

	var fibers []*Fiber
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			xs := linspace(xStops[j], xStops[j+1], 5)
			ys := linspace(yStops[i], yStops[i+1], 5)
			fibers = append(fibers, gridPieces(remaining, xs, ys)...)
		}
	}
	return fibers
}

// gridPieces intersects the region with every cell of the grid defined by
// the x and y stops and collects the nonempty pieces.
func gridPieces(region clipper.Paths, xs, ys []float64) []*Fiber {
	var fibers []*Fiber
	for i := 0; i < len(xs)-1; i++ {
		for j := 0; j < len(ys)-1; j++ {
			tile := toClipperPath([]Point{
				{xs[i], ys[j]},
				{xs[i+1], ys[j]},
				{xs[i+1], ys[j+1]},
				{xs[i], ys[j+1]},
			})
			c := clipper.NewClipper(clipper.IoNone)
			c.AddPaths(region, clipper.PtSubject, true)
			c.AddPath(tile, clipper.PtClip, true)
			solution, ok := c.Execute1(clipper.CtIntersection, clipper.PftEvenOdd, clipper.PftEvenOdd)
			if !ok {
				fatalf("clipping failed on cell (%v, %v)-(%v, %v)", xs[i], ys[j], xs[i+1], ys[j+1])
			}
			for _, path := range solution {
				ring := fromClipperPath(path)
				area := PolygonArea(ring)
				if math.Abs(area) <= Epsilon {
					continue
				}
				fibers = append(fibers, &Fiber{
					Ring:     ring,
					Area:     area,
					Centroid: PolygonCentroid(ring),
				})
			}
		}
	}
	return fibers
}

// subtractHoles computes outer minus holes in clipper space. The even-odd
// fill rule makes the result independent of ring orientation.
func subtractHoles(outer *Mesh, holes []*Mesh) clipper.Paths {
	subject := toClipperPath(outer.Halfedges.Points())
	if len(holes) == 0 {
		return clipper.Paths{subject}
	}
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(subject, clipper.PtSubject, true)
	for _, hole := range holes {
		c.AddPath(toClipperPath(hole.Halfedges.Points()), clipper.PtClip, true)
	}
	solution, ok := c.Execute1(clipper.CtDifference, clipper.PftEvenOdd, clipper.PftEvenOdd)
	if !ok {
		fatalf("hole subtraction failed")
	}
	return solution
}

func toClipperPath(pts []Point) clipper.Path {
	path := make(clipper.Path, len(pts))
	for i, p := range pts {
		path[i] = clipper.NewIntPoint(
			clipper.CInt(math.Round(p.X*clipperScale)),
			clipper.CInt(math.Round(p.Y*clipperScale)),
		)
	}
	return path
}

func fromClipperPath(path clipper.Path) []Point {
	pts := make([]Point, len(path))
	for i, ip := range path {
		pts[i] = Point{float64(ip.X) / clipperScale, float64(ip.Y) / clipperScale}
	}
	return pts
}
