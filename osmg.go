// Geometric preprocessing for structural building models.
//
// This package takes the beam centerlines of one floor, projected onto the
// floor plan, and reconstructs the closed polygonal loops they bound: the
// floor's clear boundary and any interior openings. From the loops it
// derives the geometry a structural solver needs downstream — areas,
// centroids, moments of inertia, and fiber discretizations of cross
// sections.
package osmg

import (
	"github.com/BFF-LEI-Lei/OpenSees-Model-Generator/mesh"
)

type Point = mesh.Point
type Loop = mesh.Loop
type Mesh = mesh.Mesh
type Fiber = mesh.Fiber
type Properties = mesh.Properties
type Inertia = mesh.Inertia

// A Segment is one beam centerline, given by its two endpoints. Coincident
// endpoints across segments must be represented with identical coordinates.
type Segment [2]Point

// Floor is the result of analyzing one floor plan.
type Floor struct {
	// External is the floor's clear boundary, traversed clockwise. Internal
	// holds the interior openings (counterclockwise), Trivial any
	// degenerate loops from dangling or isolated beams.
	External []Loop
	Internal []Loop
	Trivial  []Loop

	// Properties of the boundary polygon. Following this package's winding
	// convention the overall floor area is negative.
	Properties Properties
}

// AnalyzeFloorPlan reconstructs the loops bounded by the given beam
// centerlines and computes the boundary's geometric properties.
//
// Degenerate geometry (trivial loops, multiple external loops) is surfaced
// as a logged warning and analysis continues; it usually means the beam
// layout is disconnected or self-intersecting, and whether that is a
// modeling error is the caller's call. Caller contract violations
// (zero-length or duplicate segments, no closed boundary) are returned as
// errors.
func AnalyzeFloorPlan(segments []Segment) (floor *Floor, err error) {
	defer func() {
		recoveredErr := mesh.HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			floor = nil
			err = recoveredErr
		}
	}()

	g := mesh.NewGraph()
	for _, s := range segments {
		g.Connect(s[0], s[1])
	}
	halfedges := g.DefineHalfedges()
	loops := mesh.ObtainClosedLoops(halfedges)
	external, internal, trivial := mesh.OrientLoops(loops)
	mesh.SanityChecks(external, trivial)

	floor = &Floor{External: external, Internal: internal, Trivial: trivial}
	if len(external) == 0 {
		return floor, nil
	}
	floor.Properties = mesh.GeometricProperties(external[0].Points())
	return floor, nil
}

// SectionFibers discretizes a cross section, given as an outer ring and
// zero or more hole rings, into a grid of nx by ny points spanning the
// outer ring's bounding box. Rings may be given in either winding order.
func SectionFibers(outer []Point, holes [][]Point, nx, ny int) (fibers []*Fiber, err error) {
	defer func() {
		recoveredErr := mesh.HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			fibers = nil
			err = recoveredErr
		}
	}()

	outerMesh := mesh.RingMesh(outer)
	holeMeshes := make([]*mesh.Mesh, len(holes))
	for i, hole := range holes {
		holeMeshes[i] = mesh.RingMesh(hole)
	}
	return mesh.SubdividePolygon(outerMesh, holeMeshes, nx, ny), nil
}
