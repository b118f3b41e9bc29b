// Package grid implements gridlines, the temporary line segments engineers
// lay out to place columns and beams. Gridlines are compared with the same
// tolerance as the mesh engine, but live outside it: their intersections
// produce the nodal points that beam layouts are built from.
package grid

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/BFF-LEI-Lei/OpenSees-Model-Generator/mesh"
)

// A Line is a bounded gridline from Start to End, identified by its tag.
type Line struct {
	Tag    string
	Start  mesh.Point
	End    mesh.Point
	Length float64

	// Unit direction from Start to End.
	dir mesh.Point
}

func NewLine(tag string, start, end mesh.Point) (*Line, error) {
	length := math.Hypot(end.X-start.X, end.Y-start.Y)
	if mesh.Equal(length, 0) {
		return nil, errors.Errorf("gridline %q has zero length", tag)
	}
	return &Line{
		Tag:    tag,
		Start:  start,
		End:    end,
		Length: length,
		dir:    mesh.Point{X: (end.X - start.X) / length, Y: (end.Y - start.Y) / length},
	}, nil
}

// Direction returns the unit direction vector from Start to End.
func (ln *Line) Direction() mesh.Point {
	return ln.dir
}

// Intersect returns the intersection point with another gridline, if one
// exists within both lines' lengths. Solves start_a + u*dir_a = start_b +
// v*dir_b and keeps the point only when u and v fall inside [0, length]
// with tolerance.
func (ln *Line) Intersect(other *Line) (mesh.Point, bool) {
	da := ln.dir
	db := other.dir
	det := da.X*(-db.Y) - (-db.X)*da.Y
	if math.Abs(det) <= mesh.Epsilon {
		// The lines are parallel.
		return mesh.Point{}, false
	}
	bx := other.Start.X - ln.Start.X
	by := other.Start.Y - ln.Start.Y
	u := (bx*(-db.Y) - (-db.X)*by) / det
	v := (da.X*by - da.Y*bx) / det
	// Terminate if the intersection point does not lie on both lines.
	if u < -mesh.Epsilon || v < -mesh.Epsilon {
		return mesh.Point{}, false
	}
	if u > ln.Length+mesh.Epsilon || v > other.Length+mesh.Epsilon {
		return mesh.Point{}, false
	}
	return mesh.Point{X: ln.Start.X + da.X*u, Y: ln.Start.Y + da.Y*u}, true
}

// A System collects gridlines and performs the operations that use them
// together. Lines are kept sorted by tag.
type System struct {
	Lines []*Line
}

// Add registers a gridline. Tags must be unique.
func (s *System) Add(ln *Line) error {
	for _, other := range s.Lines {
		if other.Tag == ln.Tag {
			return errors.Errorf("gridline already exists: %q", ln.Tag)
		}
	}
	s.Lines = append(s.Lines, ln)
	sort.Slice(s.Lines, func(i, j int) bool {
		return s.Lines[i].Tag < s.Lines[j].Tag
	})
	return nil
}

// Remove drops the gridline with the given tag, if present.
func (s *System) Remove(tag string) {
	for i, ln := range s.Lines {
		if ln.Tag == tag {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return
		}
	}
}

// IntersectionPoints returns every point where two gridlines cross, with
// coincident points (within tolerance) reported once.
func (s *System) IntersectionPoints() []mesh.Point {
	var pts []mesh.Point
	for i, a := range s.Lines {
		for _, b := range s.Lines[i+1:] {
			if pt, ok := a.Intersect(b); ok && !pointExistsInList(pt, pts) {
				pts = append(pts, pt)
			}
		}
	}
	return pts
}

// Intersect returns the points where the given gridline crosses all the
// others in the system, ordered by distance from the gridline's start.
// This is the order beams are chained along a gridline.
func (s *System) Intersect(ln *Line) []mesh.Point {
	var pts []mesh.Point
	for _, other := range s.Lines {
		if other.Tag == ln.Tag {
			continue
		}
		if pt, ok := ln.Intersect(other); ok && !pointExistsInList(pt, pts) {
			pts = append(pts, pt)
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		return distance(pts[i], ln.Start) < distance(pts[j], ln.Start)
	})
	return pts
}

// pointExistsInList reports whether an equal point (with a fudge factor) is
// already in the list.
func pointExistsInList(pt mesh.Point, pts []mesh.Point) bool {
	for _, other := range pts {
		if distance(pt, other) < mesh.Epsilon {
			return true
		}
	}
	return false
}

func distance(a, b mesh.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
