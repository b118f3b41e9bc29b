package mesh

import (
	"fmt"

	"github.com/BFF-LEI-Lei/OpenSees-Model-Generator/dbg"
)

type Point struct {
	X float64
	Y float64
}

// A vertex knows every edge connected to it and every halfedge leaving from
// it. Identity is the uid, not the coordinates: two vertices at the same
// location are distinct entities unless the construction graph merged them.
type Vertex struct {
	Coords    Point
	Edges     []*Edge
	Halfedges []*Halfedge
	UID       int
}

func (v *Vertex) String() string {
	return fmt.Sprintf("(V%d @ %v, %v)", v.UID, v.Coords.X, v.Coords.Y)
}

// An edge is an undirected connection between two distinct vertices. It owns
// up to two halfedges, one leaving from each endpoint. Once created, the
// halfedges are never reassigned.
type Edge struct {
	VI  *Vertex
	VJ  *Vertex
	UID int
	hI  *Halfedge
	hJ  *Halfedge
}

func (e *Edge) String() string {
	return fmt.Sprintf("(E%d @ V%d, V%d)", e.UID, e.VI.UID, e.VJ.UID)
}

// OtherVertex returns the endpoint opposite to the given one.
func (e *Edge) OtherVertex(v *Vertex) *Vertex {
	switch v {
	case e.VI:
		return e.VJ
	case e.VJ:
		return e.VI
	}
	fatalf("edge %s is not connected to vertex %s", e, v)
	return nil
}

// A halfedge is one direction of an edge, leaving from Vertex. Halfedges
// carry a single Next pointer; following Next repeatedly traces a closed
// loop. Contrary to the usual convention there is no twin pointer, because
// loop reconstruction never needs it.
type Halfedge struct {
	Vertex *Vertex
	Edge   *Edge
	UID    int
	Next   *Halfedge
}

func (h *Halfedge) String() string {
	if h.Next == nil {
		return fmt.Sprintf("(H%d %s from E%d)", h.UID, dbg.Name(h), h.Edge.UID)
	}
	return fmt.Sprintf("(H%d %s from E%d to E%d next H%d)",
		h.UID, dbg.Name(h), h.Edge.UID, h.Next.Edge.UID, h.Next.UID)
}

// Direction is the angle of the halfedge measured counterclockwise from the
// global x axis, in (-pi, pi].
func (h *Halfedge) Direction() float64 {
	from := h.Vertex.Coords
	to := h.Edge.OtherVertex(h.Vertex).Coords
	return angleOf(Point{to.X - from.X, to.Y - from.Y})
}

// A loop is a cyclic sequence of halfedges: each element's Next is the
// following element and the last element's Next is the first.
type Loop []*Halfedge

// Points returns the loop's vertex ring in traversal order, without
// repeating the first point at the end.
func (l Loop) Points() []Point {
	pts := make([]Point, len(l))
	for i, h := range l {
		pts[i] = h.Vertex.Coords
	}
	return pts
}

// A mesh holds the halfedges of one planar region boundary. For section
// outlines this is a single loop; vertices and edges are reachable through
// the halfedges.
type Mesh struct {
	Halfedges Loop
}

func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh object containing %d halfedges.", len(m.Halfedges))
}

// Graph is the construction context for one mesh. It owns the vertices, the
// edges and all three uid counters, so repeated constructions are hermetic:
// ids restart at zero for every graph and no state leaks between calls.
type Graph struct {
	vertices map[Point]*Vertex
	edges    []*Edge

	nextVertexUID   int
	nextEdgeUID     int
	nextHalfedgeUID int
}

func NewGraph() *Graph {
	return &Graph{vertices: make(map[Point]*Vertex)}
}

// VertexAt returns the vertex at the given coordinates, creating it on first
// sight. Identification is by exact float equality: callers must represent
// coincident points identically, because no fuzz-merging happens here.
func (g *Graph) VertexAt(p Point) *Vertex {
	if v, ok := g.vertices[p]; ok {
		return v
	}
	v := &Vertex{Coords: p, UID: g.nextVertexUID}
	g.nextVertexUID++
	g.vertices[p] = v
	return v
}

// Connect adds the undirected edge between the two coordinate pairs.
// Zero-length segments and duplicate segments are caller bugs and fail hard.
func (g *Graph) Connect(a, b Point) *Edge {
	if a == b {
		fatalf("zero-length segment at %v, %v", a.X, a.Y)
	}
	vi := g.VertexAt(a)
	vj := g.VertexAt(b)
	for _, e := range vi.Edges {
		if e.OtherVertex(vi) == vj {
			fatalf("edge already defined between %s and %s", vi, vj)
		}
	}
	e := &Edge{VI: vi, VJ: vj, UID: g.nextEdgeUID}
	g.nextEdgeUID++
	vi.Edges = append(vi.Edges, e)
	vj.Edges = append(vj.Edges, e)
	g.edges = append(g.edges, e)
	return e
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// defineHalfedge creates the halfedge of e that leaves from the given
// vertex. Each of the two may be created exactly once.
func (e *Edge) defineHalfedge(v *Vertex, uid int) *Halfedge {
	h := &Halfedge{Vertex: v, Edge: e, UID: uid}
	switch v {
	case e.VI:
		if e.hI != nil {
			fatalf("halfedge already defined for %s at %s", e, v)
		}
		e.hI = h
	case e.VJ:
		if e.hJ != nil {
			fatalf("halfedge already defined for %s at %s", e, v)
		}
		e.hJ = h
	default:
		fatalf("edge %s is not connected to vertex %s", e, v)
	}
	return h
}
