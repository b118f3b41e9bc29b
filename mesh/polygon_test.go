package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonAreaSignConvention(t *testing.T) {
	t.Run("clockwise square is negative", func(t *testing.T) {
		area := PolygonArea([]Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
		assert.InDelta(t, -1, area, Epsilon)
	})

	t.Run("counterclockwise square is positive", func(t *testing.T) {
		area := PolygonArea([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
		assert.InDelta(t, 1, area, Epsilon)
	})

	t.Run("reversing a ring negates the area", func(t *testing.T) {
		ring := []Point{{0, 0}, {4, 0}, {5, 2}, {2, 5}, {-1, 2}}
		reversed := make([]Point, len(ring))
		for i, p := range ring {
			reversed[len(ring)-1-i] = p
		}
		assert.InDelta(t, -PolygonArea(ring), PolygonArea(reversed), 1e-12)
	})

	t.Run("degenerate back-and-forth ring has zero area", func(t *testing.T) {
		assert.InDelta(t, 0, PolygonArea([]Point{{0, 0}, {1, 1}}), Epsilon)
	})
}

func TestPolygonCentroid(t *testing.T) {
	c := PolygonCentroid([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	assert.InDelta(t, 0.5, c.X, Epsilon)
	assert.InDelta(t, 0.5, c.Y, Epsilon)

	// Winding doesn't matter for the centroid: the area in the denominator
	// cancels the sign.
	c = PolygonCentroid([]Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
	assert.InDelta(t, 0.5, c.X, Epsilon)
	assert.InDelta(t, 0.5, c.Y, Epsilon)

	assert.Panics(t, func() {
		PolygonCentroid([]Point{{0, 0}, {1, 1}})
	})
}

func TestGeometricProperties(t *testing.T) {
	// A 2 x 4 rectangle away from the origin, counterclockwise. The closed
	// forms are b*h^3/12 about x and h*b^3/12 about y, taken at the
	// centroid.
	props := GeometricProperties([]Point{{1, 1}, {3, 1}, {3, 5}, {1, 5}})
	assert.InDelta(t, 8, props.Area, Epsilon)
	assert.InDelta(t, 2, props.Centroid.X, Epsilon)
	assert.InDelta(t, 3, props.Centroid.Y, Epsilon)
	assert.InDelta(t, 2*64.0/12.0, props.Inertia.Ixx, 1e-9)
	assert.InDelta(t, 4*8.0/12.0, props.Inertia.Iyy, 1e-9)
	assert.InDelta(t, 0, props.Inertia.Ixy, 1e-9)
	assert.InDelta(t, props.Inertia.Ixx+props.Inertia.Iyy, props.Inertia.Ir, 1e-9)
	assert.InDelta(t, props.Inertia.Ir/props.Area, props.Inertia.IrMass, 1e-9)
}

func TestMeshProperties(t *testing.T) {
	m := RectMesh(2, 4)
	props := m.GeometricProperties()
	assert.InDelta(t, 8, props.Area, Epsilon)
	assert.InDelta(t, 0, props.Centroid.X, Epsilon)
	assert.InDelta(t, 0, props.Centroid.Y, Epsilon)

	min, max := m.BoundingBox()
	assert.InDelta(t, -1, min.X, Epsilon)
	assert.InDelta(t, -2, min.Y, Epsilon)
	assert.InDelta(t, 1, max.X, Epsilon)
	assert.InDelta(t, 2, max.Y, Epsilon)
}
