package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fiberAreaSum(fibers []*Fiber) float64 {
	var sum float64
	for _, f := range fibers {
		sum += f.Area
	}
	return sum
}

func TestSubdividePolygon(t *testing.T) {
	t.Run("solid square splits into the grid cells", func(t *testing.T) {
		outer := RingMesh([]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
		fibers := SubdividePolygon(outer, nil, 3, 3)
		assert.Len(t, fibers, 4)
		for _, f := range fibers {
			assert.InDelta(t, 4, f.Area, 1e-3)
		}
		assert.InDelta(t, 16, fiberAreaSum(fibers), 1e-3)
	})

	t.Run("hole area is excluded", func(t *testing.T) {
		outer := RingMesh([]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
		hole := RingMesh([]Point{{1, 1}, {3, 1}, {3, 3}, {1, 3}})
		fibers := SubdividePolygon(outer, []*Mesh{hole}, 11, 11)
		assert.InDelta(t, 16-4, fiberAreaSum(fibers), 1e-3)
	})

	t.Run("centroids stay inside the bounding box", func(t *testing.T) {
		outer := WMesh(10, 20, 1, 2)
		fibers := SubdividePolygon(outer, nil, 9, 9)
		assert.NotEmpty(t, fibers)
		min, max := outer.BoundingBox()
		for _, f := range fibers {
			assert.GreaterOrEqual(t, f.Centroid.X, min.X-Epsilon)
			assert.LessOrEqual(t, f.Centroid.X, max.X+Epsilon)
			assert.GreaterOrEqual(t, f.Centroid.Y, min.Y-Epsilon)
			assert.LessOrEqual(t, f.Centroid.Y, max.Y+Epsilon)
		}
		assert.InDelta(t, 56, fiberAreaSum(fibers), 1e-3)
	})
}

func TestSubdivideHSS(t *testing.T) {
	// Outer 4 x 4, hole 3 x 3: net area 7.
	fibers := SubdivideHSS(2, 2, 0.5)
	assert.NotEmpty(t, fibers)
	assert.InDelta(t, 16-9, fiberAreaSum(fibers), 1e-3)

	// The center band intersection is the hole, so nothing lands there.
	for _, f := range fibers {
		inHole := f.Centroid.X > -1.5+Epsilon && f.Centroid.X < 1.5-Epsilon &&
			f.Centroid.Y > -1.5+Epsilon && f.Centroid.Y < 1.5-Epsilon
		assert.False(t, inHole, "fiber centroid %v lies inside the hole", f.Centroid)
	}
}
