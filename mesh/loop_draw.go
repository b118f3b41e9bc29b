package mesh

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug rendering of vertex rings (loops, fiber pieces). The picture goes to
// a PNG; ShowRings additionally prints it in the terminal (iTerm only).

const drawPadding = 20

// DrawRings renders the rings to a PNG at the given path, at pixels per
// model unit given by scale.
func DrawRings(path string, rings [][]Point, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, ring := range rings {
		for _, p := range ring {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		c.MoveTo(ring[0].X, ring[0].Y)
		for _, p := range ring[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	return c.SavePNG(path)
}

// ShowRings draws to a temp file and cats it to the terminal.
func ShowRings(rings [][]Point, scale float64) error {
	const path = "/tmp/osmg_rings.png"
	if err := DrawRings(path, rings, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
