package mesh

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs beam centerline segments.
// This is not a full (or even correct) svg parser: it finds every <line>
// element and reads its endpoints. If anything goes wrong, it bails out.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) [][2]Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	lines := rootEl.FindAll("line")
	if len(lines) == 0 {
		log.Fatalf("No lines found in fixture %q", name)
	}

	segments := make([][2]Point, 0, len(lines))
	for _, lineEl := range lines {
		coord := func(attr string) float64 {
			v, err := strconv.ParseFloat(lineEl.Attributes[attr], 64)
			if err != nil {
				log.Fatalf("Invalid %s value %q: %v", attr, lineEl.Attributes[attr], err)
			}
			return v
		}
		segments = append(segments, [2]Point{
			{coord("x1"), coord("y1")},
			{coord("x2"), coord("y2")},
		})
	}
	return segments
}

// graphFromFixture runs a fixture's segments through a fresh graph.
func graphFromFixture(name string) *Graph {
	g := NewGraph()
	for _, s := range LoadFixture(name) {
		g.Connect(s[0], s[1])
	}
	return g
}
