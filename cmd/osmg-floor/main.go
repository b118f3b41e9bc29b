package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	osmg "github.com/BFF-LEI-Lei/OpenSees-Model-Generator"
	"github.com/BFF-LEI-Lei/OpenSees-Model-Generator/mesh"
)

// Demo of floor-plan analysis. Input on stdin should be newline separated
// segments in the form "x1 y1 x2 y2", one beam centerline per line.
// Coincident endpoints must be written with identical coordinates.

var (
	pngPath = kingpin.Flag("png", "Write the classified loops to a PNG at this path.").String()
	show    = kingpin.Flag("show", "Print the PNG to the terminal (iTerm only).").Bool()
	scale   = kingpin.Flag("scale", "Pixels per model unit for drawing.").Default("20").Float64()
)

func main() {
	kingpin.Parse()

	segments := readSegments(os.Stdin)
	fmt.Printf("Read %d segments\n", len(segments))

	floor, err := osmg.AnalyzeFloorPlan(segments)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	fmt.Printf("External loops: %d, internal loops: %d, trivial loops: %d\n",
		len(floor.External), len(floor.Internal), len(floor.Trivial))
	if len(floor.External) > 0 {
		p := floor.Properties
		fmt.Printf("Boundary area: %g (negative by convention)\n", p.Area)
		fmt.Printf("Centroid: (%g, %g)\n", p.Centroid.X, p.Centroid.Y)
		fmt.Printf("Inertia: ixx=%g iyy=%g ixy=%g ir=%g ir/area=%g\n",
			p.Inertia.Ixx, p.Inertia.Iyy, p.Inertia.Ixy, p.Inertia.Ir, p.Inertia.IrMass)
	}

	if *pngPath == "" && !*show {
		return
	}
	var rings [][]osmg.Point
	for _, loop := range append(append([]osmg.Loop{}, floor.External...), floor.Internal...) {
		rings = append(rings, loop.Points())
	}
	if *pngPath != "" {
		if err := mesh.DrawRings(*pngPath, rings, *scale); err != nil {
			log.Fatalf("Could not write %q: %v", *pngPath, err)
		}
	}
	if *show {
		if err := mesh.ShowRings(rings, *scale); err != nil {
			log.Fatalf("Could not draw: %v", err)
		}
	}
}

func readSegments(in *os.File) []osmg.Segment {
	segments := []osmg.Segment{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		segments = append(segments, parseSegment(line))
	}
	return segments
}

func parseSegment(line string) osmg.Segment {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		log.Fatalf("Expected \"x1 y1 x2 y2\", got %q", line)
	}
	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			log.Fatalf("Invalid coordinate %q: %v", part, err)
		}
		vals[i] = v
	}
	return osmg.Segment{{X: vals[0], Y: vals[1]}, {X: vals[2], Y: vals[3]}}
}
