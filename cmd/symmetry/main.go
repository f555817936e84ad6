package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/symfind/symmetry"
)

// Demo of the symmetry search. Input on stdin should be newline separated
// points in the form "x y"; alternatively --svg reads every <circle> element
// of an SVG file as a point. Prints the lines of symmetry as normalized
// "a b c" coefficients of a*x + b*y + c = 0, and can render the point set
// with its symmetry lines to a PNG.
var (
	tolerance  = kingpin.Flag("tolerance", "Comparison tolerance for coordinates.").Default("1e-6").Float64()
	highDegree = kingpin.Flag("high-degree", "Expect many partial symmetries (enables pair harvesting).").Default("true").Bool()
	svgFile    = kingpin.Flag("svg", "Read points from the circle elements of an SVG file instead of stdin.").String()
	render     = kingpin.Flag("render", "Render the points and their symmetry lines to this PNG file.").String()
	scale      = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("100").Float64()
)

func main() {
	kingpin.Parse()

	var points []symmetry.Point
	if *svgFile != "" {
		points = readSVGPoints(*svgFile)
	} else {
		points = readPoints(os.Stdin)
	}
	fmt.Printf("Read %d points\n", len(points))

	config := symmetry.DefaultConfig()
	config.Tolerance = *tolerance
	config.HighDegreeExpected = *highDegree

	result, err := symmetry.FindWithConfig(points, config)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	if result.Unbounded {
		fmt.Println(aurora.Yellow("Fewer than two distinct points; every line is a line of symmetry."))
		return
	}

	fmt.Println(aurora.Green(fmt.Sprintf("%d lines of symmetry", len(result.Lines))))
	for _, l := range result.Lines {
		fmt.Printf("  %s\n", aurora.Cyan(fmt.Sprintf("% .6f % .6f % .6f", l.A, l.B, l.C)))
	}

	if *render != "" {
		renderPNG(*render, points, result.Lines, *scale)
		fmt.Printf("Rendered to %s\n", *render)
	}
}

func readPoints(in *os.File) []symmetry.Point {
	points := []symmetry.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) symmetry.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("invalid point line %q", line)))
		os.Exit(1)
	}
	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	if errX != nil || errY != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("invalid point line %q", line)))
		os.Exit(1)
	}
	return symmetry.Point{X: x, Y: y}
}

func readSVGPoints(path string) []symmetry.Point {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	defer f.Close()

	rootEl, err := svgparser.Parse(f, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("failed to parse %s: %v", path, err)))
		os.Exit(1)
	}

	circles := rootEl.FindAll("circle")
	points := make([]symmetry.Point, 0, len(circles))
	for _, circle := range circles {
		cx, errX := strconv.ParseFloat(circle.Attributes["cx"], 64)
		cy, errY := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if errX != nil || errY != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("invalid circle in %s", path)))
			os.Exit(1)
		}
		points = append(points, symmetry.Point{X: cx, Y: cy})
	}
	return points
}

const renderPadding = 20

func renderPNG(path string, points []symmetry.Point, lines []symmetry.Line, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + renderPadding*2
	height := int(scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is at the bottom left, like the input coordinates.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	span := math.Hypot(maxX-minX, maxY-minY) + 1
	c.SetLineWidth(2)
	c.SetRGB(0.8, 0.2, 0.2)
	for _, l := range lines {
		// Foot of the perpendicular from the box center, extended along the
		// line direction past the box on both sides.
		cx, cy := (minX+maxX)/2, (minY+maxY)/2
		d := l.A*cx + l.B*cy + l.C
		fx, fy := cx-d*l.A, cy-d*l.B
		c.DrawLine(fx+span*l.B, fy-span*l.A, fx-span*l.B, fy+span*l.A)
		c.Stroke()
	}

	c.SetRGB(0.1, 0.1, 0.8)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	if err := c.SavePNG(path); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
}
