package advanced

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/symfind/symmetry/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Render the point set and a batch of lines (accepted or candidate) to a PNG
// and cat it to the terminal. Lines are clipped to the point bounds plus
// padding.
func dbgDraw(points []Point, lines []Line, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// The lines first, so the points render on top of them.
	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	for _, l := range lines {
		x1, y1, x2, y2 := clipLine(l, minX-1, minY-1, maxX+1, maxY+1)
		c.DrawLine(x1, y1, x2, y2)
		c.Stroke()
	}

	c.SetRGB(0, 1, 0)
	for i := range points {
		c.DrawCircle(points[i].X, points[i].Y, 3/scale)
		c.Fill()
	}

	c.SavePNG("/tmp/symmetry.png")
	imgcat.CatFile("/tmp/symmetry.png", os.Stdout)

	// Text in the flipped context renders mirrored, so the legend goes to
	// stdout instead of the image.
	for _, p := range points {
		fmt.Printf("%s: (%v, %v)\n", dbg.Name(p), p.X, p.Y)
	}
	for _, l := range lines {
		fmt.Printf("%s: %v x + %v y + %v = 0\n", dbg.Name(l), l.A, l.B, l.C)
	}
}

// clipLine picks two far-apart points of l inside (roughly) the given box by
// walking from the foot of the origin's perpendicular along the line
// direction. Good enough for debug output; no exact box clipping.
func clipLine(l Line, minX, minY, maxX, maxY float64) (x1, y1, x2, y2 float64) {
	// Foot of the perpendicular from the box center.
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	d := l.A*cx + l.B*cy + l.C
	fx, fy := cx-d*l.A, cy-d*l.B
	// Direction along the line.
	dx, dy := -l.B, l.A
	span := math.Hypot(maxX-minX, maxY-minY)
	return fx - span*dx, fy - span*dy, fx + span*dx, fy + span*dy
}
