package renderer

import "image/color"

// Fixed glyph proportions. Offsets that do not scale with glyph size match
// the stock diagram: antenna height, arm length, leg length, hand and feet
// sizes are absolute pixel values.
const (
	bodyCornerRadius = 14
	bodyBorderWidth  = 5
	antennaHeight    = 16
	antennaWidth     = 3
	antennaTipRadius = 4
	armLength        = 18
	armRise          = 12
	armWidth         = 4
	handRadius       = 5
	legLength        = 20
	legWidth         = 4
	footRadius       = 3
	mouthHalfHeight  = 3
)

type glyphRect struct {
	x, y, w, h, radius int
}

type glyphSeg struct {
	x1, y1, x2, y2, width int
}

type glyphDisc struct {
	cx, cy, r int
}

// glyphGeometry describes every shape of the robot glyph in canvas
// coordinates, so the PNG and SVG backends draw from the same source.
type glyphGeometry struct {
	body    glyphRect
	border  int
	eyes    [][]Point
	mouth   glyphRect
	antenna glyphSeg
	tip     glyphDisc
	arms    []glyphSeg
	hands   []glyphDisc
	legs    []glyphSeg
	feet    []glyphRect
}

// glyphGeom computes the glyph shapes for a body of half-width size centered
// at (cx, cy).
func glyphGeom(cx, cy, size int) glyphGeometry {
	x1, y1 := cx-size, cy-size
	x2, y2 := cx+size, cy+size

	g := glyphGeometry{
		body:   glyphRect{x: x1, y: y1, w: 2 * size, h: 2 * size, radius: bodyCornerRadius},
		border: bodyBorderWidth,
	}

	// Sparkle eyes: 4-point diamonds either side of the face center line.
	eyeY := cy - size/4
	eyeOffset := size / 3
	eyeSize := size / 5
	for _, offset := range []int{-eyeOffset, eyeOffset} {
		ex := cx + offset
		fx, fy, fs := float64(ex), float64(eyeY), float64(eyeSize)
		g.eyes = append(g.eyes, []Point{
			{X: fx, Y: fy - fs},
			{X: fx + fs*0.6, Y: fy},
			{X: fx, Y: fy + fs},
			{X: fx - fs*0.6, Y: fy},
		})
	}

	// Mouth: a horizontal bar below the eyes.
	mouthY := cy + size/3
	mouthHalfWidth := size / 3
	g.mouth = glyphRect{
		x:      cx - mouthHalfWidth,
		y:      mouthY - mouthHalfHeight,
		w:      2 * mouthHalfWidth,
		h:      2 * mouthHalfHeight,
		radius: 2,
	}

	// Antenna with a tip dot.
	antennaTop := y1 - antennaHeight
	g.antenna = glyphSeg{x1: cx, y1: y1, x2: cx, y2: antennaTop, width: antennaWidth}
	g.tip = glyphDisc{cx: cx, cy: antennaTop, r: antennaTipRadius}

	// Arms angle slightly upward, ending in hand dots.
	armY := cy + 2
	g.arms = []glyphSeg{
		{x1: x1 - 2, y1: armY, x2: x1 - armLength, y2: armY - armRise, width: armWidth},
		{x1: x2 + 2, y1: armY, x2: x2 + armLength, y2: armY - armRise, width: armWidth},
	}
	g.hands = []glyphDisc{
		{cx: x1 - armLength, cy: armY - armRise, r: handRadius},
		{cx: x2 + armLength, cy: armY - armRise, r: handRadius},
	}

	// Legs splay slightly outward, ending in rounded feet.
	legY := y2 + 2
	legSpread := size / 3
	g.legs = []glyphSeg{
		{x1: cx - legSpread, y1: legY, x2: cx - legSpread - 3, y2: legY + legLength, width: legWidth},
		{x1: cx + legSpread, y1: legY, x2: cx + legSpread + 3, y2: legY + legLength, width: legWidth},
	}
	g.feet = []glyphRect{
		{x: cx - legSpread - 12, y: legY + legLength - 2, w: 17, h: 10, radius: footRadius},
		{x: cx + legSpread - 5, y: legY + legLength - 2, w: 17, h: 10, radius: footRadius},
	}

	return g
}

// DrawGlow paints concentric halo layers behind a glyph, largest first.
func DrawGlow(c *Canvas, cx, cy, radius int, col color.RGBA, layers, step int) {
	halo := dim(col, glowDim)
	for i := layers; i >= 1; i-- {
		c.FillCircle(cx, cy, radius+i*step, halo)
	}
}

// DrawGlyph renders the robot glyph at (cx, cy). The glyph is parameterized
// only by its center, size and color; all state lives on the canvas.
func DrawGlyph(c *Canvas, cx, cy, size int, col color.RGBA) {
	g := glyphGeom(cx, cy, size)
	fill := dim(col, bodyDim)

	c.OutlineRoundedRect(g.body.x, g.body.y, g.body.w, g.body.h, g.body.radius, g.border, fill, col)

	for _, eye := range g.eyes {
		c.FillPolygon(eye, col)
	}

	c.FillRoundedRect(g.mouth.x, g.mouth.y, g.mouth.w, g.mouth.h, g.mouth.radius, col)

	c.DrawLine(g.antenna.x1, g.antenna.y1, g.antenna.x2, g.antenna.y2, col, g.antenna.width)
	c.FillCircle(g.tip.cx, g.tip.cy, g.tip.r, col)

	for _, arm := range g.arms {
		c.DrawLine(arm.x1, arm.y1, arm.x2, arm.y2, col, arm.width)
	}
	for _, hand := range g.hands {
		c.FillCircle(hand.cx, hand.cy, hand.r, col)
	}

	for _, leg := range g.legs {
		c.DrawLine(leg.x1, leg.y1, leg.x2, leg.y2, col, leg.width)
	}
	for _, foot := range g.feet {
		c.FillRoundedRect(foot.x, foot.y, foot.w, foot.h, foot.radius, col)
	}
}
