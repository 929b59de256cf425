package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Canvas wraps an RGBA buffer with bounds-checked drawing primitives. It has
// a single owner per render; nothing here is safe for concurrent use.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a canvas filled with the background color.
func NewCanvas(width, height int, background color.RGBA) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image exposes the underlying buffer for encoding.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetPixel sets a pixel with bounds checking
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.img.Bounds().Dx() && y >= 0 && y < c.img.Bounds().Dy() {
		c.img.SetRGBA(x, y, col)
	}
}

// DrawLine draws a line between two points using Bresenham's algorithm
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy

	for {
		for dt := -thickness / 2; dt <= thickness/2; dt++ {
			c.SetPixel(x1+dt, y1, col)
			c.SetPixel(x1, y1+dt, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillCircle fills a disc centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.SetPixel(cx+dx, cy+dy, col)
			}
		}
	}
}

// FillRoundedRect fills a rounded rectangle with top-left corner (x, y).
func (c *Canvas) FillRoundedRect(x, y, w, h, radius int, col color.RGBA) {
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if inRoundedCorner(dx, dy, w, h, radius) {
				continue
			}
			c.SetPixel(x+dx, y+dy, col)
		}
	}
}

// OutlineRoundedRect fills a rounded rectangle in the outline color, then
// refills the interior inset by the border width. The visual result matches
// a stroked rounded rectangle.
func (c *Canvas) OutlineRoundedRect(x, y, w, h, radius, border int, fill, stroke color.RGBA) {
	c.FillRoundedRect(x, y, w, h, radius, stroke)

	innerRadius := radius - border
	if innerRadius < 0 {
		innerRadius = 0
	}
	c.FillRoundedRect(x+border, y+border, w-2*border, h-2*border, innerRadius, fill)
}

// inRoundedCorner reports whether local coordinate (dx, dy) lies outside the
// corner arcs of a w x h rounded rectangle.
func inRoundedCorner(dx, dy, w, h, radius int) bool {
	var cx, cy int
	switch {
	case dx < radius && dy < radius:
		cx, cy = radius, radius
	case dx >= w-radius && dy < radius:
		cx, cy = w-radius, radius
	case dx < radius && dy >= h-radius:
		cx, cy = radius, h-radius
	case dx >= w-radius && dy >= h-radius:
		cx, cy = w-radius, h-radius
	default:
		return false
	}
	return (dx-cx)*(dx-cx)+(dy-cy)*(dy-cy) > radius*radius
}

// FillPolygon fills a simple polygon using even-odd point-in-polygon tests
// over its bounding box. Intended for the small glyph shapes.
func (c *Canvas) FillPolygon(pts []Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		for x := int(math.Floor(minX)); x <= int(math.Ceil(maxX)); x++ {
			if pointInPolygon(float64(x)+0.5, float64(y)+0.5, pts) {
				c.SetPixel(x, y, col)
			}
		}
	}
}

func pointInPolygon(x, y float64, pts []Point) bool {
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// abs returns the absolute value
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// round converts a layout coordinate to a pixel coordinate.
func round(v float64) int {
	return int(math.Round(v))
}
