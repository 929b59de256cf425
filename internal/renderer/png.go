package renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/avdeyev/orbitgen/internal/manifest"
	"github.com/avdeyev/orbitgen/internal/ring"
)

// labelDotRadius and labelDotGap place the colored marker dot left of each
// label's text.
const (
	labelDotRadius = 4
	labelDotGap    = 10
)

// PNGRenderer handles PNG generation
type PNGRenderer struct {
	canvas  *Canvas
	options RenderOptions
}

// NewPNGRenderer creates a new PNG renderer
func NewPNGRenderer(opts RenderOptions) *PNGRenderer {
	return &PNGRenderer{
		options: opts,
	}
}

// Render generates PNG bytes from the layout. The draw order is fixed:
// background, orbit ring, spokes, hub, then members, so later layers paint
// over earlier ones.
func (r *PNGRenderer) Render(layout *Layout, rg *ring.Ring) ([]byte, error) {
	style := rg.Style
	r.canvas = NewCanvas(layout.Width, layout.Height, toRGBA(rg.Canvas.Background))

	resolver := r.options.Fonts
	if resolver == nil {
		resolver = NewHostFontResolver()
	}
	labelFace, err := resolver.Resolve(true, style.LabelFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve label font: %w", err)
	}
	hubFace, err := resolver.Resolve(true, style.HubLabelFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hub label font: %w", err)
	}

	r.renderOrbitRing(layout, style)

	for _, spoke := range layout.Spokes {
		r.renderSpoke(spoke, style)
	}

	if r.options.Title != "" {
		r.drawLabel(Point{X: float64(layout.Width) / 2, Y: 30}, r.options.Title, hubFace, color.RGBA{220, 220, 240, 255}, false)
	}

	r.renderNode(layout.Hub, style, hubFace)
	for _, member := range layout.Members {
		r.renderNode(member, style, labelFace)
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, r.canvas.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// renderOrbitRing draws the dashed decorative circle through the member
// positions as a run of short chords, skipping segments per the dash pattern.
func (r *PNGRenderer) renderOrbitRing(layout *Layout, style manifest.Style) {
	col := toRGBA(style.RingColor)
	segs := style.RingSegments

	for i := 0; i < segs; i++ {
		if i%style.RingDashPeriod < style.RingDashGap {
			continue
		}
		a1 := 2 * math.Pi * float64(i) / float64(segs)
		a2 := 2 * math.Pi * float64(i+1) / float64(segs)

		x1 := round(layout.Center.X + layout.Radius*math.Cos(a1))
		y1 := round(layout.Center.Y + layout.Radius*math.Sin(a1))
		x2 := round(layout.Center.X + layout.Radius*math.Cos(a2))
		y2 := round(layout.Center.Y + layout.Radius*math.Sin(a2))

		r.canvas.DrawLine(x1, y1, x2, y2, col, 1)
	}
}

// renderSpoke draws a dotted line from the hub to a member, skipping the
// fade windows at both ends so the spoke appears to dissolve near the glyphs.
func (r *PNGRenderer) renderSpoke(spoke *SpokeLayout, style manifest.Style) {
	col := dim(toRGBA(spoke.Spoke.To.Color), spokeDim)

	dx := spoke.To.X - spoke.From.X
	dy := spoke.To.Y - spoke.From.Y
	dist := math.Hypot(dx, dy)

	dots := int(dist / style.SpokeGap)
	if dots == 0 {
		return
	}

	for i := 0; i < dots; i++ {
		t := float64(i) / float64(dots)
		if t < style.SpokeFadeIn || t > style.SpokeFadeOut {
			continue
		}
		x := round(spoke.From.X + dx*t)
		y := round(spoke.From.Y + dy*t)
		r.canvas.FillCircle(x, y, style.SpokeDotRadius, col)
	}
}

// renderNode draws the glow, the glyph, and (optionally) the label for one
// node.
func (r *PNGRenderer) renderNode(node *NodeLayout, style manifest.Style, face font.Face) {
	col := toRGBA(node.Node.Color)
	cx := round(node.Center.X)
	cy := round(node.Center.Y)

	DrawGlow(r.canvas, cx, cy, node.GlyphSize+2, col, style.GlowLayers, style.GlowStep)
	DrawGlyph(r.canvas, cx, cy, node.GlyphSize, col)

	if r.options.IncludeLabels {
		r.drawLabel(node.LabelAnchor, node.Node.Name, face, col, true)
	}
}

// drawLabel draws text centered on the anchor, preceded by a marker dot when
// withDot is set.
func (r *PNGRenderer) drawLabel(anchor Point, text string, face font.Face, col color.RGBA, withDot bool) {
	d := &font.Drawer{
		Dst:  r.canvas.Image(),
		Src:  image.NewUniform(col),
		Face: face,
	}

	width := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	left := round(anchor.X) - width/2
	baseline := round(anchor.Y) + (ascent-descent)/2

	d.Dot = fixed.P(left, baseline)
	d.DrawString(text)

	if withDot {
		r.canvas.FillCircle(left-labelDotGap, round(anchor.Y), labelDotRadius, col)
	}
}
