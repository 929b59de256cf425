package renderer

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"math"

	"github.com/avdeyev/orbitgen/internal/manifest"
	"github.com/avdeyev/orbitgen/internal/ring"
)

// SVGRenderer handles SVG generation. The output mirrors the PNG backend:
// same geometry, with the ring and spokes expressed as dash patterns instead
// of per-pixel drawing.
type SVGRenderer struct {
	buf     *bytes.Buffer
	options RenderOptions
}

// NewSVGRenderer creates a new SVG renderer
func NewSVGRenderer(opts RenderOptions) *SVGRenderer {
	return &SVGRenderer{
		buf:     &bytes.Buffer{},
		options: opts,
	}
}

// Render generates SVG from the layout
func (r *SVGRenderer) Render(layout *Layout, rg *ring.Ring) ([]byte, error) {
	style := rg.Style

	r.writeHeader(layout, rg.Canvas)

	if r.options.Title != "" {
		r.writeTitle(r.options.Title, layout, style)
	}

	r.renderOrbitRing(layout, style)

	for _, spoke := range layout.Spokes {
		r.renderSpoke(spoke, style)
	}

	r.renderNode(layout.Hub, style, style.HubLabelFontSize)
	for _, member := range layout.Members {
		r.renderNode(member, style, style.LabelFontSize)
	}

	r.buf.WriteString("</svg>\n")

	return r.buf.Bytes(), nil
}

// writeHeader writes the SVG header and background
func (r *SVGRenderer) writeHeader(layout *Layout, canvas manifest.Canvas) {
	r.buf.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, layout.Width, layout.Height, layout.Width, layout.Height, hexColor(toRGBA(canvas.Background))))
}

// writeTitle writes the diagram title
func (r *SVGRenderer) writeTitle(title string, layout *Layout, style manifest.Style) {
	r.buf.WriteString(fmt.Sprintf(`<text x="%d" y="30" font-family="Arial, sans-serif" font-size="%.0f" font-weight="bold" fill="#DCDCF0" text-anchor="middle">%s</text>
`, layout.Width/2, style.HubLabelFontSize, html.EscapeString(title)))
}

// renderOrbitRing draws the dashed circle with a dash pattern equivalent to
// the PNG backend's segment skipping.
func (r *SVGRenderer) renderOrbitRing(layout *Layout, style manifest.Style) {
	segLen := 2 * math.Pi * layout.Radius / float64(style.RingSegments)
	visible := segLen * float64(style.RingDashPeriod-style.RingDashGap)
	hidden := segLen * float64(style.RingDashGap)

	r.buf.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="1" stroke-dasharray="%.2f %.2f"/>
`, layout.Center.X, layout.Center.Y, layout.Radius, hexColor(toRGBA(style.RingColor)), visible, hidden))
}

// renderSpoke draws the dotted connection, trimmed to the fade window.
func (r *SVGRenderer) renderSpoke(spoke *SpokeLayout, style manifest.Style) {
	col := dim(toRGBA(spoke.Spoke.To.Color), spokeDim)

	dx := spoke.To.X - spoke.From.X
	dy := spoke.To.Y - spoke.From.Y

	x1 := spoke.From.X + dx*style.SpokeFadeIn
	y1 := spoke.From.Y + dy*style.SpokeFadeIn
	x2 := spoke.From.X + dx*style.SpokeFadeOut
	y2 := spoke.From.Y + dy*style.SpokeFadeOut

	r.buf.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%d" stroke-linecap="round" stroke-dasharray="0.1 %.2f"/>
`, x1, y1, x2, y2, hexColor(col), 2*style.SpokeDotRadius, style.SpokeGap))
}

// renderNode draws the glow, the glyph shapes, and the label for one node.
func (r *SVGRenderer) renderNode(node *NodeLayout, style manifest.Style, fontSize float64) {
	col := toRGBA(node.Node.Color)
	cx := round(node.Center.X)
	cy := round(node.Center.Y)

	// Glow halo: the layered circles collapse to the outermost one.
	haloRadius := node.GlyphSize + 2 + style.GlowLayers*style.GlowStep
	r.buf.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s"/>
`, cx, cy, haloRadius, hexColor(dim(col, glowDim))))

	g := glyphGeom(cx, cy, node.GlyphSize)

	r.buf.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s" stroke="%s" stroke-width="%d"/>
`, g.body.x, g.body.y, g.body.w, g.body.h, g.body.radius, hexColor(dim(col, bodyDim)), hexColor(col), g.border))

	for _, eye := range g.eyes {
		r.buf.WriteString(`<polygon points="`)
		for i, p := range eye {
			if i > 0 {
				r.buf.WriteByte(' ')
			}
			fmt.Fprintf(r.buf, "%.1f,%.1f", p.X, p.Y)
		}
		fmt.Fprintf(r.buf, "\" fill=\"%s\"/>\n", hexColor(col))
	}

	r.buf.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s"/>
`, g.mouth.x, g.mouth.y, g.mouth.w, g.mouth.h, g.mouth.radius, hexColor(col)))

	r.writeSeg(g.antenna, col)
	r.writeDisc(g.tip, col)

	for _, arm := range g.arms {
		r.writeSeg(arm, col)
	}
	for _, hand := range g.hands {
		r.writeDisc(hand, col)
	}
	for _, leg := range g.legs {
		r.writeSeg(leg, col)
	}
	for _, foot := range g.feet {
		r.buf.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s"/>
`, foot.x, foot.y, foot.w, foot.h, foot.radius, hexColor(col)))
	}

	if r.options.IncludeLabels {
		r.renderLabel(node, col, fontSize)
	}
}

func (r *SVGRenderer) writeSeg(s glyphSeg, col color.RGBA) {
	r.buf.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d"/>
`, s.x1, s.y1, s.x2, s.y2, hexColor(col), s.width))
}

func (r *SVGRenderer) writeDisc(d glyphDisc, col color.RGBA) {
	r.buf.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s"/>
`, d.cx, d.cy, d.r, hexColor(col)))
}

// renderLabel writes the marker dot and the centered label text.
func (r *SVGRenderer) renderLabel(node *NodeLayout, col color.RGBA, fontSize float64) {
	// Approximate the text half-width to place the marker dot left of the
	// label, matching the PNG backend's measured placement.
	halfWidth := fontSize * 0.3 * float64(len(node.Node.Name))

	r.buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%d" fill="%s"/>
`, node.LabelAnchor.X-halfWidth-labelDotGap, node.LabelAnchor.Y, labelDotRadius, hexColor(col)))

	r.buf.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="Arial, sans-serif" font-size="%.0f" font-weight="bold" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>
`, node.LabelAnchor.X, node.LabelAnchor.Y, fontSize, hexColor(col), html.EscapeString(node.Node.Name)))
}
