package renderer

import (
	"math"

	"github.com/avdeyev/orbitgen/internal/ring"
)

// Point represents a 2D coordinate
type Point struct {
	X, Y float64
}

// NodeLayout represents the layout information for a glyph
type NodeLayout struct {
	Node        *ring.Node
	Center      Point
	Angle       float64 // radians, measured from the positive X axis
	GlyphSize   int
	LabelAnchor Point // center point of the label text
}

// SpokeLayout represents the layout information for a spoke
type SpokeLayout struct {
	Spoke *ring.Spoke
	From  Point
	To    Point
}

// Layout represents the complete diagram layout
type Layout struct {
	Hub     *NodeLayout
	Members []*NodeLayout
	Spokes  []*SpokeLayout
	Width   int
	Height  int
	Center  Point
	Radius  float64
}

// CalculateLayout places the hub at the canvas center and the N members at
// even angular intervals of 2π/N on the orbit circle, with member 0 at the
// top of the canvas (angle −π/2). Label anchors are projected outward from
// each member along its radial angle; the hub label sits below the hub.
// The result is a pure function of the ring.
func CalculateLayout(r *ring.Ring) *Layout {
	center := Point{
		X: float64(r.Canvas.Width) / 2,
		Y: float64(r.Canvas.Height) / 2,
	}

	layout := &Layout{
		Width:   r.Canvas.Width,
		Height:  r.Canvas.Height,
		Center:  center,
		Radius:  r.Style.OrbitRadius,
		Members: make([]*NodeLayout, 0, len(r.Members)),
		Spokes:  make([]*SpokeLayout, 0, len(r.Spokes)),
	}

	layout.Hub = &NodeLayout{
		Node:      r.Hub,
		Center:    center,
		GlyphSize: r.Style.HubGlyphSize,
		LabelAnchor: Point{
			X: center.X,
			Y: center.Y + r.Style.HubLabelOffset,
		},
	}

	n := len(r.Members)
	positions := make(map[*ring.Node]Point, n)
	for i, member := range r.Members {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pos := Point{
			X: center.X + r.Style.OrbitRadius*math.Cos(angle),
			Y: center.Y + r.Style.OrbitRadius*math.Sin(angle),
		}
		positions[member] = pos

		layout.Members = append(layout.Members, &NodeLayout{
			Node:      member,
			Center:    pos,
			Angle:     angle,
			GlyphSize: r.Style.GlyphSize,
			LabelAnchor: Point{
				X: pos.X + r.Style.LabelOffset*math.Cos(angle),
				Y: pos.Y + r.Style.LabelOffset*math.Sin(angle),
			},
		})
	}

	for _, spoke := range r.Spokes {
		to, ok := positions[spoke.To]
		if !ok {
			continue
		}
		layout.Spokes = append(layout.Spokes, &SpokeLayout{
			Spoke: spoke,
			From:  center,
			To:    to,
		})
	}

	return layout
}
