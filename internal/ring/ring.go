// Package ring builds the render model from a validated manifest.
package ring

import "github.com/avdeyev/orbitgen/internal/manifest"

// Node is one glyph to draw: the hub or a ring member.
type Node struct {
	Name  string
	Color manifest.RGB
}

// Spoke is the visual connection from the hub to a member. It carries the
// member's color; the renderer dims it when drawing.
type Spoke struct {
	From *Node
	To   *Node
}

// Ring is the complete render model: the hub, the members in manifest order,
// one spoke per member, and the canvas/style the renderer needs.
type Ring struct {
	Canvas  manifest.Canvas
	Style   manifest.Style
	Hub     *Node
	Members []*Node
	Spokes  []*Spoke
}

// Build constructs the ring from a manifest. The manifest must already be
// validated; Build performs no checks of its own.
func Build(m *manifest.Manifest) *Ring {
	r := &Ring{
		Canvas:  m.Canvas,
		Style:   m.Style,
		Hub:     &Node{Name: m.Hub.Name, Color: m.Hub.Color},
		Members: make([]*Node, 0, len(m.Entities)),
		Spokes:  make([]*Spoke, 0, len(m.Entities)),
	}

	for _, e := range m.Entities {
		node := &Node{Name: e.Name, Color: e.Color}
		r.Members = append(r.Members, node)
		r.Spokes = append(r.Spokes, &Spoke{From: r.Hub, To: node})
	}

	return r
}
