// Package manifest defines the orbit diagram manifest: the canvas, the style
// settings, the hub, and the entities placed on the ring. A manifest can come
// from an HCL file, an HTTP endpoint, or the built-in default.
package manifest

import (
	"fmt"
	"image/color"
)

// RGB is an opaque sRGB color triple.
type RGB struct {
	R, G, B uint8
}

// RGBA returns the stdlib representation with full alpha.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Entity is one labeled, colored node on the ring.
type Entity struct {
	Name  string
	Color RGB
}

// Hub is the central entity the ring orbits around.
type Hub struct {
	Name  string
	Color RGB
}

// Canvas describes the output pixel buffer.
type Canvas struct {
	Width      int
	Height     int
	Background RGB
}

// Style holds the drawing parameters. Every value that used to be an inline
// literal in the stock diagram is a named field here so manifests can tune
// them and tests can pin them.
type Style struct {
	// OrbitRadius is the distance from the canvas center to entity centers.
	OrbitRadius float64

	// Glyph sizing. Size is the half-width of the glyph body square.
	GlyphSize    int
	HubGlyphSize int

	// Glow halo: number of concentric layers and the radius step per layer.
	GlowLayers int
	GlowStep   int

	// Label placement: distance from an entity center to its label anchor,
	// projected outward along the entity's radial angle. The hub label sits
	// HubLabelOffset below the canvas center.
	LabelOffset    float64
	HubLabelOffset float64

	// Label typography (point sizes for the resolved bold face).
	LabelFontSize    float64
	HubLabelFontSize float64

	// Orbit ring dash pattern: the ring is split into RingSegments chords and
	// a segment i is skipped when i % RingDashPeriod < RingDashGap.
	RingSegments   int
	RingDashPeriod int
	RingDashGap    int
	RingColor      RGB

	// Spoke dotting: one dot every SpokeGap pixels, dot radius SpokeDotRadius.
	// Dots whose position parameter t falls outside [SpokeFadeIn, SpokeFadeOut]
	// are skipped, fading the spoke at both ends.
	SpokeGap       float64
	SpokeDotRadius int
	SpokeFadeIn    float64
	SpokeFadeOut   float64
}

// Manifest is the complete diagram description.
type Manifest struct {
	Canvas   Canvas
	Style    Style
	Hub      Hub
	Entities []Entity
}

// Default returns the stock manifest: six agents orbiting an orchestrator hub
// on an 800x800 midnight canvas.
func Default() *Manifest {
	return &Manifest{
		Canvas: Canvas{
			Width:      800,
			Height:     800,
			Background: RGB{15, 15, 30},
		},
		Style: DefaultStyle(),
		Hub: Hub{
			Name:  "orchestrator",
			Color: RGB{220, 220, 240},
		},
		Entities: []Entity{
			{Name: "researcher", Color: RGB{0, 220, 255}},
			{Name: "thinker", Color: RGB{255, 230, 0}},
			{Name: "reviewer", Color: RGB{0, 230, 100}},
			{Name: "planner", Color: RGB{255, 160, 0}},
			{Name: "file-picker", Color: RGB{170, 80, 255}},
			{Name: "editor", Color: RGB{255, 80, 120}},
		},
	}
}

// DefaultStyle returns the stock style values.
func DefaultStyle() Style {
	return Style{
		OrbitRadius:      250,
		GlyphSize:        36,
		HubGlyphSize:     50,
		GlowLayers:       5,
		GlowStep:         4,
		LabelOffset:      68,
		HubLabelOffset:   90,
		LabelFontSize:    22,
		HubLabelFontSize: 24,
		RingSegments:     180,
		RingDashPeriod:   5,
		RingDashGap:      2,
		RingColor:        RGB{35, 35, 55},
		SpokeGap:         8,
		SpokeDotRadius:   2,
		SpokeFadeIn:      0.25,
		SpokeFadeOut:     0.75,
	}
}

// maxNameLen bounds entity names so labels cannot run off the canvas.
const maxNameLen = 32

// Validate checks the manifest preconditions. A manifest that fails
// validation must never reach the renderer.
func (m *Manifest) Validate() error {
	if m.Canvas.Width <= 0 || m.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", m.Canvas.Width, m.Canvas.Height)
	}

	if len(m.Entities) == 0 {
		return fmt.Errorf("manifest must define at least one entity")
	}

	seen := make(map[string]bool, len(m.Entities))
	for i, e := range m.Entities {
		if e.Name == "" {
			return fmt.Errorf("entity %d has an empty name", i)
		}
		if len(e.Name) > maxNameLen {
			return fmt.Errorf("entity name %q exceeds %d characters", e.Name, maxNameLen)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate entity name %q", e.Name)
		}
		seen[e.Name] = true
	}

	if m.Hub.Name == "" {
		return fmt.Errorf("hub name cannot be empty")
	}

	return m.Style.validate(m.Canvas)
}

func (s Style) validate(c Canvas) error {
	if s.OrbitRadius <= 0 {
		return fmt.Errorf("orbit radius must be positive, got %g", s.OrbitRadius)
	}
	if s.GlyphSize <= 0 || s.HubGlyphSize <= 0 {
		return fmt.Errorf("glyph sizes must be positive")
	}
	if s.GlowLayers < 0 || s.GlowStep < 0 {
		return fmt.Errorf("glow layers and step cannot be negative")
	}
	if s.RingSegments <= 0 {
		return fmt.Errorf("ring segments must be positive, got %d", s.RingSegments)
	}
	if s.RingDashPeriod <= 0 {
		return fmt.Errorf("ring dash period must be positive, got %d", s.RingDashPeriod)
	}
	if s.RingDashGap < 0 || s.RingDashGap >= s.RingDashPeriod {
		return fmt.Errorf("ring dash gap must be in [0, period), got gap %d period %d", s.RingDashGap, s.RingDashPeriod)
	}
	if s.SpokeGap <= 0 {
		return fmt.Errorf("spoke gap must be positive, got %g", s.SpokeGap)
	}
	if s.SpokeDotRadius < 0 {
		return fmt.Errorf("spoke dot radius cannot be negative")
	}
	if s.SpokeFadeIn < 0 || s.SpokeFadeOut > 1 || s.SpokeFadeIn >= s.SpokeFadeOut {
		return fmt.Errorf("spoke fade window must satisfy 0 <= in < out <= 1, got [%g, %g]", s.SpokeFadeIn, s.SpokeFadeOut)
	}
	if s.LabelFontSize <= 0 || s.HubLabelFontSize <= 0 {
		return fmt.Errorf("label font sizes must be positive")
	}

	// Everything on the ring, including the outward-projected labels, must
	// stay inside the canvas.
	reach := s.OrbitRadius + s.LabelOffset + float64(s.GlyphSize)
	half := float64(min(c.Width, c.Height)) / 2
	if reach > half {
		return fmt.Errorf("ring does not fit canvas: radius %g + label offset %g + glyph size %d exceeds %g",
			s.OrbitRadius, s.LabelOffset, s.GlyphSize, half)
	}

	return nil
}
