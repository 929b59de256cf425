package renderer

import (
	"math"
	"testing"

	"github.com/avdeyev/orbitgen/internal/manifest"
	"github.com/avdeyev/orbitgen/internal/ring"
)

func buildRing(t *testing.T, entities ...manifest.Entity) *ring.Ring {
	t.Helper()
	m := manifest.Default()
	if entities != nil {
		m.Entities = entities
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("test manifest invalid: %v", err)
	}
	return ring.Build(m)
}

func TestCalculateLayout_PositionsOnCircle(t *testing.T) {
	r := buildRing(t)
	layout := CalculateLayout(r)

	if len(layout.Members) != 6 {
		t.Fatalf("members = %d, want 6", len(layout.Members))
	}

	const epsilon = 1e-9

	for i, member := range layout.Members {
		// Every member lies exactly on the orbit circle.
		dx := member.Center.X - layout.Center.X
		dy := member.Center.Y - layout.Center.Y
		dist := math.Hypot(dx, dy)
		if math.Abs(dist-layout.Radius) > epsilon {
			t.Errorf("member %d distance = %g, want %g", i, dist, layout.Radius)
		}

		// Angular spacing is exactly 2π/N starting at −π/2.
		wantAngle := 2*math.Pi*float64(i)/6 - math.Pi/2
		if math.Abs(member.Angle-wantAngle) > epsilon {
			t.Errorf("member %d angle = %g, want %g", i, member.Angle, wantAngle)
		}
	}
}

func TestCalculateLayout_SingleEntityAtTop(t *testing.T) {
	r := buildRing(t, manifest.Entity{Name: "a", Color: manifest.RGB{R: 255, G: 0, B: 0}})
	layout := CalculateLayout(r)

	if len(layout.Members) != 1 {
		t.Fatalf("members = %d, want 1", len(layout.Members))
	}

	// With radius 250 on an 800x800 canvas the single entity sits at
	// canvas center + (0, -250).
	member := layout.Members[0]
	if math.Abs(member.Center.X-400) > 1e-9 || math.Abs(member.Center.Y-150) > 1e-9 {
		t.Errorf("position = (%g, %g), want (400, 150)", member.Center.X, member.Center.Y)
	}
	if math.Abs(member.Angle-(-math.Pi/2)) > 1e-9 {
		t.Errorf("angle = %g, want -π/2", member.Angle)
	}
}

func TestCalculateLayout_LabelAnchors(t *testing.T) {
	r := buildRing(t, manifest.Entity{Name: "a", Color: manifest.RGB{R: 255, G: 0, B: 0}})
	layout := CalculateLayout(r)

	member := layout.Members[0]
	// The label projects further outward along the radial angle: straight
	// up for the top entity.
	wantY := member.Center.Y - r.Style.LabelOffset
	if math.Abs(member.LabelAnchor.X-member.Center.X) > 1e-9 {
		t.Errorf("label anchor X = %g, want %g", member.LabelAnchor.X, member.Center.X)
	}
	if math.Abs(member.LabelAnchor.Y-wantY) > 1e-9 {
		t.Errorf("label anchor Y = %g, want %g", member.LabelAnchor.Y, wantY)
	}

	// The hub label sits below the center.
	wantHubY := layout.Center.Y + r.Style.HubLabelOffset
	if math.Abs(layout.Hub.LabelAnchor.Y-wantHubY) > 1e-9 {
		t.Errorf("hub label anchor Y = %g, want %g", layout.Hub.LabelAnchor.Y, wantHubY)
	}
}

func TestCalculateLayout_HubAtCenter(t *testing.T) {
	r := buildRing(t)
	layout := CalculateLayout(r)

	if layout.Hub.Center != layout.Center {
		t.Errorf("hub center = %+v, want %+v", layout.Hub.Center, layout.Center)
	}
	if layout.Hub.GlyphSize != r.Style.HubGlyphSize {
		t.Errorf("hub glyph size = %d, want %d", layout.Hub.GlyphSize, r.Style.HubGlyphSize)
	}
	if layout.Width != r.Canvas.Width || layout.Height != r.Canvas.Height {
		t.Errorf("layout dims = %dx%d, want %dx%d", layout.Width, layout.Height, r.Canvas.Width, r.Canvas.Height)
	}
}

func TestCalculateLayout_SpokesMatchMembers(t *testing.T) {
	r := buildRing(t)
	layout := CalculateLayout(r)

	if len(layout.Spokes) != len(layout.Members) {
		t.Fatalf("spokes = %d, want %d", len(layout.Spokes), len(layout.Members))
	}
	for i, spoke := range layout.Spokes {
		if spoke.From != layout.Center {
			t.Errorf("spoke %d origin = %+v, want center", i, spoke.From)
		}
		if spoke.To != layout.Members[i].Center {
			t.Errorf("spoke %d end = %+v, want %+v", i, spoke.To, layout.Members[i].Center)
		}
	}
}
