package renderer

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/avdeyev/orbitgen/internal/manifest"
)

func renderPNG(t *testing.T, r *ringFixture, opts RenderOptions) []byte {
	t.Helper()
	layout := CalculateLayout(r.ring)
	data, err := NewPNGRenderer(opts).Render(layout, r.ring)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return data
}

func TestPNGRenderer_Dimensions(t *testing.T) {
	tests := []struct {
		name     string
		entities int
	}{
		{name: "single entity", entities: 1},
		{name: "default six", entities: 6},
		{name: "a dozen", entities: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newRingFixture(t, tt.entities)
			data := renderPNG(t, fixture, RenderOptions{IncludeLabels: true, Fonts: BasicFontResolver{}})

			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("output is not a valid PNG: %v", err)
			}

			// Canvas size is independent of entity count.
			bounds := img.Bounds()
			if bounds.Dx() != 800 || bounds.Dy() != 800 {
				t.Errorf("image = %dx%d, want 800x800", bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestPNGRenderer_Deterministic(t *testing.T) {
	first := renderPNG(t, newRingFixture(t, 6), RenderOptions{IncludeLabels: true, Fonts: BasicFontResolver{}})
	second := renderPNG(t, newRingFixture(t, 6), RenderOptions{IncludeLabels: true, Fonts: BasicFontResolver{}})

	if !bytes.Equal(first, second) {
		t.Error("repeated renders of the same ring should be byte-identical")
	}
}

func TestPNGRenderer_PixelContent(t *testing.T) {
	m := manifest.Default()
	m.Entities = []manifest.Entity{{Name: "a", Color: manifest.RGB{R: 255, G: 0, B: 0}}}
	fixture := ringFixtureFromManifest(t, m)

	data := renderPNG(t, fixture, RenderOptions{IncludeLabels: true, Fonts: BasicFontResolver{}})

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}

	at := func(x, y int) (r, g, b uint32) {
		cr, cg, cb, _ := img.At(x, y).RGBA()
		return cr >> 8, cg >> 8, cb >> 8
	}

	// Far corner stays the background color.
	if r, g, b := at(5, 5); r != 15 || g != 15 || b != 30 {
		t.Errorf("corner pixel = (%d,%d,%d), want background (15,15,30)", r, g, b)
	}

	// The single entity sits at center + (0, -250) = (400, 150); the glyph
	// body fill there is the entity color dimmed to an eighth.
	if r, g, b := at(400, 150); r != 255/8 || g != 0 || b != 0 {
		t.Errorf("glyph body pixel = (%d,%d,%d), want (31,0,0)", r, g, b)
	}
}

func TestPNGRenderer_HostFontsStillRender(t *testing.T) {
	// The default resolver falls back to embedded fonts when the host has
	// none of the candidate files; either way rendering must succeed.
	data := renderPNG(t, newRingFixture(t, 6), RenderOptions{IncludeLabels: true})

	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
}

func TestPNGRenderer_WithTitle(t *testing.T) {
	plain := renderPNG(t, newRingFixture(t, 6), RenderOptions{Fonts: BasicFontResolver{}})
	titled := renderPNG(t, newRingFixture(t, 6), RenderOptions{Fonts: BasicFontResolver{}, Title: "Agents"})

	if bytes.Equal(plain, titled) {
		t.Error("title should change the rendered output")
	}
}

func TestPNGRenderer_LabelsToggle(t *testing.T) {
	labeled := renderPNG(t, newRingFixture(t, 6), RenderOptions{IncludeLabels: true, Fonts: BasicFontResolver{}})
	bare := renderPNG(t, newRingFixture(t, 6), RenderOptions{IncludeLabels: false, Fonts: BasicFontResolver{}})

	if bytes.Equal(labeled, bare) {
		t.Error("disabling labels should change the rendered output")
	}
}
