package renderer

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontResolver resolves a font face for label rendering. Implementations
// must not fail outright: when no suitable font exists they fall back to a
// built-in face so rendering always proceeds.
type FontResolver interface {
	Resolve(bold bool, size float64) (font.Face, error)
}

// Candidate font files checked in order by the host resolver. Missing files
// are skipped silently.
var (
	boldFontCandidates = []string{
		"C:/Windows/Fonts/segoeuib.ttf",
		"C:/Windows/Fonts/arialbd.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/Library/Fonts/Arial Bold.ttf",
	}
	regularFontCandidates = []string{
		"C:/Windows/Fonts/segoeui.ttf",
		"C:/Windows/Fonts/arial.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/Library/Fonts/Arial.ttf",
	}
)

// HostFontResolver looks for a TrueType font on the host and falls back to
// the embedded Go fonts when none of the candidates exist.
type HostFontResolver struct{}

// NewHostFontResolver creates the default resolver.
func NewHostFontResolver() *HostFontResolver {
	return &HostFontResolver{}
}

// Resolve returns a face at the requested size. Host font lookup failure is
// not an error; the embedded Go fonts cover it.
func (r *HostFontResolver) Resolve(bold bool, size float64) (font.Face, error) {
	candidates := regularFontCandidates
	embedded := goregular.TTF
	if bold {
		candidates = boldFontCandidates
		embedded = gobold.TTF
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face, err := newFace(data, size); err == nil {
			return face, nil
		}
	}

	face, err := newFace(embedded, size)
	if err != nil {
		// The embedded fonts are known-good; this path guards against a
		// corrupted build rather than a runtime condition.
		return basicfont.Face7x13, nil
	}
	return face, nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// BasicFontResolver always returns the fixed 7x13 face regardless of the
// requested size. Useful for deterministic tests with no font state.
type BasicFontResolver struct{}

// Resolve implements FontResolver.
func (BasicFontResolver) Resolve(bold bool, size float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}
