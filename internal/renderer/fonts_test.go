package renderer

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestHostFontResolver(t *testing.T) {
	resolver := NewHostFontResolver()

	// Resolution must always succeed: hosts without any candidate font get
	// the embedded faces.
	for _, bold := range []bool{false, true} {
		face, err := resolver.Resolve(bold, 22)
		if err != nil {
			t.Errorf("Resolve(bold=%v) error = %v", bold, err)
		}
		if face == nil {
			t.Errorf("Resolve(bold=%v) returned nil face", bold)
		}
	}
}

func TestHostFontResolver_Sizes(t *testing.T) {
	resolver := NewHostFontResolver()

	small, err := resolver.Resolve(true, 12)
	if err != nil {
		t.Fatalf("Resolve(12) error = %v", err)
	}
	large, err := resolver.Resolve(true, 36)
	if err != nil {
		t.Fatalf("Resolve(36) error = %v", err)
	}

	if small.Metrics().Height >= large.Metrics().Height {
		t.Errorf("36pt face should be taller than 12pt face, got %v vs %v",
			large.Metrics().Height, small.Metrics().Height)
	}
}

func TestBasicFontResolver(t *testing.T) {
	face, err := BasicFontResolver{}.Resolve(true, 22)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if face != basicfont.Face7x13 {
		t.Error("BasicFontResolver should return the fixed 7x13 face")
	}
}
