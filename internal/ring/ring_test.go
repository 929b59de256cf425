package ring

import (
	"testing"

	"github.com/avdeyev/orbitgen/internal/manifest"
)

func TestBuild(t *testing.T) {
	m := manifest.Default()

	r := Build(m)

	if r.Hub == nil {
		t.Fatal("Build() hub is nil")
	}
	if r.Hub.Name != m.Hub.Name {
		t.Errorf("hub name = %q, want %q", r.Hub.Name, m.Hub.Name)
	}
	if len(r.Members) != len(m.Entities) {
		t.Fatalf("members = %d, want %d", len(r.Members), len(m.Entities))
	}
	if len(r.Spokes) != len(m.Entities) {
		t.Fatalf("spokes = %d, want %d", len(r.Spokes), len(m.Entities))
	}

	// Members keep manifest order and colors; spokes run hub to member.
	for i, member := range r.Members {
		if member.Name != m.Entities[i].Name {
			t.Errorf("member %d = %q, want %q", i, member.Name, m.Entities[i].Name)
		}
		if member.Color != m.Entities[i].Color {
			t.Errorf("member %d color = %v, want %v", i, member.Color, m.Entities[i].Color)
		}
		if r.Spokes[i].From != r.Hub {
			t.Errorf("spoke %d does not start at the hub", i)
		}
		if r.Spokes[i].To != member {
			t.Errorf("spoke %d does not end at member %q", i, member.Name)
		}
	}

	if r.Canvas != m.Canvas {
		t.Errorf("canvas = %+v, want %+v", r.Canvas, m.Canvas)
	}
	if r.Style != m.Style {
		t.Errorf("style was not carried over")
	}
}

func TestBuild_SingleEntity(t *testing.T) {
	m := manifest.Default()
	m.Entities = []manifest.Entity{{Name: "a", Color: manifest.RGB{R: 255, G: 0, B: 0}}}

	r := Build(m)

	if len(r.Members) != 1 || len(r.Spokes) != 1 {
		t.Fatalf("members = %d spokes = %d, want 1 and 1", len(r.Members), len(r.Spokes))
	}
}
