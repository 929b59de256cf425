package manifest

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// manifestSchema describes the top-level blocks of a manifest file.
var manifestSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "canvas"},
		{Type: "style"},
		{Type: "hub"},
		{Type: "entity", LabelNames: []string{"name"}},
	},
}

// ParseFile reads and parses a manifest file. Blocks and attributes the file
// omits keep their Default() values; entity blocks, when present, replace the
// default entity list entirely.
func ParseFile(path string) (*Manifest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseBytes(src, path)
}

// ParseBytes parses manifest source. The filename is used only in
// diagnostics.
func ParseBytes(src []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest parse errors: %s", diags.Error())
	}

	content, diags := file.Body.Content(manifestSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid manifest structure: %s", diags.Error())
	}

	m := Default()

	var entities []Entity
	for _, block := range content.Blocks {
		switch block.Type {
		case "canvas":
			if err := decodeCanvas(block.Body, &m.Canvas); err != nil {
				return nil, err
			}
		case "style":
			if err := decodeStyle(block.Body, &m.Style); err != nil {
				return nil, err
			}
		case "hub":
			if err := decodeHub(block.Body, &m.Hub); err != nil {
				return nil, err
			}
		case "entity":
			entity, err := decodeEntity(block)
			if err != nil {
				return nil, err
			}
			entities = append(entities, entity)
		}
	}

	if entities != nil {
		m.Entities = entities
	}

	return m, nil
}

// blockAttributes evaluates all attributes of a block body into cty values.
func blockAttributes(body hcl.Body) (map[string]cty.Value, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse attributes: %s", diags.Error())
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate %q: %s", name, diags.Error())
		}
		values[name] = val
	}
	return values, nil
}

func decodeCanvas(body hcl.Body, c *Canvas) error {
	values, err := blockAttributes(body)
	if err != nil {
		return fmt.Errorf("canvas block: %w", err)
	}

	for name, val := range values {
		switch name {
		case "width":
			if err := ctyInt(val, &c.Width); err != nil {
				return fmt.Errorf("canvas width: %w", err)
			}
		case "height":
			if err := ctyInt(val, &c.Height); err != nil {
				return fmt.Errorf("canvas height: %w", err)
			}
		case "background":
			color, err := ctyColor(val)
			if err != nil {
				return fmt.Errorf("canvas background: %w", err)
			}
			c.Background = color
		default:
			return fmt.Errorf("canvas block: unsupported attribute %q", name)
		}
	}
	return nil
}

func decodeStyle(body hcl.Body, s *Style) error {
	values, err := blockAttributes(body)
	if err != nil {
		return fmt.Errorf("style block: %w", err)
	}

	for name, val := range values {
		var decodeErr error
		switch name {
		case "orbit_radius":
			decodeErr = ctyFloat(val, &s.OrbitRadius)
		case "glyph_size":
			decodeErr = ctyInt(val, &s.GlyphSize)
		case "hub_glyph_size":
			decodeErr = ctyInt(val, &s.HubGlyphSize)
		case "glow_layers":
			decodeErr = ctyInt(val, &s.GlowLayers)
		case "glow_step":
			decodeErr = ctyInt(val, &s.GlowStep)
		case "label_offset":
			decodeErr = ctyFloat(val, &s.LabelOffset)
		case "hub_label_offset":
			decodeErr = ctyFloat(val, &s.HubLabelOffset)
		case "label_font_size":
			decodeErr = ctyFloat(val, &s.LabelFontSize)
		case "hub_label_font_size":
			decodeErr = ctyFloat(val, &s.HubLabelFontSize)
		case "ring_segments":
			decodeErr = ctyInt(val, &s.RingSegments)
		case "ring_dash_period":
			decodeErr = ctyInt(val, &s.RingDashPeriod)
		case "ring_dash_gap":
			decodeErr = ctyInt(val, &s.RingDashGap)
		case "ring_color":
			s.RingColor, decodeErr = ctyColor(val)
		case "spoke_gap":
			decodeErr = ctyFloat(val, &s.SpokeGap)
		case "spoke_dot_radius":
			decodeErr = ctyInt(val, &s.SpokeDotRadius)
		case "spoke_fade_in":
			decodeErr = ctyFloat(val, &s.SpokeFadeIn)
		case "spoke_fade_out":
			decodeErr = ctyFloat(val, &s.SpokeFadeOut)
		default:
			return fmt.Errorf("style block: unsupported attribute %q", name)
		}
		if decodeErr != nil {
			return fmt.Errorf("style %s: %w", name, decodeErr)
		}
	}
	return nil
}

func decodeHub(body hcl.Body, h *Hub) error {
	values, err := blockAttributes(body)
	if err != nil {
		return fmt.Errorf("hub block: %w", err)
	}

	for name, val := range values {
		switch name {
		case "name":
			if val.Type() != cty.String {
				return fmt.Errorf("hub name must be a string")
			}
			h.Name = val.AsString()
		case "color":
			color, err := ctyColor(val)
			if err != nil {
				return fmt.Errorf("hub color: %w", err)
			}
			h.Color = color
		default:
			return fmt.Errorf("hub block: unsupported attribute %q", name)
		}
	}
	return nil
}

func decodeEntity(block *hcl.Block) (Entity, error) {
	entity := Entity{Name: block.Labels[0]}

	values, err := blockAttributes(block.Body)
	if err != nil {
		return Entity{}, fmt.Errorf("entity %q: %w", entity.Name, err)
	}

	for name, val := range values {
		switch name {
		case "color":
			color, err := ctyColor(val)
			if err != nil {
				return Entity{}, fmt.Errorf("entity %q color: %w", entity.Name, err)
			}
			entity.Color = color
		default:
			return Entity{}, fmt.Errorf("entity %q: unsupported attribute %q", entity.Name, name)
		}
	}
	return entity, nil
}

// ctyColor accepts either a "#RRGGBB" string or a [r, g, b] tuple.
func ctyColor(val cty.Value) (RGB, error) {
	if val.IsNull() {
		return RGB{}, fmt.Errorf("color cannot be null")
	}

	if val.Type() == cty.String {
		return parseHexColor(val.AsString())
	}

	if val.Type().IsTupleType() || val.Type().IsListType() {
		var channels []uint8
		it := val.ElementIterator()
		for it.Next() {
			_, v := it.Element()
			var n int
			if err := ctyInt(v, &n); err != nil {
				return RGB{}, err
			}
			if n < 0 || n > 255 {
				return RGB{}, fmt.Errorf("color channel %d out of range [0, 255]", n)
			}
			channels = append(channels, uint8(n))
		}
		if len(channels) != 3 {
			return RGB{}, fmt.Errorf("color tuple must have exactly 3 channels, got %d", len(channels))
		}
		return RGB{channels[0], channels[1], channels[2]}, nil
	}

	return RGB{}, fmt.Errorf("color must be a \"#RRGGBB\" string or a [r, g, b] tuple")
}

func parseHexColor(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("invalid hex color %q, expected \"#RRGGBB\"", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{r, g, b}, nil
}

func ctyInt(val cty.Value, out *int) error {
	if val.IsNull() || val.Type() != cty.Number {
		return fmt.Errorf("expected a number")
	}
	f, _ := val.AsBigFloat().Float64()
	n := int(f)
	if float64(n) != f {
		return fmt.Errorf("expected a whole number, got %g", f)
	}
	*out = n
	return nil
}

func ctyFloat(val cty.Value, out *float64) error {
	if val.IsNull() || val.Type() != cty.Number {
		return fmt.Errorf("expected a number")
	}
	f, _ := val.AsBigFloat().Float64()
	*out = f
	return nil
}
