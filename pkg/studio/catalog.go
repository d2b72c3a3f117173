package studio

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// FallbackComplexity is used for any level the catalogue does not know.
const FallbackComplexity = "Moderate"

var ErrInvalidCatalog = errors.New("invalid studio catalog")

// Default parses the embedded catalogue.
func Default() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(defaultCatalog, &c); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a YAML override file on top of the embedded defaults.
// An empty path returns the defaults.
func Load(path string) (*Catalog, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var over Catalog
	if err := yaml.Unmarshal(data, &over); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	merged := base.merge(over)
	if err := merged.init(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (c Catalog) merge(o Catalog) *Catalog {
	if o.SystemPrompt != "" {
		c.SystemPrompt = o.SystemPrompt
	}
	if o.BlueprintPrompt != "" {
		c.BlueprintPrompt = o.BlueprintPrompt
	}
	if len(o.Models) > 0 {
		c.Models = o.Models
	}
	if o.DefaultModel != "" {
		c.DefaultModel = o.DefaultModel
	}
	if len(o.Colors) > 0 {
		c.Colors = o.Colors
	}
	if len(o.DefaultColors) > 0 {
		c.DefaultColors = o.DefaultColors
	}
	if len(o.FallbackColors) > 0 {
		c.FallbackColors = o.FallbackColors
	}
	if len(o.Complexities) > 0 {
		c.Complexities = o.Complexities
	}
	if o.DefaultComplexity != "" {
		c.DefaultComplexity = o.DefaultComplexity
	}
	if o.Stroke.Max > 0 {
		c.Stroke = o.Stroke
	}
	if len(o.SurprisePrompts) > 0 {
		c.SurprisePrompts = o.SurprisePrompts
	}
	return &c
}

func (c *Catalog) init() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("%w: no models", ErrInvalidCatalog)
	}
	if !c.HasModel(c.DefaultModel) {
		c.DefaultModel = c.Models[0]
	}
	if len(c.Complexities) == 0 {
		return fmt.Errorf("%w: no complexity presets", ErrInvalidCatalog)
	}
	if c.Stroke.Min <= 0 || c.Stroke.Max < c.Stroke.Min {
		return fmt.Errorf("%w: stroke range %.2f..%.2f", ErrInvalidCatalog, c.Stroke.Min, c.Stroke.Max)
	}
	c.hex = make(map[string]string, len(c.Colors))
	for _, col := range c.Colors {
		c.hex[col.Name] = col.Hex
	}
	return nil
}

// Hex returns the hex value of a named colour.
func (c *Catalog) Hex(name string) (string, bool) {
	h, ok := c.hex[name]
	return h, ok
}

// Palette renders the selected colours as "Name(#HEX), Name(#HEX)".
// An empty selection falls back to FallbackColors; unknown names are dropped.
func (c *Catalog) Palette(names []string) string {
	if len(names) == 0 {
		names = c.FallbackColors
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if h, ok := c.hex[n]; ok {
			parts = append(parts, fmt.Sprintf("%s(%s)", n, h))
		}
	}
	return strings.Join(parts, ", ")
}

// ComplexityFor returns the named preset, or the Moderate preset.
func (c *Catalog) ComplexityFor(name string) Complexity {
	var fallback *Complexity
	for i := range c.Complexities {
		if c.Complexities[i].Name == name {
			return c.Complexities[i]
		}
		if c.Complexities[i].Name == FallbackComplexity {
			fallback = &c.Complexities[i]
		}
	}
	if fallback != nil {
		return *fallback
	}
	return c.Complexities[0]
}

// HasModel reports whether the model id is in the enumerated list.
func (c *Catalog) HasModel(name string) bool {
	for _, m := range c.Models {
		if m == name {
			return true
		}
	}
	return false
}

// ClampStroke keeps w inside the stroke range; zero becomes the default.
func (c *Catalog) ClampStroke(w float64) float64 {
	switch {
	case w == 0:
		return c.Stroke.Default
	case w < c.Stroke.Min:
		return c.Stroke.Min
	case w > c.Stroke.Max:
		return c.Stroke.Max
	}
	return w
}

// Surprise picks a random surprise prompt. r may be nil.
func (c *Catalog) Surprise(r *rand.Rand) string {
	if len(c.SurprisePrompts) == 0 {
		return ""
	}
	if r == nil {
		return c.SurprisePrompts[rand.IntN(len(c.SurprisePrompts))]
	}
	return c.SurprisePrompts[r.IntN(len(c.SurprisePrompts))]
}
