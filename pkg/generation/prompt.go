package generation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/artem13815/asemic/pkg/studio"
)

// params is a Request with every field resolved against the catalogue.
type params struct {
	Prompt      string
	Model       string
	Colors      []string
	Palette     string
	StrokeWidth float64
	Complexity  studio.Complexity
	Blueprint   bool
	Remix       bool
}

func resolve(req Request, cat *studio.Catalog, maxPromptChars int) (params, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return params{}, ErrEmptyPrompt
	}
	if maxPromptChars > 0 && len([]rune(prompt)) > maxPromptChars {
		prompt = string([]rune(prompt)[:maxPromptChars])
	}
	model := strings.TrimSpace(req.Model)
	if !cat.HasModel(model) {
		model = cat.DefaultModel
	}
	colors := req.Colors
	if len(colors) == 0 {
		colors = cat.FallbackColors
	}
	return params{
		Prompt:      prompt,
		Model:       model,
		Colors:      colors,
		Palette:     cat.Palette(req.Colors),
		StrokeWidth: cat.ClampStroke(req.StrokeWidth),
		Complexity:  cat.ComplexityFor(req.Complexity),
		Blueprint:   req.Blueprint,
		Remix:       req.Remix,
	}, nil
}

const remixHint = "\nRemix mode: Randomly introduce surprising geometry (fractals, recursive curves, impossible shapes).\n"

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// buildUserPrompt is the single-call render instruction.
func buildUserPrompt(p params) string {
	c := p.Complexity
	out := fmt.Sprintf(`Create a visually stunning asemic art SVG based on: "%s"

SPECIFICATIONS:
- Colors: %s
- Base stroke width: %s
- Complexity: %s, %s, %s
- Canvas: 600x600 viewBox
- Style: Flowing, organic, otherworldly, sophisticated

MANDATORY ELEMENTS:
1. Use <defs> with gradients: <linearGradient> or <radialGradient>
2. Create %s with varied stroke-width from %s to %s
3. Add %s using <animate>, <animateTransform>
4. Layer elements with <g> groups and varying opacity (0.3-1.0)
5. Include flowing paths, organic shapes, and geometric accents
6. Create visual depth through layering and scale variation

Make this a masterpiece that demonstrates the beauty of asemic art - something extraordinary and captivating.

Output ONLY the complete SVG code.
`,
		p.Prompt,
		p.Palette,
		num(p.StrokeWidth),
		c.Elements, c.Animations, c.Detail,
		c.Elements, num(p.StrokeWidth*0.5), num(p.StrokeWidth*3),
		c.Animations,
	)
	if p.Remix {
		out += remixHint
	}
	return out
}

// buildBlueprintPrompt asks for the XML-like plan of the two-step mode.
func buildBlueprintPrompt(p params) string {
	return fmt.Sprintf(`Design a conceptual blueprint (in XML-like structure) for an Asemic Entity based on:
"%s".
Use these palette colors: %s.
Plan %s and %s.
Output ONLY the XML blueprint.
`, p.Prompt, p.Palette, p.Complexity.Elements, p.Complexity.Animations)
}

// buildRenderPrompt turns a blueprint into the render instruction.
func buildRenderPrompt(p params, blueprint string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Blueprint:
%s

Render this into a highly detailed, surreal SVG.
Use only these colors: %s.
Base stroke width: %s.
Complexity: %s, %s, %s.
Group components with <g>.
Add subtle path variations and layered textures.
Animate a few parts using <animate> or <animateTransform> for unexpected liveliness.
Output ONLY raw SVG.
`, strings.TrimSpace(blueprint), p.Palette, num(p.StrokeWidth), p.Complexity.Elements, p.Complexity.Animations, p.Complexity.Detail)
	if p.Remix {
		b.WriteString(remixHint)
	}
	return b.String()
}
