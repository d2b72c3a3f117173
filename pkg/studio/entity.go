package studio

// Color is a named palette entry.
type Color struct {
	Name string `yaml:"name" json:"name"`
	Hex  string `yaml:"hex" json:"hex"`
}

// Complexity is a preset translated into prompt hints.
type Complexity struct {
	Name       string `yaml:"name" json:"name"`
	Elements   string `yaml:"elements" json:"elements"`
	Animations string `yaml:"animations" json:"animations"`
	Detail     string `yaml:"detail" json:"detail"`
}

// StrokeRange bounds the base stroke width slider.
type StrokeRange struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Step    float64 `yaml:"step" json:"step"`
	Default float64 `yaml:"default" json:"default"`
}

// Catalog is the read-only studio configuration shared by every request.
// Build it once at start-up and never mutate it afterwards.
type Catalog struct {
	SystemPrompt      string       `yaml:"system_prompt" json:"-"`
	BlueprintPrompt   string       `yaml:"blueprint_prompt" json:"-"`
	Models            []string     `yaml:"models" json:"models"`
	DefaultModel      string       `yaml:"default_model" json:"defaultModel"`
	Colors            []Color      `yaml:"colors" json:"colors"`
	DefaultColors     []string     `yaml:"default_colors" json:"defaultColors"`
	FallbackColors    []string     `yaml:"fallback_colors" json:"fallbackColors"`
	Complexities      []Complexity `yaml:"complexities" json:"complexities"`
	DefaultComplexity string       `yaml:"default_complexity" json:"defaultComplexity"`
	Stroke            StrokeRange  `yaml:"stroke" json:"stroke"`
	SurprisePrompts   []string     `yaml:"surprise_prompts" json:"-"`

	hex map[string]string
}
