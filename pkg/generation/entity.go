package generation

import (
	"errors"
	"time"
)

// ErrEmptyPrompt is the only validation failure a caller has to handle.
var ErrEmptyPrompt = errors.New("prompt is required")

// Request carries the form values of one generation.
type Request struct {
	Prompt      string
	Model       string
	Colors      []string
	StrokeWidth float64
	Complexity  string
	// Blueprint asks the model for an XML-like plan first and renders that plan.
	Blueprint bool
	// Remix adds surprising geometry to the render instruction.
	Remix bool
}

// Kind tells a successful outcome from an exhausted one.
type Kind int

const (
	Success Kind = iota
	Exhausted
)

func (k Kind) String() string {
	if k == Success {
		return "success"
	}
	return "exhausted"
}

// Outcome is what the bounded retry loop produced.
type Outcome struct {
	Kind      Kind
	SVG       string
	Blueprint string
	Attempts  int
	Elapsed   time.Duration
	LastErr   error
}

// Result is everything the UI shows after a generation.
type Result struct {
	OK          bool          `json:"ok"`
	SVG         string        `json:"svg"`
	FileID      string        `json:"fileId,omitempty"`
	FilePath    string        `json:"-"`
	Status      string        `json:"status"`
	Model       string        `json:"model"`
	Complexity  string        `json:"complexity"`
	Palette     string        `json:"palette"`
	StrokeWidth float64       `json:"strokeWidth"`
	Attempts    int           `json:"attempts"`
	MaxAttempts int           `json:"maxAttempts"`
	Elapsed     time.Duration `json:"-"`
	Blueprint   string        `json:"blueprint,omitempty"`
	Error       string        `json:"error,omitempty"`
}
