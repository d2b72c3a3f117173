// Package svg pulls SVG fragments out of free-form model output.
//
// Extraction is deliberately permissive: the first <svg ...>...</svg> span wins
// and nothing inside it is validated or sanitised.
package svg

import (
	"errors"
	"regexp"
	"strings"
)

const (
	// DefaultSize is the canvas edge the prompts ask for.
	DefaultSize = 600

	defaultViewBox = ` viewBox="0 0 600 600"`
	defaultSize    = ` width="600" height="600"`
)

// ErrNoSVG means the text had no <svg>...</svg> pair.
var ErrNoSVG = errors.New("no valid SVG found in model response")

var (
	svgRe     = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	widthRe   = regexp.MustCompile(`(?i)\swidth\s*=`)
	heightRe  = regexp.MustCompile(`(?i)\sheight\s*=`)
	viewBoxRe = regexp.MustCompile(`(?i)\sviewBox\s*=`)
)

// Extract returns the first <svg ...>...</svg> span of raw, tags matched
// case-insensitively.
func Extract(raw string) (string, error) {
	m := svgRe.FindString(raw)
	if m == "" {
		return "", ErrNoSVG
	}
	return m, nil
}

// Normalize gives an unsized fragment a 600x600 canvas. A fragment whose
// opening tag already has a width or height is returned as is; otherwise
// width/height are added, plus a viewBox when that is missing too.
func Normalize(fragment string) string {
	end := strings.IndexByte(fragment, '>')
	if !strings.HasPrefix(strings.ToLower(fragment), "<svg") || end < 0 {
		return fragment
	}
	open := fragment[:end]
	if widthRe.MatchString(open) || heightRe.MatchString(open) {
		return fragment
	}
	attrs := defaultSize
	if !viewBoxRe.MatchString(open) {
		attrs = defaultViewBox + attrs
	}
	return fragment[:4] + attrs + fragment[4:]
}

// ExtractNormalized is Extract followed by Normalize.
func ExtractNormalized(raw string) (string, error) {
	s, err := Extract(raw)
	if err != nil {
		return "", err
	}
	return Normalize(s), nil
}
