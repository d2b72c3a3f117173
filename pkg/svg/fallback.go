package svg

import (
	"bytes"
	"strings"

	svgo "github.com/ajstarks/svgo"
)

const fallbackLineWidth = 56

// Fallback draws the placeholder shown when every attempt failed. The output
// depends only on msg.
func Fallback(msg string) string {
	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.Startview(DefaultSize, DefaultSize, 0, 0, DefaultSize, DefaultSize)
	canvas.Title("Generation failed")
	canvas.Rect(0, 0, DefaultSize, DefaultSize, "fill:#f5f5f7")
	canvas.Rect(20, 20, DefaultSize-40, DefaultSize-40, "fill:none;stroke:#DC143C;stroke-width:2;stroke-dasharray:8 6")
	canvas.Gstyle("fill:none;stroke:#4B0082;stroke-width:1.5;opacity:0.35")
	canvas.Path("M 120 210 C 180 150, 240 270, 300 210 S 420 150, 480 210")
	canvas.Path("M 140 250 q 40 -30 80 0 t 80 0 t 80 0 t 80 0")
	canvas.Gend()
	canvas.Text(DefaultSize/2, 320, "Generation failed", "font-family:sans-serif;font-size:28px;fill:#DC143C;text-anchor:middle")

	y := 370
	for _, line := range wrap(msg, fallbackLineWidth) {
		canvas.Text(DefaultSize/2, y, line, "font-family:monospace;font-size:13px;fill:#353839;text-anchor:middle")
		y += 20
		if y > DefaultSize-40 {
			break
		}
	}
	canvas.End()

	out := buf.String()
	// Inline HTML does not want the XML prologue.
	if i := strings.Index(out, "<svg"); i > 0 {
		out = out[i:]
	}
	return strings.TrimSpace(out)
}

func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{"unknown error"}
	}
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		for len(w) > width {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			lines = append(lines, w[:width])
			w = w[width:]
		}
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
