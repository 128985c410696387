// pdf/layout.go
package pdf

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"invoicegen-backend/models"
)

// A Layout paints a complete invoice onto a one-page canvas. The two
// implementations are Boutique (the styled storefront document) and
// Legacy (the plain single-line document kept for old clients).
type Layout interface {
	Render(c *Canvas, inv models.Invoice)
}

// Render runs a layout on a fresh canvas and returns it ready for
// writing.
func Render(l Layout, inv models.Invoice) *Canvas {
	c := NewCanvas()
	l.Render(c, inv)
	return c
}

// descWrapWidth is the character budget of the description column.
const descWrapWidth = 45

// wrapText splits s into lines of at most width characters: greedy on
// whitespace-separated words, with words longer than the budget broken
// mid-word so they fill the available space. Blank input wraps to zero
// lines.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	cur := ""
	for _, word := range strings.Fields(s) {
		for word != "" {
			if cur == "" {
				if len(word) <= width {
					cur = word
					word = ""
					continue
				}
				lines = append(lines, word[:width])
				word = word[width:]
				continue
			}
			if len(cur)+1+len(word) <= width {
				cur += " " + word
				word = ""
				continue
			}
			if len(word) > width {
				if space := width - len(cur) - 1; space > 0 {
					cur += " " + word[:space]
					word = word[space:]
				}
			}
			lines = append(lines, cur)
			cur = ""
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// formatMoney renders v with two decimals and comma thousands
// separators, e.g. 1234567.5 -> "1,234,567.50".
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// findLogo returns the path of the store logo inside dir, preferring the
// PNG over the JPEG, or "" when neither exists.
func findLogo(dir string) string {
	for _, name := range []string{"logo.png", "logo.jpg"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
