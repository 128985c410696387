// pdf/canvas.go
package pdf

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"
)

// Page geometry: US Letter in points, 50pt margin on all sides.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	Margin     = 50.0
)

// Canvas is a single-page drawing surface with the origin at the
// bottom-left corner, so every layout coordinate reads exactly like the
// geometry it was specified in. Conversion to the underlying top-left
// coordinate space happens here and nowhere else.
type Canvas struct {
	pdf *gofpdf.Fpdf
}

// NewCanvas creates a one-page Letter canvas. Auto page breaks are off:
// the layouts own every coordinate and a document is exactly one page.
func NewCanvas() *Canvas {
	f := gofpdf.New("P", "pt", "Letter", "")
	f.SetAutoPageBreak(false, 0)
	f.AddPage()
	return &Canvas{pdf: f}
}

func (c *Canvas) y(v float64) float64 {
	return PageHeight - v
}

// SetFont selects one of the built-in fonts ("Helvetica") with style
// "" or "B".
func (c *Canvas) SetFont(style string, size float64) {
	c.pdf.SetFont("Helvetica", style, size)
}

// SetFillHex, SetStrokeHex and SetTextHex take "#RRGGBB" colors. A color
// that fails to parse is a programming error and maps to black.
func (c *Canvas) SetFillHex(hex string) {
	r, g, b := hexRGB(hex)
	c.pdf.SetFillColor(r, g, b)
}

func (c *Canvas) SetStrokeHex(hex string) {
	r, g, b := hexRGB(hex)
	c.pdf.SetDrawColor(r, g, b)
}

func (c *Canvas) SetTextHex(hex string) {
	r, g, b := hexRGB(hex)
	c.pdf.SetTextColor(r, g, b)
}

func (c *Canvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

// FillRect fills the rectangle whose bottom-left corner is (x, y).
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.pdf.Rect(x, c.y(y+h), w, h, "F")
}

// StrokeRect outlines the rectangle whose bottom-left corner is (x, y).
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.pdf.Rect(x, c.y(y+h), w, h, "D")
}

// FillRoundRect and StrokeRoundRect draw rounded rectangles with the
// given corner radius.
func (c *Canvas) FillRoundRect(x, y, w, h, r float64) {
	c.pdf.RoundedRect(x, c.y(y+h), w, h, r, "1234", "F")
}

func (c *Canvas) StrokeRoundRect(x, y, w, h, r float64) {
	c.pdf.RoundedRect(x, c.y(y+h), w, h, r, "1234", "D")
}

// Line draws a straight segment between two points.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, c.y(y1), x2, c.y(y2))
}

// DrawString draws s with its baseline at y, left-aligned at x.
func (c *Canvas) DrawString(x, y float64, s string) {
	c.pdf.Text(x, c.y(y), s)
}

// DrawRightString draws s so that it ends at x.
func (c *Canvas) DrawRightString(x, y float64, s string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(s), c.y(y), s)
}

// DrawCentredString draws s centered on x.
func (c *Canvas) DrawCentredString(x, y float64, s string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(s)/2, c.y(y), s)
}

// Image draws the image file into the box whose bottom-left corner is
// (x, y). Missing or undecodable files are skipped with a warning and
// reported via the return value; an optional asset must never abort the
// layout.
func (c *Canvas) Image(path string, x, y, w, h float64) bool {
	if !usableImage(path) {
		return false
	}
	c.pdf.ImageOptions(path, x, c.y(y+h), w, h, false, gofpdf.ImageOptions{}, 0, "")
	return true
}

// Watermark draws the image rotated by angle degrees around the page
// center at the given opacity, restoring the graphics state afterwards so
// neither the rotation nor the alpha leaks into later drawing.
func (c *Canvas) Watermark(path string, w, h, angle, alpha float64) bool {
	if !usableImage(path) {
		return false
	}
	cx := PageWidth / 2
	cy := PageHeight / 2

	c.pdf.TransformBegin()
	c.pdf.TransformRotate(angle, cx, c.y(cy))
	c.pdf.SetAlpha(alpha, "Normal")
	c.pdf.ImageOptions(path, cx-w/2, c.y(cy)-h/2, w, h, false, gofpdf.ImageOptions{}, 0, "")
	c.pdf.SetAlpha(1.0, "Normal")
	c.pdf.TransformEnd()
	return true
}

// Output writes the finished document. Any drawing error accumulated on
// the underlying document surfaces here.
func (c *Canvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

// usableImage reports whether path exists and decodes as PNG or JPEG.
// Validation happens before the file touches the document because a bad
// image would poison the underlying error state for good.
func usableImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
	default:
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("could not open image")
		}
		return false
	}
	defer f.Close()
	if _, _, err := image.DecodeConfig(f); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not decode image")
		return false
	}
	return true
}

func hexRGB(hex string) (int, int, int) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
