// pdf/writer.go
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Writer persists rendered documents under Dir, creating it on first
// use. Filenames carry a second-resolution timestamp; two invoices
// written in the same second share a name and the later one wins.
type Writer struct {
	Dir string
}

// Filename returns the artifact name for an invoice timestamp, e.g.
// "Invoice (20260831-143005).pdf".
func (w Writer) Filename(stamp string) string {
	return fmt.Sprintf("Invoice (%s).pdf", stamp)
}

// Write renders the canvas into Dir and returns the filename and the
// full path of the artifact.
func (w Writer) Write(c *Canvas, stamp string) (string, string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create invoice dir %s: %w", w.Dir, err)
	}
	name := w.Filename(stamp)
	path := filepath.Join(w.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.Output(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", "", fmt.Errorf("close %s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("invoice written")
	return name, path, nil
}
