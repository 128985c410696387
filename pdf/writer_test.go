package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterCreatesDirAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "INVOICE")
	w := Writer{Dir: dir}

	c := Render(Boutique{AssetDir: t.TempDir()}, sampleInvoice())
	name, path, err := w.Write(c, "20260831-143005")
	require.NoError(t, err)
	require.Equal(t, "Invoice (20260831-143005).pdf", name)
	require.Equal(t, filepath.Join(dir, name), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestWriterSameSecondOverwrites(t *testing.T) {
	w := Writer{Dir: t.TempDir()}

	first := Render(Boutique{AssetDir: t.TempDir()}, sampleInvoice())
	_, firstPath, err := w.Write(first, "20260831-090000")
	require.NoError(t, err)

	inv := sampleInvoice()
	inv.Items = append(inv.Items, sampleInvoice().Items...)
	second := Render(Boutique{AssetDir: t.TempDir()}, inv)
	_, secondPath, err := w.Write(second, "20260831-090000")
	require.NoError(t, err)

	require.Equal(t, firstPath, secondPath)
	entries, err := os.ReadDir(w.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
