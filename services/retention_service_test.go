package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSweepRemovesOnlyExpiredPDFs(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "Invoice (20260101-090000).pdf")
	fresh := filepath.Join(dir, "Invoice (20260830-090000).pdf")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, fresh, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	stale := time.Now().AddDate(0, 0, -40)
	require.NoError(t, os.Chtimes(old, stale, stale))
	require.NoError(t, os.Chtimes(other, stale, stale))

	NewRetentionService(dir, 30).Sweep()

	require.NoFileExists(t, old)
	require.FileExists(t, fresh)
	require.FileExists(t, other)
}

func TestSweepMissingDirIsNoop(t *testing.T) {
	s := NewRetentionService(filepath.Join(t.TempDir(), "absent"), 30)
	require.NotPanics(t, s.Sweep)
}
