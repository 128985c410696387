// services/retention_service.go
package services

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// RetentionService deletes invoice PDFs older than the configured number
// of days. A retention of zero disables the sweeper entirely.
type RetentionService struct {
	dir  string
	days int
}

func NewRetentionService(dir string, days int) *RetentionService {
	return &RetentionService{dir: dir, days: days}
}

// StartScheduler runs a sweep every night at 02:30.
func (s *RetentionService) StartScheduler() {
	if s.days <= 0 {
		log.Info().Msg("invoice retention disabled")
		return
	}

	c := cron.New()
	if _, err := c.AddFunc("30 2 * * *", s.Sweep); err != nil {
		log.Error().Err(err).Msg("failed to schedule retention sweep")
		return
	}
	c.Start()
	log.Info().Int("days", s.days).Str("dir", s.dir).Msg("retention scheduler started")
}

// Sweep removes every PDF in the invoice directory whose modification
// time is past the retention window.
func (s *RetentionService) Sweep() {
	cutoff := time.Now().AddDate(0, 0, -s.days)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("dir", s.dir).Msg("retention sweep failed")
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not remove expired invoice")
			continue
		}
		removed++
	}
	if removed > 0 {
		log.Info().Int("removed", removed).Msg("retention sweep completed")
	}
}
