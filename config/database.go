package config

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the summary database when DB_URL is configured. The
// database is a best-effort collaborator: when it is unconfigured or
// unreachable the handle stays nil and every persister call becomes a
// logged no-op. Document generation never depends on it.
func ConnectDB() {
	dsn := DBURL()
	if dsn == "" {
		log.Info().Msg("DB_URL not set - invoice summaries will not be persisted")
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect database - continuing without persistence")
		return
	}

	DB = db
}
