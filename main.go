package main

import (
	"fmt"
	"time"

	"invoicegen-backend/config"
	"invoicegen-backend/models"
	"invoicegen-backend/routes"
	"invoicegen-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}
	config.SetupLogger()
	config.ConnectDB()

	if config.DB != nil {
		if err := config.DB.AutoMigrate(&models.InvoiceRecord{}); err != nil {
			log.Error().Err(err).Msg("failed to migrate invoice summaries")
		}
	}
}

func main() {
	port := config.Port()

	retention := services.NewRetentionService(config.InvoiceDir(), config.RetentionDays())
	retention.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)

	if config.OpenBrowser() {
		go func() {
			// Give the listener a moment before pointing a browser at it.
			time.Sleep(500 * time.Millisecond)
			if err := browser.OpenURL("http://localhost:" + port); err != nil {
				log.Warn().Err(err).Msg("could not open browser")
			}
		}()
	}

	log.Info().Str("port", port).Msg("invoice service listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
