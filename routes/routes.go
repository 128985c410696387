package routes

import (
	"net/http"

	"invoicegen-backend/config"
	"invoicegen-backend/controllers"
	"invoicegen-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.Use(config.PerformanceLogger())

	invoiceController := controllers.NewInvoiceController(services.NewNotifyService())
	r.GET("/", invoiceController.ShowForm)
	r.POST("/", invoiceController.CreateInvoice)
	r.POST("/legacy", invoiceController.CreateLegacyInvoice)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportSummary)
	}

	return r
}
