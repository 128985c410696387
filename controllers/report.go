// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"invoicegen-backend/config"
	"invoicegen-backend/models"
	"invoicegen-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController aggregates over the stored invoice summaries.
type ReportController struct{}

// ReportSummary represents the totals across all recorded invoices.
type ReportSummary struct {
	TotalInvoices       int     `json:"totalInvoices"`
	GrossRevenue        float64 `json:"grossRevenue"`
	CollectedAmount     float64 `json:"collectedAmount"`
	AvgInvoiceValue     float64 `json:"avgInvoiceValue"`
	CurrentMonthRevenue float64 `json:"currentMonthRevenue"`
	MonthGrowth         float64 `json:"monthGrowth"`
}

// GetReportSummary returns aggregate figures over the invoice summary
// rows. Summaries are only available when persistence is configured.
func (rc *ReportController) GetReportSummary(c *gin.Context) {
	if config.DB == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Invoice persistence is not configured")
		return
	}

	var summary ReportSummary

	var totalInvoices int64
	if err := config.DB.Model(&models.InvoiceRecord{}).Count(&totalInvoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count invoices")
		return
	}
	summary.TotalInvoices = int(totalInvoices)

	if err := config.DB.Model(&models.InvoiceRecord{}).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&summary.GrossRevenue).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sum revenue")
		return
	}

	if err := config.DB.Model(&models.InvoiceRecord{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&summary.CollectedAmount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sum collected amounts")
		return
	}

	if summary.TotalInvoices > 0 {
		summary.AvgInvoiceValue = summary.GrossRevenue / float64(summary.TotalInvoices)
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	currentMonth, err := rc.getRevenue(firstOfMonth, firstOfMonth.AddDate(0, 1, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}
	lastMonth, err := rc.getRevenue(firstOfMonth.AddDate(0, -1, 0), firstOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month revenue")
		return
	}
	summary.CurrentMonthRevenue = currentMonth
	summary.MonthGrowth = rc.calculateGrowthPercentage(currentMonth, lastMonth)

	c.JSON(http.StatusOK, summary)
}

func (rc *ReportController) getRevenue(start, end time.Time) (float64, error) {
	var total float64
	err := config.DB.Model(&models.InvoiceRecord{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (rc *ReportController) calculateGrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}
