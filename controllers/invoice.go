// controllers/invoice.go
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"invoicegen-backend/config"
	"invoicegen-backend/models"
	"invoicegen-backend/pdf"
	"invoicegen-backend/services"
	"invoicegen-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// maxItemSlots is the number of Product/Quantity field pairs on the form.
const maxItemSlots = 5

// InvoiceController owns the generation pipeline: form intake, item
// normalization, pricing, rendering, the artifact write, and the
// best-effort summary row and customer notification afterwards.
type InvoiceController struct {
	catalog  services.Catalog
	writer   pdf.Writer
	boutique pdf.Boutique
	legacy   pdf.Legacy
	notify   *services.NotifyService
	formPath string
}

func NewInvoiceController(notify *services.NotifyService) *InvoiceController {
	assetDir := config.AssetDir()
	return &InvoiceController{
		catalog:  services.DefaultCatalog(),
		writer:   pdf.Writer{Dir: config.InvoiceDir()},
		boutique: pdf.Boutique{AssetDir: assetDir},
		legacy:   pdf.Legacy{AssetDir: assetDir},
		notify:   notify,
		formPath: filepath.Join(assetDir, "templates", "index.html"),
	}
}

// ShowForm serves the order form. When the template file is missing the
// built-in fallback form keeps the service usable.
func (ic *InvoiceController) ShowForm(c *gin.Context) {
	if page, err := os.ReadFile(ic.formPath); err == nil {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fallbackForm))
}

// CreateInvoice handles the boutique path: every submitted product is
// priced from the catalog and totals are always recomputed server-side.
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	now := time.Now()
	meta := ic.readMeta(c, now)
	meta.ApplyDefaults()

	var inputs []services.ItemInput
	for i := 1; i <= maxItemSlots; i++ {
		inputs = append(inputs, services.ItemInput{
			Product:  c.PostForm(fmt.Sprintf("Product%d", i)),
			Quantity: c.PostForm(fmt.Sprintf("Quantity%d", i)),
		})
	}
	items := services.NormalizeItems(ic.catalog, inputs)
	totals := services.ComputeTotals(items, c.PostForm("STax"), c.PostForm("AmountPaid"))

	inv := models.Invoice{Meta: meta, Items: items, Totals: totals}
	name, _, err := ic.writer.Write(pdf.Render(ic.boutique, inv), meta.InvoiceNumber)
	if err != nil {
		log.Error().Err(err).Msg("invoice generation failed")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate invoice")
		return
	}

	ic.finish(c, inv, name)
}

// CreateLegacyInvoice handles the original single-item path. The amount
// comes from the client as-is, and FinalAmount, when parseable, replaces
// the computed grand total.
func (ic *InvoiceController) CreateLegacyInvoice(c *gin.Context) {
	now := time.Now()
	meta := ic.readMeta(c, now)
	meta.ApplyLegacyDefaults()

	desc := strings.TrimSpace(c.PostForm("Product"))
	if desc == "" {
		desc = models.DefaultLegacyItem
	}
	items := []models.LineItem{{
		Description: desc,
		Quantity:    1,
		UnitPrice:   utils.ParseAmount(c.PostForm("Amount")),
	}}
	totals := services.ComputeTotalsWithOverride(items,
		c.PostForm("STax"), c.PostForm("AmountPaid"), c.PostForm("FinalAmount"))

	inv := models.Invoice{Meta: meta, Items: items, Totals: totals}
	name, _, err := ic.writer.Write(pdf.Render(ic.legacy, inv), meta.InvoiceNumber)
	if err != nil {
		log.Error().Err(err).Msg("legacy invoice generation failed")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate invoice")
		return
	}

	ic.finish(c, inv, name)
}

func (ic *InvoiceController) readMeta(c *gin.Context, now time.Time) models.InvoiceMeta {
	return models.InvoiceMeta{
		CompanyName:    strings.TrimSpace(c.PostForm("CompanyName")),
		CompanyAddress: c.PostForm("CompanyAddress"),
		CustomerName:   strings.TrimSpace(c.PostForm("CustomerName")),
		CustomerPhone:  strings.TrimSpace(c.PostForm("CustomerPhone")),
		InvoiceNumber:  utils.InvoiceTimestamp(now),
		Date:           utils.DisplayDate(now),
	}
}

// finish responds with the success page and kicks off the after-effects.
// The summary row and the notification run in the background and may
// fail without touching the response; the PDF on disk already exists.
func (ic *InvoiceController) finish(c *gin.Context, inv models.Invoice, name string) {
	email := strings.TrimSpace(c.PostForm("Email"))
	go persistSummary(inv, email)
	go ic.notify.InvoiceReady(inv.Meta.CustomerName, inv.Meta.CustomerPhone,
		inv.Meta.InvoiceNumber, inv.Totals.GrandTotal)

	log.Info().
		Str("invoice", inv.Meta.InvoiceNumber).
		Int("items", len(inv.Items)).
		Float64("total", inv.Totals.GrandTotal).
		Msg("invoice generated")

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(successPage(name)))
}

func persistSummary(inv models.Invoice, email string) {
	if config.DB == nil {
		return
	}
	record := models.InvoiceRecord{
		CompanyName:    inv.Meta.CompanyName,
		CompanyAddress: inv.Meta.CompanyAddress,
		Email:          email,
		Amount:         inv.Totals.Subtotal,
		FinalAmount:    inv.Totals.GrandTotal,
		ProductSummary: services.ProductSummary(inv.Items),
		AmountPaid:     inv.Totals.AmountPaid,
		Change:         inv.Totals.Change,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		log.Warn().Err(err).Str("invoice", inv.Meta.InvoiceNumber).Msg("failed to persist invoice summary")
	}
}

func successPage(filename string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Invoice Generated</title></head>
<body style="font-family: Arial, sans-serif; text-align: center; padding-top: 60px;">
	<h1 style="color: #10B981;">Invoice generated successfully</h1>
	<p>Your invoice has been saved as <strong>%s</strong>.</p>
	<p><a href="/">Create another invoice</a></p>
</body>
</html>`, filename)
}

const fallbackForm = `<!DOCTYPE html>
<html>
<head><title>Invoice Generator</title></head>
<body style="font-family: Arial, sans-serif; max-width: 640px; margin: 40px auto;">
	<h1>Generate Invoice</h1>
	<form method="POST" action="/">
		<p><input name="CompanyName" placeholder="Company Name"></p>
		<p><textarea name="CompanyAddress" placeholder="Company Address"></textarea></p>
		<p><input name="CustomerName" placeholder="Customer Name"></p>
		<p><input name="CustomerPhone" placeholder="Customer Phone"></p>
		<p><input name="Email" placeholder="Email"></p>
		<p><input name="Product1" placeholder="Product 1"> <input name="Quantity1" placeholder="Qty"></p>
		<p><input name="Product2" placeholder="Product 2"> <input name="Quantity2" placeholder="Qty"></p>
		<p><input name="Product3" placeholder="Product 3"> <input name="Quantity3" placeholder="Qty"></p>
		<p><input name="Product4" placeholder="Product 4"> <input name="Quantity4" placeholder="Qty"></p>
		<p><input name="Product5" placeholder="Product 5"> <input name="Quantity5" placeholder="Qty"></p>
		<p><input name="STax" placeholder="Tax %"> <input name="AmountPaid" placeholder="Amount Paid"></p>
		<p><button type="submit">Generate Invoice</button></p>
	</form>
</body>
</html>`
