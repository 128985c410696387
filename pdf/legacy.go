// pdf/legacy.go
package pdf

import (
	"fmt"
	"strconv"

	"invoicegen-backend/models"
)

// Legacy is the plain tan invoice kept for the original single-item
// clients: brown header band, one table row with a client-supplied
// amount and no currency symbols in the cells.
type Legacy struct {
	AssetDir string
}

func (l Legacy) Render(c *Canvas, inv models.Invoice) {
	const (
		w = PageWidth
		h = PageHeight
		m = Margin
	)

	c.SetFillHex("#D2B48C")
	c.FillRect(0, 0, w, h)

	c.SetFillHex("#6B3E26")
	c.FillRect(m, h-m-90, w-2*m, 90)

	logoDrawn := false
	if logo := findLogo(l.AssetDir); logo != "" {
		logoDrawn = c.Image(logo, m+10, h-m-65, 100, 60)
	}
	nameX := m + 10
	if logoDrawn {
		nameX = m + 120
	}
	c.SetTextHex("#FFFFFF")
	c.SetFont("B", 18)
	c.DrawString(nameX, h-m-30, inv.Meta.CompanyName)
	c.SetFont("", 8)
	for i, line := range addressLines(inv.Meta.CompanyAddress) {
		c.DrawString(nameX, h-m-48-float64(i)*10, line)
	}

	c.SetFont("B", 14)
	c.DrawRightString(w-m-10, h-m-30, "INVOICE")
	c.SetFont("", 9)
	c.DrawRightString(w-m-10, h-m-48, "Date: "+inv.Meta.Date)
	c.DrawRightString(w-m-10, h-m-64, "Invoice #: "+inv.Meta.InvoiceNumber)

	tableTop := h - m - 90 - 30
	colItem := m + 10
	colQty := w - m - 200
	colUnit := w - m - 120
	colTotal := w - m

	c.SetTextHex("#000000")
	c.SetFont("B", 10)
	c.DrawString(colItem, tableTop, "Item/Description")
	c.DrawRightString(colQty+20, tableTop, "Qty")
	c.DrawRightString(colUnit+40, tableTop, "Unit Price")
	c.DrawRightString(colTotal, tableTop, "Total")
	c.SetStrokeHex("#000000")
	c.SetLineWidth(0.8)
	c.Line(m, tableTop-4, w-m, tableTop-4)

	item := models.LineItem{Description: models.DefaultLegacyItem, Quantity: 1}
	if len(inv.Items) > 0 {
		item = inv.Items[0]
	}
	desc := item.Description
	if len(desc) > 60 {
		desc = desc[:60]
	}
	rowY := tableTop - 20
	c.SetFont("", 10)
	c.DrawString(colItem, rowY, desc)
	c.DrawRightString(colQty+20, rowY, strconv.Itoa(item.Quantity))
	c.DrawRightString(colUnit+40, rowY, formatMoney(item.UnitPrice))
	c.DrawRightString(colTotal, rowY, formatMoney(item.LineTotal()))

	totalsX := w - m - 260
	totalsY := rowY - 10
	valueX := totalsX + 240
	c.SetFont("", 10)
	c.DrawString(totalsX+10, totalsY+40, "Subtotal:")
	c.DrawRightString(valueX, totalsY+40, formatMoney(inv.Totals.Subtotal))
	c.DrawString(totalsX+10, totalsY+20, fmt.Sprintf("Service Tax (%.0f%%):", inv.Totals.TaxRatePercent))
	c.DrawRightString(valueX, totalsY+20, formatMoney(inv.Totals.TaxAmount))
	c.SetFont("B", 12)
	c.DrawString(totalsX+10, totalsY, "Total:")
	c.DrawRightString(valueX, totalsY, formatMoney(inv.Totals.GrandTotal))

	footerY := m + 40.0
	c.SetFont("B", 12)
	c.DrawCentredString(w/2, footerY+20, "Thank you")
	c.SetFont("", 9)
	for i, line := range addressLines(inv.Meta.CompanyAddress) {
		c.DrawCentredString(w/2, footerY-float64(i)*12, line)
	}
}
