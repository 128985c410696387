// pdf/boutique.go
package pdf

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"invoicegen-backend/models"
)

// Boutique is the styled storefront invoice: blue header band with a
// green accent strip, bill-to and payment-terms cards, an alternating
// row-shaded item table, a totals card and a rotated watermark. AssetDir
// holds the optional logo and watermark images.
type Boutique struct {
	AssetDir string
}

const (
	boutiqueHeaderHeight = 90.0
	tableHeaderHeight    = 28.0
	tableLineHeight      = 18.0
)

func (b Boutique) Render(c *Canvas, inv models.Invoice) {
	const (
		w = PageWidth
		h = PageHeight
		m = Margin
	)

	c.SetFillHex("#FFFFFF")
	c.FillRect(0, 0, w, h)
	c.SetStrokeHex("#E8F4F8")
	c.SetLineWidth(2)
	c.StrokeRoundRect(m/2, m/2, w-m, h-m, 8)

	// Header band with accent strip along its bottom edge.
	c.SetFillHex("#2563EB")
	c.FillRect(m, h-m-boutiqueHeaderHeight, w-2*m, boutiqueHeaderHeight)
	c.SetFillHex("#10B981")
	c.FillRect(m, h-m-boutiqueHeaderHeight, w-2*m, 8)

	logoDrawn := false
	if logo := findLogo(b.AssetDir); logo != "" {
		logoDrawn = c.Image(logo, m+15, h-m-boutiqueHeaderHeight+15, 120, 60)
	}
	nameX := m + 15
	if logoDrawn {
		nameX = m + 140
	}
	c.SetTextHex("#FFFFFF")
	c.SetFont("B", 22)
	c.DrawString(nameX, h-m-35, inv.Meta.CompanyName)
	c.SetFont("", 11)
	c.DrawString(nameX, h-m-55, "Premium Online Shopping Experience")

	c.SetTextHex("#1F2937")
	c.SetFont("B", 18)
	c.DrawRightString(w-m-10, h-m-30, "INVOICE")
	c.SetTextHex("#6B7280")
	c.SetFont("", 10)
	c.DrawRightString(w-m-10, h-m-50, "Date: "+inv.Meta.Date)
	c.DrawRightString(w-m-10, h-m-68, "Invoice #: "+inv.Meta.InvoiceNumber)

	c.SetTextHex("#10B981")
	c.SetFont("B", 10)
	c.DrawString(m+10, h-m-boutiqueHeaderHeight-25, "Order Confirmed - Thank you for your purchase!")

	// Bill-to card on the left, payment terms card on the right.
	billBoxY := h - m - boutiqueHeaderHeight - 50
	c.SetFillHex("#F8FAFC")
	c.FillRoundRect(m, billBoxY-70, w-2*m-220, 70, 5)
	c.SetStrokeHex("#E2E8F0")
	c.SetLineWidth(1)
	c.StrokeRoundRect(m, billBoxY-70, w-2*m-220, 70, 5)
	c.SetTextHex("#1F2937")
	c.SetFont("B", 11)
	c.DrawString(m+12, billBoxY-20, "Bill To:")
	c.SetTextHex("#374151")
	c.SetFont("", 10)
	c.DrawString(m+12, billBoxY-38, inv.Meta.CustomerName)
	c.DrawString(m+12, billBoxY-52, inv.Meta.CustomerPhone)

	payX := w - m - 210
	c.SetFillHex("#F1F5F9")
	c.FillRoundRect(payX, billBoxY-70, 210, 70, 5)
	c.SetStrokeHex("#CBD5E1")
	c.StrokeRoundRect(payX, billBoxY-70, 210, 70, 5)
	c.SetTextHex("#475569")
	c.SetFont("B", 10)
	c.DrawString(payX+15, billBoxY-20, "Payment Terms:")
	c.SetFont("", 9)
	c.DrawString(payX+15, billBoxY-38, "Due upon receipt")
	c.DrawString(payX+15, billBoxY-52, "Payment Method: Online")

	tableTop := billBoxY - 140
	itemsBottom := b.renderTable(c, inv.Items, tableTop)
	totalsY := b.renderTotals(c, inv.Totals, itemsBottom)

	// Signature line.
	sigX, sigY := m+20, totalsY-50
	c.SetStrokeHex("#6B7280")
	c.SetLineWidth(1)
	c.Line(sigX, sigY, sigX+200, sigY)
	c.SetTextHex("#6B7280")
	c.SetFont("", 9)
	c.DrawString(sigX, sigY-15, "Authorized Signature")

	footerY := sigY - 60

	c.Watermark(filepath.Join(b.AssetDir, "watermark.png"), 200, 200, 45, 0.1)

	c.SetTextHex("#10B981")
	c.SetFont("B", 14)
	c.DrawCentredString(w/2, footerY+25, "Thank you for shopping with us!")

	c.SetTextHex("#6B7280")
	c.SetFont("", 9)
	for i, line := range addressLines(inv.Meta.CompanyAddress) {
		c.DrawCentredString(w/2, footerY-float64(i)*12, line)
	}

	c.SetTextHex("#9CA3AF")
	c.SetFont("", 8)
	c.DrawCentredString(w/2, footerY-50, "For any queries, please contact our customer support team.")
}

// renderTable draws the header bar and every item row, returning the y
// coordinate just below the last row. Long descriptions wrap onto
// continuation rows that repeat the shading cadence but leave the
// numeric columns blank.
func (b Boutique) renderTable(c *Canvas, items []models.LineItem, tableTop float64) float64 {
	const (
		w = PageWidth
		m = Margin
	)
	colX := [5]float64{m + 10, m + 280, m + 360, w - m - 70, w - m}

	c.SetFillHex("#E0F2FE")
	c.FillRoundRect(m, tableTop, w-2*m, tableHeaderHeight, 3)
	c.SetTextHex("#0F172A")
	c.SetFont("B", 10)
	c.DrawString(colX[0], tableTop+8, "Item / Description")
	c.DrawRightString(colX[1]+30, tableTop+8, "Qty")
	c.DrawRightString(colX[2]+30, tableTop+8, "Unit Price")
	c.DrawRightString(colX[3]+30, tableTop+8, "Line Total")

	currentY := tableTop - tableHeaderHeight - 4
	for idx, item := range items {
		for i, line := range wrapText(item.Description, descWrapWidth) {
			c.SetFillHex(rowShade(idx, i))
			c.FillRect(m, currentY-6, w-2*m, tableLineHeight+4)

			c.SetTextHex("#1F2937")
			c.SetFont("", 10)
			c.DrawString(colX[0], currentY+2, line)
			if i == 0 {
				c.DrawRightString(colX[1]+30, currentY+2, strconv.Itoa(item.Quantity))
				c.DrawRightString(colX[2]+30, currentY+2, "$"+formatMoney(item.UnitPrice))
				c.DrawRightString(colX[3]+30, currentY+2, "$"+formatMoney(item.LineTotal()))
			}
			currentY -= tableLineHeight
		}
	}
	itemsBottom := currentY + tableLineHeight

	c.SetStrokeHex("#E2E8F0")
	c.SetLineWidth(0.8)
	c.StrokeRoundRect(m, itemsBottom-6, w-2*m, tableTop+tableHeaderHeight-(itemsBottom-6), 3)
	return itemsBottom
}

// rowShade alternates on item index plus wrap index, so the row after a
// multi-line item carries the cadence forward instead of restarting it.
func rowShade(itemIdx, wrapIdx int) string {
	if (itemIdx+wrapIdx)%2 == 0 {
		return "#FAFAFA"
	}
	return "#FFFFFF"
}

// renderTotals draws the totals card below the table and returns its y
// origin for the blocks that follow.
func (b Boutique) renderTotals(c *Canvas, t models.InvoiceTotals, itemsBottom float64) float64 {
	const (
		w = PageWidth
		m = Margin
	)
	totalsW, totalsH := 240.0, 80.0
	totalsX := w - m - totalsW
	totalsY := itemsBottom - totalsH - 35

	c.SetFillHex("#F8FAFC")
	c.FillRoundRect(totalsX, totalsY, totalsW, totalsH, 5)
	c.SetStrokeHex("#CBD5E1")
	c.SetLineWidth(1)
	c.StrokeRoundRect(totalsX, totalsY, totalsW, totalsH, 5)

	valueX := totalsX + totalsW - 12
	c.SetTextHex("#374151")
	c.SetFont("", 10)
	c.DrawString(totalsX+12, totalsY+56, "Subtotal:")
	c.DrawRightString(valueX, totalsY+56, "$"+formatMoney(t.Subtotal))
	c.DrawString(totalsX+12, totalsY+36, fmt.Sprintf("Tax (%.0f%%):", t.TaxRatePercent))
	c.DrawRightString(valueX, totalsY+36, "$"+formatMoney(t.TaxAmount))

	c.SetTextHex("#10B981")
	c.SetFont("B", 12)
	c.DrawString(totalsX+12, totalsY+12, "Total:")
	c.DrawRightString(valueX, totalsY+12, "$"+formatMoney(t.GrandTotal))

	c.SetTextHex("#374151")
	c.SetFont("", 10)
	c.DrawString(totalsX+12, totalsY-8, "Amount Paid:")
	c.DrawRightString(valueX, totalsY-8, "$"+formatMoney(t.AmountPaid))
	c.DrawString(totalsX+12, totalsY-28, "Change:")
	c.DrawRightString(valueX, totalsY-28, "$"+formatMoney(t.Change))

	return totalsY
}

// addressLines splits the free-form address on newlines and keeps at
// most the first three non-empty lines.
func addressLines(addr string) []string {
	var out []string
	for _, line := range strings.Split(addr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == 3 {
			break
		}
	}
	return out
}
