// services/pricing.go
package services

import (
	"math"
	"strconv"
	"strings"

	"invoicegen-backend/models"
	"invoicegen-backend/utils"
)

// Catalog maps product names to their server-trusted unit prices. Lookups
// for unknown products return 0.0: an unrecognised product is priced as
// free rather than rejecting the whole submission.
type Catalog map[string]float64

// DefaultCatalog returns the fixed store price list.
func DefaultCatalog() Catalog {
	return Catalog{
		"Pens":        0.10,
		"Counterbook": 1.05,
		"Erasers":     0.24,
		"Shoe Brush":  0.76,
		"Candies":     0.14,
	}
}

// UnitPrice resolves a product name to its catalog price, 0.0 if unknown.
func (c Catalog) UnitPrice(product string) float64 {
	return c[product]
}

// ItemInput is one raw (product, quantity) pair as submitted on the form.
type ItemInput struct {
	Product  string
	Quantity string
}

// NormalizeItems validates and coerces raw form pairs into line items,
// preserving submission order. A pair is skipped when the product or the
// quantity string is empty, or when the quantity does not parse to a
// positive integer (fractional quantities are truncated first). Pure
// function, no side effects.
func NormalizeItems(catalog Catalog, pairs []ItemInput) []models.LineItem {
	items := make([]models.LineItem, 0, len(pairs))
	for _, p := range pairs {
		product := strings.TrimSpace(p.Product)
		rawQty := strings.TrimSpace(p.Quantity)
		if product == "" || rawQty == "" {
			continue
		}
		qty := utils.ParseQuantity(rawQty)
		if qty <= 0 {
			continue
		}
		items = append(items, models.LineItem{
			Description: product,
			Quantity:    qty,
			UnitPrice:   catalog.UnitPrice(product),
		})
	}
	return items
}

// Round2 rounds to two decimals, half away from zero. Applied per line
// total, to the tax amount, and to the computed grand total so every
// rendered figure is a valid currency value.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals derives the invoice totals from the normalized items and
// the free-form tax-rate and amount-paid strings (parse failures count as
// zero). Subtotal is the sum of per-line totals, each rounded before
// summing, so it is independent of item ordering.
func ComputeTotals(items []models.LineItem, taxRate, amountPaid string) models.InvoiceTotals {
	rate := utils.ParseAmount(taxRate)
	paid := utils.ParseAmount(amountPaid)

	var subtotal float64
	for _, it := range items {
		subtotal += Round2(it.LineTotal())
	}
	subtotal = Round2(subtotal)

	tax := Round2(subtotal * rate / 100)
	grand := Round2(subtotal + tax)

	return models.InvoiceTotals{
		Subtotal:       subtotal,
		TaxRatePercent: rate,
		TaxAmount:      tax,
		GrandTotal:     grand,
		AmountPaid:     paid,
		Change:         paid - grand,
	}
}

// ComputeTotalsWithOverride is the legacy single-product entry point: when
// the supplied final amount is a valid number it replaces the computed
// grand total verbatim. Change is derived from the effective grand total
// and may go negative; it is never clamped.
func ComputeTotalsWithOverride(items []models.LineItem, taxRate, amountPaid, finalAmount string) models.InvoiceTotals {
	t := ComputeTotals(items, taxRate, amountPaid)
	if v, ok := parseStrict(finalAmount); ok {
		t.GrandTotal = v
		t.Change = t.AmountPaid - v
	}
	return t
}

// ProductSummary renders the human-readable comma-joined product list
// stored on the summary row.
func ProductSummary(items []models.LineItem) string {
	if len(items) == 0 {
		return "No products"
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Description)
	}
	return strings.Join(names, ", ")
}

func parseStrict(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
