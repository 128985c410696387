package pdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"invoicegen-backend/models"
)

func TestWrapTextShortLine(t *testing.T) {
	lines := wrapText("Pens", descWrapWidth)
	require.Equal(t, []string{"Pens"}, lines)
}

func TestWrapTextLongDescription(t *testing.T) {
	desc := "Premium ballpoint pens with smooth ink flow and ergonomic grip"
	lines := wrapText(desc, descWrapWidth)
	require.GreaterOrEqual(t, len(lines), 2)
	for _, line := range lines {
		require.LessOrEqual(t, len(line), descWrapWidth)
	}
	require.Equal(t, strings.Fields(desc), strings.Fields(strings.Join(lines, " ")))
}

func TestWrapTextBreaksOversizedWord(t *testing.T) {
	word := strings.Repeat("x", 100)
	lines := wrapText(word, descWrapWidth)
	require.Equal(t, []string{word[:45], word[45:90], word[90:]}, lines)
}

func TestWrapTextBlank(t *testing.T) {
	require.Empty(t, wrapText("", descWrapWidth))
	require.Empty(t, wrapText("   ", descWrapWidth))
}

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		1.7:        "1.70",
		999.995:    "1,000.00",
		1234567.5:  "1,234,567.50",
		-52.5:      "-52.50",
		-1234.56:   "-1,234.56",
		1000000000: "1,000,000,000.00",
	}
	for in, want := range cases {
		require.Equal(t, want, formatMoney(in), "formatMoney(%v)", in)
	}
}

func sampleInvoice() models.Invoice {
	return models.Invoice{
		Meta: models.InvoiceMeta{
			CompanyName:    "Your E-commerce Store",
			CompanyAddress: "12 Market Street\nSpringfield",
			CustomerName:   "Jane Doe",
			CustomerPhone:  "555-0101",
			InvoiceNumber:  "20260831-143005",
			Date:           "31/08/2026",
		},
		Items: []models.LineItem{
			{Description: "Pens", Quantity: 10, UnitPrice: 0.10},
			{Description: "Candies", Quantity: 5, UnitPrice: 0.14},
		},
		Totals: models.InvoiceTotals{
			Subtotal:       1.70,
			TaxRatePercent: 10,
			TaxAmount:      0.17,
			GrandTotal:     1.87,
			AmountPaid:     2.00,
			Change:         0.13,
		},
	}
}

func TestBoutiqueRenderProducesPDF(t *testing.T) {
	c := Render(Boutique{AssetDir: t.TempDir()}, sampleInvoice())

	var buf bytes.Buffer
	require.NoError(t, c.Output(&buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	require.Greater(t, buf.Len(), 1000)
}

func TestBoutiqueRenderEmptyItems(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = nil
	inv.Totals = models.InvoiceTotals{TaxRatePercent: 10}

	c := Render(Boutique{AssetDir: t.TempDir()}, inv)

	var buf bytes.Buffer
	require.NoError(t, c.Output(&buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestBoutiqueRenderWrappedDescriptions(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = []models.LineItem{
		{Description: strings.Repeat("very long product description ", 5), Quantity: 2, UnitPrice: 3.50},
		{Description: "Erasers", Quantity: 1, UnitPrice: 0.24},
	}

	c := Render(Boutique{AssetDir: t.TempDir()}, inv)

	var buf bytes.Buffer
	require.NoError(t, c.Output(&buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestLegacyRenderProducesPDF(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = []models.LineItem{{Description: "Premium Product", Quantity: 1, UnitPrice: 52.50}}
	inv.Totals = models.InvoiceTotals{Subtotal: 52.50, TaxRatePercent: 5, TaxAmount: 2.63, GrandTotal: 55.13}

	c := Render(Legacy{AssetDir: t.TempDir()}, inv)

	var buf bytes.Buffer
	require.NoError(t, c.Output(&buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestLegacyRenderNoItems(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = nil

	c := Render(Legacy{AssetDir: t.TempDir()}, inv)

	var buf bytes.Buffer
	require.NoError(t, c.Output(&buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRowShadeCarriesParityAcrossWrappedItems(t *testing.T) {
	// Item 0 wraps to two lines; item 1 follows.
	require.Equal(t, "#FAFAFA", rowShade(0, 0))
	require.Equal(t, "#FFFFFF", rowShade(0, 1))
	// The next item's first row continues the cadence rather than
	// restarting at the shaded color.
	require.Equal(t, "#FFFFFF", rowShade(1, 0))
	require.Equal(t, "#FAFAFA", rowShade(1, 1))
}

func TestAddressLinesCapsAtThree(t *testing.T) {
	addr := "one\ntwo\n\nthree\nfour"
	require.Equal(t, []string{"one", "two", "three"}, addressLines(addr))
}
