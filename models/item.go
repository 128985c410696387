package models

// LineItem is one product/quantity pair contributing to the invoice body.
// Items are built by the normalizer and never mutated afterwards.
type LineItem struct {
	Description string
	Quantity    int
	UnitPrice   float64
}

// LineTotal returns quantity x unit price, unrounded. Rounding to currency
// precision is the calculator's job so the policy lives in one place.
func (li LineItem) LineTotal() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// InvoiceTotals carries every figure the totals box renders.
type InvoiceTotals struct {
	Subtotal       float64
	TaxRatePercent float64
	TaxAmount      float64
	GrandTotal     float64
	AmountPaid     float64
	Change         float64
}

// InvoiceMeta is the header/footer metadata supplied wholesale by the
// intake layer. It is never validated, only truncated at render time.
type InvoiceMeta struct {
	CompanyName    string
	CompanyAddress string
	CustomerName   string
	CustomerPhone  string
	InvoiceNumber  string
	Date           string
}

// Invoice bundles everything a layout needs to draw one document.
type Invoice struct {
	Meta   InvoiceMeta
	Items  []LineItem
	Totals InvoiceTotals
}

// Display fallbacks. They are applied once at intake time so the layouts
// stay free of inline defaulting branches.
const (
	DefaultCompanyName   = "Your E-commerce Store"
	DefaultCustomerName  = "Customer Name"
	DefaultCustomerPhone = "Customer Phone"

	DefaultLegacyCompanyName = "Company Name"
	DefaultLegacyItem        = "Premium Product"
)

// ApplyDefaults fills blank display fields with the boutique placeholders.
func (m *InvoiceMeta) ApplyDefaults() {
	if m.CompanyName == "" {
		m.CompanyName = DefaultCompanyName
	}
	if m.CustomerName == "" {
		m.CustomerName = DefaultCustomerName
	}
	if m.CustomerPhone == "" {
		m.CustomerPhone = DefaultCustomerPhone
	}
}

// ApplyLegacyDefaults fills blank display fields with the plain-layout
// placeholders. The legacy document has no bill-to box, so only the company
// name needs a fallback.
func (m *InvoiceMeta) ApplyLegacyDefaults() {
	if m.CompanyName == "" {
		m.CompanyName = DefaultLegacyCompanyName
	}
}
