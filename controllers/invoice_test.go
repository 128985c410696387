package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"invoicegen-backend/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("INVOICE_DIR", filepath.Join(t.TempDir(), "INVOICE"))
	t.Setenv("ASSET_DIR", t.TempDir())

	ic := NewInvoiceController(services.NewNotifyService())
	r := gin.New()
	r.GET("/", ic.ShowForm)
	r.POST("/", ic.CreateInvoice)
	r.POST("/legacy", ic.CreateLegacyInvoice)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestShowFormFallback(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Contains(t, w.Body.String(), `name="Product1"`)
	require.Contains(t, w.Body.String(), `name="STax"`)
}

func TestCreateInvoiceWritesArtifact(t *testing.T) {
	r := newTestRouter(t)
	invoiceDir := os.Getenv("INVOICE_DIR")

	w := postForm(r, "/", url.Values{
		"CompanyName":   {"Corner Shop"},
		"CustomerName":  {"Jane Doe"},
		"CustomerPhone": {"555-0101"},
		"Product1":      {"Pens"},
		"Quantity1":     {"10"},
		"Product2":      {"Candies"},
		"Quantity2":     {"5"},
		"STax":          {"10"},
		"AmountPaid":    {"2.00"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Invoice generated successfully")

	entries, err := os.ReadDir(invoiceDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Regexp(t, `^Invoice \(\d{8}-\d{6}\)\.pdf$`, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(invoiceDir, entries[0].Name()))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "%PDF"))
}

// Summary persistence is best-effort: with no database configured the
// generation path must still succeed end to end.
func TestCreateInvoiceWithoutDatabase(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(r, "/", url.Values{
		"Product1":  {"Erasers"},
		"Quantity1": {"2"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Invoice generated successfully")
}

func TestCreateInvoiceNoProducts(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(r, "/", url.Values{
		"CompanyName": {"Corner Shop"},
		"STax":        {"10"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	entries, err := os.ReadDir(os.Getenv("INVOICE_DIR"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestCreateLegacyInvoice(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(r, "/legacy", url.Values{
		"CompanyName": {"Old Client Co"},
		"Product":     {"Consulting retainer"},
		"Amount":      {"52.50"},
		"STax":        {"5"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Invoice generated successfully")

	entries, err := os.ReadDir(os.Getenv("INVOICE_DIR"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
