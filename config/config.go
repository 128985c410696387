package config

import (
	"os"
	"strconv"
	"strings"
)

// Env accessors with the application defaults. Anything beyond port and
// database URL is optional branding/behaviour tuning.

func Port() string {
	return envOrDefault("PORT", "8080")
}

func DBURL() string {
	return strings.TrimSpace(os.Getenv("DB_URL"))
}

// InvoiceDir is where rendered documents are written, relative to the
// application root unless an absolute path is configured.
func InvoiceDir() string {
	return envOrDefault("INVOICE_DIR", "INVOICE")
}

// AssetDir holds the optional branding assets (logo.png/logo.jpg and
// watermark.png). Their absence is never an error.
func AssetDir() string {
	return envOrDefault("ASSET_DIR", ".")
}

// RetentionDays controls the daily sweep of old invoice files. Zero
// disables the sweep.
func RetentionDays() int {
	return envInt("INVOICE_RETENTION_DAYS", 0)
}

// OpenBrowser controls whether startup opens the local form page in the
// default browser.
func OpenBrowser() bool {
	return envBool("OPEN_BROWSER", false)
}

func envOrDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "t", "true", "yes", "on":
		return true
	case "0", "f", "false", "no", "off":
		return false
	}
	return fallback
}
