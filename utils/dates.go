// utils/dates.go
package utils

import "time"

// InvoiceTimestamp formats t as the filename-safe, seconds-granularity
// invoice number. Two calls within the same second collide by design.
func InvoiceTimestamp(t time.Time) string {
	return t.Format("20060102-150405")
}

// DisplayDate formats t the way the document header shows it.
func DisplayDate(t time.Time) string {
	return t.Format("02/01/2006")
}
