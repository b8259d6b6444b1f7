// utils/invoice_no.go
package utils

import (
	"fmt"
	"time"
)

// GenInvoiceNo builds an invoice number like RS-2026-000042 from the
// configured prefix and a per-year sequence.
func GenInvoiceNo(prefix string, seq int64, t time.Time) string {
	if prefix == "" {
		prefix = "INV"
	}
	return fmt.Sprintf("%s-%d-%06d", prefix, t.Year(), seq)
}

// GenReceiptNo builds an advance receipt number from the same prefix.
func GenReceiptNo(prefix string, seq int64, t time.Time) string {
	if prefix == "" {
		prefix = "INV"
	}
	return fmt.Sprintf("%s-RCPT-%d-%06d", prefix, t.Year(), seq)
}
