package utils

import (
	"strings"
	"testing"
	"time"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero"},
		{1, "One"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{567, "Five Hundred Sixty Seven"},
		{1000, "One Thousand"},
		{234000, "Two Hundred Thirty Four Thousand"},
		{1000000, "One Million"},
		{2500000, "Two Million Five Hundred Thousand"},
		{0.01, "Zero and One Cent"},
		{0.50, "Zero and Fifty Cents"},
		{125.75, "One Hundred Twenty Five and Seventy Five Cents"},
	}
	for _, tt := range tests {
		if got := NumberToWords(tt.amount); got != tt.want {
			t.Errorf("NumberToWords(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestNumberToWordsPhraseOrder(t *testing.T) {
	got := NumberToWords(1234567.50)

	phrases := []string{
		"One Million",
		"Two Hundred Thirty Four Thousand",
		"Five Hundred Sixty Seven",
		"and Fifty Cents",
	}
	idx := 0
	for _, p := range phrases {
		at := strings.Index(got[idx:], p)
		if at < 0 {
			t.Fatalf("NumberToWords(1234567.50) = %q, missing %q in order", got, p)
		}
		idx += at + len(p)
	}
}

func TestNumberToWordsNegative(t *testing.T) {
	if got := NumberToWords(-5); got != "" {
		t.Errorf("NumberToWords(-5) = %q, want empty", got)
	}
}

func TestGenInvoiceNo(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := GenInvoiceNo("RS", 42, at); got != "RS-2026-000042" {
		t.Errorf("GenInvoiceNo = %q", got)
	}
	if got := GenInvoiceNo("", 7, at); got != "INV-2026-000007" {
		t.Errorf("GenInvoiceNo default prefix = %q", got)
	}
}
