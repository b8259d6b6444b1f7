package utils

import (
	"math"
	"strings"
)

var wordOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// threeDigitWords spells 1..999, e.g. 567 -> "Five Hundred Sixty Seven".
func threeDigitWords(n int64) string {
	parts := []string{}
	if n >= 100 {
		parts = append(parts, wordOnes[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, wordTens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, wordOnes[n])
	}
	return strings.Join(parts, " ")
}

// NumberToWords spells a non-negative LKR amount in English for printed
// documents, handling magnitudes up to millions. Up to two decimal places are
// treated as cents: 1234567.50 -> "One Million Two Hundred Thirty Four
// Thousand Five Hundred Sixty Seven and Fifty Cents".
func NumberToWords(amount float64) string {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}

	totalCents := int64(math.Round(amount * 100))
	whole := totalCents / 100
	cents := totalCents % 100

	parts := []string{}
	if whole == 0 {
		parts = append(parts, "Zero")
	} else {
		if m := whole / 1000000; m > 0 {
			parts = append(parts, threeDigitWords(m), "Million")
			whole %= 1000000
		}
		if t := whole / 1000; t > 0 {
			parts = append(parts, threeDigitWords(t), "Thousand")
			whole %= 1000
		}
		if whole > 0 {
			parts = append(parts, threeDigitWords(whole))
		}
	}

	if cents > 0 {
		unit := "Cents"
		if cents == 1 {
			unit = "Cent"
		}
		parts = append(parts, "and", threeDigitWords(cents), unit)
	}

	return strings.Join(parts, " ")
}
