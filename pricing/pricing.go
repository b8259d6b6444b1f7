// Package pricing holds the cost arithmetic every screen of the books has to
// agree on: CIF aggregation, the invoice/undial split, JPY->LKR conversion,
// local-cost totals, advance settlement and the profit snapshot. All functions
// are pure; amounts go through decimal and come back rounded to 2 dp.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	CurrencyJPY = "JPY"
	CurrencyLKR = "LKR"
)

// JapanCosts are the JPY-side cost lines of a vehicle before the
// invoice/undial split.
type JapanCosts struct {
	Bid             float64
	Commission      float64
	Insurance       float64
	InlandTransport float64
	Other           float64
}

// LocalCosts are the LKR charges added after the japan total, in the order
// they appear on the cost sheet.
type LocalCosts struct {
	Tax       float64
	Clearance float64
	Transport float64
	Extra1    float64
	Extra2    float64
	Extra3    float64
}

func (lc LocalCosts) lines() []float64 {
	return []float64{lc.Tax, lc.Clearance, lc.Transport, lc.Extra1, lc.Extra2, lc.Extra3}
}

// dec sanitises a user-supplied amount: NaN, Inf and negatives count as zero,
// the same way missing form fields do.
func dec(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// CIFTotal sums the five JPY cost fields. Absent or invalid fields are zero.
func CIFTotal(c JapanCosts) float64 {
	total := dec(c.Bid).
		Add(dec(c.Commission)).
		Add(dec(c.Insurance)).
		Add(dec(c.InlandTransport)).
		Add(dec(c.Other))
	return round2(total)
}

// SplitUndial suggests the undial leg for a given CIF total and invoice
// amount: max(cif-invoice, 0). A zero CIF yields no suggestion. This is only
// a suggestion; a manually entered undial is kept as-is and the sum is never
// re-enforced afterwards.
func SplitUndial(cif, invoice float64) float64 {
	c := dec(cif)
	if c.IsZero() {
		return 0
	}
	u := c.Sub(dec(invoice))
	if u.IsNegative() {
		return 0
	}
	return round2(u)
}

// Convert turns a JPY amount into LKR at the given rate (LKR per JPY).
func Convert(amountJPY, rate float64) float64 {
	return round2(dec(amountJPY).Mul(dec(rate)))
}

// JapanTotal is the LKR cost of the vehicle landed from Japan: invoice leg
// plus undial leg, each at its own rate.
func JapanTotal(invoiceAmt, invoiceRate, undialAmt, undialRate float64) float64 {
	total := dec(invoiceAmt).Mul(dec(invoiceRate)).
		Add(dec(undialAmt).Mul(dec(undialRate)))
	return round2(total)
}

// RunningTotals returns the cumulative total after each local cost line is
// added to the base, in declaration order (tax, clearance, transport,
// extra1..3). The last element equals FinalTotal.
func RunningTotals(base float64, lc LocalCosts) []float64 {
	out := make([]float64, 0, 6)
	total := dec(base)
	for _, line := range lc.lines() {
		total = total.Add(dec(line))
		out = append(out, round2(total))
	}
	return out
}

// FinalTotal is the japan total plus every local cost line.
func FinalTotal(base float64, lc LocalCosts) float64 {
	total := dec(base)
	for _, line := range lc.lines() {
		total = total.Add(dec(line))
	}
	return round2(total)
}

// TotalAdvance sums the advance-payment ledger.
func TotalAdvance(payments []float64) float64 {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(dec(p))
	}
	return round2(total)
}

// RemainingBalance is the agreed selling price less everything paid so far.
// It may go negative if the customer has overpaid; callers decide how to show
// that.
func RemainingBalance(sellingPrice float64, payments []float64) float64 {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(dec(p))
	}
	return round2(dec(sellingPrice).Sub(total))
}

// BalanceToPay is the amount still owed at invoice time. The invoice price may
// differ from the originally agreed selling price.
func BalanceToPay(invoicePrice, totalAdvance float64) float64 {
	return round2(dec(invoicePrice).Sub(dec(totalAdvance)))
}

// BalanceSettlement is the cash+cheque amount expected at full settlement.
// The lease-financed portion is subtracted only when leasing is used. Other
// charges (registration, valuation, r-licence) are tracked additively and
// never reduce the settlement.
func BalanceSettlement(balanceAfterAdvance, leaseAmount float64, leasingUsed bool) float64 {
	b := decimal.NewFromFloat(balanceAfterAdvance)
	if leasingUsed {
		b = b.Sub(dec(leaseAmount))
	}
	return round2(b)
}

// NormalizeToLKR converts a sold price quoted in JPY to LKR at the rate
// recorded on the sale; LKR quotes pass through untouched.
func NormalizeToLKR(soldPrice float64, currency string, rate float64) float64 {
	if currency == CurrencyJPY {
		return Convert(soldPrice, rate)
	}
	return round2(dec(soldPrice))
}

// Profit computes the point-in-time profit at the moment of sale:
// sold price (normalized to LKR) minus the vehicle's final total, or minus the
// japan total when local costs were never entered. The caller persists the
// result on the sale row; it is never recalculated.
func Profit(soldPrice float64, currency string, rate, japanTotal, finalTotal float64) float64 {
	cost := dec(finalTotal)
	if cost.IsZero() {
		cost = dec(japanTotal)
	}
	sold := decimal.NewFromFloat(NormalizeToLKR(soldPrice, currency, rate))
	return round2(sold.Sub(cost))
}
