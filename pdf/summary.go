package pdf

import (
	"fmt"
	"time"

	"go-postgres-carbooks/models"
)

// SummaryData prints the transaction summary: how a sale was settled across
// advances, leasing, cheques and cash, plus the ancillary charges.
type SummaryData struct {
	ChassisNo    string
	Maker        string
	Model        string
	CustomerName string
	SoldDate     time.Time

	InvoicePrice float64
	TotalAdvance float64

	LeasingUsed    bool
	LeasingCompany string
	LeaseAmount    float64

	Cheques      []models.Cheque
	CashAmount   float64
	OtherCharges models.OtherCharges

	BalanceSettlement float64
}

// maxChequeLines is how many cheque rows fit the printed layout.
const maxChequeLines = 4

var summaryTemplate = Template{
	Title: "Transaction Summary",
	Labels: []Label{
		{Text: "TRANSACTION SUMMARY", X: 68, Y: 20, Size: 16, Style: "B"},
		{Text: "Vehicle:", X: 20, Y: 35},
		{Text: "Chassis No:", X: 120, Y: 35},
		{Text: "Customer:", X: 20, Y: 43},
		{Text: "Sold Date:", X: 120, Y: 43},
		{Text: "Invoice Price (LKR):", X: 20, Y: 58, Style: "B"},
		{Text: "Less: Advances (LKR):", X: 20, Y: 66},
		{Text: "Leasing:", X: 20, Y: 80, Style: "B"},
		{Text: "Cheques:", X: 20, Y: 96, Style: "B"},
		{Text: "Cash (LKR):", X: 20, Y: 132},
		{Text: "Balance Settlement (LKR):", X: 20, Y: 144, Style: "B"},
		{Text: "Other Charges (not part of settlement)", X: 20, Y: 160, Size: 9, Style: "I"},
		{Text: "Registration:", X: 25, Y: 168},
		{Text: "Valuation:", X: 25, Y: 175},
		{Text: "R-Licence:", X: 25, Y: 182},
	},
	Fields: []Field{
		{Name: "vehicle", X: 38, Y: 35},
		{Name: "chassis_no", X: 145, Y: 35},
		{Name: "customer", X: 42, Y: 43},
		{Name: "sold_date", X: 142, Y: 43},
		{Name: "invoice_price", X: 190, Y: 58, Style: "B", Align: "R"},
		{Name: "total_advance", X: 190, Y: 66, Align: "R"},
		{Name: "leasing", X: 40, Y: 80},
		{Name: "lease_amount", X: 190, Y: 80, Align: "R"},
		{Name: "cheque_1", X: 25, Y: 104, Size: 9},
		{Name: "cheque_2", X: 25, Y: 111, Size: 9},
		{Name: "cheque_3", X: 25, Y: 118, Size: 9},
		{Name: "cheque_4", X: 25, Y: 125, Size: 9},
		{Name: "cash", X: 190, Y: 132, Align: "R"},
		{Name: "balance_settlement", X: 190, Y: 144, Style: "B", Align: "R"},
		{Name: "registration", X: 190, Y: 168, Align: "R"},
		{Name: "valuation", X: 190, Y: 175, Align: "R"},
		{Name: "r_licence", X: 190, Y: 182, Align: "R"},
	},
}

// BuildSummary renders the transaction summary document.
func BuildSummary(d SummaryData) ([]byte, error) {
	values := map[string]string{
		"vehicle":            d.Maker + " " + d.Model,
		"chassis_no":         d.ChassisNo,
		"customer":           d.CustomerName,
		"sold_date":          d.SoldDate.Format("2006-01-02"),
		"invoice_price":      Money(d.InvoicePrice),
		"total_advance":      Money(d.TotalAdvance),
		"cash":               Money(d.CashAmount),
		"balance_settlement": Money(d.BalanceSettlement),
		"registration":       Money(d.OtherCharges.Registration),
		"valuation":          Money(d.OtherCharges.Valuation),
		"r_licence":          Money(d.OtherCharges.RLicence),
	}

	if d.LeasingUsed {
		values["leasing"] = d.LeasingCompany
		values["lease_amount"] = Money(d.LeaseAmount)
	} else {
		values["leasing"] = "None"
	}

	for i, ch := range d.Cheques {
		if i >= maxChequeLines {
			break
		}
		values[fmt.Sprintf("cheque_%d", i+1)] =
			fmt.Sprintf("%s  %s  %s", ch.Bank, ch.ChequeNo, Money(ch.Amount))
	}

	return summaryTemplate.Render(values)
}
