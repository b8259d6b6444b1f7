package pdf

import (
	"time"

	"go-postgres-carbooks/utils"
)

// ReceiptData prints one advance payment against a vehicle.
type ReceiptData struct {
	ReceiptNo    string
	PaymentDate  time.Time
	CustomerName string
	ChassisNo    string
	Maker        string
	Model        string

	Amount           float64
	TotalAdvance     float64
	SellingPrice     float64
	RemainingBalance float64

	BankName  string
	Reference string
}

var receiptTemplate = Template{
	Title: "Advance Receipt",
	Labels: []Label{
		{Text: "ADVANCE RECEIPT", X: 75, Y: 20, Size: 16, Style: "B"},
		{Text: "Receipt No:", X: 20, Y: 35},
		{Text: "Date:", X: 140, Y: 35},
		{Text: "Received from:", X: 20, Y: 48},
		{Text: "Vehicle:", X: 20, Y: 56},
		{Text: "Chassis No:", X: 20, Y: 63},
		{Text: "Amount Received (LKR):", X: 20, Y: 78, Style: "B"},
		{Text: "In words:", X: 20, Y: 86},
		{Text: "Via:", X: 20, Y: 94},
		{Text: "Agreed Price (LKR):", X: 20, Y: 110},
		{Text: "Total Paid (LKR):", X: 20, Y: 118},
		{Text: "Balance (LKR):", X: 20, Y: 126, Style: "B"},
	},
	Fields: []Field{
		{Name: "receipt_no", X: 45, Y: 35},
		{Name: "payment_date", X: 155, Y: 35},
		{Name: "customer_name", X: 52, Y: 48},
		{Name: "vehicle", X: 40, Y: 56},
		{Name: "chassis_no", X: 48, Y: 63},
		{Name: "amount", X: 190, Y: 78, Style: "B", Align: "R"},
		{Name: "amount_words", X: 42, Y: 86, Size: 9, Style: "I"},
		{Name: "via", X: 32, Y: 94},
		{Name: "selling_price", X: 190, Y: 110, Align: "R"},
		{Name: "total_advance", X: 190, Y: 118, Align: "R"},
		{Name: "remaining", X: 190, Y: 126, Style: "B", Align: "R"},
	},
}

// BuildReceipt renders the advance payment receipt.
func BuildReceipt(d ReceiptData) ([]byte, error) {
	via := "Cash"
	if d.BankName != "" {
		via = "Bank transfer - " + d.BankName
		if d.Reference != "" {
			via += " (" + d.Reference + ")"
		}
	}
	return receiptTemplate.Render(map[string]string{
		"receipt_no":    d.ReceiptNo,
		"payment_date":  d.PaymentDate.Format("2006-01-02"),
		"customer_name": d.CustomerName,
		"vehicle":       d.Maker + " " + d.Model,
		"chassis_no":    d.ChassisNo,
		"amount":        Money(d.Amount),
		"amount_words":  utils.NumberToWords(d.Amount),
		"via":           via,
		"selling_price": Money(d.SellingPrice),
		"total_advance": Money(d.TotalAdvance),
		"remaining":     Money(d.RemainingBalance),
	})
}
