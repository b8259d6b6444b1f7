package pdf

import (
	"strconv"
	"time"

	"go-postgres-carbooks/utils"
)

// InvoiceData is everything the sales invoice prints. Amounts are LKR unless
// named otherwise.
type InvoiceData struct {
	InvoiceNo   string
	InvoiceDate time.Time

	CustomerName    string
	CustomerAddress string
	CustomerNIC     string

	ChassisNo       string
	Maker           string
	Model           string
	ManufactureYear int
	EngineNo        string
	EngineCapacity  string
	Colour          string
	FuelType        string
	Seating         int

	InvoicePrice float64
	TotalAdvance float64
	BalanceToPay float64
}

var invoiceTemplate = Template{
	Title: "Sales Invoice",
	Labels: []Label{
		{Text: "SALES INVOICE", X: 80, Y: 20, Size: 16, Style: "B"},
		{Text: "Invoice No:", X: 20, Y: 35},
		{Text: "Date:", X: 140, Y: 35},
		{Text: "Customer", X: 20, Y: 48, Size: 11, Style: "B"},
		{Text: "Name:", X: 20, Y: 56},
		{Text: "Address:", X: 20, Y: 63},
		{Text: "NIC:", X: 20, Y: 70},
		{Text: "Vehicle", X: 20, Y: 83, Size: 11, Style: "B"},
		{Text: "Chassis No:", X: 20, Y: 91},
		{Text: "Make / Model:", X: 20, Y: 98},
		{Text: "Year:", X: 140, Y: 98},
		{Text: "Engine No:", X: 20, Y: 105},
		{Text: "Capacity:", X: 140, Y: 105},
		{Text: "Colour:", X: 20, Y: 112},
		{Text: "Fuel:", X: 90, Y: 112},
		{Text: "Seating:", X: 140, Y: 112},
		{Text: "Invoice Price (LKR):", X: 20, Y: 130, Style: "B"},
		{Text: "Advance Paid (LKR):", X: 20, Y: 138},
		{Text: "Balance To Pay (LKR):", X: 20, Y: 146, Style: "B"},
		{Text: "Amount in words:", X: 20, Y: 158},
		{Text: "..............................", X: 20, Y: 250},
		{Text: "Authorised Signature", X: 20, Y: 256, Size: 8},
	},
	Fields: []Field{
		{Name: "invoice_no", X: 45, Y: 35},
		{Name: "invoice_date", X: 155, Y: 35},
		{Name: "customer_name", X: 45, Y: 56},
		{Name: "customer_address", X: 45, Y: 63},
		{Name: "customer_nic", X: 45, Y: 70},
		{Name: "chassis_no", X: 48, Y: 91},
		{Name: "make_model", X: 52, Y: 98},
		{Name: "year", X: 155, Y: 98},
		{Name: "engine_no", X: 45, Y: 105},
		{Name: "capacity", X: 162, Y: 105},
		{Name: "colour", X: 40, Y: 112},
		{Name: "fuel", X: 103, Y: 112},
		{Name: "seating", X: 160, Y: 112},
		{Name: "invoice_price", X: 190, Y: 130, Style: "B", Align: "R"},
		{Name: "total_advance", X: 190, Y: 138, Align: "R"},
		{Name: "balance_to_pay", X: 190, Y: 146, Style: "B", Align: "R"},
		{Name: "price_in_words", X: 20, Y: 165, Size: 9, Style: "I"},
	},
}

func (d InvoiceData) values() map[string]string {
	return map[string]string{
		"invoice_no":       d.InvoiceNo,
		"invoice_date":     d.InvoiceDate.Format("2006-01-02"),
		"customer_name":    d.CustomerName,
		"customer_address": d.CustomerAddress,
		"customer_nic":     d.CustomerNIC,
		"chassis_no":       d.ChassisNo,
		"make_model":       d.Maker + " " + d.Model,
		"year":             itoa(d.ManufactureYear),
		"engine_no":        d.EngineNo,
		"capacity":         d.EngineCapacity,
		"colour":           d.Colour,
		"fuel":             d.FuelType,
		"seating":          itoa(d.Seating),
		"invoice_price":    Money(d.InvoicePrice),
		"total_advance":    Money(d.TotalAdvance),
		"balance_to_pay":   Money(d.BalanceToPay),
		"price_in_words":   utils.NumberToWords(d.InvoicePrice),
	}
}

// BuildInvoice renders the plain sales invoice.
func BuildInvoice(d InvoiceData) ([]byte, error) {
	return invoiceTemplate.Render(d.values())
}

// BuildLetterheadInvoice renders the same invoice over a raster letterhead
// background, the variant printed on the company's pre-designed sheet.
func BuildLetterheadInvoice(d InvoiceData, backgroundPath string) ([]byte, error) {
	t := invoiceTemplate
	t.Background = backgroundPath
	t.Labels = nil // the letterhead carries its own captions
	return t.Render(d.values())
}

// itoa renders an int for print, leaving unset (zero) fields blank.
func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
