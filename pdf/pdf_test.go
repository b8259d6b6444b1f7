package pdf

import (
	"bytes"
	"testing"
	"time"

	"go-postgres-carbooks/models"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1234.5, "1,234.50"},
		{1192000, "1,192,000.00"},
		{3500000.25, "3,500,000.25"},
		{999, "999.00"},
		{-45000, "-45,000.00"},
	}
	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTemplateRender(t *testing.T) {
	tpl := Template{
		Title:  "Test",
		Labels: []Label{{Text: "Hello", X: 10, Y: 10}},
		Fields: []Field{
			{Name: "a", X: 10, Y: 20},
			{Name: "b", X: 100, Y: 20, Align: "R"},
		},
	}
	out, err := tpl.Render(map[string]string{"a": "value-a"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output is not a PDF, starts with %q", out[:8])
	}
}

func sampleInvoice() InvoiceData {
	return InvoiceData{
		InvoiceNo:       "RS-2026-000001",
		InvoiceDate:     time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		CustomerName:    "N. Perera",
		CustomerAddress: "12 Galle Road, Colombo",
		CustomerNIC:     "901234567V",
		ChassisNo:       "NCP131-1234567",
		Maker:           "Toyota",
		Model:           "Vitz",
		ManufactureYear: 2017,
		EngineNo:        "1NR-0456789",
		EngineCapacity:  "1300cc",
		Colour:          "Pearl White",
		FuelType:        "Petrol",
		Seating:         5,
		InvoicePrice:    3600000,
		TotalAdvance:    800000,
		BalanceToPay:    2800000,
	}
}

func TestBuildInvoice(t *testing.T) {
	out, err := BuildInvoice(sampleInvoice())
	if err != nil {
		t.Fatalf("BuildInvoice: %v", err)
	}
	if len(out) == 0 || !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("BuildInvoice produced no PDF output")
	}
}

func TestInvoiceValuesCoverTemplate(t *testing.T) {
	values := sampleInvoice().values()
	for _, name := range invoiceTemplate.FieldNames() {
		if _, ok := values[name]; !ok {
			t.Errorf("template field %q has no value", name)
		}
	}
}

func TestBuildReceipt(t *testing.T) {
	out, err := BuildReceipt(ReceiptData{
		ReceiptNo:        "RS-RCPT-2026-000003",
		PaymentDate:      time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		CustomerName:     "N. Perera",
		ChassisNo:        "NCP131-1234567",
		Maker:            "Toyota",
		Model:            "Vitz",
		Amount:           300000,
		TotalAdvance:     800000,
		SellingPrice:     3500000,
		RemainingBalance: 2700000,
		BankName:         "Commercial Bank",
		Reference:        "TRX-9911",
	})
	if err != nil {
		t.Fatalf("BuildReceipt: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("BuildReceipt produced no PDF output")
	}
}

func TestBuildSummary(t *testing.T) {
	out, err := BuildSummary(SummaryData{
		ChassisNo:    "NCP131-1234567",
		Maker:        "Toyota",
		Model:        "Vitz",
		CustomerName: "N. Perera",
		SoldDate:     time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
		InvoicePrice: 3600000,
		TotalAdvance: 800000,
		LeasingUsed:  true, LeasingCompany: "LOLC", LeaseAmount: 1000000,
		Cheques: []models.Cheque{
			{Bank: "BOC", ChequeNo: "112233", Amount: 1000000},
			{Bank: "HNB", ChequeNo: "445566", Amount: 500000},
		},
		CashAmount:        300000,
		OtherCharges:      models.OtherCharges{Registration: 25000, Valuation: 8000},
		BalanceSettlement: 1800000,
	})
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("BuildSummary produced no PDF output")
	}
}
