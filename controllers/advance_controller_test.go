package controllers

import (
	"net/http"
	"testing"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/models"
)

func TestReceiptNumbersUniqueAcrossVehicles(t *testing.T) {
	r := setupTest(t)

	// two vehicles, two ledger entries each
	for _, chassis := range []string{"NCP131-0201", "NCP131-0202"} {
		doJSON(t, r, http.MethodPost, "/vehicles", sampleVehicle(chassis))

		w, _ := doJSON(t, r, http.MethodPost, "/advances/"+chassis, map[string]any{
			"customer_name": "N. Perera",
			"selling_price": 3500000,
			"first_payment": map[string]any{"amount": 500000},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create advance for %s: status %d, body %s", chassis, w.Code, w.Body.String())
		}
		w, _ = doJSON(t, r, http.MethodPost, "/advances/"+chassis+"/payments", map[string]any{
			"amount": 300000,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("add payment for %s: status %d, body %s", chassis, w.Code, w.Body.String())
		}
	}

	var payments []models.AdvancePayment
	if err := config.DB.Find(&payments).Error; err != nil {
		t.Fatalf("load payments: %v", err)
	}
	if len(payments) != 4 {
		t.Fatalf("payments = %d, want 4", len(payments))
	}

	seen := map[string]string{}
	for _, p := range payments {
		if p.ReceiptNo == "" {
			t.Errorf("payment %d on %s has no receipt number", p.ID, p.ChassisNo)
			continue
		}
		if prev, dup := seen[p.ReceiptNo]; dup {
			t.Errorf("receipt %s issued to both %s and %s", p.ReceiptNo, prev, p.ChassisNo)
		}
		seen[p.ReceiptNo] = p.ChassisNo
	}
}

func TestNoPaymentsOnceSold(t *testing.T) {
	r := setupTest(t)
	const chassis = "NCP131-0203"
	doJSON(t, r, http.MethodPost, "/vehicles", sampleVehicle(chassis))

	doJSON(t, r, http.MethodPost, "/advances/"+chassis, map[string]any{
		"customer_name": "N. Perera",
		"selling_price": 3500000,
		"first_payment": map[string]any{"amount": 500000},
	})

	_, out := doJSON(t, r, http.MethodPost, "/sales", map[string]any{
		"chassis_no":    chassis,
		"sold_price":    3500000,
		"sold_currency": "LKR",
	})
	w, _ := doJSON(t, r, http.MethodPost, "/sales/"+out["token"].(string)+"/confirm", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm sale: status %d, body %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodPost, "/advances/"+chassis+"/payments", map[string]any{
		"amount": 100000,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("payment on sold vehicle: status %d, want 400", w.Code)
	}

	var count int64
	config.DB.Model(&models.AdvancePayment{}).Where("chassis_no = ?", chassis).Count(&count)
	if count != 1 {
		t.Errorf("ledger entries = %d, want the original 1 only", count)
	}
}
