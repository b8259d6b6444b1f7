package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTest wires the controllers against an in-memory sqlite database and a
// bare router (no auth middleware; the handlers under test don't read the
// session).
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Advance{},
		&models.AdvancePayment{},
		&models.Sale{},
		&models.TransactionDetail{},
		&models.LeaseCollection{},
		&models.PendingSale{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	r := gin.New()
	r.GET("/vehicles", GetAllVehicles)
	r.GET("/vehicles/:chassis", GetVehicleByChassis)
	r.POST("/vehicles", CreateVehicle)
	r.PUT("/vehicles/:chassis/costs", UpdateVehicleCosts)
	r.DELETE("/vehicles/:chassis", DeleteVehicle)
	r.POST("/advances/:chassis", CreateAdvance)
	r.POST("/advances/:chassis/payments", AddAdvancePayment)
	r.GET("/advances/:chassis/payments", ListAdvancePayments)
	r.POST("/invoices/:chassis", GenerateInvoice)
	r.POST("/sales", BeginSale)
	r.POST("/sales/:token/confirm", ConfirmSale)
	r.POST("/sales/:token/cancel", CancelSale)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func sampleVehicle(chassis string) map[string]any {
	return map[string]any{
		"chassis_no":       chassis,
		"maker":            "Toyota",
		"model":            "Vitz",
		"manufacture_year": 2017,
		"status":           "available",
		"bid_price":        500000,
		"commission":       50000,
		"insurance":        20000,
		"inland_transport": 30000,
		"other_cost":       0,
		"invoice_amount":   400000,
		"invoice_rate":     1.98,
		"undial_rate":      2.00,
		"tax_lkr":          500000,
		"clearance_lkr":    100000,
	}
}

func TestCreateVehicleComputesTotals(t *testing.T) {
	r := setupTest(t)

	w, _ := doJSON(t, r, http.MethodPost, "/vehicles", sampleVehicle("NCP131-0001"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create vehicle: status %d, body %s", w.Code, w.Body.String())
	}

	var v models.Vehicle
	if err := config.DB.Where("chassis_no = ?", "NCP131-0001").First(&v).Error; err != nil {
		t.Fatalf("load vehicle: %v", err)
	}
	if v.CIFTotalJPY != 600000 {
		t.Errorf("CIF = %v, want 600000", v.CIFTotalJPY)
	}
	// undial was omitted, so it is the suggested CIF - invoice
	if v.UndialAmount != 200000 {
		t.Errorf("undial = %v, want 200000", v.UndialAmount)
	}
	if v.JapanTotalLKR != 1192000 {
		t.Errorf("japan total = %v, want 1192000", v.JapanTotalLKR)
	}
	if v.FinalTotalLKR != 1792000 {
		t.Errorf("final total = %v, want 1792000", v.FinalTotalLKR)
	}
}

func TestVehicleListPagination(t *testing.T) {
	r := setupTest(t)
	for _, chassis := range []string{"NCP131-0101", "NCP131-0102", "NCP131-0103"} {
		doJSON(t, r, http.MethodPost, "/vehicles", sampleVehicle(chassis))
	}

	w, out := doJSON(t, r, http.MethodGet, "/vehicles?page=1&page_size=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list vehicles: status %d, body %s", w.Code, w.Body.String())
	}
	if got := out["total"].(float64); got != 3 {
		t.Errorf("total = %v, want 3", got)
	}
	if got := len(out["data"].([]any)); got != 2 {
		t.Errorf("page 1 rows = %d, want 2", got)
	}

	_, out = doJSON(t, r, http.MethodGet, "/vehicles?page=2&page_size=2", nil)
	if got := len(out["data"].([]any)); got != 1 {
		t.Errorf("page 2 rows = %d, want 1", got)
	}
	if got := out["page"].(float64); got != 2 {
		t.Errorf("page = %v, want 2", got)
	}

	// out-of-range values fall back to the defaults instead of erroring
	w, out = doJSON(t, r, http.MethodGet, "/vehicles?page=0&page_size=9999", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list with bad paging: status %d", w.Code)
	}
	if got := out["page_size"].(float64); got != 50 {
		t.Errorf("page_size = %v, want capped default 50", got)
	}
}

func TestManualUndialIsKept(t *testing.T) {
	r := setupTest(t)
	doJSON(t, r, http.MethodPost, "/vehicles", sampleVehicle("NCP131-0002"))

	// the user typed an undial that does not sum to CIF; it must stick
	costs := sampleVehicle("NCP131-0002")
	delete(costs, "chassis_no")
	costs["undial_amount"] = 150000

	w, _ := doJSON(t, r, http.MethodPut, "/vehicles/NCP131-0002/costs", costs)
	if w.Code != http.StatusOK {
		t.Fatalf("update costs: status %d, body %s", w.Code, w.Body.String())
	}

	var v models.Vehicle
	_ = config.DB.Where("chassis_no = ?", "NCP131-0002").First(&v).Error
	if v.UndialAmount != 150000 {
		t.Errorf("manual undial = %v, want 150000 (must not be overwritten)", v.UndialAmount)
	}
	// 400000*1.98 + 150000*2.00
	if v.JapanTotalLKR != 1092000 {
		t.Errorf("japan total = %v, want 1092000", v.JapanTotalLKR)
	}
}

func TestAdvanceLedgerTotals(t *testing.T) {
	r := setupTest(t)
	doJSON(t, r, http.MethodPost, "/vehicles", sampleVehicle("NCP131-0003"))

	w, _ := doJSON(t, r, http.MethodPost, "/advances/NCP131-0003", map[string]any{
		"customer_name": "N. Perera",
		"selling_price": 3500000,
		"first_payment": map[string]any{"amount": 500000},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create advance: status %d, body %s", w.Code, w.Body.String())
	}

	w, out := doJSON(t, r, http.MethodPost, "/advances/NCP131-0003/payments", map[string]any{
		"amount": 300000,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add payment: status %d, body %s", w.Code, w.Body.String())
	}
	if got := out["total_advance"].(float64); got != 800000 {
		t.Errorf("total_advance = %v, want 800000", got)
	}
	if got := out["remaining_balance"].(float64); got != 2700000 {
		t.Errorf("remaining_balance = %v, want 2700000", got)
	}
}

func TestProfitSnapshotSurvivesCostEdits(t *testing.T) {
	r := setupTest(t)
	doJSON(t, r, http.MethodPost, "/vehicles", sampleVehicle("NCP131-0004"))

	w, out := doJSON(t, r, http.MethodPost, "/sales", map[string]any{
		"chassis_no":    "NCP131-0004",
		"sold_price":    3500000,
		"sold_currency": "LKR",
		"customer_name": "N. Perera",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("begin sale: status %d, body %s", w.Code, w.Body.String())
	}
	token := out["token"].(string)

	// final total at sale time is 1,792,000
	if got := out["profit_lkr"].(float64); got != 1708000 {
		t.Errorf("profit = %v, want 1708000", got)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/sales/"+token+"/confirm", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm sale: status %d, body %s", w.Code, w.Body.String())
	}

	var v models.Vehicle
	_ = config.DB.Where("chassis_no = ?", "NCP131-0004").First(&v).Error
	if v.Status != models.StatusSold {
		t.Fatalf("vehicle status = %s, want sold", v.Status)
	}

	// editing local costs after the sale must not touch the stored profit
	costs := sampleVehicle("NCP131-0004")
	delete(costs, "chassis_no")
	costs["tax_lkr"] = 900000
	doJSON(t, r, http.MethodPut, "/vehicles/NCP131-0004/costs", costs)

	var sale models.Sale
	if err := config.DB.Where("chassis_no = ?", "NCP131-0004").First(&sale).Error; err != nil {
		t.Fatalf("load sale: %v", err)
	}
	if sale.ProfitLKR != 1708000 {
		t.Errorf("profit after cost edit = %v, want unchanged 1708000", sale.ProfitLKR)
	}
}

func TestCancelSaleRestoresVehicle(t *testing.T) {
	r := setupTest(t)
	doJSON(t, r, http.MethodPost, "/vehicles", sampleVehicle("NCP131-0005"))

	_, out := doJSON(t, r, http.MethodPost, "/sales", map[string]any{
		"chassis_no":    "NCP131-0005",
		"sold_price":    3000000,
		"sold_currency": "LKR",
		"lease": map[string]any{
			"leasing_company": "LOLC",
			"amount_due":      1000000,
		},
	})
	token := out["token"].(string)

	w, _ := doJSON(t, r, http.MethodPost, "/sales/"+token+"/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel sale: status %d, body %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.Sale{}).Where("chassis_no = ?", "NCP131-0005").Count(&count)
	if count != 0 {
		t.Errorf("sale rows after cancel = %d, want 0", count)
	}
	config.DB.Model(&models.LeaseCollection{}).Where("chassis_no = ?", "NCP131-0005").Count(&count)
	if count != 0 {
		t.Errorf("lease rows after cancel = %d, want 0", count)
	}

	var v models.Vehicle
	_ = config.DB.Where("chassis_no = ?", "NCP131-0005").First(&v).Error
	if v.Status != models.StatusAvailable {
		t.Errorf("vehicle status = %s, want available", v.Status)
	}

	// a cancelled token cannot be confirmed
	w, _ = doJSON(t, r, http.MethodPost, "/sales/"+token+"/confirm", nil)
	if w.Code != http.StatusConflict {
		t.Errorf("confirm after cancel: status %d, want 409", w.Code)
	}
}

func TestDeleteVehicleCascades(t *testing.T) {
	r := setupTest(t)
	const chassis = "NCP131-0006"
	doJSON(t, r, http.MethodPost, "/vehicles", sampleVehicle(chassis))

	doJSON(t, r, http.MethodPost, "/advances/"+chassis, map[string]any{
		"customer_name": "N. Perera",
		"selling_price": 3500000,
		"first_payment": map[string]any{"amount": 500000},
	})
	doJSON(t, r, http.MethodPost, "/advances/"+chassis+"/payments", map[string]any{"amount": 300000})

	_, out := doJSON(t, r, http.MethodPost, "/sales", map[string]any{
		"chassis_no":    chassis,
		"sold_price":    3500000,
		"sold_currency": "LKR",
		"detail": map[string]any{
			"invoice_price": 3500000,
			"leasing_used":  true,
			"lease_amount":  1000000,
			"cash_amount":   500000,
		},
		"lease": map[string]any{"leasing_company": "LOLC", "amount_due": 1000000},
	})
	doJSON(t, r, http.MethodPost, "/sales/"+out["token"].(string)+"/confirm", nil)

	w, _ := doJSON(t, r, http.MethodDelete, "/vehicles/"+chassis, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete vehicle: status %d, body %s", w.Code, w.Body.String())
	}

	for name, model := range map[string]any{
		"vehicle":            &models.Vehicle{},
		"advance":            &models.Advance{},
		"advance_payment":    &models.AdvancePayment{},
		"sale":               &models.Sale{},
		"transaction_detail": &models.TransactionDetail{},
		"lease_collection":   &models.LeaseCollection{},
		"pending_sale":       &models.PendingSale{},
	} {
		var count int64
		config.DB.Model(model).Where("chassis_no = ?", chassis).Count(&count)
		if count != 0 {
			t.Errorf("%s rows after delete = %d, want 0", name, count)
		}
	}
}
