package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/models"
	"go-postgres-carbooks/pdf"
	"go-postgres-carbooks/pricing"
	"go-postgres-carbooks/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func invoicePrefix() string {
	return os.Getenv("INVOICE_PREFIX")
}

func jsonUnmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func servePDF(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

type GenerateInvoiceInput struct {
	EngineNo       string  `json:"engine_no" binding:"required"`
	EngineCapacity string  `json:"engine_capacity"`
	Colour         string  `json:"colour"`
	FuelType       string  `json:"fuel_type"`
	Seating        int     `json:"seating"`
	InvoicePrice   float64 `json:"invoice_price" binding:"required,gt=0"`
}

// GenerateInvoice stores the descriptive fields captured at invoice time,
// assigns the invoice number on first generation, and returns the rendered
// PDF. Re-generating keeps the existing number so the printed document stays
// stable.
func GenerateInvoice(c *gin.Context) {
	chassis := c.Param("chassis")

	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", chassis).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
		return
	}

	var in GenerateInvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	now := time.Now()
	if vehicle.InvoiceNo == "" {
		// The vehicle's primary key backs the sequence: unique across the
		// fleet and never handed out again after a row is deleted.
		vehicle.InvoiceNo = utils.GenInvoiceNo(invoicePrefix(), int64(vehicle.ID), now)
		vehicle.InvoiceDate = &now
	}

	vehicle.EngineNo = in.EngineNo
	vehicle.EngineCapacity = in.EngineCapacity
	vehicle.Colour = in.Colour
	vehicle.FuelType = in.FuelType
	vehicle.Seating = in.Seating
	vehicle.InvoicePrice = in.InvoicePrice

	if err := config.DB.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not store invoice data", "error": err.Error()})
		return
	}

	data, err := pdf.BuildInvoice(invoiceDataFor(vehicle))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not render invoice", "error": err.Error()})
		return
	}
	servePDF(c, vehicle.InvoiceNo+".pdf", data)
}

// invoiceDataFor assembles the printable invoice from the vehicle, its
// advance customer snapshot and the payment ledger.
func invoiceDataFor(vehicle models.Vehicle) pdf.InvoiceData {
	d := pdf.InvoiceData{
		InvoiceNo:       vehicle.InvoiceNo,
		CustomerName:    "",
		ChassisNo:       vehicle.ChassisNo,
		Maker:           vehicle.Maker,
		Model:           vehicle.Model,
		ManufactureYear: vehicle.ManufactureYear,
		EngineNo:        vehicle.EngineNo,
		EngineCapacity:  vehicle.EngineCapacity,
		Colour:          vehicle.Colour,
		FuelType:        vehicle.FuelType,
		Seating:         vehicle.Seating,
		InvoicePrice:    vehicle.InvoicePrice,
	}
	if vehicle.InvoiceDate != nil {
		d.InvoiceDate = *vehicle.InvoiceDate
	} else {
		d.InvoiceDate = time.Now()
	}

	var advance models.Advance
	if err := config.DB.Where("chassis_no = ?", vehicle.ChassisNo).First(&advance).Error; err == nil {
		d.CustomerName = advance.CustomerName
		d.CustomerAddress = advance.CustomerAddress
		d.CustomerNIC = advance.CustomerNIC
	} else if sale := (models.Sale{}); config.DB.Where("chassis_no = ?", vehicle.ChassisNo).First(&sale).Error == nil {
		d.CustomerName = sale.CustomerName
		d.CustomerAddress = sale.CustomerAddress
		d.CustomerNIC = sale.CustomerNIC
	}

	totalAdvance := pricing.TotalAdvance(advanceAmountsFor(vehicle.ChassisNo))
	d.TotalAdvance = totalAdvance
	d.BalanceToPay = pricing.BalanceToPay(vehicle.InvoicePrice, totalAdvance)
	return d
}

// LetterheadInvoice re-renders the stored invoice over the company's raster
// letterhead (LETTERHEAD_IMAGE, a scanned sheet). It requires the invoice to
// have been generated already.
func LetterheadInvoice(c *gin.Context) {
	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", c.Param("chassis")).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
		return
	}
	if vehicle.EngineNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Generate the invoice first"})
		return
	}

	background := os.Getenv("LETTERHEAD_IMAGE")
	if background == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "LETTERHEAD_IMAGE is not configured"})
		return
	}

	data, err := pdf.BuildLetterheadInvoice(invoiceDataFor(vehicle), background)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not render invoice", "error": err.Error()})
		return
	}
	servePDF(c, vehicle.InvoiceNo+"-letterhead.pdf", data)
}

// AdvanceReceipt renders the printable receipt for one advance payment.
func AdvanceReceipt(c *gin.Context) {
	chassis := c.Param("chassis")
	paymentID, _ := strconv.Atoi(c.Param("paymentID"))

	var payment models.AdvancePayment
	if err := config.DB.Where("id = ? AND chassis_no = ?", paymentID, chassis).First(&payment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
		return
	}

	var advance models.Advance
	if err := config.DB.Where("chassis_no = ?", chassis).First(&advance).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Advance not found"})
		return
	}

	var vehicle models.Vehicle
	_ = config.DB.Where("chassis_no = ?", chassis).First(&vehicle).Error

	amounts := advanceAmountsFor(chassis)
	data, err := pdf.BuildReceipt(pdf.ReceiptData{
		ReceiptNo:        payment.ReceiptNo,
		PaymentDate:      payment.PaymentDate,
		CustomerName:     advance.CustomerName,
		ChassisNo:        chassis,
		Maker:            vehicle.Maker,
		Model:            vehicle.Model,
		Amount:           payment.Amount,
		TotalAdvance:     pricing.TotalAdvance(amounts),
		SellingPrice:     advance.SellingPrice,
		RemainingBalance: pricing.RemainingBalance(advance.SellingPrice, amounts),
		BankName:         payment.BankName,
		Reference:        payment.Reference,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not render receipt", "error": err.Error()})
		return
	}
	servePDF(c, payment.ReceiptNo+".pdf", data)
}

// TransactionSummary regenerates the settlement document from the sale and
// its stored transaction detail.
func TransactionSummary(c *gin.Context) {
	chassis := c.Param("chassis")

	var sale models.Sale
	if err := config.DB.Where("chassis_no = ?", chassis).First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No sale recorded for this vehicle"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load sale", "error": err.Error()})
		return
	}

	var detail models.TransactionDetail
	if err := config.DB.Where("chassis_no = ?", chassis).First(&detail).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No transaction detail recorded for this sale"})
		return
	}

	var vehicle models.Vehicle
	_ = config.DB.Where("chassis_no = ?", chassis).First(&vehicle).Error

	var cheques []models.Cheque
	_ = jsonUnmarshal(detail.Cheques, &cheques)
	var charges models.OtherCharges
	_ = jsonUnmarshal(detail.OtherCharges, &charges)

	data, err := pdf.BuildSummary(pdf.SummaryData{
		ChassisNo:         chassis,
		Maker:             vehicle.Maker,
		Model:             vehicle.Model,
		CustomerName:      sale.CustomerName,
		SoldDate:          sale.SoldDate,
		InvoicePrice:      detail.InvoicePrice,
		TotalAdvance:      pricing.TotalAdvance(advanceAmountsFor(chassis)),
		LeasingUsed:       detail.LeasingUsed,
		LeasingCompany:    detail.LeasingCompany,
		LeaseAmount:       detail.LeaseAmount,
		Cheques:           cheques,
		CashAmount:        detail.CashAmount,
		OtherCharges:      charges,
		BalanceSettlement: detail.BalanceSettlement,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not render summary", "error": err.Error()})
		return
	}
	servePDF(c, chassis+"-summary.pdf", data)
}
