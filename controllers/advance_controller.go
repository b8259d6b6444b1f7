package controllers

import (
	"errors"
	"net/http"
	"time"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/models"
	"go-postgres-carbooks/pricing"
	"go-postgres-carbooks/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// numberReceipt stamps a freshly created ledger entry with its receipt number.
// The number is derived from the payment row's own primary key, so it is unique
// across every vehicle and survives deletions.
func numberReceipt(tx *gorm.DB, payment *models.AdvancePayment) error {
	payment.ReceiptNo = utils.GenReceiptNo(invoicePrefix(), int64(payment.ID), payment.PaymentDate)
	return tx.Model(payment).Update("receipt_no", payment.ReceiptNo).Error
}

func paymentAmounts(payments []models.AdvancePayment) []float64 {
	amounts := make([]float64, 0, len(payments))
	for _, p := range payments {
		amounts = append(amounts, p.Amount)
	}
	return amounts
}

// GetAdvance loads the advance for a chassis. A vehicle with no advance yet is
// normal, not an error, so record-not-found comes back as empty data.
func GetAdvance(c *gin.Context) {
	chassis := c.Param("chassis")

	var advance models.Advance
	err := config.DB.Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("payment_date ASC, id ASC")
	}).Where("chassis_no = ?", chassis).First(&advance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "No advance recorded yet", "data": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load advance", "error": err.Error()})
		return
	}

	amounts := paymentAmounts(advance.Payments)
	c.JSON(http.StatusOK, gin.H{
		"data":              advance,
		"total_advance":     pricing.TotalAdvance(amounts),
		"remaining_balance": pricing.RemainingBalance(advance.SellingPrice, amounts),
	})
}

type PaymentInput struct {
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	PaymentDate *time.Time `json:"payment_date"`
	BankName    string     `json:"bank_name"`
	BankBranch  string     `json:"bank_branch"`
	Reference   string     `json:"reference"`
}

type AdvanceInput struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	CustomerNIC     string  `json:"customer_nic"`
	SellingPrice    float64 `json:"selling_price" binding:"required,gt=0"`

	FirstPayment PaymentInput `json:"first_payment" binding:"required"`
}

// CreateAdvance captures the customer snapshot and agreed price at the first
// advance payment, writing the advance and its opening ledger entry together.
func CreateAdvance(c *gin.Context) {
	chassis := c.Param("chassis")

	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", chassis).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
		return
	}
	if vehicle.Status == models.StatusSold {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vehicle is already sold"})
		return
	}

	var in AdvanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var existing models.Advance
	if err := config.DB.Where("chassis_no = ?", chassis).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "An advance already exists for this vehicle"})
		return
	}

	paidAt := time.Now()
	if in.FirstPayment.PaymentDate != nil {
		paidAt = *in.FirstPayment.PaymentDate
	}

	advance := models.Advance{
		ChassisNo:       chassis,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		CustomerNIC:     in.CustomerNIC,
		SellingPrice:    in.SellingPrice,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&advance).Error; err != nil {
			return err
		}
		payment := models.AdvancePayment{
			ChassisNo:   chassis,
			Amount:      in.FirstPayment.Amount,
			PaymentDate: paidAt,
			BankName:    in.FirstPayment.BankName,
			BankBranch:  in.FirstPayment.BankBranch,
			Reference:   in.FirstPayment.Reference,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return numberReceipt(tx, &payment)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not record advance", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":           "Advance recorded",
		"data":              advance,
		"remaining_balance": pricing.RemainingBalance(in.SellingPrice, []float64{in.FirstPayment.Amount}),
	})
}

// AddAdvancePayment appends to the ledger. Entries are never edited or
// removed; the running totals are always derived from the full list.
func AddAdvancePayment(c *gin.Context) {
	chassis := c.Param("chassis")

	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", chassis).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
		return
	}
	if vehicle.Status == models.StatusSold {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vehicle is already sold"})
		return
	}

	var advance models.Advance
	if err := config.DB.Where("chassis_no = ?", chassis).First(&advance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Record the advance before adding payments"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load advance", "error": err.Error()})
		return
	}

	var in PaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	paidAt := time.Now()
	if in.PaymentDate != nil {
		paidAt = *in.PaymentDate
	}

	payment := models.AdvancePayment{
		ChassisNo:   chassis,
		Amount:      in.Amount,
		PaymentDate: paidAt,
		BankName:    in.BankName,
		BankBranch:  in.BankBranch,
		Reference:   in.Reference,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return numberReceipt(tx, &payment)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not record payment", "error": err.Error()})
		return
	}

	var payments []models.AdvancePayment
	_ = config.DB.Where("chassis_no = ?", chassis).Find(&payments).Error
	amounts := paymentAmounts(payments)

	c.JSON(http.StatusCreated, gin.H{
		"message":           "Payment recorded",
		"data":              payment,
		"total_advance":     pricing.TotalAdvance(amounts),
		"remaining_balance": pricing.RemainingBalance(advance.SellingPrice, amounts),
	})
}

func ListAdvancePayments(c *gin.Context) {
	chassis := c.Param("chassis")

	var advance models.Advance
	if err := config.DB.Where("chassis_no = ?", chassis).First(&advance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "No advance recorded yet", "data": []models.AdvancePayment{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load advance", "error": err.Error()})
		return
	}

	var payments []models.AdvancePayment
	if err := config.DB.Where("chassis_no = ?", chassis).
		Order("payment_date ASC, id ASC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load payments", "error": err.Error()})
		return
	}

	amounts := paymentAmounts(payments)
	c.JSON(http.StatusOK, gin.H{
		"data":              payments,
		"total_advance":     pricing.TotalAdvance(amounts),
		"remaining_balance": pricing.RemainingBalance(advance.SellingPrice, amounts),
	})
}
