package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/models"
	"go-postgres-carbooks/pricing"
	"go-postgres-carbooks/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type SaleInput struct {
	ChassisNo      string     `json:"chassis_no" binding:"required"`
	SoldPrice      float64    `json:"sold_price" binding:"required,gt=0"`
	SoldCurrency   string     `json:"sold_currency" binding:"required"` // JPY | LKR
	ConversionRate float64    `json:"conversion_rate"`
	SoldDate       *time.Time `json:"sold_date"`

	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	CustomerNIC     string `json:"customer_nic"`

	// Optional transaction breakdown
	Detail *SaleDetailInput `json:"detail"`
	// Optional lease collection to raise against the leasing company
	Lease *LeaseInput `json:"lease"`
}

type SaleDetailInput struct {
	InvoicePrice   float64             `json:"invoice_price"`
	LeasingUsed    bool                `json:"leasing_used"`
	LeasingCompany string              `json:"leasing_company"`
	LeaseAmount    float64             `json:"lease_amount"`
	CashAmount     float64             `json:"cash_amount"`
	Cheques        []models.Cheque     `json:"cheques"`
	OtherCharges   models.OtherCharges `json:"other_charges"`
}

type LeaseInput struct {
	LeasingCompany string  `json:"leasing_company" binding:"required"`
	AmountDue      float64 `json:"amount_due" binding:"required,gt=0"`
}

// BeginSale runs the mark-sold flow up to the point of confirmation. The
// writes are not one database transaction by design: each row created is
// recorded on a PendingSale so CancelSale can undo exactly that set, and the
// vehicle stays available until ConfirmSale. The profit snapshot is computed
// here, once, from the totals current at this moment.
func BeginSale(c *gin.Context) {
	var in SaleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if in.SoldCurrency != pricing.CurrencyJPY && in.SoldCurrency != pricing.CurrencyLKR {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Currency must be JPY or LKR"})
		return
	}
	if in.SoldCurrency == pricing.CurrencyJPY && in.ConversionRate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A conversion rate is required for JPY sales"})
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", in.ChassisNo).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
		return
	}
	if vehicle.Status != models.StatusAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only available vehicles can be sold"})
		return
	}

	var open models.PendingSale
	if err := config.DB.Where("chassis_no = ? AND status = ?", in.ChassisNo, models.PendingSalePending).
		First(&open).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "A sale is already pending for this vehicle", "token": open.Token})
		return
	}

	soldDate := time.Now()
	if in.SoldDate != nil {
		soldDate = *in.SoldDate
	}

	profit := pricing.Profit(in.SoldPrice, in.SoldCurrency, in.ConversionRate,
		vehicle.JapanTotalLKR, vehicle.FinalTotalLKR)

	pending := models.PendingSale{
		Token:     uuid.New().String(),
		ChassisNo: in.ChassisNo,
		Status:    models.PendingSalePending,
	}
	if err := config.DB.Create(&pending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not start sale", "error": err.Error()})
		return
	}

	// Step 1: the sale row
	sale := models.Sale{
		ChassisNo:       in.ChassisNo,
		SoldPrice:       in.SoldPrice,
		SoldCurrency:    in.SoldCurrency,
		ConversionRate:  in.ConversionRate,
		ProfitLKR:       profit,
		SoldDate:        soldDate,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		CustomerNIC:     in.CustomerNIC,
	}
	if err := config.DB.Create(&sale).Error; err != nil {
		_ = config.DB.Model(&pending).Update("status", models.PendingSaleCancelled).Error
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"message": "A sale already exists for this vehicle"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not record sale", "error": err.Error()})
		return
	}
	pending.SaleID = &sale.ID
	_ = config.DB.Save(&pending).Error

	// Step 2: optional transaction detail
	if in.Detail != nil {
		amounts := advanceAmountsFor(in.ChassisNo)
		balance := pricing.BalanceToPay(in.Detail.InvoicePrice, pricing.TotalAdvance(amounts))
		settlement := pricing.BalanceSettlement(balance, in.Detail.LeaseAmount, in.Detail.LeasingUsed)

		cheques, _ := json.Marshal(in.Detail.Cheques)
		charges, _ := json.Marshal(in.Detail.OtherCharges)
		detail := models.TransactionDetail{
			ChassisNo:         in.ChassisNo,
			InvoicePrice:      in.Detail.InvoicePrice,
			LeasingUsed:       in.Detail.LeasingUsed,
			LeasingCompany:    in.Detail.LeasingCompany,
			LeaseAmount:       in.Detail.LeaseAmount,
			CashAmount:        in.Detail.CashAmount,
			Cheques:           cheques,
			OtherCharges:      charges,
			BalanceSettlement: settlement,
		}
		if err := config.DB.Create(&detail).Error; err != nil {
			rollbackPending(&pending)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not record transaction detail", "error": err.Error()})
			return
		}
		pending.TransactionDetailID = &detail.ID
		_ = config.DB.Save(&pending).Error
	}

	// Step 3: optional lease collection
	if in.Lease != nil {
		lease := models.LeaseCollection{
			ChassisNo:      in.ChassisNo,
			LeasingCompany: in.Lease.LeasingCompany,
			AmountDue:      in.Lease.AmountDue,
		}
		if err := config.DB.Create(&lease).Error; err != nil {
			rollbackPending(&pending)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not record lease collection", "error": err.Error()})
			return
		}
		pending.LeaseCollectionID = &lease.ID
		_ = config.DB.Save(&pending).Error
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Sale pending confirmation",
		"token":      pending.Token,
		"profit_lkr": profit,
		"data":       sale,
	})
}

func advanceAmountsFor(chassis string) []float64 {
	var payments []models.AdvancePayment
	_ = config.DB.Where("chassis_no = ?", chassis).Find(&payments).Error
	return paymentAmounts(payments)
}

// rollbackPending deletes whatever rows the pending sale has written, newest
// first, and marks it cancelled.
func rollbackPending(pending *models.PendingSale) {
	if pending.LeaseCollectionID != nil {
		_ = config.DB.Delete(&models.LeaseCollection{}, *pending.LeaseCollectionID).Error
	}
	if pending.TransactionDetailID != nil {
		_ = config.DB.Delete(&models.TransactionDetail{}, *pending.TransactionDetailID).Error
	}
	if pending.SaleID != nil {
		_ = config.DB.Delete(&models.Sale{}, *pending.SaleID).Error
	}
	_ = config.DB.Model(pending).Update("status", models.PendingSaleCancelled).Error
}

func loadPending(c *gin.Context) (*models.PendingSale, bool) {
	var pending models.PendingSale
	if err := config.DB.Where("token = ?", c.Param("token")).First(&pending).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pending sale not found"})
		return nil, false
	}
	if pending.Status != models.PendingSalePending {
		c.JSON(http.StatusConflict, gin.H{"message": "Sale already " + string(pending.Status)})
		return nil, false
	}
	return &pending, true
}

// ConfirmSale is the single commit point: the vehicle flips to sold and the
// pending record is closed.
func ConfirmSale(c *gin.Context) {
	pending, ok := loadPending(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Vehicle{}).
			Where("chassis_no = ?", pending.ChassisNo).
			Update("status", models.StatusSold).Error; err != nil {
			return err
		}
		return tx.Model(pending).Update("status", models.PendingSaleConfirmed).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not confirm sale", "error": err.Error()})
		return
	}
	utils.Success(c, "Sale confirmed", gin.H{"chassis_no": pending.ChassisNo, "status": models.StatusSold})
}

// CancelSale undoes an unconfirmed sale: every row the flow wrote is deleted
// and the vehicle remains available.
func CancelSale(c *gin.Context) {
	pending, ok := loadPending(c)
	if !ok {
		return
	}

	rollbackPending(pending)
	utils.Success(c, "Sale cancelled", gin.H{"chassis_no": pending.ChassisNo, "status": models.StatusAvailable})
}

func GetSale(c *gin.Context) {
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
	hasDetail := config.DB.Where("chassis_no = ?", chassis).First(&detail).Error == nil

	resp := gin.H{"data": sale}
	if hasDetail {
		resp["detail"] = detail
	}
	c.JSON(http.StatusOK, resp)
}
