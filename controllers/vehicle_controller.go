package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/models"
	"go-postgres-carbooks/pricing"
	"go-postgres-carbooks/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CostInput carries every cost figure of the add-vehicle wizard. UndialAmount
// is a pointer: when the client omits it the server suggests CIF - invoice,
// when it is present (even zero) the manual value wins and the sum is not
// re-validated.
type CostInput struct {
	BidPrice        float64 `json:"bid_price"`
	Commission      float64 `json:"commission"`
	Insurance       float64 `json:"insurance"`
	InlandTransport float64 `json:"inland_transport"`
	OtherCostLabel  string  `json:"other_cost_label"`
	OtherCost       float64 `json:"other_cost"`

	InvoiceAmount float64  `json:"invoice_amount"`
	InvoiceRate   float64  `json:"invoice_rate"`
	UndialAmount  *float64 `json:"undial_amount"`
	UndialRate    float64  `json:"undial_rate"`

	TaxLKR       float64 `json:"tax_lkr"`
	ClearanceLKR float64 `json:"clearance_lkr"`
	TransportLKR float64 `json:"transport_lkr"`
	Extra1Label  string  `json:"extra1_label"`
	Extra1LKR    float64 `json:"extra1_lkr"`
	Extra2Label  string  `json:"extra2_label"`
	Extra2LKR    float64 `json:"extra2_lkr"`
	Extra3Label  string  `json:"extra3_label"`
	Extra3LKR    float64 `json:"extra3_lkr"`
}

type VehicleInput struct {
	ChassisNo       string `json:"chassis_no" binding:"required"`
	Maker           string `json:"maker" binding:"required"`
	Model           string `json:"model" binding:"required"`
	ManufactureYear int    `json:"manufacture_year"`
	Mileage         int64  `json:"mileage"`
	Status          string `json:"status"` // not_available | available

	CostInput
}

// applyCosts writes the cost fields onto the vehicle and recomputes every
// cached total through the pricing package.
func applyCosts(v *models.Vehicle, in CostInput) {
	v.BidPrice = in.BidPrice
	v.Commission = in.Commission
	v.Insurance = in.Insurance
	v.InlandTransport = in.InlandTransport
	v.OtherCostLabel = in.OtherCostLabel
	v.OtherCost = in.OtherCost

	cif := pricing.CIFTotal(pricing.JapanCosts{
		Bid:             in.BidPrice,
		Commission:      in.Commission,
		Insurance:       in.Insurance,
		InlandTransport: in.InlandTransport,
		Other:           in.OtherCost,
	})
	v.CIFTotalJPY = cif

	v.InvoiceAmount = in.InvoiceAmount
	v.InvoiceRate = in.InvoiceRate
	if in.UndialAmount != nil {
		v.UndialAmount = *in.UndialAmount
	} else {
		v.UndialAmount = pricing.SplitUndial(cif, in.InvoiceAmount)
	}
	v.UndialRate = in.UndialRate

	v.JapanTotalLKR = pricing.JapanTotal(v.InvoiceAmount, v.InvoiceRate, v.UndialAmount, v.UndialRate)

	v.TaxLKR = in.TaxLKR
	v.ClearanceLKR = in.ClearanceLKR
	v.TransportLKR = in.TransportLKR
	v.Extra1Label = in.Extra1Label
	v.Extra1LKR = in.Extra1LKR
	v.Extra2Label = in.Extra2Label
	v.Extra2LKR = in.Extra2LKR
	v.Extra3Label = in.Extra3Label
	v.Extra3LKR = in.Extra3LKR

	v.FinalTotalLKR = pricing.FinalTotal(v.JapanTotalLKR, pricing.LocalCosts{
		Tax:       in.TaxLKR,
		Clearance: in.ClearanceLKR,
		Transport: in.TransportLKR,
		Extra1:    in.Extra1LKR,
		Extra2:    in.Extra2LKR,
		Extra3:    in.Extra3LKR,
	})
	v.BuyPrice = v.FinalTotalLKR
	v.BuyCurrency = pricing.CurrencyLKR
}

func GetAllVehicles(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 50
	}

	q := config.DB.Model(&models.Vehicle{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if maker := c.Query("maker"); maker != "" {
		q = q.Where("maker = ?", maker)
	}
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("chassis_no LIKE ? OR model LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load vehicles", "error": err.Error()})
		return
	}

	var vehicles []models.Vehicle
	err := q.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&vehicles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load vehicles", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"data":      vehicles,
	})
}

func GetVehicleByChassis(c *gin.Context) {
	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", c.Param("chassis")).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load vehicle", "error": err.Error()})
		return
	}

	// incremental totals the cost screen shows next to each local cost field
	running := pricing.RunningTotals(vehicle.JapanTotalLKR, pricing.LocalCosts{
		Tax:       vehicle.TaxLKR,
		Clearance: vehicle.ClearanceLKR,
		Transport: vehicle.TransportLKR,
		Extra1:    vehicle.Extra1LKR,
		Extra2:    vehicle.Extra2LKR,
		Extra3:    vehicle.Extra3LKR,
	})

	c.JSON(http.StatusOK, gin.H{
		"data":           vehicle,
		"running_totals": running,
	})
}

func CreateVehicle(c *gin.Context) {
	var in VehicleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	status := models.VehicleStatus(in.Status)
	if status == "" {
		status = models.StatusNotAvailable
	}
	if status != models.StatusAvailable && status != models.StatusNotAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be available or not_available"})
		return
	}

	vehicle := models.Vehicle{
		ChassisNo:       in.ChassisNo,
		Maker:           in.Maker,
		Model:           in.Model,
		ManufactureYear: in.ManufactureYear,
		Mileage:         in.Mileage,
		Status:          status,
	}
	applyCosts(&vehicle, in.CostInput)

	if err := config.DB.Create(&vehicle).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"message": "Chassis number already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create vehicle", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Vehicle created", "data": vehicle})
}

type VehicleUpdateInput struct {
	Maker           *string `json:"maker,omitempty"`
	Model           *string `json:"model,omitempty"`
	ManufactureYear *int    `json:"manufacture_year,omitempty"`
	Mileage         *int64  `json:"mileage,omitempty"`
	Colour          *string `json:"colour,omitempty"`
	FuelType        *string `json:"fuel_type,omitempty"`
	EngineCapacity  *string `json:"engine_capacity,omitempty"`
	Seating         *int    `json:"seating,omitempty"`
}

func UpdateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", c.Param("chassis")).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
		return
	}

	var in VehicleUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]any{}
	if in.Maker != nil {
		updates["maker"] = *in.Maker
	}
	if in.Model != nil {
		updates["model"] = *in.Model
	}
	if in.ManufactureYear != nil {
		updates["manufacture_year"] = *in.ManufactureYear
	}
	if in.Mileage != nil {
		updates["mileage"] = *in.Mileage
	}
	if in.Colour != nil {
		updates["colour"] = *in.Colour
	}
	if in.FuelType != nil {
		updates["fuel_type"] = *in.FuelType
	}
	if in.EngineCapacity != nil {
		updates["engine_capacity"] = *in.EngineCapacity
	}
	if in.Seating != nil {
		updates["seating"] = *in.Seating
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}
	updates["updated_at"] = time.Now()

	if err := config.DB.Model(&vehicle).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update vehicle", "error": err.Error()})
		return
	}
	utils.Success(c, "Vehicle updated", vehicle)
}

// UpdateVehicleCosts rewrites the whole cost sheet and re-caches the totals.
// A sold vehicle's costs stay editable; the profit stored on its sale row is a
// snapshot and is deliberately left untouched.
func UpdateVehicleCosts(c *gin.Context) {
	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", c.Param("chassis")).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
		return
	}

	var in CostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	applyCosts(&vehicle, in)

	if err := config.DB.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update costs", "error": err.Error()})
		return
	}
	utils.Success(c, "Costs updated", vehicle)
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

// SetVehicleStatus moves between not_available and available. The only way
// into sold is confirming a sale; there is no way back out of it here.
func SetVehicleStatus(c *gin.Context) {
	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", c.Param("chassis")).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
		return
	}

	var in StatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	next := models.VehicleStatus(in.Status)
	if next != models.StatusAvailable && next != models.StatusNotAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be available or not_available"})
		return
	}
	if vehicle.Status == models.StatusSold {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Sold vehicles cannot change status"})
		return
	}

	if err := config.DB.Model(&vehicle).Update("status", next).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update status", "error": err.Error()})
		return
	}
	utils.Success(c, "Status updated", gin.H{"chassis_no": vehicle.ChassisNo, "status": next})
}

// DeleteVehicle removes the vehicle and every row keyed to its chassis number
// in one transaction: advances, payments, sale, transaction details, lease
// collections and pending sales.
func DeleteVehicle(c *gin.Context) {
	chassis := c.Param("chassis")

	var vehicle models.Vehicle
	if err := config.DB.Where("chassis_no = ?", chassis).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.AdvancePayment{},
			&models.Advance{},
			&models.TransactionDetail{},
			&models.LeaseCollection{},
			&models.PendingSale{},
			&models.Sale{},
		} {
			if err := tx.Where("chassis_no = ?", chassis).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&vehicle).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete vehicle", "error": err.Error()})
		return
	}
	utils.Success(c, "Vehicle deleted", gin.H{"chassis_no": chassis})
}
