package models

import "time"

type VehicleStatus string

const (
	StatusNotAvailable VehicleStatus = "not_available"
	StatusAvailable    VehicleStatus = "available"
	StatusSold         VehicleStatus = "sold"
)

type Vehicle struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ChassisNo string `gorm:"uniqueIndex;size:60;not null" json:"chassis_no"`

	Maker           string        `gorm:"size:80" json:"maker"`
	Model           string        `gorm:"size:120" json:"model"`
	ManufactureYear int           `json:"manufacture_year"`
	Mileage         int64         `json:"mileage"`
	Status          VehicleStatus `gorm:"size:20;index;default:not_available" json:"status"`

	// Japan-side costs (JPY)
	BidPrice        float64 `json:"bid_price"`
	Commission      float64 `json:"commission"`
	Insurance       float64 `json:"insurance"`
	InlandTransport float64 `json:"inland_transport"`
	OtherCostLabel  string  `gorm:"size:120" json:"other_cost_label"`
	OtherCost       float64 `json:"other_cost"`

	// Invoice/undial split (amounts JPY, rates LKR per JPY)
	InvoiceAmount float64 `json:"invoice_amount"`
	InvoiceRate   float64 `json:"invoice_rate"`
	UndialAmount  float64 `json:"undial_amount"`
	UndialRate    float64 `json:"undial_rate"`

	// Local costs (LKR)
	TaxLKR       float64 `json:"tax_lkr"`
	ClearanceLKR float64 `json:"clearance_lkr"`
	TransportLKR float64 `json:"transport_lkr"`
	Extra1Label  string  `gorm:"size:120" json:"extra1_label"`
	Extra1LKR    float64 `json:"extra1_lkr"`
	Extra2Label  string  `gorm:"size:120" json:"extra2_label"`
	Extra2LKR    float64 `json:"extra2_lkr"`
	Extra3Label  string  `gorm:"size:120" json:"extra3_label"`
	Extra3LKR    float64 `json:"extra3_lkr"`

	// Cached totals, recomputed on every cost write
	CIFTotalJPY   float64 `json:"cif_total_jpy"`
	JapanTotalLKR float64 `json:"japan_total_lkr"`
	FinalTotalLKR float64 `json:"final_total_lkr"`

	BuyPrice    float64 `json:"buy_price"`
	BuyCurrency string  `gorm:"size:3" json:"buy_currency"` // JPY | LKR

	// Descriptive fields filled at invoice generation; a non-empty engine no
	// is treated elsewhere as the "invoice generated" flag.
	EngineNo       string  `gorm:"size:60" json:"engine_no"`
	EngineCapacity string  `gorm:"size:30" json:"engine_capacity"`
	Colour         string  `gorm:"size:40" json:"colour"`
	FuelType       string  `gorm:"size:30" json:"fuel_type"`
	Seating        int     `json:"seating"`
	InvoiceNo      string  `gorm:"size:64;index" json:"invoice_no"`
	InvoicePrice   float64 `json:"invoice_price"`

	InvoiceDate *time.Time `json:"invoice_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
