package models

import (
	"time"

	"gorm.io/datatypes"
)

type Sale struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ChassisNo string `gorm:"uniqueIndex;size:60;not null" json:"chassis_no"`

	SoldPrice      float64   `gorm:"not null" json:"sold_price"`
	SoldCurrency   string    `gorm:"size:3;not null" json:"sold_currency"` // JPY | LKR
	ConversionRate float64   `json:"conversion_rate"`                      // rate used when quoted in JPY
	ProfitLKR      float64   `json:"profit_lkr"`                           // snapshot at sale time, never recomputed
	SoldDate       time.Time `gorm:"not null" json:"sold_date"`

	CustomerName    string `gorm:"size:180" json:"customer_name"`
	CustomerPhone   string `gorm:"size:40" json:"customer_phone"`
	CustomerAddress string `gorm:"size:255" json:"customer_address"`
	CustomerNIC     string `gorm:"size:30" json:"customer_nic"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionDetail is the richer breakdown behind a sale, kept to regenerate
// the transaction summary document. Cheques and other charges are stored as
// JSON snapshots.
type TransactionDetail struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ChassisNo string `gorm:"index;size:60;not null" json:"chassis_no"`

	InvoicePrice float64 `json:"invoice_price"`

	LeasingUsed    bool    `json:"leasing_used"`
	LeasingCompany string  `gorm:"size:180" json:"leasing_company"`
	LeaseAmount    float64 `json:"lease_amount"`

	CashAmount float64 `json:"cash_amount"`

	// [{"bank": "...", "cheque_no": "...", "amount": 0}]
	Cheques datatypes.JSON `json:"cheques"`
	// {"registration": 0, "valuation": 0, "r_licence": 0}
	OtherCharges datatypes.JSON `json:"other_charges"`

	BalanceSettlement float64 `json:"balance_settlement"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Cheque is one entry of TransactionDetail.Cheques.
type Cheque struct {
	Bank     string  `json:"bank"`
	ChequeNo string  `json:"cheque_no"`
	Amount   float64 `json:"amount"`
}

// OtherCharges are ancillary charges tracked additively; they never reduce
// the settlement amount.
type OtherCharges struct {
	Registration float64 `json:"registration"`
	Valuation    float64 `json:"valuation"`
	RLicence     float64 `json:"r_licence"`
}

// LeaseCollection is an amount due from a leasing company against a sold
// vehicle, with its itemized settlement once collected.
type LeaseCollection struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ChassisNo string `gorm:"index;size:60;not null" json:"chassis_no"`

	LeasingCompany string  `gorm:"size:180;not null" json:"leasing_company"`
	AmountDue      float64 `gorm:"not null" json:"amount_due"`

	Collected     bool       `gorm:"default:false;index" json:"collected"`
	CollectedDate *time.Time `json:"collected_date"`

	ChequeAmount       float64 `json:"cheque_amount"`
	ChequeNo           string  `gorm:"size:60" json:"cheque_no"`
	PersonalLoanAmount float64 `json:"personal_loan_amount"`
	Note               string  `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
