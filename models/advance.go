package models

import "time"

// Advance is the customer snapshot and agreed selling price captured at the
// first advance payment. At most one per chassis; the payments themselves live
// in AdvancePayment as an append-only ledger.
type Advance struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ChassisNo string `gorm:"uniqueIndex;size:60;not null" json:"chassis_no"`

	CustomerName    string `gorm:"size:180;not null" json:"customer_name"`
	CustomerPhone   string `gorm:"size:40" json:"customer_phone"`
	CustomerAddress string `gorm:"size:255" json:"customer_address"`
	CustomerNIC     string `gorm:"size:30" json:"customer_nic"`

	SellingPrice float64 `gorm:"not null" json:"selling_price"` // LKR, agreed at first advance

	Payments []AdvancePayment `gorm:"foreignKey:ChassisNo;references:ChassisNo" json:"payments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdvancePayment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ChassisNo string `gorm:"index;size:60;not null" json:"chassis_no"`

	Amount      float64   `gorm:"not null" json:"amount"` // LKR
	PaymentDate time.Time `gorm:"not null" json:"payment_date"`
	ReceiptNo   string    `gorm:"size:64" json:"receipt_no"`

	// Optional bank-transfer tagging
	BankName   string `gorm:"size:120" json:"bank_name,omitempty"`
	BankBranch string `gorm:"size:120" json:"bank_branch,omitempty"`
	Reference  string `gorm:"size:120" json:"reference,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
