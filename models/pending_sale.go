package models

import "time"

type PendingSaleStatus string

const (
	PendingSalePending   PendingSaleStatus = "pending"
	PendingSaleConfirmed PendingSaleStatus = "confirmed"
	PendingSaleCancelled PendingSaleStatus = "cancelled"
)

// PendingSale tracks a mark-sold flow between "Sell Now" and the user's final
// confirmation. Each dependent row written so far is recorded here so a cancel
// can delete exactly what was created; the vehicle only flips to sold on
// confirm.
type PendingSale struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Token     string `gorm:"uniqueIndex;size:40;not null" json:"token"` // uuid
	ChassisNo string `gorm:"index;size:60;not null" json:"chassis_no"`

	Status PendingSaleStatus `gorm:"size:12;index;default:pending" json:"status"`

	SaleID              *uint `json:"sale_id"`
	TransactionDetailID *uint `json:"transaction_detail_id"`
	LeaseCollectionID   *uint `json:"lease_collection_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
