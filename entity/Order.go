package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order is the server-of-record for a placed order. Rows are never deleted;
// a finished order simply carries a terminal status.
type Order struct {
	gorm.Model
	CustomerID uint `json:"customer_id"`
	Customer   User `json:"-" gorm:"foreignKey:CustomerID"`

	VendorID uint   `json:"vendor_id"`
	Vendor   Vendor `json:"-"`

	PlacedAt     time.Time `json:"placed_at"`
	ScheduledFor time.Time `json:"scheduled_for"`

	TotalAmount      int64      `json:"total_amount"`
	Status           Status     `json:"status" gorm:"size:20;default:pending"`
	PaymentStatus    string     `json:"payment_status" gorm:"size:20;default:pending"`
	PickupOrDelivery string     `json:"pickup_or_delivery" gorm:"size:20;default:pickup"`
	Notes            string     `json:"notes"`
	EstimatedReadyAt *time.Time `json:"estimated_ready_at,omitempty"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
