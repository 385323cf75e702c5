package entity

import (
	"gorm.io/gorm"
)

// Cart is one-per-user and locked to a single vendor while it has items.
// VendorID 0 means the cart is unlocked and the next add sets the vendor.
type Cart struct {
	gorm.Model
	UserID   uint   `json:"-" gorm:"uniqueIndex"`
	User     User   `json:"-"`
	VendorID uint   `json:"vendor_id"`
	Vendor   Vendor `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
