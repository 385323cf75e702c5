package entity

import (
	"gorm.io/gorm"
)

// Menu is one-per-vendor; items hang off both the menu and the vendor so
// vendor-scoped queries never need the join.
type Menu struct {
	gorm.Model
	VendorID uint   `json:"-" gorm:"uniqueIndex"`
	Title    string `json:"title" gorm:"size:100"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	Items []MenuItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
