package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	MenuID   uint `json:"-"`
	VendorID uint `json:"-"`

	Name        string `json:"name" gorm:"size:200"`
	Description string `json:"description"`
	// Price is whole currency units; never a float so cart math cannot drift.
	Price                  int64  `json:"price"`
	Available              bool   `json:"available" gorm:"default:true"`
	PreparationTimeMinutes int    `json:"preparation_time_minutes" gorm:"default:15"`
	ImageURL               string `json:"image_url"`
}
