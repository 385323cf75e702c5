package entity

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	UserID            uint   `json:"-" gorm:"uniqueIndex"`
	User              User   `json:"-"`
	VendorName        string `json:"vendor_name" gorm:"size:200"`
	Location          string `json:"location"`
	PickupAvailable   bool   `json:"pickup_available" gorm:"default:true"`
	DeliveryAvailable bool   `json:"delivery_available"`

	Menu      *Menu      `json:"menu,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	MenuItems []MenuItem `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Orders    []Order    `json:"-"`
}
