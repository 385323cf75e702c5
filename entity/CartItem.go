package entity

import (
	"gorm.io/gorm"
)

// CartItem holds no stored line total; totals are recomputed from
// UnitPrice*Quantity on every read. Quantity is never persisted below 1 --
// an adjustment that would reach zero deletes the row instead.
type CartItem struct {
	gorm.Model
	CartID uint `json:"-"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`

	Name      string `json:"name" gorm:"size:200"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}
