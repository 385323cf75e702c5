package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots the menu item's name and price at order time so later
// menu edits never rewrite order history.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	MenuItemID uint `json:"menu_item_id"`

	NameSnapshot  string `json:"name" gorm:"size:200"`
	PriceSnapshot int64  `json:"price"`
	Quantity      int    `json:"quantity" gorm:"default:1"`
	Notes         string `json:"notes"`
}
