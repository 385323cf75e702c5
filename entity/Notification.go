package entity

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id"`
	User    User   `json:"-"`
	Type    string `json:"type" gorm:"size:50"`
	Payload string `json:"payload"` // JSON-encoded event detail
	IsRead  bool   `json:"is_read"`
}
