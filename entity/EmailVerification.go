package entity

import (
	"time"

	"gorm.io/gorm"
)

type EmailVerification struct {
	gorm.Model
	UserID    uint      `json:"userId"`
	User      User      `json:"-"`
	Code      string    `json:"-" gorm:"size:36;index"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsUsed    bool      `json:"isUsed"`
}
