package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email           string     `json:"email" gorm:"uniqueIndex;size:320"`
	Password        string     `json:"-"`
	Role            Role       `json:"role" gorm:"size:20"` // customer or vendor
	FullName        string     `json:"full_name" gorm:"size:200"`
	Phone           string     `json:"phone" gorm:"size:20"`
	IsEmailVerified bool       `json:"is_email_verified"`
	LastLogin       *time.Time `json:"last_login,omitempty"`

	VendorProfile *Vendor             `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Orders        []Order             `json:"-" gorm:"foreignKey:CustomerID"`
	Verifications []EmailVerification `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Notifications []Notification      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
