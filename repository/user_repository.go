package repository

import (
	"time"

	"campusfood/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) TouchLastLogin(id uint) error {
	now := time.Now()
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("last_login", &now).Error
}

// ---------------- Email verification ----------------

func (r *UserRepository) CreateVerification(v *entity.EmailVerification) error {
	return r.DB.Create(v).Error
}

func (r *UserRepository) FindActiveVerification(userID uint, code string) (*entity.EmailVerification, error) {
	var v entity.EmailVerification
	err := r.DB.Where("user_id = ? AND code = ? AND is_used = ?", userID, code, false).
		Order("id DESC").First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *UserRepository) MarkVerified(tx *gorm.DB, userID, verificationID uint) error {
	if err := tx.Model(&entity.EmailVerification{}).
		Where("id = ?", verificationID).Update("is_used", true).Error; err != nil {
		return err
	}
	return tx.Model(&entity.User{}).
		Where("id = ?", userID).Update("is_email_verified", true).Error
}
