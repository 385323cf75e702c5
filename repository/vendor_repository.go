package repository

import (
	"campusfood/entity"

	"gorm.io/gorm"
)

type VendorRepository struct{ DB *gorm.DB }

func NewVendorRepository(db *gorm.DB) *VendorRepository { return &VendorRepository{DB: db} }

func (r *VendorRepository) Create(v *entity.Vendor) error {
	return r.DB.Create(v).Error
}

func (r *VendorRepository) List() ([]entity.Vendor, error) {
	var out []entity.Vendor
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *VendorRepository) GetByID(id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.Preload("Menu").Preload("Menu.Items").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) FindByUserID(userID uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.Where("user_id = ?", userID).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) IsOwnedBy(vendorID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Vendor{}).
		Where("id = ? AND user_id = ?", vendorID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *VendorRepository) NameOf(vendorID uint) (string, error) {
	var row struct{ VendorName string }
	err := r.DB.Model(&entity.Vendor{}).
		Select("vendor_name").Where("id = ?", vendorID).
		Limit(1).Scan(&row).Error
	return row.VendorName, err
}
