package repository

import (
	"campusfood/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) CreateMenu(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) GetMenuForVendor(vendorID uint) (*entity.Menu, error) {
	var m entity.Menu
	err := r.DB.Where("vendor_id = ?", vendorID).Preload("Items").First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) AddItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) GetItem(vendorID, itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Where("id = ? AND vendor_id = ?", itemID, vendorID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) UpdateItem(vendorID, itemID uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND vendor_id = ?", itemID, vendorID).
		Updates(updates).Error
}

func (r *MenuRepository) DeleteItem(vendorID, itemID uint) (int64, error) {
	res := r.DB.Where("id = ? AND vendor_id = ?", itemID, vendorID).
		Delete(&entity.MenuItem{})
	return res.RowsAffected, res.Error
}

// ItemBasics fetches what order and cart logic needs without the full row.
func (r *MenuRepository) ItemBasics(id uint) (entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Select("id, name, price, vendor_id, available").First(&item, id).Error
	return item, err
}

// ItemsBelongToVendor verifies every id references a menu item of the vendor.
func (r *MenuRepository) ItemsBelongToVendor(itemIDs []uint, vendorID uint) (bool, error) {
	if len(itemIDs) == 0 {
		return true, nil
	}
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).
		Where("id IN ? AND vendor_id = ?", itemIDs, vendorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(itemIDs)), nil
}
