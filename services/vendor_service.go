package services

import (
	"errors"

	"campusfood/entity"
	"campusfood/repository"

	"gorm.io/gorm"
)

type VendorService struct {
	VendorRepo *repository.VendorRepository
	MenuRepo   *repository.MenuRepository
}

func NewVendorService(vendors *repository.VendorRepository, menus *repository.MenuRepository) *VendorService {
	return &VendorService{VendorRepo: vendors, MenuRepo: menus}
}

func (s *VendorService) List() ([]entity.Vendor, error) {
	return s.VendorRepo.List()
}

func (s *VendorService) Detail(vendorID uint) (*entity.Vendor, error) {
	return s.VendorRepo.GetByID(vendorID)
}

// MenuForCustomer returns the vendor plus its menu with only available items
// worth showing. A vendor without a menu yet browses as an empty menu rather
// than an error.
func (s *VendorService) MenuForCustomer(vendorID uint) (*entity.Vendor, *entity.Menu, error) {
	vendor, err := s.VendorRepo.GetByID(vendorID)
	if err != nil {
		return nil, nil, err
	}

	menu, err := s.MenuRepo.GetMenuForVendor(vendorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vendor, &entity.Menu{VendorID: vendorID, Items: []entity.MenuItem{}}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if menu.Items == nil {
		menu.Items = []entity.MenuItem{}
	}
	return vendor, menu, nil
}
