package services

import (
	"errors"
	"strings"

	"campusfood/entity"
	"campusfood/pkg/apperr"
	"campusfood/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	MenuRepo   *repository.MenuRepository
	VendorRepo *repository.VendorRepository
}

func NewMenuService(menus *repository.MenuRepository, vendors *repository.VendorRepository) *MenuService {
	return &MenuService{MenuRepo: menus, VendorRepo: vendors}
}

func (s *MenuService) requireOwner(userID, vendorID uint) error {
	ok, err := s.VendorRepo.IsOwnedBy(vendorID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrForbidden
	}
	return nil
}

type CreateMenuIn struct {
	Title string `json:"title" binding:"required"`
}

func (s *MenuService) CreateMenu(userID, vendorID uint, in *CreateMenuIn) (*entity.Menu, error) {
	if err := s.requireOwner(userID, vendorID); err != nil {
		return nil, err
	}
	if _, err := s.MenuRepo.GetMenuForVendor(vendorID); err == nil {
		return nil, apperr.Validation("vendor already has a menu")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m := &entity.Menu{
		VendorID: vendorID,
		Title:    strings.TrimSpace(in.Title),
		IsActive: true,
	}
	if err := s.MenuRepo.CreateMenu(m); err != nil {
		return nil, err
	}
	m.Items = []entity.MenuItem{}
	return m, nil
}

type MenuItemIn struct {
	Name                   string `json:"name" binding:"required"`
	Description            string `json:"description"`
	Price                  int64  `json:"price" binding:"required,gt=0"`
	Available              *bool  `json:"available"`
	PreparationTimeMinutes *int   `json:"preparation_time_minutes"`
	ImageURL               string `json:"image_url"`
}

func (s *MenuService) AddItem(userID, vendorID, menuID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.requireOwner(userID, vendorID); err != nil {
		return nil, err
	}
	menu, err := s.MenuRepo.GetMenuForVendor(vendorID)
	if err != nil {
		return nil, err
	}
	if menu.ID != menuID {
		return nil, apperr.ErrNotFound
	}

	item := &entity.MenuItem{
		MenuID:                 menu.ID,
		VendorID:               vendorID,
		Name:                   strings.TrimSpace(in.Name),
		Description:            in.Description,
		Price:                  in.Price,
		Available:              true,
		PreparationTimeMinutes: 15,
		ImageURL:               in.ImageURL,
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if in.PreparationTimeMinutes != nil {
		if *in.PreparationTimeMinutes < 0 {
			return nil, apperr.Validation("preparation_time_minutes must not be negative")
		}
		item.PreparationTimeMinutes = *in.PreparationTimeMinutes
	}
	if err := s.MenuRepo.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

type UpdateMenuItemIn struct {
	Name                   *string `json:"name"`
	Description            *string `json:"description"`
	Price                  *int64  `json:"price"`
	Available              *bool   `json:"available"`
	PreparationTimeMinutes *int    `json:"preparation_time_minutes"`
	ImageURL               *string `json:"image_url"`
}

func (s *MenuService) UpdateItem(userID, vendorID, itemID uint, in *UpdateMenuItemIn) (*entity.MenuItem, error) {
	if err := s.requireOwner(userID, vendorID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, apperr.Validation("price must be positive")
		}
		updates["price"] = *in.Price
	}
	if in.Available != nil {
		updates["available"] = *in.Available
	}
	if in.PreparationTimeMinutes != nil {
		if *in.PreparationTimeMinutes < 0 {
			return nil, apperr.Validation("preparation_time_minutes must not be negative")
		}
		updates["preparation_time_minutes"] = *in.PreparationTimeMinutes
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("nothing to update")
	}

	if err := s.MenuRepo.UpdateItem(vendorID, itemID, updates); err != nil {
		return nil, err
	}
	return s.MenuRepo.GetItem(vendorID, itemID)
}

func (s *MenuService) DeleteItem(userID, vendorID, itemID uint) error {
	if err := s.requireOwner(userID, vendorID); err != nil {
		return err
	}
	affected, err := s.MenuRepo.DeleteItem(vendorID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
