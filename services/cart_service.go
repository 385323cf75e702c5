package services

import (
	"campusfood/entity"
	"campusfood/pkg/apperr"
	"campusfood/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB         *gorm.DB
	CartRepo   *repository.CartRepository
	MenuRepo   *repository.MenuRepository
	VendorRepo *repository.VendorRepository
}

func NewCartService(db *gorm.DB, carts *repository.CartRepository, menus *repository.MenuRepository, vendors *repository.VendorRepository) *CartService {
	return &CartService{DB: db, CartRepo: carts, MenuRepo: menus, VendorRepo: vendors}
}

type AddToCartIn struct {
	VendorID   uint   `json:"vendor_id" binding:"required"`
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"min=1"`
	Notes      string `json:"notes"`
}

type CartView struct {
	VendorID   uint              `json:"vendor_id"`
	VendorName string            `json:"vendor_name,omitempty"`
	Items      []entity.CartItem `json:"items"`
	Subtotal   int64             `json:"subtotal"`
	Count      int               `json:"count"`
}

// Get renders the cart. Subtotal and count are recomputed from the lines on
// every call; no stored total is ever trusted.
func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{VendorID: c.VendorID, Items: c.Items}
	if view.Items == nil {
		view.Items = []entity.CartItem{}
	}
	for _, it := range c.Items {
		view.Subtotal += it.UnitPrice * int64(it.Quantity)
		view.Count += it.Quantity
	}
	if c.VendorID != 0 {
		if name, err := s.VendorRepo.NameOf(c.VendorID); err == nil {
			view.VendorName = name
		}
	}
	return view, nil
}

// Add inserts a line or merges into an existing one. Unavailable items are
// rejected, and the cart stays locked to a single vendor until emptied.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID, in.VendorID)
	if err != nil {
		return err
	}

	if c.VendorID != 0 && c.VendorID != in.VendorID {
		return apperr.ErrVendorMismatch
	}
	if c.VendorID == 0 {
		c.VendorID = in.VendorID
		if err := s.CartRepo.DB.Save(c).Error; err != nil {
			return err
		}
	}

	item, err := s.MenuRepo.ItemBasics(in.MenuItemID)
	if err != nil {
		return err
	}
	if item.VendorID != in.VendorID {
		return apperr.Validation("menu item does not belong to this vendor")
	}
	if !item.Available {
		return apperr.ErrItemUnavailable
	}

	line := &entity.CartItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   in.Quantity,
		Notes:      in.Notes,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// AdjustQuantity applies a signed delta; reaching zero removes the line.
func (s *CartService) AdjustQuantity(userID, itemID uint, delta int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.AdjustQuantity(tx, userID, itemID, delta)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
