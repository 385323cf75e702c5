package services

import (
	"strings"
	"time"

	"campusfood/entity"
	"campusfood/pkg/apperr"
	"campusfood/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	CartRepo   *repository.CartRepository
	MenuRepo   *repository.MenuRepository
	VendorRepo *repository.VendorRepository

	Notifier *NotificationService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	carts *repository.CartRepository,
	menus *repository.MenuRepository,
	vendors *repository.VendorRepository,
	notifier *NotificationService,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: carts, MenuRepo: menus,
		VendorRepo: vendors, Notifier: notifier,
	}
}

// ---------------- Views ----------------

type OrderItemView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Notes    string `json:"notes,omitempty"`
}

// OrderView is the wire shape of an order record, including the status
// projection for the requesting role.
type OrderView struct {
	OrderID          uint              `json:"order_id"`
	VendorID         uint              `json:"vendor_id"`
	VendorName       string            `json:"vendor_name"`
	CustomerID       uint              `json:"customer_id"`
	CustomerName     string            `json:"customer_name,omitempty"`
	PlacedAt         time.Time         `json:"placed_at"`
	ScheduledFor     time.Time         `json:"scheduled_for"`
	TotalAmount      int64             `json:"total_amount"`
	Status           entity.Status     `json:"status"`
	PaymentStatus    string            `json:"payment_status"`
	PickupOrDelivery string            `json:"pickup_or_delivery"`
	Notes            string            `json:"notes,omitempty"`
	EstimatedReadyAt *time.Time        `json:"estimated_ready_at,omitempty"`
	StatusView       entity.StatusView `json:"status_view"`
	Items            []OrderItemView   `json:"items"`
}

func makeOrderView(o *entity.Order, role entity.Role) *OrderView {
	v := &OrderView{
		OrderID:          o.ID,
		VendorID:         o.VendorID,
		VendorName:       o.Vendor.VendorName,
		CustomerID:       o.CustomerID,
		PlacedAt:         o.PlacedAt,
		ScheduledFor:     o.ScheduledFor,
		TotalAmount:      o.TotalAmount,
		Status:           o.Status,
		PaymentStatus:    o.PaymentStatus,
		PickupOrDelivery: o.PickupOrDelivery,
		Notes:            o.Notes,
		EstimatedReadyAt: o.EstimatedReadyAt,
		StatusView:       entity.ProjectStatus(o.Status, role),
		Items:            make([]OrderItemView, 0, len(o.Items)),
	}
	if role == entity.RoleVendor {
		v.CustomerName = o.Customer.FullName
	}
	for _, it := range o.Items {
		v.Items = append(v.Items, OrderItemView{
			ID:       it.ID,
			Name:     it.NameSnapshot,
			Quantity: it.Quantity,
			Price:    it.PriceSnapshot,
			Notes:    it.Notes,
		})
	}
	return v
}

// ---------------- Pickup schedule ----------------

const pickupLayout = "2006-01-02T15:04:05"

// CombinePickup joins a date and a clock time into one local timestamp.
// The campus runs in a single timezone, so no zone conversion happens here.
func CombinePickup(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, apperr.ErrMissingSchedule
	}
	ts, err := time.ParseInLocation(pickupLayout, date+"T"+clock+":00", time.Local)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid pickup date or time")
	}
	return ts, nil
}

// ---------------- Submission pipeline ----------------

type orderLine struct {
	menuItemID uint
	name       string
	unitPrice  int64
	quantity   int
	notes      string
}

type CheckoutIn struct {
	PickupDate string `json:"pickup_date"`
	PickupTime string `json:"pickup_time"`
	Notes      string `json:"order_notes"`
}

// Checkout builds an order from the user's cart. Precondition order matters:
// schedule first, then cart contents, each failing fast with its own
// validation error before anything is written. The cart itself is left
// untouched -- clearing it after success is the caller's responsibility, so
// a failed submission never loses the user's selections.
func (s *OrderService) Checkout(customerID uint, in *CheckoutIn) (*OrderView, error) {
	scheduledFor, err := CombinePickup(in.PickupDate, in.PickupTime)
	if err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.GetCartWithItems(customerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 || cart.VendorID == 0 {
		return nil, apperr.ErrEmptyCart
	}

	lines := make([]orderLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, orderLine{
			menuItemID: it.MenuItemID,
			name:       it.Name,
			unitPrice:  it.UnitPrice,
			quantity:   it.Quantity,
			notes:      it.Notes,
		})
	}

	return s.submit(customerID, cart.VendorID, scheduledFor, in.Notes, lines)
}

type CreateOrderItemIn struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"min=1"`
	Notes      string `json:"notes"`
}

type CreateOrderIn struct {
	VendorID   uint                `json:"vendor_id" binding:"required"`
	PickupTime string              `json:"pickup_time" binding:"required"`
	Notes      string              `json:"order_notes"`
	Items      []CreateOrderItemIn `json:"items" binding:"required"`
}

// Create places an order from an explicit item list, re-reading current menu
// prices for the snapshots. Items must all belong to the vendor and be
// available.
func (s *OrderService) Create(customerID uint, in *CreateOrderIn) (*OrderView, error) {
	if strings.TrimSpace(in.PickupTime) == "" {
		return nil, apperr.ErrMissingSchedule
	}
	scheduledFor, err := time.ParseInLocation(pickupLayout, strings.TrimSpace(in.PickupTime), time.Local)
	if err != nil {
		return nil, apperr.Validation("invalid pickup time")
	}
	if len(in.Items) == 0 {
		return nil, apperr.ErrEmptyCart
	}

	itemIDs := make([]uint, 0, len(in.Items))
	for _, it := range in.Items {
		itemIDs = append(itemIDs, it.MenuItemID)
	}
	ok, err := s.MenuRepo.ItemsBelongToVendor(itemIDs, in.VendorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Validation("menu item does not belong to this vendor")
	}

	lines := make([]orderLine, 0, len(in.Items))
	for _, it := range in.Items {
		m, err := s.MenuRepo.ItemBasics(it.MenuItemID)
		if err != nil {
			return nil, apperr.Validation("menu item not found")
		}
		if !m.Available {
			return nil, apperr.ErrItemUnavailable
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, orderLine{
			menuItemID: m.ID,
			name:       m.Name,
			unitPrice:  m.Price,
			quantity:   qty,
			notes:      it.Notes,
		})
	}

	return s.submit(customerID, in.VendorID, scheduledFor, in.Notes, lines)
}

// submit is the single write path for new orders. The total is computed
// fresh from the lines; clients never supply it. No retry happens here --
// the order intent must not be double-submitted silently.
func (s *OrderService) submit(customerID, vendorID uint, scheduledFor time.Time, notes string, lines []orderLine) (*OrderView, error) {
	if scheduledFor.Before(time.Now().Truncate(time.Minute)) {
		return nil, apperr.ErrPastSchedule
	}

	var total int64
	for _, l := range lines {
		total += l.unitPrice * int64(l.quantity)
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerID:       customerID,
			VendorID:         vendorID,
			PlacedAt:         time.Now(),
			ScheduledFor:     scheduledFor,
			TotalAmount:      total,
			Status:           entity.StatusPending,
			PaymentStatus:    "pending",
			PickupOrDelivery: "pickup",
			Notes:            notes,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:       order.ID,
				MenuItemID:    l.menuItemID,
				NameSnapshot:  l.name,
				PriceSnapshot: l.unitPrice,
				Quantity:      l.quantity,
				Notes:         l.notes,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	placed, err := s.Repo.GetOrderForCustomer(customerID, orderID)
	if err != nil {
		return nil, err
	}

	s.Notifier.OrderPlaced(placed)

	return makeOrderView(placed, entity.RoleCustomer), nil
}

// ---------------- Reads ----------------

func (s *OrderService) ListForCustomer(customerID uint, limit int) ([]*OrderView, error) {
	orders, err := s.Repo.ListForCustomer(customerID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*OrderView, 0, len(orders))
	for i := range orders {
		out = append(out, makeOrderView(&orders[i], entity.RoleCustomer))
	}
	return out, nil
}

func (s *OrderService) DetailForCustomer(customerID, orderID uint) (*OrderView, error) {
	o, err := s.Repo.GetOrderForCustomer(customerID, orderID)
	if err != nil {
		return nil, err
	}
	return makeOrderView(o, entity.RoleCustomer), nil
}

func (s *OrderService) ListForVendor(actor entity.Actor, vendorID uint, status *entity.Status, limit int) ([]*OrderView, error) {
	if actor.Role != entity.RoleVendor || actor.VendorID != vendorID {
		return nil, apperr.ErrForbidden
	}
	if status != nil && !status.Valid() {
		return nil, apperr.Validation("unknown status %q", string(*status))
	}
	orders, err := s.Repo.ListForVendor(vendorID, status, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*OrderView, 0, len(orders))
	for i := range orders {
		out = append(out, makeOrderView(&orders[i], entity.RoleVendor))
	}
	return out, nil
}

func (s *OrderService) DetailForVendor(actor entity.Actor, vendorID, orderID uint) (*OrderView, error) {
	if actor.Role != entity.RoleVendor || actor.VendorID != vendorID {
		return nil, apperr.ErrForbidden
	}
	o, err := s.Repo.GetOrderForVendor(vendorID, orderID)
	if err != nil {
		return nil, err
	}
	return makeOrderView(o, entity.RoleVendor), nil
}

// ---------------- Stats ----------------

func (s *OrderService) StatsForVendor(actor entity.Actor, vendorID uint) (*repository.VendorStats, error) {
	if actor.Role != entity.RoleVendor || actor.VendorID != vendorID {
		return nil, apperr.ErrForbidden
	}
	return s.Repo.StatsForVendor(vendorID)
}

func (s *OrderService) StatsForCustomer(customerID uint) (*repository.CustomerStats, error) {
	return s.Repo.StatsForCustomer(customerID)
}
