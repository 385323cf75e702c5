package repository

import (
	"time"

	"campusfood/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Preload("Vendor").Preload("Customer").
		First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForCustomer(customerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND customer_id = ?", orderID, customerID).
		Preload("Items").Preload("Vendor").First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForVendor(vendorID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND vendor_id = ?", orderID, vendorID).
		Preload("Items").Preload("Vendor").Preload("Customer").First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForCustomer(customerID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).
		Preload("Items").Preload("Vendor").
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForVendor(vendorID uint, status *entity.Status, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Where("vendor_id = ?", vendorID)
	if status != nil {
		db = db.Where("status = ?", *status)
	}
	var out []entity.Order
	err := db.Preload("Items").Preload("Vendor").Preload("Customer").
		Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// UpdateStatusGuard moves an order from one status to another only when it
// still holds the expected current status. Zero rows affected means the
// order moved underneath the caller and nothing was written.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.Status, estimatedReadyAt *time.Time) (int64, error) {
	updates := map[string]any{"status": to}
	if estimatedReadyAt != nil {
		updates["estimated_ready_at"] = estimatedReadyAt
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// ---------------- Stats ----------------

type VendorStats struct {
	TotalOrders    int64                   `json:"total_orders"`
	OrdersByStatus map[entity.Status]int64 `json:"orders_by_status"`
	Revenue        int64                   `json:"revenue"`
	OrdersToday    int64                   `json:"orders_today"`
}

func (r *OrderRepository) StatsForVendor(vendorID uint) (*VendorStats, error) {
	stats := &VendorStats{OrdersByStatus: map[entity.Status]int64{}}

	if err := r.DB.Model(&entity.Order{}).
		Where("vendor_id = ?", vendorID).
		Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Status entity.Status
		N      int64
	}
	if err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS n").
		Where("vendor_id = ?", vendorID).
		Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.OrdersByStatus[row.Status] = row.N
	}

	var revenue struct{ Total int64 }
	if err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("vendor_id = ? AND status = ?", vendorID, entity.StatusCompleted).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	stats.Revenue = revenue.Total

	today := time.Now().Truncate(24 * time.Hour)
	if err := r.DB.Model(&entity.Order{}).
		Where("vendor_id = ? AND placed_at >= ?", vendorID, today).
		Count(&stats.OrdersToday).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

type CustomerStats struct {
	TotalOrders  int64 `json:"total_orders"`
	ActiveOrders int64 `json:"active_orders"`
	TotalSpent   int64 `json:"total_spent"`
}

func (r *OrderRepository) StatsForCustomer(customerID uint) (*CustomerStats, error) {
	stats := &CustomerStats{}

	if err := r.DB.Model(&entity.Order{}).
		Where("customer_id = ?", customerID).
		Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	active := []entity.Status{
		entity.StatusPending, entity.StatusAccepted,
		entity.StatusPreparing, entity.StatusReady,
	}
	if err := r.DB.Model(&entity.Order{}).
		Where("customer_id = ? AND status IN ?", customerID, active).
		Count(&stats.ActiveOrders).Error; err != nil {
		return nil, err
	}

	var spent struct{ Total int64 }
	if err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("customer_id = ? AND status = ?", customerID, entity.StatusCompleted).
		Scan(&spent).Error; err != nil {
		return nil, err
	}
	stats.TotalSpent = spent.Total

	return stats, nil
}
