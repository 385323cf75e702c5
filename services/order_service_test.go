package services

import (
	"errors"
	"testing"
	"time"

	"campusfood/entity"
	"campusfood/pkg/apperr"
)

func futurePickup() (string, string) {
	ts := time.Now().Add(2 * time.Hour)
	return ts.Format("2006-01-02"), ts.Format("15:04")
}

func TestCheckoutRequiresSchedule(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
	)
	customer := env.seedCustomer(t)
	if err := env.carts.Add(customer.ID, &AddToCartIn{VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 1}); err != nil {
		t.Fatalf("fill cart: %v", err)
	}

	date, clock := futurePickup()
	tests := []struct {
		name string
		in   CheckoutIn
	}{
		{"missing date", CheckoutIn{PickupDate: "", PickupTime: clock}},
		{"missing time", CheckoutIn{PickupDate: date, PickupTime: ""}},
		{"missing both", CheckoutIn{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.orders.Checkout(customer.ID, &tt.in)
			if !errors.Is(err, apperr.ErrMissingSchedule) {
				t.Errorf("err = %v, want ErrMissingSchedule", err)
			}
		})
	}

	// Nothing was persisted by the failed attempts.
	var count int64
	env.db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders persisted = %d, want 0", count)
	}
}

func TestCheckoutRequiresNonEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	env.seedVendor(t)
	customer := env.seedCustomer(t)

	date, clock := futurePickup()
	_, err := env.orders.Checkout(customer.ID, &CheckoutIn{PickupDate: date, PickupTime: clock})
	if !errors.Is(err, apperr.ErrEmptyCart) {
		t.Errorf("err = %v, want ErrEmptyCart", err)
	}
}

func TestCheckoutRejectsPastPickup(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
	)
	customer := env.seedCustomer(t)
	if err := env.carts.Add(customer.ID, &AddToCartIn{VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 1}); err != nil {
		t.Fatalf("fill cart: %v", err)
	}

	past := time.Now().Add(-24 * time.Hour)
	_, err := env.orders.Checkout(customer.ID, &CheckoutIn{
		PickupDate: past.Format("2006-01-02"),
		PickupTime: past.Format("15:04"),
	})
	if !errors.Is(err, apperr.ErrPastSchedule) {
		t.Errorf("err = %v, want ErrPastSchedule", err)
	}
}

func TestCheckoutPlacesOrderAndLeavesCart(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
		entity.MenuItem{Name: "Fries", Price: 120, Available: true},
	)
	customer := env.seedCustomer(t)
	for _, in := range []AddToCartIn{
		{VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 2},
		{VendorID: vendor.ID, MenuItemID: items[1].ID, Quantity: 1},
	} {
		if err := env.carts.Add(customer.ID, &in); err != nil {
			t.Fatalf("fill cart: %v", err)
		}
	}

	date, clock := futurePickup()
	order, err := env.orders.Checkout(customer.ID, &CheckoutIn{
		PickupDate: date, PickupTime: clock, Notes: "extra ketchup",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if order.Status != entity.StatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.TotalAmount != 620 {
		t.Errorf("total = %d, want 620", order.TotalAmount)
	}
	if order.VendorID != vendor.ID {
		t.Errorf("vendor id = %d, want %d", order.VendorID, vendor.ID)
	}
	if order.VendorName != "Test Canteen" {
		t.Errorf("vendor name = %q", order.VendorName)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	if order.Notes != "extra ketchup" {
		t.Errorf("notes = %q", order.Notes)
	}
	if order.PaymentStatus != "pending" || order.PickupOrDelivery != "pickup" {
		t.Errorf("payment/pickup = %s/%s", order.PaymentStatus, order.PickupOrDelivery)
	}

	// The pipeline itself never clears the cart; that is the caller's move.
	view, _ := env.carts.Get(customer.ID)
	if view.Count != 3 {
		t.Errorf("cart count after checkout = %d, want 3 (pipeline must not clear)", view.Count)
	}

	// Vendor got an in-app notification.
	var notifications int64
	env.db.Model(&entity.Notification{}).Where("type = ?", "order_placed").Count(&notifications)
	if notifications != 1 {
		t.Errorf("order_placed notifications = %d, want 1", notifications)
	}
}

func TestCreateSnapshotsPriceAndName(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
	)
	customer := env.seedCustomer(t)

	pickup := time.Now().Add(2 * time.Hour).Format("2006-01-02T15:04:05")
	order, err := env.orders.Create(customer.ID, &CreateOrderIn{
		VendorID:   vendor.ID,
		PickupTime: pickup,
		Items:      []CreateOrderItemIn{{MenuItemID: items[0].ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Later menu edits must not rewrite the placed order.
	env.db.Model(&entity.MenuItem{}).Where("id = ?", items[0].ID).
		Updates(map[string]any{"name": "Deluxe Burger", "price": 400})

	got, err := env.orders.DetailForCustomer(customer.ID, order.OrderID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.Items[0].Name != "Burger" || got.Items[0].Price != 250 {
		t.Errorf("snapshot = %q/%d, want Burger/250", got.Items[0].Name, got.Items[0].Price)
	}
	if got.TotalAmount != 500 {
		t.Errorf("total = %d, want 500", got.TotalAmount)
	}
}

func TestCreateValidations(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
		entity.MenuItem{Name: "Sold Out", Price: 100, Available: false},
	)
	customer := env.seedCustomer(t)
	pickup := time.Now().Add(2 * time.Hour).Format("2006-01-02T15:04:05")

	t.Run("empty items", func(t *testing.T) {
		_, err := env.orders.Create(customer.ID, &CreateOrderIn{
			VendorID: vendor.ID, PickupTime: pickup,
		})
		if !errors.Is(err, apperr.ErrEmptyCart) {
			t.Errorf("err = %v, want ErrEmptyCart", err)
		}
	})

	t.Run("missing pickup time", func(t *testing.T) {
		_, err := env.orders.Create(customer.ID, &CreateOrderIn{
			VendorID: vendor.ID,
			Items:    []CreateOrderItemIn{{MenuItemID: items[0].ID, Quantity: 1}},
		})
		if !errors.Is(err, apperr.ErrMissingSchedule) {
			t.Errorf("err = %v, want ErrMissingSchedule", err)
		}
	})

	t.Run("unavailable item", func(t *testing.T) {
		_, err := env.orders.Create(customer.ID, &CreateOrderIn{
			VendorID: vendor.ID, PickupTime: pickup,
			Items: []CreateOrderItemIn{{MenuItemID: items[1].ID, Quantity: 1}},
		})
		if !errors.Is(err, apperr.ErrItemUnavailable) {
			t.Errorf("err = %v, want ErrItemUnavailable", err)
		}
	})

	t.Run("foreign menu item", func(t *testing.T) {
		_, err := env.orders.Create(customer.ID, &CreateOrderIn{
			VendorID: vendor.ID, PickupTime: pickup,
			Items: []CreateOrderItemIn{{MenuItemID: 9999, Quantity: 1}},
		})
		if err == nil || !apperr.IsValidation(err) {
			t.Errorf("err = %v, want validation error", err)
		}
	})
}

func TestCombinePickup(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		wantErr error
	}{
		{"both empty", "", "", apperr.ErrMissingSchedule},
		{"date only", "2026-10-01", "", apperr.ErrMissingSchedule},
		{"time only", "", "12:30", apperr.ErrMissingSchedule},
		{"garbage", "not-a-date", "12:30", nil},
		{"valid", "2026-10-01", "12:30", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := CombinePickup(tt.date, tt.clock)
			switch tt.name {
			case "valid":
				if err != nil {
					t.Fatalf("err = %v", err)
				}
				if ts.Hour() != 12 || ts.Minute() != 30 {
					t.Errorf("ts = %v, want 12:30 local", ts)
				}
			case "garbage":
				if err == nil || !apperr.IsValidation(err) {
					t.Errorf("err = %v, want validation error", err)
				}
			default:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
			}
		})
	}
}
