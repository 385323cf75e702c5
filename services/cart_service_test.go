package services

import (
	"errors"
	"testing"

	"campusfood/entity"
	"campusfood/pkg/apperr"
)

func TestCartTotalAndCount(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
		entity.MenuItem{Name: "Fries", Price: 120, Available: true},
	)
	customer := env.seedCustomer(t)

	if err := env.carts.Add(customer.ID, &AddToCartIn{
		VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 2,
	}); err != nil {
		t.Fatalf("add burger: %v", err)
	}
	if err := env.carts.Add(customer.ID, &AddToCartIn{
		VendorID: vendor.ID, MenuItemID: items[1].ID, Quantity: 1,
	}); err != nil {
		t.Fatalf("add fries: %v", err)
	}

	view, err := env.carts.Get(customer.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if view.Subtotal != 620 {
		t.Errorf("subtotal = %d, want 620", view.Subtotal)
	}
	if view.Count != 3 {
		t.Errorf("count = %d, want 3", view.Count)
	}
	if len(view.Items) != 2 {
		t.Errorf("lines = %d, want 2", len(view.Items))
	}
}

func TestCartMergesSameItem(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
	)
	customer := env.seedCustomer(t)

	for i := 0; i < 3; i++ {
		if err := env.carts.Add(customer.ID, &AddToCartIn{
			VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 1,
		}); err != nil {
			t.Fatalf("add #%d: %v", i, err)
		}
	}

	view, _ := env.carts.Get(customer.ID)
	if len(view.Items) != 1 {
		t.Fatalf("lines = %d, want 1 (same item must merge)", len(view.Items))
	}
	if view.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", view.Items[0].Quantity)
	}
}

func TestCartSeparateLinesForDifferentNotes(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
	)
	customer := env.seedCustomer(t)

	env.carts.Add(customer.ID, &AddToCartIn{VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 1})
	env.carts.Add(customer.ID, &AddToCartIn{VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 1, Notes: "no onions"})

	view, _ := env.carts.Get(customer.ID)
	if len(view.Items) != 2 {
		t.Errorf("lines = %d, want 2 (distinct notes stay separate)", len(view.Items))
	}
}

func TestCartAdjustQuantity(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
	)
	customer := env.seedCustomer(t)

	env.carts.Add(customer.ID, &AddToCartIn{VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 2})
	view, _ := env.carts.Get(customer.ID)
	lineID := view.Items[0].ID

	if err := env.carts.AdjustQuantity(customer.ID, lineID, 3); err != nil {
		t.Fatalf("adjust +3: %v", err)
	}
	view, _ = env.carts.Get(customer.ID)
	if view.Items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", view.Items[0].Quantity)
	}
	if view.Subtotal != 1250 {
		t.Errorf("subtotal = %d, want 1250 (recomputed, not stale)", view.Subtotal)
	}

	// Dropping to zero removes the line, never stores a non-positive qty.
	if err := env.carts.AdjustQuantity(customer.ID, lineID, -5); err != nil {
		t.Fatalf("adjust -5: %v", err)
	}
	view, _ = env.carts.Get(customer.ID)
	if len(view.Items) != 0 {
		t.Errorf("lines = %d, want 0 after dropping to zero", len(view.Items))
	}
	if view.Count != 0 || view.Subtotal != 0 {
		t.Errorf("count/subtotal = %d/%d, want 0/0", view.Count, view.Subtotal)
	}
}

func TestCartRejectsUnavailableItem(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Sold Out Special", Price: 300, Available: false},
	)
	customer := env.seedCustomer(t)

	err := env.carts.Add(customer.ID, &AddToCartIn{
		VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 1,
	})
	if !errors.Is(err, apperr.ErrItemUnavailable) {
		t.Errorf("err = %v, want ErrItemUnavailable", err)
	}

	view, _ := env.carts.Get(customer.ID)
	if len(view.Items) != 0 {
		t.Errorf("unavailable item must not enter the cart")
	}
}

func TestCartSingleVendorLock(t *testing.T) {
	env := newTestEnv(t)
	vendor, items := env.seedVendor(t,
		entity.MenuItem{Name: "Burger", Price: 250, Available: true},
	)
	customer := env.seedCustomer(t)

	// Second vendor with its own item.
	otherUser := entity.User{Email: "other@test.local", Password: "x", Role: entity.RoleVendor}
	if err := env.db.Create(&otherUser).Error; err != nil {
		t.Fatal(err)
	}
	other := entity.Vendor{UserID: otherUser.ID, VendorName: "Other Stall"}
	if err := env.db.Create(&other).Error; err != nil {
		t.Fatal(err)
	}
	otherMenu := entity.Menu{VendorID: other.ID, Title: "Menu"}
	if err := env.db.Create(&otherMenu).Error; err != nil {
		t.Fatal(err)
	}
	otherItem := entity.MenuItem{MenuID: otherMenu.ID, VendorID: other.ID, Name: "Shawarma", Price: 200, Available: true}
	if err := env.db.Create(&otherItem).Error; err != nil {
		t.Fatal(err)
	}

	if err := env.carts.Add(customer.ID, &AddToCartIn{
		VendorID: vendor.ID, MenuItemID: items[0].ID, Quantity: 1,
	}); err != nil {
		t.Fatalf("first add: %v", err)
	}

	err := env.carts.Add(customer.ID, &AddToCartIn{
		VendorID: other.ID, MenuItemID: otherItem.ID, Quantity: 1,
	})
	if !errors.Is(err, apperr.ErrVendorMismatch) {
		t.Errorf("cross-vendor add: err = %v, want ErrVendorMismatch", err)
	}

	// Emptying the cart releases the lock.
	if err := env.carts.Clear(customer.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := env.carts.Add(customer.ID, &AddToCartIn{
		VendorID: other.ID, MenuItemID: otherItem.ID, Quantity: 1,
	}); err != nil {
		t.Errorf("add after clear: %v, want success", err)
	}
}
