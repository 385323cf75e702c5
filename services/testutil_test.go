package services

import (
	"io"
	"log/slog"
	"testing"

	"campusfood/entity"
	"campusfood/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.EmailVerification{},
		&entity.Vendor{}, &entity.Menu{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Notification{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type testEnv struct {
	db       *gorm.DB
	carts    *CartService
	orders   *OrderService
	userRepo *repository.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	notifier := NewNotificationService(notifRepo, vendorRepo, log)

	return &testEnv{
		db:       db,
		carts:    NewCartService(db, cartRepo, menuRepo, vendorRepo),
		orders:   NewOrderService(db, orderRepo, cartRepo, menuRepo, vendorRepo, notifier),
		userRepo: userRepo,
	}
}

// seedVendor creates a verified vendor user with a menu of the given items
// and returns the vendor and the persisted items.
func (e *testEnv) seedVendor(t *testing.T, items ...entity.MenuItem) (*entity.Vendor, []entity.MenuItem) {
	t.Helper()

	user := entity.User{
		Email: "vendor@test.local", Password: "x",
		Role: entity.RoleVendor, FullName: "Test Vendor", IsEmailVerified: true,
	}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("seed vendor user: %v", err)
	}
	vendor := entity.Vendor{UserID: user.ID, VendorName: "Test Canteen", PickupAvailable: true}
	if err := e.db.Create(&vendor).Error; err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	menu := entity.Menu{VendorID: vendor.ID, Title: "Menu", IsActive: true}
	if err := e.db.Create(&menu).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	for i := range items {
		items[i].MenuID = menu.ID
		items[i].VendorID = vendor.ID
		if err := e.db.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed menu item: %v", err)
		}
	}
	return &vendor, items
}

func (e *testEnv) seedCustomer(t *testing.T) *entity.User {
	t.Helper()
	user := entity.User{
		Email: "customer@test.local", Password: "x",
		Role: entity.RoleCustomer, FullName: "Test Customer", IsEmailVerified: true,
	}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return &user
}
