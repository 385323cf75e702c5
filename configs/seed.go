package configs

import (
	"log"

	"campusfood/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemo creates one verified vendor with a small menu so a fresh install
// has something to browse. No-op when the vendor already exists.
func SeedDemo() error {
	db := DB()

	const email = "canteen@campus.test"
	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("demo vendor already seeded:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := entity.User{
		Email:           email,
		Password:        string(hash),
		Role:            entity.RoleVendor,
		FullName:        "Main Canteen",
		Phone:           "0300-0000000",
		IsEmailVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	vendor := entity.Vendor{
		UserID:          user.ID,
		VendorName:      "Main Canteen",
		Location:        "Block C, Ground Floor",
		PickupAvailable: true,
	}
	if err := db.Create(&vendor).Error; err != nil {
		return err
	}

	menu := entity.Menu{VendorID: vendor.ID, Title: "Daily Menu", IsActive: true}
	if err := db.Create(&menu).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{MenuID: menu.ID, VendorID: vendor.ID, Name: "Chicken Burger", Price: 250, Available: true, PreparationTimeMinutes: 15},
		{MenuID: menu.ID, VendorID: vendor.ID, Name: "Fries", Price: 120, Available: true, PreparationTimeMinutes: 10},
		{MenuID: menu.ID, VendorID: vendor.ID, Name: "Cold Drink", Price: 80, Available: true, PreparationTimeMinutes: 2},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Println("seeded demo vendor:", email)
	return nil
}
