package configs

import (
	"log"

	"toeat/entity"

	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Platform Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedDemo creates the demo accounts and restaurant the frontend logs in
// with. Balances are cents.
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Where("email = ?", "alex@toeat.demo").Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)

	eater := entity.User{
		Email: "alex@toeat.demo", Password: string(hash),
		Name: "Alex Johnson", Role: entity.RoleUser,
		WalletBalance: 25000, LoyaltyPoints: 450,
	}
	partner := entity.User{
		Email: "partner@toeat.demo", Password: string(hash),
		Name: "Maria Rossi", Role: entity.RolePartner,
	}
	rider := entity.User{
		Email: "rider@toeat.demo", Password: string(hash),
		Name: "Sam Lee", Role: entity.RoleRider,
	}
	for _, u := range []*entity.User{&eater, &partner, &rider} {
		if err := db.Create(u).Error; err != nil {
			return err
		}
	}

	rest := entity.Restaurant{
		Name:    "Bella Italia",
		Cuisine: "Italian",
		Status:  entity.RestaurantActive,
		OwnerID: partner.ID,
	}
	return db.Create(&rest).Error
}
