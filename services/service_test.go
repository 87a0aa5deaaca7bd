package services

import (
	"fmt"
	"strings"
	"testing"

	"toeat/entity"
	"toeat/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db      *gorm.DB
	orders  *OrderService
	wallet  *WalletService
	loyalty *LoyaltyService
	notifs  *NotificationService
	reviews *ReviewService
	admin   *AdminService
	users   *repository.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// one private in-memory database per test
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{}, &entity.WalletTransaction{},
		&entity.Restaurant{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Notification{},
		&entity.Review{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	walletSvc := NewWalletService(db, repository.NewWalletRepository(db))
	loyaltySvc := NewLoyaltyService(userRepo)
	notifSvc := NewNotificationService(repository.NewNotificationRepository(db))
	restRepo := repository.NewRestaurantRepository(db)
	orderSvc := NewOrderService(db, repository.NewOrderRepository(db), restRepo, notifSvc, walletSvc, loyaltySvc)
	reviewSvc := NewReviewService(repository.NewReviewRepository(db), restRepo)
	adminSvc := NewAdminService(userRepo, repository.NewWalletRepository(db))

	return &testEnv{
		db:      db,
		orders:  orderSvc,
		wallet:  walletSvc,
		loyalty: loyaltySvc,
		notifs:  notifSvc,
		reviews: reviewSvc,
		admin:   adminSvc,
		users:   userRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, name, role string, balance int64) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:         strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@test.local",
		Password:      "x",
		Name:          name,
		Role:          role,
		Status:        entity.UserActive,
		WalletBalance: balance,
	}
	if err := e.db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (e *testEnv) createRestaurant(t *testing.T, name string, ownerID uint) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: name, Status: entity.RestaurantActive, OwnerID: ownerID}
	if err := e.db.Create(r).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return r
}

func (e *testEnv) balance(t *testing.T, userID uint) int64 {
	t.Helper()
	var u entity.User
	if err := e.db.First(&u, userID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	return u.WalletBalance
}

func (e *testEnv) notifications(t *testing.T, typ string) []entity.Notification {
	t.Helper()
	var out []entity.Notification
	if err := e.db.Where("type = ?", typ).Order("id").Find(&out).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	return out
}
