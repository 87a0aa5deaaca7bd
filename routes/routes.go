package routes

import (
	"toeat/configs"
	"toeat/controllers"
	"toeat/entity"
	"toeat/middlewares"
	"toeat/repository"
	"toeat/services"
	"toeat/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.NotificationHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	restRepo := repository.NewRestaurantRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	walletSvc := services.NewWalletService(db, walletRepo)
	loyaltySvc := services.NewLoyaltyService(userRepo)
	notifSvc := services.NewNotificationService(notifRepo)
	notifSvc.SetPublisher(hub)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, notifSvc, walletSvc, loyaltySvc)
	reviewSvc := services.NewReviewService(reviewRepo, restRepo)
	adminSvc := services.NewAdminService(userRepo, walletRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, walletSvc)
	partnerCtrl := controllers.NewPartnerOrderController(orderSvc, restRepo)
	riderCtrl := controllers.NewRiderController(orderSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, adminSvc)
	walletCtrl := controllers.NewWalletController(walletSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc, authSvc)
	restCtrl := controllers.NewRestaurantController(restRepo)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Public catalog reads
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/reviews", reviewCtrl.ListForTarget)

	// Orders (eater)
	u := r.Group("/", auth())
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/dispute", orderCtrl.FileDispute)
		u.POST("/reviews", reviewCtrl.Create)
	}

	// Profile
	profile := r.Group("/profile", auth())
	{
		profile.GET("/orders", orderCtrl.ListForMe)
	}

	// Wallet
	wallet := r.Group("/wallet", auth())
	{
		wallet.GET("", walletCtrl.View)
		wallet.POST("/topup", walletCtrl.TopUp)
	}

	// Notifications
	notif := r.Group("/notifications", auth())
	{
		notif.GET("", notifCtrl.List)
		notif.POST("/read", notifCtrl.MarkAllRead)
	}
	r.GET("/ws/notifications", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Partner (restaurant side)
	partner := r.Group("/partner", auth(entity.RolePartner, entity.RoleAdmin))
	{
		partner.GET("/orders", partnerCtrl.List)
		partner.PATCH("/orders/:id/confirm", partnerCtrl.Confirm)
		partner.PATCH("/orders/:id/prepare", partnerCtrl.StartPreparing)
		partner.PATCH("/orders/:id/assign-rider", partnerCtrl.AssignRider)
		partner.PATCH("/orders/:id/reject", partnerCtrl.Reject)
	}

	// Rider
	rider := r.Group("/rider", auth(entity.RoleRider, entity.RoleAdmin))
	{
		rider.GET("/jobs", riderCtrl.Jobs)
		rider.PATCH("/jobs/:id/pickup", riderCtrl.PickUp)
		rider.PATCH("/jobs/:id/complete", riderCtrl.Complete)
	}

	// Admin
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/status", adminCtrl.OverrideStatus)
		admin.PATCH("/orders/:id/dispute", adminCtrl.ResolveDispute)
		admin.GET("/users", adminCtrl.Users)
		admin.PATCH("/users/:id/status", adminCtrl.ToggleUserStatus)
		admin.GET("/users/:id/transactions", adminCtrl.UserTransactions)
	}
}
