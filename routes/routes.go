package routes

import (
	"log/slog"

	"campusfood/configs"
	"campusfood/controllers"
	"campusfood/entity"
	"campusfood/middlewares"
	"campusfood/repository"
	"campusfood/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *slog.Logger) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	notifSvc := services.NewNotificationService(notifRepo, vendorRepo, log)
	authSvc := services.NewAuthService(db, userRepo, vendorRepo, log, cfg.JWTSecret, cfg.JWTTTL)
	vendorSvc := services.NewVendorService(vendorRepo, menuRepo)
	menuSvc := services.NewMenuService(menuRepo, vendorRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, vendorRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, vendorRepo, notifSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	vendorCtrl := controllers.NewVendorController(vendorSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	vendorOrderCtrl := controllers.NewVendorOrderController(orderSvc)
	notifCtrl := controllers.NewNotificationController(notifRepo)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "database": "disconnected"})
			return
		}
		c.JSON(200, gin.H{"status": "healthy", "database": "connected"})
	})

	// Auth (public)
	api.POST("/register", authCtrl.Register)
	api.POST("/verify-email", authCtrl.VerifyEmail)
	api.POST("/login", authCtrl.Login)

	// Auth (protected, any role)
	authed := api.Group("", middlewares.AuthMiddleware(db, cfg.JWTSecret))
	{
		authed.POST("/complete-profile", authCtrl.CompleteProfile)
		authed.GET("/profile", authCtrl.Profile)
		authed.PUT("/profile", authCtrl.CompleteProfile)
		authed.GET("/notifications", notifCtrl.List)
		authed.PATCH("/notifications/:id/read", notifCtrl.MarkRead)
	}

	// Public browse
	api.GET("/vendors/:vendorId", vendorCtrl.Detail)

	// Customer
	customer := api.Group("/customer", middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleCustomer))
	{
		customer.GET("/vendors", vendorCtrl.List)
		customer.GET("/vendors/:vendorId/menu", vendorCtrl.Menu)

		customer.GET("/cart", cartCtrl.Get)
		customer.POST("/cart/items", cartCtrl.Add)
		customer.PATCH("/cart/items/:itemId", cartCtrl.AdjustQuantity)
		customer.DELETE("/cart/items/:itemId", cartCtrl.RemoveItem)
		customer.DELETE("/cart", cartCtrl.Clear)
		customer.POST("/cart/checkout", cartCtrl.Checkout)

		customer.POST("/orders", orderCtrl.Create)
		customer.GET("/orders", orderCtrl.List)
		customer.GET("/orders/:orderId", orderCtrl.Detail)
		customer.PUT("/orders/:orderId/cancel", orderCtrl.Cancel)
		customer.GET("/stats", orderCtrl.Stats)
	}

	// Vendor
	vendor := api.Group("/vendors/:vendorId", middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleVendor))
	{
		vendor.POST("/menu", menuCtrl.CreateMenu)
		vendor.POST("/menu/:menuId/items", menuCtrl.AddItem)
		vendor.PUT("/menu/:menuId/items/:itemId", menuCtrl.UpdateItem)
		vendor.DELETE("/menu/:menuId/items/:itemId", menuCtrl.DeleteItem)

		vendor.GET("/orders", vendorOrderCtrl.List)
		vendor.GET("/orders/:orderId", vendorOrderCtrl.Detail)
		vendor.PUT("/orders/:orderId/status", vendorOrderCtrl.UpdateStatus)
		vendor.GET("/stats", vendorOrderCtrl.Stats)
	}
}
