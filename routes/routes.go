package routes

import (
	"github.com/Xebarter/Manziz/cart"
	"github.com/Xebarter/Manziz/configs"
	"github.com/Xebarter/Manziz/controllers"
	"github.com/Xebarter/Manziz/middlewares"
	"github.com/Xebarter/Manziz/pesapal"
	"github.com/Xebarter/Manziz/realtime"
	"github.com/Xebarter/Manziz/repository"
	"github.com/Xebarter/Manziz/services"
	"github.com/Xebarter/Manziz/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *realtime.Hub, uploader storage.Uploader) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Payment gateway
	gateway := pesapal.NewClient(pesapal.Config{
		BaseURL:        cfg.PesapalBaseURL,
		ConsumerKey:    cfg.PesapalConsumerKey,
		ConsumerSecret: cfg.PesapalConsumerSecret,
		IPNID:          cfg.PesapalIPNID,
		CallbackURL:    cfg.PesapalCallbackURL,
	}, nil)

	// Services
	fallback := &services.FallbackSource{Items: configs.SampleMenu()}
	menuSvc := services.NewMenuService(menuRepo, fallback)
	orderSvc := services.NewOrderService(db, orderRepo, paymentRepo, gateway)
	paymentSvc := services.NewPaymentService(gateway, paymentRepo, orderRepo)
	reservationSvc := services.NewReservationService(reservationRepo)
	messageSvc := services.NewMessageService(messageRepo, hub)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	carts := cart.NewManager(cfg.CartDir)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(carts, menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, carts)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	messageCtrl := controllers.NewMessageController(messageSvc)
	authCtrl := controllers.NewAuthController(authSvc)
	uploadCtrl := controllers.NewUploadController(uploader)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/admin/login", authCtrl.AdminLogin)
	}

	// Storefront (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/favorites", menuCtrl.Favorites)
	r.GET("/menu/:id", menuCtrl.Get)

	r.GET("/cart", cartCtrl.Get)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
	r.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
	r.DELETE("/cart", cartCtrl.Clear)

	r.POST("/orders", orderCtrl.Checkout)
	r.GET("/orders/:id/track", orderCtrl.Track)

	r.GET("/payment/callback", paymentCtrl.Callback)
	r.GET("/payment/status/:trackingId", paymentCtrl.Status)

	r.POST("/reservations", reservationCtrl.Create)
	r.POST("/messages", messageCtrl.SendCustomer)

	// Realtime change feeds: /ws/:table?event=insert|update
	r.GET("/ws/:table", hub.HandleWebSocket)

	// Profile (signed-in customers)
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/orders", orderCtrl.ListForMe)
	}

	// Admin panel
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/menu", menuCtrl.Create)
		admin.PUT("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.PATCH("/menu/:id/availability", menuCtrl.ToggleAvailability)
		admin.PATCH("/menu/:id/favorite", menuCtrl.ToggleFavorite)

		admin.GET("/orders", orderCtrl.List)
		admin.PATCH("/orders/:id/status", orderCtrl.SetStatus)

		admin.GET("/reservations", reservationCtrl.List)
		admin.DELETE("/reservations/:id", reservationCtrl.Delete)

		admin.GET("/messages", messageCtrl.List)
		admin.POST("/messages", messageCtrl.SendAdmin)
		admin.PATCH("/messages/:id/read", messageCtrl.MarkRead)
		admin.GET("/messages/unread-count", messageCtrl.UnreadCount)

		admin.POST("/uploads", uploadCtrl.Upload)
		admin.DELETE("/uploads", uploadCtrl.Delete)
	}
}
