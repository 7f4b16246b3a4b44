package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"eventmart/internal/admin"
	"eventmart/internal/auth"
	"eventmart/internal/cart"
	"eventmart/internal/config"
	"eventmart/internal/db"
	"eventmart/internal/guests"
	"eventmart/internal/logger"
	"eventmart/internal/mail"
	"eventmart/internal/memberships"
	"eventmart/internal/middleware"
	"eventmart/internal/orders"
	"eventmart/internal/products"

	"eventmart/internal/domain/user"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	pool, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		zlog.Fatal("schema migration failed", zap.Error(err))
	}

	var mailer mail.Mailer = mail.NopMailer{}
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(mail.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		})
	}

	jwtMgr := auth.NewJWTManager(auth.JWTConfig{
		Issuer:       cfg.JWTIssuer,
		Secret:       cfg.JWTSecret,
		AccessTTLMin: cfg.AccessTokenTTLMin,
	})

	// Repos
	userRepo := auth.NewUserRepo(pool)
	productRepo := products.NewRepo(pool)
	cartRepo := cart.NewRepo(pool)
	orderRepo := orders.NewRepo(pool)
	membershipRepo := memberships.NewRepo(pool)
	guestRepo := guests.NewRepo(pool)

	// Handlers
	authHandler := auth.NewHandler(jwtMgr, userRepo)
	productHandler := products.NewHandler(productRepo)
	cartHandler := cart.NewHandler(cartRepo)
	orderHandler := orders.NewHandler(orderRepo, mailer, zlog)
	guestHandler := guests.NewHandler(guestRepo)
	adminHandler := admin.NewHandler(userRepo, membershipRepo, orderRepo)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimit(cfg.RateLimitPerMin, cfg.RateLimitBurst))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
	}

	protected := r.Group("/")
	protected.Use(auth.Authenticate(jwtMgr, userRepo))
	{
		protected.GET("/auth/me", authHandler.Me)

		userOnly := protected.Group("/")
		userOnly.Use(auth.RequireRole(user.RoleUser))
		{
			userOnly.POST("/cart/add", cartHandler.AddItem)
			userOnly.PUT("/cart/update-quantity", cartHandler.UpdateQty)
			userOnly.DELETE("/cart/remove/:id", cartHandler.RemoveItem)
			userOnly.GET("/cart/my-cart", cartHandler.MyCart)

			userOnly.POST("/orders/checkout", orderHandler.Checkout)
			userOnly.GET("/orders/my-orders", orderHandler.MyOrders)

			userOnly.GET("/user/vendors", authHandler.Vendors)
			userOnly.GET("/user/products", productHandler.Browse)

			userOnly.POST("/guest/add", guestHandler.Add)
			userOnly.GET("/guest/my-guests", guestHandler.MyGuests)
			userOnly.PUT("/guest/update/:guest_id", guestHandler.Update)
			userOnly.DELETE("/guest/delete/:guest_id", guestHandler.Delete)
		}

		vendorOnly := protected.Group("/vendor")
		vendorOnly.Use(auth.RequireRole(user.RoleVendor))
		{
			vendorOnly.POST("/add-product", productHandler.Add)
			vendorOnly.GET("/my-products", productHandler.MyProducts)
			vendorOnly.PUT("/update-product/:id", productHandler.Update)
			vendorOnly.DELETE("/delete-product/:id", productHandler.Delete)
			vendorOnly.PUT("/toggle-status/:product_id", productHandler.ToggleStatus)

			vendorOnly.GET("/transactions", orderHandler.VendorTransactions)
			vendorOnly.PUT("/update-status/:order_item_id", orderHandler.UpdateShippingStatus)
		}

		adminOnly := protected.Group("/admin")
		adminOnly.Use(auth.RequireRole(user.RoleAdmin))
		{
			adminOnly.POST("/create-membership", adminHandler.CreateMembership)
			adminOnly.PUT("/extend-membership", adminHandler.ExtendMembership)
			adminOnly.PUT("/cancel-membership", adminHandler.CancelMembership)
			adminOnly.GET("/memberships", adminHandler.ListMemberships)

			adminOnly.GET("/users", adminHandler.ListUsers)
			adminOnly.PUT("/update-user/:user_id", adminHandler.UpdateUser)
			adminOnly.DELETE("/delete-user/:user_id", adminHandler.DeleteUser)

			adminOnly.GET("/vendors", adminHandler.ListVendors)
			adminOnly.PUT("/update-vendor/:vendor_id", adminHandler.UpdateVendor)
			adminOnly.DELETE("/delete-vendor/:vendor_id", adminHandler.DeleteVendor)

			adminOnly.GET("/transactions", adminHandler.Transactions)
			adminOnly.GET("/transaction-report", adminHandler.TransactionReport)
			adminOnly.GET("/sales-summary", adminHandler.SalesSummary)

			adminOnly.POST("/add-user", adminHandler.AddUser)
			adminOnly.POST("/add-vendor", adminHandler.AddVendor)
		}
	}

	zlog.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
