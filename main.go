package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"templeconnect/config"
	"templeconnect/db"
	"templeconnect/handlers"
	"templeconnect/middleware"
	"templeconnect/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	store, err := db.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	features := config.LoadFeatures()
	log.Printf(
		"Features: billing=%v receipt_email=%v slack=%v",
		features.BillingEnabled,
		features.ReceiptEmailEnabled,
		features.SlackAlertsEnabled,
	)

	orders := services.NewRazorpayOrders(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	h := handlers.New(store, orders, cfg)
	jwtSecret := []byte(cfg.JWTSecret)

	r := gin.Default()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Signup)
			auth.POST("/login", h.Login)
			auth.GET("/me", middleware.AuthRequired(jwtSecret), h.Me)
		}

		payment := api.Group("/payment")
		{
			payment.POST("/initialize", h.InitializePayment)
			payment.POST("/verify", h.VerifyPayment)
		}

		api.GET("/temples", h.ListTemples)
		api.GET("/temples/nearby", h.NearbyTemples)
		api.POST("/temples", middleware.AuthRequired(jwtSecret), h.CreateTemple)
		api.GET("/temples/:id", h.GetTemple)
		api.PUT("/temples/:id", middleware.AuthRequired(jwtSecret), h.UpdateTemple)
		api.DELETE("/temples/:id", middleware.AuthRequired(jwtSecret), h.DeleteTemple)

		api.GET("/poojas", h.ListPoojas)

		api.GET("/products", h.ListProducts)
		api.POST("/products", middleware.AuthRequired(jwtSecret), h.CreateProduct)

		cart := api.Group("/cart", middleware.AuthRequired(jwtSecret))
		{
			cart.GET("", h.GetCart)
			cart.POST("", h.AddToCart)
			cart.POST("/checkout", h.CheckoutCart)
		}

		bookings := api.Group("/bookings", middleware.AuthRequired(jwtSecret))
		{
			bookings.GET("", h.ListBookings)
			bookings.GET("/:paymentId", h.GetReceipt)
		}

		api.GET("/plans", h.ListPlans)
		api.POST("/plans/downgrade", middleware.AuthRequired(jwtSecret), h.DowngradePlan)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server forced to shutdown:", err)
	}

	if err := store.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting MongoDB:", err)
	}

	log.Println("Server exited")
}
