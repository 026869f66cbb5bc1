package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/cart"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/mockdata"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/orders"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/recent"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/routes"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/storage"
)

func main() {
	log.Println("✅ Starting kidsstyle mall...")

	// Load environment variables
	_ = godotenv.Load()

	// Local key-value store backing the cart and the view history
	storePath := os.Getenv("STORE_PATH")
	if storePath == "" {
		storePath = "kidsstyle.db"
	}
	store, err := storage.Open(storePath)
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}

	// Optional artificial latency, for exercising loading-state UI
	simulate := os.Getenv("SIMULATED_LATENCY") != ""
	var catalogOpts []catalog.Option
	var orderOpts []orders.Option
	if simulate {
		catalogOpts = append(catalogOpts, catalog.WithSimulatedLatency())
		orderOpts = append(orderOpts, orders.WithSimulatedLatency())
	}

	// Catalog snapshot, loaded once and shared read-only
	cat, err := catalog.Load(mockdata.Products, mockdata.Categories, catalogOpts...)
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}

	orderSvc, err := orders.NewService(mockdata.Orders, orderOpts...)
	if err != nil {
		log.Fatalf("❌ Failed to load orders: %v", err)
	}

	deps := routes.Deps{
		Catalog: cat,
		Cart:    cart.New(store),
		Recent:  recent.New(store, cat),
		Orders:  orderSvc,
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
