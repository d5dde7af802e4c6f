package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront/catalog"
	"storefront/config"
	"storefront/controllers"
	_ "storefront/docs"
	"storefront/middleware"
	"storefront/routes"
	"storefront/services"
	"storefront/storage"
	"storefront/store"
)

// @title Storefront API
// @version 1.0
// @description Backend-for-frontend for the storefront web application
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	redisClient := storage.NewRedisClient(cfg.RedisURL, cfg.RedisAddr, cfg.RedisPassword)
	if redisClient != nil {
		defer redisClient.Close()
	}

	var durable storage.Store
	if redisClient != nil {
		durable = storage.NewRedisStore(redisClient)
		log.Println("Using Redis for durable storage")
	} else {
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		durable = fileStore
		log.Printf("Using file storage at %s", cfg.DataDir)
	}

	catalogClient := catalog.NewClient(cfg.CatalogAPIURL, cfg.CatalogTimeout)
	catalogService := catalog.NewService(catalogClient, redisClient, cfg.CacheTTL)

	carts := store.NewCartStore(durable)
	wishlists := store.NewWishlistStore(durable)
	sessions := store.NewSessionStore(durable)

	secret := []byte(cfg.JWTSecret)
	authService := services.NewAuthService(durable, secret, cfg.JWTExpiry, cfg.AuthLoginDelay, cfg.AuthRegisterDelay)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, routes.Controllers{
		Auth:     controllers.NewAuthController(authService, sessions),
		Products: controllers.NewProductController(catalogService),
		Cart:     controllers.NewCartController(carts, catalogService),
		Wishlist: controllers.NewWishlistController(wishlists, catalogService),
	}, secret)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
