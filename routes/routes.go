package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/controllers"
	"storefront/middleware"
)

// Controllers bundles the handler objects SetupRoutes wires up. They are
// built in main with their stores and services injected.
type Controllers struct {
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Cart     *controllers.CartController
	Wishlist *controllers.WishlistController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers, jwtSecret []byte) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", ctrl.Auth.Register)
	router.POST("/auth/login", ctrl.Auth.Login)
	router.GET("/categories", ctrl.Products.Categories)
	router.GET("/products", ctrl.Products.List)
	router.GET("/products/:id", ctrl.Products.Detail)

	auth := router.Group("/")
	auth.Use(middleware.Auth(jwtSecret))
	{
		auth.GET("/auth/profile", ctrl.Auth.Profile)
		auth.POST("/auth/logout", ctrl.Auth.Logout)
	}

	client := router.Group("/")
	client.Use(middleware.ClientContext(jwtSecret))
	{
		client.GET("/cart", ctrl.Cart.Get)
		client.DELETE("/cart", ctrl.Cart.Clear)
		client.POST("/cart/items", ctrl.Cart.AddItem)
		client.PATCH("/cart/items/:productId", ctrl.Cart.UpdateItem)
		client.DELETE("/cart/items/:productId", ctrl.Cart.RemoveItem)
		client.POST("/cart/checkout", ctrl.Cart.Checkout)

		client.GET("/wishlist", ctrl.Wishlist.Get)
		client.DELETE("/wishlist", ctrl.Wishlist.Clear)
		client.GET("/wishlist/:productId", ctrl.Wishlist.Contains)
		client.POST("/wishlist/:productId", ctrl.Wishlist.Add)
		client.DELETE("/wishlist/:productId", ctrl.Wishlist.Remove)
	}
}
