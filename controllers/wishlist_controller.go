package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/catalog"
	"storefront/middleware"
	"storefront/store"
)

type WishlistController struct {
	wishlists *store.WishlistStore
	catalog   *catalog.Service
}

func NewWishlistController(wishlists *store.WishlistStore, catalogService *catalog.Service) *WishlistController {
	return &WishlistController{wishlists: wishlists, catalog: catalogService}
}

// @Summary Get wishlist
// @Description Get the client's wishlist
// @Tags Wishlist
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) Get(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)
	c.JSON(200, gin.H{
		"success": true,
		"message": "Wishlist retrieved",
		"data":    ctrl.wishlists.Items(clientID),
	})
}

// @Summary Add to wishlist
// @Description Add a product to the wishlist; adding twice is a no-op
// @Tags Wishlist
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /wishlist/{productId} [post]
func (ctrl *WishlistController) Add(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.catalog.Product(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	clientID := c.GetString(middleware.ContextClientID)
	if err := ctrl.wishlists.Add(clientID, product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product added to wishlist",
		"data":    ctrl.wishlists.Items(clientID),
	})
}

// @Summary Remove from wishlist
// @Description Remove a product from the wishlist; absent products are a no-op
// @Tags Wishlist
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /wishlist/{productId} [delete]
func (ctrl *WishlistController) Remove(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	clientID := c.GetString(middleware.ContextClientID)
	if err := ctrl.wishlists.Remove(clientID, productID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product removed from wishlist",
		"data":    ctrl.wishlists.Items(clientID),
	})
}

// @Summary Check wishlist membership
// @Description Whether a product is in the wishlist
// @Tags Wishlist
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /wishlist/{productId} [get]
func (ctrl *WishlistController) Contains(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	clientID := c.GetString(middleware.ContextClientID)
	c.JSON(200, gin.H{
		"success": true,
		"message": "Wishlist membership",
		"data":    gin.H{"product_id": productID, "in_wishlist": ctrl.wishlists.Contains(clientID, productID)},
	})
}

// @Summary Clear wishlist
// @Description Remove every product from the wishlist
// @Tags Wishlist
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Success 200 {object} models.Response
// @Router /wishlist [delete]
func (ctrl *WishlistController) Clear(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)
	if err := ctrl.wishlists.Clear(clientID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Wishlist cleared"})
}
