package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/catalog"
	"storefront/middleware"
	"storefront/models"
	"storefront/store"
)

const (
	shippingFlatRate = 10.0
	taxRate          = 0.08
)

type CartController struct {
	carts   *store.CartStore
	catalog *catalog.Service
}

func NewCartController(carts *store.CartStore, catalogService *catalog.Service) *CartController {
	return &CartController{carts: carts, catalog: catalogService}
}

// @Summary Get cart
// @Description Get the client's cart with count and subtotal
// @Tags Cart
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) Get(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data": models.CartSummary{
			Items:    ctrl.carts.Items(clientID),
			Count:    ctrl.carts.Count(clientID),
			Subtotal: ctrl.carts.Subtotal(clientID),
		},
	})
}

// @Summary Add cart item
// @Description Add a product to the cart; an already-present product is left unchanged
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	clientID := c.GetString(middleware.ContextClientID)
	if err := ctrl.carts.Add(clientID, product, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	ctrl.respondCart(c, clientID, "Product added to cart")
}

// @Summary Update cart item quantity
// @Description Set the quantity for a cart entry (minimum 1)
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Param productId path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	clientID := c.GetString(middleware.ContextClientID)
	if err := ctrl.carts.SetQuantity(clientID, productID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	ctrl.respondCart(c, clientID, "Cart updated")
}

// @Summary Remove cart item
// @Description Remove a product from the cart
// @Tags Cart
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	clientID := c.GetString(middleware.ContextClientID)
	if err := ctrl.carts.Remove(clientID, productID); err != nil {
		respondError(c, err)
		return
	}

	ctrl.respondCart(c, clientID, "Product removed from cart")
}

// @Summary Clear cart
// @Description Remove every entry from the cart
// @Tags Cart
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) Clear(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)
	if err := ctrl.carts.Clear(clientID); err != nil {
		respondError(c, err)
		return
	}

	ctrl.respondCart(c, clientID, "Cart cleared")
}

// @Summary Checkout
// @Description Simulate checkout: order summary with tax and shipping, then clear the cart
// @Tags Cart
// @Produce json
// @Param X-Client-ID header string false "Guest client id"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	items := ctrl.carts.Items(clientID)
	if len(items) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Your cart is empty"})
		return
	}

	subtotal := ctrl.carts.Subtotal(clientID)
	order := models.OrderSummary{
		OrderID:  uuid.NewString(),
		Items:    items,
		Subtotal: subtotal,
		Shipping: shippingFlatRate,
		Tax:      subtotal * taxRate,
	}
	order.Total = order.Subtotal + order.Shipping + order.Tax

	if err := ctrl.carts.Clear(clientID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order placed", "data": order})
}

func (ctrl *CartController) respondCart(c *gin.Context, clientID, message string) {
	c.JSON(200, gin.H{
		"success": true,
		"message": message,
		"data": models.CartSummary{
			Items:    ctrl.carts.Items(clientID),
			Count:    ctrl.carts.Count(clientID),
			Subtotal: ctrl.carts.Subtotal(clientID),
		},
	})
}
