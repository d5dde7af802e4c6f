package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/catalog"
	"storefront/services"
)

// respondError maps the service-layer error taxonomy onto HTTP responses:
// validation errors carry the offending field, missing products render the
// not-found view, upstream failures surface a generic retry message.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(400, gin.H{"success": false, "message": vErr.Message, "field": vErr.Field})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
	case errors.Is(err, catalog.ErrUnavailable):
		c.JSON(502, gin.H{"success": false, "message": "Failed to load products. Please try again later."})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Something went wrong"})
	}
}
