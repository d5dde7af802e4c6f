package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/models"
	"storefront/utils"
)

const (
	ContextClientID  = "client_id"
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserName  = "user_name"

	clientIDHeader = "X-Client-ID"
)

// Auth requires a valid bearer token and puts its claims on the request
// context.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or missing token",
			})
			c.Abort()
			return
		}

		c.Set(ContextClientID, claims.ClientID)
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserName, claims.Name)
		c.Next()
	}
}

// ClientContext resolves the client id that keys cart and wishlist state.
// A valid bearer token wins; otherwise the X-Client-ID header identifies a
// guest, and a brand-new guest gets a fresh id echoed back in the response
// header.
func ClientContext(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, secret); ok {
			c.Set(ContextClientID, claims.ClientID)
			c.Next()
			return
		}

		clientID := c.GetHeader(clientIDHeader)
		if clientID == "" {
			clientID = uuid.NewString()
		}
		c.Header(clientIDHeader, clientID)
		c.Set(ContextClientID, clientID)
		c.Next()
	}
}

func bearerClaims(c *gin.Context, secret []byte) (*utils.TokenClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, false
	}

	claims, err := utils.ValidateToken(secret, tokenParts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
