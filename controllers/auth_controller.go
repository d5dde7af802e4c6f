package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
	"storefront/store"
)

type AuthController struct {
	auth     *services.AuthService
	sessions *store.SessionStore
}

func NewAuthController(auth *services.AuthService, sessions *store.SessionStore) *AuthController {
	return &AuthController{auth: auth, sessions: sessions}
}

// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	session, clientID, err := ctrl.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.sessions.Save(clientID, session.User, session.Token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Login successful", "data": session})
}

// @Summary Register new user
// @Description Register a new storefront account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	session, clientID, err := ctrl.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.sessions.Save(clientID, session.User, session.Token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Registration successful", "data": session})
}

// @Summary Get profile
// @Description Get the signed-in user's profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	user, ok, err := ctrl.sessions.User(clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		// Token is valid but the session record is gone; rebuild the
		// profile from the claims.
		user = models.User{
			ID:    c.GetInt(middleware.ContextUserID),
			Name:  c.GetString(middleware.ContextUserName),
			Email: c.GetString(middleware.ContextUserEmail),
		}
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved", "data": user})
}

// @Summary Logout
// @Description Clear the persisted session
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	if err := ctrl.sessions.Clear(clientID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}
