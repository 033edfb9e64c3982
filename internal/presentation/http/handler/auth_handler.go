package handler

import (
	"net/http"
	"time"

	"github.com/blueverse/blueverse-api/internal/application/service"
	"github.com/blueverse/blueverse-api/internal/presentation/http/dto/request"
	"github.com/blueverse/blueverse-api/internal/presentation/http/dto/response"
	"github.com/blueverse/blueverse-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	appEnv      string
	tokenTTL    time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, appEnv string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		appEnv:      appEnv,
		tokenTTL:    tokenTTL,
	}
}

// Register handles staff signup. No session cookie is issued here.
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	_, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User registered successfully", nil)
}

// Login authenticates, sets the session cookie and returns the token in
// the body as well.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid Email Or Password")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, output.AccessToken, int(h.tokenTTL.Seconds()))

	response.OK(c, "Login Successfull", gin.H{
		"accessToken": output.AccessToken,
		"user":        output.User,
	})
}

// Logout clears the session cookie. Idempotent: logging out while logged
// out still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.OK(c, "Logout Successfull", nil)
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", gin.H{"user": user})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	sameSite := http.SameSiteLaxMode
	if h.appEnv == "production" {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", true, true)
}
