package handler

import (
	"net/http"

	"warungpos/internal/dto"
	"warungpos/internal/middleware"
	"warungpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	auth  service.AuthService
	users service.UserService
}

func NewAuthHandler(auth service.AuthService, users service.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Register POST /v1/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "User registered successfully.", resp)
}

// Login POST /v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Login successful.", resp)
}

// Refresh POST /v1/token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Token refreshed.", resp)
}

// Logout DELETE /v1/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.auth.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Logged out.", nil)
}

// Session GET /v1/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	claims := middleware.GetClaims(c)
	respond(c, http.StatusOK, "Session active.", dto.SessionResponse{
		UserID: claims.UserID,
		Role:   claims.Role,
	})
}
