package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/o064/SWE-Back-End/internal/model"
	"github.com/o064/SWE-Back-End/internal/response"
	"github.com/o064/SWE-Back-End/internal/service"
	"github.com/o064/SWE-Back-End/internal/validator"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup godoc
// POST /api/v1/auth/signup
// Registers a new student account and returns a bearer token.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithToken(c, http.StatusCreated, token, gin.H{"user": user})
}

// Login godoc
// POST /api/v1/auth/login
// Authenticates a user by email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithToken(c, http.StatusOK, token, gin.H{"user": user})
}
