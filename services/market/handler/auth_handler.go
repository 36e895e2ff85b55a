package handler

import (
	"net/http"

	model "agrimarket/internal/models"
	"agrimarket/services/market/helpers"
	"agrimarket/utils"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Login(email, password, role string) (model.User, error)
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginHandler handles POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Login(req.Email, req.Password, req.Role)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, map[string]any{"role": req.Role})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"email": user.Email,
		"role":  user.Role,
	})
}
