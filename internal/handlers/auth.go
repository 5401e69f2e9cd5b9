package handlers

import (
	"net/http"

	"postlink/internal/schemas"
	"postlink/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login exchanges form credentials (username carries the email) for a bearer
// token.
func (h *AuthHandler) Login(c *gin.Context) {
	var form schemas.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		BindError(c, err)
		return
	}

	token, err := h.users.Login(form.Username, form.Password)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schemas.Token{AccessToken: token, TokenType: "bearer"})
}
