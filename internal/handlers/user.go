package handlers

import (
	"net/http"
	"strconv"

	"postlink/internal/schemas"
	"postlink/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req schemas.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		BindError(c, err)
		return
	}

	user, err := h.users.Register(req.Email, req.Password)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schemas.NewUserOut(user))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrUserNotFound.Error()})
		return
	}

	user, err := h.users.Get(uint(id))
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schemas.NewUserOut(user))
}
