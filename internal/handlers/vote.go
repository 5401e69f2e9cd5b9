package handlers

import (
	"net/http"

	"postlink/internal/middleware"
	"postlink/internal/schemas"
	"postlink/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes *services.VoteService
}

func NewVoteHandler(votes *services.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Cast toggles the current user's vote on a post.
func (h *VoteHandler) Cast(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req schemas.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindError(c, err)
		return
	}

	message, err := h.votes.Cast(req.PostID, *req.Direction, user)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": message})
}
