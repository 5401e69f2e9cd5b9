// Package schemas defines the typed request and response bodies of the API.
// Request structs carry binding tags validated at the boundary before any
// service runs.
package schemas

import (
	"time"

	"postlink/internal/models"
)

type UserCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserOut struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginForm mirrors an OAuth2 password form: username carries the email.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type PostCreate struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	// Defaults to true when omitted.
	Published *bool `json:"published"`
}

type PostOut struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id"`
	User      UserOut   `json:"user"`
}

type PostVotesOut struct {
	PostOut
	Votes int64 `json:"votes"`
}

// VoteRequest accepts 1 for an up-vote; zero and any negative value mean
// retract, hence the lte bound instead of a strict enum.
type VoteRequest struct {
	PostID    uint `json:"post_id" binding:"required"`
	Direction *int `json:"direction" binding:"required,lte=1"`
}

func NewUserOut(user *models.User) UserOut {
	return UserOut{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func NewPostOut(post *models.Post) PostOut {
	return PostOut{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		UserID:    post.UserID,
		User:      NewUserOut(&post.User),
	}
}

func NewPostVotesOut(post *models.Post, votes int64) PostVotesOut {
	return PostVotesOut{
		PostOut: NewPostOut(post),
		Votes:   votes,
	}
}
