package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostOwner       = errors.New("cannot modify another user's post")
	ErrAlreadyVoted       = errors.New("already voted on this post")
	ErrVoteNotFound       = errors.New("vote does not exist")
)
