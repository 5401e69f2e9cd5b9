package services

import (
	"errors"

	"postlink/internal/models"

	"gorm.io/gorm"
)

const (
	VoteAddedMessage   = "successfully added vote"
	VoteRemovedMessage = "successfully removed vote"
)

type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

// Cast toggles the voter's vote on a post. Direction 1 adds a vote; zero or
// any negative value retracts one. The check-then-write sequence runs in a
// single transaction, with the composite primary key on (user_id, post_id)
// as the backstop against concurrent duplicate votes.
func (s *VoteService) Cast(postID uint, direction int, voter *models.User) (string, error) {
	var message string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		var existing models.Vote
		findErr := tx.Where("user_id = ? AND post_id = ?", voter.ID, postID).First(&existing).Error

		if direction == 1 {
			if findErr == nil {
				return ErrAlreadyVoted
			}
			vote := models.Vote{UserID: voter.ID, PostID: postID}
			if err := tx.Omit("User", "Post").Create(&vote).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrAlreadyVoted
				}
				return err
			}
			message = VoteAddedMessage
			return nil
		}

		if findErr != nil {
			return ErrVoteNotFound
		}
		if err := tx.Where("user_id = ? AND post_id = ?", voter.ID, postID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		message = VoteRemovedMessage
		return nil
	})
	if err != nil {
		return "", err
	}
	return message, nil
}
