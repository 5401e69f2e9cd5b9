package services

import (
	"errors"

	"postlink/internal/models"

	"gorm.io/gorm"
)

// DefaultListLimit is applied when a list request carries no usable limit.
const DefaultListLimit = 50

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// PostVotes pairs a post with its computed vote count.
type PostVotes struct {
	Post  models.Post
	Votes int64
}

// List returns posts filtered by a title substring, ordered by id for
// determinism, with their vote counts. Posts without votes report 0.
func (s *PostService) List(search string, limit, offset int) ([]PostVotes, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := s.db.Preload("User").Order("id ASC").Limit(limit).Offset(offset)
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}

	counts, err := s.voteCounts(posts)
	if err != nil {
		return nil, err
	}

	result := make([]PostVotes, len(posts))
	for i, post := range posts {
		result[i] = PostVotes{Post: post, Votes: counts[post.ID]}
	}
	return result, nil
}

// voteCounts batch-counts votes grouped by post id for one page of posts.
// Posts absent from the map have zero votes.
func (s *PostService) voteCounts(posts []models.Post) (map[uint]int64, error) {
	countMap := make(map[uint]int64)
	if len(posts) == 0 {
		return countMap, nil
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int64
	}
	var results []countResult
	err := s.db.Model(&models.Vote{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		countMap[r.PostID] = r.Count
	}
	return countMap, nil
}

// Get returns a single post with its vote count, regardless of owner or
// published state.
func (s *PostService) Get(id uint) (*PostVotes, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	var votes int64
	if err := s.db.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&votes).Error; err != nil {
		return nil, err
	}

	return &PostVotes{Post: post, Votes: votes}, nil
}

// Create stores a new post owned by the requester. The owner always comes
// from the authenticated user, never from the request body.
func (s *PostService) Create(title, content string, published bool, owner *models.User) (*models.Post, error) {
	post := models.Post{
		Title:     title,
		Content:   content,
		Published: published,
		UserID:    owner.ID,
	}
	if err := s.db.Omit("User").Create(&post).Error; err != nil {
		return nil, err
	}
	post.User = *owner
	return &post, nil
}

// Update replaces title, content and published entirely. Owner and
// created_at are immutable.
func (s *PostService) Update(id uint, title, content string, published bool, requester *models.User) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if post.UserID != requester.ID {
		return nil, ErrNotPostOwner
	}

	// Map form so a false published value is written as well.
	updates := map[string]interface{}{
		"title":     title,
		"content":   content,
		"published": published,
	}
	if err := s.db.Model(&post).Updates(updates).Error; err != nil {
		return nil, err
	}

	post.User = *requester
	return &post, nil
}

// Delete removes a post owned by the requester. Votes cascade away in the
// storage layer.
func (s *PostService) Delete(id uint, requester *models.User) error {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if post.UserID != requester.ID {
		return ErrNotPostOwner
	}

	return s.db.Delete(&post).Error
}
