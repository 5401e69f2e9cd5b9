package models

// Vote marks that a user has up-voted a post. Identity is the
// (user_id, post_id) pair itself; there is no stored direction,
// retracting a vote deletes the row.
type Vote struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID uint `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	User   User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Post   Post `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
