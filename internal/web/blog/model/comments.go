package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment represents a reader comment on a post.
type Comment struct {
	// ID is the unique identifier for the comment
	ID string `gorm:"type:uuid;primaryKey" json:"id"`
	// PostID is the identifier of the blog post this comment belongs to
	PostID string `gorm:"type:uuid;index;not null" json:"postId"`
	// Name is the display name of the comment author
	Name string `gorm:"size:256;not null" json:"name"`
	// Email is the optional address of the commenter; hidden from
	// comment payloads, surfaced only through the admin listing
	Email string `gorm:"size:256" json:"-"`
	// Content contains the actual text of the comment
	Content string `gorm:"type:text;not null" json:"content"`
	// Approved indicates whether the comment is publicly visible
	Approved bool `gorm:"not null;default:false" json:"approved"`
	// IPHash one-way hash of the submitter's network address.
	// The raw address is never stored.
	IPHash    string    `gorm:"size:64" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the comments table name
func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate assigns a fresh uuid when none is set.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
