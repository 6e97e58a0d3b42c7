// Package model contains all the models used in the application.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a bilingual blog post. English title and content are required,
// every Urdu field is optional.
type Post struct {
	// ID unique identifier for the post
	ID string `gorm:"type:uuid;primaryKey" json:"id"`
	// Slug URL-safe identifier derived from the English title, unique
	Slug string `gorm:"size:256;uniqueIndex;not null" json:"slug"`
	// TitleEn English title, required
	TitleEn string `gorm:"size:512;not null" json:"titleEn"`
	// TitleUr Urdu title
	TitleUr string `gorm:"size:512" json:"titleUr"`
	// SummaryEn English summary
	SummaryEn string `gorm:"type:text" json:"summaryEn"`
	// SummaryUr Urdu summary
	SummaryUr string `gorm:"type:text" json:"summaryUr"`
	// Content post body, HTML or markdown
	Content string `gorm:"type:text;not null" json:"content"`
	// Tags comma-joined tag string
	Tags string `gorm:"type:text" json:"tags"`
	// CoverImage reference to the cover image
	CoverImage string `gorm:"size:1024" json:"coverImage"`
	// Published whether the post is publicly visible
	Published bool `gorm:"not null;default:false" json:"published"`
	// PublishedAt set once on first publish, never cleared by unpublishing
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	// Comments owned comments, removed together with the post
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the posts table name
func (Post) TableName() string {
	return "posts"
}

// BeforeCreate assigns a fresh uuid when none is set.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TagList splits the comma-joined tag string into trimmed tags.
func (p *Post) TagList() []string {
	return ParseTags(p.Tags)
}

// ParseTags splits a comma-joined tag string, dropping empty entries.
func ParseTags(tags string) []string {
	if tags == "" {
		return nil
	}

	var out []string
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// FormatTags joins tags back into the stored comma-joined form.
func FormatTags(tags []string) string {
	return strings.Join(tags, ",")
}
