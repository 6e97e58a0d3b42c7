package model

import "time"

// SiteMetaID fixed primary key of the singleton settings row.
const SiteMetaID = "main"

// SiteMeta is the singleton record holding bilingual about text and
// social/contact links, edited through the admin settings form.
type SiteMeta struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	AboutEn   string    `gorm:"type:text" json:"aboutEn"`
	AboutUr   string    `gorm:"type:text" json:"aboutUr"`
	Email     string    `gorm:"size:256" json:"email"`
	Phone     string    `gorm:"size:64" json:"phone"`
	Facebook  string    `gorm:"size:512" json:"facebook"`
	Twitter   string    `gorm:"size:512" json:"twitter"`
	Instagram string    `gorm:"size:512" json:"instagram"`
	Linkedin  string    `gorm:"size:512" json:"linkedin"`
	Youtube   string    `gorm:"size:512" json:"youtube"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the site meta table name
func (SiteMeta) TableName() string {
	return "site_meta"
}
