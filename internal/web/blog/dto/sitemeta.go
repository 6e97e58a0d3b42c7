package dto

// SiteMetaInput is the admin payload of the settings form.
type SiteMetaInput struct {
	AboutEn   string `json:"aboutEn"`
	AboutUr   string `json:"aboutUr"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
	Youtube   string `json:"youtube"`
}
