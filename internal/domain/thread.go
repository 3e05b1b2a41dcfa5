package domain

import "time"

type Audience = string

// audience values as the upstream API speaks them
const (
	AudienceAll   Audience = "semua"
	AudienceGuru  Audience = "guru"
	AudienceSiswa Audience = "siswa"
)

type Author struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Attachment struct {
	Id       int64  `json:"id"`
	FileURL  string `json:"file_url"`
	FileType string `json:"file_type"`
}

type Thread struct {
	Id           string       `json:"id"`
	CategoryName string       `json:"category_name"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Content      string       `json:"content"`
	Audience     Audience     `json:"audience"`
	Views        int          `json:"views"`
	Author       Author       `json:"author"`
	LikesCount   int          `json:"likes_count"`
	IsLiked      bool         `json:"is_liked,omitempty"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

type Category struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
