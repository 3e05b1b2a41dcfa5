package domain

import "time"

// Post is one reply in a thread. The upstream API returns each page of
// replies tree-shaped: root posts for the page with descendants already
// grouped under their nearest ancestor in the result set via Replies.
// ParentId, when set, references a post within the same thread.
type Post struct {
	Id          string       `json:"id"`
	ThreadId    string       `json:"thread_id"`
	ParentId    *string      `json:"parent_id,omitempty"`
	Content     string       `json:"content"`
	Author      Author       `json:"author"`
	LikesCount  int          `json:"likes_count"`
	IsLiked     bool         `json:"is_liked,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Replies     []*Post      `json:"replies,omitempty"`
}
