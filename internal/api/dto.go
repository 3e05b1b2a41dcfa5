// Package api holds the request/response shapes the upstream forum API speaks.
package api

import "github.com/ruangdiskusi/webclient/internal/domain"

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// === Threads ===

type ThreadListResponse struct {
	Data []domain.Thread       `json:"data"`
	Meta domain.PaginationMeta `json:"meta"`
}

type CreateThreadRequest struct {
	CategoryId    string          `json:"category_id" validate:"required"`
	Title         string          `json:"title" validate:"required"`
	Content       string          `json:"content" validate:"required"`
	Audience      domain.Audience `json:"audience" validate:"required,oneof=semua guru siswa"`
	AttachmentIds []int64         `json:"attachment_ids,omitempty"`
}

type UpdateThreadRequest = CreateThreadRequest

type ThreadQuery struct {
	CategoryId string
	Search     string
	Audience   domain.Audience
	SortBy     string // "popular" or "newest"
	Page       int
	Limit      int
}

// === Posts ===

type PostListResponse struct {
	Data []*domain.Post        `json:"data"`
	Meta domain.PaginationMeta `json:"meta"`
}

type CreatePostRequest struct {
	Content       string  `json:"content" validate:"required"`
	ParentId      *string `json:"parent_id,omitempty"`
	AttachmentIds []int64 `json:"attachment_ids,omitempty"`
}

type UpdatePostRequest struct {
	Content       string  `json:"content" validate:"required"`
	AttachmentIds []int64 `json:"attachment_ids,omitempty"`
}

// === Likes ===

type LikeStatusResponse struct {
	Liked bool `json:"liked"`
}

// === Notifications ===

type NotificationListResponse struct {
	Data []domain.Notification `json:"data"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

// === Auth ===

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int64          `json:"expires_in"`
	User        domain.User    `json:"user"`
	Role        domain.Role    `json:"role"`
	Profile     domain.Profile `json:"profile"`
	SearchToken string         `json:"search_token,omitempty"`
}

// === Categories ===

type CategoryListResponse struct {
	Data []domain.Category `json:"data"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// === Admin users ===

type UserWithProfile struct {
	User    domain.User    `json:"user"`
	Role    domain.Role    `json:"role"`
	Profile domain.Profile `json:"profile"`
}

type UserListResponse struct {
	Data []UserWithProfile `json:"data"`
}

type CreateUserRequest struct {
	Username string          `json:"username" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Role     domain.RoleName `json:"role" validate:"required,oneof=admin guru siswa"`
	FullName string          `json:"full_name" validate:"required"`
}

// === Profile ===

type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// === Menfess ===

type MenfessListResponse struct {
	Data []domain.Menfess      `json:"data"`
	Meta domain.PaginationMeta `json:"meta"`
}

type CreateMenfessRequest struct {
	Content string `json:"content" validate:"required"`
}

// === Gamification ===

type LeaderboardResponse struct {
	Data []domain.LeaderboardEntry `json:"data"`
}
