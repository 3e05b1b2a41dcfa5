package domain

import "time"

type NotificationType = string

const (
	NotificationLikeThread  NotificationType = "like_thread"
	NotificationLikePost    NotificationType = "like_post"
	NotificationReplyThread NotificationType = "reply_thread"
	NotificationReplyPost   NotificationType = "reply_post"
	NotificationRankUp      NotificationType = "rank_up"
)

type EntityType = string

const (
	EntityThread       EntityType = "thread"
	EntityPost         EntityType = "post"
	EntityGamification EntityType = "gamification"
)

type NotificationActor struct {
	Id        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Notification is created server-side and delivered either over the realtime
// channel or by fetch. The client mutates is_read only.
type Notification struct {
	Id         string             `json:"id"`
	UserId     string             `json:"user_id"`
	ActorId    string             `json:"actor_id,omitempty"`
	Actor      *NotificationActor `json:"actor,omitempty"` // nil for system-generated
	EntityId   string             `json:"entity_id,omitempty"`
	EntityType EntityType         `json:"entity_type"`
	EntitySlug string             `json:"entity_slug,omitempty"`
	Type       NotificationType   `json:"type"`
	Message    string             `json:"message"`
	IsRead     bool               `json:"is_read"`
	CreatedAt  time.Time          `json:"created_at"`
}
