package domain

import (
	"context"
	"time"
)

const NotificationNewLike = "new_like"

// NotificationEvent is handed to the sender after a like is created. It is not persisted.
type NotificationEvent struct {
	Kind              string          `json:"kind"`
	ActorUserID       int64           `json:"actor_user_id"`
	Target            EntityReference `json:"target"`
	TargetOwnerUserID int64           `json:"target_owner_user_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

func NewLikeNotification(like Like, ownerID int64) NotificationEvent {
	return NotificationEvent{
		Kind:              NotificationNewLike,
		ActorUserID:       like.UserID,
		Target:            like.Target,
		TargetOwnerUserID: ownerID,
		CreatedAt:         like.CreatedAt,
	}
}

// NotificationSender delivers an event to the notification subsystem.
type NotificationSender interface {
	Send(ctx context.Context, event NotificationEvent) error
}

// LikeNotifier is fired once per newly created like. It never fails the caller.
type LikeNotifier interface {
	NotifyNewLike(ctx context.Context, event NotificationEvent)
}

// OwnerResolver returns the id of the user who authored the target.
type OwnerResolver interface {
	OwnerOf(ctx context.Context, target EntityReference) (int64, error)
}
