// Package notification hands new-like events to the delivery subsystem.
package notification

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/feed-engagement/domain"
)

// Trigger delivers synchronously and absorbs sender failures.
type Trigger struct {
	sender domain.NotificationSender
}

var _ domain.LikeNotifier = (*Trigger)(nil)

func NewTrigger(sender domain.NotificationSender) *Trigger {
	return &Trigger{sender: sender}
}

func (t *Trigger) NotifyNewLike(ctx context.Context, event domain.NotificationEvent) {
	if err := t.sender.Send(ctx, event); err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrNotificationDeliveryFailed, err)
		logrus.WithFields(logrus.Fields{
			"actor_user_id":        event.ActorUserID,
			"target":               event.Target.String(),
			"target_owner_user_id": event.TargetOwnerUserID,
		}).Error(err)
	}
}
