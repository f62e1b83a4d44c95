package notification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/feed-engagement/domain"
)

// LogSender only logs events. It is used when no broker is configured.
type LogSender struct{}

var _ domain.NotificationSender = LogSender{}

func (LogSender) Send(_ context.Context, event domain.NotificationEvent) error {
	logrus.WithFields(logrus.Fields{
		"kind":                 event.Kind,
		"actor_user_id":        event.ActorUserID,
		"target":               event.Target.String(),
		"target_owner_user_id": event.TargetOwnerUserID,
	}).Info("notification")
	return nil
}
