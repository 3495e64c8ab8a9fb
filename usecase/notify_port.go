package usecase

import (
	"context"

	"github.com/KwonOil/easyplanner/domain"
)

// InviteNotifier abstracts the notification outbox so use cases stay
// storage-agnostic.
type InviteNotifier interface {
	NotifyInvite(ctx context.Context, invite domain.Invite) error
}
