package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/domain"
	"github.com/KwonOil/easyplanner/internal/infrastructure/outbox"
	"github.com/KwonOil/easyplanner/usecase"
)

// Deliverer sends a single invite notification. Delivery failure is retried
// on the next drain.
type Deliverer interface {
	DeliverInvite(ctx context.Context, invite domain.Invite) error
}

// LogDeliverer writes invite notifications to the log. It stands in until a
// real mail or messenger integration exists.
type LogDeliverer struct {
	Logger *zap.Logger
}

func (d LogDeliverer) DeliverInvite(_ context.Context, invite domain.Invite) error {
	d.Logger.Info("invite delivered",
		zap.String("project", invite.ProjectName),
		zap.String("inviter", invite.InviterName),
		zap.String("invitee", invite.InviteeName))
	return nil
}

// NotifierConfig controls how frequently the outbox is drained.
type NotifierConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// Notifier drains queued invite notifications on a schedule.
type Notifier struct {
	store     *outbox.Store
	deliverer Deliverer
	logger    *zap.Logger
	cron      *cron.Cron
	cfg       NotifierConfig
}

func NewNotifier(store *outbox.Store, deliverer Deliverer, logger *zap.Logger, cfg NotifierConfig) *Notifier {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	n := &Notifier{
		store:     store,
		deliverer: deliverer,
		logger:    logger,
		cfg:       cfg,
		cron:      cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = n.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := n.Drain(ctx); err != nil {
			n.logger.Error("outbox drain failed", zap.Error(err))
		}
	})

	return n
}

// Start launches the cron scheduler.
func (n *Notifier) Start() {
	if n == nil || n.cron == nil {
		return
	}
	n.cron.Start()
	n.logger.Info("notifier started")
}

// Stop gracefully stops the scheduler.
func (n *Notifier) Stop(ctx context.Context) {
	if n == nil || n.cron == nil {
		return
	}
	stopCtx := n.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	n.logger.Info("notifier stopped")
}

// NotifyInvite queues an invite for delivery.
func (n *Notifier) NotifyInvite(_ context.Context, invite domain.Invite) error {
	if n == nil || n.store == nil {
		return fmt.Errorf("notifier not configured")
	}
	payload, err := json.Marshal(invite)
	if err != nil {
		return err
	}
	return n.store.Enqueue(outbox.Item{
		Kind:    outbox.KindInvite,
		Payload: payload,
	})
}

// Drain delivers queued items synchronously. Items that keep failing past
// MaxRetries are dropped with a warning.
func (n *Notifier) Drain(ctx context.Context) error {
	if n == nil || n.store == nil {
		return nil
	}

	items, err := n.store.GetBatch(n.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := n.processItem(ctx, item); err != nil {
			n.logger.Error("failed to deliver notification",
				zap.String("item_id", item.ID),
				zap.String("kind", item.Kind),
				zap.Error(err))

			item.Retries++
			if item.Retries >= n.cfg.MaxRetries {
				n.logger.Warn("dropping notification (max retries reached)", zap.String("item_id", item.ID))
				_ = n.store.Remove(item)
				continue
			}

			if err := n.store.Remove(item); err != nil {
				n.logger.Warn("failed to remove outbox item", zap.Error(err))
			}
			if err := n.store.Requeue(item); err != nil {
				n.logger.Error("failed to requeue outbox item", zap.Error(err))
			}
			continue
		}

		if err := n.store.Remove(item); err != nil {
			n.logger.Warn("failed to purge delivered item", zap.Error(err))
		}
	}
	return nil
}

// Size returns the number of queued notifications.
func (n *Notifier) Size() int {
	if n == nil || n.store == nil {
		return 0
	}
	size, err := n.store.Size()
	if err != nil {
		return 0
	}
	return size
}

func (n *Notifier) processItem(ctx context.Context, item outbox.Item) error {
	switch item.Kind {
	case outbox.KindInvite:
		var invite domain.Invite
		if err := json.Unmarshal(item.Payload, &invite); err != nil {
			return err
		}
		return n.deliverer.DeliverInvite(ctx, invite)
	default:
		return fmt.Errorf("unsupported kind %s", item.Kind)
	}
}

var _ usecase.InviteNotifier = (*Notifier)(nil)
