package notification

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	defaultLockTTL = time.Minute
	lockTTLMargin  = 15 * time.Second
)

// LockTTL bounds an attempt that waits on every channel for the full delivery timeout in turn.
func LockTTL(deliveryTimeout time.Duration, channels int) time.Duration {
	ttl := deliveryTimeout*time.Duration(channels) + lockTTLMargin
	if ttl < defaultLockTTL {
		return defaultLockTTL
	}
	return ttl
}

// Gate dispatches a message at most once per cooldown window of its key.
type Gate interface {
	Attempt(ctx context.Context, key string, cooldown time.Duration, message string) (bool, error)
}

type gate struct {
	store     CooldownStore
	deliverer Deliverer
	recipient string
	lockTTL   time.Duration
	logger    *zap.Logger
}

func (g *gate) Attempt(ctx context.Context, key string, cooldown time.Duration, message string) (bool, error) {
	locked, err := g.store.Lock(ctx, key, g.lockTTL)
	if err != nil {
		return false, fmt.Errorf("Gate.Attempt: %w", err)
	}
	if !locked {
		g.logger.Info("notification skipped, another attempt in flight", zap.String("cooldown_key", key))
		return false, nil
	}
	defer func() {
		if e := g.store.Unlock(context.WithoutCancel(ctx), key); e != nil {
			g.logger.Warn("failed to release cooldown lock", zap.String("cooldown_key", key), zap.Error(e))
		}
	}()

	cooling, err := g.store.IsCooling(ctx, key)
	if err != nil {
		return false, fmt.Errorf("Gate.Attempt: %w", err)
	}
	if cooling {
		g.logger.Info("notification skipped, cooldown active", zap.String("cooldown_key", key), zap.Duration("cooldown", cooldown))
		return false, nil
	}

	res, err := g.deliverer.Send(ctx, message, g.recipient)
	if err != nil {
		if errors.Is(err, apperrors.ErrDeliveryDisabled) {
			return false, fmt.Errorf("Gate.Attempt: %w", err)
		}
		return false, fmt.Errorf("Gate.Attempt: %w", multierr.Combine(apperrors.ErrDeliveryFailed, err))
	}
	if !res.Status {
		return false, fmt.Errorf("Gate.Attempt: %w: %s", apperrors.ErrDeliveryFailed, res.Raw)
	}

	if err = g.store.StartCooldown(context.WithoutCancel(ctx), key, cooldown); err != nil {
		return true, fmt.Errorf("Gate.Attempt: %w", err)
	}
	g.logger.Info("notification sent", zap.String("cooldown_key", key), zap.Duration("cooldown", cooldown))
	return true, nil
}

// NewGate holds the per-key lock for lockTTL, zero means one minute.
func NewGate(store CooldownStore, deliverer Deliverer, recipient string, lockTTL time.Duration, logger *zap.Logger) Gate {
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	return &gate{
		store:     store,
		deliverer: deliverer,
		recipient: recipient,
		lockTTL:   lockTTL,
		logger:    logger,
	}
}
