package notification

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

const (
	CategoryEndpoint    = "endpoint_alert"
	CategoryCritical    = "critical_alert"
	CategorySlow        = "slow_response"
	CategoryDiagnosis   = "diagnosis_alert"
	CategoryConsecutive = "consecutive_errors"
	CategoryDowntime    = "downtime_alert"
	CategoryOffline     = "offline_alert"
)

// Key builds a cooldown key from stable identity fields only.
func Key(category string, parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, "_")))
	return category + "_" + hex.EncodeToString(sum[:])
}

// CooldownStore is the shared cooldown state. Lock guards the check-then-set sequence of one key.
type CooldownStore interface {
	IsCooling(ctx context.Context, key string) (bool, error)
	StartCooldown(ctx context.Context, key string, ttl time.Duration) error
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

type memoryCooldownStore struct {
	mu       sync.Mutex
	expiries map[string]time.Time
	locks    map[string]time.Time
	now      func() time.Time
}

func (m *memoryCooldownStore) IsCooling(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.expiries[key]
	if !ok {
		return false, nil
	}
	if !m.now().Before(expiry) {
		delete(m.expiries, key)
		return false, nil
	}
	return true, nil
}

func (m *memoryCooldownStore) StartCooldown(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expiries[key] = m.now().Add(ttl)
	return nil
}

func (m *memoryCooldownStore) Lock(_ context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if until, ok := m.locks[key]; ok && m.now().Before(until) {
		return false, nil
	}
	m.locks[key] = m.now().Add(ttl)
	return true, nil
}

func (m *memoryCooldownStore) Unlock(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, key)
	return nil
}

// NewMemoryCooldownStore keeps cooldowns in process memory. They reset on restart.
func NewMemoryCooldownStore(now func() time.Time) CooldownStore {
	if now == nil {
		now = time.Now
	}
	return &memoryCooldownStore{
		expiries: make(map[string]time.Time),
		locks:    make(map[string]time.Time),
		now:      now,
	}
}
