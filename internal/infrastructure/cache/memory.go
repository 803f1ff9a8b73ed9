package cache

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"
)

// Memory is an in-process JSON cache used when Redis is not reachable.
// Entries share one lifetime; the per-call ttl is ignored.
type Memory struct {
	cache  *bigcache.BigCache
	logger *zap.Logger
}

func NewMemory(ttl time.Duration, logger *zap.Logger) (*Memory, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	cfg := bigcache.DefaultConfig(ttl)
	cfg.Verbose = false
	bc, err := bigcache.NewBigCache(cfg)
	if err != nil {
		return nil, err
	}
	return &Memory{cache: bc, logger: logger}, nil
}

func (m *Memory) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, err := m.cache.Get(key)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return false, nil
		}
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.cache.Set(key, b)
}

func (m *Memory) Delete(_ context.Context, key string) error {
	err := m.cache.Delete(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil
	}
	return err
}

// DeleteByPattern removes every key matching a glob pattern such as
// "jobs:search:*".
func (m *Memory) DeleteByPattern(_ context.Context, pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return err
	}

	var keys []string
	it := m.cache.Iterator()
	for it.SetNext() {
		entry, err := it.Value()
		if err != nil {
			continue
		}
		if ok, _ := path.Match(pattern, entry.Key()); ok {
			keys = append(keys, entry.Key())
		}
	}

	for _, k := range keys {
		if err := m.cache.Delete(k); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
			m.logger.Warn("memory cache delete failed", zap.String("key", k), zap.Error(err))
		}
	}
	return nil
}

func (m *Memory) Close() error {
	return m.cache.Close()
}
