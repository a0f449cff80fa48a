package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
)

type mockCacheRepo struct {
	store    map[string]string
	getErr   error
	patterns []string
}

func (m *mockCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal([]byte(raw), dest)
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.store == nil {
		m.store = make(map[string]string)
	}
	m.store[key] = string(raw)
	return nil
}

func (m *mockCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.patterns = append(m.patterns, pattern)
	return nil
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := &mockCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var out []string
	assert.False(t, svc.Get(context.Background(), "k", &out))

	svc.Set(context.Background(), "k", []string{"a", "b"})
	assert.True(t, svc.Get(context.Background(), "k", &out))
	assert.Equal(t, []string{"a", "b"}, out)

	svc.Invalidate(context.Background(), "k")
	assert.Equal(t, []string{"k"}, repo.patterns)
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := &mockCacheRepo{store: map[string]string{"k": `["a"]`}}
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	var out []string
	assert.False(t, svc.Get(context.Background(), "k", &out))

	var nilSvc *CacheService
	assert.False(t, nilSvc.Get(context.Background(), "k", &out))
	nilSvc.Set(context.Background(), "k", out)
	nilSvc.Invalidate(context.Background(), "k")
}

func TestCacheServiceGetFailureIsMiss(t *testing.T) {
	repo := &mockCacheRepo{getErr: errors.New("redis down")}
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var out []string
	assert.False(t, svc.Get(context.Background(), "k", &out))
}
