package news

import (
	"context"
	"errors"
	"sync"
	"time"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/interfaces"
)

// call records the arguments of one Fetch
type call struct {
	category string
	page     int
	pageSize int
}

// mockSource is a Source that records calls and returns fetchFunc's result
type mockSource struct {
	name      string
	mu        sync.Mutex
	calls     []call
	fetchFunc func(ctx context.Context, category string, page, pageSize int) domain.FetchResult
}

func (m *mockSource) Name() string {
	return m.name
}

func (m *mockSource) Fetch(ctx context.Context, category string, page, pageSize int) domain.FetchResult {
	m.mu.Lock()
	m.calls = append(m.calls, call{category: category, page: page, pageSize: pageSize})
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, category, page, pageSize)
	}
	return domain.NewListResult([]domain.Article{{
		ID:       m.name + ":" + category,
		Title:    category,
		URL:      "https://example.com/" + category,
		Source:   domain.Source{Name: m.name},
		Category: category,
	}})
}

func (m *mockSource) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockSource) lastCall() call {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return call{}
	}
	return m.calls[len(m.calls)-1]
}

// mapStore is an in-memory interfaces.Cache
type mapStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	broken bool
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string][]byte)}
}

func (m *mapStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.broken {
		return nil, errors.New("disk I/O error")
	}
	v, ok := m.data[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return v, nil
}

func (m *mapStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.broken {
		return errors.New("disk I/O error")
	}
	m.data[key] = value
	return nil
}

func (m *mapStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mapStore) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

// fakeClock is a settable clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
