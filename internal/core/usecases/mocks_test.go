// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"sync"
	"time"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
)

// mockProber es un mock de ports.Prober: los candidatos en hits tienen éxito.
type mockProber struct {
	name  string
	hits  map[domain.Candidate]bool
	delay time.Duration

	mu    sync.Mutex
	calls []domain.Candidate
}

func newMockProber(name string, hits ...string) *mockProber {
	m := &mockProber{name: name, hits: make(map[domain.Candidate]bool)}
	for _, h := range hits {
		m.hits[domain.Candidate(h)] = true
	}
	return m
}

func (m *mockProber) Name() string {
	return m.name
}

func (m *mockProber) Probe(ctx context.Context, c domain.Candidate) domain.ProbeResult {
	m.mu.Lock()
	m.calls = append(m.calls, c)
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return domain.NewFailure(c, m.name, ctx.Err(), 0)
		}
	}

	if m.hits[c] {
		return domain.NewSuccess(c, m.name, time.Millisecond)
	}
	return domain.NewFailure(c, m.name, nil, time.Millisecond)
}

// getCalls returns the probed candidates (thread-safe)
func (m *mockProber) getCalls() []domain.Candidate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Candidate(nil), m.calls...)
}

// mockNotifier es un mock de ports.Notifier para tests
type mockNotifier struct {
	mu              sync.Mutex
	notifyFunc      func(ctx context.Context, event ports.Event) error
	closeFunc       func() error
	notifyCallCount int
	events          []ports.Event
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{
		notifyCallCount: 0,
		events:          []ports.Event{},
	}
}

func (m *mockNotifier) Notify(ctx context.Context, event ports.Event) error {
	m.mu.Lock()
	m.notifyCallCount++
	m.events = append(m.events, event)
	m.mu.Unlock()

	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, event)
	}
	return nil
}

func (m *mockNotifier) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}

// getEventsByType returns events filtered by type
func (m *mockNotifier) getEventsByType(eventType ports.EventType) []ports.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var filtered []ports.Event
	for _, e := range m.events {
		if e.Type == eventType {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// getEventTypes returns the type of every received event, in order
func (m *mockNotifier) getEventTypes() []ports.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()

	types := make([]ports.EventType, len(m.events))
	for i, e := range m.events {
		types[i] = e.Type
	}
	return types
}

// getNotifyCallCount returns the number of times Notify was called (thread-safe)
func (m *mockNotifier) getNotifyCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifyCallCount
}
