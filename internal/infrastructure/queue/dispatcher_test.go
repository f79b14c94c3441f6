package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

type stubNotifier struct {
	mu     sync.Mutex
	events []domain.LeadEvent
	done   chan struct{}
	want   int
}

func newStubNotifier(want int) *stubNotifier {
	return &stubNotifier{done: make(chan struct{}), want: want}
}

func (s *stubNotifier) Process(_ context.Context, event domain.LeadEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *stubNotifier) wait(t *testing.T) []domain.LeadEvent {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LeadEvent, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_ShardIndexIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	first := d.shardIndex("9876543210")
	for range 10 {
		if got := d.shardIndex("9876543210"); got != first {
			t.Fatalf("shard index changed: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	notifier := newStubNotifier(3)
	d := NewDispatcher(2, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.LeadEvent{Kind: domain.LeadSubmitted, LeadID: 1, Phone: "9876543210"})
	d.Enqueue(domain.LeadEvent{Kind: domain.LeadStatusChanged, LeadID: 1, Phone: "9876543210"})
	d.Enqueue(domain.LeadEvent{Kind: domain.LeadSubmitted, LeadID: 2, Phone: "5550001111"})

	events := notifier.wait(t)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestDispatcher_SamePhoneKeepsOrder(t *testing.T) {
	const n = 20
	notifier := newStubNotifier(n)
	d := NewDispatcher(4, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := range n {
		d.Enqueue(domain.LeadEvent{Kind: domain.LeadStatusChanged, LeadID: int64(i), Phone: "9876543210"})
	}

	events := notifier.wait(t)
	for i, event := range events {
		if event.LeadID != int64(i) {
			t.Fatalf("event %d out of order: lead %d", i, event.LeadID)
		}
	}
}
