package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/core/domain"
)

type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *recordingAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *recordingAuditRepo) snapshot() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func waitForEntries(t *testing.T, repo *recordingAuditRepo, want int) []domain.AuditEntry {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if entries := repo.snapshot(); len(entries) >= want {
			return entries
		}
		time.Sleep(5 * time.Millisecond)
	}
	entries := repo.snapshot()
	t.Fatalf("expected %d entries, got %d after timeout", want, len(entries))
	return entries
}

func TestDispatcher_DeliversEntries(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.AuditEntry{ActorID: 1, Action: domain.AuditTodoCreated, TodoID: 10})
	d.Record(domain.AuditEntry{ActorID: 2, Action: domain.AuditUserRegistered})

	entries := waitForEntries(t, repo, 2)
	actions := map[string]bool{}
	for _, e := range entries {
		actions[e.Action] = true
	}
	if !actions[domain.AuditTodoCreated] || !actions[domain.AuditUserRegistered] {
		t.Fatalf("missing entries: %+v", entries)
	}
}

func TestDispatcher_PerActorOrdering(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 1; i <= n; i++ {
		d.Record(domain.AuditEntry{ActorID: 7, Action: domain.AuditTodoUpdated, TodoID: int64(i)})
	}

	entries := waitForEntries(t, repo, n)
	var last int64
	for _, e := range entries {
		if e.ActorID != 7 {
			continue
		}
		if e.TodoID <= last {
			t.Fatalf("entries for one actor arrived out of order: %d after %d", e.TodoID, last)
		}
		last = e.TodoID
	}
	if last != n {
		t.Fatalf("expected last todo id %d, got %d", n, last)
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingAuditRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingAuditRepo{}, zerolog.Nop())
	for _, actor := range []int64{1, 2, 42, 99999} {
		first := d.shardIndex(actor)
		for i := 0; i < 5; i++ {
			if got := d.shardIndex(actor); got != first {
				t.Fatalf("shard for actor %d not stable: %d vs %d", actor, got, first)
			}
		}
		if first < 0 || first >= len(d.workers) {
			t.Fatalf("shard %d out of range", first)
		}
	}
}
