package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/bot"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/game"
)

func TestRunCleanupRemovesIdleSessions(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sm := game.NewSessionManager(bot.NewEngine(bot.NewSeededSource(1)), game.Options{
		Depth: 1,
		Now:   func() time.Time { return start },
	})
	sm.Create(true)
	sm.Create(true)

	w := NewWorker(sm, time.Hour, time.Hour, 24*time.Hour)
	w.Now = func() time.Time { return start.Add(time.Hour) }
	if removed := w.RunCleanup(); removed != 0 {
		t.Fatalf("expected nothing removed, got %d", removed)
	}

	w.Now = func() time.Time { return start.Add(48 * time.Hour) }
	if removed := w.RunCleanup(); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if sm.Count() != 0 {
		t.Fatalf("sessions left behind: %d", sm.Count())
	}
}

func TestStartStopsWithContext(t *testing.T) {
	sm := game.NewSessionManager(bot.RandomMover{Source: bot.NewSeededSource(1)}, game.Options{Depth: 1})
	s := sm.Create(true)
	if s.Snapshot().Status != domain.StatusAwaitingPlayer {
		t.Fatalf("unexpected initial status")
	}

	w := NewWorker(sm, 5*time.Millisecond, time.Hour, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker did not stop after cancel")
	}
	if sm.Count() != 1 {
		t.Fatalf("fresh session should survive cleanup")
	}
}
