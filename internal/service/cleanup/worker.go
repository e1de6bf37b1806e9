package cleanup

import (
	"context"
	"time"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/game"
	"github.com/rs/zerolog/log"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	FinishedTTL    time.Duration
	IdleTTL        time.Duration
	Now            func() time.Time
}

func NewWorker(sm *game.SessionManager, interval, finishedTTL, idleTTL time.Duration) *Worker {
	return &Worker{
		SessionManager: sm,
		Interval:       interval,
		FinishedTTL:    finishedTTL,
		IdleTTL:        idleTTL,
		Now:            time.Now,
	}
}

// Start runs a cleanup immediately and then on every tick until ctx is
// done. It blocks, so callers usually run it on its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.RunCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).Msg("background worker started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("component", "cleanup").Msg("background worker stopped")
			return
		case <-ticker.C:
			w.RunCleanup()
		}
	}
}

// RunCleanup executes one cleanup pass and returns the number of
// sessions removed.
func (w *Worker) RunCleanup() int {
	log.Debug().Str("component", "cleanup").Msg("starting scheduled cleanup task")
	return w.SessionManager.CleanupOldSessions(w.Now(), w.FinishedTTL, w.IdleTTL)
}
