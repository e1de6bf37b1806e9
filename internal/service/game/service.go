package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/pkg/uid"
	"github.com/rs/zerolog/log"
)

const ErrSessionNotFound domain.Error = "session not found"

// Notifier receives a snapshot after every state change. Host adapters
// (terminal, webview, extension panel) implement it to redraw.
type Notifier interface {
	Publish(sessionID string, snap domain.Snapshot)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(sessionID string, snap domain.Snapshot)

func (f NotifierFunc) Publish(sessionID string, snap domain.Snapshot) {
	f(sessionID, snap)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, domain.Snapshot) {}

type Options struct {
	Depth         int
	ThinkingDelay time.Duration
	Notifier      Notifier
	Now           func() time.Time
}

// SessionManager owns every in-memory game. Sessions are independent, so
// any number of games may run at once.
type SessionManager struct {
	Session map[string]*Session // gameID → Session
	mu      sync.RWMutex
	chooser domain.MoveChooser
	opts    Options
}

func NewSessionManager(chooser domain.MoveChooser, opts Options) *SessionManager {
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Depth < 1 {
		opts.Depth = 1
	}
	return &SessionManager{
		Session: make(map[string]*Session),
		chooser: chooser,
		opts:    opts,
	}
}

// Create starts a new game. When the computer moves first its opening
// move is scheduled right away.
func (sm *SessionManager) Create(humanFirst bool) *Session {
	now := sm.opts.Now()
	s := &Session{
		ID:        uid.GenerateGameID(),
		Game:      domain.NewGame(humanFirst),
		Depth:     sm.opts.Depth,
		CreatedAt: now,
		UpdatedAt: now,
		manager:   sm,
	}

	sm.mu.Lock()
	sm.Session[s.ID] = s
	sm.mu.Unlock()

	log.Info().Str("component", "session").Str("game_id", s.ID).Bool("human_first", humanFirst).
		Int("depth", s.Depth).Msg("created session")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishLocked()
	if s.Game.Status == domain.StatusAwaitingAI {
		s.scheduleAILocked()
	}
	return s
}

func (sm *SessionManager) Get(gameID string) (*Session, bool) {
	if !uid.IsGameID(gameID) {
		return nil, false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	s, exists := sm.Session[gameID]
	return s, exists
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

func (sm *SessionManager) Remove(gameID string) error {
	sm.mu.Lock()
	s, exists := sm.Session[gameID]
	if !exists {
		sm.mu.Unlock()
		return fmt.Errorf("game: remove %s: %w", gameID, ErrSessionNotFound)
	}
	delete(sm.Session, gameID)
	sm.mu.Unlock()

	s.mu.Lock()
	s.cancelPendingLocked()
	s.mu.Unlock()

	log.Info().Str("component", "session").Str("game_id", gameID).Msg("removed session")
	return nil
}

// HandleMove routes a player move to the session with gameID.
func (sm *SessionManager) HandleMove(gameID string, column int) error {
	s, exists := sm.Get(gameID)
	if !exists {
		return fmt.Errorf("game: move in %s: %w", gameID, ErrSessionNotFound)
	}
	return s.HandleMove(column)
}

// CleanupOldSessions drops finished sessions older than finishedTTL and
// unfinished ones idle for longer than idleTTL. It returns how many were
// removed.
func (sm *SessionManager) CleanupOldSessions(now time.Time, finishedTTL, idleTTL time.Duration) int {
	sm.mu.Lock()
	var stale []*Session
	for gameID, s := range sm.Session {
		s.mu.Lock()
		var expired bool
		if s.Game.IsFinished() {
			expired = now.Sub(s.FinishedAt) > finishedTTL
		} else {
			expired = now.Sub(s.UpdatedAt) > idleTTL
		}
		s.mu.Unlock()

		if expired {
			delete(sm.Session, gameID)
			stale = append(stale, s)
		}
	}
	sm.mu.Unlock()

	for _, s := range stale {
		s.mu.Lock()
		s.cancelPendingLocked()
		s.mu.Unlock()
	}

	if len(stale) > 0 {
		log.Info().Str("component", "session").Int("removed", len(stale)).Msg("memory cleanup removed stale game sessions")
	}
	return len(stale)
}

// Session is one game plus its bookkeeping. All access to Game goes
// through the session mutex.
type Session struct {
	ID         string
	Game       *domain.Game
	Depth      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	FinishedAt time.Time

	mu         sync.Mutex
	generation int         // bumped on reset so stale replies are dropped
	pending    *time.Timer // scheduled computer reply
	manager    *SessionManager
}

// HandleMove applies the player's column and, if the game goes on,
// schedules the computer's reply.
func (s *Session) HandleMove(column int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.Game.PlayerMove(column)
	if err != nil {
		return fmt.Errorf("game: session %s: %w", s.ID, err)
	}

	log.Debug().Str("component", "session").Str("game_id", s.ID).
		Int("column", column).Int("row", row).Msg("player move")

	s.touchLocked()
	s.publishLocked()

	if s.Game.Status == domain.StatusAwaitingAI {
		s.scheduleAILocked()
	}
	return nil
}

// PlayAI makes the computer's move now, skipping the thinking delay. It
// is a no-op when it is not the computer's turn.
func (s *Session) PlayAI() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	return s.playAILocked()
}

// Reset clears the board and cancels any pending computer reply.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.generation++
	s.Game.Reset()
	s.FinishedAt = time.Time{}
	s.touchLocked()

	log.Info().Str("component", "session").Str("game_id", s.ID).Msg("session reset")

	s.publishLocked()
	if s.Game.Status == domain.StatusAwaitingAI {
		s.scheduleAILocked()
	}
}

func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.Snapshot()
}

func (s *Session) IsFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.IsFinished()
}

func (s *Session) scheduleAILocked() {
	delay := s.manager.opts.ThinkingDelay
	if delay <= 0 {
		if err := s.playAILocked(); err != nil {
			log.Error().Err(err).Str("component", "bot").Str("game_id", s.ID).Msg("error handling bot move")
		}
		return
	}

	gen := s.generation
	s.pending = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// the game was reset or removed while thinking
		if gen != s.generation || s.pending == nil {
			return
		}
		s.pending = nil

		if err := s.playAILocked(); err != nil {
			log.Error().Err(err).Str("component", "bot").Str("game_id", s.ID).Msg("error handling bot move")
		}
	})
}

func (s *Session) playAILocked() error {
	if s.Game.Status != domain.StatusAwaitingAI {
		return nil
	}

	column, row, err := s.Game.PlayAI(s.manager.chooser, s.Depth)
	if err != nil {
		return fmt.Errorf("game: session %s: %w", s.ID, err)
	}

	log.Debug().Str("component", "bot").Str("game_id", s.ID).
		Int("column", column).Int("row", row).Msg("bot move")

	s.touchLocked()
	s.publishLocked()
	return nil
}

func (s *Session) cancelPendingLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Session) touchLocked() {
	now := s.manager.opts.Now()
	s.UpdatedAt = now
	if s.Game.IsFinished() && s.FinishedAt.IsZero() {
		s.FinishedAt = now
		log.Info().Str("component", "session").Str("game_id", s.ID).
			Str("status", string(s.Game.Status)).Int("moves", s.Game.MoveCount).Msg("game finished")
	}
}

// publishLocked runs with the session lock held, so a notifier must not
// call back into the same session synchronously.
func (s *Session) publishLocked() {
	s.manager.opts.Notifier.Publish(s.ID, s.Game.Snapshot())
}
