package annotation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/domain/repositories"
)

const stateKey = "state"

// SnippetSource resolves the snippets of a contact's transcript
type SnippetSource interface {
	Snippets(ctx context.Context, contactID string) ([]entities.Snippet, error)
}

// Namespace returns the storage namespace of one review
func Namespace(sessionID uuid.UUID, contactID string) string {
	return fmt.Sprintf("review:%s:%s", sessionID, contactID)
}

// Session is the live review of one contact in one browser session
type Session struct {
	mu        sync.Mutex
	sessionID uuid.UUID
	contactID string
	model     *Model
	dialogs   *Dialogs
	lastUsed  time.Time
	closed    bool
}

// Close cancels every dialog timer of the session
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.dialogs.Stop()
}

type sessionKey struct {
	sessionID uuid.UUID
	contactID string
}

// RegistryConfig tunes a Registry
type RegistryConfig struct {
	Clock        clock.Clock
	Timeouts     DialogTimeouts
	IdleEviction time.Duration
	NewID        IDFunc
}

// Registry caches review sessions per browser session and contact, and
// evicts the ones left idle.
type Registry struct {
	mu       sync.Mutex
	sessions map[sessionKey]*Session

	source  SnippetSource
	storage repositories.SessionStorage
	cfg     RegistryConfig
	logger  *zap.Logger

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewRegistry creates a review registry
func NewRegistry(source SnippetSource, storage repositories.SessionStorage, cfg RegistryConfig, logger *zap.Logger) *Registry {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Timeouts == nil {
		cfg.Timeouts = DefaultDialogTimeouts()
	}
	if cfg.IdleEviction <= 0 {
		cfg.IdleEviction = 30 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[sessionKey]*Session),
		source:   source,
		storage:  storage,
		cfg:      cfg,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start runs the idle eviction loop until Close
func (r *Registry) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := r.cfg.Clock.Ticker(r.cfg.IdleEviction / 2)
		defer ticker.Stop()

		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				if n := r.EvictIdle(); n > 0 {
					r.logger.Debug("Evicted idle review sessions", zap.Int("count", n))
				}
			}
		}
	}()
}

// Close stops the eviction loop and tears down every session
func (r *Registry) Close() {
	r.once.Do(func() { close(r.done) })
	r.wg.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()

	for key, s := range r.sessions {
		s.Close()
		delete(r.sessions, key)
	}
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle tears down sessions unused for longer than the idle timeout
func (r *Registry) EvictIdle() int {
	now := r.cfg.Clock.Now()

	r.mu.Lock()
	var idle []*Session
	for key, s := range r.sessions {
		s.mu.Lock()
		expired := now.Sub(s.lastUsed) > r.cfg.IdleEviction
		s.mu.Unlock()
		if expired {
			idle = append(idle, s)
			delete(r.sessions, key)
		}
	}
	r.mu.Unlock()

	for _, s := range idle {
		s.Close()
	}
	return len(idle)
}

// Get returns the live review session, creating it from the stored snapshot
// when needed.
func (r *Registry) Get(ctx context.Context, sessionID uuid.UUID, contactID string) (*Session, error) {
	key := sessionKey{sessionID: sessionID, contactID: contactID}

	r.mu.Lock()
	if s, ok := r.sessions[key]; ok {
		r.mu.Unlock()
		return s, nil
	}
	r.mu.Unlock()

	snippets, err := r.source.Snippets(ctx, contactID)
	if err != nil {
		return nil, err
	}

	s := &Session{
		sessionID: sessionID,
		contactID: contactID,
		model:     NewModel(snippets, r.cfg.NewID),
		lastUsed:  r.cfg.Clock.Now(),
	}
	s.dialogs = NewDialogs(r.cfg.Clock, r.cfg.Timeouts, func(name string) {
		r.logger.Debug("Dialog dismissed after inactivity",
			zap.String("session_id", sessionID.String()),
			zap.String("contact_id", contactID),
			zap.String("dialog", name),
		)
	})
	if st, ok := r.loadState(ctx, sessionID, contactID); ok {
		s.model.Restore(st)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sessions[key]; ok {
		s.Close()
		return existing, nil
	}
	r.sessions[key] = s
	return s, nil
}

func (r *Registry) loadState(ctx context.Context, sessionID uuid.UUID, contactID string) (State, bool) {
	raw, ok, err := r.storage.Get(ctx, Namespace(sessionID, contactID), stateKey)
	if err != nil || !ok {
		if err != nil {
			r.logger.Warn("Failed to load review state",
				zap.String("session_id", sessionID.String()),
				zap.String("contact_id", contactID),
				zap.Error(err),
			)
		}
		return State{}, false
	}

	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		r.logger.Warn("Discarding malformed review state",
			zap.String("session_id", sessionID.String()),
			zap.String("contact_id", contactID),
			zap.Error(err),
		)
		return State{}, false
	}
	return st, true
}

func (r *Registry) saveState(ctx context.Context, s *Session) {
	raw, err := json.Marshal(s.model.Snapshot())
	if err == nil {
		err = r.storage.Set(ctx, Namespace(s.sessionID, s.contactID), stateKey, string(raw))
	}
	if err != nil {
		r.logger.Error("Failed to save review state",
			zap.String("session_id", s.sessionID.String()),
			zap.String("contact_id", s.contactID),
			zap.Error(err),
		)
	}
}
