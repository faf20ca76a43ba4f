package assessment

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
)

// Registry holds one controller per browser session. A controller is
// mounted from the saved draft on first access and dropped after staying
// idle for the eviction timeout; the draft itself stays in storage.
type Registry struct {
	mu          sync.Mutex
	controllers map[uuid.UUID]*Controller
	deps        Dependencies
	idle        time.Duration

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewRegistry creates a controller registry
func NewRegistry(deps Dependencies, idle time.Duration) *Registry {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	return &Registry{
		controllers: make(map[uuid.UUID]*Controller),
		deps:        deps,
		idle:        idle,
		done:        make(chan struct{}),
	}
}

// Get returns the session's controller, mounting it when needed. The notice
// is only set on mount when the saved draft could not be read.
func (r *Registry) Get(ctx context.Context, sessionID uuid.UUID) (*Controller, *entities.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.controllers[sessionID]; ok {
		return c, nil
	}

	c, notice := NewController(ctx, sessionID, r.deps)
	r.controllers[sessionID] = c
	return c, notice
}

// Len returns the number of mounted controllers
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.controllers)
}

// EvictIdle unmounts controllers idle for longer than the timeout. Busy
// controllers are kept.
func (r *Registry) EvictIdle() int {
	now := r.deps.Clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, c := range r.controllers {
		st := c.State()
		if st.Generating || st.Submitting {
			continue
		}
		if now.Sub(c.idleSince()) > r.idle {
			delete(r.controllers, id)
			n++
		}
	}
	return n
}

// Start runs the eviction loop until Close
func (r *Registry) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := r.deps.Clock.Ticker(r.idle / 2)
		defer ticker.Stop()

		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				if n := r.EvictIdle(); n > 0 {
					r.deps.Logger.Debug("Unmounted idle assessment forms", zap.Int("count", n))
				}
			}
		}
	}()
}

// Close stops the eviction loop
func (r *Registry) Close() {
	r.once.Do(func() { close(r.done) })
	r.wg.Wait()
}
