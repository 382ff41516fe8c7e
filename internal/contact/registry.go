package contact

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry keeps one Form per visitor, keyed by a token stored in a cookie.
// Forms unused for longer than the TTL are dropped by Run.
type Registry struct {
	submitter Submitter
	ttl       time.Duration
	opts      []FormOption
	now       func() time.Time

	mu    sync.Mutex
	forms map[uuid.UUID]*Form
}

func NewRegistry(s Submitter, ttl time.Duration, opts ...FormOption) *Registry {
	return &Registry{
		submitter: s,
		ttl:       ttl,
		opts:      opts,
		now:       time.Now,
		forms:     map[uuid.UUID]*Form{},
	}
}

// Get returns the form for token. An unknown or malformed token gets a
// fresh form under a new token, which the caller must hand back to the
// visitor.
func (r *Registry) Get(token string) (uuid.UUID, *Form) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, err := uuid.Parse(token); err == nil {
		if f, ok := r.forms[id]; ok {
			return id, f
		}
	}
	id := uuid.New()
	f := NewForm(r.submitter, r.opts...)
	r.forms[id] = f
	return id, f
}

// Peek returns the form for token without creating one.
func (r *Registry) Peek(token string) (*Form, bool) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.forms[id]
	return f, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Sweep drops expired forms and returns how many were removed.
// A form that is submitting is never dropped.
func (r *Registry) Sweep() int {
	deadline := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, f := range r.forms {
		if f.expired(deadline) {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every ttl/2 until ctx is done.
func (r *Registry) Run(ctx context.Context, logger *slog.Logger) {
	every := r.ttl / 2
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				logger.DebugContext(ctx, "expired contact forms dropped", slog.Int("count", n))
			}
		}
	}
}
