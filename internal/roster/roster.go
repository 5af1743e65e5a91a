// Package roster owns the list of user records and its fetch lifecycle:
// IdleEmpty -> Fetching -> Populated -> IdleEmpty.
package roster

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/harrylevesque/userdeck/internal/models"
	"github.com/harrylevesque/userdeck/internal/utils"
)

type State int

const (
	IdleEmpty State = iota
	Fetching
	Populated
)

func (s State) String() string {
	switch s {
	case IdleEmpty:
		return "idle"
	case Fetching:
		return "fetching"
	case Populated:
		return "populated"
	}
	return "unknown"
}

// Source retrieves the full record set.
type Source interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DefaultDelay is the deferred start applied before each fetch.
const DefaultDelay = 2 * time.Second

type Roster struct {
	src   Source
	delay time.Duration
	log   *utils.Logger

	mu    sync.Mutex
	state State
	users []models.User
}

type Option func(*Roster)

// WithDelay sets the deferred start before the request; 0 fetches immediately.
func WithDelay(d time.Duration) Option {
	return func(r *Roster) { r.delay = d }
}

func WithLogger(l *utils.Logger) Option {
	return func(r *Roster) { r.log = l }
}

func New(src Source, opts ...Option) *Roster {
	r := &Roster{
		src:   src,
		delay: DefaultDelay,
		log:   utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RequestFetch starts a fetch unless one is already pending, in which case
// it returns started=false and does nothing. The returned channel closes once
// the fetch has settled. The busy state holds through the delay and the
// request and is cleared only when the fetch settles.
func (r *Roster) RequestFetch(ctx context.Context) (done <-chan struct{}, started bool) {
	r.mu.Lock()
	if r.state == Fetching {
		r.mu.Unlock()
		return nil, false
	}
	r.state = Fetching
	r.users = nil
	r.mu.Unlock()

	ch := make(chan struct{})
	go func() {
		defer close(ch)
		users, err := r.fetch(ctx)
		r.settle(users, err)
	}()
	return ch, true
}

func (r *Roster) fetch(ctx context.Context) ([]models.User, error) {
	if r.delay > 0 {
		t := time.NewTimer(r.delay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		}
	}
	return r.src.ListUsers(ctx)
}

func (r *Roster) settle(users []models.User, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.log.Error("fetch users failed", zap.Error(err))
		r.state = IdleEmpty
		r.users = nil
		return
	}
	if len(users) == 0 {
		r.log.Info("fetch users returned no records")
		r.state = IdleEmpty
		r.users = nil
		return
	}
	r.log.Info("fetched users", zap.Int("count", len(users)))
	r.state = Populated
	r.users = users
}

// Clear discards all records. It only applies when Populated.
func (r *Roster) Clear() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Populated {
		return false
	}
	r.state = IdleEmpty
	r.users = nil
	return true
}

// ApplyEditResult replaces the mutable fields of the record with the given
// id in place. Other records and the order are untouched.
func (r *Roster) ApplyEditResult(id int, f models.UserFields) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i] = r.users[i].WithFields(f)
		}
	}
}

func (r *Roster) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Users returns a copy of the held records in server order.
func (r *Roster) Users() []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}
