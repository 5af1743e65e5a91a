// Package edit holds the edit-one-user workflow: an edit buffer seeded from a
// record, validated on submit and saved through the users service.
package edit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/harrylevesque/userdeck/internal/models"
	"github.com/harrylevesque/userdeck/internal/utils"
)

type State int

const (
	Closed State = iota
	Open
	Saving
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Saving:
		return "saving"
	}
	return "unknown"
}

var (
	// ErrSaveFailed wraps the transport or server error of a failed save.
	ErrSaveFailed = errors.New("save failed")
	// ErrBusy is returned by Submit while a save is in flight.
	ErrBusy = errors.New("save in progress")
)

// Buffer is the in-progress copy of one record's mutable fields.
type Buffer struct {
	ID int
	models.UserFields
}

// Updater persists an edit.
type Updater interface {
	UpdateUser(ctx context.Context, id int, f models.UserFields) error
}

// Merger receives a saved edit, typically the roster.
type Merger interface {
	ApplyEditResult(id int, f models.UserFields)
}

type Workflow struct {
	up    Updater
	merge Merger
	log   *utils.Logger

	mu    sync.Mutex
	state State
	buf   *Buffer
}

func New(up Updater, merge Merger, log *utils.Logger) *Workflow {
	if log == nil {
		log = utils.NewNopLogger()
	}
	return &Workflow{up: up, merge: merge, log: log}
}

// Open seeds the buffer from u. It is ignored while a save is in flight.
func (w *Workflow) Open(u models.User) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == Saving {
		return false
	}
	w.buf = &Buffer{ID: u.ID, UserFields: u.Fields()}
	w.state = Open
	return true
}

// Cancel drops the buffer without side effects.
func (w *Workflow) Cancel() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == Saving {
		return false
	}
	w.buf = nil
	w.state = Closed
	return true
}

func (w *Workflow) SetName(s string) {
	w.edit(func(b *Buffer) { b.Name = s })
}

func (w *Workflow) SetEmail(s string) {
	w.edit(func(b *Buffer) { b.Email = s })
}

func (w *Workflow) SetAge(n int) {
	w.edit(func(b *Buffer) { b.Age = n })
}

// SetAgeText stores the leading integer of s, or 0 if there is none.
func (w *Workflow) SetAgeText(s string) {
	w.SetAge(ParseAge(s))
}

func (w *Workflow) edit(fn func(*Buffer)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != Open || w.buf == nil {
		return
	}
	fn(w.buf)
}

// Submit validates the buffer and, if it passes, saves it.
//
// A rule violation returns a *ValidationError and leaves the workflow Open
// with the buffer as it was. A failed save is logged, returns an error
// wrapping ErrSaveFailed and also leaves the workflow Open with the buffer
// kept. A successful save is merged into the list and closes the workflow.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.state == Saving {
		w.mu.Unlock()
		return ErrBusy
	}
	var buf *Buffer
	if w.state == Open {
		buf = w.buf
	}
	if verr := Validate(buf); verr != nil {
		w.mu.Unlock()
		return verr
	}
	id, fields := buf.ID, buf.UserFields
	w.state = Saving
	w.mu.Unlock()

	err := w.up.UpdateUser(ctx, id, fields)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.log.Error("update user failed", zap.Int("id", id), zap.Int("status", utils.StatusCode(err)), zap.Error(err))
		w.state = Open
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	w.merge.ApplyEditResult(id, fields)
	w.log.Info("updated user", zap.Int("id", id))
	w.buf = nil
	w.state = Closed
	return nil
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Buffer returns a copy of the edit buffer and whether one exists.
func (w *Workflow) Buffer() (Buffer, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf == nil {
		return Buffer{}, false
	}
	return *w.buf, true
}
