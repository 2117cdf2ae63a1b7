// Package undo tracks the short-lived "Undo" notices shown after a
// dismissive action (marking a resource seen, hiding an assignment).
// Each action kind holds at most one pending notice; a newer action of
// the same kind fully supersedes the older one.
package undo

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies an undoable action category.
type Kind string

const (
	ResourceCompleted Kind = "resource-completed"
	AssignmentHidden  Kind = "assignment-hidden"
)

// Window is how long a notice stays actionable.
const Window = 5 * time.Second

// Notice is one pending undo opportunity. Token distinguishes this
// notice from any notice that later replaces it, so a timer armed for
// the old notice cannot expire the new one.
type Notice struct {
	Kind     Kind
	TargetID int64
	Label    string
	Token    string
	Deadline time.Time

	revert func() error
}

// Controller is the per-kind undo state machine. It is driven entirely
// from the UI event loop and performs no locking of its own.
type Controller struct {
	now     func() time.Time
	pending map[Kind]Notice
}

// Option configures the Controller during construction.
type Option func(*Controller)

// WithClock substitutes the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates an idle controller.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		now:     time.Now,
		pending: make(map[Kind]Notice),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Trigger records a new pending notice for kind, replacing any prior
// one, and returns it. revert is invoked if the user undoes within the
// window; the caller has already applied the underlying mutation.
func (c *Controller) Trigger(kind Kind, targetID int64, label string, revert func() error) Notice {
	n := Notice{
		Kind:     kind,
		TargetID: targetID,
		Label:    label,
		Token:    uuid.NewString(),
		Deadline: c.now().Add(Window),
		revert:   revert,
	}
	c.pending[kind] = n
	return n
}

// Pending returns the live notice for kind, if one exists and its
// window has not elapsed.
func (c *Controller) Pending(kind Kind) (Notice, bool) {
	n, ok := c.pending[kind]
	if !ok || c.now().After(n.Deadline) {
		return Notice{}, false
	}
	return n, true
}

// Undo reverses the pending mutation for kind and returns to idle.
// Undoing with nothing pending (or after the window) is a no-op.
func (c *Controller) Undo(kind Kind) error {
	n, ok := c.Pending(kind)
	if !ok {
		delete(c.pending, kind)
		return nil
	}
	delete(c.pending, kind)
	if n.revert != nil {
		return n.revert()
	}
	return nil
}

// Dismiss clears the notice for kind, keeping the mutation.
func (c *Controller) Dismiss(kind Kind) {
	delete(c.pending, kind)
}

// Expire clears the notice only when token still identifies the
// current pending notice; a stale timer firing after the notice was
// replaced or cleared does nothing. Reports whether a notice was
// cleared.
func (c *Controller) Expire(kind Kind, token string) bool {
	n, ok := c.pending[kind]
	if !ok || n.Token != token {
		return false
	}
	delete(c.pending, kind)
	return true
}
