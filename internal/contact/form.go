package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	// ErrValidation is returned when required fields are empty.
	ErrValidation = errors.New("required fields missing")
	// ErrSubmitInFlight is returned when a submit arrives while another one
	// is still running. The form is left untouched.
	ErrSubmitInFlight = errors.New("submission already in progress")
	// ErrAlreadySubmitted is returned when a submit arrives after a success
	// that has not been dismissed yet.
	ErrAlreadySubmitted = errors.New("form already submitted")
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "idle"
}

// ErrorKind qualifies StateError.
type ErrorKind int

const (
	NoError ErrorKind = iota
	ValidationFailed
	SubmitFailed
)

func (k ErrorKind) String() string {
	switch k {
	case ValidationFailed:
		return "validation_failed"
	case SubmitFailed:
		return "submit_failed"
	}
	return ""
}

// Snapshot is a consistent copy of a form, safe to render.
type Snapshot struct {
	State   State
	Kind    ErrorKind
	Fields  Fields
	Missing []string
	Ack     Ack
	Err     error
}

// Form is the submission state machine of one visitor's contact form.
// It is safe for concurrent use; the submitter runs without the lock held.
type Form struct {
	submitter Submitter
	onChange  func(from, to State)

	mu      sync.Mutex
	state   State
	kind    ErrorKind
	fields  Fields
	missing []string
	ack     Ack
	err     error
	touched time.Time
}

type FormOption func(*Form)

// WithTransitionHook registers fn to be called on every state change.
// fn runs with the form locked and must not call back into it.
func WithTransitionHook(fn func(from, to State)) FormOption {
	return func(f *Form) { f.onChange = fn }
}

func NewForm(s Submitter, opts ...FormOption) *Form {
	f := &Form{submitter: s, touched: time.Now()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) setState(s State) {
	if f.state == s {
		return
	}
	from := f.state
	f.state = s
	if f.onChange != nil {
		f.onChange(from, s)
	}
}

func (f *Form) snapshot() Snapshot {
	return Snapshot{
		State:   f.state,
		Kind:    f.kind,
		Fields:  f.fields,
		Missing: append([]string(nil), f.missing...),
		Ack:     f.ack,
		Err:     f.err,
	}
}

// Snapshot returns the current state of the form.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// expired reports whether the form was last used before deadline. A form
// that is submitting never expires.
func (f *Form) expired(deadline time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state != StateSubmitting && f.touched.Before(deadline)
}

// Submit validates in, then hands it to the submitter.
//
// Empty required fields move the form straight to StateError with
// ValidationFailed, without going through StateSubmitting. A successful
// submit clears every field; a failed one keeps them for a retry.
func (f *Form) Submit(ctx context.Context, in Fields) (Snapshot, error) {
	f.mu.Lock()
	f.touched = time.Now()
	switch f.state {
	case StateSubmitting:
		defer f.mu.Unlock()
		return f.snapshot(), ErrSubmitInFlight
	case StateSuccess:
		defer f.mu.Unlock()
		return f.snapshot(), ErrAlreadySubmitted
	}

	in = in.Trim()
	f.fields = in
	f.ack = Ack{}
	if missing := in.Missing(); len(missing) > 0 {
		defer f.mu.Unlock()
		f.kind = ValidationFailed
		f.missing = missing
		f.err = fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
		f.setState(StateError)
		return f.snapshot(), f.err
	}
	f.kind = NoError
	f.missing = nil
	f.err = nil
	f.setState(StateSubmitting)
	f.mu.Unlock()

	ack, err := f.submitter.Submit(ctx, in)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = time.Now()
	if err != nil {
		f.kind = SubmitFailed
		f.err = err
		f.setState(StateError)
		return f.snapshot(), err
	}
	f.fields = Fields{}
	f.ack = ack
	f.setState(StateSuccess)
	return f.snapshot(), nil
}

// Dismiss closes the success or error banner and returns the form to idle.
// Fields kept after a failure stay in place. It reports whether the state
// changed.
func (f *Form) Dismiss() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = time.Now()
	switch f.state {
	case StateSuccess, StateError:
		f.kind = NoError
		f.missing = nil
		f.err = nil
		f.ack = Ack{}
		f.setState(StateIdle)
		return true
	}
	return false
}
