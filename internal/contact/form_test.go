package contact

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type transitions struct {
	mu   sync.Mutex
	seen []State
}

func (tr *transitions) hook(_, to State) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.seen = append(tr.seen, to)
}

func (tr *transitions) list() []State {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]State(nil), tr.seen...)
}

// blockingSubmitter holds every call until release is closed.
type blockingSubmitter struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	err     error
}

func newBlockingSubmitter() *blockingSubmitter {
	return &blockingSubmitter{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (b *blockingSubmitter) Submit(ctx context.Context, _ Fields) (Ack, error) {
	b.calls.Add(1)
	b.started <- struct{}{}
	select {
	case <-b.release:
	case <-ctx.Done():
		return Ack{}, ctx.Err()
	}
	if b.err != nil {
		return Ack{}, b.err
	}
	return Ack{Reference: "ref-1"}, nil
}

var validFields = Fields{Name: "Jane", Email: "jane@x.com", Subject: "coaching", Message: "Hello"}

func TestFieldsMissing(t *testing.T) {
	tt := []struct {
		name   string
		fields Fields
		want   []string
	}{
		{name: "complete", fields: validFields, want: nil},
		{name: "phone is optional", fields: Fields{Name: "a", Email: "b", Subject: "c", Message: "d"}, want: nil},
		{name: "empty name", fields: Fields{Email: "a@b.com", Subject: "linkedin", Message: "hi"}, want: []string{"name"}},
		{name: "blank counts as empty", fields: Fields{Name: "  ", Email: "a@b.com", Subject: "\t", Message: "hi"}, want: []string{"name", "subject"}},
		{name: "all empty", fields: Fields{Phone: "0102"}, want: []string{"name", "email", "subject", "message"}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fields.Missing(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Missing() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSubmitValidationSkipsSubmitting(t *testing.T) {
	var tr transitions
	sub := newBlockingSubmitter()
	form := NewForm(sub, WithTransitionHook(tr.hook))

	in := Fields{Name: "", Email: "a@b.com", Subject: "linkedin", Message: "hi"}
	snap, err := form.Submit(context.Background(), in)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Submit error = %v, want ErrValidation", err)
	}
	if snap.State != StateError || snap.Kind != ValidationFailed {
		t.Fatalf("state = %v/%v, want error/validation_failed", snap.State, snap.Kind)
	}
	if got := tr.list(); !reflect.DeepEqual(got, []State{StateError}) {
		t.Fatalf("transitions = %v, want only error", got)
	}
	if sub.calls.Load() != 0 {
		t.Fatal("submitter called despite validation failure")
	}
	if snap.Fields != in {
		t.Fatalf("fields not preserved: %+v", snap.Fields)
	}
	if !reflect.DeepEqual(snap.Missing, []string{"name"}) {
		t.Fatalf("Missing = %v", snap.Missing)
	}
}

func TestSubmitSuccessClearsFields(t *testing.T) {
	var tr transitions
	form := NewForm(DelaySubmitter{Delay: 20 * time.Millisecond}, WithTransitionHook(tr.hook))

	start := time.Now()
	snap, err := form.Submit(context.Background(), validFields)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("Submit returned after %v, before the delay", elapsed)
	}
	if got := tr.list(); !reflect.DeepEqual(got, []State{StateSubmitting, StateSuccess}) {
		t.Fatalf("transitions = %v", got)
	}
	if snap.Fields != (Fields{}) {
		t.Fatalf("fields not cleared: %+v", snap.Fields)
	}
	if snap.Ack.Reference == "" {
		t.Fatal("missing ack reference")
	}
}

func TestSubmitWhileSubmittingIsNoop(t *testing.T) {
	var tr transitions
	sub := newBlockingSubmitter()
	form := NewForm(sub, WithTransitionHook(tr.hook))

	done := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background(), validFields)
		done <- err
	}()
	<-sub.started

	snap, err := form.Submit(context.Background(), Fields{Name: "Other", Email: "o@x.com", Subject: "s", Message: "m"})
	if !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("second Submit error = %v, want ErrSubmitInFlight", err)
	}
	if snap.State != StateSubmitting || snap.Fields != validFields {
		t.Fatalf("second Submit changed the form: %+v", snap)
	}

	close(sub.release)
	if err := <-done; err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if n := sub.calls.Load(); n != 1 {
		t.Fatalf("submitter called %d times", n)
	}
	if got := tr.list(); !reflect.DeepEqual(got, []State{StateSubmitting, StateSuccess}) {
		t.Fatalf("transitions = %v", got)
	}
}

func TestSubmitFailureKeepsFields(t *testing.T) {
	boom := &SubmitError{StatusCode: 503, Err: errors.New("unavailable")}
	form := NewForm(SubmitterFunc(func(context.Context, Fields) (Ack, error) {
		return Ack{}, boom
	}))

	snap, err := form.Submit(context.Background(), validFields)
	var se *SubmitError
	if !errors.As(err, &se) || se.StatusCode != 503 {
		t.Fatalf("Submit error = %v", err)
	}
	if snap.State != StateError || snap.Kind != SubmitFailed {
		t.Fatalf("state = %v/%v", snap.State, snap.Kind)
	}
	if snap.Fields != validFields {
		t.Fatalf("fields lost: %+v", snap.Fields)
	}

	// retry from the error state
	form.submitter = DelaySubmitter{}
	if _, err := form.Submit(context.Background(), snap.Fields); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if form.State() != StateSuccess {
		t.Fatalf("state after retry = %v", form.State())
	}
}

func TestSuccessHoldsUntilDismiss(t *testing.T) {
	form := NewForm(DelaySubmitter{})
	if _, err := form.Submit(context.Background(), validFields); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := form.Submit(context.Background(), validFields); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("Submit after success = %v, want ErrAlreadySubmitted", err)
	}
	if !form.Dismiss() {
		t.Fatal("Dismiss did not change state")
	}
	if form.State() != StateIdle {
		t.Fatalf("state after Dismiss = %v", form.State())
	}
	if form.Dismiss() {
		t.Fatal("Dismiss on idle form changed state")
	}
	if _, err := form.Submit(context.Background(), validFields); err != nil {
		t.Fatalf("Submit after Dismiss: %v", err)
	}
}

func TestSubmitCancelled(t *testing.T) {
	form := NewForm(DelaySubmitter{Delay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := form.Submit(ctx, validFields)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Submit error = %v, want context.Canceled", err)
	}
	if snap.Kind != SubmitFailed || snap.Fields != validFields {
		t.Fatalf("snapshot = %+v", snap)
	}
}
