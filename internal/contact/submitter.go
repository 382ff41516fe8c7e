package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"careerpath/internal/db"
	"careerpath/internal/model"
)

// Submitter delivers validated form fields somewhere.
type Submitter interface {
	Submit(ctx context.Context, f Fields) (Ack, error)
}

// Ack is the receipt of a delivered submission.
type Ack struct {
	Reference string
	At        time.Time
}

// SubmitError is a failed delivery. StatusCode is set when the remote end
// answered with a non-2xx status.
type SubmitError struct {
	StatusCode int
	Err        error
}

func (e *SubmitError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("submit failed: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("submit failed: %v", e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, f Fields) (Ack, error)

func (fn SubmitterFunc) Submit(ctx context.Context, f Fields) (Ack, error) {
	return fn(ctx, f)
}

// DelaySubmitter waits a fixed time then always succeeds, unless ctx ends
// first. It stands in for a backend in demos and tests.
type DelaySubmitter struct {
	Delay time.Duration
}

func (s DelaySubmitter) Submit(ctx context.Context, _ Fields) (Ack, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "DelaySubmitter.Submit", trace.WithAttributes(
		attribute.String("delay", s.Delay.String()),
	))
	defer span.End()

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return Ack{}, &SubmitError{Err: ctx.Err()}
	case <-timer.C:
	}
	return Ack{Reference: uuid.NewString(), At: time.Now().UTC()}, nil
}

// StoreSubmitter saves each submission as a lead.
type StoreSubmitter struct {
	Store db.LeadStore
}

func (s StoreSubmitter) Submit(ctx context.Context, f Fields) (Ack, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "StoreSubmitter.Submit")
	defer span.End()

	lead := &model.Lead{
		CreatedAt: time.Now().UTC(),
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Subject:   f.Subject,
		Message:   f.Message,
		Lang:      f.Lang,
	}
	id, err := s.Store.CreateLead(ctx, lead)
	if err != nil {
		span.RecordError(err)
		return Ack{}, &SubmitError{Err: err}
	}
	return Ack{Reference: id.String(), At: lead.CreatedAt}, nil
}
