package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"careerpath/internal/model"
)

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry(DelaySubmitter{}, time.Minute)

	id, form := reg.Get("")
	if id == uuid.Nil || form == nil {
		t.Fatal("Get did not create a form")
	}
	again, same := reg.Get(id.String())
	if again != id || same != form {
		t.Fatal("Get with a known token returned another form")
	}
	other, _ := reg.Get("not-a-uuid")
	if other == id {
		t.Fatal("malformed token reused an existing form")
	}
	if _, ok := reg.Peek(uuid.NewString()); ok {
		t.Fatal("Peek created a form")
	}
	if n := reg.Len(); n != 2 {
		t.Fatalf("Len = %d, want 2", n)
	}
}

func TestRegistrySweep(t *testing.T) {
	sub := newBlockingSubmitter()
	reg := NewRegistry(sub, time.Minute)

	reg.Get("")
	busyID, busy := reg.Get("")

	done := make(chan struct{})
	go func() {
		_, _ = busy.Submit(context.Background(), validFields)
		close(done)
	}()
	<-sub.started

	reg.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if n := reg.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d forms, want 1", n)
	}
	if _, ok := reg.Peek(busyID.String()); !ok {
		t.Fatal("submitting form was swept")
	}

	close(sub.release)
	<-done
}

func TestFormExpired(t *testing.T) {
	now := time.Now()
	tt := []struct {
		name    string
		state   State
		touched time.Time
		want    bool
	}{
		{name: "idle and stale", state: StateIdle, touched: now.Add(-time.Hour), want: true},
		{name: "idle and fresh", state: StateIdle, touched: now, want: false},
		{name: "success and stale", state: StateSuccess, touched: now.Add(-time.Hour), want: true},
		{name: "submitting and stale", state: StateSubmitting, touched: now.Add(-time.Hour), want: false},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			f := NewForm(DelaySubmitter{})
			f.state = tc.state
			f.touched = tc.touched
			if got := f.expired(now.Add(-time.Minute)); got != tc.want {
				t.Fatalf("expired = %v, want %v", got, tc.want)
			}
		})
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegistryRunStopsWithContext(t *testing.T) {
	reg := NewRegistry(DelaySubmitter{}, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		reg.Run(ctx, discardLogger())
		close(stopped)
	}()
	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type memLeadStore struct {
	leads []*model.Lead
	err   error
}

func (m *memLeadStore) CreateLead(_ context.Context, l *model.Lead) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	l.ID = uuid.New()
	m.leads = append(m.leads, l)
	return l.ID, nil
}

func (m *memLeadStore) ListLeads(context.Context) ([]*model.Lead, error) { return m.leads, nil }

func (m *memLeadStore) GetLeadByID(context.Context, uuid.UUID) (*model.Lead, error) {
	return nil, errors.New("not implemented")
}

func TestStoreSubmitter(t *testing.T) {
	store := &memLeadStore{}
	in := validFields
	in.Phone = "+33 1 00 00 00 00"
	in.Lang = "en"

	ack, err := StoreSubmitter{Store: store}.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(store.leads) != 1 {
		t.Fatalf("stored %d leads", len(store.leads))
	}
	lead := store.leads[0]
	if ack.Reference != lead.ID.String() {
		t.Fatalf("Reference = %q, lead id = %s", ack.Reference, lead.ID)
	}
	if lead.Name != "Jane" || lead.Phone != in.Phone || lead.Lang != "en" {
		t.Fatalf("lead = %+v", lead)
	}

	store.err = errors.New("disk full")
	_, err = StoreSubmitter{Store: store}.Submit(context.Background(), in)
	var se *SubmitError
	if !errors.As(err, &se) || !errors.Is(err, store.err) {
		t.Fatalf("Submit error = %v", err)
	}
}
