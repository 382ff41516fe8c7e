package kvdb

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"careerpath/internal/db"
	"careerpath/internal/model"
)

const bucketLead = "lead_store"

func NewLeadStore(conn *bolt.DB) (*LeadStore, error) {
	return &LeadStore{db: conn}, conn.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLead))
		return err
	})
}

// LeadStore keeps leads as JSON documents in a bbolt bucket.
type LeadStore struct {
	db *bolt.DB
}

func (s *LeadStore) CreateLead(ctx context.Context, lead *model.Lead) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateLead")
	defer span.End()

	if lead.ID == uuid.Nil {
		span.AddEvent("uuid is nil, generate a new id")
		lead.ID = uuid.New()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	j, err := json.Marshal(lead)
	if err != nil {
		return uuid.Nil, err
	}

	span.AddEvent("Update bucket")
	return lead.ID, s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLead)).Put(lead.ID[:], j)
	})
}

func (s *LeadStore) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListLeads")
	defer span.End()

	span.AddEvent("View bucket")
	var leads []*model.Lead
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLead)).ForEach(func(_, v []byte) error {
			lead := &model.Lead{}
			if err := json.Unmarshal(v, lead); err != nil {
				span.RecordError(err)
				return err
			}
			leads = append(leads, lead)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	return leads, nil
}

func (s *LeadStore) GetLeadByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetLeadByID")
	defer span.End()

	span.AddEvent("View bucket")
	lead := &model.Lead{}
	return lead, s.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketLead)).Get(id[:])
		if res == nil {
			span.RecordError(db.ErrLeadNotFound)
			return db.ErrLeadNotFound
		}
		return json.Unmarshal(res, lead)
	})
}
