package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"careerpath/internal/db"
	"careerpath/internal/model"
)

const leadColumnsSQL = `id, created_at, name, email, COALESCE(phone, ''), subject, message, COALESCE(lang, '')`

func NewLeadStore(conn *sql.DB, d Dialect) *LeadStore {
	return &LeadStore{db: conn, dialect: d}
}

// LeadStore keeps leads in a SQLite or PostgreSQL database.
type LeadStore struct {
	db      *sql.DB
	dialect Dialect
}

func (s *LeadStore) CreateLead(ctx context.Context, lead *model.Lead) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateLead", trace.WithAttributes(
		attribute.String("db.system", s.dialect.String()),
	))
	defer span.End()

	if lead.ID == uuid.Nil {
		span.AddEvent("uuid is nil, generate a new id")
		lead.ID = uuid.New()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	ph := make([]string, 8)
	for i := range ph {
		ph[i] = s.dialect.placeholder(i + 1)
	}
	query := `INSERT INTO leads (id, created_at, name, email, phone, subject, message, lang)
         VALUES (` + strings.Join(ph, ", ") + `)`

	_, err := s.db.ExecContext(ctx, query,
		lead.ID.String(),
		lead.CreatedAt,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Subject,
		lead.Message,
		lead.Lang,
	)
	if err != nil {
		span.RecordError(err)
		return uuid.Nil, fmt.Errorf("insert lead: %w", err)
	}
	return lead.ID, nil
}

func (s *LeadStore) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ListLeads")
	defer span.End()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+leadColumnsSQL+` FROM leads ORDER BY created_at DESC`,
	)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []*model.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (s *LeadStore) GetLeadByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "GetLeadByID")
	defer span.End()

	row := s.db.QueryRowContext(ctx,
		`SELECT `+leadColumnsSQL+` FROM leads WHERE id = `+s.dialect.placeholder(1),
		id.String(),
	)
	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		span.RecordError(db.ErrLeadNotFound)
		return nil, db.ErrLeadNotFound
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return lead, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLead(row scanner) (*model.Lead, error) {
	var (
		lead model.Lead
		id   string
	)
	if err := row.Scan(
		&id,
		&lead.CreatedAt,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Subject,
		&lead.Message,
		&lead.Lang,
	); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse lead id %q: %w", id, err)
	}
	lead.ID = parsed
	return &lead, nil
}
