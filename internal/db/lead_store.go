package db

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careerpath/internal/model"
)

var ErrLeadNotFound = errors.New("lead not found")

type LeadStore interface {
	CreateLead(context.Context, *model.Lead) (uuid.UUID, error)
	ListLeads(context.Context) ([]*model.Lead, error)
	GetLeadByID(context.Context, uuid.UUID) (*model.Lead, error)
}
