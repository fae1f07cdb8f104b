// Package store persists investigation runs. Two backends are provided:
// postgres over pgx for shared deployments and sqlite for local use.
package store

import (
	"context"

	"github.com/sells-group/dossier-cli/internal/model"
)

// Filter specifies criteria for listing investigations.
type Filter struct {
	Query  string `json:"query,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for investigation runs.
type Store interface {
	SaveInvestigation(ctx context.Context, inv *model.Investigation) error
	GetInvestigation(ctx context.Context, id string) (*model.Investigation, error)
	// ListInvestigations returns summaries (id, query, created_at) newest
	// first; the heavy payload columns are left unloaded.
	ListInvestigations(ctx context.Context, filter Filter) ([]model.Investigation, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
