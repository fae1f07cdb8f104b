package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/dossier-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS investigations (
	id         TEXT PRIMARY KEY,
	query      TEXT NOT NULL DEFAULT '',
	results    TEXT NOT NULL,
	dossier    TEXT,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_investigations_query ON investigations(query);
CREATE INDEX IF NOT EXISTS idx_investigations_created_at ON investigations(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveInvestigation(ctx context.Context, inv *model.Investigation) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	resultsJSON, err := json.Marshal(inv.Results)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal results")
	}
	dossierJSON, err := json.Marshal(inv.Dossier)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal dossier")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO investigations (id, query, results, dossier, created_at) VALUES (?, ?, ?, ?, ?)`,
		inv.ID, inv.Query, string(resultsJSON), string(dossierJSON), inv.CreatedAt,
	)
	return eris.Wrapf(err, "sqlite: insert investigation %s", inv.ID)
}

func (s *SQLiteStore) GetInvestigation(ctx context.Context, id string) (*model.Investigation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, query, results, dossier, created_at FROM investigations WHERE id = ?`,
		id,
	)

	var inv model.Investigation
	var resultsJSON string
	var dossierJSON sql.NullString
	err := row.Scan(&inv.ID, &inv.Query, &resultsJSON, &dossierJSON, &inv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Errorf("investigation not found: %s", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get investigation %s", id)
	}

	if err := json.Unmarshal([]byte(resultsJSON), &inv.Results); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal results")
	}
	if dossierJSON.Valid && dossierJSON.String != "null" {
		inv.Dossier = &model.Dossier{}
		if err := json.Unmarshal([]byte(dossierJSON.String), inv.Dossier); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal dossier")
		}
	}
	return &inv, nil
}

func (s *SQLiteStore) ListInvestigations(ctx context.Context, filter Filter) ([]model.Investigation, error) {
	query := `SELECT id, query, created_at FROM investigations WHERE 1=1`
	var args []any

	if filter.Query != "" {
		query += ` AND query = ?`
		args = append(args, filter.Query)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list investigations")
	}
	defer rows.Close()

	var investigations []model.Investigation
	for rows.Next() {
		var inv model.Investigation
		if err := rows.Scan(&inv.ID, &inv.Query, &inv.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan investigation")
		}
		investigations = append(investigations, inv)
	}
	return investigations, eris.Wrap(rows.Err(), "sqlite: list investigations iterate")
}
