package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/dossier-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses; pgxmock satisfies it.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// preparedStatements lists queries to prepare on each new connection.
var preparedStatements = map[string]string{
	"insert_investigation": `INSERT INTO investigations (id, query, results, dossier, created_at) VALUES ($1, $2, $3, $4, $5)`,
	"get_investigation":    `SELECT id, query, results, dossier, created_at FROM investigations WHERE id = $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS investigations (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	query      TEXT NOT NULL DEFAULT '',
	results    JSONB NOT NULL,
	dossier    JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_investigations_query ON investigations(query);
CREATE INDEX IF NOT EXISTS idx_investigations_created_at ON investigations(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveInvestigation(ctx context.Context, inv *model.Investigation) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	resultsJSON, err := json.Marshal(inv.Results)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal results")
	}
	dossierJSON, err := json.Marshal(inv.Dossier)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal dossier")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO investigations (id, query, results, dossier, created_at) VALUES ($1, $2, $3, $4, $5)`,
		inv.ID, inv.Query, resultsJSON, dossierJSON, inv.CreatedAt,
	)
	return eris.Wrapf(err, "postgres: insert investigation %s", inv.ID)
}

func (s *PostgresStore) GetInvestigation(ctx context.Context, id string) (*model.Investigation, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, query, results, dossier, created_at FROM investigations WHERE id = $1`,
		id,
	)

	var inv model.Investigation
	var resultsJSON, dossierJSON []byte
	err := row.Scan(&inv.ID, &inv.Query, &resultsJSON, &dossierJSON, &inv.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Errorf("postgres: get investigation %s: not found", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get investigation %s", id)
	}

	if err := json.Unmarshal(resultsJSON, &inv.Results); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal results")
	}
	if len(dossierJSON) > 0 && string(dossierJSON) != "null" {
		inv.Dossier = &model.Dossier{}
		if err := json.Unmarshal(dossierJSON, inv.Dossier); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal dossier")
		}
	}
	return &inv, nil
}

func (s *PostgresStore) ListInvestigations(ctx context.Context, filter Filter) ([]model.Investigation, error) {
	query := `SELECT id, query, created_at FROM investigations WHERE 1=1`
	var args []any

	if filter.Query != "" {
		args = append(args, filter.Query)
		query += ` AND query = $1`
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list investigations")
	}
	defer rows.Close()

	var investigations []model.Investigation
	for rows.Next() {
		var inv model.Investigation
		if err := rows.Scan(&inv.ID, &inv.Query, &inv.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan investigation")
		}
		investigations = append(investigations, inv)
	}
	return investigations, eris.Wrap(rows.Err(), "postgres: list investigations iterate")
}
