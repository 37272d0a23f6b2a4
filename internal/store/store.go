// Package store persists resolution results to Postgres for downstream
// enrichment workflows.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"github.com/propwire/resolve-cli/internal/db"
	"github.com/propwire/resolve-cli/internal/model"
	"github.com/propwire/resolve-cli/internal/owner"
)

// Store writes resolution results using a pgx pool.
type Store struct {
	pool db.Pool
}

// NewStore creates a Store backed by the given pool.
func NewStore(pool db.Pool) *Store {
	return &Store{pool: pool}
}

// SaveResolvedOwner records one resolved identity under a run ID and
// returns the row ID.
func (s *Store) SaveResolvedOwner(ctx context.Context, runID uuid.UUID, r model.ResolvedOwner) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO resolution.resolved_owners (
			run_id, entity_name, likely_person, llc_name,
			phone, email, mailing_address,
			confidence, sources, alternate_names
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		runID, r.EntityName, r.LikelyPerson, r.LLCName,
		r.Phone, r.Email, r.MailingAddress,
		r.Confidence, r.Sources, r.AlternateNames,
	).Scan(&id)
	if err != nil {
		return 0, eris.Wrap(err, "store: save resolved owner")
	}
	return id, nil
}

// SavePortfolios records portfolio groups under a run ID using COPY.
func (s *Store) SavePortfolios(ctx context.Context, runID uuid.UUID, groups []owner.PortfolioGroup) (int64, error) {
	if len(groups) == 0 {
		return 0, nil
	}

	rows := make([][]any, len(groups))
	for i, g := range groups {
		ids := make([]string, len(g.Properties))
		for j, p := range g.Properties {
			ids[j] = p.ID
		}
		rows[i] = []any{runID, g.Owner, ids}
	}

	n, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"resolution", "portfolio_groups"},
		[]string{"run_id", "owner_label", "property_ids"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, eris.Wrap(err, "store: save portfolios")
	}
	return n, nil
}

// ResolvedOwnersByRun fetches every resolved identity recorded under a
// run ID, newest first.
func (s *Store) ResolvedOwnersByRun(ctx context.Context, runID uuid.UUID) ([]model.ResolvedOwner, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT entity_name, likely_person, llc_name,
		       phone, email, mailing_address,
		       confidence, sources, alternate_names
		FROM resolution.resolved_owners
		WHERE run_id = $1
		ORDER BY id DESC`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrap(err, "store: query resolved owners")
	}
	defer rows.Close()

	var out []model.ResolvedOwner
	for rows.Next() {
		var r model.ResolvedOwner
		if err := rows.Scan(
			&r.EntityName, &r.LikelyPerson, &r.LLCName,
			&r.Phone, &r.Email, &r.MailingAddress,
			&r.Confidence, &r.Sources, &r.AlternateNames,
		); err != nil {
			return nil, eris.Wrap(err, "store: scan resolved owner")
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
