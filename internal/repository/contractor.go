package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// ContractorRepository owns the rating-policy slice of contractor profiles:
// the one-star counter and the suspension state.
type ContractorRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewContractorRepo(db *dbpg.DB) *ContractorRepository {
	return &ContractorRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ContractorRepository) Get(ctx context.Context, id string) (*domain.Contractor, error) {
	query := `SELECT id, one_star_count, suspended, suspended_at, suspension_reason
			  FROM contractors
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get contractor: %v", domain.ErrStorage, err)
	}

	c, err := scanContractor(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrContractorNotFound
		}
		return nil, fmt.Errorf("%w: scan contractor: %v", domain.ErrStorage, err)
	}

	return c, nil
}

// IncrementOneStar upserts the profile and bumps the counter in one
// statement, returning the post-increment count alongside the pre-existing
// suspension state.
func (r *ContractorRepository) IncrementOneStar(ctx context.Context, id string) (*domain.Contractor, error) {
	query := `INSERT INTO contractors (id, one_star_count, updated_at)
			  VALUES ($1, 1, now())
			  ON CONFLICT (id) DO UPDATE
			  SET one_star_count = contractors.one_star_count + 1, updated_at = now()
			  RETURNING id, one_star_count, suspended, suspended_at, suspension_reason`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: increment one-star: %v", domain.ErrStorage, err)
	}

	c, err := scanContractor(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("%w: scan contractor: %v", domain.ErrStorage, err)
	}

	return c, nil
}

func (r *ContractorRepository) Suspend(ctx context.Context, id, reason string, at time.Time) error {
	query := `UPDATE contractors
			  SET suspended = TRUE, suspended_at = $2, suspension_reason = $3, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at, reason)
	if err != nil {
		return fmt.Errorf("%w: suspend contractor: %v", domain.ErrStorage, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: suspend rows affected: %v", domain.ErrStorage, err)
	}
	if rows == 0 {
		return domain.ErrContractorNotFound
	}

	return nil
}

func scanContractor(scan func(dest ...any) error) (*domain.Contractor, error) {
	var c domain.Contractor
	var suspendedAt sql.NullTime
	var reason sql.NullString
	if err := scan(&c.ID, &c.OneStarCount, &c.Suspended, &suspendedAt, &reason); err != nil {
		return nil, err
	}
	if suspendedAt.Valid {
		c.SuspendedAt = &suspendedAt.Time
	}
	c.SuspensionReason = reason.String
	return &c, nil
}
