package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// OfflineActionRepository persists the not-yet-applied vendor updates. The
// bigserial position column fixes the FIFO order.
type OfflineActionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOfflineActionRepo(db *dbpg.DB) *OfflineActionRepository {
	return &OfflineActionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OfflineActionRepository) Append(ctx context.Context, a *domain.OfflineAction) error {
	patch, err := json.Marshal(a.Patch)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}

	query := `INSERT INTO offline_actions (id, event_id, contractor_id, patch, queued_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err = r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.EventID, a.ContractorID, patch, a.QueuedAt)
	if err != nil {
		return fmt.Errorf("%w: insert action: %v", domain.ErrStorage, err)
	}

	return nil
}

func (r *OfflineActionRepository) ListPending(ctx context.Context) ([]*domain.OfflineAction, error) {
	query := `SELECT position, id, event_id, contractor_id, patch, queued_at
			  FROM offline_actions
			  ORDER BY position ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list actions: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	var res []*domain.OfflineAction
	for rows.Next() {
		var a domain.OfflineAction
		var patch []byte
		if err = rows.Scan(&a.Position, &a.ID, &a.EventID, &a.ContractorID, &patch, &a.QueuedAt); err != nil {
			return nil, fmt.Errorf("%w: scan action: %v", domain.ErrStorage, err)
		}
		if err = json.Unmarshal(patch, &a.Patch); err != nil {
			return nil, fmt.Errorf("unmarshal patch: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *OfflineActionRepository) DeleteThrough(ctx context.Context, position int64) error {
	query := `DELETE FROM offline_actions WHERE position <= $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, position); err != nil {
		return fmt.Errorf("%w: delete actions: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *OfflineActionRepository) Clear(ctx context.Context) error {
	query := `DELETE FROM offline_actions`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query); err != nil {
		return fmt.Errorf("%w: clear actions: %v", domain.ErrStorage, err)
	}
	return nil
}
