package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// EventRepository stores each event as one JSONB document plus a few
// extracted columns for role-scoped filtering. Saves replace the document
// wholesale; there are no partial writes.
type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	doc, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	query := `INSERT INTO events (id, created_by, status, business_owner_id, event_host_id, selected_by_business_id, host_connected, doc, created_at, updated_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.CreatedBy, e.Status,
		e.BusinessOwnerID, e.EventHostID, e.SelectedByBusinessID,
		e.HostConnected, doc, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insert event: %v", domain.ErrStorage, err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT doc FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get event: %v", domain.ErrStorage, err)
	}

	var doc []byte
	if err = row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("%w: scan event: %v", domain.ErrStorage, err)
	}

	var e domain.Event
	if err = json.Unmarshal(doc, &e); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) Save(ctx context.Context, e *domain.Event) error {
	doc, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	query := `UPDATE events
			  SET created_by = $2,
			      status = $3,
			      business_owner_id = NULLIF($4, ''),
			      event_host_id = NULLIF($5, ''),
			      selected_by_business_id = NULLIF($6, ''),
			      host_connected = $7,
			      doc = $8,
			      updated_at = $9
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.CreatedBy, e.Status,
		e.BusinessOwnerID, e.EventHostID, e.SelectedByBusinessID,
		e.HostConnected, doc, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: save event: %v", domain.ErrStorage, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: save event rows affected: %v", domain.ErrStorage, err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) ListVisible(ctx context.Context, role domain.Role, actorID string) ([]*domain.Event, error) {
	var filter string
	switch role {
	case domain.RoleBusiness:
		filter = `business_owner_id = $1
			   OR selected_by_business_id = $1
			   OR (created_by = 'host' AND selected_by_business_id IS NULL)`
	case domain.RoleHost:
		filter = `event_host_id = $1
			   OR (created_by = 'business' AND host_connected = FALSE)`
	case domain.RoleContractor:
		filter = `host_connected = TRUE AND $1 <> ''`
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	query := `SELECT doc FROM events WHERE ` + filter + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: scan event: %v", domain.ErrStorage, err)
		}
		var e domain.Event
		if err = json.Unmarshal(doc, &e); err != nil {
			return nil, fmt.Errorf("unmarshal event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
