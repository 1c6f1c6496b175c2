package postgres

import (
	"context"
	"database/sql"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

const entityEvent = "event"

// EventRepo implements event.EventRepo on database/sql.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

const selectEventByIDSQL = `SELECT` + eventColumns + `
FROM events e
WHERE e.event_id = $1`

func (r *EventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, selectEventByIDSQL, id))
	if err != nil {
		return nil, MapError(OpSelect, entityEvent, err)
	}
	return e, nil
}

func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE event_id = $1`, id)
	if err != nil {
		return MapError(OpDelete, entityEvent, err)
	}
	return requireAffected(res, entityEvent)
}

func (r *EventRepo) List(ctx context.Context, f event.ListFilter) ([]*domain.Event, error) {
	q, args := BuildListQuery(f)
	return r.query(ctx, q, args...)
}

func (r *EventRepo) Filter(ctx context.Context, f event.FilterQuery) ([]*domain.Event, error) {
	q, args, err := BuildFilterQuery(f)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, q, args...)
}

func (r *EventRepo) Search(ctx context.Context, keyword string) ([]*domain.Event, error) {
	q, args, ok := BuildSearchQuery(keyword)
	if !ok {
		return []*domain.Event{}, nil
	}
	return r.query(ctx, q, args...)
}

func (r *EventRepo) query(ctx context.Context, q string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, MapError(OpSelect, entityEvent, err)
	}
	out, err := scanEvents(rows)
	if err != nil {
		return nil, MapError(OpSelect, entityEvent, err)
	}
	return out, nil
}

// requireAffected turns a zero-row write into NotFound.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return domain.ErrInternal(err)
	}
	if n == 0 {
		return domain.ErrNotFound(entity)
	}
	return nil
}
