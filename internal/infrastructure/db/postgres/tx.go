package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

// WithTx runs fn in one READ COMMITTED transaction. Any error from fn rolls back.
func (r *EventRepo) WithTx(ctx context.Context, fn func(event.TxEventRepo) error) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return MapError(OpSelect, entityEvent, err)
	}

	if err := fn(&txRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			zlog.Error().Err(rbErr).Msg("rollback failed")
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return MapError(OpUpdate, entityEvent, err)
	}
	return nil
}

type txRepo struct {
	tx *sql.Tx
}

const insertEventSQL = `
INSERT INTO events (
	user_id, name, description, date, end_time, location,
	pricing_info, thumbnail_url, capacity, state, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING event_id`

func (t *txRepo) Insert(ctx context.Context, e *domain.Event) error {
	err := t.tx.QueryRowContext(ctx, insertEventSQL,
		e.UserID, e.Name, e.Description, e.Date, e.EndTime, e.Location,
		e.PricingInfo, e.ThumbnailURL, e.Capacity, string(e.State), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	return MapError(OpInsert, entityEvent, err)
}

const selectEventForUpdateSQL = selectEventByIDSQL + `
FOR UPDATE`

func (t *txRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(t.tx.QueryRowContext(ctx, selectEventForUpdateSQL, id))
	if err != nil {
		return nil, MapError(OpSelect, entityEvent, err)
	}
	return e, nil
}

const updateEventSQL = `
UPDATE events SET
	name = $2, description = $3, date = $4, end_time = $5, location = $6,
	pricing_info = $7, thumbnail_url = $8, capacity = $9, state = $10, updated_at = $11
WHERE event_id = $1`

func (t *txRepo) Update(ctx context.Context, e *domain.Event) error {
	res, err := t.tx.ExecContext(ctx, updateEventSQL,
		e.ID, e.Name, e.Description, e.Date, e.EndTime, e.Location,
		e.PricingInfo, e.ThumbnailURL, e.Capacity, string(e.State), e.UpdatedAt,
	)
	if err != nil {
		return MapError(OpUpdate, entityEvent, err)
	}
	return requireAffected(res, entityEvent)
}

func (t *txRepo) ReplaceCategories(ctx context.Context, eventID int64, names []string) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM event_categories WHERE event_id = $1`, eventID); err != nil {
		return MapError(OpDelete, "event category", err)
	}
	if len(names) == 0 {
		return nil
	}

	b := newWhere()
	ph := b.in(names)
	rows, err := t.tx.QueryContext(ctx,
		`SELECT category_id, name FROM categories WHERE name IN (`+ph+`)`, b.args...)
	if err != nil {
		return MapError(OpSelect, "category", err)
	}
	ids := make(map[string]int64, len(names))
	func() {
		defer rows.Close()
		for rows.Next() {
			var (
				id   int64
				name string
			)
			if err = rows.Scan(&id, &name); err != nil {
				return
			}
			ids[name] = id
		}
		err = rows.Err()
	}()
	if err != nil {
		return MapError(OpSelect, "category", err)
	}

	var missing []string
	for _, n := range names {
		if _, ok := ids[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return domain.WithMeta(
			domain.New(domain.KindValidation, "reference_not_found", "unknown category"),
			map[string]string{"field": "categories", "missing": strings.Join(missing, ",")},
		)
	}

	values := make([]string, len(names))
	args := make([]any, 0, 1+len(names))
	args = append(args, eventID)
	for i, n := range names {
		values[i] = fmt.Sprintf("($1, $%d)", i+2)
		args = append(args, ids[n])
	}
	_, err = t.tx.ExecContext(ctx,
		`INSERT INTO event_categories (event_id, category_id) VALUES `+strings.Join(values, ", "), args...)
	return MapError(OpInsert, "event category", err)
}
