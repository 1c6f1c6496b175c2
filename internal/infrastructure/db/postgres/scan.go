package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e     domain.Event
		state string
		cats  string
	)
	if err := row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.Description, &e.Date, &e.EndTime, &e.Location,
		&e.PricingInfo, &e.ThumbnailURL, &e.Capacity, &state,
		&e.CreatedAt, &e.UpdatedAt, &cats,
	); err != nil {
		return nil, err
	}
	e.State = domain.EventState(state)
	e.Date = e.Date.UTC()
	if e.EndTime != nil {
		t := e.EndTime.UTC()
		e.EndTime = &t
	}
	if err := json.Unmarshal([]byte(cats), &e.Categories); err != nil {
		return nil, fmt.Errorf("decode categories of event %d: %w", e.ID, err)
	}
	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	defer rows.Close()

	out := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
