package postgres

import (
	"fmt"
	"strings"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
)

// eventColumns is the projection every event read shares. Categories come back as a
// JSON array of names so one row carries the whole aggregate.
const eventColumns = `
	e.event_id, e.user_id, e.name, e.description, e.date, e.end_time, e.location,
	e.pricing_info::float8, e.thumbnail_url, e.capacity, e.state::text,
	e.created_at, e.updated_at,
	COALESCE((
		SELECT json_agg(c.name ORDER BY c.name)
		FROM event_categories ec
		JOIN categories c ON c.category_id = ec.category_id
		WHERE ec.event_id = e.event_id
	), '[]'::json)::text`

// whereBuilder numbers positional placeholders as predicates are appended.
type whereBuilder struct {
	where []string
	args  []any
	argN  int
}

func newWhere() *whereBuilder {
	return &whereBuilder{argN: 1}
}

// add appends one predicate; condFmt holds a single %d for the placeholder.
func (b *whereBuilder) add(condFmt string, v any) {
	b.where = append(b.where, fmt.Sprintf(condFmt, b.argN))
	b.args = append(b.args, v)
	b.argN++
}

// in reserves one placeholder per value and returns "$i, $j, ...".
func (b *whereBuilder) in(vals []string) string {
	ph := make([]string, len(vals))
	for i, v := range vals {
		ph[i] = fmt.Sprintf("$%d", b.argN)
		b.args = append(b.args, v)
		b.argN++
	}
	return strings.Join(ph, ", ")
}

func (b *whereBuilder) clause() string {
	if len(b.where) == 0 {
		return ""
	}
	return "\nWHERE " + strings.Join(b.where, "\n  AND ")
}

// BuildFilterQuery composes the paginated filter. Criteria AND together; an absent
// criterion adds nothing. The caller is expected to have run Normalize.
func BuildFilterQuery(f event.FilterQuery) (string, []any, error) {
	b := newWhere()

	if len(f.Categories) > 0 {
		ph := b.in(f.Categories)
		b.where = append(b.where, `EXISTS (
	SELECT 1 FROM event_categories ec
	JOIN categories c ON c.category_id = ec.category_id
	WHERE ec.event_id = e.event_id AND c.name IN (`+ph+`))`)
	}
	if f.Date != "" {
		from, to, err := event.DayBounds(f.Date)
		if err != nil {
			return "", nil, err
		}
		b.add("e.date >= $%d", from)
		b.add("e.date <= $%d", to)
	}
	if f.Location != "" {
		b.add("strpos(e.location, $%d) > 0", f.Location)
	}

	q := "SELECT" + eventColumns + "\nFROM events e" + b.clause() +
		fmt.Sprintf("\nORDER BY e.event_id ASC\nLIMIT $%d OFFSET $%d", b.argN, b.argN+1)
	args := append(b.args, f.Limit, f.Offset())
	return q, args, nil
}

// BuildListQuery is the unpaginated listing with optional state and owner.
func BuildListQuery(f event.ListFilter) (string, []any) {
	b := newWhere()
	if f.State != "" {
		b.add("e.state = $%d", string(f.State))
	}
	if f.UserID > 0 {
		b.add("e.user_id = $%d", f.UserID)
	}
	q := "SELECT" + eventColumns + "\nFROM events e" + b.clause() + "\nORDER BY e.event_id ASC"
	return q, b.args
}

// BuildSearchQuery ORs a full-text match over name, description and location.
// ok is false for a blank keyword, which matches nothing.
func BuildSearchQuery(keyword string) (string, []any, bool) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return "", nil, false
	}
	q := "SELECT" + eventColumns + `
FROM events e
WHERE to_tsvector('simple', e.name) @@ plainto_tsquery('simple', $1)
   OR to_tsvector('simple', e.description) @@ plainto_tsquery('simple', $1)
   OR to_tsvector('simple', e.location) @@ plainto_tsquery('simple', $1)
ORDER BY e.event_id ASC`
	return q, []any{keyword}, true
}
