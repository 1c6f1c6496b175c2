package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

const entityCategory = "category"

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// CreateMany inserts all names in one statement, so either every row lands or none.
func (r *CategoryRepo) CreateMany(ctx context.Context, names []string) ([]*domain.Category, error) {
	if len(names) == 0 {
		return []*domain.Category{}, nil
	}
	values := make([]string, len(names))
	args := make([]any, len(names))
	for i, n := range names {
		values[i] = fmt.Sprintf("($%d)", i+1)
		args[i] = n
	}
	q := `INSERT INTO categories (name) VALUES ` + strings.Join(values, ", ") + ` RETURNING category_id, name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, MapError(OpInsert, entityCategory, err)
	}
	out, err := scanCategories(rows)
	if err != nil {
		return nil, MapError(OpInsert, entityCategory, err)
	}
	return out, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT category_id, name FROM categories WHERE category_id = $1`, id,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, MapError(OpSelect, entityCategory, err)
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category_id, name FROM categories ORDER BY category_id ASC`)
	if err != nil {
		return nil, MapError(OpSelect, entityCategory, err)
	}
	out, err := scanCategories(rows)
	if err != nil {
		return nil, MapError(OpSelect, entityCategory, err)
	}
	return out, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $2 WHERE category_id = $1`, c.ID, c.Name)
	if err != nil {
		return MapError(OpUpdate, entityCategory, err)
	}
	return requireAffected(res, entityCategory)
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		return MapError(OpDelete, entityCategory, err)
	}
	return requireAffected(res, entityCategory)
}

func (r *CategoryRepo) LinkedEventIDs(ctx context.Context, id int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_id FROM event_categories WHERE category_id = $1 ORDER BY event_id ASC`, id)
	if err != nil {
		return nil, MapError(OpSelect, entityCategory, err)
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var eid int64
		if err := rows.Scan(&eid); err != nil {
			return nil, MapError(OpSelect, entityCategory, err)
		}
		out = append(out, eid)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(OpSelect, entityCategory, err)
	}
	return out, nil
}

func scanCategories(rows *sql.Rows) ([]*domain.Category, error) {
	defer rows.Close()
	out := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
