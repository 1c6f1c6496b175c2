package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

const entityUser = "user"

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `user_id, username, email, password_hash, first_name, last_name, bio,
	profile_picture_url, social_links::text, address, created_at, updated_at`

const insertUserSQL = `
INSERT INTO users (
	username, email, password_hash, first_name, last_name, bio,
	profile_picture_url, social_links, address, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10, $11)
RETURNING user_id`

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	links, err := encodeLinks(u.SocialLinks)
	if err != nil {
		return domain.ErrInternal(err)
	}
	err = r.db.QueryRowContext(ctx, insertUserSQL,
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Bio,
		u.ProfilePictureURL, links, u.Address, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	return MapError(OpInsert, entityUser, err)
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var (
		u     domain.User
		links string
	)
	err := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Bio,
		&u.ProfilePictureURL, &links, &u.Address, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(OpSelect, entityUser, err)
	}
	if err := json.Unmarshal([]byte(links), &u.SocialLinks); err != nil {
		return nil, domain.ErrInternal(fmt.Errorf("decode social_links of user %d: %w", u.ID, err))
	}
	return &u, nil
}

const updateUserSQL = `
UPDATE users SET
	username = $2, email = $3, password_hash = $4, first_name = $5, last_name = $6, bio = $7,
	profile_picture_url = $8, social_links = $9::jsonb, address = $10, updated_at = $11
WHERE user_id = $1`

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	links, err := encodeLinks(u.SocialLinks)
	if err != nil {
		return domain.ErrInternal(err)
	}
	res, err := r.db.ExecContext(ctx, updateUserSQL,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Bio,
		u.ProfilePictureURL, links, u.Address, u.UpdatedAt,
	)
	if err != nil {
		return MapError(OpUpdate, entityUser, err)
	}
	return requireAffected(res, entityUser)
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return MapError(OpDelete, entityUser, err)
	}
	return requireAffected(res, entityUser)
}

func encodeLinks(m map[string]string) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
