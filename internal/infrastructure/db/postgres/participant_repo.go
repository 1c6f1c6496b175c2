package postgres

import (
	"context"
	"database/sql"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

const entityParticipant = "participant"

type ParticipantRepo struct {
	db *sql.DB
}

func NewParticipantRepo(db *sql.DB) *ParticipantRepo {
	return &ParticipantRepo{db: db}
}

const participantColumns = `user_id, event_id, rsvp_date, payment_status`

// Insert relies on the composite primary key: of two concurrent inserts for the
// same pair, one fails with participants_pkey.
func (r *ParticipantRepo) Insert(ctx context.Context, p *domain.Participant) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO participants (`+participantColumns+`) VALUES ($1, $2, $3, $4)`,
		p.UserID, p.EventID, p.RSVPDate, p.PaymentStatus)
	return MapError(OpInsert, entityParticipant, err)
}

func (r *ParticipantRepo) Get(ctx context.Context, userID, eventID int64) (*domain.Participant, error) {
	p, err := scanParticipant(r.db.QueryRowContext(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE user_id = $1 AND event_id = $2`,
		userID, eventID))
	if err != nil {
		return nil, MapError(OpSelect, entityParticipant, err)
	}
	return p, nil
}

func (r *ParticipantRepo) Update(ctx context.Context, p *domain.Participant) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE participants SET rsvp_date = $3, payment_status = $4 WHERE user_id = $1 AND event_id = $2`,
		p.UserID, p.EventID, p.RSVPDate, p.PaymentStatus)
	if err != nil {
		return MapError(OpUpdate, entityParticipant, err)
	}
	return requireAffected(res, entityParticipant)
}

func (r *ParticipantRepo) Delete(ctx context.Context, userID, eventID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM participants WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		return MapError(OpDelete, entityParticipant, err)
	}
	return requireAffected(res, entityParticipant)
}

func (r *ParticipantRepo) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Participant, error) {
	return r.list(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE event_id = $1 ORDER BY user_id ASC`, eventID)
}

func (r *ParticipantRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Participant, error) {
	return r.list(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE user_id = $1 ORDER BY event_id ASC`, userID)
}

func (r *ParticipantRepo) list(ctx context.Context, q string, arg int64) ([]*domain.Participant, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, MapError(OpSelect, entityParticipant, err)
	}
	defer rows.Close()

	out := make([]*domain.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, MapError(OpSelect, entityParticipant, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(OpSelect, entityParticipant, err)
	}
	return out, nil
}

func scanParticipant(row rowScanner) (*domain.Participant, error) {
	var p domain.Participant
	if err := row.Scan(&p.UserID, &p.EventID, &p.RSVPDate, &p.PaymentStatus); err != nil {
		return nil, err
	}
	p.RSVPDate = p.RSVPDate.UTC()
	return &p, nil
}
