package security

import (
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if err == bcrypt.ErrPasswordTooLong {
			return "", domain.ErrInvalidField("password", "must be <= 72 bytes")
		}
		return "", domain.Wrap(domain.KindInternal, "hash_failed", "failed to hash password", err)
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
