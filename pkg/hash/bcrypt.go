package hash

import (
	"golang.org/x/crypto/bcrypt"

	"authkit-backend/internal/apperror"
)

// Service hashes and verifies passwords with bcrypt. The zero cost falls back
// to the library default.
type Service struct {
	cost int
}

func NewService(cost int) *Service {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{cost: cost}
}

// Hash produces a salted one-way hash of plainText. Hashing the same input
// twice yields different outputs.
func (s *Service) Hash(plainText string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plainText), s.cost)
	if err != nil {
		return "", apperror.Internal("Error hashing password", nil)
	}
	return string(bytes), nil
}

// Compare reports whether hashedText was produced from plainText.
func (s *Service) Compare(plainText, hashedText string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedText), []byte(plainText)) == nil
}
