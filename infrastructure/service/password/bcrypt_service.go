package password

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cryptofolio/cryptofolio/domain/apperror"
)

const DefaultCost = 12

// BcryptPasswordService hashes passwords with bcrypt. Hashing is CPU-bound
// and deliberately slow, so calls are throttled through a semaphore sized to
// the worker count instead of running inline with request I/O.
type BcryptPasswordService struct {
	cost int
	sem  chan struct{}
}

func NewBcryptPasswordService(cost, workers int) *BcryptPasswordService {
	if cost <= 0 {
		cost = DefaultCost
	}
	if workers <= 0 {
		workers = 1
	}
	return &BcryptPasswordService{
		cost: cost,
		sem:  make(chan struct{}, workers),
	}
}

// Hash produces a salted bcrypt hash. The salt is generated fresh per call,
// so hashing the same password twice yields different outputs. There is no
// fallback to a fast digest: if bcrypt fails the error surfaces as
// apperror.ErrHashingFailure.
func (s *BcryptPasswordService) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrHashingFailure, err)
	}

	return string(hashed), nil
}

// Verify compares in constant time using the salt and cost embedded in the
// stored hash. Malformed or foreign-format hashes report false, never an
// error, so a corrupted row behaves like a wrong password.
func (s *BcryptPasswordService) Verify(password, hashedPassword string) bool {
	if password == "" || hashedPassword == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
