package inbound

import (
	"context"
)

// PasswordService hides the hashing algorithm behind the application core.
// Hash takes a context because the work is queued on a bounded worker pool.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(password, hashedPassword string) bool
}
