// Package apperror holds the error taxonomy shared between the application
// core and the HTTP boundary. Handlers match these sentinels with errors.Is
// and never inspect error text.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers unknown email, inactive account and wrong
	// password alike so a caller cannot tell which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInactiveUser      = errors.New("inactive user")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrHashingFailure means the bcrypt primitive itself failed. There is no
	// fallback digest; this is an environment fault, not a request fault.
	ErrHashingFailure = errors.New("password hashing failure")
)

// ErrInvalidToken is the common kind for every token rejection. The reason
// sentinels below wrap it, so errors.Is(err, ErrInvalidToken) holds for all
// of them while callers can still log the precise cause.
var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrTokenExpired          = fmt.Errorf("%w: expired", ErrInvalidToken)
	ErrTokenMalformed        = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenSignatureInvalid = fmt.Errorf("%w: signature verification failed", ErrInvalidToken)
	ErrWrongTokenType        = fmt.Errorf("%w: wrong token type", ErrInvalidToken)
)
