package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/withstack"
)

// PublicError is an error that, when caught by error handler, should return a user-friendly error response to the user.
// code is optional and lets clients match on a stable identifier instead of the message.
type PublicError struct {
	err     error
	message string
	code    string
}

func (p PublicError) Error() string {
	return p.err.Error()
}

func (p PublicError) Message() string {
	return p.message
}

func (p PublicError) Code() string {
	return p.code
}

func (p PublicError) Unwrap() error {
	return p.err
}

func NewPublicError(message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message}, 1)
}

func NewPublicErrorWithCode(message string, code string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message, code: code}, 1)
}

func WithPublicMessageCode(err error, prefix string, code string) error {
	if err == nil {
		return nil
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: publicMessage(err, prefix), code: code}, 1)
}

// WrapPublic attaches a public message and code to err. Unlike WithPublicMessageCode, the message does not include err's own text.
func WrapPublic(err error, message string, code string) error {
	if err == nil {
		return nil
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: message, code: code}, 1)
}

// AsPublicError finds the first PublicError in err's chain.
func AsPublicError(err error) (*PublicError, bool) {
	if e := new(PublicError); errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func publicMessage(err error, prefix string) string {
	if prefix == "" {
		return err.Error()
	}
	return fmt.Sprintf("%s: %s", prefix, err.Error())
}
