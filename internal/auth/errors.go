package auth

import (
	"errors"
	"fmt"
)

// ErrEmptyMasterToken is returned by New when no master token is configured.
var ErrEmptyMasterToken = errors.New("auth: master token must not be empty")

func (e *AccessDeniedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("access denied (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("access denied (%s)", e.Reason)
}

func (e *AccessDeniedError) Unwrap() error {
	return e.Err
}

// IsAccessDenied reports whether err is an AccessDeniedError and returns it.
func IsAccessDenied(err error) (*AccessDeniedError, bool) {
	var denied *AccessDeniedError
	if errors.As(err, &denied) {
		return denied, true
	}
	return nil, false
}
