package token

import "errors"

var (
	// ErrSubjectTooLong is returned by Issue when the subject exceeds MaxSubjectLen.
	ErrSubjectTooLong = errors.New("subject is too long")
)

const MaxSubjectLen = 255
