package session

import "errors"

var (
	ErrProfileNotFound = errors.New("session profile not found")
	ErrEmptySessionID  = errors.New("session id is required")
)
