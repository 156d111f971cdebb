package storage

import "errors"

// ErrSessionNotFound is returned by updates and deletes of unknown sessions.
var ErrSessionNotFound = errors.New("session not found")
