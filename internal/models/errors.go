package models

import "errors"

// Session errors. Callers match them with errors.Is; messages are usually
// wrapped with detail.
var (
	ErrNotFound           = errors.New("not found")
	ErrWrongState         = errors.New("operation not allowed in current session state")
	ErrNotReady           = errors.New("result not computed yet")
	ErrComputeFailed      = errors.New("recommendation compute failed")
	ErrInvalidPreferences = errors.New("invalid preferences")
)
