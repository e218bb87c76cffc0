// Package handler holds shared contracts and helpers for web handlers.
package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// MsgInternalServerError is the generic message returned on storage failures.
	// The specific cause is logged, never leaked to the caller.
	MsgInternalServerError = "internal server error"
)
