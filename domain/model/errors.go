package model

import "fmt"

// ErrorKind is the closed set of failure categories surfaced to callers.
type ErrorKind string

const (
	// ErrKindTransport covers network or timeout failures before any response.
	ErrKindTransport ErrorKind = "transport"
	// ErrKindAPI covers non-2xx responses or error envelopes from the Graph API.
	ErrKindAPI ErrorKind = "api"
	// ErrKindParse covers invalid JSON/CSV in the vault file or an uploaded import.
	ErrKindParse ErrorKind = "parse"
	// ErrKindValidation covers missing required input fields.
	ErrKindValidation ErrorKind = "validation"
)

// AppError carries an error kind plus a human-readable message. Every error
// path ends in one of these so the UI always has something to render.
type AppError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a missing or empty required field.
func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrKindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewParseError reports an unreadable vault or import payload.
func NewParseError(message string, err error) *AppError {
	return &AppError{Kind: ErrKindParse, Message: message, Err: err}
}

// GraphError is the remote service's error envelope {"error": {...}}. When the
// body cannot be parsed at all, Message carries the raw text instead.
type GraphError struct {
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	Code      int    `json:"code,omitempty"`
	Subcode   int    `json:"error_subcode,omitempty"`
	TraceID   string `json:"fbtrace_id,omitempty"`
	Transport bool   `json:"-"`
}

func (e *GraphError) Error() string {
	return e.Message
}

// Kind maps the Graph failure onto the closed error-kind set.
func (e *GraphError) Kind() ErrorKind {
	if e.Transport {
		return ErrKindTransport
	}
	return ErrKindAPI
}
