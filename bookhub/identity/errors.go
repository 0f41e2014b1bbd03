package identity

import "errors"

// error kinds returned by the service; match with errors.Is
var (
	ErrValidation           = errors.New("validation error")
	ErrConflict             = errors.New("conflict")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotFound             = errors.New("not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// client-facing messages
const (
	MsgFieldsRequired     = "All fields are required."
	MsgInvalidRole        = "Role must be one of: user, admin."
	MsgUserExists         = "User already exists."
	MsgLoginFieldsMissing = "Email and password are required."
	MsgInvalidCredentials = "Invalid email or password."
	MsgUserNotFound       = "User not found."
	MsgAuthFailed         = "Authentication failed."
)

// carries a kind, a message safe to show clients, and the internal cause
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}
