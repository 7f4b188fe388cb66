package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidID          = errors.New("invalid id")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrExpenseNotFound    = errors.New("expense not found")

	ErrTranscriptRequired        = errors.New("transcript text is required")
	ErrAudioRequired             = errors.New("audio file is required")
	ErrEmptyAudio                = errors.New("empty audio file")
	ErrUnsupportedSpeechProvider = errors.New("unsupported speech provider")
	ErrSpeechNotConfigured       = errors.New("speech provider credentials missing")
)

// ValidationError is a request that is well-formed JSON but semantically invalid.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// GatewayError is a failure of an upstream dependency, reported to the client as 502.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string { return e.Message }

func (e *GatewayError) Unwrap() error { return e.Err }
