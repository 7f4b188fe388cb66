package llm

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind string

const (
	KindConfiguration     ErrorKind = "configuration"
	KindUpstreamTransport ErrorKind = "upstream_transport"
	KindUpstreamParse     ErrorKind = "upstream_parse"
	KindUnknown           ErrorKind = "unknown"
)

// ConfigurationError reports an unknown provider or a missing credential.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// UpstreamTransportError covers network failures, timeouts and non-success statuses.
type UpstreamTransportError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamTransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error: %d %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *UpstreamTransportError) Unwrap() error { return e.Err }

// UpstreamParseError means the provider answered but no usable plan could be read from it.
type UpstreamParseError struct {
	Provider string
	Message  string
	// Keys lists the top-level keys of the provider's output object, when one was present.
	Keys []string
	Err  error
}

func (e *UpstreamParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UpstreamParseError) Unwrap() error { return e.Err }

// KindOf classifies any error returned by Generator.
func KindOf(err error) ErrorKind {
	var cfgErr *ConfigurationError
	var transportErr *UpstreamTransportError
	var parseErr *UpstreamParseError
	switch {
	case errors.As(err, &cfgErr):
		return KindConfiguration
	case errors.As(err, &transportErr):
		return KindUpstreamTransport
	case errors.As(err, &parseErr):
		return KindUpstreamParse
	default:
		return KindUnknown
	}
}

// formatKeys renders keys as "[a, b]"; an empty set renders as "[]".
func formatKeys(keys []string) string {
	return "[" + strings.Join(keys, ", ") + "]"
}
