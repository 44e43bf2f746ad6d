package main

import "fmt"

// ErrorKind classifies validation failures
type ErrorKind string

const (
	KindInvalidProfile ErrorKind = "invalid_profile"
	KindInvalidEntry   ErrorKind = "invalid_entry"
)

// ValidationError reports bad user input. Nothing is recorded when one is
// returned; the caller can only re-enter correct values.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

var (
	ErrInvalidProfile = &ValidationError{Kind: KindInvalidProfile}
	ErrInvalidEntry   = &ValidationError{Kind: KindInvalidEntry}
)

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Message)
}

// Is matches any ValidationError of the same kind, so
// errors.Is(err, ErrInvalidEntry) works for every entry failure.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

func invalidProfile(field, format string, args ...any) error {
	return &ValidationError{Kind: KindInvalidProfile, Field: field, Message: fmt.Sprintf(format, args...)}
}

func invalidEntry(field, format string, args ...any) error {
	return &ValidationError{Kind: KindInvalidEntry, Field: field, Message: fmt.Sprintf(format, args...)}
}
