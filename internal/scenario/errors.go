package scenario

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrUnknownPerson   = errors.New("unknown person")
)

// ErrorKind says which stage of loading a scenario failed and why.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindUnreadable      ErrorKind = "unreadable"
	KindInvalidScenario ErrorKind = "invalid_scenario"
)

// OpError is a scenario failure located by file and, for validation
// problems, by the offending field such as "families[0].spouses".
type OpError struct {
	Op    string // load, parse or validate
	Kind  ErrorKind
	File  string
	Field string
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString("scenario " + e.Op)
	if e.File != "" {
		b.WriteString(" " + e.File)
	}
	if e.Field != "" {
		b.WriteString(" at " + e.Field)
	}
	b.WriteString(": " + string(e.Kind))
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a scenario error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	return errors.As(err, &oe) && oe.Kind == kind
}

// readError classifies a failure to read the scenario file.
func readError(file string, err error) *OpError {
	kind := KindUnreadable
	if errors.Is(err, fs.ErrNotExist) {
		kind = KindNotFound
	}
	return &OpError{Op: "load", Kind: kind, File: file, Err: err}
}

// decodeError wraps a YAML decoding failure.
func decodeError(err error) *OpError {
	return &OpError{
		Op:   "parse",
		Kind: KindInvalidScenario,
		Err:  fmt.Errorf("%w: %v", ErrInvalidScenario, err),
	}
}

// fieldError reports an invalid value at field.
func fieldError(field, msg string) *OpError {
	return &OpError{
		Op:    "validate",
		Kind:  KindInvalidScenario,
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidScenario, msg),
	}
}

// refError reports a person id at field that names nobody in the scenario.
func refError(field, id string) *OpError {
	return &OpError{
		Op:    "validate",
		Kind:  KindInvalidScenario,
		Field: field,
		Err:   fmt.Errorf("%w %q", ErrUnknownPerson, id),
	}
}
