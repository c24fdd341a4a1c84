package errors

import "fmt"

var (
	ErrValidation        = fmt.Errorf("validation failed")
	ErrParse             = fmt.Errorf("malformed document")
	ErrInvalidTransition = fmt.Errorf("invalid status transition")

	ErrNotFound          = fmt.Errorf("record not found")
	ErrUserAlreadyExists = fmt.Errorf("user already exists")
	ErrCorruptedRecord   = fmt.Errorf("stored record failed validation")
	ErrUnsupportedMedia  = fmt.Errorf("unsupported document type")
)

// ValidationError reports the first invariant violated by a value.
// Field is the dotted wire path, e.g. "location.coordinates.lat".
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Within prefixes the field path with the enclosing field,
// used when an envelope validates the entities it carries.
func (e *ValidationError) Within(parent string) *ValidationError {
	field := parent
	switch {
	case e.Field == "":
	case len(e.Field) > 0 && e.Field[0] == '[':
		field = parent + e.Field
	default:
		field = parent + "." + e.Field
	}
	return &ValidationError{Field: field, Reason: e.Reason}
}

// ParseError reports input that is not well-formed JSON.
// Position is the byte offset at which decoding stopped.
type ParseError struct {
	Position int64
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed document at offset %d: %s", e.Position, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InvalidTransition is returned when a status change is not allowed,
// including any change out of a terminal status.
type InvalidTransition struct {
	From string
	To   string
}

func (e *InvalidTransition) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransition) Is(target error) bool {
	return target == ErrInvalidTransition
}
