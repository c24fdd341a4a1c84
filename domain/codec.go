package domain

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"unicode/utf8"

	"estate-hub/errors"
)

// Entity is implemented by every record and envelope exchanged on the wire.
type Entity interface {
	// Validate checks the invariants of an already typed value.
	Validate() error
	wireFields() []field
}

// Validate turns untyped structured data into E. It checks key presence,
// JSON types and then the invariants of E, failing on the first violation.
// raw may hold typed Go values; it is normalised to its JSON shape first.
func Validate[E Entity](raw map[string]any) (E, error) {
	var value E
	if raw == nil {
		return value, errors.NewValidationError("", "document must be a JSON object")
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return value, errors.NewValidationError("", err.Error())
	}
	var normalised map[string]any
	if err = json.Unmarshal(data, &normalised); err != nil {
		return value, errors.NewValidationError("", err.Error())
	}
	if pre, ok := any(value).(prechecked); ok {
		if err = pre.precheck(normalised); err != nil {
			return value, err
		}
	}
	if err = checkPresence(normalised, value.wireFields(), ""); err != nil {
		return value, err
	}
	var decoded E
	if err = json.Unmarshal(data, &decoded); err != nil {
		return value, typeError(err)
	}
	if err = decoded.Validate(); err != nil {
		return value, err
	}
	return decoded, nil
}

// prechecked is implemented by entities with rules that must be reported
// before key presence is walked, such as envelope flags guarding a payload.
type prechecked interface {
	precheck(raw map[string]any) error
}

// Serialize renders a valid value as compact JSON. Field order follows the
// struct declaration, map keys are sorted, so output is stable.
func Serialize[E Entity](value E) ([]byte, error) {
	if err := value.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("encode %T: %w", value, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Deserialize parses text and delegates to Validate.
func Deserialize[E Entity](text []byte) (E, error) {
	raw, err := ParseObject(text)
	if err != nil {
		var zero E
		return zero, err
	}
	return Validate[E](raw)
}

// ParseObject decodes exactly one JSON object from text.
func ParseObject(text []byte) (map[string]any, error) {
	if at := invalidUTF8(text); at >= 0 {
		return nil, &errors.ParseError{Position: int64(at), Reason: "invalid UTF-8 sequence"}
	}
	dec := json.NewDecoder(bytes.NewReader(text))
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, parseError(err, dec, len(text))
	}
	if rest := bytes.TrimLeft(text[dec.InputOffset():], " \t\r\n"); len(rest) > 0 {
		return nil, &errors.ParseError{Position: int64(len(text) - len(rest)), Reason: "unexpected data after document"}
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.NewValidationError("", "document must be a JSON object")
	}
	return obj, nil
}

// invalidUTF8 returns the offset of the first invalid UTF-8 byte, or -1.
func invalidUTF8(text []byte) int {
	if utf8.Valid(text) {
		return -1
	}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

func parseError(err error, dec *json.Decoder, size int) *errors.ParseError {
	var syntaxErr *json.SyntaxError
	switch {
	case stderrors.As(err, &syntaxErr):
		return &errors.ParseError{Position: syntaxErr.Offset, Reason: syntaxErr.Error()}
	case stderrors.Is(err, io.EOF):
		return &errors.ParseError{Position: 0, Reason: "empty document"}
	case stderrors.Is(err, io.ErrUnexpectedEOF):
		return &errors.ParseError{Position: int64(size), Reason: "unexpected end of input"}
	default:
		return &errors.ParseError{Position: dec.InputOffset(), Reason: err.Error()}
	}
}

func typeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if !stderrors.As(err, &typeErr) {
		return errors.NewValidationError("", err.Error())
	}
	return errors.NewValidationError(typeErr.Field,
		fmt.Sprintf("must be %s, got %s", describe(typeErr.Type), typeErr.Value))
}

func describe(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
