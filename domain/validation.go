package domain

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"estate-hub/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumerated)
		return ok && e.IsValid()
	})
	mustRegister(v, "utciso8601", func(fl validator.FieldLevel) bool {
		return IsUTCTimestamp(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// IsUTCTimestamp accepts RFC 3339 timestamps with a zero UTC offset,
// with or without fractional seconds.
func IsUTCTimestamp(s string) bool {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return false
	}
	_, offset := t.Zone()
	return offset == 0
}

// FormatTimestamp renders t the way browsers do with toISOString.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// checkStruct runs the struct tags of v and converts the first failure
// into a ValidationError keyed by wire path.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errors.NewValidationError("", err.Error())
	}
	root := reflect.Indirect(reflect.ValueOf(v)).Type().Name() + "."
	fe := fieldErrors[0]
	return errors.NewValidationError(strings.TrimPrefix(fe.Namespace(), root), reason(fe))
}

func reason(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "e164":
		return "must be a phone number in E.164 format"
	case "uri":
		return "must be a valid URI"
	case "unique":
		return "must not contain duplicates"
	case "utciso8601":
		return "must be an ISO-8601 timestamp in UTC"
	case "eq":
		return fmt.Sprintf("must equal %s", param)
	case "enum":
		if e, ok := fe.Value().(enumerated); ok {
			return oneOf(e.allowed())
		}
		return "is not an allowed value"
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s", lowerFirst(param))
	case "gt":
		return fmt.Sprintf("must be greater than %s", param)
	case "gte", "min":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("must contain at least %s items", param)
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", param)
		}
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "lte", "max":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("must contain at most %s items", param)
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", param)
		}
		return fmt.Sprintf("must be less than or equal to %s", param)
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
