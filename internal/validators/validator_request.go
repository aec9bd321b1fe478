package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator enforces the `validate` tags of request models.
// A single instance is safe for concurrent use; validator caches the parsed
// struct metadata.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [Validator] whose error messages refer to
// fields by their JSON names.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// Validate checks obj against its `validate` tags. When fields are given,
// only those struct fields are checked.
//
// Returns ErrUnsupportedType for non-struct values, ErrUnknownField for a
// field scope naming a missing field and an error wrapping
// ErrInvalidRequest listing every violated rule otherwise.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if !isStruct(obj) {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		if !hasFields(obj, fields) {
			return ErrUnknownField
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		problems = append(problems, describe(fieldErr))
	}

	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(problems, "; "))
}

// describe renders one violated rule, e.g. "username must be at least 3 characters long".
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q rule", fe.Field(), fe.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func isStruct(obj any) bool {
	t := reflect.TypeOf(obj)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(obj).IsNil() {
			return false
		}
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

func hasFields(obj any, fields []string) bool {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return false
		}
	}

	return true
}
