package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

// FieldError is one entry of a 400 response's "details".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func init() {
	// Report fields by their JSON names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		// Validate the value inside a nullable patch field. Null is empty,
		// so omitempty skips it.
		v.RegisterCustomTypeFunc(nullableValue, models.Nullable[string]{}, models.Nullable[int64]{})
	}
}

func nullableValue(f reflect.Value) any {
	switch n := f.Interface().(type) {
	case models.Nullable[string]:
		return n.SQLValue()
	case models.Nullable[int64]:
		return n.SQLValue()
	}
	return nil
}

// validationDetails turns a binding error into field-level messages.
func validationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldError{{Field: typeErr.Field, Message: "must be a " + typeErr.Type.String()}}
	}

	if errors.Is(err, io.EOF) {
		return []FieldError{{Field: "body", Message: "request body is empty"}}
	}
	return []FieldError{{Field: "body", Message: "request body is not valid JSON"}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be " + fe.Param() + " or more"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
