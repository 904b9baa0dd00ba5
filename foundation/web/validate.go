package web

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// ValidateStruct checks that the named fields of v are present and not
// empty, then runs the validate tags v carries. v must be a pointer to a
// struct. Field names are the Go field names; messages use the json names.
func ValidateStruct(v interface{}, requiredFields ...string) error {
	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return NewRequestError(errors.New("validating nil request"), http.StatusInternalServerError)
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return NewRequestError(errors.Errorf("validating %T: not a struct", v), http.StatusInternalServerError)
	}

	fields := map[string]string{}

	for _, name := range requiredFields {
		structField, ok := value.Type().FieldByName(name)
		if !ok {
			continue
		}

		field := value.FieldByName(name)
		if isEmpty(field) {
			fields[jsonName(structField)] = "field is required"
		}
	}

	if err := validate.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				structField, ok := value.Type().FieldByName(fieldErr.StructField())
				name := fieldErr.StructField()
				if ok {
					name = jsonName(structField)
				}
				fields[name] = fmt.Sprintf("field is not valid: %s", fieldErr.Tag())
			}
		} else {
			return NewRequestError(errors.Wrap(err, "validating request"), http.StatusBadRequest)
		}
	}

	if len(fields) > 0 {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}

		return &Error{
			Err:    errors.Errorf("invalid fields: %s", strings.Join(names, ", ")),
			Status: http.StatusBadRequest,
			Fields: fields,
		}
	}

	return nil
}

func isEmpty(field reflect.Value) bool {
	if !field.IsValid() {
		return true
	}

	switch field.Kind() {
	case reflect.Ptr, reflect.Interface:
		if field.IsNil() {
			return true
		}
		return isEmpty(field.Elem())
	case reflect.String:
		return strings.TrimSpace(field.String()) == ""
	case reflect.Slice, reflect.Map:
		return field.Len() == 0
	default:
		// Zero is a legal value for numeric fields like an id of 0 being
		// unset, which is exactly what required means here.
		return field.IsZero()
	}
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}

	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return field.Name
	}

	return tag
}
