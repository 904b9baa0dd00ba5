package web

import (
	"context"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the request scoped context.Context together with the
// helpers handlers need for binding, validation and responding.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrors []error
	queryErrors []error
}

// BindFunc binds the request body into v and validates the named required
// fields plus any validate tags v carries.
func (c *Context) BindFunc(v interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(v); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	return ValidateStruct(v, requiredFields...)
}

// GetParam reads a path parameter converted to the given kind. Conversion
// failures are collected and reported by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		number, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrors = append(c.paramErrors, errors.Errorf("parsing param %q: %q is not an int", name, value))
			return 0
		}
		return number
	case reflect.String:
		return value
	default:
		c.paramErrors = append(c.paramErrors, errors.Errorf("unsupported param kind for %q", name))
		return nil
	}
}

// GetQueryFunc reads an optional query parameter converted to the given
// kind. It returns a typed pointer or nil when the parameter is absent.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return nil
	}

	switch kind {
	case reflect.Int:
		number, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrors = append(c.queryErrors, errors.Errorf("parsing query %q: %q is not an int", name, value))
			return nil
		}
		return &number
	case reflect.String:
		return &value
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrors = append(c.queryErrors, errors.Errorf("parsing query %q: %q is not a bool", name, value))
			return nil
		}
		return &b
	default:
		c.queryErrors = append(c.queryErrors, errors.Errorf("unsupported query kind for %q", name))
		return nil
	}
}

// ValidParam reports any conversion errors collected by GetParam.
func (c *Context) ValidParam() error {
	if len(c.paramErrors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(c.paramErrors))
	for _, err := range c.paramErrors {
		messages = append(messages, err.Error())
	}

	return NewRequestError(errors.New(strings.Join(messages, "; ")), http.StatusBadRequest)
}

// ValidQuery reports any conversion errors collected by GetQueryFunc.
func (c *Context) ValidQuery() error {
	if len(c.queryErrors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(c.queryErrors))
	for _, err := range c.queryErrors {
		messages = append(messages, err.Error())
	}

	return NewRequestError(errors.New(strings.Join(messages, "; ")), http.StatusBadRequest)
}

// Respond sends data back to the client with the given HTTP status.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError sends an error response to the client. Request errors keep
// their status and message; anything else responds 500 and is returned so
// the app can log it.
func (c *Context) RespondError(err error) error {
	if err == nil {
		return nil
	}

	if requestErr, ok := IsRequestError(err); ok {
		body := gin.H{
			"status":  false,
			"message": requestErr.Err.Error(),
		}
		if len(requestErr.Fields) > 0 {
			body["fields"] = requestErr.Fields
		}

		c.JSON(requestErr.Status, body)

		return nil
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  false,
		"message": "internal server error",
	})

	return err
}
