// Package validation holds the identifier and colour rules shared by request
// binding and the services, and turns binding failures into field messages.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MinIdentifierLength = 1
	MaxIdentifierLength = 200
)

var (
	identifierPattern = regexp.MustCompile(`^\w+$`)
	colourPattern     = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	registerOnce sync.Once
)

// IsIdentifier reports whether id is a valid user-assigned identifier
func IsIdentifier(id string) bool {
	return len(id) >= MinIdentifierLength &&
		len(id) <= MaxIdentifierLength &&
		identifierPattern.MatchString(id)
}

// IsColour reports whether value is an RGB hex triple such as "#FFD200"
func IsColour(value string) bool {
	return colourPattern.MatchString(value)
}

// Register installs the custom tags on gin's validator and makes error
// messages use JSON field names. Safe to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding validator is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)

		if err = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return IsIdentifier(fl.Field().String())
		}); err != nil {
			return
		}

		// Empty colours are normalised to null by the services
		err = v.RegisterValidation("rgbcolour", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || IsColour(value)
		})
	})
	return err
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// FieldErrors translates an error from gin's ShouldBind* into field -> message
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var validationErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &validationErrs):
		for _, fe := range validationErrs {
			fields[fe.Field()] = message(fe)
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		fields[field] = fmt.Sprintf("must be of type %s", typeErr.Type.String())
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		fields["body"] = "malformed JSON"
	case errors.Is(err, io.EOF):
		fields["body"] = "request body is required"
	default:
		// time.ParseError, decimal parse failures and similar come through here
		fields["body"] = err.Error()
	}

	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "identifier":
		return fmt.Sprintf("must match ^\\w+$ and be %d-%d characters long", MinIdentifierLength, MaxIdentifierLength)
	case "rgbcolour":
		return "must be a colour in the form #RRGGBB"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
