package httpserver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	v *validator.Validate
}

// NewValidator reports fields by their json names.
func NewValidator() echo.Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &requestValidator{v: v}
}

func (rv *requestValidator) Validate(i any) error {
	return rv.v.Struct(i)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid body"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		default:
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), strings.TrimSpace(fe.Tag()+" "+fe.Param())))
		}
	}
	return strings.Join(parts, "; ")
}

// bindAndValidate decodes the body into req and checks its validate tags.
// The returned string is safe to show to the client.
func bindAndValidate(c echo.Context, req any) (string, error) {
	if err := c.Bind(req); err != nil {
		return "invalid body", err
	}
	if err := c.Validate(req); err != nil {
		return validationMessage(err), err
	}
	return "", nil
}
