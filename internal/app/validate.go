package app

import (
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Field-shape rules. Tag order is message order; rules that need
// collaborators (username uniqueness, sanitize-then-empty) run in the
// services after the shape pass and append their messages last.
type registerInput struct {
	Username string `validate:"required,min=3,max=10,alphanum"`
	Password string `validate:"required,min=7,max=70,maxbytes=72"`
}

type postInput struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func shapeValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// min and max count runes; bcrypt hashes at most 72 bytes of
		// plaintext, so a multibyte password inside the rune bound can
		// still be too long to hash.
		_ = validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return len(fl.Field().String()) <= n
		})
	})
	return validate
}

// fieldViolations runs every rule to completion and returns one
// human-readable message per violation, in struct declaration order.
// An empty slice means the input is valid.
func fieldViolations(s any) []string {
	err := shapeValidator().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid input"}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, strings.ToLower(e.Field())+" "+violationMessage(e))
	}
	return out
}

func violationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "maxbytes":
		return "must be at most " + e.Param() + " bytes"
	case "alphanum":
		return "may only contain letters and numbers"
	default:
		return "is invalid"
	}
}
