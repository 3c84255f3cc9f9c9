package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/oszuidwest/zwfm-pagegen/internal/types"
	"github.com/oszuidwest/zwfm-pagegen/internal/util"
)

// validate is the shared validator instance for configuration structs.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in error messages instead of struct field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation("version", func(fl validator.FieldLevel) bool {
		return IsValidVersion(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// validate checks all configuration fields for correctness.
func (c *Config) validate() error {
	verr := types.NewValidationError()

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, e := range validationErrors {
				verr.Add(fieldPath(e), formatValidationMessage(e), e.Value())
			}
		} else {
			verr.Add("", err.Error(), nil)
		}
	}

	if c.Log.Path != "" {
		if err := util.ValidatePath("log.path", c.Log.Path); err != nil {
			verr.Add("log.path", strings.TrimPrefix(err.Error(), "log.path: "), c.Log.Path)
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// fieldPath returns the dotted JSON path of a failed field without the root struct name.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// formatValidationMessage creates a human-readable message from a validator error.
func formatValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_with":
		return fmt.Sprintf("is required when %s is set", strings.ToLower(e.Param()))
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "url":
		return "must be a valid URL"
	case "version":
		return "must be a semantic version (e.g. 1.4.0)"
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}
