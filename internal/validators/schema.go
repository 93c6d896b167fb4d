// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-ad-board/models"
	"github.com/go-playground/validator/v10"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 99
)

// SchemaValidator checks request bodies against the `validate` tags of
// their schema types.
type SchemaValidator struct {
	v *validator.Validate
}

// NewSchemaValidator builds a SchemaValidator with the custom rules
// `person_name` and `password_policy` registered.
func NewSchemaValidator() *SchemaValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return IsPersonName(fl.Field().String())
	})
	_ = v.RegisterValidation("password_policy", func(fl validator.FieldLevel) bool {
		return IsAcceptablePassword(fl.Field().String())
	})

	return &SchemaValidator{v: v}
}

// Validate dispatches obj to its schema. Both values and pointers of the
// schema types are accepted.
func (s *SchemaValidator) Validate(ctx context.Context, obj any) error {
	switch o := obj.(type) {
	case models.UserCreate:
		return s.validateStruct(ctx, o)
	case *models.UserCreate:
		if o == nil {
			return ErrUnsupportedType
		}
		return s.validateStruct(ctx, *o)
	case models.UserPatch:
		return s.validatePatch(ctx, o, len(o.Fields()))
	case *models.UserPatch:
		if o == nil {
			return ErrUnsupportedType
		}
		return s.validatePatch(ctx, *o, len(o.Fields()))
	case models.AdvertisementCreate:
		return s.validateStruct(ctx, o)
	case *models.AdvertisementCreate:
		if o == nil {
			return ErrUnsupportedType
		}
		return s.validateStruct(ctx, *o)
	case models.AdvertisementPatch:
		return s.validatePatch(ctx, o, len(o.Fields()))
	case *models.AdvertisementPatch:
		if o == nil {
			return ErrUnsupportedType
		}
		return s.validatePatch(ctx, *o, len(o.Fields()))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (s *SchemaValidator) validatePatch(ctx context.Context, obj any, present int) error {
	if err := s.validateStruct(ctx, obj); err != nil {
		return err
	}
	if present == 0 {
		return ErrNothingToUpdate
	}
	return nil
}

func (s *SchemaValidator) validateStruct(ctx context.Context, obj any) error {
	err := s.v.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "person_name":
		return "Name should contain only letters"
	case "password_policy":
		return "Too easy password"
	case "email":
		return "value is not a valid email address"
	case "min", "max":
		return "Incorrect length of " + fe.Field()
	default:
		return "invalid value"
	}
}

// IsPersonName reports whether name is non-empty and made of Unicode
// letters only.
func IsPersonName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAcceptablePassword reports whether password satisfies the password
// policy: 8 to 99 characters, at least one digit, not only digits, and no
// "password" substring in any letter case.
func IsAcceptablePassword(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < passwordMinLen || n > passwordMaxLen {
		return false
	}

	hasDigit, onlyDigits := false, true
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasDigit = true
		} else {
			onlyDigits = false
		}
	}
	if !hasDigit || onlyDigits {
		return false
	}

	return !strings.Contains(strings.ToLower(password), "password")
}
