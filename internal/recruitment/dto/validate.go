package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/gohire/recruitment-service/internal/errors"
	"github.com/go-playground/validator/v10"
)

var personNumberPattern = regexp.MustCompile(`^\d{8}-\d{4}$`)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("personnumber", func(fl validator.FieldLevel) bool {
		return personNumberPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	return v
}

// Validate checks the struct's validate tags and reports every failing field
// as an *errors.ValidationError.
func Validate(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &apperrors.ValidationError{Fields: []apperrors.FieldError{{Message: err.Error()}}}
	}

	out := &apperrors.ValidationError{Fields: make([]apperrors.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Invalid %s: %s can not be empty.", field, field)
	case "max":
		return fmt.Sprintf("Invalid %s: %s must be 1-%s characters long.", field, field, fe.Param())
	case "min":
		return fmt.Sprintf("Invalid %s: %s must be at least %s.", field, field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Invalid %s: %s must be one of '%s'.", field, field, strings.ReplaceAll(fe.Param(), " ", "', '"))
	case "email":
		return fmt.Sprintf("Invalid %s: %s is not a valid email address.", field, field)
	case "bcryptmax":
		return fmt.Sprintf("Invalid %s: %s must be at most %d bytes long.", field, field, MaxPasswordBytes)
	case "personnumber":
		return fmt.Sprintf("Invalid %s: %s must have the form YYYYMMDD-XXXX.", field, field)
	}
	return fmt.Sprintf("Invalid %s: failed %s validation.", field, fe.Tag())
}
