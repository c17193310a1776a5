package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/terraincognita07/mesflow/internal/models"
)

const DateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	instance := validator.New()
	instance.RegisterTagNameFunc(formFieldName)
	_ = instance.RegisterValidation("isodate", isoDate)
	_ = instance.RegisterValidation("notblank", notBlank)
	_ = instance.RegisterValidation("orderstatus", memberOf(models.OrderStatuses))
	_ = instance.RegisterValidation("workorderstatus", memberOf(models.WorkOrderStatuses))
	_ = instance.RegisterValidation("role", memberOf(models.Roles))
	return instance
}

// formFieldName reports fields by their form key so errors match the
// submitted input names.
func formFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func memberOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return lo.Contains(allowed, strings.TrimSpace(fl.Field().String()))
	}
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateStruct runs the struct tags and converts the first failure into a
// ValidationError.
func validateStruct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	first := fieldErrors[0]
	return &ValidationError{
		Field:   first.Field(),
		Message: describeValidationTag(first),
	}
}

func describeValidationTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return "must be at least " + fieldError.Param()
	case "max", "lte":
		return "must be at most " + fieldError.Param()
	case "oneof":
		return "must be one of " + fieldError.Param()
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "orderstatus", "workorderstatus", "role":
		return "is not a known value"
	default:
		return "is invalid"
	}
}

func parseDate(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

// DateAtLocation truncates value to the calendar day it falls on in location,
// expressed as UTC midnight so it compares with stored dates.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	local := value.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
