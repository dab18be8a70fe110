package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// AvailabilityOptions are the resolved inputs of the availability command.
type AvailabilityOptions struct {
	CalendarID string `flag:"calendar" validate:"required"`
	Date       string `flag:"date" validate:"required,datetime=2006-01-02"`
	Duration   int    `flag:"duration" validate:"min=0"`
	StartHour  int    `flag:"start-hour" validate:"min=0,max=23"`
	EndHour    int    `flag:"end-hour" validate:"min=0,max=23"`
	Timezone   string `flag:"tz" validate:"required,iana_tz"`
}

// VenueTypes lists the venue types the venues command accepts.
var VenueTypes = []string{"coffee", "cafe", "lunch", "dinner", "restaurant"}

// VenueOptions are the resolved inputs of the venues command.
type VenueOptions struct {
	Location  string  `flag:"location" validate:"required"`
	Type      string  `flag:"type" validate:"required,oneof=coffee cafe lunch dinner restaurant"`
	MinRating float64 `flag:"min-rating" validate:"min=0,max=5"`
	Limit     int     `flag:"limit" validate:"min=0"`
}

var validate = mustNewValidator()

func mustNewValidator() *validator.Validate {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	return v
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return name
		}
		return fld.Name
	})
	if err := v.RegisterValidation("iana_tz", validTimezone); err != nil {
		return nil, fmt.Errorf("failed to register iana_tz validation: %w", err)
	}
	return v, nil
}

func validTimezone(fl validator.FieldLevel) bool {
	_, err := time.LoadLocation(fl.Field().String())
	return err == nil
}

// Validate checks options against their validate tags and reports the
// offending flags.
func Validate(opts any) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	flag := "--" + fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", flag)
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD form, got %q", flag, fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", flag, fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got %v", flag, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", flag, strings.ReplaceAll(fe.Param(), " ", "|"), fe.Value())
	case "iana_tz":
		return fmt.Sprintf("%s must be an IANA time zone name, got %q", flag, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", flag, fe.Tag())
	}
}
