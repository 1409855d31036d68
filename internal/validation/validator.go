// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

// Package validation provides struct validation using
// go-playground/validator v10 through a thread-safe singleton, with
// custom validators for the provider datetime contract and the filter
// engine's date and price buckets.
//
//	type EventsRequest struct {
//	    StartDateTime string `validate:"omitempty,providerdatetime"`
//	    Date          string `validate:"omitempty,datebucket"`
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/models"
	"github.com/minhlu99/local-event-aggregator-discovery-sub000/internal/provider"
)

var (
	singleton *validator.Validate
	initOnce  sync.Once
)

// FieldFailure is a single field validation failure.
type FieldFailure struct {
	Field   string
	Tag     string
	Param   string
	Value   interface{}
	Message string
}

// RequestValidationError collects the field failures of one request.
type RequestValidationError struct {
	Failures []FieldFailure
}

// Error implements the error interface.
func (ve *RequestValidationError) Error() string {
	if len(ve.Failures) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve.Failures))
	for i, f := range ve.Failures {
		parts[i] = f.Message
	}
	return strings.Join(parts, "; ")
}

// ToAPIError converts the failures into the API error envelope. A single
// datetime-contract failure keeps its distinct code so clients can show
// the format hint.
func (ve *RequestValidationError) ToAPIError() *models.APIError {
	switch len(ve.Failures) {
	case 0:
		return &models.APIError{Code: models.CodeValidationError, Message: "Validation failed"}

	case 1:
		f := ve.Failures[0]
		code := models.CodeValidationError
		if f.Tag == "providerdatetime" {
			code = models.CodeInvalidDateFormat
		}
		return &models.APIError{
			Code:    code,
			Message: f.Message,
			Details: map[string]interface{}{"field": f.Field, "tag": f.Tag, "value": f.Value},
		}

	default:
		details := make([]map[string]interface{}, len(ve.Failures))
		parts := make([]string, len(ve.Failures))
		for i, f := range ve.Failures {
			details[i] = map[string]interface{}{"field": f.Field, "tag": f.Tag, "message": f.Message}
			parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
		}
		return &models.APIError{
			Code:    models.CodeValidationError,
			Message: strings.Join(parts, "; "),
			Details: map[string]interface{}{"fields": details},
		}
	}
}

// GetValidator returns the singleton validator, initialized once with the
// custom validators registered.
func GetValidator() *validator.Validate {
	initOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation("providerdatetime", func(fl validator.FieldLevel) bool {
			return provider.ValidDateTimeParam(fl.Field().String())
		})
		_ = v.RegisterValidation("datebucket", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case models.DateBucketToday, models.DateBucketThisWeek, models.DateBucketThisMonth,
				models.DateBucketUpcoming, models.DateBucketAll, "":
				return true
			}
			return false
		})
		_ = v.RegisterValidation("pricebucket", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case models.PriceBucketFree, models.PriceBucketPaid, models.PriceBucketAll, "":
				return true
			}
			return false
		})

		singleton = v
	})
	return singleton
}

// ValidateStruct validates s with the singleton validator. Returns nil on
// success.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{Failures: []FieldFailure{
			{Field: "unknown", Tag: "unknown", Message: err.Error()},
		}}
	}

	failures := make([]FieldFailure, len(fieldErrs))
	for i, fe := range fieldErrs {
		failures[i] = FieldFailure{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: describeFailure(fe),
		}
	}
	return &RequestValidationError{Failures: failures}
}

// messageFormats maps validation tags to message formats. Formats listed
// with a second verb consume the tag parameter.
var messageFormats = map[string]string{
	"required":         "%s is required",
	"providerdatetime": "%s must match YYYY-MM-DDTHH:mm:ssZ (e.g. " + provider.DateTimeExample + ")",
	"datebucket":       "%s must be one of: today, this-week, this-month, upcoming, all",
	"pricebucket":      "%s must be one of: free, paid, all",
	"latitude":         "%s must be a valid latitude (-90 to 90)",
	"longitude":        "%s must be a valid longitude (-180 to 180)",
	"oneof":            "%s must be one of: %s",
	"min":              "%s must be at least %s",
	"max":              "%s must be at most %s",
	"gte":              "%s must be greater than or equal to %s",
	"lte":              "%s must be less than or equal to %s",
}

func describeFailure(fe validator.FieldError) string {
	format, ok := messageFormats[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
	if strings.Count(format, "%s") == 2 {
		return fmt.Sprintf(format, fe.Field(), fe.Param())
	}
	return fmt.Sprintf(format, fe.Field())
}
