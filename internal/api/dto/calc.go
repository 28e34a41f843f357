// Package dto defines the JSON shapes exchanged with the frontend and their
// field-by-field validation.
package dto

import (
	"errors"
	"fmt"
	"strings"

	"route-cost-service/internal/domain"
)

// ValidationError marks bad input as a caller fault so handlers can map it to
// a 400 without inspecting the message.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

var allowedIntents = map[string]struct{}{
	"calc":     {},
	"callback": {},
	"acquire":  {},
}

// PlaceDTO is one endpoint of the requested trip as the frontend sends it.
type PlaceDTO struct {
	NameShort   string  `json:"name_short"`
	NameLong    string  `json:"name_long"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	CountryCode string  `json:"countrycode"`
}

// CalcRequest is the calculate-endpoint envelope. PhoneNumber is a pointer so
// "absent" and "empty string" validate differently.
type CalcRequest struct {
	Intent      string   `json:"intent"`
	From        PlaceDTO `json:"from"`
	To          PlaceDTO `json:"to"`
	TransportID int      `json:"transport_id"`
	PhoneNumber *string  `json:"phone_number"`
	Locale      string   `json:"locale"`
	URL         string   `json:"url"`
}

// Validate checks every field and returns the normalized phone number, empty
// when the caller declined to leave one.
func (r *CalcRequest) Validate() (phone string, err error) {
	intent := strings.TrimSpace(r.Intent)
	if _, ok := allowedIntents[intent]; !ok {
		return "", validationErrorf("unexpected intent, got: %q", r.Intent)
	}

	if err := r.From.validate("from"); err != nil {
		return "", err
	}
	if err := r.To.validate("to"); err != nil {
		return "", err
	}

	if r.PhoneNumber != nil {
		phone, err = ValidatePhoneUkr(*r.PhoneNumber)
		if err != nil {
			return "", err
		}
	}

	return phone, nil
}

func (p *PlaceDTO) validate(side string) error {
	if p.NameShort == "" {
		return validationErrorf("place %s name_short could not be empty", side)
	}
	if p.NameLong == "" {
		return validationErrorf("place %s name_long could not be empty", side)
	}
	return nil
}

// Place converts the validated DTO to its domain value.
func (p *PlaceDTO) Place() domain.Place {
	return domain.NewPlace(p.Lat, p.Lng, p.NameShort, p.NameLong, p.CountryCode)
}

// SampleRequest records an operator price correction for a past calculation.
type SampleRequest struct {
	CalculationID string  `json:"calculation_id"`
	Price         float64 `json:"price"`
}

func (r *SampleRequest) Validate() error {
	if strings.TrimSpace(r.CalculationID) == "" {
		return validationErrorf("calculation_id could not be empty")
	}
	if r.Price <= 0 {
		return validationErrorf("price must be positive, got %v", r.Price)
	}
	return nil
}

// Envelope is the standardized response body every endpoint returns.
type Envelope struct {
	Status   string `json:"status"`
	Details  string `json:"details"`
	Workload any    `json:"workload"`
}

// AsValidationError reports whether err is caller-fault input validation.
func AsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
