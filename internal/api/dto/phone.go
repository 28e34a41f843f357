package dto

import (
	"errors"
	"fmt"
	"strings"
)

// ErrWrongNumber reports a structurally valid number on a disallowed operator
// prefix. It maps to 422 rather than the generic validation 400.
var ErrWrongNumber = errors.New("invalid phone number prefix")

// noSMSSentinel is hardcoded on the frontend side and means "no number".
const noSMSSentinel = "nosms"

// Ukrainian mobile operator prefixes the notification gateway can deliver to.
var allowedPhonePrefixes = map[string]struct{}{
	"38039": {}, "38067": {}, "38068": {}, "38096": {}, "38097": {}, "38098": {},
	"38050": {}, "38066": {}, "38095": {}, "38099": {}, "38063": {}, "38093": {},
	"38073": {}, "38091": {}, "38092": {}, "38094": {},
}

// ValidatePhoneUkr validates a Ukrainian phone number: 12 digits on an
// allowed operator prefix. The nosms sentinel validates to the empty string.
func ValidatePhoneUkr(phoneNumber string) (string, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)

	if phoneNumber == noSMSSentinel {
		return "", nil
	}

	if len(phoneNumber) != 12 {
		return "", validationErrorf("phone number expected length is 12, got %d", len(phoneNumber))
	}
	for _, c := range phoneNumber {
		if c < '0' || c > '9' {
			return "", validationErrorf("phone number chars expected to be numbers")
		}
	}

	if _, ok := allowedPhonePrefixes[phoneNumber[:5]]; !ok {
		return "", fmt.Errorf("%w: %s", ErrWrongNumber, phoneNumber[:5])
	}

	return phoneNumber, nil
}
