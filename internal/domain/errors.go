package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrPaymentNotFound     = errors.New("payment not found")
)

var (
	ErrAlreadyBooked      = errors.New("user already has an active booking for this event")
	ErrUnknownCorrelation = errors.New("unknown correlation id")
)

// Eligibility denials. These are normal negative results with a
// specific blocking condition, not failures.
var (
	ErrNotBooked             = errors.New("no confirmed booking for this event")
	ErrNotPaid               = errors.New("payment not completed")
	ErrNotEligibleAttendance = errors.New("attendance not verified and certificate override not set")
)

var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrTransient     = errors.New("transient error")
	ErrEmailTaken    = errors.New("email is already registered")
)

// GatewayError is an explicit rejection from the payment provider. The
// description is the provider's, verbatim. It is not retriable with the
// same parameters, unlike ErrTransient.
type GatewayError struct {
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway rejected request (code %s): %s", e.Code, e.Description)
}

// DenialReason maps an eligibility denial to its wire reason code.
// Returns "" for anything that is not a denial.
func DenialReason(err error) string {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, ErrNotBooked):
		return "not_booked"
	case errors.Is(err, ErrNotPaid):
		return "not_paid"
	case errors.Is(err, ErrNotEligibleAttendance):
		return "not_eligible_attendance"
	default:
		return ""
	}
}
