package weather

import (
	"errors"
	"fmt"
)

// LookupFailedMessage is the only failure text shown to end users.
const LookupFailedMessage = "Could not fetch weather data. Please check the city name."

// ErrQuotaExceeded is wrapped by a ProviderUnavailableError when the provider
// call budget for the current window has been spent.
var ErrQuotaExceeded = errors.New("provider call quota exceeded")

// MissingFieldError reports a required field absent from a provider response.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q in provider response", e.Field)
}

// MalformedFieldError reports a field that is present but has an unusable value.
type MalformedFieldError struct {
	Field  string
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %q in provider response: %s", e.Field, e.Reason)
}

// ProviderUnavailableError covers transport failures and non-2xx responses.
// StatusCode is zero when no response was received.
type ProviderUnavailableError struct {
	StatusCode int
	Err        error
}

func (e *ProviderUnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("weather provider unavailable: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("weather provider unavailable: %v", e.Err)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Err
}

// ProviderTimeoutError reports a provider call that ran past its deadline.
type ProviderTimeoutError struct {
	Err error
}

func (e *ProviderTimeoutError) Error() string {
	return fmt.Sprintf("weather provider timed out: %v", e.Err)
}

func (e *ProviderTimeoutError) Unwrap() error {
	return e.Err
}

// IsLookupFailure reports whether err is one of the per-lookup error kinds.
func IsLookupFailure(err error) bool {
	var (
		missing     *MissingFieldError
		malformed   *MalformedFieldError
		unavailable *ProviderUnavailableError
		timeout     *ProviderTimeoutError
	)
	return errors.As(err, &missing) ||
		errors.As(err, &malformed) ||
		errors.As(err, &unavailable) ||
		errors.As(err, &timeout)
}

// IsTimeout reports whether err is a ProviderTimeoutError.
func IsTimeout(err error) bool {
	var timeout *ProviderTimeoutError
	return errors.As(err, &timeout)
}
