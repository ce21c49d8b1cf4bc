package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork: the backend never produced a response.
	ErrNetwork = errors.New("network failure")
	// ErrRejected: the backend returned a structured failure.
	ErrRejected = errors.New("rejected")
	// ErrMalformed: a response arrived but expected fields were missing.
	ErrMalformed = errors.New("malformed response")
	// ErrUnauthenticated: an authorized operation was attempted without
	// a valid session token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound: the requested record does not exist.
	ErrNotFound = errors.New("not found")
)

// RejectedError carries the backend-supplied reason for a non-success
// response. errors.Is(err, ErrRejected) matches it.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("rejected with status %d", e.Status)
	}
	return fmt.Sprintf("rejected with status %d: %s", e.Status, e.Message)
}

func (e *RejectedError) Unwrap() error { return ErrRejected }

// PaymentError reports a failed payment-intent call for a booking that
// was already created. BookingID lets the caller tell the user which
// reservation is held without payment.
type PaymentError struct {
	BookingID string
	Err       error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment intent for booking %q: %v", e.BookingID, e.Err)
}

func (e *PaymentError) Unwrap() error { return e.Err }
