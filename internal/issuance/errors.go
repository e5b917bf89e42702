package issuance

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation          = errors.New("name and event are required")
	ErrEventNotFound       = errors.New("event not found")
	ErrEventInactive       = errors.New("event is no longer active")
	ErrEventExpired        = errors.New("claim period has ended")
	ErrUnauthorized        = errors.New("name is not registered for this event")
	ErrTemplateUnavailable = errors.New("certificate template unavailable")
	ErrRender              = errors.New("failed to render certificate")
	ErrStorage             = errors.New("certificate storage failure")
)

// ExpiredError carries the deadline that was missed.
type ExpiredError struct {
	Deadline time.Time
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("%s on %s", ErrEventExpired.Error(), e.Deadline.Format(time.RFC3339))
}

func (e *ExpiredError) Is(target error) bool {
	return target == ErrEventExpired
}

// IssuanceFailedError is returned for any failure after the certificate
// record was reserved. The reservation has already been removed by the time
// the caller sees it.
type IssuanceFailedError struct {
	Stage         string
	CertificateID uint
	Err           error
}

func (e *IssuanceFailedError) Error() string {
	return fmt.Sprintf("issuance failed at %s: %v", e.Stage, e.Err)
}

func (e *IssuanceFailedError) Unwrap() error {
	return e.Err
}
