package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod     = errors.New("period length must be a positive finite number of days")
	ErrInvalidVariance   = errors.New("variance must be in [0, 1)")
	ErrSnapshotsDisabled = errors.New("report snapshots are not enabled")
	ErrUnknownPreset     = errors.New("unknown date preset")
)

// ReportError carries the API error code alongside the failure.
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsValidationError reports whether err was caused by bad input rather than a failing dependency.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidVariance) ||
		errors.Is(err, ErrUnknownPreset)
}
