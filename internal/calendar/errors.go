package calendar

import "errors"

var (
	// ErrValidation marks a mutation that arrived without any
	// disambiguating criteria.
	ErrValidation = errors.New("either event_name or event_date must be provided")

	// ErrNotFound marks a resolution that matched zero events.
	ErrNotFound = errors.New("no matching event found")

	// ErrBackend marks a failed or malformed calendar backend call.
	ErrBackend = errors.New("calendar backend call failed")

	// ErrFormat marks an input date string that failed ISO-8601 parsing.
	ErrFormat = errors.New("invalid date format")
)
