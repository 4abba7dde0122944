package employee

import "errors"

var (
	ErrNotFound            = errors.New("employee not found")
	ErrMissingCompensation = errors.New("employee has no base salary configured")
)
