package payroll

import "errors"

var (
	ErrInvalidAmount = errors.New("income must not be negative")
	ErrInvalidPeriod = errors.New("invalid pay period")
)
