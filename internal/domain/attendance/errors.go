package attendance

import "errors"

var (
	ErrNotFound  = errors.New("attendance record not found")
	ErrDuplicate = errors.New("attendance record already exists for this date")
)
