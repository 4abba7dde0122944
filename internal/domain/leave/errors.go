package leave

import "errors"

var (
	ErrValidation        = errors.New("invalid leave request")
	ErrNotFound          = errors.New("leave request not found")
	ErrOverlap           = errors.New("leave request overlaps an approved leave")
	ErrInvalidTransition = errors.New("leave request already decided")
)
