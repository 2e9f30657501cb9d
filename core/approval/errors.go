package approval

import "errors"

var (
	ErrInstanceIDEmptyParam = errors.New("instance id is required")
	ErrActorEmptyParam      = errors.New("actor is required")
	ErrInstanceNotFound     = errors.New("approval instance not found")
	ErrInvalidAction        = errors.New("invalid action")
)
