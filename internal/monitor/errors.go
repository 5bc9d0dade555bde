package monitor

import "errors"

var (
	// ErrInvalidCapacity is returned when a buffer is asked to hold fewer than one sample
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidInterval is returned for non-positive refresh intervals
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrInvalidArgument is returned for arguments outside a function's domain
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when a lookup is past the end of the buffer,
	// usually because a UI handle outlived a resize
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrProviderUnavailable wraps any failure of the value provider
	ErrProviderUnavailable = errors.New("provider unavailable")
)
