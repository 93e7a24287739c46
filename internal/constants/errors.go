package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrNoKeyProvided    = errors.New("no access key provided")
	ErrKeyNotFound      = errors.New("access key not found in configuration")
)

// Command errors.
var (
	ErrInvalidParam       = errors.New("invalid parameter, expected key=value")
	ErrUnsupportedOutput  = errors.New("unsupported output format")
	ErrInvalidIntegerFlag = errors.New("invalid integer value")
	ErrInvalidDuration    = errors.New("invalid duration")
)
