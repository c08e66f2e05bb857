package property

import "errors"

var (
	ErrUnknownProperty   = errors.New("unknown property")
	ErrAlreadyRegistered = errors.New("driver already registered")
	ErrNoDriver          = errors.New("no driver registered")
)
