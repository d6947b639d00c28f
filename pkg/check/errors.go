package check

import "errors"

// ErrCheckFailed is wrapped by errors returned from a check callback.
var ErrCheckFailed = errors.New("check failed")
