package digest

import "errors"

var (
	ErrUnknownTab = errors.New("unknown focus tab")
)
