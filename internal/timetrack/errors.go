package timetrack

import "errors"

var (
	ErrUnconfigured = errors.New("time-tracking API key not set")
	ErrInvalidDate  = errors.New("date must be formatted as YYYY-MM-DD")
	ErrRemote       = errors.New("time-tracking remote request failed")
)
