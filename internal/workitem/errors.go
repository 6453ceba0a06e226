package workitem

import "errors"

var (
	ErrUnconfigured     = errors.New("work-item client is not configured")
	ErrNoWorkspaces     = errors.New("no workspace available for the current credential")
	ErrEmptyWorkspaceID = errors.New("workspace id is empty")
	ErrZeroCutoff       = errors.New("cutoff instant is zero")
	ErrRemote           = errors.New("work-item remote request failed")
)
