package genre

import "errors"

var (
	ErrParentNotFound = errors.New("parent genre does not exist")
	ErrSelfParent     = errors.New("genre cannot be its own parent")
)
