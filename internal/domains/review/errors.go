package review

import "errors"

// ErrNotOwner rejects mutations of another reader's review.
var ErrNotOwner = errors.New("review belongs to another reader")
