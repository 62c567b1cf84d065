package reader

import "errors"

// ErrInvalidCredentials deliberately covers both unknown email and wrong
// password so login failures do not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")
