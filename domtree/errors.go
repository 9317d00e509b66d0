package domtree

import "errors"

// ErrTooManyClasses is returned by SetClasses when given more than
// MaxClasses atoms.
var ErrTooManyClasses = errors.New("domtree: more than 255 classes on one node")
