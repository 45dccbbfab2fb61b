package execute

import "errors"

var (
	ErrUnknownResource  = errors.New("resource is not supported")
	ErrUnknownOperation = errors.New("operation is not supported")
)
