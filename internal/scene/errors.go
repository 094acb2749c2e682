package scene

import "errors"

var (
	ErrUnknownObject = errors.New("unknown object")
	ErrUnknownOp     = errors.New("unknown operation")
	ErrUnknownEasing = errors.New("unknown easing")
	ErrUnknownScene  = errors.New("unknown scene")
	ErrInvalidScene  = errors.New("invalid scene")
)
