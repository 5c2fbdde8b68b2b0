package contract

import "errors"

var (
	ErrInvalidQuestion = errors.New("question is empty")
	ErrInvalidSession  = errors.New("session id is empty")
	ErrValidation      = errors.New("validation failed")
)
