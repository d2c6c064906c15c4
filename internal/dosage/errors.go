package dosage

import "errors"

var (
	ErrUnknownCalculationType = errors.New("unknown calculation type")
	ErrInvalidInput           = errors.New("invalid input")
)
