package intakelink

import "errors"

var (
	ErrLinkNotFound  = errors.New("intake link not found")
	ErrLinkUsed      = errors.New("intake link has already been used")
	ErrInvalidExpiry = errors.New("expiry days out of range")
	ErrTokenExhaust  = errors.New("could not generate a unique token")
)
