package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrAccessDenied    = errors.New("patient belongs to another doctor")
	ErrInvalidPhone    = errors.New("phone number could not be parsed")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrNameRequired    = errors.New("first and last name are required")
)
