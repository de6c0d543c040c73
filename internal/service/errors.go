package service

import "errors"

// Error taxonomy shared by all services. Handlers translate these with
// errors.Is: validation 400, credentials 401, not found 404, conflict 409,
// anything else 500 with a generic body.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid username or access code")
)
