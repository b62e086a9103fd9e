package services

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnknownIdentifier   = errors.New("unknown identifier")
	ErrNoEmployeeRecord    = errors.New("no employee record")
	ErrSelfServiceDisabled = errors.New("employee self service disabled")
	ErrPasswordNotSet      = errors.New("app password not set")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDeviceMismatch      = errors.New("device mismatch")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrInternal            = errors.New("internal error")

	ErrAlreadyExists = errors.New("record already exists")
)
