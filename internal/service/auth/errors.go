package auth

import "errors"

var (
	ErrMissingToken       = errors.New("token is missing")
	ErrRevokedToken       = errors.New("token is revoked")
	ErrUnknownUser        = errors.New("token owner not found")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrAccountPending     = errors.New("account pending")
)
