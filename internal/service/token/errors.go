package token

import "errors"

var (
	ErrExpiredToken   = errors.New("token has expired")
	ErrMalformedToken = errors.New("token is invalid")
	ErrAlreadyRevoked = errors.New("token already revoked")
)
