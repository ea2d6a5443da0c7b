package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedOwnerRequired  = "owner identity required"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrOwnerRequired = errors.New("owner identity header missing")
	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)
