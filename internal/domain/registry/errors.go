package registry

import "errors"

// Registry domain errors
var (
	ErrTeamNotFound         = errors.New("team not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrInvalidPIN           = errors.New("invalid access code")
	ErrConfirmationRequired = errors.New("deletion requires explicit confirmation")
)
