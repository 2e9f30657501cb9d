package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the parent of every error caused by how templates, roles or delegations are set up
	ErrConfiguration      = errors.New("configuration error")
	ErrNoMatchingTemplate = fmt.Errorf("%w: no active flow template matches the request", ErrConfiguration)
	ErrUnresolvedRole     = fmt.Errorf("%w: unable to resolve approver role", ErrConfiguration)

	ErrInvalidCondition   = errors.New("invalid condition")
	ErrInvalidTemplate    = errors.New("invalid flow template")
	ErrUnauthorizedActor  = errors.New("actor is not the current assignee")
	ErrNotPending         = errors.New("instance is not pending")
	ErrStaleInstance      = errors.New("instance has changed since it was read")
	ErrInvalidDecision    = errors.New("invalid decision")
	ErrInvalidBackupRange = errors.New("backup approver validity range is invalid")
)
