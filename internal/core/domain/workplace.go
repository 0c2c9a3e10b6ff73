package domain

import "errors"

var (
	ErrWorkplaceNotFound    = errors.New("workplace not found")
	ErrWorkplaceNameTaken   = errors.New("workplace name already taken")
	ErrWorkplaceInUse       = errors.New("workplace still has members")
	ErrInvalidWorkplaceName = errors.New("workplace name is required")
)

// Workplace groups the identities of one organisation.
type Workplace struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
