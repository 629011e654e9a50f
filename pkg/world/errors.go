package world

import "errors"

// Containment violations. Each maps to a distinct user-facing message, and
// the put protocol guarantees no partial mutation occurred when one is
// returned.
var (
	ErrContainerClosed     = errors.New("container is closed")
	ErrContainerFull       = errors.New("container is full")
	ErrItemNotAllowed      = errors.New("item is not allowed in container")
	ErrBadPreposition      = errors.New("container does not accept preposition")
	ErrCircularContainment = errors.New("item cannot contain itself")
	ErrItemNotPresent      = errors.New("item not present")
	ErrContainerNotFound   = errors.New("container not found")
)
