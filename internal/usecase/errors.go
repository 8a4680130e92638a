package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// Fixture generation.
	ErrInsufficientTeams = errors.New("insufficient teams")
	ErrUnfairSchedule    = errors.New("unfair schedule")

	// Match placement. All four are recoverable by retrying with different
	// parameters; bulk runs record them as failed outcomes instead.
	ErrCapacity             = errors.New("slot capacity exceeded")
	ErrNoSingleSlot         = errors.New("no single slot can hold all lines")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrConflict             = errors.New("booking conflict")

	// ErrDeleteUnsafe guards destructive operations: a placed match must be
	// unscheduled before it can be deleted.
	ErrDeleteUnsafe = errors.New("match is scheduled")
)
