package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrMissingTable marks a game whose header or line score is absent or
	// empty. Fatal for that game; no partial record is produced.
	ErrMissingTable = errors.New("required table missing")

	// ErrAmbiguousTeams marks a box score whose team rows cannot be matched
	// to home and away after every fallback.
	ErrAmbiguousTeams = errors.New("ambiguous team match")
)
