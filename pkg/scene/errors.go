package scene

import "errors"

// Validation failures surfaced by Compose and the option parsers. Callers
// match with errors.Is; call sites add context via fmt.Errorf and %w.
var (
	ErrInvalidColor          = errors.New("invalid color")
	ErrInvalidBackgroundSpec = errors.New("invalid background spec")
	ErrInvalidMaskSpec       = errors.New("invalid mask spec")
	ErrInvalidDimension      = errors.New("invalid dimension")
	ErrConflictingOptions    = errors.New("conflicting options")
)
