package precession

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for an unrecognized epoch, model name or
// term name. Match with errors.Is.
var ErrInvalidArgument = errors.New("precession: invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
