package iconport

import (
	"errors"
	"fmt"
)

// ErrConfig marks problems that abort a whole run (bad template, source or output root).
var ErrConfig = errors.New("configuration error")

// configErr accepts %w verbs in format.
func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfig}, args...)...)
}
