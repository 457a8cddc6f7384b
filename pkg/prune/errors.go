package prune

import (
	"errors"
	"fmt"
)

// ErrOracleUnavailable means no bounding boxes could be obtained; pruning is skipped.
var ErrOracleUnavailable = errors.New("bounds oracle unavailable")

func wrapUnavailable(err error) error {
	if errors.Is(err, ErrOracleUnavailable) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
}
