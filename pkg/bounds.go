package iconport

import (
	"time"

	"github.com/gucio321/iconport/pkg/config"
	"github.com/gucio321/iconport/pkg/prune"
	"github.com/gucio321/iconport/pkg/prune/inkscape"
	"github.com/gucio321/iconport/pkg/prune/static"
)

// BoundsProviderFor builds the bounds oracle named by config.Options.Oracle.
func BoundsProviderFor(name string, timeout time.Duration, verbose bool) (prune.BoundsProvider, error) {
	switch name {
	case config.OracleInkscape:
		return inkscape.NewOracle().Timeout(timeout).Verbose(verbose), nil
	case config.OracleStatic:
		return static.Estimator{}, nil
	}

	return nil, configErr("unknown bounds oracle %q", name)
}
