// Package inkscape asks a running Inkscape for element bounding boxes.
package inkscape

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	goinkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"

	"github.com/gucio321/iconport/pkg/prune"
	"github.com/gucio321/iconport/pkg/svgdoc"
)

// DefaultTimeout bounds a single query.
const DefaultTimeout = 30 * time.Second

var _ prune.BoundsProvider = &Oracle{}

// Oracle implements prune.BoundsProvider with Inkscape's query-all action.
// Every document is handled by one short-lived Inkscape shell.
type Oracle struct {
	timeout time.Duration
	verbose bool
	binary  string
}

func NewOracle() *Oracle {
	return &Oracle{
		timeout: DefaultTimeout,
		binary:  "inkscape",
	}
}

// Timeout sets how long a query may take before Inkscape is considered unavailable.
func (o *Oracle) Timeout(d time.Duration) *Oracle {
	if d > 0 {
		o.timeout = d
	}

	return o
}

// Verbose makes the proxy echo Inkscape's output.
func (o *Oracle) Verbose(v bool) *Oracle {
	o.verbose = v
	return o
}

// Available reports whether an inkscape binary is on PATH.
func (o *Oracle) Available() bool {
	_, err := exec.LookPath(o.binary)
	return err == nil
}

// BoundsFor serializes doc to a temporary file and queries it.
func (o *Oracle) BoundsFor(ctx context.Context, doc *svgdoc.Document) (map[string]prune.Box, error) {
	// 0.0: is there anything to talk to?
	if !o.Available() {
		return nil, fmt.Errorf("%w: %s not found in PATH", prune.ErrOracleUnavailable, o.binary)
	}

	// 1.0: inkscape works on files
	data, err := doc.Bytes()
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "iconport-*.svg")
	if err != nil {
		return nil, fmt.Errorf("creating query file: %w", err)
	}

	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing query file: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing query file: %w", err)
	}

	// 2.0: one bounded shell session
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	proxy := goinkscape.NewProxy(goinkscape.Verbose(o.verbose))
	if err := proxy.Run(); err != nil {
		return nil, fmt.Errorf("%w: cannot run inkscape: %w", prune.ErrOracleUnavailable, err)
	}

	var closeOnce sync.Once
	closeProxy := func() {
		closeOnce.Do(func() {
			if err := proxy.Close(); err != nil {
				glg.Debugf("closing inkscape: %v", err)
			}
		})
	}

	defer closeProxy()

	type reply struct {
		out []byte
		err error
	}

	replies := make(chan reply, 1)
	go func() {
		out, err := proxy.RawCommands(
			fmt.Sprintf("file-open:%s", f.Name()),
			"query-all",
			"file-close",
		)
		replies <- reply{out, err}
	}()

	select {
	case <-ctx.Done():
		closeProxy()
		return nil, fmt.Errorf("%w: query: %w", prune.ErrOracleUnavailable, ctx.Err())
	case r := <-replies:
		if r.err != nil {
			return nil, fmt.Errorf("%w: query: %w", prune.ErrOracleUnavailable, r.err)
		}

		// 3.0: read the answer
		glg.Debugf("inkscape query-all returned %d bytes", len(r.out))

		return ParseQueryAll(r.out), nil
	}
}
