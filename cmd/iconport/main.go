// Command iconport migrates Mint-X icons into the Mint-Y master template.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kpango/glg"
	"github.com/spf13/cobra"

	pkg "github.com/gucio321/iconport/pkg"
	"github.com/gucio321/iconport/pkg/config"
	"github.com/gucio321/iconport/pkg/presets"
)

// exit codes
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

// errFailed reports that at least one icon could not be migrated.
var errFailed = errors.New("some icons failed")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	var verbose bool

	root := &cobra.Command{
		Use:           "iconport",
		Short:         "Move Mint-X icons into the Mint-Y multi-baseplate template",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newMigrateCmd(&verbose))
	root.AddCommand(newPresetsCmd())

	root.SetArgs(args)
	err := root.ExecuteContext(ctx)

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFailed):
		return exitFailed
	case errors.Is(err, context.Canceled):
		glg.Errorf("interrupted")
		return exitFailed
	}

	// everything else (flags, presets, template, paths) is a setup problem
	fmt.Fprintln(os.Stderr, err)

	return exitConfig
}

func setupLogging(verbose bool) error {
	env, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("%w: %w", pkg.ErrConfig, err)
	}

	level, _ := env.Level()
	if verbose {
		level = glg.DEBG
	}

	glg.Get().SetLevel(level)

	return nil
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := presets.List()
			if err != nil {
				return err
			}

			for _, p := range all {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", p.Name, p.Description)
			}

			return nil
		},
	}
}
