package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"companion-generator/internal/config"
	"companion-generator/internal/gen"
	"companion-generator/internal/logger"
	"companion-generator/internal/snapshot"
	"companion-generator/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever a snapshot file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			dirs, err := a.snapshotDirs(cfg)
			if err != nil {
				return err
			}

			debounce, _ := cmd.Flags().GetDuration("debounce")

			return watch.New(dirs, func(ctx context.Context) error {
				return a.regenerate(ctx, cfg)
			}, watch.WithDebounce(debounce)).Run(ctx)
		},
	}

	addRunFlags(cmd)
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period after a change before regenerating")

	return cmd
}

// snapshotDirs returns the directories holding the matched snapshot files.
func (a *app) snapshotDirs(cfg *config.Config) ([]string, error) {
	paths, err := snapshot.Match(a.fs, cfg.Inputs...)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, p := range paths {
		dirs = append(dirs, filepath.Dir(p))
	}

	slices.Sort(dirs)

	return slices.Compact(dirs), nil
}

// regenerate is one watch pass. Outputs of a superseded pass are never written.
func (a *app) regenerate(ctx context.Context, cfg *config.Config) error {
	res, err := a.runOnce(ctx, cfg)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	printDiagnostics(a.errOut, res.Diagnostics)

	if err := gen.WriteFiles(a.fs, res.Files, cfg.Output); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("regenerated", "files", len(res.Files), "output", cfg.Output)
	fmt.Fprintf(a.out, "wrote %d file(s) to %s\n", len(res.Files), cfg.Output)

	return nil
}
