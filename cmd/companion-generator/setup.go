package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"companion-generator/internal/config"
	"companion-generator/internal/engine"
	"companion-generator/internal/logger"
	"companion-generator/internal/snapshot"
)

const defaultConfigHint = "./" + config.DefaultFile + " if present"

// addRunFlags registers the flags shared by commands that run the engine.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("input", "i", nil, "snapshot file patterns (doublestar syntax)")
	cmd.Flags().StringP("output", "o", "", "output directory")
	cmd.Flags().IntP("jobs", "j", 0, "max parallel synthesis workers (0=auto)")
}

// setup loads the config, applies flag overrides and installs the logger
// into the command context.
func (a *app) setup(cmd *cobra.Command) (context.Context, *config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	optional := path == ""
	if optional {
		path = config.DefaultFile
	}

	cfg, err := config.Load(a.fs, path, optional)
	if err != nil {
		return nil, nil, err
	}

	override := &config.Config{}

	if f := cmd.Flags().Lookup("input"); f != nil && f.Changed {
		override.Inputs, _ = cmd.Flags().GetStringSlice("input")
	}

	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		override.Output, _ = cmd.Flags().GetString("output")
	}

	if f := cmd.Flags().Lookup("jobs"); f != nil && f.Changed {
		override.Jobs, _ = cmd.Flags().GetInt("jobs")
	}

	override.LogLevel, _ = cmd.Flags().GetString("log-level")

	if err := cfg.Merge(override); err != nil {
		return nil, nil, err
	}

	lc := cfg.Logger()
	lc.Output = a.errOut

	ctx := logger.ContextWithLogger(cmd.Context(), logger.NewLogger(lc))

	return ctx, cfg, nil
}

// runOnce loads the snapshot and runs the engine.
func (a *app) runOnce(ctx context.Context, cfg *config.Config) (*engine.Result, error) {
	prog, err := snapshot.LoadGlob(a.fs, cfg.Inputs...)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	logger.FromContext(ctx).Debug("loaded snapshot", "files", len(prog.Files))

	return engine.Run(ctx, prog, cfg.Engine())
}
