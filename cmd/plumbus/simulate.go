package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/caveman250/PlumbusEngine/internal/injector"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var frames int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drive the configured scripts against the in-process engine simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("frames") {
				cfg.Simulation.Frames = frames
			}

			h, err := injector.InitializeSimulatedHost(cfg)
			if err != nil {
				return err
			}
			defer h.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := h.Simulate(ctx)
			if err != nil && ctx.Err() == nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "frames:   %d\n", report.Frames)
			fmt.Fprintf(out, "updates:  %d\n", report.Stats.Updates)
			fmt.Fprintf(out, "failures: %d\n", report.Stats.Failures)
			fmt.Fprintf(out, "missing:  %d\n", report.Stats.Missing)
			fmt.Fprintf(out, "elapsed:  %s\n", report.Duration)
			for _, e := range h.Registry().All() {
				fmt.Fprintf(out, "entity %s %q\n", e.Handle, e.Name)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 0, "number of frames, overrides config")

	return cmd
}
