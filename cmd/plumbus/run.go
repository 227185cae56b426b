package main

import (
	"github.com/spf13/cobra"

	"github.com/caveman250/PlumbusEngine/internal/injector"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Load the engine library, install script callbacks and enter the engine loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			h, err := injector.InitializeNativeHost(cfg)
			if err != nil {
				return err
			}
			defer h.Close()

			return h.Run(cmd.Context())
		},
	}
}
