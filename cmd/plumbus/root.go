package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/caveman250/PlumbusEngine/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
	library    string
	profile    string

	profiler interface{ Stop() }
}

// load reads the config file and applies command-line overrides on top of
// the file and environment.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.library != "" {
		cfg.Library = o.library
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "plumbus",
		Short:         "Run Plumbus gameplay scripts against the engine or a simulation",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.startProfile()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if opts.profiler != nil {
				opts.profiler.Stop()
				opts.profiler = nil
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.library, "library", "", "engine shared library, overrides config and PLUMBUS_LIBRARY")
	flags.StringVar(&opts.profile, "profile", "", "write a profile to the working directory: cpu, mem or trace")

	rootCmd.AddCommand(
		newSimulateCmd(opts),
		newRunCmd(opts),
		newSymbolsCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) startProfile() error {
	var mode func(*profile.Profile)
	switch o.profile {
	case "":
		return nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "trace":
		mode = profile.TraceProfile
	default:
		return fmt.Errorf("unknown profile mode %q", o.profile)
	}
	o.profiler = profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	return nil
}
