package main

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/caveman250/PlumbusEngine/internal/core/native"
)

func newSymbolsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the engine exports the bindings use, and which ones a library provides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			resolved := map[string]string{}
			var bindErr error
			if cfg.Library != "" {
				lib, err := native.Open(cfg.Library)
				if err != nil {
					return err
				}
				defer lib.Close()

				table, err := native.Bind(lib, lib, cfg.Symbols)
				if table != nil {
					resolved = table.Resolved()
				}
				bindErr = err
			}

			out := tablewriter.NewWriter(cmd.OutOrStdout())
			out.SetHeader([]string{"Field", "Exports", "Optional", "Bound"})
			out.SetAutoWrapText(false)
			out.SetBorder(false)
			for _, s := range native.Symbols() {
				names := append(append([]string(nil), cfg.Symbols[s.Names[0]]...), s.Names...)
				bound := "-"
				if cfg.Library != "" {
					bound = resolved[s.Field]
					if bound == "" {
						bound = "missing"
					}
				}
				out.Append([]string{s.Field, strings.Join(names, ","), strconv.FormatBool(s.Optional), bound})
			}
			out.Render()
			return bindErr
		},
	}
}
