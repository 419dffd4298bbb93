// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sprite loads trees described in JSON, YAML or TOML files,
// prints them, and emits events on them to show how the events bubble
// up to the bus.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd returns the root command with all of its subcommands.
func newRootCmd() *cobra.Command {
	app := &app{}
	root := &cobra.Command{
		Use:   "sprite",
		Short: "Sprite builds trees of nodes and emits events on them",
		Long: `Sprite loads trees of nodes described in JSON, YAML or TOML files.
Events emitted on a node bubble up through its ancestors to the bus
of the tree, unless a listener stops their propagation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.configure(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&app.configFile, "config", "", "the TOML config file (default "+DefaultConfigFile+" if it exists)")
	pf.Bool("trace", false, "log every step of events bubbling up")
	pf.Bool("color", true, "color the output")
	pf.String("bus", "sprite", "the name of the bus")

	root.AddCommand(app.showCmd(), app.emitCmd(), app.runCmd(), app.convertCmd())
	return root
}
