// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"cogentcore.org/sprite/events"
	"cogentcore.org/sprite/internal/script"
	"cogentcore.org/sprite/tree"
)

// app holds the state shared by the commands.
type app struct {
	configFile string
	config     *Config
}

func (a *app) configure(cmd *cobra.Command) error {
	c, err := LoadConfig(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	c.Apply()
	a.config = c
	return nil
}

// open opens the tree in the given file on a new bus.
func (a *app) open(filename string) (*tree.NodeBase, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	return tree.Open(fn, events.NewBus(a.config.Bus))
}

// find returns the node at the given path in the given tree.
func find(root *tree.NodeBase, path string) (tree.Node, error) {
	n := root.FindPath(path)
	if n == nil {
		return nil, fmt.Errorf("no node at path %q in %v", path, root)
	}
	return n, nil
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the tree in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.open(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), root)
		},
	}
}

// print writes the given tree with the configured indentation.
func (a *app) print(w io.Writer, root tree.Node) error {
	return script.Print(w, root, a.config.Indent)
}

func (a *app) emitCmd() *cobra.Command {
	var stops []string
	cmd := &cobra.Command{
		Use:   "emit <file> <path> <event> [args...]",
		Short: "Emit an event on a node and show where it is received",
		Long: `Emit loads the tree in the given file, adds a listener for the event
to every node and to the bus, and emits the event on the node at the given
path. Each listener prints where it received the event, in order. The
listeners on the nodes given with --stop stop the propagation of the event.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.open(args[0])
			if err != nil {
				return err
			}
			target, err := find(root, args[1])
			if err != nil {
				return err
			}
			stopAt := map[tree.Node]bool{}
			for _, s := range stops {
				n, err := find(root, s)
				if err != nil {
					return err
				}
				stopAt[n] = true
			}
			eargs := make([]any, len(args)-3)
			for i, s := range args[3:] {
				eargs[i] = s
			}
			n := a.trace(cmd.OutOrStdout(), root, args[2], stopAt)
			target.Emit(args[2], eargs...)
			if *n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no listeners received the event")
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&stops, "stop", nil, "the path of a node that stops propagation (can be repeated)")
	return cmd
}

// trace adds a listener for the given event to every node in the tree
// and to its bus that prints each step to the given writer. It returns
// the number of steps, which is updated as the event propagates.
func (a *app) trace(w io.Writer, root *tree.NodeBase, event string, stopAt map[tree.Node]bool) *int {
	p := a.config.Profile()
	steps := 0
	listen := func(em events.Emitter, stop bool) {
		em.On(event, func(e *events.Event) {
			steps++
			label := p.String(fmt.Sprint(em)).Foreground(p.Color("#818cf8"))
			line := fmt.Sprintf("%d %s", steps, label)
			if len(e.Args) > 0 {
				line += fmt.Sprint(" ", e.Args)
			}
			if stop {
				e.StopPropagation()
				line += " " + p.String("stopped").Foreground(p.Color("#fb7185")).String()
			}
			fmt.Fprintln(w, line)
		})
	}
	root.WalkDown(func(n tree.Node) bool {
		listen(n, stopAt[n])
		return tree.Continue
	})
	listen(root.Bus(), false)
	return &steps
}

func (a *app) runCmd() *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "run <file> <script>",
		Short: "Run a script against the tree in a file",
		Long: "Run loads the tree in the given file and runs the commands in the given script on it.\n" +
			"The commands are:\n\n  " + strings.Join(usages(), "\n  "),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.open(args[0])
			if err != nil {
				return err
			}
			fn, err := homedir.Expand(args[1])
			if err != nil {
				return err
			}
			if err := script.New(root, cmd.OutOrStdout()).RunFile(fn); err != nil {
				return err
			}
			if show {
				return a.print(cmd.OutOrStdout(), root)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print the tree after running the script")
	return cmd
}

func usages() []string {
	var res []string
	for _, c := range script.Commands() {
		res = append(res, script.Usage(c))
	}
	return res
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file> <output>",
		Short: "Convert a tree file to another format",
		Long:  "Convert writes the tree in the given file to the output file, in the format given by its extension.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.open(args[0])
			if err != nil {
				return err
			}
			out, err := homedir.Expand(args[1])
			if err != nil {
				return err
			}
			return tree.Save(root, out)
		},
	}
}
