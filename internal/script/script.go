// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script implements a small line-oriented command language
// for building trees, registering listeners and emitting events,
// which is used to drive and demonstrate event bubbling.
//
// Each line holds one command, with arguments split using shell
// quoting rules. Empty lines and lines starting with # are ignored.
// Paths are resolved with [tree.NodeBase.FindPath] from the root,
// and the path @bus refers to the bus of the tree.
package script

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mattn/go-shellwords"

	"cogentcore.org/sprite/events"
	"cogentcore.org/sprite/tree"
)

// BusPath is the path that refers to the bus of the tree in scripts.
const BusPath = "@bus"

// Script runs commands against a tree.
type Script struct {

	// Root is the root of the tree that paths are resolved from.
	Root tree.Node

	// Out is where listeners registered by the script record the events
	// they receive, and where print and parents write their output.
	Out io.Writer
}

// New returns a new [Script] for the given tree,
// writing its output to the given writer.
func New(root tree.Node, out io.Writer) *Script {
	return &Script{Root: root, Out: out}
}

// command is one command of the language.
type command struct {

	// usage is the synopsis of the arguments.
	usage string

	// min and max are the allowed numbers of arguments;
	// max < 0 means unlimited.
	min, max int

	run func(s *Script, args []string) error
}

var commands map[string]*command

func init() {
	commands = map[string]*command{
		"add":       {"<parentPath> <name>", 2, 2, (*Script).add},
		"remove":    {"<path>", 1, 1, (*Script).remove},
		"removeall": {"<path>", 1, 1, (*Script).removeAll},
		"set":       {"<path> <key> <value>", 3, 3, (*Script).set},
		"unset":     {"<path> <key>", 2, 2, (*Script).unset},
		"on":        {"<path> <event> [stop]", 2, 3, (*Script).on},
		"once":      {"<path> <event>", 2, 2, (*Script).once},
		"off":       {"<path> [event]", 1, 2, (*Script).off},
		"emit":      {"<path> <event> [args...]", 2, -1, (*Script).emit},
		"parents":   {"<path>", 1, 1, (*Script).parents},
		"path":      {"<path> [ancestor]", 1, 2, (*Script).path},
		"print":     {"", 0, 0, (*Script).print},
	}
}

// Commands returns the sorted names of the available commands.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Usage returns the usage line of the given command, or "" if it does not exist.
func Usage(name string) string {
	c, ok := commands[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(name + " " + c.usage)
}

// Run runs all of the commands read from the given reader. It stops at the
// first command that fails, returning its error annotated with the line number.
func (s *Script) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		if err := s.Exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
	}
	return sc.Err()
}

// RunFile runs all of the commands in the given file.
func (s *Script) RunFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.Run(f); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// Exec runs the command on the given line.
func (s *Script) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("error parsing args: %w", err)
	}
	if len(args) == 0 {
		return nil
	}
	name, args := args[0], args[1:]
	c, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q%s", name, suggest(name, Commands()))
	}
	if len(args) < c.min || (c.max >= 0 && len(args) > c.max) {
		return fmt.Errorf("usage: %s", Usage(name))
	}
	slog.Debug("script", "cmd", name, "args", args)
	return c.run(s, args)
}

// suggest returns a hint naming the most similar of the given candidates
// to the given name, or "" if none of them is similar enough.
func suggest(name string, candidates []string) string {
	best, score := "", 0.5
	lev := metrics.NewLevenshtein()
	for _, c := range candidates {
		if sim := strutil.Similarity(name, c, lev); sim > score {
			best, score = c, sim
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

// node returns the node at the given path.
func (s *Script) node(path string) (tree.Node, error) {
	n := s.Root.AsTree().FindPath(path)
	if n != nil {
		return n, nil
	}
	// the nearest existing parent gives the best hint
	dir, base := "", path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		dir, base = path[:i], path[i+1:]
	}
	hint := ""
	if p := s.Root.AsTree().FindPath(dir); p != nil {
		names := []string{}
		for _, kid := range p.AsTree().All() {
			names = append(names, kid.AsTree().Name)
		}
		hint = suggest(base, names)
	}
	return nil, fmt.Errorf("no node at path %q%s", path, hint)
}

// emitter returns the node at the given path, or the bus for [BusPath].
func (s *Script) emitter(path string) (events.Emitter, error) {
	if path != BusPath {
		return s.node(path)
	}
	return s.Root.AsTree().Bus(), nil
}

// record returns a listener that writes the events it receives
// on the given emitter to [Script.Out], stopping their propagation
// if stop is true.
func (s *Script) record(em events.Emitter, stop bool) events.Listener {
	return func(e *events.Event) {
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = fmt.Sprint(a)
		}
		fmt.Fprintf(s.Out, "%s@%v(%s)\n", e.Name, em, strings.Join(args, ", "))
		if stop {
			e.StopPropagation()
		}
	}
}

func (s *Script) add(args []string) error {
	parent, err := s.node(args[0])
	if err != nil {
		return err
	}
	if parent.AsTree().ChildByName(args[1]) != nil {
		return fmt.Errorf("%v already has a child named %q", parent, args[1])
	}
	kid := tree.NewNodeBase(nil)
	kid.Name = args[1]
	parent.Add(kid)
	return nil
}

func (s *Script) remove(args []string) error {
	n, err := s.node(args[0])
	if err != nil {
		return err
	}
	parent := n.Parent()
	if parent == nil {
		return fmt.Errorf("cannot remove the root %v", n)
	}
	parent.Remove(n)
	return nil
}

func (s *Script) removeAll(args []string) error {
	n, err := s.node(args[0])
	if err != nil {
		return err
	}
	n.RemoveAll()
	return nil
}

func (s *Script) set(args []string) error {
	n, err := s.node(args[0])
	if err != nil {
		return err
	}
	n.AsTree().SetProperty(args[1], args[2])
	return nil
}

func (s *Script) unset(args []string) error {
	n, err := s.node(args[0])
	if err != nil {
		return err
	}
	n.AsTree().DeleteProperty(args[1])
	return nil
}

func (s *Script) on(args []string) error {
	em, err := s.emitter(args[0])
	if err != nil {
		return err
	}
	stop := false
	if len(args) == 3 {
		if args[2] != "stop" {
			return fmt.Errorf("usage: %s", Usage("on"))
		}
		stop = true
	}
	em.On(args[1], s.record(em, stop))
	return nil
}

func (s *Script) once(args []string) error {
	em, err := s.emitter(args[0])
	if err != nil {
		return err
	}
	em.Once(args[1], s.record(em, false))
	return nil
}

func (s *Script) off(args []string) error {
	em, err := s.emitter(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		em.OffAll()
		return nil
	}
	em.Off(args[1])
	return nil
}

func (s *Script) emit(args []string) error {
	eargs := make([]any, len(args)-2)
	for i, a := range args[2:] {
		eargs[i] = a
	}
	if args[0] == BusPath {
		s.Root.AsTree().Bus().Emit(args[1], eargs...)
		return nil
	}
	n, err := s.node(args[0])
	if err != nil {
		return err
	}
	n.Emit(args[1], eargs...)
	return nil
}

func (s *Script) parents(args []string) error {
	n, err := s.node(args[0])
	if err != nil {
		return err
	}
	paths := []string{}
	for _, p := range n.Parents() {
		paths = append(paths, p.AsTree().Path())
	}
	_, err = fmt.Fprintln(s.Out, strings.Join(paths, " "))
	return err
}

// path writes the absolute path of a node, or its path
// from the nearest ancestor with the given name.
func (s *Script) path(args []string) error {
	n, err := s.node(args[0])
	if err != nil {
		return err
	}
	nb := n.AsTree()
	p := nb.Path()
	if len(args) == 2 {
		anc := nb.ParentByName(args[1])
		if anc == nil {
			return fmt.Errorf("%v has no ancestor named %q", n, args[1])
		}
		p = nb.PathFrom(anc)
	}
	_, err = fmt.Fprintln(s.Out, p)
	return err
}

func (s *Script) print(args []string) error {
	return Print(s.Out, s.Root, "  ")
}

// Print writes the given tree to the given writer, one node per line,
// with the given indent repeated for each level of depth, followed by
// the properties of the node in key order.
func Print(w io.Writer, root tree.Node, indent string) error {
	var err error
	base := len(root.Parents())
	root.AsTree().WalkDown(func(n tree.Node) bool {
		nb := n.AsTree()
		line := strings.Repeat(indent, len(n.Parents())-base) + nb.Name
		keys := make([]string, 0, len(nb.Properties))
		for k := range nb.Properties {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			line += fmt.Sprintf(" %s=%v", k, nb.Properties[k])
		}
		_, err = fmt.Fprintln(w, line)
		return err == nil
	})
	return err
}
