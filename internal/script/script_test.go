// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/sprite/events"
	"cogentcore.org/sprite/tree"
)

func newScript() (*Script, *bytes.Buffer) {
	root := tree.NewNodeBase(events.NewBus("sprite"))
	root.Name = "root"
	buf := &bytes.Buffer{}
	return New(root, buf), buf
}

func run(t *testing.T, s *Script, lines ...string) {
	t.Helper()
	require.NoError(t, s.Run(strings.NewReader(strings.Join(lines, "\n"))))
}

func TestBubbling(t *testing.T) {
	s, buf := newScript()
	run(t, s,
		"# build a chain",
		"add /root c",
		"add c b",
		"add c/b a",
		"",
		"on c/b/a test",
		"on c/b test",
		"on c test",
		"on @bus test",
		"emit c/b/a test Hello 'with space'",
	)
	assert.Equal(t, `test@/root/c/b/a(Hello, with space)
test@/root/c/b(Hello, with space)
test@/root/c(Hello, with space)
test@bus:sprite(Hello, with space)
`, buf.String())
}

func TestStop(t *testing.T) {
	s, buf := newScript()
	run(t, s,
		"add /root c",
		"add c b",
		"add c/b a",
		"on c/b/a test",
		"on c/b test stop",
		"on c/b test",
		"on c test",
		"on @bus test",
		"emit c/b/a test foo bar 2000",
	)
	assert.Equal(t, `test@/root/c/b/a(foo, bar, 2000)
test@/root/c/b(foo, bar, 2000)
test@/root/c/b(foo, bar, 2000)
`, buf.String())

	buf.Reset()
	run(t, s, "emit c test")
	assert.Equal(t, "test@/root/c()\ntest@bus:sprite()\n", buf.String())
}

func TestOnceOff(t *testing.T) {
	s, buf := newScript()
	run(t, s,
		"add /root a",
		"once a ping",
		"on @bus ping",
		"emit a ping",
		"emit a ping",
		"off @bus ping",
		"emit a ping",
	)
	assert.Equal(t, "ping@/root/a()\nping@bus:sprite()\nping@bus:sprite()\n", buf.String())

	buf.Reset()
	run(t, s,
		"on a ping",
		"on a pong",
		"off a",
		"emit a ping",
		"emit a pong",
		"emit @bus direct",
	)
	assert.Empty(t, buf.String())
}

func TestDefaultBus(t *testing.T) {
	root := tree.NewNodeBase(nil)
	root.Name = "root"
	buf := &bytes.Buffer{}
	s := New(root, buf)
	run(t, s,
		"add /root a",
		"on @bus default-bus-test",
		"emit a default-bus-test x",
		"off @bus default-bus-test",
	)
	assert.Equal(t, "default-bus-test@bus:default(x)\n", buf.String())
}

func TestStructure(t *testing.T) {
	s, buf := newScript()
	run(t, s,
		"add /root a",
		"add /root b",
		"add a x",
		"add a/x y",
		"set a/x color red",
		"set a/x size 2",
		"unset a/x size",
		"unset a/x missing",
		"parents a/x/y",
		"path a/x/y",
		"path a/x/y a",
		"print",
	)
	assert.Equal(t, `/root/a/x /root/a /root
/root/a/x/y
x/y
root
  a
    x color=red
      y
  b
`, buf.String())

	buf.Reset()
	run(t, s,
		"remove a/x",
		"removeall /root",
		"print",
	)
	assert.Equal(t, "root\n", buf.String())
}

func TestErrors(t *testing.T) {
	s, _ := newScript()
	run(t, s, "add /root alpha")

	err := s.Exec("emitt alpha test")
	assert.ErrorContains(t, err, `unknown command "emitt" (did you mean "emit"?)`)

	err = s.Exec("emit alpah test")
	assert.ErrorContains(t, err, `no node at path "alpah" (did you mean "alpha"?)`)

	assert.ErrorContains(t, s.Exec("add"), "usage: add <parentPath> <name>")
	assert.ErrorContains(t, s.Exec("on alpha test later"), "usage: on")
	assert.ErrorContains(t, s.Exec("add /root alpha"), "already has a child")
	assert.ErrorContains(t, s.Exec("remove /root"), "cannot remove the root")
	assert.ErrorContains(t, s.Exec("emit alpha 'open"), "error parsing args")

	err = s.Run(strings.NewReader("add /root beta\n\nbogus"))
	assert.ErrorContains(t, err, "line 3: unknown command")

	assert.ErrorContains(t, s.Exec("path alpha beta"), `has no ancestor named "beta"`)
}

func TestRunFile(t *testing.T) {
	s, buf := newScript()
	fn := filepath.Join(t.TempDir(), "test.sprite")
	require.NoError(t, os.WriteFile(fn, []byte("add /root a\non a hi\nemit a hi there\n"), 0666))
	require.NoError(t, s.RunFile(fn))
	assert.Equal(t, "hi@/root/a(there)\n", buf.String())

	assert.Error(t, s.RunFile(filepath.Join(t.TempDir(), "missing.sprite")))
}

func TestCommands(t *testing.T) {
	assert.Equal(t, []string{"add", "emit", "off", "on", "once", "parents", "path", "print", "remove", "removeall", "set", "unset"}, Commands())
	assert.Equal(t, "print", Usage("print"))
	assert.Equal(t, "", Usage("nope"))
}
