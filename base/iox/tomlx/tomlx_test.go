// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Trace bool
	Depth int
}

func TestRoundTrip(t *testing.T) {
	v := &testStruct{Name: "sprite", Trace: true, Depth: 3}
	b, err := WriteBytes(v)
	require.NoError(t, err)
	got := &testStruct{}
	require.NoError(t, ReadBytes(got, b))
	assert.Equal(t, v, got)

	fn := filepath.Join(t.TempDir(), "test.toml")
	require.NoError(t, Save(v, fn))
	got = &testStruct{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, v, got)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	require.NoError(t, os.WriteFile(first, []byte("Name = \"first\"\nDepth = 1\n"), 0666))
	require.NoError(t, os.WriteFile(second, []byte("Depth = 2\n"), 0666))

	v := &testStruct{Trace: true}
	require.NoError(t, OpenFiles(v, first, filepath.Join(dir, "missing.toml"), second))
	assert.Equal(t, &testStruct{Name: "first", Trace: true, Depth: 2}, v)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("Name = \n"), 0666))
	assert.ErrorContains(t, OpenFiles(v, bad), "bad.toml")
}
