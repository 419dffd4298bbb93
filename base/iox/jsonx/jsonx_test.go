// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	v := map[string]any{"name": "sprite"}
	b, err := WriteBytes(v)
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"name\": \"sprite\"\n}\n", string(b))

	got := map[string]any{}
	require.NoError(t, ReadBytes(&got, b))
	assert.Equal(t, v, got)
	assert.Error(t, ReadBytes(&got, []byte("{")))
}
