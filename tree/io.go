// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"strings"

	"cogentcore.org/sprite/base/iox/jsonx"
	"cogentcore.org/sprite/base/iox/tomlx"
	"cogentcore.org/sprite/base/iox/yamlx"
	"cogentcore.org/sprite/events"
)

// Description is the serializable structure of a tree: the names and
// properties of its nodes and how they are nested. It does not include
// event listeners or fields of higher-level node types.
type Description struct {
	Name       string         `json:"name" yaml:"name" toml:"name"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`
	Children   []*Description `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Describe returns the [Description] of the tree from the given node down.
func Describe(n Node) *Description {
	nb := n.AsTree()
	d := &Description{Name: nb.Name, Properties: maps.Clone(nb.Properties)}
	for _, kid := range nb.children {
		d.Children = append(d.Children, Describe(kid))
	}
	return d
}

// Build returns a new tree of [NodeBase] nodes matching the given
// description, whose root sends events to the given bus.
func Build(d *Description, bus *events.Bus) *NodeBase {
	root := NewNodeBase(bus)
	d.BuildInto(root)
	return root
}

// BuildInto sets the name and properties of the given node from the
// description and adds a new [NodeBase] child for every child description.
// Existing children of the node are kept.
func (d *Description) BuildInto(n Node) {
	nb := n.AsTree()
	nb.Name = d.Name
	for k, v := range d.Properties {
		nb.SetProperty(k, v)
	}
	for _, cd := range d.Children {
		kid := NewNodeBase(nil)
		cd.BuildInto(kid)
		n.Add(kid)
	}
}

// Format is a supported encoding of tree descriptions.
type Format int32

const (
	// JSON is the JSON format, for the .json extension.
	JSON Format = iota

	// YAML is the YAML format, for the .yaml and .yml extensions.
	YAML

	// TOML is the TOML format, for the .toml extension.
	TOML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// FormatOf returns the [Format] for the extension of the given filename.
func FormatOf(filename string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("tree: unsupported file extension %q for %q", ext, filename)
	}
}

// ReadDescription reads a [Description] in the given format from the given reader.
func ReadDescription(r io.Reader, format Format) (*Description, error) {
	d := &Description{}
	var err error
	switch format {
	case JSON:
		err = jsonx.Read(d, r)
	case YAML:
		err = yamlx.Read(d, r)
	case TOML:
		err = tomlx.Read(d, r)
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("tree.ReadDescription: %w", err)
	}
	return d, nil
}

// WriteDescription writes the given [Description] in the given format to the given writer.
func WriteDescription(w io.Writer, d *Description, format Format) error {
	var err error
	switch format {
	case JSON:
		err = jsonx.Write(d, w)
	case YAML:
		err = yamlx.Write(d, w)
	case TOML:
		err = tomlx.Write(d, w)
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return fmt.Errorf("tree.WriteDescription: %w", err)
	}
	return nil
}

// Open reads the description of a tree from the given file, in the format
// given by its extension, and builds it with [Build] on the given bus.
func Open(filename string, bus *events.Bus) (*NodeBase, error) {
	d := &Description{}
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	switch format {
	case JSON:
		err = jsonx.Open(d, filename)
	case YAML:
		err = yamlx.Open(d, filename)
	case TOML:
		err = tomlx.Open(d, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("tree.Open: %w", err)
	}
	return Build(d, bus), nil
}

// Save writes the description of the tree from the given node down
// to the given file, in the format given by its extension.
func Save(n Node, filename string) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	d := Describe(n)
	switch format {
	case JSON:
		err = jsonx.Save(d, filename)
	case YAML:
		err = yamlx.Save(d, filename)
	case TOML:
		err = tomlx.Save(d, filename)
	}
	if err != nil {
		return fmt.Errorf("tree.Save: %w", err)
	}
	return nil
}
