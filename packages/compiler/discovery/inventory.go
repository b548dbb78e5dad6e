// Package discovery turns a property inventory of candidate types into tag
// helper descriptors.
//
// An inventory lists, per type, its properties and the annotations applied to
// the type and its properties. It is usually produced by a host that has
// access to the type system and is read from YAML:
//
//	types:
//	  - typeName: Acme.Web.GlowTagHelper
//	    assembly: Acme.Web
//	    annotations:
//	      - kind: HtmlTargetElement
//	        args: {tag: div, attributes: "glow"}
//	    properties:
//	      - name: Intensity
//	        typeName: System.Int32
//	      - name: Items
//	        typeName: System.Collections.Generic.IDictionary<System.String, System.String>
//	        publicSet: false
//	        dictionary: {keyTypeName: System.String, valueTypeName: System.String}
package discovery

import (
	"bytes"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rzc-go/packages/compiler/errors"
)

// Inventory is the set of candidate types, in discovery order.
type Inventory struct {
	Types []TypeInventory `yaml:"types"`
}

// TypeInventory describes one candidate type.
type TypeInventory struct {
	TypeName      string              `yaml:"typeName"`
	Name          string              `yaml:"name,omitempty"`
	AssemblyName  string              `yaml:"assembly"`
	Documentation string              `yaml:"documentation,omitempty"`
	Annotations   []Annotation        `yaml:"annotations,omitempty"`
	Properties    []PropertyInventory `yaml:"properties,omitempty"`
}

// SimpleName returns Name, or the last segment of TypeName when Name is empty.
func (t *TypeInventory) SimpleName() string {
	if t.Name != "" {
		return t.Name
	}
	name := t.TypeName
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexAny(name, ".+"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// PropertyInventory describes one property of a candidate type. Properties of
// base types follow those of the derived type.
type PropertyInventory struct {
	Name          string               `yaml:"name"`
	TypeName      string               `yaml:"typeName"`
	PublicGet     bool                 `yaml:"publicGet"`
	PublicSet     bool                 `yaml:"publicSet"`
	IsEnum        bool                 `yaml:"isEnum,omitempty"`
	Dictionary    *DictionaryInventory `yaml:"dictionary,omitempty"`
	Documentation string               `yaml:"documentation,omitempty"`
	Annotations   []Annotation         `yaml:"annotations,omitempty"`
}

// UnmarshalYAML decodes a property with a public getter and setter unless
// stated otherwise.
func (p *PropertyInventory) UnmarshalYAML(value *yaml.Node) error {
	type plain PropertyInventory
	raw := plain{PublicGet: true, PublicSet: true}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = PropertyInventory(raw)
	return nil
}

// IsStringKeyedDictionary reports whether the property implements a
// dictionary keyed by strings.
func (p *PropertyInventory) IsStringKeyedDictionary() bool {
	return p.Dictionary != nil && p.Dictionary.IsStringKeyed()
}

// DictionaryInventory describes the dictionary interface a property implements.
type DictionaryInventory struct {
	KeyTypeName   string `yaml:"keyTypeName"`
	ValueTypeName string `yaml:"valueTypeName"`
}

func (d *DictionaryInventory) IsStringKeyed() bool {
	return d.KeyTypeName == "System.String" || d.KeyTypeName == "string"
}

// Annotation is an attribute applied to a type or property, with its named
// arguments.
type Annotation struct {
	Kind string         `yaml:"kind"`
	Args map[string]any `yaml:"args,omitempty"`
}

// LoadInventory reads a YAML inventory.
func LoadInventory(r io.Reader) (*Inventory, error) {
	inventory := &Inventory{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(inventory); err != nil {
		if err == io.EOF {
			return inventory, nil
		}
		return nil, errors.WithStackTraceAndPrefix(err, "failed to parse inventory")
	}
	return inventory, nil
}

// LoadInventoryFile reads a YAML inventory from path.
func LoadInventoryFile(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	inventory, err := LoadInventory(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "inventory %s", path)
	}
	return inventory, nil
}
