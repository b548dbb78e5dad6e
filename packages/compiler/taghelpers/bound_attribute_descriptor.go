package taghelpers

import (
	"strings"

	"rzc-go/packages/compiler/util"
)

const (
	// DescriptorKind is the kind of every descriptor built by this package.
	DescriptorKind = "ITagHelper"

	// PropertyNameKey is the bound attribute metadata key holding the property name.
	PropertyNameKey = "ITagHelper.PropertyName"
	// TypeNameKey is the tag helper metadata key holding the implementing type name.
	TypeNameKey = "ITagHelper.TypeName"
)

// BoundAttributeDescriptor maps an HTML attribute, or a family of attributes
// sharing a prefix, to a property of a tag helper type.
//
// A dictionary property that binds both an exact name and a prefix family is
// represented by two descriptors: one without DictionaryAttributePrefix and a
// sibling whose Name and DictionaryAttributePrefix both hold the prefix.
type BoundAttributeDescriptor struct {
	Kind                      string
	Name                      string
	PropertyName              string
	TypeName                  string
	IsEnum                    bool
	IsStringProperty          bool
	DictionaryAttributePrefix *string
	DictionaryValueTypeName   string
	IsKeyValueStringProperty  bool
	Documentation             string
	DisplayName               string
	Metadata                  map[string]string
	Diagnostics               []*util.Diagnostic
}

// IsIndexer reports whether the descriptor binds a prefix family.
func (d *BoundAttributeDescriptor) IsIndexer() bool {
	return d.DictionaryAttributePrefix != nil
}

// HasErrors reports whether the descriptor carries an error diagnostic.
func (d *BoundAttributeDescriptor) HasErrors() bool {
	return util.HasErrors(d.Diagnostics)
}

// CanMatchName reports whether the descriptor claims an attribute name: the
// name equals Name, or starts with DictionaryAttributePrefix. Both checks
// ignore case.
func (d *BoundAttributeDescriptor) CanMatchName(name string) bool {
	if strings.EqualFold(d.Name, name) {
		return true
	}
	if d.DictionaryAttributePrefix != nil {
		_, ok := util.TrimPrefixFold(name, *d.DictionaryAttributePrefix)
		return ok
	}
	return false
}

// DictionaryKey returns the part of name after the dictionary prefix, when the
// descriptor binds name through its prefix.
func (d *BoundAttributeDescriptor) DictionaryKey(name string) (string, bool) {
	if d.DictionaryAttributePrefix == nil {
		return "", false
	}
	return util.TrimPrefixFold(name, *d.DictionaryAttributePrefix)
}
