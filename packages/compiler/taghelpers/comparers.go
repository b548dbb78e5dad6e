package taghelpers

import (
	"maps"
	"strings"

	"rzc-go/packages/compiler/util"
)

// Comparer is an equality relation over T with a hash consistent with it:
// Equal(x, y) implies Hash(x) == Hash(y).
type Comparer[T any] interface {
	Equal(x, y T) bool
	Hash(x T) uint64
}

// Distinct returns items without repeats under comparer, keeping the first
// of each group of equal items in the original order.
func Distinct[T any](items []T, comparer Comparer[T]) []T {
	buckets := make(map[uint64][]T, len(items))
	result := make([]T, 0, len(items))

outer:
	for _, item := range items {
		h := comparer.Hash(item)
		for _, seen := range buckets[h] {
			if comparer.Equal(seen, item) {
				continue outer
			}
		}
		buckets[h] = append(buckets[h], item)
		result = append(result, item)
	}
	return result
}

func namesEqual(x, y string, caseSensitive bool) bool {
	if caseSensitive {
		return x == y
	}
	return strings.EqualFold(x, y)
}

func optionalNamesEqual(x, y *string, caseSensitive bool) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return namesEqual(*x, *y, caseSensitive)
}

func sequencesEqual[T any](x, y []T, equal func(x, y T) bool) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !equal(x[i], y[i]) {
			return false
		}
	}
	return true
}

// RequiredAttributeDescriptorComparer compares required attributes. Names
// ignore case unless the comparer is case-sensitive; values never do.
type RequiredAttributeDescriptorComparer struct {
	caseSensitive bool
}

var (
	DefaultRequiredAttributeDescriptorComparer       = &RequiredAttributeDescriptorComparer{}
	CaseSensitiveRequiredAttributeDescriptorComparer = &RequiredAttributeDescriptorComparer{caseSensitive: true}
)

func (c *RequiredAttributeDescriptorComparer) Equal(x, y *RequiredAttributeDescriptor) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return x.NameComparison == y.NameComparison &&
		x.ValueComparison == y.ValueComparison &&
		namesEqual(x.Name, y.Name, c.caseSensitive) &&
		x.Value == y.Value &&
		util.DiagnosticsEqual(x.Diagnostics, y.Diagnostics)
}

func (c *RequiredAttributeDescriptorComparer) Hash(x *RequiredAttributeDescriptor) uint64 {
	h := newHasher()
	c.write(h, x)
	return h.sum()
}

func (c *RequiredAttributeDescriptorComparer) write(h *hasher, x *RequiredAttributeDescriptor) {
	h.writeBool(x != nil)
	if x == nil {
		return
	}
	h.writeInt(int(x.NameComparison))
	h.writeInt(int(x.ValueComparison))
	h.writeName(x.Name, c.caseSensitive)
	h.writeString(x.Value)
}

// TagMatchingRuleComparer compares rules field by field, with the tag and
// parent tag names following the comparer's case sensitivity.
type TagMatchingRuleComparer struct {
	caseSensitive bool
	attributes    *RequiredAttributeDescriptorComparer
}

var (
	DefaultTagMatchingRuleComparer = &TagMatchingRuleComparer{
		attributes: DefaultRequiredAttributeDescriptorComparer,
	}
	CaseSensitiveTagMatchingRuleComparer = &TagMatchingRuleComparer{
		caseSensitive: true,
		attributes:    CaseSensitiveRequiredAttributeDescriptorComparer,
	}
)

func (c *TagMatchingRuleComparer) Equal(x, y *TagMatchingRule) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return namesEqual(x.TagName, y.TagName, c.caseSensitive) &&
		optionalNamesEqual(x.ParentTag, y.ParentTag, c.caseSensitive) &&
		x.TagStructure == y.TagStructure &&
		sequencesEqual(x.Attributes, y.Attributes, c.attributes.Equal) &&
		util.DiagnosticsEqual(x.Diagnostics, y.Diagnostics)
}

func (c *TagMatchingRuleComparer) Hash(x *TagMatchingRule) uint64 {
	h := newHasher()
	c.write(h, x)
	return h.sum()
}

func (c *TagMatchingRuleComparer) write(h *hasher, x *TagMatchingRule) {
	h.writeBool(x != nil)
	if x == nil {
		return
	}
	h.writeName(x.TagName, c.caseSensitive)
	h.writeOptionalName(x.ParentTag, c.caseSensitive)
	h.writeInt(int(x.TagStructure))
	h.writeInt(len(x.Attributes))
	for _, a := range x.Attributes {
		c.attributes.write(h, a)
	}
	h.writeDiagnostics(x.Diagnostics)
}

// BoundAttributeDescriptorComparer compares bound attributes. Name and
// dictionary prefix follow the comparer's case sensitivity; type names,
// documentation and display names are always compared ordinally.
type BoundAttributeDescriptorComparer struct {
	caseSensitive bool
}

var (
	DefaultBoundAttributeDescriptorComparer       = &BoundAttributeDescriptorComparer{}
	CaseSensitiveBoundAttributeDescriptorComparer = &BoundAttributeDescriptorComparer{caseSensitive: true}
)

func (c *BoundAttributeDescriptorComparer) Equal(x, y *BoundAttributeDescriptor) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return x.Kind == y.Kind &&
		x.IsEnum == y.IsEnum &&
		x.IsStringProperty == y.IsStringProperty &&
		x.IsKeyValueStringProperty == y.IsKeyValueStringProperty &&
		namesEqual(x.Name, y.Name, c.caseSensitive) &&
		optionalNamesEqual(x.DictionaryAttributePrefix, y.DictionaryAttributePrefix, c.caseSensitive) &&
		x.PropertyName == y.PropertyName &&
		x.TypeName == y.TypeName &&
		x.DictionaryValueTypeName == y.DictionaryValueTypeName &&
		x.Documentation == y.Documentation &&
		x.DisplayName == y.DisplayName &&
		util.DiagnosticsEqual(x.Diagnostics, y.Diagnostics) &&
		maps.Equal(x.Metadata, y.Metadata)
}

func (c *BoundAttributeDescriptorComparer) Hash(x *BoundAttributeDescriptor) uint64 {
	h := newHasher()
	c.write(h, x)
	return h.sum()
}

func (c *BoundAttributeDescriptorComparer) write(h *hasher, x *BoundAttributeDescriptor) {
	h.writeBool(x != nil)
	if x == nil {
		return
	}
	h.writeString(x.Kind)
	h.writeBool(x.IsEnum)
	h.writeBool(x.IsKeyValueStringProperty)
	h.writeName(x.Name, c.caseSensitive)
	h.writeOptionalName(x.DictionaryAttributePrefix, c.caseSensitive)
	h.writeString(x.TypeName)
	h.writeString(x.DictionaryValueTypeName)
	h.writeString(x.DisplayName)
	h.writeMetadata(x.Metadata)
}

// TagHelperDescriptorComparer compares tag helpers including their rules,
// bound attributes, allowed children, metadata and diagnostics.
type TagHelperDescriptorComparer struct {
	caseSensitive   bool
	rules           *TagMatchingRuleComparer
	boundAttributes *BoundAttributeDescriptorComparer
}

var (
	DefaultTagHelperDescriptorComparer = &TagHelperDescriptorComparer{
		rules:           DefaultTagMatchingRuleComparer,
		boundAttributes: DefaultBoundAttributeDescriptorComparer,
	}
	CaseSensitiveTagHelperDescriptorComparer = &TagHelperDescriptorComparer{
		caseSensitive:   true,
		rules:           CaseSensitiveTagMatchingRuleComparer,
		boundAttributes: CaseSensitiveBoundAttributeDescriptorComparer,
	}
)

func (c *TagHelperDescriptorComparer) Equal(x, y *TagHelperDescriptor) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return x.Kind == y.Kind &&
		x.TypeName == y.TypeName &&
		x.AssemblyName == y.AssemblyName &&
		namesEqual(x.Name, y.Name, c.caseSensitive) &&
		x.DisplayName == y.DisplayName &&
		x.Documentation == y.Documentation &&
		optionalNamesEqual(x.TagOutputHint, y.TagOutputHint, c.caseSensitive) &&
		sequencesEqual(x.TagMatchingRules, y.TagMatchingRules, c.rules.Equal) &&
		sequencesEqual(x.BoundAttributes, y.BoundAttributes, c.boundAttributes.Equal) &&
		c.allowedChildTagsEqual(x.AllowedChildTags, y.AllowedChildTags) &&
		util.DiagnosticsEqual(x.Diagnostics, y.Diagnostics) &&
		maps.Equal(x.Metadata, y.Metadata)
}

func (c *TagHelperDescriptorComparer) allowedChildTagsEqual(x, y []string) bool {
	if (x == nil) != (y == nil) {
		return false
	}
	return sequencesEqual(x, y, func(a, b string) bool {
		return namesEqual(a, b, c.caseSensitive)
	})
}

func (c *TagHelperDescriptorComparer) Hash(x *TagHelperDescriptor) uint64 {
	h := newHasher()
	h.writeBool(x != nil)
	if x == nil {
		return h.sum()
	}
	h.writeString(x.Kind)
	h.writeString(x.TypeName)
	h.writeString(x.AssemblyName)
	h.writeName(x.Name, c.caseSensitive)
	h.writeOptionalName(x.TagOutputHint, c.caseSensitive)

	h.writeInt(len(x.TagMatchingRules))
	for _, rule := range x.TagMatchingRules {
		c.rules.write(h, rule)
	}
	h.writeInt(len(x.BoundAttributes))
	for _, attr := range x.BoundAttributes {
		c.boundAttributes.write(h, attr)
	}

	h.writeBool(x.AllowedChildTags != nil)
	h.writeInt(len(x.AllowedChildTags))
	for _, tag := range x.AllowedChildTags {
		h.writeName(tag, c.caseSensitive)
	}
	h.writeMetadata(x.Metadata)
	return h.sum()
}
