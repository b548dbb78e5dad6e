package taghelpers

import (
	"slices"

	"rzc-go/packages/compiler/util"
)

// TagHelperBinder finds the tag helpers that apply to an element. Descriptors
// are indexed by the tag names their rules target so that a lookup only
// evaluates rules that can match.
type TagHelperBinder struct {
	tagHelperPrefix string
	descriptors     []*TagHelperDescriptor

	// elementMap holds, per folded tag name, the indexes of descriptors with a
	// rule targeting that name.
	elementMap map[string][]int
	catchAll   []int
}

// NewTagHelperBinder creates a binder over descriptors. When tagHelperPrefix is
// not empty only elements whose name starts with it are bound, and the prefix
// is removed before rules are evaluated.
func NewTagHelperBinder(tagHelperPrefix string, descriptors []*TagHelperDescriptor) *TagHelperBinder {
	b := &TagHelperBinder{
		tagHelperPrefix: tagHelperPrefix,
		descriptors:     slices.Clone(descriptors),
		elementMap:      map[string][]int{},
	}

	for i, descriptor := range b.descriptors {
		seen := map[string]bool{}
		catchAll := false
		for _, rule := range descriptor.TagMatchingRules {
			if rule.TagName == ElementCatchAllTarget {
				catchAll = true
				continue
			}
			key := util.FoldCase(rule.TagName)
			if !seen[key] {
				seen[key] = true
				b.elementMap[key] = append(b.elementMap[key], i)
			}
		}
		if catchAll {
			b.catchAll = append(b.catchAll, i)
		}
	}
	return b
}

// TagHelperPrefix returns the prefix elements must carry to be bound.
func (b *TagHelperBinder) TagHelperPrefix() string {
	return b.tagHelperPrefix
}

// Descriptors returns the descriptors the binder was created with.
func (b *TagHelperBinder) Descriptors() []*TagHelperDescriptor {
	return b.descriptors
}

// GetBinding returns the tag helpers applying to an element, or nil when none
// do. parentTagName is nil for a root element.
func (b *TagHelperBinder) GetBinding(tagName string, attributes []Attribute, parentTagName *string, structure TagStructure) *TagHelperBinding {
	tagNameWithoutPrefix, ok := b.stripPrefix(tagName)
	if !ok {
		return nil
	}

	var parentWithoutPrefix *string
	if parentTagName != nil {
		parent := *parentTagName
		if stripped, ok := b.stripPrefix(parent); ok {
			parent = stripped
		}
		parentWithoutPrefix = &parent
	}

	candidates := b.candidates(tagNameWithoutPrefix)
	if len(candidates) == 0 {
		return nil
	}

	var matches []*TagHelperMatch
	for _, i := range candidates {
		descriptor := b.descriptors[i]
		var rules []*TagMatchingRule
		for _, rule := range descriptor.TagMatchingRules {
			if rule.IsMatch(tagNameWithoutPrefix, parentWithoutPrefix, structure, attributes) {
				rules = append(rules, rule)
			}
		}
		if len(rules) > 0 {
			matches = append(matches, &TagHelperMatch{Descriptor: descriptor, Rules: rules})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	return &TagHelperBinding{
		TagName:         tagName,
		ParentTagName:   parentTagName,
		Attributes:      attributes,
		TagHelperPrefix: b.tagHelperPrefix,
		Matches:         matches,
	}
}

func (b *TagHelperBinder) stripPrefix(tagName string) (string, bool) {
	if b.tagHelperPrefix == "" {
		return tagName, true
	}
	rest, ok := util.TrimPrefixFold(tagName, b.tagHelperPrefix)
	if !ok || rest == "" {
		return tagName, false
	}
	return rest, true
}

// candidates returns, in declaration order, the descriptors with a rule that
// targets tagName or every element.
func (b *TagHelperBinder) candidates(tagName string) []int {
	named := b.elementMap[util.FoldCase(tagName)]
	if len(b.catchAll) == 0 {
		return named
	}
	if len(named) == 0 {
		return b.catchAll
	}

	merged := make([]int, 0, len(named)+len(b.catchAll))
	merged = append(merged, named...)
	merged = append(merged, b.catchAll...)
	slices.Sort(merged)
	return slices.Compact(merged)
}

// TagHelperMatch is a descriptor applying to an element with the rules that
// matched it.
type TagHelperMatch struct {
	Descriptor *TagHelperDescriptor
	Rules      []*TagMatchingRule
}

// AttributeBinding is a bound attribute claiming an element attribute.
type AttributeBinding struct {
	Descriptor *TagHelperDescriptor
	Attribute  *BoundAttributeDescriptor
}

// TagHelperBinding is the result of binding one element.
type TagHelperBinding struct {
	TagName         string
	ParentTagName   *string
	Attributes      []Attribute
	TagHelperPrefix string

	// Matches are in descriptor declaration order.
	Matches []*TagHelperMatch
}

// Descriptors returns the matched descriptors in declaration order.
func (b *TagHelperBinding) Descriptors() []*TagHelperDescriptor {
	descriptors := make([]*TagHelperDescriptor, len(b.Matches))
	for i, m := range b.Matches {
		descriptors[i] = m.Descriptor
	}
	return descriptors
}

// GetBoundRules returns the rules of descriptor that matched, or nil.
func (b *TagHelperBinding) GetBoundRules(descriptor *TagHelperDescriptor) []*TagMatchingRule {
	for _, m := range b.Matches {
		if m.Descriptor == descriptor {
			return m.Rules
		}
	}
	return nil
}

// BoundAttributes returns, per matched descriptor, the first bound attribute
// that claims attributeName. When several prefixes could claim a name, the one
// declared first wins.
func (b *TagHelperBinding) BoundAttributes(attributeName string) []AttributeBinding {
	var bindings []AttributeBinding
	for _, m := range b.Matches {
		for _, attr := range m.Descriptor.BoundAttributes {
			if attr.CanMatchName(attributeName) {
				bindings = append(bindings, AttributeBinding{Descriptor: m.Descriptor, Attribute: attr})
				break
			}
		}
	}
	return bindings
}

// IsAttributeMatch reports whether any matched descriptor binds attributeName.
func (b *TagHelperBinding) IsAttributeMatch(attributeName string) bool {
	return len(b.BoundAttributes(attributeName)) > 0
}

// IsChildAllowed reports whether every matched descriptor allows tagName as a
// child element.
func (b *TagHelperBinding) IsChildAllowed(tagName string) bool {
	for _, m := range b.Matches {
		if !m.Descriptor.AllowsChild(tagName) {
			return false
		}
	}
	return true
}
