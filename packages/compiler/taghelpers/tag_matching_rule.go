package taghelpers

import (
	"fmt"
	"strings"

	"rzc-go/packages/compiler/css"
	"rzc-go/packages/compiler/util"
)

// ElementCatchAllTarget is the tag name that matches every element.
const ElementCatchAllTarget = css.ElementCatchAllTarget

// TagStructure describes how an element is written.
type TagStructure int

const (
	// TagStructureUnspecified on a rule matches any structure.
	TagStructureUnspecified TagStructure = iota
	// TagStructureNormalOrSelfClosing is <tag></tag> or <tag />.
	TagStructureNormalOrSelfClosing
	// TagStructureWithoutEndTag is <tag>.
	TagStructureWithoutEndTag
)

var tagStructureNames = map[TagStructure]string{
	TagStructureUnspecified:         "Unspecified",
	TagStructureNormalOrSelfClosing: "NormalOrSelfClosing",
	TagStructureWithoutEndTag:       "WithoutEndTag",
}

func (s TagStructure) String() string {
	if name, ok := tagStructureNames[s]; ok {
		return name
	}
	return "Unspecified"
}

func (s TagStructure) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *TagStructure) UnmarshalText(text []byte) error {
	structure, ok := ParseTagStructure(string(text))
	if !ok {
		return fmt.Errorf("unknown tag structure %q", text)
	}
	*s = structure
	return nil
}

// ParseTagStructure maps a structure name to its value, case-insensitively.
func ParseTagStructure(name string) (TagStructure, bool) {
	for s, n := range tagStructureNames {
		if strings.EqualFold(n, name) {
			return s, true
		}
	}
	return TagStructureUnspecified, false
}

// Attribute is an attribute of an element being matched.
type Attribute struct {
	Name  string
	Value string
}

// TagMatchingRule is one conjunctive condition under which a tag helper
// applies to an element.
type TagMatchingRule struct {
	TagName      string
	ParentTag    *string
	TagStructure TagStructure
	Attributes   []*RequiredAttributeDescriptor
	Diagnostics  []*util.Diagnostic
}

// HasErrors reports whether the rule or any of its required attributes
// carries an error diagnostic.
func (r *TagMatchingRule) HasErrors() bool {
	if util.HasErrors(r.Diagnostics) {
		return true
	}
	for _, a := range r.Attributes {
		if a.HasErrors() {
			return true
		}
	}
	return false
}

// GetAllDiagnostics returns the rule diagnostics followed by those of its
// required attributes.
func (r *TagMatchingRule) GetAllDiagnostics() []*util.Diagnostic {
	var diagnostics []*util.Diagnostic
	diagnostics = append(diagnostics, r.Diagnostics...)
	for _, a := range r.Attributes {
		diagnostics = append(diagnostics, a.Diagnostics...)
	}
	return diagnostics
}

// MatchesTag reports whether tagName satisfies the rule's tag name.
func (r *TagMatchingRule) MatchesTag(tagName string) bool {
	return r.TagName == ElementCatchAllTarget || strings.EqualFold(r.TagName, tagName)
}

// MatchesParent reports whether parentTagName satisfies the rule's parent
// constraint. A rule without one matches any parent, including none.
func (r *TagMatchingRule) MatchesParent(parentTagName *string) bool {
	if r.ParentTag == nil {
		return true
	}
	return parentTagName != nil && strings.EqualFold(*r.ParentTag, *parentTagName)
}

// MatchesStructure reports whether structure satisfies the rule.
func (r *TagMatchingRule) MatchesStructure(structure TagStructure) bool {
	return r.TagStructure == TagStructureUnspecified || r.TagStructure == structure
}

// MatchesAttributes reports whether every required attribute is satisfied by
// at least one of attributes.
func (r *TagMatchingRule) MatchesAttributes(attributes []Attribute) bool {
	for _, required := range r.Attributes {
		found := false
		for _, attr := range attributes {
			if required.IsMatch(attr.Name, attr.Value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IsMatch reports whether an element satisfies all parts of the rule. A rule
// with errors never matches.
func (r *TagMatchingRule) IsMatch(tagName string, parentTagName *string, structure TagStructure, attributes []Attribute) bool {
	if r.HasErrors() {
		return false
	}
	return r.MatchesTag(tagName) &&
		r.MatchesParent(parentTagName) &&
		r.MatchesStructure(structure) &&
		r.MatchesAttributes(attributes)
}

// RequiredAttributesString returns the rule's required attributes in selector
// syntax.
func (r *TagMatchingRule) RequiredAttributesString() string {
	selectors := make([]*css.AttributeSelector, len(r.Attributes))
	for i, a := range r.Attributes {
		selectors[i] = a.Selector()
	}
	return css.FormatRequiredAttributes(selectors)
}
