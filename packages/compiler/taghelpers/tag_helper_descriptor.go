package taghelpers

import (
	"strings"

	"rzc-go/packages/compiler/util"
)

// TagHelperDescriptor describes one tag helper: where it applies and which
// attributes it binds. Descriptors are immutable once built; callers must not
// modify the slices or maps they expose.
type TagHelperDescriptor struct {
	Kind             string
	TypeName         string
	AssemblyName     string
	Name             string
	DisplayName      string
	Documentation    string
	TagOutputHint    *string
	TagMatchingRules []*TagMatchingRule
	BoundAttributes  []*BoundAttributeDescriptor
	// AllowedChildTags is nil when children are unrestricted.
	AllowedChildTags []string
	Metadata         map[string]string
	Diagnostics      []*util.Diagnostic
}

// GetAllDiagnostics returns the descriptor's own diagnostics followed by those
// of its rules, their required attributes, and its bound attributes.
func (d *TagHelperDescriptor) GetAllDiagnostics() []*util.Diagnostic {
	var diagnostics []*util.Diagnostic
	diagnostics = append(diagnostics, d.Diagnostics...)
	for _, rule := range d.TagMatchingRules {
		diagnostics = append(diagnostics, rule.GetAllDiagnostics()...)
	}
	for _, attr := range d.BoundAttributes {
		diagnostics = append(diagnostics, attr.Diagnostics...)
	}
	return diagnostics
}

// HasErrors reports whether any diagnostic reachable from the descriptor is an error.
func (d *TagHelperDescriptor) HasErrors() bool {
	return util.HasErrors(d.GetAllDiagnostics())
}

// AllowsChild reports whether tagName may appear as a child element.
func (d *TagHelperDescriptor) AllowsChild(tagName string) bool {
	if d.AllowedChildTags == nil {
		return true
	}
	for _, allowed := range d.AllowedChildTags {
		if strings.EqualFold(allowed, tagName) {
			return true
		}
	}
	return false
}

func (d *TagHelperDescriptor) String() string {
	return d.DisplayName
}
