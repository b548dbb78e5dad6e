package taghelpers

import (
	"slices"

	"rzc-go/packages/compiler/css"
	"rzc-go/packages/compiler/errors"
	"rzc-go/packages/compiler/util"
)

// TagMatchingRuleBuilder builds a TagMatchingRule.
type TagMatchingRuleBuilder struct {
	tagName      string
	parentTag    *string
	tagStructure TagStructure
	attributes   []*RequiredAttributeDescriptor
	diagnostics  []*util.Diagnostic
}

func NewTagMatchingRuleBuilder() *TagMatchingRuleBuilder {
	return &TagMatchingRuleBuilder{}
}

func (b *TagMatchingRuleBuilder) RequireTagName(tagName string) *TagMatchingRuleBuilder {
	b.tagName = tagName
	return b
}

func (b *TagMatchingRuleBuilder) RequireParentTag(parentTag string) *TagMatchingRuleBuilder {
	b.parentTag = &parentTag
	return b
}

func (b *TagMatchingRuleBuilder) RequireTagStructure(tagStructure TagStructure) *TagMatchingRuleBuilder {
	b.tagStructure = tagStructure
	return b
}

// RequireAttribute adds a required attribute configured by configure.
func (b *TagMatchingRuleBuilder) RequireAttribute(configure func(*RequiredAttributeDescriptorBuilder)) *TagMatchingRuleBuilder {
	errors.PanicIfNil(configure == nil, "configure")

	builder := NewRequiredAttributeDescriptorBuilder()
	configure(builder)
	b.attributes = append(b.attributes, builder.Build())
	return b
}

// RequireAttributes adds the required attributes of a selector string such as
// "[href^='http'],disabled". When the string does not parse, the parser
// diagnostics are recorded on the rule and none of its selectors are added.
func (b *TagMatchingRuleBuilder) RequireAttributes(selectors string) *TagMatchingRuleBuilder {
	parsed, diagnostics, ok := css.ParseRequiredAttributes(selectors)
	if !ok {
		b.diagnostics = append(b.diagnostics, diagnostics...)
		return b
	}

	for _, selector := range parsed {
		b.attributes = append(b.attributes, NewRequiredAttributeDescriptorBuilder().
			Name(selector.Name).
			NameComparisonMode(selector.NameComparison).
			Value(selector.Value).
			ValueComparisonMode(selector.ValueComparison).
			Build())
	}
	return b
}

func (b *TagMatchingRuleBuilder) AddDiagnostic(diagnostic *util.Diagnostic) *TagMatchingRuleBuilder {
	b.diagnostics = append(b.diagnostics, diagnostic)
	return b
}

// Build validates the tag and parent tag names and returns the rule.
func (b *TagMatchingRuleBuilder) Build() *TagMatchingRule {
	diagnostics := slices.Clone(b.diagnostics)
	diagnostics = append(diagnostics, css.ValidateName(b.tagName, css.TargetTag)...)

	var parentTag *string
	if b.parentTag != nil {
		diagnostics = append(diagnostics, css.ValidateName(*b.parentTag, css.TargetParentTag)...)
		parentTag = util.StringPtr(*b.parentTag)
	}

	return &TagMatchingRule{
		TagName:      b.tagName,
		ParentTag:    parentTag,
		TagStructure: b.tagStructure,
		Attributes:   slices.Clone(b.attributes),
		Diagnostics:  diagnostics,
	}
}
