package taghelpers

import (
	"maps"
	"slices"

	"rzc-go/packages/compiler/errors"
	"rzc-go/packages/compiler/util"
)

// TagHelperDescriptorBuilder builds a TagHelperDescriptor for the type
// typeName declared in assemblyName.
type TagHelperDescriptorBuilder struct {
	typeName     string
	assemblyName string

	name             string
	displayName      string
	documentation    string
	tagOutputHint    *string
	rules            []*TagMatchingRule
	boundAttributes  []*BoundAttributeDescriptor
	allowedChildTags []string
	metadata         map[string]string
	diagnostics      []*util.Diagnostic
}

// NewTagHelperDescriptorBuilder creates a builder whose name and display name
// default to typeName.
func NewTagHelperDescriptorBuilder(typeName, assemblyName string) *TagHelperDescriptorBuilder {
	return &TagHelperDescriptorBuilder{
		typeName:     typeName,
		assemblyName: assemblyName,
		name:         typeName,
		displayName:  typeName,
		metadata:     map[string]string{},
	}
}

func (b *TagHelperDescriptorBuilder) Name(name string) *TagHelperDescriptorBuilder {
	b.name = name
	return b
}

func (b *TagHelperDescriptorBuilder) DisplayName(displayName string) *TagHelperDescriptorBuilder {
	b.displayName = displayName
	return b
}

func (b *TagHelperDescriptorBuilder) Documentation(documentation string) *TagHelperDescriptorBuilder {
	b.documentation = documentation
	return b
}

func (b *TagHelperDescriptorBuilder) TagOutputHint(hint string) *TagHelperDescriptorBuilder {
	b.tagOutputHint = &hint
	return b
}

// AllowChildTag restricts children to the allowed tags. Without a call the
// descriptor accepts any child.
func (b *TagHelperDescriptorBuilder) AllowChildTag(tagName string) *TagHelperDescriptorBuilder {
	b.allowedChildTags = append(b.allowedChildTags, tagName)
	return b
}

func (b *TagHelperDescriptorBuilder) AddMetadata(key, value string) *TagHelperDescriptorBuilder {
	b.metadata[key] = value
	return b
}

func (b *TagHelperDescriptorBuilder) AddDiagnostic(diagnostic *util.Diagnostic) *TagHelperDescriptorBuilder {
	b.diagnostics = append(b.diagnostics, diagnostic)
	return b
}

// BindAttribute adds a bound attribute configured by configure.
func (b *TagHelperDescriptorBuilder) BindAttribute(configure func(*BoundAttributeDescriptorBuilder)) *TagHelperDescriptorBuilder {
	errors.PanicIfNil(configure == nil, "configure")

	builder := NewBoundAttributeDescriptorBuilder(b.typeName)
	configure(builder)
	b.boundAttributes = append(b.boundAttributes, builder.Build())
	return b
}

// AddBoundAttribute adds an already built bound attribute.
func (b *TagHelperDescriptorBuilder) AddBoundAttribute(attribute *BoundAttributeDescriptor) *TagHelperDescriptorBuilder {
	errors.PanicIfNil(attribute == nil, "attribute")

	b.boundAttributes = append(b.boundAttributes, attribute)
	return b
}

// TagMatchingRule adds a rule configured by configure.
func (b *TagHelperDescriptorBuilder) TagMatchingRule(configure func(*TagMatchingRuleBuilder)) *TagHelperDescriptorBuilder {
	errors.PanicIfNil(configure == nil, "configure")

	builder := NewTagMatchingRuleBuilder()
	configure(builder)
	b.rules = append(b.rules, builder.Build())
	return b
}

func (b *TagHelperDescriptorBuilder) Build() *TagHelperDescriptor {
	metadata := maps.Clone(b.metadata)
	metadata[TypeNameKey] = b.typeName

	var tagOutputHint *string
	if b.tagOutputHint != nil {
		tagOutputHint = util.StringPtr(*b.tagOutputHint)
	}

	return &TagHelperDescriptor{
		Kind:             DescriptorKind,
		TypeName:         b.typeName,
		AssemblyName:     b.assemblyName,
		Name:             b.name,
		DisplayName:      b.displayName,
		Documentation:    b.documentation,
		TagOutputHint:    tagOutputHint,
		TagMatchingRules: slices.Clone(b.rules),
		BoundAttributes:  slices.Clone(b.boundAttributes),
		AllowedChildTags: slices.Clone(b.allowedChildTags),
		Metadata:         metadata,
		Diagnostics:      slices.Clone(b.diagnostics),
	}
}
