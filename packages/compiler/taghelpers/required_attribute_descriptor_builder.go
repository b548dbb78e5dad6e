package taghelpers

import (
	"slices"

	"rzc-go/packages/compiler/css"
	"rzc-go/packages/compiler/util"
)

// RequiredAttributeDescriptorBuilder builds a RequiredAttributeDescriptor.
type RequiredAttributeDescriptorBuilder struct {
	name            string
	nameComparison  NameComparisonMode
	value           string
	valueComparison ValueComparisonMode
	diagnostics     []*util.Diagnostic
}

func NewRequiredAttributeDescriptorBuilder() *RequiredAttributeDescriptorBuilder {
	return &RequiredAttributeDescriptorBuilder{}
}

func (b *RequiredAttributeDescriptorBuilder) Name(name string) *RequiredAttributeDescriptorBuilder {
	b.name = name
	return b
}

func (b *RequiredAttributeDescriptorBuilder) NameComparisonMode(mode NameComparisonMode) *RequiredAttributeDescriptorBuilder {
	b.nameComparison = mode
	return b
}

func (b *RequiredAttributeDescriptorBuilder) Value(value string) *RequiredAttributeDescriptorBuilder {
	b.value = value
	return b
}

func (b *RequiredAttributeDescriptorBuilder) ValueComparisonMode(mode ValueComparisonMode) *RequiredAttributeDescriptorBuilder {
	b.valueComparison = mode
	return b
}

func (b *RequiredAttributeDescriptorBuilder) AddDiagnostic(diagnostic *util.Diagnostic) *RequiredAttributeDescriptorBuilder {
	b.diagnostics = append(b.diagnostics, diagnostic)
	return b
}

// Build validates the name and returns the descriptor. Invalid names are
// reported as diagnostics on the descriptor.
func (b *RequiredAttributeDescriptorBuilder) Build() *RequiredAttributeDescriptor {
	diagnostics := slices.Clone(b.diagnostics)
	diagnostics = append(diagnostics, css.ValidateName(b.name, css.TargetAttribute)...)

	return &RequiredAttributeDescriptor{
		Name:            b.name,
		NameComparison:  b.nameComparison,
		Value:           b.value,
		ValueComparison: b.valueComparison,
		Diagnostics:     diagnostics,
	}
}
