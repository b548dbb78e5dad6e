package taghelpers

import (
	"fmt"
	"maps"
	"slices"

	"rzc-go/packages/compiler/util"
)

var primitiveDisplayTypeNames = map[string]string{
	"System.Byte":    "byte",
	"System.SByte":   "sbyte",
	"System.Int32":   "int",
	"System.UInt32":  "uint",
	"System.Int16":   "short",
	"System.UInt16":  "ushort",
	"System.Int64":   "long",
	"System.UInt64":  "ulong",
	"System.Single":  "float",
	"System.Double":  "double",
	"System.Char":    "char",
	"System.Boolean": "bool",
	"System.Object":  "object",
	"System.String":  "string",
	"System.Decimal": "decimal",
}

var DiagnosticMissingDictionaryValueType = util.NewDiagnosticDescriptor(
	"RZ3101",
	"Bound attribute '%s' has a dictionary attribute prefix but no dictionary value type.",
	util.DiagnosticSeverityError)

func isStringTypeName(typeName string) bool {
	return typeName == "System.String" || typeName == "string"
}

// BoundAttributeDescriptorBuilder builds a BoundAttributeDescriptor for a
// property of containingTypeName.
type BoundAttributeDescriptorBuilder struct {
	containingTypeName string

	name                      string
	propertyName              string
	typeName                  string
	isEnum                    bool
	dictionaryAttributePrefix *string
	dictionaryValueTypeName   string
	documentation             string
	displayName               *string
	metadata                  map[string]string
	diagnostics               []*util.Diagnostic
}

func NewBoundAttributeDescriptorBuilder(containingTypeName string) *BoundAttributeDescriptorBuilder {
	return &BoundAttributeDescriptorBuilder{
		containingTypeName: containingTypeName,
		metadata:           map[string]string{},
	}
}

func (b *BoundAttributeDescriptorBuilder) Name(name string) *BoundAttributeDescriptorBuilder {
	b.name = name
	return b
}

func (b *BoundAttributeDescriptorBuilder) PropertyName(propertyName string) *BoundAttributeDescriptorBuilder {
	b.propertyName = propertyName
	return b
}

func (b *BoundAttributeDescriptorBuilder) TypeName(typeName string) *BoundAttributeDescriptorBuilder {
	b.typeName = typeName
	return b
}

func (b *BoundAttributeDescriptorBuilder) AsEnum() *BoundAttributeDescriptorBuilder {
	b.isEnum = true
	return b
}

// AsDictionary makes the descriptor bind every attribute starting with
// attributeNamePrefix, each to an entry of type valueTypeName.
func (b *BoundAttributeDescriptorBuilder) AsDictionary(attributeNamePrefix, valueTypeName string) *BoundAttributeDescriptorBuilder {
	b.dictionaryAttributePrefix = &attributeNamePrefix
	b.dictionaryValueTypeName = valueTypeName
	return b
}

func (b *BoundAttributeDescriptorBuilder) Documentation(documentation string) *BoundAttributeDescriptorBuilder {
	b.documentation = documentation
	return b
}

// DisplayName overrides the computed "<type> <containing type>.<property>" display name.
func (b *BoundAttributeDescriptorBuilder) DisplayName(displayName string) *BoundAttributeDescriptorBuilder {
	b.displayName = &displayName
	return b
}

func (b *BoundAttributeDescriptorBuilder) AddMetadata(key, value string) *BoundAttributeDescriptorBuilder {
	b.metadata[key] = value
	return b
}

func (b *BoundAttributeDescriptorBuilder) AddDiagnostic(diagnostic *util.Diagnostic) *BoundAttributeDescriptorBuilder {
	b.diagnostics = append(b.diagnostics, diagnostic)
	return b
}

func (b *BoundAttributeDescriptorBuilder) Build() *BoundAttributeDescriptor {
	displayName := util.StringValue(b.displayName)
	if b.displayName == nil {
		simpleName, ok := primitiveDisplayTypeNames[b.typeName]
		if !ok {
			simpleName = b.typeName
		}
		displayName = fmt.Sprintf("%s %s.%s", simpleName, b.containingTypeName, b.propertyName)
	}

	metadata := maps.Clone(b.metadata)
	metadata[PropertyNameKey] = b.propertyName

	diagnostics := slices.Clone(b.diagnostics)
	var prefix *string
	if b.dictionaryAttributePrefix != nil {
		prefix = util.StringPtr(*b.dictionaryAttributePrefix)
		if b.dictionaryValueTypeName == "" {
			diagnostics = append(diagnostics, util.NewDiagnostic(
				DiagnosticMissingDictionaryValueType,
				util.SourceSpanUndefined,
				displayName))
		}
	}

	return &BoundAttributeDescriptor{
		Kind:                      DescriptorKind,
		Name:                      b.name,
		PropertyName:              b.propertyName,
		TypeName:                  b.typeName,
		IsEnum:                    b.isEnum,
		IsStringProperty:          isStringTypeName(b.typeName),
		DictionaryAttributePrefix: prefix,
		DictionaryValueTypeName:   b.dictionaryValueTypeName,
		IsKeyValueStringProperty:  isStringTypeName(b.dictionaryValueTypeName),
		Documentation:             b.documentation,
		DisplayName:               displayName,
		Metadata:                  metadata,
		Diagnostics:               diagnostics,
	}
}
