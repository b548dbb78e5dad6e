package discovery

import (
	"strings"

	"github.com/sirupsen/logrus"

	"rzc-go/packages/compiler/config"
	"rzc-go/packages/compiler/core"
	"rzc-go/packages/compiler/css"
	"rzc-go/packages/compiler/log"
	"rzc-go/packages/compiler/taghelpers"
	"rzc-go/packages/compiler/util"
)

// Factory creates the tag helper descriptors of a single type.
type Factory struct {
	config *config.CompilerConfig
	logger logrus.FieldLogger
}

// NewFactory creates a factory. A nil cfg means the default configuration and
// a nil logger discards output.
func NewFactory(cfg *config.CompilerConfig, logger logrus.FieldLogger) *Factory {
	if cfg == nil {
		cfg = config.NewCompilerConfig()
	}
	return &Factory{
		config: cfg,
		logger: log.OrDiscard(logger),
	}
}

// Config returns the configuration the factory was created with.
func (f *Factory) Config() *config.CompilerConfig {
	return f.config
}

// typeParts holds what every descriptor variant of a type shares.
type typeParts struct {
	boundAttributes  []*taghelpers.BoundAttributeDescriptor
	allowedChildTags []string
	tagOutputHint    *string
	diagnostics      []*util.Diagnostic
}

// CreateDescriptors returns the descriptors for t: one per HtmlTargetElement
// annotation, or a single descriptor targeting the tag name derived from the
// type name. It returns nil when t is hidden from design-time tooling.
func (f *Factory) CreateDescriptors(t TypeInventory) []*taghelpers.TagHelperDescriptor {
	logger := f.logger.WithFields(logrus.Fields{
		log.FieldType:     t.TypeName,
		log.FieldAssembly: t.AssemblyName,
	})
	typeAnnotations := annotations(t.Annotations)

	var parts typeParts
	if f.config.DesignTime {
		state, err := typeAnnotations.editorBrowsableState()
		if err != nil {
			parts.diagnostics = append(parts.diagnostics, newDiagnostic(DiagnosticInvalidAnnotation, t.TypeName, err))
		} else if state == EditorBrowsableNever {
			logger.Debug("Skipping type hidden from editors")
			return nil
		}
	}

	attributes, diagnostics := f.createBoundAttributes(t, logger)
	parts.boundAttributes = attributes
	parts.diagnostics = append(parts.diagnostics, diagnostics...)

	allowed, diagnostics := f.allowedChildren(t)
	parts.allowedChildTags = allowed
	parts.diagnostics = append(parts.diagnostics, diagnostics...)

	if f.config.DesignTime {
		hint, err := typeAnnotations.outputElementHint()
		switch {
		case err != nil:
			parts.diagnostics = append(parts.diagnostics, newDiagnostic(DiagnosticInvalidAnnotation, t.TypeName, err))
		case hint != nil:
			parts.tagOutputHint = &hint.Tag
		}
	}

	var descriptors []*taghelpers.TagHelperDescriptor
	for _, annotation := range typeAnnotations {
		if annotation.Kind != AnnotationHtmlTargetElement {
			continue
		}
		var target HtmlTargetElement
		if err := decodeArgs(annotation, &target); err != nil {
			logger.WithError(err).Debug("Invalid target element")
			descriptors = append(descriptors, f.buildDescriptor(t, taghelpers.ElementCatchAllTarget, nil, newDiagnostic(DiagnosticInvalidAnnotation, t.TypeName, err), parts))
			continue
		}
		tagName := taghelpers.ElementCatchAllTarget
		if target.Tag != nil {
			tagName = *target.Tag
		}
		descriptors = append(descriptors, f.buildDescriptor(t, tagName, &target, nil, parts))
	}

	if len(descriptors) == 0 {
		descriptors = append(descriptors, f.buildDescriptor(t, f.defaultTagName(t), nil, nil, parts))
	}

	return taghelpers.Distinct(descriptors, taghelpers.DefaultTagHelperDescriptorComparer)
}

// defaultTagName strips the configured suffix from the type's simple name and
// converts the rest to kebab-case.
func (f *Factory) defaultTagName(t TypeInventory) string {
	name := t.SimpleName()
	if suffix := f.config.TagHelperNameSuffix; suffix != "" {
		if trimmed, ok := util.TrimSuffixFold(name, suffix); ok {
			name = trimmed
		}
	}
	return util.ToHtmlCase(name)
}

func (f *Factory) buildDescriptor(
	t TypeInventory,
	tagName string,
	target *HtmlTargetElement,
	targetDiagnostic *util.Diagnostic,
	parts typeParts,
) *taghelpers.TagHelperDescriptor {
	builder := taghelpers.NewTagHelperDescriptorBuilder(t.TypeName, t.AssemblyName).
		Name(tagName).
		DisplayName(t.TypeName)

	builder.TagMatchingRule(func(rule *taghelpers.TagMatchingRuleBuilder) {
		rule.RequireTagName(tagName)
		if target != nil {
			if target.ParentTag != nil {
				rule.RequireParentTag(*target.ParentTag)
			}
			rule.RequireTagStructure(target.TagStructure)
			rule.RequireAttributes(target.Attributes)
		}
		if targetDiagnostic != nil {
			rule.AddDiagnostic(targetDiagnostic)
		}
	})

	for _, attribute := range parts.boundAttributes {
		builder.AddBoundAttribute(attribute)
	}
	for _, child := range parts.allowedChildTags {
		builder.AllowChildTag(child)
	}
	if f.config.DesignTime {
		builder.Documentation(t.Documentation)
		if parts.tagOutputHint != nil {
			builder.TagOutputHint(*parts.tagOutputHint)
		}
	}
	for _, diagnostic := range parts.diagnostics {
		builder.AddDiagnostic(diagnostic)
	}
	return builder.Build()
}

// allowedChildren returns the valid RestrictChildren tags, or nil when the
// type does not restrict children or none of its entries are valid.
func (f *Factory) allowedChildren(t TypeInventory) ([]string, []*util.Diagnostic) {
	restrict, err := annotations(t.Annotations).restrictChildren()
	if err != nil {
		return nil, []*util.Diagnostic{newDiagnostic(DiagnosticInvalidAnnotation, t.TypeName, err)}
	}
	if restrict == nil {
		return nil, nil
	}

	var allowed []string
	var diagnostics []*util.Diagnostic
	for _, tag := range restrict.Tags {
		if tagDiagnostics := css.ValidateName(tag, css.TargetChildTag); len(tagDiagnostics) > 0 {
			diagnostics = append(diagnostics, tagDiagnostics...)
			continue
		}
		allowed = append(allowed, tag)
	}
	return allowed, diagnostics
}

// createBoundAttributes binds the eligible properties of t. Prefix bindings
// follow every exact-name binding. Properties with invalid names or
// annotations are left out and reported.
func (f *Factory) createBoundAttributes(t TypeInventory, logger logrus.FieldLogger) ([]*taghelpers.BoundAttributeDescriptor, []*util.Diagnostic) {
	var (
		attributes  []*taghelpers.BoundAttributeDescriptor
		indexers    []*taghelpers.BoundAttributeDescriptor
		diagnostics []*util.Diagnostic
	)

	seen := map[string]bool{}
	for i := range t.Properties {
		property := &t.Properties[i]
		propertyAnnotations := annotations(property.Annotations)
		if !property.PublicGet || propertyAnnotations.has(AnnotationHtmlAttributeNotBound) || seen[property.Name] {
			continue
		}
		seen[property.Name] = true

		propertyLogger := logger.WithField(log.FieldProperty, property.Name)
		if f.config.DesignTime {
			state, err := propertyAnnotations.editorBrowsableState()
			if err != nil {
				propertyLogger.WithError(err).Debug("Excluding property with an invalid annotation")
				diagnostics = append(diagnostics, newDiagnostic(DiagnosticInvalidAnnotation, t.TypeName+"."+property.Name, err))
				continue
			}
			if state == EditorBrowsableNever {
				propertyLogger.Debug("Skipping property hidden from editors")
				continue
			}
		}

		main, indexer, propertyDiagnostics := f.bindProperty(t, property)
		if util.HasErrors(propertyDiagnostics) {
			propertyLogger.WithField("diagnostics", len(propertyDiagnostics)).Debug("Excluding invalid property")
			diagnostics = append(diagnostics, propertyDiagnostics...)
			continue
		}
		if main != nil {
			attributes = append(attributes, main)
		}
		if indexer != nil {
			indexers = append(indexers, indexer)
		}
	}

	return append(attributes, indexers...), diagnostics
}

// bindProperty returns the exact-name and prefix bindings of a property.
// Either may be nil.
func (f *Factory) bindProperty(t TypeInventory, property *PropertyInventory) (main, indexer *taghelpers.BoundAttributeDescriptor, diagnostics []*util.Diagnostic) {
	attributeName, err := annotations(property.Annotations).attributeName()
	if err != nil {
		return nil, nil, []*util.Diagnostic{newDiagnostic(DiagnosticInvalidAnnotation, t.TypeName+"."+property.Name, err)}
	}

	hasExplicitName := attributeName != nil && attributeName.Name != ""
	name := util.ToHtmlCase(property.Name)
	if hasExplicitName {
		name = attributeName.Name
	}

	if property.PublicSet {
		diagnostics = append(diagnostics, f.validateNameOrPrefix(t, property, name, false)...)
		builder := taghelpers.NewBoundAttributeDescriptorBuilder(t.TypeName).
			Name(name).
			PropertyName(property.Name).
			TypeName(property.TypeName)
		if property.IsEnum {
			builder.AsEnum()
		}
		if f.config.DesignTime {
			builder.Documentation(property.Documentation)
		}
		main = builder.Build()
	} else if hasExplicitName && !property.IsStringKeyedDictionary() {
		// A setter-less dictionary still binds through its prefix.
		diagnostics = append(diagnostics, newDiagnostic(
			DiagnosticAttributeNameWithoutSetter,
			t.TypeName, property.Name, AnnotationHtmlAttributeName, "Name"))
	}

	prefixSet := attributeName != nil && attributeName.DictionaryAttributePrefixSet
	switch {
	case !property.IsStringKeyedDictionary():
		if attributeName != nil && attributeName.DictionaryAttributePrefix != nil {
			diagnostics = append(diagnostics, newDiagnostic(
				DiagnosticPrefixWithoutDictionary,
				t.TypeName, property.Name, AnnotationHtmlAttributeName, "DictionaryAttributePrefix", dictionaryInterfaceName))
		}
	case !property.PublicSet && attributeName != nil && !prefixSet:
		diagnostics = append(diagnostics, newDiagnostic(
			DiagnosticPrefixRequiredWithoutSetter,
			t.TypeName, property.Name, AnnotationHtmlAttributeName, "DictionaryAttributePrefix", dictionaryInterfaceName))
	default:
		prefix := util.StringPtr(name + "-")
		if prefixSet {
			// An explicit null prefix turns prefix binding off.
			prefix = attributeName.DictionaryAttributePrefix
		}
		if prefix == nil {
			break
		}
		diagnostics = append(diagnostics, f.validateNameOrPrefix(t, property, *prefix, true)...)
		builder := taghelpers.NewBoundAttributeDescriptorBuilder(t.TypeName).
			Name(*prefix).
			PropertyName(property.Name).
			TypeName(property.TypeName).
			AsDictionary(*prefix, property.Dictionary.ValueTypeName)
		if f.config.DesignTime {
			builder.Documentation(property.Documentation)
		}
		indexer = builder.Build()
	}

	return main, indexer, diagnostics
}

// validateNameOrPrefix checks an attribute name, or a dictionary prefix when
// isPrefix is set. An empty prefix is valid and binds every attribute.
func (f *Factory) validateNameOrPrefix(t TypeInventory, property *PropertyInventory, value string, isPrefix bool) []*util.Diagnostic {
	kind := "name"
	if isPrefix {
		kind = "prefix"
	}

	if value == "" {
		if isPrefix {
			return nil
		}
		return []*util.Diagnostic{newDiagnostic(DiagnosticAttributeNameNullOrEmpty, t.TypeName, property.Name)}
	}

	if strings.TrimFunc(value, core.IsWhitespace) == "" {
		return []*util.Diagnostic{newDiagnostic(DiagnosticAttributeNameOrPrefixWhitespace, t.TypeName, property.Name, kind)}
	}

	if reserved := f.config.ReservedAttributePrefix; reserved != "" {
		if _, ok := util.TrimPrefixFold(value, reserved); ok {
			return []*util.Diagnostic{newDiagnostic(
				DiagnosticAttributeNameOrPrefixStart,
				t.TypeName, property.Name, kind, value, reserved)}
		}
	}

	var diagnostics []*util.Diagnostic
	for _, ch := range value {
		if core.IsInvalidNameCharacter(ch) {
			diagnostics = append(diagnostics, newDiagnostic(
				DiagnosticAttributeNameOrPrefixCharacter,
				t.TypeName, property.Name, kind, value, ch))
		}
	}
	return diagnostics
}
