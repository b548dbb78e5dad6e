package taghelpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rzc-go/packages/compiler/taghelpers"
	"rzc-go/packages/compiler/util"
)

type glowOptions struct {
	name        string
	tagName     string
	attrName    string
	displayName string
	childTags   []string
	metadata    map[string]string
	diagnostics []string
}

func glowDescriptor(opts glowOptions) *taghelpers.TagHelperDescriptor {
	if opts.name == "" {
		opts.name = "glow"
	}
	if opts.tagName == "" {
		opts.tagName = "glow"
	}
	if opts.attrName == "" {
		opts.attrName = "intensity"
	}

	builder := taghelpers.NewTagHelperDescriptorBuilder("Acme.GlowTagHelper", "Acme").
		Name(opts.name).
		TagMatchingRule(func(rule *taghelpers.TagMatchingRuleBuilder) {
			rule.RequireTagName(opts.tagName).RequireAttributes("[mode^='soft'],intensity")
		}).
		BindAttribute(func(attr *taghelpers.BoundAttributeDescriptorBuilder) {
			attr.Name(opts.attrName).PropertyName("Intensity").TypeName("System.Int32")
		})
	if opts.displayName != "" {
		builder.DisplayName(opts.displayName)
	}
	for _, tag := range opts.childTags {
		builder.AllowChildTag(tag)
	}
	for k, v := range opts.metadata {
		builder.AddMetadata(k, v)
	}
	for _, id := range opts.diagnostics {
		builder.AddDiagnostic(util.NewDiagnostic(
			util.NewDiagnosticDescriptor(id, "diagnostic "+id, util.DiagnosticSeverityWarning),
			util.SourceSpanUndefined))
	}
	return builder.Build()
}

func TestTagHelperDescriptorComparer(t *testing.T) {
	t.Run("should treat separately built descriptors as equal", func(t *testing.T) {
		x := glowDescriptor(glowOptions{})
		y := glowDescriptor(glowOptions{})

		assert.NotSame(t, x, y)
		assert.True(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(x, y))
		assert.True(t, taghelpers.CaseSensitiveTagHelperDescriptorComparer.Equal(x, y))
		assert.Equal(t, taghelpers.DefaultTagHelperDescriptorComparer.Hash(x), taghelpers.DefaultTagHelperDescriptorComparer.Hash(y))
	})

	t.Run("should ignore name case by default", func(t *testing.T) {
		x := glowDescriptor(glowOptions{})
		y := glowDescriptor(glowOptions{name: "GLOW", tagName: "Glow", attrName: "INTENSITY"})

		assert.True(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(x, y))
		assert.Equal(t, taghelpers.DefaultTagHelperDescriptorComparer.Hash(x), taghelpers.DefaultTagHelperDescriptorComparer.Hash(y))
		assert.False(t, taghelpers.CaseSensitiveTagHelperDescriptorComparer.Equal(x, y))
	})

	t.Run("should ignore metadata insertion order", func(t *testing.T) {
		x := taghelpers.NewTagHelperDescriptorBuilder("Acme.GlowTagHelper", "Acme").
			AddMetadata("a", "1").
			AddMetadata("b", "2").
			Build()
		y := taghelpers.NewTagHelperDescriptorBuilder("Acme.GlowTagHelper", "Acme").
			AddMetadata("b", "2").
			AddMetadata("a", "1").
			Build()

		assert.True(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(x, y))
		assert.Equal(t, taghelpers.DefaultTagHelperDescriptorComparer.Hash(x), taghelpers.DefaultTagHelperDescriptorComparer.Hash(y))
	})

	t.Run("should distinguish differing fields", func(t *testing.T) {
		base := glowDescriptor(glowOptions{})
		testCases := []struct {
			name  string
			other *taghelpers.TagHelperDescriptor
		}{
			{"display name", glowDescriptor(glowOptions{displayName: "Glow"})},
			{"tag name", glowDescriptor(glowOptions{tagName: "shine"})},
			{"bound attribute", glowDescriptor(glowOptions{attrName: "level"})},
			{"metadata", glowDescriptor(glowOptions{metadata: map[string]string{"k": "v"}})},
			{"diagnostics", glowDescriptor(glowOptions{diagnostics: []string{"T1"}})},
			{"empty allowed children", func() *taghelpers.TagHelperDescriptor {
				d := glowDescriptor(glowOptions{})
				d.AllowedChildTags = []string{}
				return d
			}()},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.False(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(base, tc.other))
				assert.False(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(tc.other, base))
			})
		}
	})

	t.Run("should compare diagnostics in order", func(t *testing.T) {
		x := glowDescriptor(glowOptions{diagnostics: []string{"T1", "T2"}})
		y := glowDescriptor(glowOptions{diagnostics: []string{"T2", "T1"}})
		assert.False(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(x, y))
	})

	t.Run("should compare allowed children ignoring case", func(t *testing.T) {
		x := glowDescriptor(glowOptions{childTags: []string{"span"}})
		y := glowDescriptor(glowOptions{childTags: []string{"SPAN"}})
		assert.True(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(x, y))
		assert.False(t, taghelpers.CaseSensitiveTagHelperDescriptorComparer.Equal(x, y))
	})

	t.Run("should handle nil descriptors", func(t *testing.T) {
		x := glowDescriptor(glowOptions{})
		assert.True(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(nil, nil))
		assert.False(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(x, nil))
		assert.False(t, taghelpers.DefaultTagHelperDescriptorComparer.Equal(nil, x))
	})
}

func TestRequiredAttributeDescriptorComparer(t *testing.T) {
	x := requiredAttribute("Class", taghelpers.NameComparisonFullMatch, "btn", taghelpers.ValueComparisonFullMatch)
	y := requiredAttribute("class", taghelpers.NameComparisonFullMatch, "btn", taghelpers.ValueComparisonFullMatch)
	z := requiredAttribute("class", taghelpers.NameComparisonFullMatch, "BTN", taghelpers.ValueComparisonFullMatch)

	comparer := taghelpers.DefaultRequiredAttributeDescriptorComparer
	assert.True(t, comparer.Equal(x, y))
	assert.Equal(t, comparer.Hash(x), comparer.Hash(y))
	assert.False(t, comparer.Equal(y, z), "values are compared case sensitively")
	assert.False(t, taghelpers.CaseSensitiveRequiredAttributeDescriptorComparer.Equal(x, y))
}

func TestDistinct(t *testing.T) {
	first := glowDescriptor(glowOptions{})
	duplicate := glowDescriptor(glowOptions{name: "GLOW"})
	other := glowDescriptor(glowOptions{tagName: "shine"})

	result := taghelpers.Distinct([]*taghelpers.TagHelperDescriptor{first, other, duplicate}, taghelpers.DefaultTagHelperDescriptorComparer)

	if assert.Len(t, result, 2) {
		assert.Same(t, first, result[0])
		assert.Same(t, other, result[1])
	}
}

func TestDescribeDifference(t *testing.T) {
	t.Run("should be empty for equal descriptors", func(t *testing.T) {
		assert.Empty(t, taghelpers.DescribeDifference(glowDescriptor(glowOptions{}), glowDescriptor(glowOptions{})))
	})

	t.Run("should report case differences", func(t *testing.T) {
		diff := taghelpers.DescribeDifference(glowDescriptor(glowOptions{}), glowDescriptor(glowOptions{name: "GLOW"}))
		assert.Contains(t, diff, "GLOW")
	})
}
