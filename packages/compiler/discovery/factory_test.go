package discovery_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rzc-go/packages/compiler/config"
	"rzc-go/packages/compiler/discovery"
	"rzc-go/packages/compiler/taghelpers"
	"rzc-go/packages/compiler/util"
)

func loadType(t *testing.T, source string) discovery.TypeInventory {
	t.Helper()
	inventory, err := discovery.LoadInventory(strings.NewReader(source))
	require.NoError(t, err)
	require.Len(t, inventory.Types, 1)
	return inventory.Types[0]
}

func diagnosticIDs(diagnostics []*util.Diagnostic) []string {
	ids := []string{}
	for _, d := range diagnostics {
		ids = append(ids, d.ID)
	}
	return ids
}

func attributeNames(d *taghelpers.TagHelperDescriptor) []string {
	names := []string{}
	for _, attr := range d.BoundAttributes {
		names = append(names, attr.Name)
	}
	return names
}

func TestFactoryCreateDescriptors(t *testing.T) {
	factory := discovery.NewFactory(nil, nil)

	t.Run("should derive the tag name from the type name", func(t *testing.T) {
		descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.GlowTagHelper
    assembly: Acme.Web
    properties:
      - name: Intensity
        typeName: System.Int32
`))
		expected := taghelpers.NewTagHelperDescriptorBuilder("Acme.Web.GlowTagHelper", "Acme.Web").
			Name("glow").
			TagMatchingRule(func(rule *taghelpers.TagMatchingRuleBuilder) {
				rule.RequireTagName("glow")
			}).
			BindAttribute(func(attr *taghelpers.BoundAttributeDescriptorBuilder) {
				attr.Name("intensity").PropertyName("Intensity").TypeName("System.Int32")
			}).
			Build()

		require.Len(t, descriptors, 1)
		if diff := taghelpers.DescribeDifference(expected, descriptors[0]); diff != "" {
			t.Errorf("CreateDescriptors() mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "int Acme.Web.GlowTagHelper.Intensity", descriptors[0].BoundAttributes[0].DisplayName)
	})

	t.Run("should strip the suffix ignoring case", func(t *testing.T) {
		testCases := []struct {
			typeName string
			expected string
		}{
			{"Acme.Web.Glowtaghelper", "glow"},
			{"Acme.Web.Outer+InnerTagHelper", "inner"},
			{"Acme.Web.MyGlowingThing", "my-glowing-thing"},
		}
		for _, tc := range testCases {
			t.Run(tc.typeName, func(t *testing.T) {
				descriptors := factory.CreateDescriptors(discovery.TypeInventory{TypeName: tc.typeName})
				require.Len(t, descriptors, 1)
				assert.Equal(t, tc.expected, descriptors[0].TagMatchingRules[0].TagName)
			})
		}
	})

	t.Run("should bind dictionary properties by name and by prefix", func(t *testing.T) {
		descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.ListTagHelper
    properties:
      - name: Items
        typeName: System.Collections.Generic.IDictionary<System.String, System.String>
        dictionary: {keyTypeName: System.String, valueTypeName: System.String}
      - name: Title
        typeName: System.String
      - name: Counts
        typeName: System.Collections.Generic.IDictionary<System.String, System.Int32>
        publicSet: false
        dictionary: {keyTypeName: System.String, valueTypeName: System.Int32}
      - name: ByIndex
        typeName: System.Collections.Generic.IDictionary<System.Int32, System.String>
        dictionary: {keyTypeName: System.Int32, valueTypeName: System.String}
`))
		require.Len(t, descriptors, 1)
		d := descriptors[0]
		assert.Equal(t, []string{"items", "title", "by-index", "items-", "counts-"}, attributeNames(d))

		items := d.BoundAttributes[3]
		require.True(t, items.IsIndexer())
		assert.Equal(t, "items-", *items.DictionaryAttributePrefix)
		assert.True(t, items.IsKeyValueStringProperty)
		assert.Equal(t, "Items", items.PropertyName)

		counts := d.BoundAttributes[4]
		assert.Equal(t, "System.Int32", counts.DictionaryValueTypeName)
		assert.False(t, counts.IsKeyValueStringProperty)
		assert.False(t, d.HasErrors())
	})

	t.Run("should honour explicit names and prefixes", func(t *testing.T) {
		descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.RouteTagHelper
    properties:
      - name: Action
        typeName: System.String
        annotations:
          - kind: HtmlAttributeName
            args: {name: asp-action}
      - name: RouteValues
        typeName: System.Collections.Generic.IDictionary<System.String, System.String>
        publicSet: false
        dictionary: {keyTypeName: System.String, valueTypeName: System.String}
        annotations:
          - kind: HtmlAttributeName
            args: {dictionaryAttributePrefix: asp-route-}
      - name: NoPrefix
        typeName: System.Collections.Generic.IDictionary<System.String, System.String>
        dictionary: {keyTypeName: System.String, valueTypeName: System.String}
        annotations:
          - kind: HtmlAttributeName
            args: {name: no-prefix, dictionaryAttributePrefix: null}
      - name: Everything
        typeName: System.Collections.Generic.IDictionary<System.String, System.Object>
        publicSet: false
        dictionary: {keyTypeName: System.String, valueTypeName: System.Object}
        annotations:
          - kind: HtmlAttributeName
            args: {dictionaryAttributePrefix: ""}
`))
		require.Len(t, descriptors, 1)
		d := descriptors[0]
		assert.Empty(t, d.GetAllDiagnostics())
		assert.Equal(t, []string{"asp-action", "no-prefix", "asp-route-", ""}, attributeNames(d))

		everything := d.BoundAttributes[3]
		require.True(t, everything.IsIndexer())
		assert.Equal(t, "", *everything.DictionaryAttributePrefix)
		assert.True(t, everything.CanMatchName("anything"))
	})

	t.Run("should bind a setter-less named dictionary through its prefix", func(t *testing.T) {
		descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.RouteTagHelper
    properties:
      - name: RouteValues
        typeName: System.Collections.Generic.IDictionary<System.String, System.String>
        publicSet: false
        dictionary: {keyTypeName: System.String, valueTypeName: System.String}
        annotations:
          - kind: HtmlAttributeName
            args: {name: route-values, dictionaryAttributePrefix: asp-route-}
`))
		require.Len(t, descriptors, 1)
		d := descriptors[0]
		assert.Empty(t, d.GetAllDiagnostics())
		require.Equal(t, []string{"asp-route-"}, attributeNames(d))
		assert.True(t, d.BoundAttributes[0].IsIndexer())
		assert.Equal(t, "RouteValues", d.BoundAttributes[0].PropertyName)
	})

	t.Run("should skip properties that cannot be bound", func(t *testing.T) {
		descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.ColorTagHelper
    properties:
      - name: Color
        typeName: System.String
      - name: Hidden
        typeName: System.String
        annotations:
          - kind: HtmlAttributeNotBound
      - name: WriteOnly
        typeName: System.String
        publicGet: false
      - name: Color
        typeName: System.Int32
`))
		require.Len(t, descriptors, 1)
		d := descriptors[0]
		require.Equal(t, []string{"color"}, attributeNames(d))
		assert.Equal(t, "System.String", d.BoundAttributes[0].TypeName)
	})

	t.Run("should report invalid bound properties", func(t *testing.T) {
		testCases := []struct {
			name     string
			property string
			ids      []string
		}{
			{
				name: "reserved prefix",
				property: `
      - name: Foo
        typeName: System.String
        annotations:
          - kind: HtmlAttributeName
            args: {name: DATA-foo}`,
				ids: []string{"RZ3207"},
			},
			{
				name: "invalid characters",
				property: `
      - name: Foo
        typeName: System.String
        annotations:
          - kind: HtmlAttributeName
            args: {name: "bad name!"}`,
				ids: []string{"RZ3208", "RZ3208"},
			},
			{
				name: "whitespace name",
				property: `
      - name: Foo
        typeName: System.String
        annotations:
          - kind: HtmlAttributeName
            args: {name: "  "}`,
				ids: []string{"RZ3206"},
			},
			{
				name: "name without setter",
				property: `
      - name: Foo
        typeName: System.String
        publicSet: false
        annotations:
          - kind: HtmlAttributeName
            args: {name: foo}`,
				ids: []string{"RZ3202"},
			},
			{
				name: "prefix without dictionary",
				property: `
      - name: Foo
        typeName: System.String
        annotations:
          - kind: HtmlAttributeName
            args: {dictionaryAttributePrefix: foo-}`,
				ids: []string{"RZ3203"},
			},
			{
				name: "missing prefix without setter",
				property: `
      - name: Foo
        typeName: System.Collections.Generic.IDictionary<System.String, System.String>
        publicSet: false
        dictionary: {keyTypeName: System.String, valueTypeName: System.String}
        annotations:
          - kind: HtmlAttributeName`,
				ids: []string{"RZ3204"},
			},
			{
				name: "reserved dictionary prefix",
				property: `
      - name: Foo
        typeName: System.Collections.Generic.IDictionary<System.String, System.String>
        dictionary: {keyTypeName: System.String, valueTypeName: System.String}
        annotations:
          - kind: HtmlAttributeName
            args: {name: foo, dictionaryAttributePrefix: data-foo-}`,
				ids: []string{"RZ3207"},
			},
			{
				name: "unknown annotation argument",
				property: `
      - name: Foo
        typeName: System.String
        annotations:
          - kind: HtmlAttributeName
            args: {nmae: foo}`,
				ids: []string{"RZ3201"},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.BadTagHelper
    properties:
      - name: Valid
        typeName: System.String`+tc.property+`
`))
				require.Len(t, descriptors, 1)
				d := descriptors[0]
				assert.Equal(t, []string{"valid"}, attributeNames(d), "invalid properties are not bound")
				assert.Equal(t, tc.ids, diagnosticIDs(d.Diagnostics))
				assert.True(t, d.HasErrors())
			})
		}
	})

	t.Run("should create one descriptor per target element", func(t *testing.T) {
		descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.LinkTagHelper
    annotations:
      - kind: HtmlTargetElement
        args: {tag: a, attributes: "[href^='http']"}
      - kind: HtmlTargetElement
        args: {attributes: "asp-link"}
      - kind: HtmlTargetElement
        args: {tag: li, parentTag: ul, tagStructure: WithoutEndTag}
      - kind: HtmlTargetElement
        args: {tag: a, attributes: "[href^='http']"}
    properties:
      - name: Href
        typeName: System.String
`))
		require.Len(t, descriptors, 3)
		assert.Equal(t, "a", descriptors[0].Name)
		assert.Equal(t, taghelpers.ElementCatchAllTarget, descriptors[1].Name)
		assert.Equal(t, "li", descriptors[2].Name)
		for _, d := range descriptors {
			assert.Equal(t, "Acme.Web.LinkTagHelper", d.DisplayName)
			assert.Equal(t, []string{"href"}, attributeNames(d))
			assert.Same(t, descriptors[0].BoundAttributes[0], d.BoundAttributes[0])
		}

		rule := descriptors[0].TagMatchingRules[0]
		assert.Equal(t, "[href^='http']", rule.RequiredAttributesString())

		li := descriptors[2].TagMatchingRules[0]
		require.NotNil(t, li.ParentTag)
		assert.Equal(t, "ul", *li.ParentTag)
		assert.Equal(t, taghelpers.TagStructureWithoutEndTag, li.TagStructure)
	})

	t.Run("should keep unmatchable rules for invalid targets", func(t *testing.T) {
		descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.BrokenTagHelper
    annotations:
      - kind: HtmlTargetElement
        args: {tag: a, attributes: "[href^]"}
      - kind: HtmlTargetElement
        args: {tag: b, tagStructure: Sideways}
`))
		require.Len(t, descriptors, 2)

		invalidSelector := descriptors[0].TagMatchingRules[0]
		assert.Equal(t, []string{"RZ3006"}, diagnosticIDs(invalidSelector.Diagnostics))
		assert.False(t, invalidSelector.IsMatch("a", nil, taghelpers.TagStructureUnspecified, []taghelpers.Attribute{{Name: "href"}}))

		invalidArgs := descriptors[1].TagMatchingRules[0]
		assert.Equal(t, taghelpers.ElementCatchAllTarget, invalidArgs.TagName)
		assert.Equal(t, []string{"RZ3201"}, diagnosticIDs(invalidArgs.Diagnostics))
		assert.False(t, invalidArgs.IsMatch("b", nil, taghelpers.TagStructureUnspecified, nil))
	})

	t.Run("should restrict children", func(t *testing.T) {
		descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.ListTagHelper
    annotations:
      - kind: RestrictChildren
        args: {tags: [li, "bad tag", ol]}
`))
		require.Len(t, descriptors, 1)
		assert.Equal(t, []string{"li", "ol"}, descriptors[0].AllowedChildTags)
		assert.Equal(t, []string{"RZ3001"}, diagnosticIDs(descriptors[0].Diagnostics))

		descriptors = factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.ListTagHelper
    annotations:
      - kind: RestrictChildren
        args: {tags: ["*"]}
`))
		require.Len(t, descriptors, 1)
		assert.Nil(t, descriptors[0].AllowedChildTags, "no valid children leaves the children unrestricted")
	})
}

func TestFactoryDesignTime(t *testing.T) {
	source := `
types:
  - typeName: Acme.Web.SecretTagHelper
    documentation: Hidden helper.
    annotations:
      - kind: EditorBrowsable
        args: {state: Never}
  - typeName: Acme.Web.CardTagHelper
    documentation: Renders a card.
    annotations:
      - kind: OutputElementHint
        args: {tag: section}
    properties:
      - name: Title
        typeName: System.String
        documentation: The card title.
      - name: Internal
        typeName: System.String
        annotations:
          - kind: EditorBrowsable
            args: {state: never}
`
	inventory, err := discovery.LoadInventory(strings.NewReader(source))
	require.NoError(t, err)
	secret, card := inventory.Types[0], inventory.Types[1]

	t.Run("should ignore design time annotations at run time", func(t *testing.T) {
		factory := discovery.NewFactory(config.NewCompilerConfig(), nil)

		assert.Len(t, factory.CreateDescriptors(secret), 1)

		descriptors := factory.CreateDescriptors(card)
		require.Len(t, descriptors, 1)
		d := descriptors[0]
		assert.Empty(t, d.Documentation)
		assert.Nil(t, d.TagOutputHint)
		assert.Equal(t, []string{"title", "internal"}, attributeNames(d))
		assert.Empty(t, d.BoundAttributes[0].Documentation)
	})

	t.Run("should honour design time annotations", func(t *testing.T) {
		factory := discovery.NewFactory(config.NewCompilerConfig(config.WithDesignTime(true)), nil)

		assert.Nil(t, factory.CreateDescriptors(secret))

		descriptors := factory.CreateDescriptors(card)
		require.Len(t, descriptors, 1)
		d := descriptors[0]
		assert.Equal(t, "Renders a card.", d.Documentation)
		require.NotNil(t, d.TagOutputHint)
		assert.Equal(t, "section", *d.TagOutputHint)
		assert.Equal(t, []string{"title"}, attributeNames(d))
		assert.Equal(t, "The card title.", d.BoundAttributes[0].Documentation)
	})
}

func TestFactoryInvalidPropertyVisibility(t *testing.T) {
	factory := discovery.NewFactory(config.NewCompilerConfig(config.WithDesignTime(true)), nil)

	descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.CardTagHelper
    properties:
      - name: Title
        typeName: System.String
      - name: Footer
        typeName: System.String
        annotations:
          - kind: EditorBrowsable
            args: {state: Sometimes}
`))
	require.Len(t, descriptors, 1)
	d := descriptors[0]
	assert.Equal(t, []string{"title"}, attributeNames(d))
	assert.Equal(t, []string{"RZ3201"}, diagnosticIDs(d.Diagnostics))
	assert.Contains(t, d.Diagnostics[0].Message, "Acme.Web.CardTagHelper.Footer")
}

func TestFactoryConfiguration(t *testing.T) {
	factory := discovery.NewFactory(config.NewCompilerConfig(
		config.WithTagHelperNameSuffix("Component"),
		config.WithReservedAttributePrefix("x-"),
	), nil)

	descriptors := factory.CreateDescriptors(loadType(t, `
types:
  - typeName: Acme.Web.PanelComponent
    properties:
      - name: DataSource
        typeName: System.String
      - name: Extra
        typeName: System.String
        annotations:
          - kind: HtmlAttributeName
            args: {name: x-extra}
`))
	require.Len(t, descriptors, 1)
	d := descriptors[0]

	expectedRules := []*taghelpers.TagMatchingRule{
		taghelpers.NewTagMatchingRuleBuilder().RequireTagName("panel").Build(),
	}
	if diff := cmp.Diff(expectedRules, d.TagMatchingRules); diff != "" {
		t.Errorf("TagMatchingRules mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"data-source"}, attributeNames(d))
	assert.Equal(t, []string{"RZ3207"}, diagnosticIDs(d.Diagnostics))
}
