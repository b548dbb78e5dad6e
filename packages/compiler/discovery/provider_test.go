package discovery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rzc-go/packages/compiler/config"
	"rzc-go/packages/compiler/discovery"
	"rzc-go/packages/compiler/taghelpers"
)

func loadTestInventory(t *testing.T) *discovery.Inventory {
	t.Helper()
	inventory, err := discovery.LoadInventoryFile("testdata/inventory.yaml")
	require.NoError(t, err)
	return inventory
}

func descriptorNames(descriptors []*taghelpers.TagHelperDescriptor) []string {
	names := []string{}
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	return names
}

func TestProviderGetDescriptors(t *testing.T) {
	t.Run("should keep inventory order", func(t *testing.T) {
		for _, parallelism := range []int{1, 4} {
			factory := discovery.NewFactory(config.NewCompilerConfig(config.WithParallelism(parallelism)), nil)
			descriptors, err := discovery.NewProvider(factory).GetDescriptors(context.Background(), loadTestInventory(t))
			require.NoError(t, err)

			assert.Equal(t, []string{"glow", "a", "a", "ul"}, descriptorNames(descriptors))
			assert.Empty(t, discovery.Diagnostics(descriptors))
		}
	})

	t.Run("should intern descriptors across providers", func(t *testing.T) {
		cache := taghelpers.NewDescriptorCache(nil)
		factory := discovery.NewFactory(nil, nil)

		first, err := discovery.NewProvider(factory, discovery.WithDescriptorCache(cache)).GetDescriptors(context.Background(), loadTestInventory(t))
		require.NoError(t, err)
		second, err := discovery.NewProvider(factory, discovery.WithDescriptorCache(cache)).GetDescriptors(context.Background(), loadTestInventory(t))
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assert.Same(t, first[i], second[i])
		}
		assert.Equal(t, len(first), cache.Len())
	})

	t.Run("should drop duplicates across types", func(t *testing.T) {
		inventory := loadTestInventory(t)
		inventory.Types = append(inventory.Types, inventory.Types[0])

		descriptors, err := discovery.NewProvider(discovery.NewFactory(nil, nil)).GetDescriptors(context.Background(), inventory)
		require.NoError(t, err)
		assert.Equal(t, []string{"glow", "a", "a", "ul"}, descriptorNames(descriptors))
	})

	t.Run("should return nothing for a nil inventory", func(t *testing.T) {
		descriptors, err := discovery.NewProvider(discovery.NewFactory(nil, nil)).GetDescriptors(context.Background(), nil)
		assert.NoError(t, err)
		assert.Nil(t, descriptors)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := discovery.NewProvider(discovery.NewFactory(nil, nil)).GetDescriptors(ctx, loadTestInventory(t))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should panic without a factory", func(t *testing.T) {
		assert.PanicsWithError(t, "value cannot be nil: factory", func() {
			discovery.NewProvider(nil)
		})
	})
}

func TestProviderBinding(t *testing.T) {
	descriptors, err := discovery.NewProvider(discovery.NewFactory(nil, nil)).GetDescriptors(context.Background(), loadTestInventory(t))
	require.NoError(t, err)
	binder := taghelpers.NewTagHelperBinder("", descriptors)

	binding := binder.GetBinding("a", []taghelpers.Attribute{{Name: "asp-route-id", Value: "7"}}, nil, taghelpers.TagStructureNormalOrSelfClosing)
	require.NotNil(t, binding)
	require.Len(t, binding.Matches, 1)
	assert.Equal(t, "Acme.Web.AnchorTagHelper", binding.Matches[0].Descriptor.DisplayName)

	bindings := binding.BoundAttributes("asp-route-id")
	require.Len(t, bindings, 1)
	assert.Equal(t, "RouteValues", bindings[0].Attribute.PropertyName)

	list := binder.GetBinding("ul", nil, nil, taghelpers.TagStructureUnspecified)
	require.NotNil(t, list)
	assert.True(t, list.IsChildAllowed("li"))
	assert.False(t, list.IsChildAllowed("div"))
}
