package discovery

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"rzc-go/packages/compiler/errors"
	"rzc-go/packages/compiler/log"
	"rzc-go/packages/compiler/taghelpers"
	"rzc-go/packages/compiler/util"
)

// Provider discovers the descriptors of a whole inventory.
type Provider struct {
	factory *Factory
	cache   *taghelpers.DescriptorCache
	logger  logrus.FieldLogger
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithDescriptorCache shares cache between providers so equal descriptors
// from separate runs are the same instance.
func WithDescriptorCache(cache *taghelpers.DescriptorCache) ProviderOption {
	return func(p *Provider) {
		p.cache = cache
	}
}

// WithLogger sets the provider's logger.
func WithLogger(logger logrus.FieldLogger) ProviderOption {
	return func(p *Provider) {
		p.logger = logger
	}
}

func NewProvider(factory *Factory, opts ...ProviderOption) *Provider {
	errors.PanicIfNil(factory == nil, "factory")

	p := &Provider{factory: factory}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil {
		p.cache = taghelpers.NewDescriptorCache(taghelpers.DefaultTagHelperDescriptorComparer)
	}
	p.logger = log.OrDiscard(p.logger)
	return p
}

// Cache returns the cache descriptors are interned in.
func (p *Provider) Cache() *taghelpers.DescriptorCache {
	return p.cache
}

// GetDescriptors creates the descriptors of every type in inventory order.
// Types are processed concurrently, up to the configured parallelism. The
// result is deduplicated and interned.
func (p *Provider) GetDescriptors(ctx context.Context, inventory *Inventory) ([]*taghelpers.TagHelperDescriptor, error) {
	if inventory == nil {
		return nil, nil
	}

	perType := make([][]*taghelpers.TagHelperDescriptor, len(inventory.Types))

	g, gctx := errgroup.WithContext(ctx)
	if limit := p.factory.Config().Parallelism; limit > 0 {
		g.SetLimit(limit)
	}

	for i := range inventory.Types {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perType[i] = p.factory.CreateDescriptors(inventory.Types[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	var descriptors []*taghelpers.TagHelperDescriptor
	for _, d := range perType {
		descriptors = append(descriptors, d...)
	}
	descriptors = taghelpers.Distinct(descriptors, taghelpers.DefaultTagHelperDescriptorComparer)

	p.logger.WithField("descriptors", len(descriptors)).Debugf("Discovered tag helpers from %d types", len(inventory.Types))
	return p.cache.InternAll(descriptors), nil
}

// Diagnostics returns every diagnostic reachable from descriptors, in order.
func Diagnostics(descriptors []*taghelpers.TagHelperDescriptor) []*util.Diagnostic {
	var diagnostics []*util.Diagnostic
	for _, d := range descriptors {
		diagnostics = append(diagnostics, d.GetAllDiagnostics()...)
	}
	return diagnostics
}
