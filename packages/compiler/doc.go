// Package compiler provides the tag helper front-end of the template compiler:
// discovering which tag helpers a set of types declares, describing them with
// immutable descriptors, and binding those descriptors to elements.
//
// <div class="callout is-critical">
//   <header>Unstable APIs</header>
//   <p>
//     All compiler apis are currently considered experimental and private!
//   </p>
// </div>
//
// Main sub-packages:
//
//   - taghelpers: Descriptor model, builders, matching rules, binder, comparers
//     and the descriptor cache
//   - css: Required attribute selector parser ("[href^='http'],disabled")
//     and name validation
//   - discovery: Property inventory loading, annotation decoding, the
//     per-type descriptor factory and the parallel provider
//   - config: Compiler configuration and the rzconfig.yaml project file
//   - util: Source spans, diagnostics, kebab-case and case-folding helpers
//   - core: Character classes and the compiler version
//   - errors: Stack-carrying errors and argument errors
//   - log: Logger construction
//
// Typical use:
//
//	inventory, _ := discovery.LoadInventoryFile("types.yaml")
//	provider := discovery.NewProvider(discovery.NewFactory(config.NewCompilerConfig(), nil))
//	descriptors, _ := provider.GetDescriptors(ctx, inventory)
//	binder := taghelpers.NewTagHelperBinder("", descriptors)
//	binding := binder.GetBinding("a", attrs, nil, taghelpers.TagStructureUnspecified)
//
// This file only documents the main exports. For detailed API documentation, see the individual
// package documentation.
package compiler
