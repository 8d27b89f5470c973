// SPDX-License-Identifier: MIT
// Package: clados/builder
//
// api.go — the Builder facade: the only entry point client code should use
// to obtain bases and product tables.
//
// Design contract:
//   - Validation runs before any registry access; invalid input leaves the
//     registry untouched.
//   - Same generator count ⇒ same *basis.Basis; same signature string ⇒ same
//     *product.ProductMap (identity, via the registry's insert-if-absent).
//   - A product miss reuses the canonical basis for |S|, building and
//     registering it first when absent.
//   - Construction is synchronous and CPU-bound; there is no context to cancel.

package builder

import (
	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/product"
	"github.com/katalvlaran/clados/registry"
)

// Builder creates canonical bases and product tables through a registry.
//
// Thread Safety:
//
//	Builder is immutable after New and safe for concurrent use.
type Builder struct {
	reg         *registry.Registry
	productOpts []product.Option
}

// New creates a Builder. Without WithRegistry it owns a fresh registry
// configured by WithLogger / WithRegisterer.
func New(opts ...BuilderOption) *Builder {
	cfg := newBuilderConfig(opts...)

	reg := cfg.registry
	if reg == nil {
		reg = registry.New(cfg.registryOptions()...)
	}

	return &Builder{
		reg:         reg,
		productOpts: cfg.productOptions(),
	}
}

// Registry returns the registry backing b.
func (b *Builder) Registry() *registry.Registry { return b.reg }

// CreateBasis returns the canonical basis of n generators, building and
// registering it on a miss.
// Errors: ErrGeneratorRange when n ∉ [0, 14].
// Complexity: O(1) on hit; O(2^n · n) on miss.
func (b *Builder) CreateBasis(n int) (*basis.Basis, error) {
	if err := validateSize(MethodCreateBasis, n); err != nil {
		return nil, err
	}

	return b.reg.BasisOrBuild(n, basis.Build)
}

// CreateProduct returns the canonical product table for sig.
// Errors: ErrBadSignature for an absent or malformed signature.
// Complexity: O(len(sig)) on hit; O(4^n · n) on miss.
func (b *Builder) CreateProduct(sig string) (*product.ProductMap, error) {
	parsed, err := parseSignature(MethodCreateProduct, sig)
	if err != nil {
		return nil, err
	}

	return b.reg.ProductOrBuild(sig, func(string) (*product.ProductMap, error) {
		bs, err := b.CreateBasis(parsed.Len())
		if err != nil {
			return nil, err
		}

		return product.New(bs, parsed, b.productOpts...)
	})
}

// CreateProductFromBasis returns the canonical product table for sig,
// offering bs as the basis to use on a miss. When a basis for |S| is
// already cached, the cached one is used and bs is discarded; otherwise bs
// becomes canonical.
// Errors:
//   - ErrBadSignature: absent/malformed sig, or len(sig) ≠ bs.GeneratorCount().
//   - ErrNilBasis: bs is nil.
func (b *Builder) CreateProductFromBasis(bs *basis.Basis, sig string) (*product.ProductMap, error) {
	parsed, err := parseSignature(MethodCreateProductFromBasis, sig)
	if err != nil {
		return nil, err
	}
	if bs == nil {
		return nil, builderErrorf(MethodCreateProductFromBasis, ErrNilBasis, "signature %q", sig)
	}
	if bs.GeneratorCount() != parsed.Len() {
		return nil, builderErrorf(MethodCreateProductFromBasis, ErrBadSignature,
			"signature %q has %d generators, basis has %d", sig, parsed.Len(), bs.GeneratorCount())
	}

	return b.reg.ProductOrBuild(sig, func(string) (*product.ProductMap, error) {
		canonical, _ := b.reg.AppendBasis(bs)

		return product.New(canonical, parsed, b.productOpts...)
	})
}

// Product is the CliffordProduct view of CreateProduct, for callers that
// depend only on the contract.
func (b *Builder) Product(sig string) (product.CliffordProduct, error) {
	pm, err := b.CreateProduct(sig)
	if err != nil {
		return nil, err
	}

	return pm, nil
}
