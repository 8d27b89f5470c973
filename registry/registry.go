// SPDX-License-Identifier: MIT
// Package: clados/registry
//
// registry.go — the two canonical-instance maps and their lookup-or-create
// paths.
//
// Lookup-or-create (BasisOrBuild / ProductOrBuild):
//   • Stage 1: read-locked lookup (fast path, no allocation on hit).
//   • Stage 2: singleflight.Do keyed by the entry key; the flight leader
//     re-checks the map, runs the build, and inserts-if-absent under the
//     write lock. Followers receive the leader's canonical pointer.
//   • Stage 3: errors are returned to every waiter and nothing is stored.
//
// Lock order: basisMu and productMu are never held together.

package registry

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/product"
)

const (
	methodBasisOrBuild   = "BasisOrBuild"
	methodProductOrBuild = "ProductOrBuild"
)

// BasisBuildFunc constructs the basis for generator count n.
type BasisBuildFunc func(n int) (*basis.Basis, error)

// ProductBuildFunc constructs the product table for signature sig.
type ProductBuildFunc func(sig string) (*product.ProductMap, error)

// Registry holds at most one canonical Basis per generator count and one
// canonical ProductMap per signature string.
//
// Thread Safety:
//
//	Registry is safe for concurrent use. The zero value is not usable; call New.
type Registry struct {
	basisMu     sync.RWMutex
	bases       map[int]*basis.Basis
	basisFlight singleflight.Group

	productMu     sync.RWMutex
	products      map[string]*product.ProductMap
	productFlight singleflight.Group

	log     *Logger
	metrics *Metrics
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	cfg := newConfig(opts...)

	return &Registry{
		bases:    make(map[int]*basis.Basis),
		products: make(map[string]*product.ProductMap),
		log:      cfg.logger,
		metrics:  newMetrics(cfg.registerer),
	}
}

// Metrics exposes the registry's collectors.
func (r *Registry) Metrics() *Metrics { return r.metrics }

// -----------------------------------------------------------------------------
// Bases
// -----------------------------------------------------------------------------

// FindBasis returns the canonical basis for n without constructing one.
func (r *Registry) FindBasis(n int) (*basis.Basis, bool) {
	r.basisMu.RLock()
	b, ok := r.bases[n]
	r.basisMu.RUnlock()
	r.metrics.lookup(kindBasis, ok)

	return b, ok
}

// AppendBasis stores b unless a basis with the same generator count is
// already present. It returns the canonical instance and whether b was
// inserted. A nil b is ignored.
func (r *Registry) AppendBasis(b *basis.Basis) (*basis.Basis, bool) {
	if b == nil {
		return nil, false
	}
	r.basisMu.Lock()
	defer r.basisMu.Unlock()

	if existing, ok := r.bases[b.GeneratorCount()]; ok {
		return existing, false
	}
	r.bases[b.GeneratorCount()] = b
	r.metrics.entries(kindBasis, len(r.bases))

	return b, true
}

// RemoveBasis deletes the basis for n. Removing an absent key is a no-op.
func (r *Registry) RemoveBasis(n int) {
	r.basisMu.Lock()
	_, ok := r.bases[n]
	delete(r.bases, n)
	r.metrics.entries(kindBasis, len(r.bases))
	r.basisMu.Unlock()

	r.log.LogRemove(kindBasis, strconv.Itoa(n), ok)
}

// RemoveBasisInstance deletes b only if it is the stored canonical instance.
func (r *Registry) RemoveBasisInstance(b *basis.Basis) {
	if b == nil {
		return
	}
	r.basisMu.Lock()
	n := b.GeneratorCount()
	ok := r.bases[n] == b
	if ok {
		delete(r.bases, n)
		r.metrics.entries(kindBasis, len(r.bases))
	}
	r.basisMu.Unlock()

	r.log.LogRemove(kindBasis, strconv.Itoa(n), ok)
}

// BasisOrBuild returns the canonical basis for n, running build at most once
// per key across concurrent callers when it is missing.
// Errors: whatever build returns (wrapped), ErrNilEntry, ErrKeyMismatch.
func (r *Registry) BasisOrBuild(n int, build BasisBuildFunc) (*basis.Basis, error) {
	if b, ok := r.FindBasis(n); ok {
		return b, nil
	}

	key := strconv.Itoa(n)
	v, err, _ := r.basisFlight.Do(key, func() (interface{}, error) {
		r.basisMu.RLock()
		existing, ok := r.bases[n]
		r.basisMu.RUnlock()
		if ok {
			return existing, nil
		}

		start := time.Now()
		b, err := build(n)
		switch {
		case err != nil:
			err = registryErrorf(methodBasisOrBuild, err, "generators %d", n)
		case b == nil:
			err = registryErrorf(methodBasisOrBuild, ErrNilEntry, "generators %d", n)
		case b.GeneratorCount() != n:
			err = registryErrorf(methodBasisOrBuild, ErrKeyMismatch,
				"built %d generators for key %d", b.GeneratorCount(), n)
		}
		elapsed := time.Since(start)
		r.metrics.build(kindBasis, elapsed.Seconds(), err)
		r.log.LogBuild(kindBasis, key, elapsed, err)
		if err != nil {
			return nil, err
		}

		canonical, _ := r.AppendBasis(b)

		return canonical, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*basis.Basis), nil
}

// BasisCount returns the number of cached bases.
func (r *Registry) BasisCount() int {
	r.basisMu.RLock()
	defer r.basisMu.RUnlock()

	return len(r.bases)
}

// GeneratorCounts returns the cached generator counts in ascending order.
func (r *Registry) GeneratorCounts() []int {
	r.basisMu.RLock()
	out := make([]int, 0, len(r.bases))
	for n := range r.bases {
		out = append(out, n)
	}
	r.basisMu.RUnlock()
	sort.Ints(out)

	return out
}

// -----------------------------------------------------------------------------
// Products
// -----------------------------------------------------------------------------

// FindProduct returns the canonical product table for sig without
// constructing one. Keys are order-sensitive: "+-" and "-+" differ.
func (r *Registry) FindProduct(sig string) (*product.ProductMap, bool) {
	r.productMu.RLock()
	pm, ok := r.products[sig]
	r.productMu.RUnlock()
	r.metrics.lookup(kindProduct, ok)

	return pm, ok
}

// AppendProduct stores pm unless a table for the same signature string is
// already present. It returns the canonical instance and whether pm was
// inserted. A nil pm is ignored.
func (r *Registry) AppendProduct(pm *product.ProductMap) (*product.ProductMap, bool) {
	if pm == nil {
		return nil, false
	}
	r.productMu.Lock()
	defer r.productMu.Unlock()

	if existing, ok := r.products[pm.Signature()]; ok {
		return existing, false
	}
	r.products[pm.Signature()] = pm
	r.metrics.entries(kindProduct, len(r.products))

	return pm, true
}

// RemoveProduct deletes the table for sig. Removing an absent key is a no-op.
func (r *Registry) RemoveProduct(sig string) {
	r.productMu.Lock()
	_, ok := r.products[sig]
	delete(r.products, sig)
	r.metrics.entries(kindProduct, len(r.products))
	r.productMu.Unlock()

	r.log.LogRemove(kindProduct, sig, ok)
}

// RemoveProductInstance deletes pm only if it is the stored canonical instance.
func (r *Registry) RemoveProductInstance(pm *product.ProductMap) {
	if pm == nil {
		return
	}
	r.productMu.Lock()
	sig := pm.Signature()
	ok := r.products[sig] == pm
	if ok {
		delete(r.products, sig)
		r.metrics.entries(kindProduct, len(r.products))
	}
	r.productMu.Unlock()

	r.log.LogRemove(kindProduct, sig, ok)
}

// ProductOrBuild returns the canonical table for sig, running build at most
// once per key across concurrent callers when it is missing.
// Errors: whatever build returns (wrapped), ErrNilEntry, ErrKeyMismatch.
func (r *Registry) ProductOrBuild(sig string, build ProductBuildFunc) (*product.ProductMap, error) {
	if pm, ok := r.FindProduct(sig); ok {
		return pm, nil
	}

	v, err, _ := r.productFlight.Do(sig, func() (interface{}, error) {
		r.productMu.RLock()
		existing, ok := r.products[sig]
		r.productMu.RUnlock()
		if ok {
			return existing, nil
		}

		start := time.Now()
		pm, err := build(sig)
		switch {
		case err != nil:
			err = registryErrorf(methodProductOrBuild, err, "signature %q", sig)
		case pm == nil:
			err = registryErrorf(methodProductOrBuild, ErrNilEntry, "signature %q", sig)
		case pm.Signature() != sig:
			err = registryErrorf(methodProductOrBuild, ErrKeyMismatch,
				"built %q for key %q", pm.Signature(), sig)
		}
		elapsed := time.Since(start)
		r.metrics.build(kindProduct, elapsed.Seconds(), err)
		r.log.LogBuild(kindProduct, sig, elapsed, err)
		if err != nil {
			return nil, err
		}

		canonical, _ := r.AppendProduct(pm)

		return canonical, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*product.ProductMap), nil
}

// ProductCount returns the number of cached product tables.
func (r *Registry) ProductCount() int {
	r.productMu.RLock()
	defer r.productMu.RUnlock()

	return len(r.products)
}

// Signatures returns the cached signature keys in sorted order.
func (r *Registry) Signatures() []string {
	r.productMu.RLock()
	out := make([]string, 0, len(r.products))
	for sig := range r.products {
		out = append(out, sig)
	}
	r.productMu.RUnlock()
	sort.Strings(out)

	return out
}

// Reset drops every entry. Instances already handed out stay valid; later
// requests construct fresh canonical instances.
func (r *Registry) Reset() {
	r.basisMu.Lock()
	nb := len(r.bases)
	r.bases = make(map[int]*basis.Basis)
	r.metrics.entries(kindBasis, 0)
	r.basisMu.Unlock()

	r.productMu.Lock()
	np := len(r.products)
	r.products = make(map[string]*product.ProductMap)
	r.metrics.entries(kindProduct, 0)
	r.productMu.Unlock()

	r.log.LogReset(nb, np)
}
