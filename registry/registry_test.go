// SPDX-License-Identifier: MIT
package registry_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/generator"
	"github.com/katalvlaran/clados/product"
	"github.com/katalvlaran/clados/registry"
	"github.com/katalvlaran/clados/signature"
	"github.com/stretchr/testify/require"
)

// buildBasis is a BasisBuildFunc over basis.Build.
func buildBasis(n int) (*basis.Basis, error) { return basis.Build(n) }

// buildProduct is a ProductBuildFunc that builds its own basis.
func buildProduct(sig string) (*product.ProductMap, error) {
	s, err := signature.Parse(sig)
	if err != nil {
		return nil, err
	}
	b, err := basis.Build(s.Len())
	if err != nil {
		return nil, err
	}
	return product.New(b, s)
}

func mustProduct(t *testing.T, sig string) *product.ProductMap {
	t.Helper()
	pm, err := buildProduct(sig)
	require.NoError(t, err)
	return pm
}

// TestAppendBasisInsertIfAbsent checks that a second append returns the first instance.
func TestAppendBasisInsertIfAbsent(t *testing.T) {
	t.Parallel()
	r := registry.New()

	b1, err := basis.Build(3)
	require.NoError(t, err)
	b2, err := basis.Build(3)
	require.NoError(t, err)
	require.NotSame(t, b1, b2)

	got, inserted := r.AppendBasis(b1)
	require.True(t, inserted)
	require.Same(t, b1, got)

	got, inserted = r.AppendBasis(b2)
	require.False(t, inserted)
	require.Same(t, b1, got)

	found, ok := r.FindBasis(3)
	require.True(t, ok)
	require.Same(t, b1, found)
	require.Equal(t, 1, r.BasisCount())

	got, inserted = r.AppendBasis(nil)
	require.Nil(t, got)
	require.False(t, inserted)
}

// TestFindMissing reports absence without constructing anything.
func TestFindMissing(t *testing.T) {
	t.Parallel()
	r := registry.New()

	b, ok := r.FindBasis(4)
	require.False(t, ok)
	require.Nil(t, b)

	pm, ok := r.FindProduct("++")
	require.False(t, ok)
	require.Nil(t, pm)

	require.Zero(t, r.BasisCount())
	require.Zero(t, r.ProductCount())
}

// TestRemoveBasis covers key and instance removal, including no-op cases.
func TestRemoveBasis(t *testing.T) {
	t.Parallel()
	r := registry.New()

	b, err := r.BasisOrBuild(2, buildBasis)
	require.NoError(t, err)

	r.RemoveBasis(5) // absent
	require.Equal(t, 1, r.BasisCount())

	other, err := basis.Build(2)
	require.NoError(t, err)
	r.RemoveBasisInstance(other) // not canonical
	require.Equal(t, 1, r.BasisCount())

	r.RemoveBasisInstance(nil)
	r.RemoveBasisInstance(b)
	require.Zero(t, r.BasisCount())

	r.RemoveBasis(2) // idempotent
	require.Zero(t, r.BasisCount())

	// Rebuild after removal yields a fresh, equally valid instance.
	again, err := r.BasisOrBuild(2, buildBasis)
	require.NoError(t, err)
	require.NotSame(t, b, again)
	require.Equal(t, b.BladeCount(), again.BladeCount())
	require.Equal(t, b.PScalarRange(), again.PScalarRange())
}

// TestProductKeysAreOrderSensitive keeps "+-" and "-+" apart.
func TestProductKeysAreOrderSensitive(t *testing.T) {
	t.Parallel()
	r := registry.New()

	pmA, err := r.ProductOrBuild("+-", buildProduct)
	require.NoError(t, err)
	pmB, err := r.ProductOrBuild("-+", buildProduct)
	require.NoError(t, err)

	require.NotSame(t, pmA, pmB)
	require.Equal(t, 2, r.ProductCount())
	require.Equal(t, []string{"+-", "-+"}, r.Signatures())

	again, err := r.ProductOrBuild("+-", buildProduct)
	require.NoError(t, err)
	require.Same(t, pmA, again)
}

// TestAppendAndRemoveProduct mirrors the basis append/remove contract.
func TestAppendAndRemoveProduct(t *testing.T) {
	t.Parallel()
	r := registry.New()

	p1 := mustProduct(t, "++-")
	p2 := mustProduct(t, "++-")

	got, inserted := r.AppendProduct(p1)
	require.True(t, inserted)
	require.Same(t, p1, got)

	got, inserted = r.AppendProduct(p2)
	require.False(t, inserted)
	require.Same(t, p1, got)

	r.RemoveProductInstance(p2)
	require.Equal(t, 1, r.ProductCount())

	r.RemoveProduct("---")
	require.Equal(t, 1, r.ProductCount())

	r.RemoveProductInstance(p1)
	require.Zero(t, r.ProductCount())

	_, inserted = r.AppendProduct(p2)
	require.True(t, inserted)
	r.RemoveProduct("++-")
	r.RemoveProduct("++-")
	require.Zero(t, r.ProductCount())

	got, inserted = r.AppendProduct(nil)
	require.Nil(t, got)
	require.False(t, inserted)
}

// TestBuildFailureRegistersNothing checks error propagation and the
// nil/mismatch guards.
func TestBuildFailureRegistersNothing(t *testing.T) {
	t.Parallel()
	r := registry.New()
	boom := errors.New("boom")

	_, err := r.BasisOrBuild(3, func(int) (*basis.Basis, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	_, err = r.BasisOrBuild(3, func(int) (*basis.Basis, error) { return nil, nil })
	require.ErrorIs(t, err, registry.ErrNilEntry)

	_, err = r.BasisOrBuild(3, func(int) (*basis.Basis, error) { return basis.Build(2) })
	require.ErrorIs(t, err, registry.ErrKeyMismatch)

	_, err = r.BasisOrBuild(-1, buildBasis)
	require.ErrorIs(t, err, generator.ErrGeneratorRange)

	require.Zero(t, r.BasisCount())

	_, err = r.ProductOrBuild("+x", buildProduct)
	require.ErrorIs(t, err, signature.ErrBadSignature)

	_, err = r.ProductOrBuild("+-", func(string) (*product.ProductMap, error) { return nil, nil })
	require.ErrorIs(t, err, registry.ErrNilEntry)

	_, err = r.ProductOrBuild("+-", func(string) (*product.ProductMap, error) {
		return buildProduct("-+")
	})
	require.ErrorIs(t, err, registry.ErrKeyMismatch)

	require.Zero(t, r.ProductCount())
}

// TestReset drops everything but leaves handed-out instances usable.
func TestReset(t *testing.T) {
	t.Parallel()
	r := registry.New()

	b, err := r.BasisOrBuild(3, buildBasis)
	require.NoError(t, err)
	pm, err := r.ProductOrBuild("+++", buildProduct)
	require.NoError(t, err)

	r.Reset()
	require.Zero(t, r.BasisCount())
	require.Zero(t, r.ProductCount())
	require.Empty(t, r.Signatures())
	require.Empty(t, r.GeneratorCounts())

	require.Equal(t, 8, b.BladeCount())
	idx, err := pm.Result(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, idx)
}

// TestGeneratorCountsSorted lists cached keys in ascending order.
func TestGeneratorCountsSorted(t *testing.T) {
	t.Parallel()
	r := registry.New()

	for _, n := range []int{4, 0, 2} {
		_, err := r.BasisOrBuild(n, buildBasis)
		require.NoError(t, err)
	}
	require.Equal(t, []int{0, 2, 4}, r.GeneratorCounts())
}

// TestOptionPanics rejects nil option arguments eagerly.
func TestOptionPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { registry.WithLogger(nil) })
	require.Panics(t, func() { registry.WithRegisterer(nil) })
}
