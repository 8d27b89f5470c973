// SPDX-License-Identifier: MIT
package builder_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/builder"
	"github.com/katalvlaran/clados/product"
	"github.com/katalvlaran/clados/registry"
	"github.com/stretchr/testify/require"
)

// TestCreateBasisIdentity returns one pointer per generator count.
func TestCreateBasisIdentity(t *testing.T) {
	t.Parallel()
	b := builder.New()

	b1, err := b.CreateBasis(3)
	require.NoError(t, err)
	b2, err := b.CreateBasis(3)
	require.NoError(t, err)
	require.Same(t, b1, b2)
	require.Equal(t, 8, b1.BladeCount())

	_, err = b.CreateBasis(15)
	require.ErrorIs(t, err, builder.ErrGeneratorRange)
	_, err = b.CreateBasis(-1)
	require.ErrorIs(t, err, builder.ErrGeneratorRange)
	require.Equal(t, 1, b.Registry().BasisCount())
}

// TestCreateProductIdentity covers same-key identity and order-sensitive keys.
func TestCreateProductIdentity(t *testing.T) {
	t.Parallel()
	b := builder.New()

	p1, err := b.CreateProduct("+-")
	require.NoError(t, err)
	p2, err := b.CreateProduct("+-")
	require.NoError(t, err)
	require.Same(t, p1, p2)

	p3, err := b.CreateProduct("-+")
	require.NoError(t, err)
	require.NotSame(t, p1, p3)
	require.Equal(t, 2, b.Registry().ProductCount())

	// Both tables share the canonical 2-generator basis.
	bs, err := b.CreateBasis(2)
	require.NoError(t, err)
	require.Same(t, bs, p1.Basis())
	require.Same(t, bs, p3.Basis())
}

// TestCreateProductValidatesFirst leaves the registry untouched on bad input.
func TestCreateProductValidatesFirst(t *testing.T) {
	t.Parallel()
	b := builder.New()

	for _, sig := range []string{"", "+0-", strings.Repeat("+", 15)} {
		_, err := b.CreateProduct(sig)
		require.ErrorIs(t, err, builder.ErrBadSignature, "%q", sig)
	}
	require.Zero(t, b.Registry().ProductCount())
	require.Zero(t, b.Registry().BasisCount())
}

// TestCreateProductFromBasis covers reuse of the supplied and cached bases.
func TestCreateProductFromBasis(t *testing.T) {
	t.Parallel()
	b := builder.New()

	supplied, err := basis.Build(3)
	require.NoError(t, err)

	pm, err := b.CreateProductFromBasis(supplied, "++-")
	require.NoError(t, err)
	require.Same(t, supplied, pm.Basis())

	// supplied is now canonical for n=3.
	cached, err := b.CreateBasis(3)
	require.NoError(t, err)
	require.Same(t, supplied, cached)

	// A different instance for the same n is ignored in favor of the cache.
	other, err := basis.Build(3)
	require.NoError(t, err)
	pm2, err := b.CreateProductFromBasis(other, "+++")
	require.NoError(t, err)
	require.Same(t, supplied, pm2.Basis())

	// Hit by signature returns the existing table whatever basis is offered.
	again, err := b.CreateProductFromBasis(other, "++-")
	require.NoError(t, err)
	require.Same(t, pm, again)

	_, err = b.CreateProductFromBasis(nil, "++-")
	require.ErrorIs(t, err, builder.ErrNilBasis)
	_, err = b.CreateProductFromBasis(supplied, "++")
	require.ErrorIs(t, err, builder.ErrBadSignature)
	_, err = b.CreateProductFromBasis(supplied, "+x+")
	require.ErrorIs(t, err, builder.ErrBadSignature)
}

// TestSquares checks "+++" and "-++" self-products through the facade.
func TestSquares(t *testing.T) {
	t.Parallel()
	b := builder.New()

	pm, err := b.CreateProduct("+++")
	require.NoError(t, err)
	for i := 1; i < pm.BladeCount(); i++ {
		idx, err := pm.Result(i, i)
		require.NoError(t, err)
		require.Equal(t, 0, idx)

		grade, err := pm.Basis().GradeOf(i)
		require.NoError(t, err)
		want := int8(1)
		if (grade*(grade-1)/2)%2 == 1 {
			want = -1
		}
		sign, err := pm.Sign(i, i)
		require.NoError(t, err)
		require.Equal(t, want, sign, "blade %d", i)
	}

	neg, err := b.CreateProduct("-++")
	require.NoError(t, err)
	idx, err := neg.Result(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	sign, err := neg.Sign(1, 1)
	require.NoError(t, err)
	require.Equal(t, int8(-1), sign)
}

// TestRemoveBasisThenRebuild re-satisfies the grade partition.
func TestRemoveBasisThenRebuild(t *testing.T) {
	t.Parallel()
	b := builder.New()

	first, err := b.CreateBasis(5)
	require.NoError(t, err)
	b.Registry().RemoveBasis(5)

	fresh, err := b.CreateBasis(5)
	require.NoError(t, err)
	require.NotSame(t, first, fresh)

	next := 0
	for k := 0; k <= 5; k++ {
		r, err := fresh.GradeRange(k)
		require.NoError(t, err)
		require.Equal(t, next, r.Start)
		next = r.End
	}
	require.Equal(t, 32, next)
}

// TestExportIdentityRow checks row 0 of the "++" export.
func TestExportIdentityRow(t *testing.T) {
	t.Parallel()
	b := builder.New()

	pm, err := b.CreateProduct("++")
	require.NoError(t, err)
	out := pm.ExportXML("")
	require.Contains(t, out, `<ProductTable rows="4">`)
	require.Contains(t, out, `<row number="0" cells="0,1,2,3" />`)
	require.Equal(t, 4, strings.Count(out, "<row "))
}

// TestSharedRegistry shares canonical instances between builders.
func TestSharedRegistry(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	a := builder.New(builder.WithRegistry(reg))
	c := builder.New(builder.WithRegistry(reg), builder.WithParallelism(1))
	require.Same(t, reg, a.Registry())

	p1, err := a.CreateProduct("+--")
	require.NoError(t, err)
	p2, err := c.CreateProduct("+--")
	require.NoError(t, err)
	require.Same(t, p1, p2)
}

// TestProductContract exposes the table through the CliffordProduct interface.
func TestProductContract(t *testing.T) {
	t.Parallel()
	b := builder.New()

	cp, err := b.Product("+-")
	require.NoError(t, err)
	require.Equal(t, "+-", cp.Signature())
	require.Equal(t, 4, cp.BladeCount())

	_, err = b.Product("")
	require.ErrorIs(t, err, builder.ErrBadSignature)
}

// TestConcurrentCreateProduct observes one canonical table across goroutines.
func TestConcurrentCreateProduct(t *testing.T) {
	t.Parallel()
	b := builder.New()

	const workers = 16
	got := make([]*product.ProductMap, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pm, err := b.CreateProduct("++-+")
			require.NoError(t, err)
			got[i] = pm
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, got[0], got[i])
	}
	require.Equal(t, 1, b.Registry().ProductCount())
	require.Equal(t, 1, b.Registry().BasisCount())
}
