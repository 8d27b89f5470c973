// SPDX-License-Identifier: MIT
// Package generator_test covers ordinal lookup, Flow restartability and count guards.
package generator_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/clados/generator"
	"github.com/stretchr/testify/require"
)

// TestGet covers both bounds and the out-of-range sentinel.
func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ordinal int
		wantErr error
	}{
		{"zero", 0, generator.ErrGeneratorRange},
		{"negative", -3, generator.ErrGeneratorRange},
		{"first", 1, nil},
		{"middle", 7, nil},
		{"last", 14, nil},
		{"past last", 15, generator.ErrGeneratorRange},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := generator.Get(tc.ordinal)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.ordinal, g.Ordinal())
			require.Equal(t, tc.ordinal-1, g.Index())
			require.True(t, g.Valid())
		})
	}
}

// TestFlowRestartable verifies Flow yields e1..e14 in order on every traversal
// and honors early termination.
func TestFlowRestartable(t *testing.T) {
	t.Parallel()

	for pass := 0; pass < 2; pass++ {
		var got []int
		for g := range generator.Flow() {
			got = append(got, g.Ordinal())
		}
		require.Len(t, got, generator.MaxOrdinal)
		for i, ord := range got {
			require.Equal(t, i+1, ord)
		}
	}

	// early break must stop the sequence cleanly
	seen := 0
	for g := range generator.Flow() {
		seen++
		if g.Ordinal() == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)
}

// TestFirstN checks the prefix helper and its count guard.
func TestFirstN(t *testing.T) {
	t.Parallel()

	gens, err := generator.FirstN(0)
	require.NoError(t, err)
	require.NotNil(t, gens)
	require.Empty(t, gens)

	gens, err = generator.FirstN(4)
	require.NoError(t, err)
	require.Equal(t, "e1 e2 e3 e4", joinLabels(gens))

	_, err = generator.FirstN(15)
	require.ErrorIs(t, err, generator.ErrGeneratorRange)
	_, err = generator.FirstN(-1)
	require.ErrorIs(t, err, generator.ErrGeneratorRange)
}

// TestValidateCount covers the [0,14] window.
func TestValidateCount(t *testing.T) {
	t.Parallel()

	for n := generator.MinGenerators; n <= generator.MaxGenerators; n++ {
		require.NoError(t, generator.ValidateCount(n))
	}
	require.ErrorIs(t, generator.ValidateCount(-1), generator.ErrGeneratorRange)
	require.ErrorIs(t, generator.ValidateCount(15), generator.ErrGeneratorRange)
}

// TestOrderAndLabels checks Less, String and that All returns a fresh copy.
func TestOrderAndLabels(t *testing.T) {
	t.Parallel()

	e2, err := generator.Get(2)
	require.NoError(t, err)
	e5, err := generator.Get(5)
	require.NoError(t, err)

	require.True(t, e2.Less(e5))
	require.False(t, e5.Less(e2))
	require.False(t, e2.Less(e2))
	require.Equal(t, "e2", e2.String())
	require.Equal(t, "e14", generator.Generator(14).String())
	require.False(t, generator.Generator(0).Valid())

	a := generator.All()
	a[0] = 9
	require.Equal(t, 1, generator.All()[0].Ordinal())
}

func joinLabels(gens []generator.Generator) string {
	out := ""
	for i, g := range gens {
		if i > 0 {
			out += " "
		}
		out += g.String()
	}
	return out
}
