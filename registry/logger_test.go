// SPDX-License-Identifier: MIT
package registry_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/registry"
	"github.com/stretchr/testify/require"
)

// TestLoggerRecordsBuildsAndRemovals checks structured fields end to end.
func TestLoggerRecordsBuildsAndRemovals(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := registry.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := registry.New(registry.WithLogger(logger))

	_, err := r.BasisOrBuild(3, buildBasis)
	require.NoError(t, err)
	r.RemoveBasis(3)
	_, err = r.BasisOrBuild(-2, func(n int) (*basis.Basis, error) { return basis.Build(n) })
	require.Error(t, err)
	r.Reset()

	out := buf.String()
	require.Contains(t, out, "build completed")
	require.Contains(t, out, "kind=basis")
	require.Contains(t, out, "key=3")
	require.Contains(t, out, "entry removed")
	require.Contains(t, out, "build failed")
	require.Contains(t, out, "registry reset")
}

// TestNoopLoggerIsSilent ensures the default logger never enables output.
func TestNoopLoggerIsSilent(t *testing.T) {
	t.Parallel()
	l := registry.NoopLogger()
	require.False(t, l.Enabled(t.Context(), slog.LevelError))
}
