// SPDX-License-Identifier: MIT
package basis_test

import (
	"testing"

	"github.com/katalvlaran/clados/basis"
	"github.com/stretchr/testify/require"
)

// TestExportXMLN2 pins the exact export for two generators.
func TestExportXMLN2(t *testing.T) {
	t.Parallel()

	b, err := basis.Build(2)
	require.NoError(t, err)

	want := "  <Basis generators=\"2\" blades=\"4\">\n" +
		"  \t<GradeRange grade=\"0\" start=\"0\" end=\"1\" />\n" +
		"  \t<GradeRange grade=\"1\" start=\"1\" end=\"3\" />\n" +
		"  \t<GradeRange grade=\"2\" start=\"3\" end=\"4\" />\n" +
		"  \t<Blade number=\"0\" generators=\"\" />\n" +
		"  \t<Blade number=\"1\" generators=\"1\" />\n" +
		"  \t<Blade number=\"2\" generators=\"2\" />\n" +
		"  \t<Blade number=\"3\" generators=\"1,2\" />\n" +
		"  </Basis>\n"
	require.Equal(t, want, b.ExportXML("  "))
}

// TestExportDeterministic checks two builds export identically.
func TestExportDeterministic(t *testing.T) {
	t.Parallel()

	a, err := basis.Build(5)
	require.NoError(t, err)
	b, err := basis.Build(5)
	require.NoError(t, err)
	require.Equal(t, a.ExportXML(""), b.ExportXML(""))
}
