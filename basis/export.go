// SPDX-License-Identifier: MIT
// Package: clados/basis
//
// export.go — structured text export of a basis.
//
// Layout (every line ends with '\n'):
//
//	<indent><Basis generators="n" blades="N">
//	<indent>\t<GradeRange grade="k" start="s" end="e" />   one per grade
//	<indent>\t<Blade number="i" generators="1,3" />         one per blade
//	<indent></Basis>
//
// The scalar blade exports generators="". Output is a pure function of n.

package basis

import (
	"strconv"
	"strings"
)

const (
	exportTab      = "\t"
	exportNewline  = "\n"
	exportListSep  = ","
	basisOpenFmt   = `<Basis generators="`
	basisBladesFmt = `" blades="`
	basisClose     = "</Basis>"
)

// ExportXML renders b in the layout above, each line prefixed with indent.
// Complexity: Time O(n·2^n), Space O(n·2^n) for the returned string.
func (b *Basis) ExportXML(indent string) string {
	var sb strings.Builder
	inner := indent + exportTab

	sb.WriteString(indent)
	sb.WriteString(basisOpenFmt)
	sb.WriteString(strconv.Itoa(b.n))
	sb.WriteString(basisBladesFmt)
	sb.WriteString(strconv.Itoa(len(b.blades)))
	sb.WriteString(`">`)
	sb.WriteString(exportNewline)

	for k, r := range b.gradeRanges {
		sb.WriteString(inner)
		sb.WriteString(`<GradeRange grade="`)
		sb.WriteString(strconv.Itoa(k))
		sb.WriteString(`" start="`)
		sb.WriteString(strconv.Itoa(r.Start))
		sb.WriteString(`" end="`)
		sb.WriteString(strconv.Itoa(r.End))
		sb.WriteString(`" />`)
		sb.WriteString(exportNewline)
	}

	for i, bl := range b.blades {
		sb.WriteString(inner)
		sb.WriteString(`<Blade number="`)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(`" generators="`)
		for j, ord := range bl.Ordinals() {
			if j > 0 {
				sb.WriteString(exportListSep)
			}
			sb.WriteString(strconv.Itoa(ord))
		}
		sb.WriteString(`" />`)
		sb.WriteString(exportNewline)
	}

	sb.WriteString(indent)
	sb.WriteString(basisClose)
	sb.WriteString(exportNewline)

	return sb.String()
}
