// SPDX-License-Identifier: MIT
// Package: clados/product
//
// export.go — the structured export of a product table.
//
// Layout (each line ends with '\n'; N = BladeCount, S = Signature):
//
//	<indent><GProduct>
//	<indent>\t<Signature>S</Signature>
//	<basis export at indent+"\t">
//	<indent>\t<ProductTable rows="N">
//	<indent>\t\t<row number="k" cells="r0,r1,...,r(N-1)" />
//	<indent>\t</ProductTable>
//	</GProduct>
//
// Rows and columns follow the canonical basis order, so the text is a pure
// function of the signature. The closing </GProduct> carries no indent; that
// is part of the established format consumers parse. Cells are unsigned
// result indices; ExportSignedXML adds a parallel signs attribute.

package product

import (
	"strconv"
	"strings"
)

const (
	exportTab     = "\t"
	exportNewline = "\n"
	exportListSep = ","
	signPlusText  = "+"
	signMinusText = "-"
)

// ExportXML renders the table per the layout above.
// Complexity: Time O(N²), Space O(N²·log10 N) for the returned string.
func (pm *ProductMap) ExportXML(indent string) string {
	return pm.export(indent, false)
}

// ExportSignedXML is ExportXML with an extra signs="+,-,..." attribute on each
// row, for consumers that need the sign table alongside the result indices.
func (pm *ProductMap) ExportSignedXML(indent string) string {
	return pm.export(indent, true)
}

func (pm *ProductMap) export(indent string, signed bool) string {
	var sb strings.Builder
	inner := indent + exportTab
	rowIndent := inner + exportTab

	sb.WriteString(indent)
	sb.WriteString("<GProduct>")
	sb.WriteString(exportNewline)

	sb.WriteString(inner)
	sb.WriteString("<Signature>")
	sb.WriteString(pm.sig.String())
	sb.WriteString("</Signature>")
	sb.WriteString(exportNewline)

	sb.WriteString(pm.basis.ExportXML(inner))

	sb.WriteString(inner)
	sb.WriteString(`<ProductTable rows="`)
	sb.WriteString(strconv.Itoa(pm.dim))
	sb.WriteString(`">`)
	sb.WriteString(exportNewline)

	for row := 0; row < pm.dim; row++ {
		base := row * pm.dim
		sb.WriteString(rowIndent)
		sb.WriteString(`<row number="`)
		sb.WriteString(strconv.Itoa(row))
		sb.WriteString(`" cells="`)
		for col := 0; col < pm.dim; col++ {
			if col > 0 {
				sb.WriteString(exportListSep)
			}
			sb.WriteString(strconv.Itoa(int(pm.results[base+col])))
		}
		if signed {
			sb.WriteString(`" signs="`)
			for col := 0; col < pm.dim; col++ {
				if col > 0 {
					sb.WriteString(exportListSep)
				}
				if pm.signAt(base+col) == signNegative {
					sb.WriteString(signMinusText)
				} else {
					sb.WriteString(signPlusText)
				}
			}
		}
		sb.WriteString(`" />`)
		sb.WriteString(exportNewline)
	}

	sb.WriteString(inner)
	sb.WriteString("</ProductTable>")
	sb.WriteString(exportNewline)
	sb.WriteString("</GProduct>")
	sb.WriteString(exportNewline)

	return sb.String()
}
