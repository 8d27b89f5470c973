package product_test

import (
	"fmt"

	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/product"
	"github.com/katalvlaran/clados/signature"
)

// ExampleNew tabulates the spacetime-like algebra Cl(1,2) and reads a few cells.
func ExampleNew() {
	sig := signature.MustParse("+--")
	b, err := basis.Build(sig.Len())
	if err != nil {
		fmt.Println(err)
		return
	}
	pm, err := product.New(b, sig)
	if err != nil {
		fmt.Println(err)
		return
	}

	show := func(row, col int) {
		r, _ := pm.Result(row, col)
		s, _ := pm.Sign(row, col)
		left, _ := b.Blade(row)
		right, _ := b.Blade(col)
		res, _ := b.Blade(r)
		fmt.Printf("%s * %s = %+d %s\n", left, right, s, res)
	}
	show(1, 1) // e1 e1
	show(2, 2) // e2 e2
	show(1, 2) // e1 e2
	show(2, 1) // e2 e1
	show(4, 4) // e12 e12

	// Output:
	// e1 * e1 = +1 1
	// e2 * e2 = -1 1
	// e1 * e2 = +1 e1^e2
	// e2 * e1 = -1 e1^e2
	// e1^e2 * e1^e2 = +1 1
}
