package basis_test

import (
	"fmt"

	"github.com/katalvlaran/clados/basis"
)

// ExampleBuild lists the canonical basis of a three-generator algebra.
func ExampleBuild() {
	b, err := basis.Build(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, bl := range b.Blades() {
		fmt.Println(i, bl, bl.Grade())
	}
	bivectors, _ := b.GradeRange(2)
	fmt.Println("bivectors:", bivectors, "pseudoscalar:", b.PScalarRange())

	// Output:
	// 0 1 0
	// 1 e1 1
	// 2 e2 1
	// 3 e3 1
	// 4 e1^e2 2
	// 5 e1^e3 2
	// 6 e2^e3 2
	// 7 e1^e2^e3 3
	// bivectors: [4,7) pseudoscalar: [7,8)
}
