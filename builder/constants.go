// SPDX-License-Identifier: MIT
// Package: clados/builder
//
// constants.go — method tags and shared bounds.

package builder

import "github.com/katalvlaran/clados/generator"

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the facade entry point for context.
//-----------------------------------------------------------------------------

const (
	// MethodCreateBasis is the canonical name for Builder.CreateBasis.
	MethodCreateBasis = "CreateBasis"
	// MethodCreateProduct is the canonical name for Builder.CreateProduct.
	MethodCreateProduct = "CreateProduct"
	// MethodCreateProductFromBasis is the canonical name for Builder.CreateProductFromBasis.
	MethodCreateProductFromBasis = "CreateProductFromBasis"
	// MethodWarm is the canonical name for Builder.Warm.
	MethodWarm = "Warm"
	// MethodLoadConfig is the canonical name for LoadConfig.
	MethodLoadConfig = "LoadConfig"
)

//-----------------------------------------------------------------------------
// Size Bounds
//-----------------------------------------------------------------------------

// MinGenerators is the smallest accepted generator count (scalar-only algebra).
const MinGenerators = generator.MinGenerators

// MaxGenerators is the largest accepted generator count.
// Complexity impact: a product table holds 4^n cells.
const MaxGenerators = generator.MaxGenerators
