// SPDX-License-Identifier: MIT
// Package: clados/product
//
// errors.go — sentinel errors for the product package.
//
// ErrBadSignature and ErrIndexRange are the product-level names of the
// signature and basis sentinels: errors.Is matches both the product and the
// underlying sentinel, so callers may branch on either.

package product

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/signature"
)

var (
	// ErrBadSignature indicates an absent signature or one whose length does
	// not match the basis generator count.
	ErrBadSignature = signature.ErrBadSignature

	// ErrIndexRange indicates a row or column outside [0, blade-count).
	ErrIndexRange = basis.ErrIndexRange

	// ErrNilBasis indicates a nil basis passed to New.
	ErrNilBasis = basis.ErrNilBasis

	// ErrBuildFailed indicates that a row worker failed while building the table.
	ErrBuildFailed = errors.New("product: table construction failed")
)

// productErrorf tags err with the method name and a formatted detail.
func productErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
