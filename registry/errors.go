// SPDX-License-Identifier: MIT
// Package: clados/registry
//
// errors.go — sentinel errors for the registry package.
//
// Build-function errors are returned to every caller of the flight unchanged
// (wrapped with %w), so the facade's own sentinels stay matchable.

package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEntry indicates a build function returned (nil, nil).
	ErrNilEntry = errors.New("registry: build returned nil entry")

	// ErrKeyMismatch indicates a built entry whose key differs from the
	// requested key (e.g. a 3-generator basis built for key 4).
	ErrKeyMismatch = errors.New("registry: built entry does not match key")
)

func registryErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
