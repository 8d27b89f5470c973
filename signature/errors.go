// SPDX-License-Identifier: MIT
// Package: clados/signature
//
// errors.go — sentinel errors for the signature package.

package signature

import (
	"errors"
	"fmt"
)

// ErrBadSignature indicates that a signature is absent (empty), too long, has
// a length that disagrees with its generator count, or contains a character
// other than '+' or '-'.
// Usage: if errors.Is(err, ErrBadSignature) { /* clean or reject the input */ }.
var ErrBadSignature = errors.New("signature: bad signature")

// signatureErrorf prefixes err with the method tag and a formatted detail.
func signatureErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
