// SPDX-License-Identifier: MIT
// Package: edgeweight/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with `%w` via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the minimum the requested
// topology needs (e.g. a cycle needs three vertices).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// builderErrorf wraps a sentinel with the constructor name and parameters.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
