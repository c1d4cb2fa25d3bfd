// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secureedit

import (
	"errors"
	"fmt"

	"github.com/toeirei/secureedit/internal/logging"
)

var (
	// ErrNilControl is returned by Attach when no control is given.
	ErrNilControl = errors.New("secureedit: control must not be nil")
	// ErrNilPassword is returned by SetPassword for a nil buffer.
	ErrNilPassword = errors.New("secureedit: password buffer must not be nil")
	// ErrContractViolation is the panic value of assertion failures in
	// debug builds.
	ErrContractViolation = errors.New("secureedit: contract violation")
)

// assertf reports misuse of an Edit. Debug builds panic; release builds
// log and leave it to the caller to turn the operation into a no-op.
func assertf(format string, args ...any) {
	err := fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...))
	if debugBuild {
		panic(err)
	}
	logging.Warnf("%v", err)
}
