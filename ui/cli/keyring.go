// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toeirei/secureedit/core/security"
	"github.com/zalando/go-keyring"
)

// ErrKeyringTarget is returned for a --keyring value that is not service/account.
var ErrKeyringTarget = errors.New("keyring target must be service/account")

type keyringTarget struct {
	service string
	account string
}

func parseKeyringTarget(s string) (keyringTarget, error) {
	service, account, ok := strings.Cut(s, "/")
	if !ok || service == "" || account == "" {
		return keyringTarget{}, fmt.Errorf("%w: %q", ErrKeyringTarget, s)
	}
	return keyringTarget{service: service, account: account}, nil
}

// store saves s in the OS keyring. go-keyring only takes strings, so one
// immutable copy of the secret exists until the next GC cycle.
func (k keyringTarget) store(s security.Secret) error {
	if err := keyring.Set(k.service, k.account, string(s)); err != nil {
		return fmt.Errorf("store secret in keyring %s/%s: %w", k.service, k.account, err)
	}
	return nil
}
