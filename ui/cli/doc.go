// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for SecureEdit using
// Cobra. It wires configuration, logging and localization and delegates the
// secret handling to the core and tui packages.
package cli
