// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal front end. The secureinput package
// adapts a bubbles text input to the edit buffer's host control contract,
// prompt composes one or two of those into a form, and Ask runs it.
package tui
