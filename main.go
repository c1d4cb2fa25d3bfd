// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for SecureEdit.
//
// Usage:
//
//	go run . [flags]
//	./secureedit ask --confirm > secret.txt
//
// This launches the SecureEdit CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/secureedit/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
