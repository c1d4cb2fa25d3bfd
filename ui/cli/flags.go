// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/pflag"
	"github.com/toeirei/secureedit/core/secureedit"
)

// addConfigFlags registers flags that mirror config keys. Dashes map to
// underscores in the config file.
func addConfigFlags(fs *pflag.FlagSet) {
	if fs.Lookup("config") != nil {
		return
	}
	fs.String("config", "", "config file (default: secureedit.yaml in the user or system config dir)")
	fs.String("mask", string(secureedit.DefaultMaskGlyph), "character shown for every secret character")
	fs.Bool("secure-desktop", false, "ignore dropped text (bracketed paste is treated as typing)")
	fs.String("memory", "auto", "secret storage: auto, protected or plain")
	fs.String("language", "en", `prompt language ("en", "de")`)
	fs.BoolP("debug", "d", false, "enable debug logging on stderr")
}

func addAskFlags(fs *pflag.FlagSet) {
	fs.String("prompt", "", "heading shown above the prompt")
	fs.Bool("confirm", false, "ask twice and require both entries to match")
	fs.Bool("reveal", false, "start with the secret visible")
	fs.Bool("newline", false, "terminate the output with a newline")
	fs.String("keyring", "", "store the secret in the OS keyring as service/account instead of printing it")
}
