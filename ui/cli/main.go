// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"github.com/toeirei/secureedit/buildvars"
	"github.com/toeirei/secureedit/internal/config"
	"github.com/toeirei/secureedit/internal/i18n"
	"github.com/toeirei/secureedit/internal/logging"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	// wipe protected memory on ctrl+c and on normal exit
	memguard.CatchInterrupt()
	defer memguard.Purge()

	return NewRootCmd().Execute()
}

// loadConfig resolves the effective configuration for cmd and applies the
// process-wide parts of it (logging and language).
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var path *string
	if cmd.Flags().Changed("config") {
		p, err := cmd.Flags().GetString("config")
		if err != nil {
			return config.Config{}, fmt.Errorf("could not read --config flag: %w", err)
		}
		if p != "" {
			if _, err := os.Stat(p); err != nil {
				return config.Config{}, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
			}
			path = &p
		}
	}

	c, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil {
		return c, fmt.Errorf("error loading config: %w", err)
	}
	logging.SetDebug(c.Debug)
	i18n.Init(c.Language)
	logging.Debugf("config loaded: mask=%q memory=%s secure_desktop=%t", c.Mask, c.Memory, c.SecureDesktop)
	return c, nil
}

// NewRootCmd creates and configures a new root cobra command. Tests call it
// to get isolated command trees.
func NewRootCmd() *cobra.Command {
	ask := newAskCmd()

	cmd := &cobra.Command{
		Use:   "secureedit",
		Short: "Ask for a secret in a masked terminal prompt.",
		Long: `SecureEdit reads a password or other secret from the terminal without ever
putting the plaintext on screen, then writes it to stdout for the calling
script. The secret is kept in locked, encrypted memory while it is edited.

When stdin is not a terminal the secret is read from stdin instead.
Running without a subcommand is the same as "secureedit ask".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          ask.RunE,
	}
	addConfigFlags(cmd.PersistentFlags())
	addAskFlags(cmd.Flags())

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(ask, newConfigCmd(), versionCmd)
	return cmd
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/secureedit" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
