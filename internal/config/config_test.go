// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/toeirei/secureedit/core/secretstore"
)

// isolate points the user config dir at a temp dir and runs from another
// temp dir so no real secureedit.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	work := t.TempDir()
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("mask", "", "")
	cmd.Flags().Bool("secure-desktop", false, "")
	cmd.Flags().String("memory", "", "")
	return cmd
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)
	c, err := LoadConfig[Config](&cobra.Command{}, Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Mask != "●" || c.Memory != "auto" || c.Language != "en" || c.SecureDesktop || c.Debug {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadConfig_ReadsUserFile(t *testing.T) {
	tmp := isolate(t)
	dir := filepath.Join(tmp, "secureedit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data := "mask: '*'\nsecure_desktop: true\nmemory: plain\n"
	if err := os.WriteFile(filepath.Join(dir, "secureedit.yaml"), []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := LoadConfig[Config](&cobra.Command{}, Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Mask != "*" || !c.SecureDesktop || c.Memory != "plain" {
		t.Fatalf("file values not applied: %+v", c)
	}
}

func TestLoadConfig_EnvAndFlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SECUREEDIT_MEMORY", "plain")
	t.Setenv("SECUREEDIT_MASK", "#")

	cmd := newCmd()
	if err := cmd.Flags().Set("mask", "x"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cmd.Flags().Set("secure-desktop", "true"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, err := LoadConfig[Config](cmd, Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Memory != "plain" {
		t.Fatalf("env not applied: %+v", c)
	}
	if c.Mask != "x" || !c.SecureDesktop {
		t.Fatalf("flags must win over env: %+v", c)
	}
}

func TestLoadConfig_BrokenExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("mask: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig[Config](&cobra.Command{}, Defaults(), &path); err == nil {
		t.Fatalf("expected parse error for broken config")
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	tmp := isolate(t)
	in := Config{Mask: "*", SecureDesktop: true, Memory: "protected", Language: "de"}
	if err := WriteConfigFile(&in, false); err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}
	path := filepath.Join(tmp, "secureedit", "secureedit.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "secure_desktop: true") {
		t.Fatalf("unexpected file content:\n%s", data)
	}

	out, err := LoadConfig[Config](&cobra.Command{}, Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestMaskGlyph(t *testing.T) {
	cases := []struct {
		mask    string
		want    rune
		wantErr bool
	}{
		{"", '●', false},
		{"*", '*', false},
		{"•", '•', false},
		{"**", 0, true},
		{"\xff", 0, true},
	}
	for _, tc := range cases {
		got, err := Config{Mask: tc.mask}.MaskGlyph()
		if (err != nil) != tc.wantErr {
			t.Fatalf("MaskGlyph(%q) error = %v, wantErr %v", tc.mask, err, tc.wantErr)
		}
		if !tc.wantErr && got != tc.want {
			t.Fatalf("MaskGlyph(%q) = %q, want %q", tc.mask, got, tc.want)
		}
	}
}

func TestEditOptions(t *testing.T) {
	opts, err := Config{Mask: "*", SecureDesktop: true, Memory: "plain"}.EditOptions()
	if err != nil {
		t.Fatalf("EditOptions: %v", err)
	}
	if opts.MaskGlyph != '*' || !opts.SecureDesktop || opts.Memory != secretstore.ModePlain {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if _, err := (Config{Memory: "swap"}).EditOptions(); err == nil {
		t.Fatalf("expected error for unknown memory mode")
	}
}
