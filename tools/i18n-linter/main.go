// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the prompt translations for consistency. It collects
// every i18n.T("key") call in the Go sources and compares the keys against
// the YAML locale files: keys used but not defined, keys defined but not
// used, keys missing from a secondary locale and messages whose format
// verbs differ from the primary locale.
package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found key.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

// report is the outcome of one lint run.
type report struct {
	used      map[string][]Location
	undefined []string
	orphaned  []string
	missing   map[string][]string
	verbs     map[string][]string
}

func (r report) failed() bool {
	if len(r.undefined) > 0 {
		return true
	}
	for _, keys := range r.missing {
		if len(keys) > 0 {
			return true
		}
	}
	for _, keys := range r.verbs {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	r, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d unique translation keys used in source code.\n\n", len(r.used))

	section("Keys used in code but not in "+primaryLocale, r.undefined, func(k string) string {
		loc := r.used[k][0]
		return fmt.Sprintf("%s (%s:%d)", k, loc.Filepath, loc.Line)
	})
	section("Orphaned keys (in "+primaryLocale+" but not used in code)", r.orphaned, nil)
	for _, file := range sortedKeys(r.missing) {
		section("Missing keys in "+file, r.missing[file], nil)
	}
	for _, file := range sortedKeys(r.verbs) {
		section("Format verb mismatches in "+file, r.verbs[file], nil)
	}

	fmt.Println("--- Linter Finished ---")
	switch {
	case r.failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(r.orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func section(title string, keys []string, describe func(string) string) {
	fmt.Printf("--- %s ---\n", title)
	if len(keys) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, k := range keys {
		if describe != nil {
			k = describe(k)
		}
		fmt.Printf("  - %s\n", k)
	}
	fmt.Println()
}

// lint runs every check against the sources under root and the locale
// files in locales.
func lint(root, locales, primary string) (report, error) {
	r := report{missing: map[string][]string{}, verbs: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("error finding used keys: %w", err)
	}
	r.used = used

	primaryMsgs, err := loadLocale(filepath.Join(locales, primary))
	if err != nil {
		return r, fmt.Errorf("error loading primary locale '%s': %w", primary, err)
	}

	for k := range used {
		if _, ok := primaryMsgs[k]; !ok {
			r.undefined = append(r.undefined, k)
		}
	}
	for k := range primaryMsgs {
		if _, ok := used[k]; !ok {
			r.orphaned = append(r.orphaned, k)
		}
	}
	sort.Strings(r.undefined)
	sort.Strings(r.orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, fmt.Errorf("error finding locale files: %w", err)
	}
	for _, file := range files {
		name := filepath.Base(file)
		if name == primary {
			continue
		}
		msgs, err := loadLocale(file)
		if err != nil {
			return r, fmt.Errorf("error loading %s: %w", file, err)
		}
		for k, want := range primaryMsgs {
			got, ok := msgs[k]
			if !ok {
				r.missing[name] = append(r.missing[name], k)
				continue
			}
			if formatVerbs(got) != formatVerbs(want) {
				r.verbs[name] = append(r.verbs[name], k)
			}
		}
		sort.Strings(r.missing[name])
		sort.Strings(r.verbs[name])
	}
	return r, nil
}

// findUsedKeys parses all non-test .go files below root and records the
// literal first argument of every i18n.T call.
func findUsedKeys(root string) (map[string][]Location, error) {
	keys := make(map[string][]Location)
	fset := token.NewFileSet()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || name == "vendor" || name == "testdata" ||
				strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		f, err := parser.ParseFile(fset, path, nil, 0)
		if err != nil {
			return err
		}
		ast.Inspect(f, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok || len(call.Args) == 0 {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || sel.Sel.Name != "T" {
				return true
			}
			if pkg, ok := sel.X.(*ast.Ident); !ok || pkg.Name != "i18n" {
				return true
			}
			lit, ok := call.Args[0].(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				return true
			}
			key, err := strconv.Unquote(lit.Value)
			if err != nil {
				return true
			}
			pos := fset.Position(lit.Pos())
			keys[key] = append(keys[key], Location{Filepath: path, Line: pos.Line})
			return true
		})
		return nil
	})
	return keys, err
}

// loadLocale reads a YAML locale file and returns its messages keyed by
// the flattened, dot-separated key.
func loadLocale(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	msgs := make(map[string]string)
	flattenYAML("", data, msgs)
	return msgs, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
func flattenYAML(prefix string, node any, msgs map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, msgs)
		}
	default:
		if prefix != "" {
			msgs[prefix] = fmt.Sprint(v)
		}
	}
}

var verbRe = regexp.MustCompile(`%[-+# 0]*[0-9]*(?:\.[0-9]+)?[a-zA-Z%]`)

// formatVerbs returns the printf verbs of msg in order, joined.
func formatVerbs(msg string) string {
	return strings.Join(verbRe.FindAllString(msg, -1), " ")
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
