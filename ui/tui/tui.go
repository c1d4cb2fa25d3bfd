// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/secureedit/core/security"
	"github.com/toeirei/secureedit/ui/tui/prompt"
)

// Ask shows the prompt on the terminal and returns the entered secret. The
// UI is drawn on stderr so stdout stays free for the result.
func Ask(opts prompt.Options) (security.Secret, error) {
	m, err := prompt.New(opts)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run(); err != nil {
		return nil, err
	}
	return m.Result()
}
