// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.
package prompt

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/secureedit/internal/i18n"
)

type KeyMap struct {
	Submit key.Binding
	Next   key.Binding
	Reveal key.Binding
	Cancel key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Submit, km.Next, km.Reveal, km.Cancel}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

var _ help.KeyMap = KeyMap{}

// DefaultKeyMap builds the bindings with labels in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("prompt.submit")),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", i18n.T("prompt.next")),
		),
		Reveal: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", i18n.T("prompt.reveal")),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", i18n.T("prompt.cancel")),
		),
	}
}
