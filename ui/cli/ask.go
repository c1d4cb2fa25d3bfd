// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/secureedit/core/codec"
	"github.com/toeirei/secureedit/core/secureedit"
	"github.com/toeirei/secureedit/core/security"
	"github.com/toeirei/secureedit/internal/i18n"
	"github.com/toeirei/secureedit/internal/logging"
	"github.com/toeirei/secureedit/ui/tui"
	"github.com/toeirei/secureedit/ui/tui/prompt"
	"golang.org/x/term"
)

// ErrMismatch is returned when the two entries of a confirmed read differ.
var ErrMismatch = errors.New("secrets do not match")

// isTerminal is swapped by tests.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// askTUI runs the interactive prompt; tests replace it.
var askTUI = tui.Ask

type askOptions struct {
	title   string
	confirm bool
	reveal  bool
	newline bool
	keyring string
}

func newAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Prompt for a secret and print it to stdout",
		Long: `Shows a masked prompt on the terminal and prints the entered secret to
stdout, or stores it in the OS keyring with --keyring service/account.
With --confirm the secret has to be entered twice.

If stdin is not a terminal, the first line of stdin is taken as the secret
(and the second line as the confirmation when --confirm is given).`,
		Args: cobra.NoArgs,
		RunE: runAsk,
	}
	addAskFlags(cmd.Flags())
	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	editOpts, err := c.EditOptions()
	if err != nil {
		return err
	}

	var o askOptions
	o.title, _ = cmd.Flags().GetString("prompt")
	o.confirm, _ = cmd.Flags().GetBool("confirm")
	o.reveal, _ = cmd.Flags().GetBool("reveal")
	o.newline, _ = cmd.Flags().GetBool("newline")
	o.keyring, _ = cmd.Flags().GetString("keyring")

	var target keyringTarget
	if o.keyring != "" {
		if target, err = parseKeyringTarget(o.keyring); err != nil {
			return err
		}
	}

	var secret security.Secret
	if isTerminal(cmd.InOrStdin()) {
		logging.Debugf("stdin is a terminal, starting prompt")
		secret, err = askTUI(prompt.Options{
			Title:   o.title,
			Confirm: o.confirm,
			Reveal:  o.reveal,
			Edit:    editOpts,
		})
		if errors.Is(err, prompt.ErrAborted) {
			return errors.New(i18n.T("cli.aborted"))
		}
	} else {
		logging.Debugf("stdin is not a terminal, reading secret from it")
		secret, err = readPiped(cmd.InOrStdin(), editOpts, o.confirm)
	}
	if err != nil {
		return err
	}
	defer secret.Zero()

	if o.keyring != "" {
		logging.Debugf("storing secret in keyring %s/%s", target.service, target.account)
		return target.store(secret)
	}
	return writeSecret(cmd.OutOrStdout(), secret, o.newline)
}

// readPiped loads one line (two with confirm) from r into edit buffers and
// returns the secret. The read buffers are zeroed before returning.
func readPiped(r io.Reader, opts secureedit.Options, confirm bool) (security.Secret, error) {
	br := bufio.NewReader(r)

	first := secureedit.New(opts)
	defer first.Close()
	if err := loadLine(br, first); err != nil {
		return nil, err
	}

	if confirm {
		second := secureedit.New(opts)
		defer second.Close()
		if err := loadLine(br, second); err != nil {
			return nil, err
		}
		if !first.ContentsEqualTo(second) {
			return nil, ErrMismatch
		}
	}
	return first.ToUTF8(), nil
}

// loadLine reads up to the next newline and hands it to e. A missing final
// newline is fine; a read at EOF yields an empty secret.
func loadLine(br *bufio.Reader, e *secureedit.Edit) error {
	line, err := br.ReadBytes('\n')
	defer codec.Wipe(line)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read secret: %w", err)
	}
	line = trimNewline(line)
	return e.SetPassword(line)
}

func trimNewline(b []byte) []byte {
	n := len(b)
	if n > 0 && b[n-1] == '\n' {
		n--
		if n > 0 && b[n-1] == '\r' {
			n--
		}
	}
	return b[:n]
}

func writeSecret(w io.Writer, s security.Secret, newline bool) error {
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write secret: %w", err)
	}
	if newline {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write secret: %w", err)
		}
	}
	return nil
}
