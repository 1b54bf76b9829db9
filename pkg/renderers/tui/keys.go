package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formmask/pkg/address"
	"github.com/goliatone/go-formmask/pkg/numeric"
	"github.com/goliatone/go-formmask/pkg/widgets"
)

const (
	clearLine = "\r\x1b[K"
	keyTab    = '\t'
	keyEOT    = '\x04'
)

// RuneSource yields one keystroke at a time. terminal.RuneReader satisfies
// it in raw mode; tests use strings.Reader.
type RuneSource interface {
	ReadRune() (rune, int, error)
}

// KeySession replays keystrokes from a RuneSource into widget KeyPress
// hooks, redrawing a single status line after every key.
type KeySession struct {
	in    RuneSource
	out   io.Writer
	theme Theme
}

// NewKeySession builds a session reading from in and drawing to out.
func NewKeySession(in RuneSource, out io.Writer, theme Theme) *KeySession {
	return &KeySession{in: in, out: out, theme: theme}
}

// RunTerminal puts stdio into raw mode, runs fn with a session bound to it and
// restores the terminal afterwards.
func RunTerminal(stdio terminal.Stdio, theme Theme, fn func(*KeySession) error) error {
	reader := terminal.NewRuneReader(stdio)
	if err := reader.SetTermMode(); err != nil {
		return fmt.Errorf("tui: raw mode: %w", err)
	}
	defer func() {
		_ = reader.RestoreTermMode()
	}()
	return fn(NewKeySession(reader, stdio.Out, theme))
}

// Edit dispatches to EditNumeric or EditAddress depending on the widget.
func (s *KeySession) Edit(ctx context.Context, w widgets.Widget) (string, error) {
	switch typed := w.(type) {
	case *widgets.NumericWidget:
		return s.EditNumeric(ctx, typed.Name(), typed.Field)
	case *widgets.AddressWidget:
		return s.EditAddress(ctx, typed.Name(), typed.Field)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedWidget, w)
	}
}

// EditNumeric focuses field, feeds it keystrokes until Enter or end of input
// and returns the committed text. Focus is released before returning.
func (s *KeySession) EditNumeric(ctx context.Context, label string, field *numeric.Field) (string, error) {
	field.OnFocusGained()
	s.draw(label, field.Text(), field.Hint())
	defer field.OnFocusLost()

	for {
		key, done, err := s.next(ctx)
		if err != nil {
			return field.Text(), err
		}
		if done {
			s.finish()
			return field.Text(), nil
		}
		if key == keyTab {
			continue
		}
		res := field.KeyPress(key)
		s.draw(label, res.Text, field.Hint())
	}
}

// EditAddress focuses the first octet and feeds keystrokes to the focused
// octet. '.' and Tab move to the next octet; Enter or end of input returns
// the joined address.
func (s *KeySession) EditAddress(ctx context.Context, label string, field *address.Field) (string, error) {
	field.OnOctetGotFocus(0)
	s.draw(label, focusedAddress(field), field.Hint())
	defer func() {
		if octet := field.Octet(field.Focus()); octet != nil {
			octet.OnFocusLost()
		}
	}()

	for {
		key, done, err := s.next(ctx)
		if err != nil {
			return field.Address(), err
		}
		if done {
			s.finish()
			return field.Address(), nil
		}
		if key == keyTab {
			field.OnSeparatorKey(field.Focus())
		} else {
			field.KeyPress(field.Focus(), key)
		}
		s.draw(label, focusedAddress(field), addressHint(field))
	}
}

// next reads one keystroke. done reports Enter or end of input.
func (s *KeySession) next(ctx context.Context) (numeric.Key, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	r, _, err := s.in.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, true, nil
		}
		if errors.Is(err, terminal.InterruptErr) {
			return 0, false, ErrAborted
		}
		return 0, false, fmt.Errorf("tui: read key: %w", err)
	}
	switch r {
	case terminal.KeyEnter, '\n':
		return 0, true, nil
	case terminal.KeyInterrupt, keyEOT:
		return 0, false, ErrAborted
	case terminal.KeyDelete:
		return numeric.KeyBackspace, false, nil
	}
	return numeric.Key(r), false, nil
}

func (s *KeySession) draw(label, text, hint string) {
	if s.out == nil {
		return
	}
	line := s.theme.PromptPrefix + label + ": " + text
	if hint != "" {
		line += "  " + s.theme.ErrorPrefix + hint
	}
	fmt.Fprint(s.out, clearLine+line)
}

func (s *KeySession) finish() {
	if s.out != nil {
		fmt.Fprintln(s.out)
	}
}

// focusedAddress renders the octets with the focused one in brackets.
func focusedAddress(field *address.Field) string {
	parts := make([]string, address.OctetCount)
	for i := range parts {
		text := field.Octet(i).Text()
		if i == field.Focus() {
			text = "[" + text + "]"
		}
		parts[i] = text
	}
	return strings.Join(parts, ".")
}

// addressHint prefers the focused octet's range hint over the address hint.
func addressHint(field *address.Field) string {
	if hint := field.Octet(field.Focus()).Hint(); hint != "" {
		return hint
	}
	return field.Hint()
}
