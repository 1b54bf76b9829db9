package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formmask/pkg/address"
	"github.com/goliatone/go-formmask/pkg/numeric"
	"github.com/goliatone/go-formmask/pkg/widgets"
)

func TestKeySession_EditNumeric(t *testing.T) {
	field := numeric.NewField(numeric.WithRange(numeric.Range{Min: 0, Max: 10, DecimalPlaces: 2}))
	var out bytes.Buffer
	session := NewKeySession(strings.NewReader("9.999x-\r"), &out, DefaultTheme)

	got, err := session.EditNumeric(context.Background(), "weight", field)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got != "9.99" {
		t.Fatalf("text = %q, want 9.99", got)
	}
	if field.Hint() != "" {
		t.Fatalf("hint should clear when focus is released, got %q", field.Hint())
	}
	if !strings.Contains(out.String(), "decimal places must not exceed 2 places") {
		t.Fatalf("expected hint on the status line, got %q", out.String())
	}
}

func TestKeySession_EditNumericBackspace(t *testing.T) {
	field := numeric.NewField(numeric.WithSeed("42"))
	session := NewKeySession(strings.NewReader("7\x7f\x7f5"), nil, DefaultTheme)

	// Focus selects "42", so the first key replaces it.
	got, err := session.EditNumeric(context.Background(), "n", field)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got != "5" {
		t.Fatalf("text = %q, want 5", got)
	}
}

func TestKeySession_EditAddress(t *testing.T) {
	field := address.NewField()
	session := NewKeySession(strings.NewReader("192.168\t1.20\r"), nil, DefaultTheme)

	got, err := session.EditAddress(context.Background(), "gateway", field)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got != "192.168.1.20" {
		t.Fatalf("address = %q", got)
	}
	if !field.Valid() {
		t.Fatalf("expected a valid address, hint %q", field.Hint())
	}
}

func TestKeySession_Abort(t *testing.T) {
	field := numeric.NewField()
	session := NewKeySession(strings.NewReader("5\x03"), nil, DefaultTheme)

	if _, err := session.EditNumeric(context.Background(), "n", field); !errors.Is(err, ErrAborted) {
		t.Fatalf("error = %v, want ErrAborted", err)
	}
}

func TestKeySession_Edit(t *testing.T) {
	items := buildWidgets(t)
	session := NewKeySession(strings.NewReader("3"), nil, DefaultTheme)
	got, err := session.Edit(context.Background(), items[0])
	if err != nil || got != "3" {
		t.Fatalf("Edit = %q, %v", got, err)
	}

	if _, err := session.Edit(context.Background(), fakeWidget{}); !errors.Is(err, ErrUnsupportedWidget) {
		t.Fatalf("error = %v, want ErrUnsupportedWidget", err)
	}
}

func TestFocusedAddress(t *testing.T) {
	field := address.NewFieldWith("10.1.2.3")
	field.OnOctetGotFocus(2)
	if got := focusedAddress(field); got != "10.1.[2].3" {
		t.Fatalf("focusedAddress = %q", got)
	}
}

type fakeWidget struct{ widgets.Widget }
