package address

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formmask/pkg/numeric"
)

func TestField_Default(t *testing.T) {
	f := NewField()
	if got := f.Address(); got != "0.0.0.0" {
		t.Fatalf("address = %q, want 0.0.0.0", got)
	}
	if !f.Valid() || f.Hint() != "" {
		t.Fatalf("default should be valid, hint %q", f.Hint())
	}
	for i := 0; i < OctetCount; i++ {
		if diff := cmp.Diff(OctetRange, f.Octet(i).Range()); diff != "" {
			t.Fatalf("octet %d range mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestField_SetAddressOutOfRange(t *testing.T) {
	f := NewField()
	f.SetAddress("192.168.1.300")
	if f.Valid() {
		t.Fatalf("expected 192.168.1.300 to be invalid")
	}
	if got := f.Address(); got != "192.168.1.300" {
		t.Fatalf("address = %q, want verbatim", got)
	}
	if f.Hint() != InvalidHint {
		t.Fatalf("hint = %q, want %q", f.Hint(), InvalidHint)
	}
	if _, ok := f.Bytes(); ok {
		t.Fatalf("Bytes should report false for invalid address")
	}
}

func TestField_SetAddressPartial(t *testing.T) {
	f := NewFieldWith("10.20.30.40")
	f.SetAddress("1.2")
	if got := f.Address(); got != "1.2.30.40" {
		t.Fatalf("address = %q, want 1.2.30.40", got)
	}

	f.SetAddress("7..9")
	if got := f.Address(); got != "7.2.9.40" {
		t.Fatalf("address = %q, want 7.2.9.40", got)
	}

	f.SetAddress("1.1.1.1.1")
	if got := f.Address(); got != "1.1.1.1" {
		t.Fatalf("address = %q, want 1.1.1.1", got)
	}
	got, ok := f.Bytes()
	if !ok {
		t.Fatalf("expected valid bytes")
	}
	if diff := cmp.Diff([OctetCount]byte{1, 1, 1, 1}, got); diff != "" {
		t.Fatalf("bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestField_SeparatorAdvancesFocus(t *testing.T) {
	f := NewField()
	f.OnOctetGotFocus(1)

	res := f.KeyPress(1, Separator)
	if !res.Consumed {
		t.Fatalf("separator should be consumed")
	}
	if res.Focus != 2 || f.Focus() != 2 {
		t.Fatalf("focus = %d, want 2", f.Focus())
	}
	if got := f.Octet(1).Text(); got != "0" {
		t.Fatalf("octet 2 text = %q, separator leaked", got)
	}

	f.OnOctetGotFocus(3)
	res = f.KeyPress(3, Separator)
	if !res.Consumed || res.Focus != 3 || f.Focus() != 3 {
		t.Fatalf("last octet separator: %+v", res)
	}
	if got := f.Address(); got != "0.0.0.0" {
		t.Fatalf("address = %q", got)
	}
}

func TestField_TypingAnAddress(t *testing.T) {
	f := NewField()
	f.OnOctetGotFocus(0)

	for _, r := range "192.168.1.25" {
		focus := f.Focus()
		f.KeyPress(focus, numeric.Key(r))
	}
	if got := f.Address(); got != "192.168.1.25" {
		t.Fatalf("address = %q, want 192.168.1.25", got)
	}
	if !f.Valid() {
		t.Fatalf("expected valid address, hint %q", f.Hint())
	}

	res := f.KeyPress(3, '9')
	if res.Accepted {
		t.Fatalf("259 should be rejected")
	}
	if res.Hint != "only values in range [0~255] allowed" {
		t.Fatalf("octet hint = %q", res.Hint)
	}
	if got := f.Address(); got != "192.168.1.25" {
		t.Fatalf("address changed to %q", got)
	}
}

func TestField_OctetEditsRevalidate(t *testing.T) {
	f := NewField()
	f.OnOctetGotFocus(2)
	res := f.KeyPress(2, numeric.KeyBackspace)
	if !res.Accepted || res.Text != "" {
		t.Fatalf("clearing octet: %+v", res)
	}
	if f.Valid() || f.Hint() != InvalidHint {
		t.Fatalf("empty octet should invalidate the address")
	}
	if res.Address != "0.0..0" {
		t.Fatalf("address = %q", res.Address)
	}

	f.KeyPress(2, '4')
	if !f.Valid() || f.Hint() != "" {
		t.Fatalf("address should be valid again, hint %q", f.Hint())
	}
}

func TestField_OutOfRangeOctetIndex(t *testing.T) {
	f := NewField()
	if f.Octet(4) != nil || f.Octet(-1) != nil {
		t.Fatalf("expected nil for out-of-range octets")
	}
	res := f.KeyPress(7, '1')
	if res.Accepted || res.Address != "0.0.0.0" {
		t.Fatalf("unexpected result %+v", res)
	}
	f.OnOctetChanged(9)
	if sel := f.OnOctetGotFocus(5); sel != (numeric.Selection{}) {
		t.Fatalf("unexpected selection %+v", sel)
	}
}
