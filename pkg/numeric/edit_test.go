package numeric

import "testing"

func TestProposeEdit(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		start  int
		length int
		key    Key
		want   string
	}{
		{name: "append", text: "12", start: 2, key: '3', want: "123"},
		{name: "insert middle", text: "12", start: 1, key: '5', want: "152"},
		{name: "insert front", text: "12", start: 0, key: '-', want: "-12"},
		{name: "replace selection", text: "1234", start: 1, length: 2, key: '9', want: "194"},
		{name: "replace all", text: "1234", start: 0, length: 4, key: '7', want: "7"},
		{name: "backspace caret", text: "123", start: 3, key: KeyBackspace, want: "12"},
		{name: "backspace middle", text: "123", start: 2, key: KeyBackspace, want: "13"},
		{name: "backspace at start", text: "123", start: 0, key: KeyBackspace, want: "123"},
		{name: "backspace selection", text: "12345", start: 1, length: 3, key: KeyBackspace, want: "15"},
		{name: "empty text", text: "", start: 0, key: '4', want: "4"},
		{name: "start past end", text: "12", start: 9, key: '3', want: "123"},
		{name: "negative start", text: "12", start: -4, key: '3', want: "312"},
		{name: "selection past end", text: "12", start: 1, length: 10, key: '0', want: "10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ProposeEdit(tc.text, tc.start, tc.length, tc.key); got != tc.want {
				t.Fatalf("ProposeEdit(%q, %d, %d, %q) = %q, want %q", tc.text, tc.start, tc.length, rune(tc.key), got, tc.want)
			}
		})
	}
}

func TestCaretAfter(t *testing.T) {
	if got := caretAfter(3, 3, 0, '1'); got != 4 {
		t.Fatalf("insert caret = %d, want 4", got)
	}
	if got := caretAfter(3, 3, 0, KeyBackspace); got != 2 {
		t.Fatalf("backspace caret = %d, want 2", got)
	}
	if got := caretAfter(5, 1, 3, KeyBackspace); got != 1 {
		t.Fatalf("selection delete caret = %d, want 1", got)
	}
	if got := caretAfter(3, 0, 0, KeyBackspace); got != 0 {
		t.Fatalf("backspace at start caret = %d, want 0", got)
	}
}
