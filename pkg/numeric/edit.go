package numeric

// Key is a single keystroke delivered by the host: a printable rune or
// KeyBackspace.
type Key rune

// KeyBackspace deletes the selection or the rune before the caret.
const KeyBackspace Key = '\b'

// IsDigit reports whether k is an ASCII decimal digit.
func (k Key) IsDigit() bool {
	return k >= '0' && k <= '9'
}

// Editable reports whether k may reach the range check at all.
func (k Key) Editable() bool {
	return k.IsDigit() || k == '.' || k == '-' || k == KeyBackspace
}

// ProposeEdit splices key into text at the given selection and returns the
// candidate. Backspace removes the selection, or the rune before the caret
// when nothing is selected; any other key replaces the selection. Positions
// are rune offsets and are clamped into the text.
func ProposeEdit(text string, selStart, selLength int, key Key) string {
	runes := []rune(text)
	start, end := clampSelection(len(runes), selStart, selLength)

	head := append([]rune(nil), runes[:start]...)
	tail := runes[end:]

	if key == KeyBackspace {
		if start == end && len(head) > 0 {
			head = head[:len(head)-1]
		}
	} else {
		head = append(head, rune(key))
	}
	return string(append(head, tail...))
}

// caretAfter returns the caret position once an accepted edit is applied.
func caretAfter(textLen, selStart, selLength int, key Key) int {
	start, end := clampSelection(textLen, selStart, selLength)
	if key != KeyBackspace {
		return start + 1
	}
	if start == end && start > 0 {
		return start - 1
	}
	return start
}

func clampSelection(textLen, selStart, selLength int) (int, int) {
	start := selStart
	if start < 0 {
		start = 0
	}
	if start > textLen {
		start = textLen
	}
	end := start
	if selLength > 0 {
		end = start + selLength
	}
	if end > textLen {
		end = textLen
	}
	return start, end
}
