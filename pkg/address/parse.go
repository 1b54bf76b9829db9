package address

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// OctetCount is the number of groups in a dotted-quad address.
const OctetCount = 4

var (
	// ErrGroupCount is returned when the text does not hold exactly four groups.
	ErrGroupCount = errors.New("address: expected four dot-separated groups")
	// ErrOctet is returned when a group is not a decimal number in [0,255].
	ErrOctet = errors.New("address: octet must be a number between 0 and 255")
)

// Parse reads a dotted-quad IPv4 address. Each group must be one or more
// ASCII digits whose plain numeric value is at most 255; leading zeros are
// read as decimal.
func Parse(text string) ([OctetCount]byte, error) {
	var out [OctetCount]byte
	groups := strings.Split(text, ".")
	if len(groups) != OctetCount {
		return out, fmt.Errorf("%w: got %d in %q", ErrGroupCount, len(groups), text)
	}
	for i, group := range groups {
		value, err := parseOctet(group)
		if err != nil {
			return out, fmt.Errorf("%w: group %d %q", ErrOctet, i+1, group)
		}
		out[i] = value
	}
	return out, nil
}

// Valid reports whether text is a dotted-quad IPv4 address.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

func parseOctet(group string) (byte, error) {
	if group == "" {
		return 0, ErrOctet
	}
	for i := 0; i < len(group); i++ {
		if group[i] < '0' || group[i] > '9' {
			return 0, ErrOctet
		}
	}
	value, err := strconv.ParseUint(group, 10, 8)
	if err != nil {
		return 0, err
	}
	return byte(value), nil
}
