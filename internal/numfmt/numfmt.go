// Package numfmt renders nonnegative integers with comma separators
// inserted every three digits, counted from the least-significant end.
package numfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Group formats n with comma-separated thousands groups, e.g. 1234567
// becomes "1,234,567".
func Group(n uint64) string {
	s, err := GroupDigits(strconv.FormatUint(n, 10))
	if err != nil {
		// FormatUint always yields a nonempty digit string.
		panic(fmt.Sprintf("numfmt: %v", err))
	}
	return s
}

// GroupDigits inserts a comma before every three-digit group of the
// decimal digit string s, reading from the right. The leading group holds
// len(s) mod 3 digits, or 3 when that is zero. s must be a nonempty
// string of ASCII digits.
func GroupDigits(s string) (string, error) {
	if s == "" {
		return "", errors.New("empty digit string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("not a digit string: %q", s)
		}
	}

	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}

	var b strings.Builder
	b.Grow(len(s) + (len(s)-lead)/3)
	b.WriteString(s[:lead])
	for rest := s[lead:]; len(rest) > 0; rest = rest[3:] {
		if len(rest) < 3 {
			// Unreachable: the leading group size is derived from len(s),
			// so the remainder is always a multiple of three.
			panic(fmt.Sprintf("numfmt: grouping left %d trailing digits of %q", len(rest), s))
		}
		b.WriteByte(',')
		b.WriteString(rest[:3])
	}
	return b.String(), nil
}
