package crypto

import (
	"strconv"
	"strings"
)

const (
	DefaultLength  = 16
	DefaultUpper   = 2
	DefaultDigit   = 2
	DefaultSpecial = 2

	// MaxCount caps every count so that sums of counts cannot overflow int.
	MaxCount = 1 << 24
)

// Quota is the per-class split of a password's characters.
type Quota struct {
	Lower   int `json:"lower"`
	Upper   int `json:"upper"`
	Digit   int `json:"digit"`
	Special int `json:"special"`
}

// Length returns the total number of characters the quota produces.
func (q Quota) Length() int {
	return q.Lower + q.Upper + q.Digit + q.Special
}

// Count returns the quota for a single class.
func (q Quota) Count(c Class) int {
	switch c {
	case Lower:
		return q.Lower
	case Upper:
		return q.Upper
	case Digit:
		return q.Digit
	case Special:
		return q.Special
	default:
		return 0
	}
}

// DefaultQuota resolves the default flags: 16 characters, two each of
// uppercase, digits and specials.
func DefaultQuota() Quota {
	return ResolveQuota(DefaultLength, DefaultUpper, DefaultDigit, DefaultSpecial)
}

// ResolveQuota splits length into per-class counts. Lowercase fills whatever
// the explicit counts leave over. When upper+digit+special exceeds length the
// explicit counts win: the length grows to their sum and no lowercase
// characters are used. Each input is clamped to [0, MaxCount] first.
func ResolveQuota(length, upper, digit, special int) Quota {
	length, upper, digit, special = clampCount(length), clampCount(upper), clampCount(digit), clampCount(special)

	explicit := upper + digit + special
	if length < explicit {
		length = explicit
	}
	return Quota{
		Lower:   length - explicit,
		Upper:   upper,
		Digit:   digit,
		Special: special,
	}
}

func clampCount(n int) int {
	return min(max(n, 0), MaxCount)
}

// ParseCount parses a non-negative count. Empty, malformed, negative and
// above-MaxCount values all yield fallback.
func ParseCount(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 || n > MaxCount {
		return fallback
	}
	return n
}
