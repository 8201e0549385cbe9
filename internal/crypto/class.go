package crypto

// Class identifies one of the fixed character classes a password is built from.
type Class int

const (
	Lower Class = iota
	Upper
	Digit
	Special
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = ")(*&^%$#@!~"
)

// Classes lists every class in composition order.
var Classes = [...]Class{Lower, Upper, Digit, Special}

// Charset returns the ordered set of characters the class samples from.
// Every charset is non-empty.
func (c Class) Charset() string {
	switch c {
	case Lower:
		return lowercaseChars
	case Upper:
		return uppercaseChars
	case Digit:
		return digitChars
	case Special:
		return specialChars
	default:
		return ""
	}
}

func (c Class) String() string {
	switch c {
	case Lower:
		return "lowercase"
	case Upper:
		return "uppercase"
	case Digit:
		return "digit"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}
