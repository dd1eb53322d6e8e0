// Package perms converts between octal ("755") and symbolic ("rwxr-xr-x")
// permission strings.
package perms

import (
	"errors"
	"regexp"
	"strings"
)

// Default permission strings
const (
	DirDefault  = "rwxr-xr-x" // 0o755
	FileDefault = "rw-r--r--" // 0o644
)

// ErrInvalidFormat is returned when a mode is neither 3 octal digits nor 9 symbolic characters.
var ErrInvalidFormat = errors.New("invalid permission format")

var (
	octalPattern    = regexp.MustCompile(`^[0-7]{3}$`)
	symbolicPattern = regexp.MustCompile(`^[rwx-]{9}$`)
)

// bit order within one rwx group
var groupBits = [3]struct {
	mask byte
	char byte
}{
	{4, 'r'},
	{2, 'w'},
	{1, 'x'},
}

// IsOctal reports whether s is exactly three octal digits.
func IsOctal(s string) bool {
	return octalPattern.MatchString(s)
}

// ValidateSymbolic reports whether s is exactly nine characters from {r,w,x,-}.
func ValidateSymbolic(s string) bool {
	return symbolicPattern.MatchString(s)
}

// OctalToSymbolic maps each digit to an rwx group.
func OctalToSymbolic(digits string) (string, error) {
	if !IsOctal(digits) {
		return "", ErrInvalidFormat
	}

	var b strings.Builder
	b.Grow(9)
	for i := 0; i < len(digits); i++ {
		d := digits[i] - '0'
		for _, bit := range groupBits {
			if d&bit.mask != 0 {
				b.WriteByte(bit.char)
			} else {
				b.WriteByte('-')
			}
		}
	}
	return b.String(), nil
}

// SymbolicToOctal is the inverse of OctalToSymbolic. A position counts as set
// whenever it is not '-'.
func SymbolicToOctal(s string) (string, error) {
	if !ValidateSymbolic(s) {
		return "", ErrInvalidFormat
	}

	out := make([]byte, 3)
	for g := 0; g < 3; g++ {
		var d byte
		for i, bit := range groupBits {
			if s[g*3+i] != '-' {
				d |= bit.mask
			}
		}
		out[g] = '0' + d
	}
	return string(out), nil
}

// Parse accepts either representation and returns the symbolic form.
func Parse(mode string) (string, error) {
	switch {
	case IsOctal(mode):
		return OctalToSymbolic(mode)
	case ValidateSymbolic(mode):
		return mode, nil
	default:
		return "", ErrInvalidFormat
	}
}
