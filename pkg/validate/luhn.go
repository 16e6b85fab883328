package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether a card number passes the Luhn checksum. Spaces and
// dashes used for grouping are ignored.
func IsLuhn(s string) bool {
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(s) < 12 || len(s) > 19 {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}

// LastFour returns the trailing four digits of a card number.
func LastFour(s string) string {
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}
