// Package header converts web pages into gzip-compressed C headers for
// embedding in firmware images.
package header

import "strings"

// MakeCIdentifier returns name with every character outside [0-9A-Za-z_]
// replaced by an underscore. A leading digit gets an underscore prefix so the
// result is a valid C identifier.
func MakeCIdentifier(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 1)

	for i, r := range name {
		if i == 0 && isDigit(r) {
			b.WriteByte('_')
		}
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	return b.String()
}

// GuardName returns the include guard for a sanitized base name.
func GuardName(safeBase string) string {
	return "PAGE_" + strings.ToUpper(safeBase) + "_H"
}

// SymbolName returns the array symbol for a sanitized base name.
func SymbolName(safeBase string) string {
	return "page_" + safeBase
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentRune(r rune) bool {
	return isDigit(r) || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
