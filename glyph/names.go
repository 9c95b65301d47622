package glyph

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// FallbackRune is the character assigned to a glyph file whose name is not
// in the name table.
const FallbackRune = '█'

// nameTable lists the characters whose glyph files can be read back by
// name. Names are the Unicode character names.
var nameTable = func() map[string]rune {
	m := make(map[string]rune, 128)
	for c := 'A'; c <= 'Z'; c++ {
		m["LATIN CAPITAL LETTER "+string(c)] = c
		m["LATIN SMALL LETTER "+string(c)] = c + ('a' - 'A')
	}
	for _, r := range `0123456789&^*\|{}[]:,°÷=%!><-().+?"';/ _@#£$€` {
		m[runenames.Name(r)] = r
	}
	return m
}()

// runeNames is the inverse of nameTable.
var runeNames = func() map[rune]string {
	m := make(map[rune]string, len(nameTable))
	for name, r := range nameTable {
		m[r] = name
	}
	return m
}()

// NameOf returns the display name of r: its Unicode character name, or
// "U+XXXX" for code points without one.
func NameOf(r rune) string {
	if name, ok := runeNames[r]; ok {
		return name
	}
	name := runenames.Name(r)
	if name == "" || strings.HasPrefix(name, "<") {
		return fmt.Sprintf("U+%04X", r)
	}
	return name
}

// RuneOf returns the character named name, or FallbackRune if the name is
// not in the table.
func RuneOf(name string) rune {
	if r, ok := nameTable[name]; ok {
		return r
	}
	return FallbackRune
}

// Known reports whether r round-trips through NameOf and RuneOf.
func Known(r rune) bool {
	_, ok := runeNames[r]
	return ok
}
