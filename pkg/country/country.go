// Package country resolves ISO 3166 region codes to display names.
package country

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Tag parses a BCP 47 locale, falling back to English.
func Tag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Name returns the display name of the region code in the given language.
// Only two-letter and three-digit codes are resolved; unknown, reserved or malformed codes are
// returned unchanged.
func Name(code string, tag language.Tag) string {
	code = strings.TrimSpace(code)
	if !isRegionCode(code) {
		return code
	}
	region, err := language.ParseRegion(code)
	if err != nil || region.String() == unknownRegion {
		return code
	}
	name := display.Regions(tag).Name(region)
	if name == "" {
		return code
	}
	return name
}

// unknownRegion is the CLDR code for an unresolvable region
const unknownRegion = "ZZ"

func isRegionCode(code string) bool {
	switch len(code) {
	case 2:
		return isASCIILetter(code[0]) && isASCIILetter(code[1])
	case 3:
		return isDigit(code[0]) && isDigit(code[1]) && isDigit(code[2])
	}
	return false
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
