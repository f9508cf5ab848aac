// Package slugify turns free text (Russian and Ukrainian included) into
// URL-safe ASCII slugs.
//
// The transform is deterministic:
//
//  1. lowercase the input and strip surrounding whitespace
//  2. replace "&amp;" and "&" with " and "
//  3. collapse runs of whitespace and '-' into a single '-'
//  4. transliterate Cyrillic letters with the table below
//  5. fold Latin letters with diacritics to their base letter (NFKD, marks removed)
//  6. drop every rune outside [a-z0-9_-]
//
// Separators at either end are kept: "Что это ?" becomes "chto-eto-".
//
// Transliteration table (lowercase; the input is lowercased first):
//
//	а a   б b   в v   г g   д d   е e   ё yo  ж zh  з z   и i   й j
//	к k   л l   м m   н n   о o   п p   р r   с s   т t   у u   ф f
//	х h   ц ts  ч ch  ш sh  щ sch ъ -   ы yi  ь -   э e   ю yu  я ya
//	і i   ї yi  є ye  ґ g
//
// ъ and ь have no ASCII letter and are removed.
package slugify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ampersand  = regexp.MustCompile(`&amp;|&`)
	separators = regexp.MustCompile(`[-\s]+`)
)

var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "yi", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'і': "i", 'ї': "yi", 'є': "ye", 'ґ': "g",
}

// Make returns the slug for s. The result may be empty when s has no
// letters or digits.
func Make(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = ampersand.ReplaceAllString(s, " and ")
	s = separators.ReplaceAllString(s, "-")

	s = Transliterate(s)
	s = strings.ToLower(fold(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allowed(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// MakeMax is Make truncated to at most n bytes. Slugs are pure ASCII, so the
// cut never splits a rune.
func MakeMax(s string, n int) string {
	slug := Make(s)
	if n > 0 && len(slug) > n {
		slug = slug[:n]
	}
	return slug
}

// Transliterate maps Cyrillic runes through the table and leaves every
// other rune untouched. Uppercase Cyrillic is mapped through its lowercase form.
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if t, ok := cyrillic[unicode.ToLower(r)]; ok {
			b.WriteString(t)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func allowed(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}
