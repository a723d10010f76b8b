// Package slug derives URL-safe identifiers from titles and tag names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Cyrillic letters have no decomposition, so they are transliterated by
// table before the diacritic stripping pass.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make lowercases the source, transliterates non-ASCII letters to an ASCII
// approximation, replaces every run of other characters with a single
// hyphen, and trims leading and trailing hyphens. The same input always
// yields the same slug.
func Make(source string) string {
	lowered := strings.ToLower(source)

	var translit strings.Builder
	for _, r := range lowered {
		if repl, ok := cyrillic[r]; ok {
			translit.WriteString(repl)
			continue
		}
		translit.WriteRune(r)
	}

	flattened, _, err := transform.String(stripMarks, translit.String())
	if err != nil {
		flattened = translit.String()
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range flattened {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
