package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// specialLatin maps Latin characters that do not decompose into a base letter
// plus combining marks, so NFD stripping alone would drop or mangle them.
var specialLatin = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"Æ", "ae",
	"ø", "o",
	"Ø", "o",
	"œ", "oe",
	"Œ", "oe",
	"đ", "d",
	"Đ", "d",
	"ð", "d",
	"Ð", "d",
	"þ", "th",
	"Þ", "th",
	"ł", "l",
	"Ł", "l",
)

// stripMarks removes combining marks left over after NFD decomposition.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a free-text player name: lowercase, trimmed,
// internal whitespace collapsed, diacritics stripped, special Latin
// characters mapped to ASCII-safe equivalents. Normalized names are the join
// key between the performance feed, the catalog and the lineup selections.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = specialLatin.Replace(s)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	return strings.Join(strings.Fields(s), " ")
}
