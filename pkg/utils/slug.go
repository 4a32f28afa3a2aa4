package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 96

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug turns a page title into a lowercase, dash separated slug.
// Latin diacritics are folded and Cyrillic is transliterated.
func GenerateSlug(text string) string {
	text = transliterate(text)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	text, _, _ = transform.String(t, text)

	text = strings.ToLower(text)
	text = nonSlugChars.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")

	if len(text) > maxSlugLength {
		text = strings.TrimRight(text[:maxSlugLength], "-")
	}
	return text
}

var translitMap = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "sch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

func transliterate(text string) string {
	var result strings.Builder
	for _, char := range text {
		if replacement, ok := translitMap[unicode.ToLower(char)]; ok {
			result.WriteString(replacement)
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}
