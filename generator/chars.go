package generator

import "strings"

// The character set used when no explicit characters are requested.
// It contains the .notdef glyph ('\x00'), the space, ASCII letters,
// digits and punctuation, the euro sign and the whole Latin-1 supplement
// (U+0080 to U+00FF). Control characters that the font can't represent
// end up in [BitmapFont.Missing]().
var DefaultChars = "\x00 ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
	"1234567890\"!`?'.,;:()[]{}<>|/@\\^$€-%+=#_&~*" + latin1Supplement()

func latin1Supplement() string {
	var builder strings.Builder
	for codePoint := rune(0x80); codePoint <= 0xFF; codePoint++ {
		builder.WriteRune(codePoint)
	}
	return builder.String()
}

// Returns the runes of the given string without repetitions,
// keeping the order of their first appearance.
func uniqueRunes(characters string) []rune {
	seen  := make(map[rune]struct{}, len(characters))
	runes := make([]rune, 0, len(characters))
	for _, codePoint := range characters {
		if _, found := seen[codePoint]; found { continue }
		seen[codePoint] = struct{}{}
		runes = append(runes, codePoint)
	}
	return runes
}
