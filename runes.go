package pdfreflow

import "unicode"

// The rune sets below define observable joining and emphasis behavior, so
// they are kept as explicit constants rather than inline literals.

// sentenceBoundaries are the characters that end a sentence-start bolding
// window and reset the Han bold counter. Newline counts as a boundary.
const sentenceBoundaries = "。！？；：，、.!?;:,\n"

// sentenceSkipChars are characters that may appear between a sentence
// boundary and the first bold-eligible Han character without consuming the
// sentence-start state: quotation and bracket variants, CJK brackets,
// dashes, middle dots and ellipsis.
const sentenceSkipChars = "\"'“”‘’「」『』《》〈〉【】〔〕（）()[]{}—–-·・…"

// openingChars are left-side brackets and quotes: no space is inserted
// after them when joining fragments.
const openingChars = "(（[{「『《〈【〔“‘\"'"

// hyphenChars are the hyphen family recognized for end-of-line hyphenation
// repair and suppressed spacing. Includes the soft hyphen.
const hyphenChars = "-‐‑‒–—­"

func isHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isLatinAlnum(r rune) bool {
	return isLatinLetter(r) || (r >= '0' && r <= '9')
}

// isWordRune reports whether r belongs to an English word token for the
// emphasis scan. Apostrophes bind contractions into a single token.
func isWordRune(r rune) bool {
	return isLatinLetter(r) || r == '\'' || r == '’'
}

func isSentenceBoundary(r rune) bool {
	return runeInSet(r, sentenceBoundaries)
}

func isSkipChar(r rune) bool {
	return unicode.IsSpace(r) || runeInSet(r, sentenceSkipChars)
}

func isOpeningChar(r rune) bool {
	return runeInSet(r, openingChars)
}

func isHyphen(r rune) bool {
	return runeInSet(r, hyphenChars)
}

func runeInSet(r rune, set string) bool {
	for _, s := range set {
		if r == s {
			return true
		}
	}
	return false
}
