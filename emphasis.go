package pdfreflow

import (
	"html"
	"math"
	"strings"
)

// Emphasis bounds. Out-of-range parameters are clamped, never rejected.
const (
	DefaultHanBoldCount = 4
	MinHanBoldCount     = 2
	MaxHanBoldCount     = 6

	DefaultBoldFraction = 0.45
	MinBoldFraction     = 0.4
	MaxBoldFraction     = 0.5
)

// EmphasisOptions tunes the bionic emphasis transform: HanBoldCount is
// the number of leading Han characters bolded per sentence, BoldFraction
// the bolded share of each English word.
type EmphasisOptions struct {
	HanBoldCount int
	BoldFraction float64
}

// DefaultEmphasisOptions returns the default emphasis parameters.
func DefaultEmphasisOptions() EmphasisOptions {
	return EmphasisOptions{
		HanBoldCount: DefaultHanBoldCount,
		BoldFraction: DefaultBoldFraction,
	}
}

// normalized coerces unset or non-finite parameters to their defaults and
// clamps both into their documented ranges.
func (o EmphasisOptions) normalized() EmphasisOptions {
	n := o.HanBoldCount
	if n <= 0 {
		n = DefaultHanBoldCount
	}
	if n < MinHanBoldCount {
		n = MinHanBoldCount
	}
	if n > MaxHanBoldCount {
		n = MaxHanBoldCount
	}

	p := o.BoldFraction
	if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		p = DefaultBoldFraction
	}
	p = clamp(p, MinBoldFraction, MaxBoldFraction)

	return EmphasisOptions{HanBoldCount: n, BoldFraction: p}
}

// Emphasize applies bionic emphasis to one paragraph and returns markup
// safe for HTML embedding: the head of every English word and the first
// HanBoldCount Han characters of every sentence are wrapped in bold
// spans, everything else is entity-escaped verbatim. The transform is a
// single left-to-right scan and is pure across calls.
func Emphasize(paragraph string, opts EmphasisOptions) string {
	opts = opts.normalized()

	runes := []rune(paragraph)
	var b strings.Builder
	b.Grow(len(paragraph) + len(paragraph)/2)

	atSentenceStart := true
	hanBolded := 0

	for i := 0; i < len(runes); {
		r := runes[i]

		// English word tokens are split regardless of sentence state.
		if isLatinLetter(r) {
			j := i
			for j < len(runes) && isWordRune(runes[j]) {
				j++
			}
			word := runes[i:j]
			head := boldHeadLength(len(word), opts.BoldFraction)
			b.WriteString("<b>")
			b.WriteString(html.EscapeString(string(word[:head])))
			b.WriteString("</b>")
			b.WriteString(html.EscapeString(string(word[head:])))
			i = j
			continue
		}

		switch {
		case isSentenceBoundary(r):
			b.WriteString(html.EscapeString(string(r)))
			atSentenceStart = true
			hanBolded = 0
		case atSentenceStart && isSkipChar(r):
			b.WriteString(html.EscapeString(string(r)))
		case atSentenceStart && isHan(r) && hanBolded < opts.HanBoldCount:
			b.WriteString("<b>")
			b.WriteString(string(r))
			b.WriteString("</b>")
			hanBolded++
			if hanBolded == opts.HanBoldCount {
				atSentenceStart = false
			}
		case atSentenceStart:
			atSentenceStart = false
			b.WriteString(html.EscapeString(string(r)))
		default:
			b.WriteString(html.EscapeString(string(r)))
		}
		i++
	}

	return b.String()
}

// boldHeadLength returns how many of an English word's length runes are
// bolded: ceil(length × fraction), at least one, at most the whole word.
func boldHeadLength(length int, fraction float64) int {
	head := int(math.Ceil(float64(length) * fraction))
	if head < 1 {
		head = 1
	}
	if head > length {
		head = length
	}
	return head
}
