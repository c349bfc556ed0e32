package pdfreflow

import (
	"sort"
	"strings"
)

func sortLinesByY(lines []TextLine) {
	sort.Slice(lines, func(i, j int) bool { return lines[i].Y < lines[j].Y })
}

// assembleParagraphs merges lines, already arranged in reading order, into
// paragraph strings. A paragraph break is a vertical gap clearly larger
// than the page's typical line spacing.
func assembleParagraphs(lines []TextLine, cfg Config) []string {
	if len(lines) == 0 {
		return nil
	}

	var gaps []float64
	for i := 1; i < len(lines); i++ {
		if gap := lines[i].Y - lines[i-1].Y; gap > 0 {
			gaps = append(gaps, gap)
		}
	}
	medianGap := median(gaps, cfg.DefaultMedianSize)
	breakGap := cfg.ParagraphGapFactor * medianGap

	var paragraphs []string
	var current strings.Builder
	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
		current.Reset()
	}

	for i, line := range lines {
		if i > 0 && line.Y-lines[i-1].Y > breakGap {
			flush()
		}
		appendLineText(&current, line.Text)
	}
	flush()

	return paragraphs
}

// appendLineText joins a line onto the accumulated paragraph text,
// repairing end-of-line hyphenation for Latin words and otherwise using
// the fragment spacing rule.
func appendLineText(current *strings.Builder, text string) {
	if current.Len() == 0 {
		current.WriteString(text)
		return
	}

	acc := current.String()
	trimmed := strings.TrimSpace(text)
	if last, ok := lastRune(acc); ok && isHyphen(last) {
		if first, ok := firstRune(trimmed); ok && isLatinLetter(first) {
			current.Reset()
			current.WriteString(acc[:len(acc)-len(string(last))])
			current.WriteString(trimmed)
			return
		}
	}

	if needsSpaceBetween(acc, text) {
		current.WriteByte(' ')
	}
	current.WriteString(text)
}

// assembleFooterParagraphs builds the footnote pseudo-paragraphs for a
// page. When the footer band holds any text, the marker paragraph is
// emitted first so consumers can render the section distinctly.
func assembleFooterParagraphs(footer []TextLine, cfg Config) []string {
	if len(footer) == 0 {
		return nil
	}

	sorted := make([]TextLine, len(footer))
	copy(sorted, footer)
	sortLinesByY(sorted)

	paragraphs := assembleParagraphs(sorted, cfg)
	if len(paragraphs) == 0 {
		return nil
	}
	return append([]string{FootnoteMarker}, paragraphs...)
}
