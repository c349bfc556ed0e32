package pdfreflow

import (
	"sort"
	"strings"
)

// ReflowPages reconstructs a linear reading order from the fragments of a
// paginated document. Title, author and abstract extraction only consume
// page 1; every page contributes body paragraphs, and pages with footer
// band content additionally contribute a footnote section introduced by
// FootnoteMarker. The function is pure: no state outlives the call.
func ReflowPages(pages []Page, cfg Config) ReflowedDocument {
	ordered := make([]Page, len(pages))
	copy(ordered, pages)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	var (
		titleLines    []TextLine
		authorLines   []TextLine
		abstractLines []TextLine
		body          []string
	)

	for _, page := range ordered {
		lines := buildLines(page.Fragments, cfg)
		if len(lines) == 0 {
			continue
		}

		var footer, candidates []TextLine
		if page.Number == 1 {
			regions := classifyFirstPage(lines, page.Height, cfg)
			titleLines = append(titleLines, regions.Title...)
			authorLines = append(authorLines, regions.Authors...)
			abstractLines = append(abstractLines, regions.Abstract...)
			footer = regions.Footer
			candidates = regions.Body
		} else {
			var heights []float64
			for _, l := range lines {
				heights = append(heights, l.Height)
			}
			medianHeight := median(heights, cfg.DefaultMedianSize)
			footer, candidates = splitFooter(lines, medianHeight, page.Height, cfg)
		}

		bodyLines := boundBodyLines(candidates, page.Height, cfg)
		mode := detectColumns(bodyLines, page.Width, cfg)
		reading := orderForReading(bodyLines, mode)

		body = append(body, assembleParagraphs(reading, cfg)...)
		body = append(body, assembleFooterParagraphs(footer, cfg)...)
	}

	doc := ReflowedDocument{
		Title:          joinLines(titleLines),
		Authors:        joinLines(authorLines),
		BodyParagraphs: body,
	}

	if len(abstractLines) > 0 {
		sortLinesByY(abstractLines)
		doc.AbstractParagraphs = assembleParagraphs(abstractLines, cfg)
	}

	return doc
}

// boundBodyLines trims body candidates to the vertical band used for
// column detection and assembly, dropping running headers and page
// furniture outside it.
func boundBodyLines(lines []TextLine, pageHeight float64, cfg Config) []TextLine {
	if pageHeight <= 0 {
		return lines
	}
	var bounded []TextLine
	for _, line := range lines {
		ny := line.Y / pageHeight
		if ny > cfg.BodyTopY && ny < cfg.BodyBottomY {
			bounded = append(bounded, line)
		}
	}
	return bounded
}

// joinLines renders accumulated title or author lines as one string,
// joined in encounter order with the fragment spacing rule.
func joinLines(lines []TextLine) string {
	var b strings.Builder
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		if b.Len() > 0 && needsSpaceBetween(b.String(), text) {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	return b.String()
}
