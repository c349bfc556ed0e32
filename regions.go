package pdfreflow

import (
	"regexp"
	"sort"
	"strings"
)

// pageRegions is the outcome of first-page classification. Body holds the
// lines left over for column detection and paragraph assembly.
type pageRegions struct {
	Title    []TextLine
	Authors  []TextLine
	Abstract []TextLine
	Footer   []TextLine
	Body     []TextLine
}

var (
	abstractHeadingEN = regexp.MustCompile(`(?i)\babstract\b`)
	abstractHeadingZH = regexp.MustCompile(`摘要`)

	// Matches numbered section starts ("1 Introduction", "2.3 Results")
	// and the common Chinese section markers. A bare leading number also
	// matches, which can cut abstract capture short on numbered lists;
	// that mirrors the established behavior and is left as is.
	sectionHeadingRe = regexp.MustCompile(`^\s*(?:\d+(?:\.\d+)*\s*\S|引言|参考文献|致谢|结论)`)
)

const abstractHeadingMaxLen = 40

// isFooterLine reports whether a line falls in the footer band: either
// very low on the page, or moderately low while noticeably smaller than
// the page's median line height.
func isFooterLine(line TextLine, medianHeight, pageHeight float64, cfg Config) bool {
	if pageHeight <= 0 {
		return false
	}
	ny := line.Y / pageHeight
	if ny > cfg.FooterBandY {
		return true
	}
	return ny > cfg.FooterSmallTextY && line.Height < cfg.FooterSmallTextHeightRatio*medianHeight
}

// splitFooter partitions lines into footer-band lines and the rest.
func splitFooter(lines []TextLine, medianHeight, pageHeight float64, cfg Config) (footer, rest []TextLine) {
	for _, line := range lines {
		if isFooterLine(line, medianHeight, pageHeight, cfg) {
			footer = append(footer, line)
		} else {
			rest = append(rest, line)
		}
	}
	return footer, rest
}

// classifyFirstPage separates page 1's lines into title, author, abstract
// and footer bands. Title and author detection is restricted to the top
// band and keyed off line height relative to the page median; abstract
// capture starts at an "Abstract"/"摘要" heading and runs until a section
// heading or the lower half of the page.
func classifyFirstPage(lines []TextLine, pageHeight float64, cfg Config) pageRegions {
	var regions pageRegions
	if len(lines) == 0 {
		return regions
	}

	sorted := make([]TextLine, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Y < sorted[j].Y })

	var heights []float64
	for _, l := range sorted {
		heights = append(heights, l.Height)
	}
	medianHeight := median(heights, cfg.DefaultMedianSize)

	footer, rest := splitFooter(sorted, medianHeight, pageHeight, cfg)
	regions.Footer = footer

	var remaining []TextLine
	for _, line := range rest {
		ny := line.Y / pageHeight
		if ny < cfg.TopBandY {
			switch {
			case line.Height > cfg.TitleHeightRatio*medianHeight:
				regions.Title = append(regions.Title, line)
				continue
			case line.Height >= cfg.AuthorHeightRatio*medianHeight:
				regions.Authors = append(regions.Authors, line)
				continue
			}
		}
		remaining = append(remaining, line)
	}

	regions.Abstract, regions.Body = extractAbstract(remaining, pageHeight, cfg)
	return regions
}

// extractAbstract scans candidate lines for an abstract heading and
// collects the lines that follow it. Remaining lines are returned as body.
func extractAbstract(lines []TextLine, pageHeight float64, cfg Config) (abstract, body []TextLine) {
	headingIdx := -1
	for i, line := range lines {
		if pageHeight > 0 && line.Y/pageHeight >= cfg.AbstractSearchY {
			continue
		}
		if matchesAbstractHeading(line.Text) {
			headingIdx = i
			break
		}
	}
	if headingIdx < 0 {
		return nil, lines
	}

	heading := lines[headingIdx]
	if remainder := stripAbstractHeading(heading.Text); remainder != "" {
		first := heading
		first.Text = remainder
		abstract = append(abstract, first)
	}

	consumed := headingIdx + 1
	for i := headingIdx + 1; i < len(lines); i++ {
		line := lines[i]
		if pageHeight > 0 && line.Y/pageHeight > cfg.AbstractEndY {
			break
		}
		if sectionHeadingRe.MatchString(line.Text) {
			break
		}
		abstract = append(abstract, line)
		consumed = i + 1
	}

	body = append(body, lines[:headingIdx]...)
	body = append(body, lines[consumed:]...)
	return abstract, body
}

func matchesAbstractHeading(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) > abstractHeadingMaxLen {
		return false
	}
	return abstractHeadingEN.MatchString(trimmed) || abstractHeadingZH.MatchString(trimmed)
}

// stripAbstractHeading removes the heading token and a following colon,
// keeping any trailing content so the abstract's first line survives when
// it shares the heading line.
func stripAbstractHeading(text string) string {
	trimmed := strings.TrimSpace(text)
	for _, re := range []*regexp.Regexp{abstractHeadingEN, abstractHeadingZH} {
		if loc := re.FindStringIndex(trimmed); loc != nil {
			rest := trimmed[loc[1]:]
			rest = strings.TrimLeft(rest, " \t")
			rest = strings.TrimPrefix(rest, "：")
			rest = strings.TrimPrefix(rest, ":")
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
