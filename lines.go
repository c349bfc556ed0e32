package pdfreflow

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// lineCluster accumulates fragments that share a vertical position while
// the sorted fragment list is walked. centroid is the incremental mean of
// member y values.
type lineCluster struct {
	fragments []TextFragment
	centroid  float64
}

func (c *lineCluster) add(f TextFragment) {
	c.fragments = append(c.fragments, f)
	n := float64(len(c.fragments))
	c.centroid += (f.Y - c.centroid) / n
}

// buildLines clusters a page's fragments into text lines using vertical
// proximity. The result is ordered by ascending y at construction time.
func buildLines(fragments []TextFragment, cfg Config) []TextLine {
	if len(fragments) == 0 {
		return nil
	}

	var heights []float64
	for _, f := range fragments {
		if f.Height > 0 && !math.IsInf(f.Height, 0) && !math.IsNaN(f.Height) {
			heights = append(heights, f.Height)
		}
	}
	medianHeight := median(heights, cfg.DefaultMedianSize)
	tolerance := math.Max(cfg.MinLineTolerance, cfg.LineToleranceFactor*medianHeight)

	sorted := make([]TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []TextLine
	flush := func(c *lineCluster) {
		if line, ok := finishLine(c, cfg); ok {
			lines = append(lines, line)
		}
	}

	current := &lineCluster{}
	for _, f := range sorted {
		if len(current.fragments) > 0 && math.Abs(f.Y-current.centroid) > tolerance {
			flush(current)
			current = &lineCluster{}
		}
		current.add(f)
	}
	flush(current)

	return lines
}

// finishLine orders a cluster's fragments left to right, joins their text
// with script-aware spacing and computes the line geometry. Lines whose
// joined text is blank are discarded.
func finishLine(c *lineCluster, cfg Config) (TextLine, bool) {
	if len(c.fragments) == 0 {
		return TextLine{}, false
	}

	frags := c.fragments
	sort.Slice(frags, func(i, j int) bool { return frags[i].X < frags[j].X })

	var b strings.Builder
	for _, f := range frags {
		if b.Len() > 0 && needsSpaceBetween(b.String(), f.Text) {
			b.WriteByte(' ')
		}
		b.WriteString(f.Text)
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return TextLine{}, false
	}

	heights := make([]float64, 0, len(frags))
	for _, f := range frags {
		if f.Height > 0 && !math.IsInf(f.Height, 0) && !math.IsNaN(f.Height) {
			heights = append(heights, f.Height)
		}
	}

	last := frags[len(frags)-1]
	return TextLine{
		Y:      c.centroid,
		XMin:   frags[0].X,
		XMax:   last.X + last.Width,
		Height: median(heights, cfg.DefaultMedianSize),
		Text:   text,
	}, true
}

// needsSpaceBetween decides whether a space belongs between two adjacent
// joined pieces of text. CJK text and punctuation boundaries are glued;
// separately extracted Latin words and digits are not.
func needsSpaceBetween(left, right string) bool {
	a, okA := lastRune(left)
	b, okB := firstRune(right)
	if !okA || !okB {
		return false
	}

	if isHan(a) || isHan(b) {
		return false
	}
	if unicode.IsSpace(a) || unicode.IsSpace(b) {
		return false
	}
	if isOpeningChar(a) || isHyphen(a) {
		return false
	}
	return isLatinAlnum(a) && isLatinAlnum(b)
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func lastRune(s string) (rune, bool) {
	var last rune
	ok := false
	for _, r := range s {
		last = r
		ok = true
	}
	return last, ok
}
