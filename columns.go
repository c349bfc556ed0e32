package pdfreflow

import "math"

// detectColumns decides single- versus double-column layout for a page's
// body lines by 2-means clustering of line start positions. Wide lines
// likely span both columns and would mask the structure, so they are
// excluded from the clustering sample when enough narrow lines exist.
func detectColumns(lines []TextLine, pageWidth float64, cfg Config) ColumnMode {
	sample := make([]float64, 0, len(lines))
	for _, line := range lines {
		if line.Width() <= cfg.WideLineRatio*pageWidth {
			sample = append(sample, line.XMin)
		}
	}
	if len(sample) < cfg.MinColumnSample {
		sample = sample[:0]
		for _, line := range lines {
			sample = append(sample, line.XMin)
		}
	}
	if len(sample) < cfg.MinColumnSample {
		return SingleColumn()
	}

	left := percentile(sample, 0.25)
	right := percentile(sample, 0.75)

	for iter := 0; iter < cfg.ColumnIterations; iter++ {
		var leftSum, rightSum float64
		var leftN, rightN int
		for _, x := range sample {
			// Ties favor the left center.
			if math.Abs(x-left) <= math.Abs(x-right) {
				leftSum += x
				leftN++
			} else {
				rightSum += x
				rightN++
			}
		}
		if leftN == 0 || rightN == 0 {
			return SingleColumn()
		}

		newLeft := leftSum / float64(leftN)
		newRight := rightSum / float64(rightN)
		if newLeft > newRight {
			newLeft, newRight = newRight, newLeft
		}

		converged := newLeft == left && newRight == right
		left, right = newLeft, newRight
		if converged {
			break
		}
	}

	if right-left < cfg.ColumnSeparationRatio*pageWidth {
		return SingleColumn()
	}

	splitX := (left + right) / 2
	var leftCount, rightCount int
	for _, x := range sample {
		if x < splitX {
			leftCount++
		} else {
			rightCount++
		}
	}
	smaller := leftCount
	if rightCount < smaller {
		smaller = rightCount
	}
	if float64(smaller) < cfg.ColumnBalanceRatio*float64(len(sample)) {
		return SingleColumn()
	}

	return DoubleColumn(splitX, left, right)
}

// orderForReading arranges body lines into final reading order for the
// detected mode: top to bottom for a single column, left column then
// right column for a double layout.
func orderForReading(lines []TextLine, mode ColumnMode) []TextLine {
	ordered := make([]TextLine, 0, len(lines))

	switch mode.Layout {
	case ColumnsDouble:
		var leftCol, rightCol []TextLine
		for _, line := range lines {
			if line.XMin < mode.SplitX {
				leftCol = append(leftCol, line)
			} else {
				rightCol = append(rightCol, line)
			}
		}
		sortLinesByY(leftCol)
		sortLinesByY(rightCol)
		ordered = append(ordered, leftCol...)
		ordered = append(ordered, rightCol...)
	default:
		ordered = append(ordered, lines...)
		sortLinesByY(ordered)
	}

	return ordered
}
