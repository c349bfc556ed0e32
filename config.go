package pdfreflow

// Config collects the layout heuristics used by the reflow pipeline so
// they are tunable and testable in isolation. All thresholds operate on
// page-pixel coordinates unless noted as normalized (divided by the page
// dimension).
type Config struct {
	// DefaultMedianSize is used when a page yields no usable fragment
	// heights or line gaps.
	DefaultMedianSize float64

	// LineToleranceFactor scales the median fragment height into the
	// vertical clustering tolerance for line building.
	LineToleranceFactor float64

	// MinLineTolerance is the floor for the vertical clustering tolerance.
	MinLineTolerance float64

	// FooterBandY is the normalized y above which a line is always footer.
	FooterBandY float64

	// FooterSmallTextY is the normalized y above which a line is footer
	// when its height falls below FooterSmallTextHeightRatio of the
	// page's median line height.
	FooterSmallTextY           float64
	FooterSmallTextHeightRatio float64

	// TopBandY bounds the normalized band inspected for title and author
	// lines on page 1.
	TopBandY float64

	// TitleHeightRatio is the minimum height multiple (of the median line
	// height) for a top-band line to count as title; top-band lines at or
	// above AuthorHeightRatio but below TitleHeightRatio count as authors.
	TitleHeightRatio  float64
	AuthorHeightRatio float64

	// AbstractSearchY bounds the normalized band scanned for an abstract
	// heading; AbstractEndY terminates abstract capture.
	AbstractSearchY float64
	AbstractEndY    float64

	// BodyTopY and BodyBottomY bound the normalized band of lines fed to
	// column detection and body assembly.
	BodyTopY    float64
	BodyBottomY float64

	// WideLineRatio excludes lines wider than this fraction of the page
	// width from the column clustering sample.
	WideLineRatio float64

	// MinColumnSample is the minimum number of lines required to attempt
	// column clustering.
	MinColumnSample int

	// ColumnSeparationRatio is the minimum center separation, as a
	// fraction of page width, for a double-column verdict.
	ColumnSeparationRatio float64

	// ColumnBalanceRatio is the minimum share of the clustering sample
	// the smaller column may hold.
	ColumnBalanceRatio float64

	// ColumnIterations caps the 2-means refinement rounds.
	ColumnIterations int

	// ParagraphGapFactor scales the median line gap into the paragraph
	// break threshold.
	ParagraphGapFactor float64

	// EnableMetricsLogging enables processing time and statistics logging.
	EnableMetricsLogging bool
}

// DefaultConfig returns the default reflow configuration.
func DefaultConfig() Config {
	return Config{
		DefaultMedianSize:          10,
		LineToleranceFactor:        0.6,
		MinLineTolerance:           2,
		FooterBandY:                0.88,
		FooterSmallTextY:           0.75,
		FooterSmallTextHeightRatio: 0.85,
		TopBandY:                   0.22,
		TitleHeightRatio:           1.25,
		AuthorHeightRatio:          0.9,
		AbstractSearchY:            0.5,
		AbstractEndY:               0.65,
		BodyTopY:                   0.12,
		BodyBottomY:                0.9,
		WideLineRatio:              0.75,
		MinColumnSample:            8,
		ColumnSeparationRatio:      0.25,
		ColumnBalanceRatio:         0.2,
		ColumnIterations:           10,
		ParagraphGapFactor:         1.6,
	}
}
