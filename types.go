package pdfreflow

// TextFragment is one decoded glyph run with its device-space position.
// Coordinates are page pixels with the origin at the top-left corner,
// x increasing right and y increasing down.
type TextFragment struct {
	PageNumber int
	Text       string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	PageWidth  float64
	PageHeight float64
}

// Page holds all fragments decoded from a single PDF page. The order of
// Fragments carries no layout meaning.
type Page struct {
	Number    int
	Width     float64
	Height    float64
	Fragments []TextFragment
}

// TextLine is a horizontally-ordered cluster of fragments sharing an
// inferred vertical position. Immutable once built.
type TextLine struct {
	Y      float64 // running centroid of member fragment y values
	XMin   float64
	XMax   float64 // rightmost fragment's x + width
	Height float64 // median fragment height
	Text   string
}

// Width returns the horizontal extent of the line.
func (l TextLine) Width() float64 {
	return l.XMax - l.XMin
}

// ColumnLayout tags a ColumnMode value.
type ColumnLayout int

const (
	ColumnsSingle ColumnLayout = iota
	ColumnsDouble
)

// ColumnMode is the detected column structure of a page. SplitX,
// LeftCenter and RightCenter are only meaningful for ColumnsDouble.
type ColumnMode struct {
	Layout      ColumnLayout
	SplitX      float64
	LeftCenter  float64
	RightCenter float64
}

// SingleColumn returns the single-column mode.
func SingleColumn() ColumnMode {
	return ColumnMode{Layout: ColumnsSingle}
}

// DoubleColumn returns a two-column mode with the given cluster centers.
func DoubleColumn(splitX, leftCenter, rightCenter float64) ColumnMode {
	return ColumnMode{
		Layout:      ColumnsDouble,
		SplitX:      splitX,
		LeftCenter:  leftCenter,
		RightCenter: rightCenter,
	}
}

// FootnoteMarker is the pseudo-paragraph emitted immediately before the
// footer-derived paragraphs of a page. Consumers must render a paragraph
// equal to this marker (after trimming) as a structural heading, not body
// text.
const FootnoteMarker = "【附注】"

// ReflowedDocument is the linear reading order reconstructed from a
// paginated document. Title and Authors are only ever populated from
// page 1; every other page contributes to BodyParagraphs alone.
type ReflowedDocument struct {
	Title              string
	Authors            string
	AbstractParagraphs []string
	BodyParagraphs     []string
}

// DocumentInfo contains basic information about a PDF document.
type DocumentInfo struct {
	PageCount int
}
