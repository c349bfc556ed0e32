package pdfreflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pageFrag(page int, text string, x, y, w, h float64) TextFragment {
	return TextFragment{
		PageNumber: page,
		Text:       text,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
		PageWidth:  600,
		PageHeight: 1000,
	}
}

func TestReflowPages_SingleColumnArticle(t *testing.T) {
	page := Page{
		Number: 1,
		Width:  600,
		Height: 1000,
		Fragments: []TextFragment{
			pageFrag(1, "Deep Reading", 150, 50, 300, 18),
			pageFrag(1, "Abstract", 250, 250, 100, 12),
			pageFrag(1, "We reconstruct reading order from fragments.", 80, 270, 440, 12),
			pageFrag(1, "The transform guides the eye.", 80, 290, 300, 12),
			pageFrag(1, "Documents arrive as positioned fragments.", 80, 700, 440, 12),
			pageFrag(1, "We cluster them into lines.", 80, 712, 300, 12),
			pageFrag(1, "Lines merge into paragraphs.", 80, 724, 310, 12),
		},
	}

	doc := ReflowPages([]Page{page}, DefaultConfig())

	require.Equal(t, "Deep Reading", doc.Title)
	require.Empty(t, doc.Authors)
	require.Len(t, doc.AbstractParagraphs, 1)
	require.Contains(t, doc.AbstractParagraphs[0], "We reconstruct reading order")
	require.Len(t, doc.BodyParagraphs, 1)
	require.Contains(t, doc.BodyParagraphs[0], "Documents arrive as positioned fragments.")
	require.NotContains(t, doc.BodyParagraphs, FootnoteMarker)
}

func TestReflowPages_FooterProducesMarkedSection(t *testing.T) {
	page := Page{
		Number: 2,
		Width:  600,
		Height: 1000,
		Fragments: []TextFragment{
			pageFrag(2, "Body text continues on page two.", 80, 400, 440, 12),
			pageFrag(2, "It still forms paragraphs.", 80, 412, 300, 12),
			pageFrag(2, "1 Supported by the example fund.", 80, 950, 300, 12),
		},
	}

	doc := ReflowPages([]Page{page}, DefaultConfig())

	require.Empty(t, doc.Title)
	require.Empty(t, doc.AbstractParagraphs)
	require.Len(t, doc.BodyParagraphs, 3)
	require.Contains(t, doc.BodyParagraphs[0], "Body text continues")
	require.Equal(t, FootnoteMarker, doc.BodyParagraphs[1])
	require.Contains(t, doc.BodyParagraphs[2], "Supported by the example fund")
}

func TestReflowPages_PagesSortedByNumber(t *testing.T) {
	pageTwo := Page{
		Number: 2,
		Width:  600,
		Height: 1000,
		Fragments: []TextFragment{
			pageFrag(2, "Second page paragraph.", 80, 400, 300, 12),
		},
	}
	pageOne := Page{
		Number: 1,
		Width:  600,
		Height: 1000,
		Fragments: []TextFragment{
			pageFrag(1, "First page paragraph.", 80, 400, 300, 12),
		},
	}

	doc := ReflowPages([]Page{pageTwo, pageOne}, DefaultConfig())

	require.Len(t, doc.BodyParagraphs, 2)
	require.Equal(t, "First page paragraph.", doc.BodyParagraphs[0])
	require.Equal(t, "Second page paragraph.", doc.BodyParagraphs[1])
}

func TestReflowPages_DoubleColumnReadingOrder(t *testing.T) {
	var fragments []TextFragment
	leftTexts := []string{"Left one.", "Left two.", "Left three.", "Left four.", "Left five."}
	rightTexts := []string{"Right one.", "Right two.", "Right three.", "Right four.", "Right five."}
	// Baselines staggered so left and right lines never share a cluster.
	for i, text := range leftTexts {
		fragments = append(fragments, pageFrag(2, text, 50, float64(200+60*i), 150, 12))
	}
	for i, text := range rightTexts {
		fragments = append(fragments, pageFrag(2, text, 400, float64(230+60*i), 150, 12))
	}

	page := Page{Number: 2, Width: 600, Height: 1000, Fragments: fragments}
	doc := ReflowPages([]Page{page}, DefaultConfig())

	require.NotEmpty(t, doc.BodyParagraphs)
	full := ""
	for _, p := range doc.BodyParagraphs {
		full += p + " "
	}
	leftPos := strings.Index(full, "Left five.")
	rightPos := strings.Index(full, "Right one.")
	require.GreaterOrEqual(t, rightPos, 0)
	require.GreaterOrEqual(t, leftPos, 0)
	require.Less(t, leftPos, rightPos, "left column must precede right column")
}

func TestReflowPages_EmptyInput(t *testing.T) {
	doc := ReflowPages(nil, DefaultConfig())
	require.Empty(t, doc.Title)
	require.Empty(t, doc.BodyParagraphs)
	require.Empty(t, doc.AbstractParagraphs)
}
