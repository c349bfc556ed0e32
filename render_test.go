package pdfreflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToHTML_Sections(t *testing.T) {
	doc := ReflowedDocument{
		Title:              "A Study of Reading",
		Authors:            "J. Doe",
		AbstractParagraphs: []string{"We study layout."},
		BodyParagraphs:     []string{"Body paragraph here.", FootnoteMarker, "1 A footnote."},
	}

	out := doc.ToHTML(DefaultEmphasisOptions())

	require.Contains(t, out, "<h1>A Study of Reading</h1>")
	require.Contains(t, out, "<p class=\"authors\">J. Doe</p>")
	require.Contains(t, out, "<section class=\"abstract\">")
	require.Contains(t, out, "<h3 class=\"footnotes\">")
	require.Contains(t, out, "<b>Bo</b>dy")
}

func TestToHTML_MarkerNotEmphasized(t *testing.T) {
	doc := ReflowedDocument{
		BodyParagraphs: []string{FootnoteMarker},
	}

	out := doc.ToHTML(DefaultEmphasisOptions())
	require.NotContains(t, out, "<b>")
	require.Contains(t, out, FootnoteMarker)
}

func TestToHTML_EscapesTitle(t *testing.T) {
	doc := ReflowedDocument{Title: "Q&A <draft>"}

	out := doc.ToHTML(DefaultEmphasisOptions())
	require.Contains(t, out, "Q&amp;A &lt;draft&gt;")
}
