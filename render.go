package pdfreflow

import (
	"html"
	"strings"
)

// ToHTML renders the document as an HTML fragment with bionic emphasis
// applied to every abstract and body paragraph. Title and authors are
// escaped verbatim. A body paragraph equal to FootnoteMarker is a
// structural heading and is rendered as one rather than as body text.
func (d *ReflowedDocument) ToHTML(opts EmphasisOptions) string {
	var b strings.Builder

	if d.Title != "" {
		b.WriteString("<h1>")
		b.WriteString(html.EscapeString(d.Title))
		b.WriteString("</h1>\n")
	}
	if d.Authors != "" {
		b.WriteString("<p class=\"authors\">")
		b.WriteString(html.EscapeString(d.Authors))
		b.WriteString("</p>\n")
	}

	if len(d.AbstractParagraphs) > 0 {
		b.WriteString("<section class=\"abstract\">\n")
		for _, para := range d.AbstractParagraphs {
			writeParagraph(&b, para, opts)
		}
		b.WriteString("</section>\n")
	}

	for _, para := range d.BodyParagraphs {
		writeParagraph(&b, para, opts)
	}

	return b.String()
}

func writeParagraph(b *strings.Builder, para string, opts EmphasisOptions) {
	if strings.TrimSpace(para) == FootnoteMarker {
		b.WriteString("<h3 class=\"footnotes\">")
		b.WriteString(html.EscapeString(FootnoteMarker))
		b.WriteString("</h3>\n")
		return
	}
	b.WriteString("<p>")
	b.WriteString(Emphasize(para, opts))
	b.WriteString("</p>\n")
}
