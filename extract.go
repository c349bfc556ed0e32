package pdfreflow

import (
	"math"
	"unicode"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// charBox is a decoded character in top-left-origin device coordinates.
type charBox struct {
	r              rune
	x0, y0, x1, y1 float64
}

// ExtractPage decodes a PDF page into positioned text fragments. Character
// boxes come straight from pdfium; consecutive characters on the same
// baseline are merged into word-level glyph runs, with whitespace ending a
// run. Coordinates are converted from PDF bottom-left origin to top-left.
func ExtractPage(instance pdfium.Pdfium, page references.FPDF_PAGE, pageNumber int) (*Page, error) {
	widthResp, err := instance.FPDF_GetPageWidthF(&requests.FPDF_GetPageWidthF{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page width")
	}

	heightResp, err := instance.FPDF_GetPageHeightF(&requests.FPDF_GetPageHeightF{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page height")
	}

	pageWidth := float64(widthResp.PageWidth)
	pageHeight := float64(heightResp.PageHeight)

	textPage, err := instance.FPDFText_LoadPage(&requests.FPDFText_LoadPage{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load text page")
	}
	defer instance.FPDFText_ClosePage(&requests.FPDFText_ClosePage{
		TextPage: textPage.TextPage,
	})

	charCount, err := instance.FPDFText_CountChars(&requests.FPDFText_CountChars{
		TextPage: textPage.TextPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count characters")
	}

	result := &Page{
		Number: pageNumber,
		Width:  pageWidth,
		Height: pageHeight,
	}
	if charCount.Count == 0 {
		return result, nil
	}

	chars := make([]charBox, 0, charCount.Count)
	for i := 0; i < charCount.Count; i++ {
		unicodeResp, err := instance.FPDFText_GetUnicode(&requests.FPDFText_GetUnicode{
			TextPage: textPage.TextPage,
			Index:    i,
		})
		if err != nil || unicodeResp.Unicode == 0 {
			continue
		}

		boxResp, err := instance.FPDFText_GetCharBox(&requests.FPDFText_GetCharBox{
			TextPage: textPage.TextPage,
			Index:    i,
		})
		if err != nil {
			continue
		}

		chars = append(chars, charBox{
			r:  rune(unicodeResp.Unicode),
			x0: boxResp.Left,
			y0: pageHeight - boxResp.Top,
			x1: boxResp.Right,
			y1: pageHeight - boxResp.Bottom,
		})
	}

	result.Fragments = groupCharsIntoFragments(chars, pageNumber, pageWidth, pageHeight)
	return result, nil
}

// groupCharsIntoFragments merges adjacent character boxes into word-level
// fragments. A run ends at whitespace, at a vertical jump off the current
// baseline, or at a horizontal gap wider than half the character height.
func groupCharsIntoFragments(chars []charBox, pageNumber int, pageWidth, pageHeight float64) []TextFragment {
	var fragments []TextFragment

	var run []charBox
	flush := func() {
		if f, ok := finishFragment(run, pageNumber, pageWidth, pageHeight); ok {
			fragments = append(fragments, f)
		}
		run = run[:0]
	}

	for _, c := range chars {
		if unicode.IsSpace(c.r) {
			flush()
			continue
		}
		if len(run) > 0 {
			prev := run[len(run)-1]
			height := math.Max(prev.y1-prev.y0, 1)
			verticalJump := math.Abs(c.y1-prev.y1) > height*0.5
			horizontalGap := c.x0-prev.x1 > height*0.5 || c.x0 < prev.x0
			if verticalJump || horizontalGap {
				flush()
			}
		}
		run = append(run, c)
	}
	flush()

	return fragments
}

func finishFragment(run []charBox, pageNumber int, pageWidth, pageHeight float64) (TextFragment, bool) {
	if len(run) == 0 {
		return TextFragment{}, false
	}

	text := make([]rune, 0, len(run))
	box := run[0]
	for _, c := range run {
		text = append(text, c.r)
		box.x0 = math.Min(box.x0, c.x0)
		box.y0 = math.Min(box.y0, c.y0)
		box.x1 = math.Max(box.x1, c.x1)
		box.y1 = math.Max(box.y1, c.y1)
	}

	return TextFragment{
		PageNumber: pageNumber,
		Text:       string(text),
		X:          box.x0,
		Y:          box.y0,
		Width:      box.x1 - box.x0,
		Height:     box.y1 - box.y0,
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
	}, true
}
