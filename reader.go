package pdfreflow

import (
	"io"
	"log"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// ProcessingMetrics contains timing and statistics for document reflow.
type ProcessingMetrics struct {
	TotalTime       time.Duration
	DocumentOpen    time.Duration
	PageExtractions []PageMetrics
	Statistics      DocumentStatistics
}

// PageMetrics contains timing for a single page.
type PageMetrics struct {
	PageNumber int
	Duration   time.Duration
}

// DocumentStatistics contains document-level statistics.
type DocumentStatistics struct {
	TotalPages         int
	TotalFragments     int
	BodyParagraphs     int
	AbstractParagraphs int
	TotalCharacters    int
}

// Reader reflows PDF documents into linear reading order using pdfium
// text extraction.
type Reader struct {
	instance pdfium.Pdfium
	config   Config
}

// NewReader creates a reader with the default configuration.
func NewReader(instance pdfium.Pdfium) *Reader {
	return &Reader{
		instance: instance,
		config:   DefaultConfig(),
	}
}

// NewReaderWithConfig creates a reader with custom layout heuristics.
func NewReaderWithConfig(instance pdfium.Pdfium, config Config) *Reader {
	return &Reader{
		instance: instance,
		config:   config,
	}
}

// ProcessFile reflows a PDF file.
func (r *Reader) ProcessFile(filePath string) (*ReflowedDocument, error) {
	doc, err := r.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return r.processDocument(doc.Document, 0, -1)
}

// ProcessBytes reflows a PDF held in memory.
func (r *Reader) ProcessBytes(pdfBytes []byte) (*ReflowedDocument, error) {
	doc, err := r.instance.OpenDocument(&requests.OpenDocument{
		File: &pdfBytes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return r.processDocument(doc.Document, 0, -1)
}

// ProcessReader reflows a PDF from an io.ReadSeeker.
func (r *Reader) ProcessReader(reader io.ReadSeeker) (*ReflowedDocument, error) {
	doc, err := r.instance.OpenDocument(&requests.OpenDocument{
		FileReader: reader,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return r.processDocument(doc.Document, 0, -1)
}

// ProcessPageRange reflows a specific range of pages (0-indexed,
// inclusive). Title, author and abstract detection still keys off the
// document's first page, so ranges starting later yield body text only.
func (r *Reader) ProcessPageRange(filePath string, startPage, endPage int) (*ReflowedDocument, error) {
	doc, err := r.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	if startPage > endPage && endPage >= 0 {
		return nil, errors.New("invalid page range: start page must be <= end page")
	}

	return r.processDocument(doc.Document, startPage, endPage)
}

// GetDocumentInfo returns basic information about a PDF without
// processing it.
func (r *Reader) GetDocumentInfo(filePath string) (*DocumentInfo, error) {
	doc, err := r.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := r.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page count")
	}

	return &DocumentInfo{
		PageCount: pageCount.PageCount,
	}, nil
}

// processDocument extracts the requested pages and reflows them. endPage
// < 0 means the last page of the document.
func (r *Reader) processDocument(docRef references.FPDF_DOCUMENT, startPage, endPage int) (*ReflowedDocument, error) {
	startTime := time.Now()

	pageCount, err := r.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: docRef,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page count")
	}

	if startPage < 0 {
		startPage = 0
	}
	if endPage < 0 || endPage >= pageCount.PageCount {
		endPage = pageCount.PageCount - 1
	}

	pages := make([]Page, 0, endPage-startPage+1)
	var pageMetrics []PageMetrics
	for i := startPage; i <= endPage; i++ {
		pageStart := time.Now()
		page, err := r.extractPage(docRef, i)
		pageDuration := time.Since(pageStart)

		if err != nil {
			return nil, errors.Wrapf(err, "failed to extract page %d", i+1)
		}
		pages = append(pages, *page)

		pageMetrics = append(pageMetrics, PageMetrics{
			PageNumber: i + 1,
			Duration:   pageDuration,
		})

		if r.config.EnableMetricsLogging {
			log.Printf("Page %d/%d extracted in %v", i+1, pageCount.PageCount, pageDuration)
		}
	}

	doc := ReflowPages(pages, r.config)

	if r.config.EnableMetricsLogging {
		logProcessingMetrics(ProcessingMetrics{
			TotalTime:       time.Since(startTime),
			PageExtractions: pageMetrics,
			Statistics:      calculateDocumentStatistics(pages, &doc),
		})
	}

	return &doc, nil
}

// extractPage loads one page and decodes its fragments.
func (r *Reader) extractPage(docRef references.FPDF_DOCUMENT, pageIndex int) (*Page, error) {
	pageResp, err := r.instance.FPDF_LoadPage(&requests.FPDF_LoadPage{
		Document: docRef,
		Index:    pageIndex,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load page")
	}
	defer r.instance.FPDF_ClosePage(&requests.FPDF_ClosePage{
		Page: pageResp.Page,
	})

	page, err := ExtractPage(r.instance, pageResp.Page, pageIndex+1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract page content")
	}

	return page, nil
}

// calculateDocumentStatistics summarizes a reflowed document.
func calculateDocumentStatistics(pages []Page, doc *ReflowedDocument) DocumentStatistics {
	stats := DocumentStatistics{
		TotalPages:         len(pages),
		BodyParagraphs:     len(doc.BodyParagraphs),
		AbstractParagraphs: len(doc.AbstractParagraphs),
	}

	for _, page := range pages {
		stats.TotalFragments += len(page.Fragments)
	}
	for _, para := range doc.BodyParagraphs {
		stats.TotalCharacters += len(para)
	}
	for _, para := range doc.AbstractParagraphs {
		stats.TotalCharacters += len(para)
	}

	return stats
}

// logProcessingMetrics logs the processing metrics in a readable format.
func logProcessingMetrics(metrics ProcessingMetrics) {
	log.Println("┌─────────────────────────────────────────────┐")
	log.Println("│ PDF Reflow Metrics                          │")
	log.Println("├─────────────────────────────────────────────┤")
	log.Printf("│ Total Time: %-31v │\n", metrics.TotalTime.Round(time.Millisecond))
	log.Println("├─────────────────────────────────────────────┤")
	log.Println("│ Document Statistics                         │")
	log.Println("├─────────────────────────────────────────────┤")
	log.Printf("│   Pages:          %-25d │\n", metrics.Statistics.TotalPages)
	log.Printf("│   Fragments:      %-25d │\n", metrics.Statistics.TotalFragments)
	log.Printf("│   Body paras:     %-25d │\n", metrics.Statistics.BodyParagraphs)
	log.Printf("│   Abstract paras: %-25d │\n", metrics.Statistics.AbstractParagraphs)
	log.Printf("│   Characters:     %-25d │\n", metrics.Statistics.TotalCharacters)
	log.Println("├─────────────────────────────────────────────┤")
	log.Println("│ Per-Page Timing                             │")
	log.Println("├─────────────────────────────────────────────┤")

	for _, pm := range metrics.PageExtractions {
		log.Printf("│   Page %2d: %-30v │\n", pm.PageNumber, pm.Duration.Round(time.Millisecond))
	}

	if len(metrics.PageExtractions) > 0 {
		avgTime := metrics.TotalTime / time.Duration(len(metrics.PageExtractions))
		log.Println("├─────────────────────────────────────────────┤")
		log.Printf("│ Avg per page: %-28v │\n", avgTime.Round(time.Millisecond))
	}

	log.Println("└─────────────────────────────────────────────┘")
}
