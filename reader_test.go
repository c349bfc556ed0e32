package pdfreflow_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/stretchr/testify/require"

	pdfreflow "github.com/bionicreader/pdfreflow"
)

// TestReader_SamplePDF runs the full extraction and reflow pipeline
// against a real document when one is available.
func TestReader_SamplePDF(t *testing.T) {
	samplePath := filepath.Join("testdata", "sample.pdf")
	if _, err := os.Stat(samplePath); err != nil {
		t.Skipf("no sample PDF at %s", samplePath)
	}

	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	require.NoError(t, err)
	defer pool.Close()

	instance, err := pool.GetInstance(time.Second * 30)
	require.NoError(t, err)

	reader := pdfreflow.NewReader(instance)

	info, err := reader.GetDocumentInfo(samplePath)
	require.NoError(t, err)
	require.Greater(t, info.PageCount, 0)

	doc, err := reader.ProcessFile(samplePath)
	require.NoError(t, err)
	require.NotEmpty(t, doc.BodyParagraphs)

	// The rendered output must stay parseable as an HTML fragment.
	html := doc.ToHTML(pdfreflow.DefaultEmphasisOptions())
	require.NotEmpty(t, html)
}

func TestReader_ProcessPageRangeValidation(t *testing.T) {
	samplePath := filepath.Join("testdata", "sample.pdf")
	if _, err := os.Stat(samplePath); err != nil {
		t.Skipf("no sample PDF at %s", samplePath)
	}

	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	require.NoError(t, err)
	defer pool.Close()

	instance, err := pool.GetInstance(time.Second * 30)
	require.NoError(t, err)

	reader := pdfreflow.NewReader(instance)

	_, err = reader.ProcessPageRange(samplePath, 3, 1)
	require.Error(t, err)
}
