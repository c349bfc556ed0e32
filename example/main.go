package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/urfave/cli/v3"

	"github.com/bionicreader/pdfreflow"
)

func main() {
	cmd := &cli.Command{
		Name:  "pdfreflow",
		Usage: "Reflow PDF files into bionic-reading HTML",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input PDF file path",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output HTML file path (default: stdout)",
			},
			&cli.IntFlag{
				Name:  "start-page",
				Usage: "Start page number (0-indexed)",
				Value: -1,
			},
			&cli.IntFlag{
				Name:  "end-page",
				Usage: "End page number (0-indexed)",
				Value: -1,
			},
			&cli.IntFlag{
				Name:  "han-bold",
				Usage: "Han characters bolded per sentence (2-6)",
				Value: pdfreflow.DefaultHanBoldCount,
			},
			&cli.FloatFlag{
				Name:  "bold-fraction",
				Usage: "Bolded fraction of each English word (0.4-0.5)",
				Value: pdfreflow.DefaultBoldFraction,
			},
		},
		Action: reflowPDF,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func reflowPDF(_ context.Context, cmd *cli.Command) error {
	inputPath := cmd.String("input")
	outputPath := cmd.String("output")
	startPage := cmd.Int("start-page")
	endPage := cmd.Int("end-page")

	// Initialise pdfium
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise pdfium: %w", err)
	}
	defer pool.Close()

	instance, err := pool.GetInstance(time.Second * 30)
	if err != nil {
		return fmt.Errorf("failed to get pdfium instance: %w", err)
	}

	reader := pdfreflow.NewReader(instance)

	info, err := reader.GetDocumentInfo(inputPath)
	if err != nil {
		return fmt.Errorf("failed to get document info: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing PDF with %d pages...\n", info.PageCount)

	var doc *pdfreflow.ReflowedDocument
	if startPage >= 0 || endPage >= 0 {
		if startPage < 0 {
			startPage = 0
		}
		if endPage < 0 {
			endPage = info.PageCount - 1
		}
		fmt.Fprintf(os.Stderr, "Reflowing pages %d to %d...\n", startPage+1, endPage+1)
		doc, err = reader.ProcessPageRange(inputPath, startPage, endPage)
	} else {
		fmt.Fprintf(os.Stderr, "Reflowing all pages...\n")
		doc, err = reader.ProcessFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to reflow PDF: %w", err)
	}

	opts := pdfreflow.EmphasisOptions{
		HanBoldCount: cmd.Int("han-bold"),
		BoldFraction: cmd.Float("bold-fraction"),
	}
	output := doc.ToHTML(opts)

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "HTML written to %s\n", outputPath)
	} else {
		fmt.Println(output)
	}

	return nil
}
