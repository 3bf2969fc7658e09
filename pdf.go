package main

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10  // Margin in mm
	pdfLineHeight = 6   // Line height in mm
	pdfFontSize   = 10
)

// generatePDF writes the report as a one-page table: one row per kind.
// Without full only the count column is filled in.
func generatePDF(report *Report, full bool, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfFontSize+4)
	pdf.CellFormat(0, pdfLineHeight*2, fmt.Sprintf("linesort summary (%s run)", report.Mode), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", pdfFontSize)
	header := fmt.Sprintf("Output directory: %s\nPrefix: %q\nInput files: %d\nLines processed: %d",
		report.OutputDir, report.Prefix, len(report.Inputs), report.Lines)
	if n := len(report.RehydrateWarnings); n > 0 {
		header += fmt.Sprintf("\nRehydrate warnings: %d", n)
	}
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, header, "", "L", false)
	pdf.Ln(pdfLineHeight)

	columns := []string{"Kind", "Count", "Min", "Max", "Sum", "Mean"}
	width := float64(pdfPageWidth-2*pdfMargin) / float64(len(columns))

	pdf.SetFont("Helvetica", "B", pdfFontSize)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(width, pdfLineHeight, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", pdfFontSize)
	for _, s := range report.Stats {
		for _, cell := range pdfRow(s, full) {
			pdf.CellFormat(width, pdfLineHeight, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return NewAppError(ErrReportFormat, fmt.Sprintf("failed to save PDF to %s", outputPath), err)
	}
	return nil
}

// pdfRow returns the table cells for one kind. Text kinds show lengths in the min/max columns.
func pdfRow(s Statistics, full bool) []string {
	row := []string{s.Kind.String(), fmt.Sprintf("%d", s.Count), "", "", "", ""}
	if !full || s.Count == 0 {
		return row
	}
	if !s.Kind.Numeric() {
		row[2] = fmt.Sprintf("%d chars", s.MinLength)
		row[3] = fmt.Sprintf("%d chars", s.MaxLength)
		return row
	}
	mean, _ := s.Mean()
	row[2] = formatNumber(s.Min)
	row[3] = formatNumber(s.Max)
	row[4] = formatNumber(s.Sum)
	row[5] = formatNumber(mean)
	return row
}
