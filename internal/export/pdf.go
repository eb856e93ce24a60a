package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"empreg/internal/domain/registry"
)

// RosterPDF renders a tabular roster of the given records. Core fonts carry
// no Arabic glyphs, so the roster uses the English half of each label.
func RosterPDF(records []registry.Record, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d records", time.Now().UTC().Format("2006-01-02"), len(records)))
	pdf.Ln(10)

	widths := []float64{10, 30, 70, 45, 40, 45, 30}
	headers := []string{"#", "Employee ID", "Name", "Nationality", "Qualification", "Phone", "Submitted"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(241, 245, 249)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i := range records {
		rec := &records[i]
		submitted := ""
		if rec.SubmissionDate != nil {
			submitted = rec.SubmissionDate.Format("2006-01-02")
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			rec.EmployeeID,
			rec.NameEn,
			registry.LabelEn(rec.Nationality, registry.Nationalities),
			registry.LabelEn(rec.Degree, registry.Degrees),
			rec.Phone,
			submitted,
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
