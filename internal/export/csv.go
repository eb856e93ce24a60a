// Package export serializes projected views: CSV for spreadsheet download,
// right-to-left HTML for the browser print dialog, and a PDF roster.
package export

import (
	"strings"
	"time"

	"empreg/internal/domain/registry"
	"empreg/internal/domain/reports"
)

// Exports open with a UTF-8 BOM so spreadsheet tools pick up the Arabic text.
const csvBOM = "\uFEFF"

const (
	activeHeader  = "Employee ID,Arabic Name,English Name,Nationality,Qualification,Submission Date"
	archiveHeader = "Employee ID,Arabic Name,English Name,Nationality,Qualification,Deleted Date"
	expiredHeader = "Employee ID,Arabic Name,English Name,Nationality,Document,Expiry Date"
)

// ActiveListCSV renders the active-list export: one row per record with the
// submission date in the last column. Name fields are quoted unconditionally
// and embedded quotes are not escaped, matching the established download
// format consumers already parse.
func ActiveListCSV(records []registry.Record) string {
	var b strings.Builder
	b.WriteString(csvBOM)
	b.WriteString(activeHeader)
	b.WriteString("\n")
	for i := range records {
		rec := &records[i]
		writeRecordRow(&b, rec, formatTimestamp(rec.SubmissionDate))
	}
	return b.String()
}

// ArchiveCSV renders the archive export, with the deletion date in place of
// the submission date.
func ArchiveCSV(records []registry.Record) string {
	var b strings.Builder
	b.WriteString(csvBOM)
	b.WriteString(archiveHeader)
	b.WriteString("\n")
	for i := range records {
		rec := &records[i]
		writeRecordRow(&b, rec, formatTimestamp(rec.DeletedAt))
	}
	return b.String()
}

// ExpiredReportCSV renders the expired-document report: one row per expired
// document, not per record.
func ExpiredReportCSV(rows []reports.ExpiredRow) string {
	var b strings.Builder
	b.WriteString(csvBOM)
	b.WriteString(expiredHeader)
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(row.EmployeeID)
		b.WriteString(`,"` + row.NameAr + `","` + row.NameEn + `",`)
		b.WriteString(registry.LabelAr(row.Nationality, registry.Nationalities))
		b.WriteString(",")
		b.WriteString(row.DocumentType)
		b.WriteString(",")
		b.WriteString(row.ExpiryDate)
		b.WriteString("\n")
	}
	return b.String()
}

func writeRecordRow(b *strings.Builder, rec *registry.Record, date string) {
	b.WriteString(rec.EmployeeID)
	b.WriteString(`,"` + rec.NameAr + `","` + rec.NameEn + `",`)
	b.WriteString(registry.LabelAr(rec.Nationality, registry.Nationalities))
	b.WriteString(",")
	b.WriteString(registry.LabelAr(rec.Degree, registry.Degrees))
	b.WriteString(",")
	b.WriteString(date)
	b.WriteString("\n")
}

func formatTimestamp(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format(time.RFC3339)
}
