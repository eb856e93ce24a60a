package reports

import (
	"testing"
	"time"

	"empreg/internal/domain/registry"
)

func fixedToday() time.Time {
	return registry.Today(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
}

func recordWith(employeeID, nationality, degree string) registry.Record {
	return registry.Record{
		EmployeeID:  employeeID,
		NameAr:      "اسم",
		NameEn:      "Name",
		Nationality: nationality,
		Degree:      degree,
		LicenseType: registry.LicenseTypeNone,
	}
}

func TestNationalityHistogramSingleRecord(t *testing.T) {
	entries := NationalityHistogram([]registry.Record{recordWith("EMP-1", "UAE", "ba")})
	if len(entries) != 1 {
		t.Fatalf("expected one bucket, got %d", len(entries))
	}
	got := entries[0]
	if got.Code != "UAE" || got.Count != 1 || got.Percentage != 100 {
		t.Fatalf("unexpected bucket %+v", got)
	}
	if got.LabelAr != "الإمارات العربية المتحدة" || got.LabelEn != "United Arab Emirates" {
		t.Fatalf("unexpected labels %+v", got)
	}
}

func TestNationalityHistogramOrderAndPercentages(t *testing.T) {
	records := []registry.Record{
		recordWith("EMP-1", "IND", "ba"),
		recordWith("EMP-2", "UAE", "ba"),
		recordWith("EMP-3", "IND", "ba"),
		recordWith("EMP-4", "EGY", "ba"),
		{EmployeeID: "EMP-5"},
	}

	entries := NationalityHistogram(records)
	if len(entries) != 3 {
		t.Fatalf("expected three buckets, got %d", len(entries))
	}
	if entries[0].Code != "IND" || entries[0].Count != 2 {
		t.Fatalf("expected IND first, got %+v", entries[0])
	}
	// UAE and EGY tie at 1; first-seen order wins.
	if entries[1].Code != "UAE" || entries[2].Code != "EGY" {
		t.Fatalf("tie order wrong: %s, %s", entries[1].Code, entries[2].Code)
	}
	// The record without a nationality still counts in the denominator.
	if entries[0].Percentage != 40 {
		t.Fatalf("expected 40%%, got %v", entries[0].Percentage)
	}
}

func TestEducationHistogramOnlyPresentDegrees(t *testing.T) {
	records := []registry.Record{
		recordWith("EMP-1", "UAE", "phd"),
		recordWith("EMP-2", "UAE", "ba"),
		recordWith("EMP-3", "UAE", "ba"),
	}

	entries := EducationHistogram(records)
	if len(entries) != 2 {
		t.Fatalf("absent degrees must not appear, got %d buckets", len(entries))
	}
	if entries[0].Code != "ba" || entries[0].Count != 2 {
		t.Fatalf("expected ba first, got %+v", entries[0])
	}
	if entries[1].Code != "phd" {
		t.Fatalf("expected phd second, got %+v", entries[1])
	}
}

func TestEducationHistogramTieKeepsOptionOrder(t *testing.T) {
	records := []registry.Record{
		recordWith("EMP-1", "UAE", "phd"),
		recordWith("EMP-2", "UAE", "primary"),
	}

	entries := EducationHistogram(records)
	if len(entries) != 2 || entries[0].Code != "primary" || entries[1].Code != "phd" {
		t.Fatalf("tied buckets must follow the option table order, got %+v", entries)
	}
}

func TestExpiredDocumentsRows(t *testing.T) {
	expired := recordWith("EMP-1", "UAE", "ba")
	expired.PassportExpiry = "2024-01-01"
	valid := recordWith("EMP-2", "UAE", "ba")
	valid.PassportExpiry = "2030-01-01"

	rows := ExpiredDocuments([]registry.Record{expired, valid}, fixedToday())
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	row := rows[0]
	if row.EmployeeID != "EMP-1" || row.DocumentType != registry.DocPassport || row.ExpiryDate != "2024-01-01" {
		t.Fatalf("unexpected row %+v", row)
	}
}

func TestExpiredDocumentsMultipleRowsPerRecord(t *testing.T) {
	rec := recordWith("EMP-1", "UAE", "ba")
	rec.PassportExpiry = "2024-01-01"
	rec.EmiratesExpiry = "2024-02-01"

	rows := ExpiredDocuments([]registry.Record{rec}, fixedToday())
	if len(rows) != 2 {
		t.Fatalf("one record with two expired documents must yield two rows, got %d", len(rows))
	}
}

func TestFileStatistics(t *testing.T) {
	pdf := &registry.Attachment{FileName: "a.pdf", ContentType: "application/pdf", Size: 3, Data: []byte("pdf")}
	img := &registry.Attachment{FileName: "b.png", ContentType: "image/png", Size: 3, Data: []byte("png")}

	withFiles := recordWith("EMP-1", "UAE", "ba")
	withFiles.PassportFile = pdf
	withFiles.EIDFile = pdf
	withFiles.ProfilePicture = img

	bare := recordWith("EMP-2", "UAE", "ba")

	stats := FileStatistics([]registry.Record{withFiles, bare})
	if stats.TotalFiles != 3 || stats.PDFCount != 2 || stats.ImageCount != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.Categories[registry.FilePassport] != 1 || stats.Categories[registry.FileProfile] != 1 {
		t.Fatalf("unexpected category counts %v", stats.Categories)
	}
	if stats.Categories[registry.FileLicense] != 0 {
		t.Fatalf("empty categories must report zero, got %v", stats.Categories)
	}
}
