// Package reports computes derived statistics over a collection snapshot:
// expired-document rows, nationality and education histograms, and file
// counts. All aggregates are pure functions of the snapshot.
package reports

import (
	"sort"
	"strings"
	"time"

	"empreg/internal/domain/registry"
)

// ExpiredRow is one expired document of one record. A record contributes up
// to four rows; the expiry badge elsewhere counts rows, not records.
type ExpiredRow struct {
	EmployeeID   string `json:"employeeId"`
	NameAr       string `json:"nameAr"`
	NameEn       string `json:"nameEn"`
	Nationality  string `json:"nationality"`
	DocumentType string `json:"documentType"`
	ExpiryDate   string `json:"expiryDate"`
}

// HistogramEntry is one bucket of the nationality or education distribution.
type HistogramEntry struct {
	Code       string  `json:"code"`
	LabelAr    string  `json:"labelAr"`
	LabelEn    string  `json:"labelEn"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FileStats counts non-empty attachments across the collection, split by
// MIME category and by semantic slot.
type FileStats struct {
	TotalFiles int            `json:"totalFiles"`
	PDFCount   int            `json:"pdfCount"`
	ImageCount int            `json:"imageCount"`
	Categories map[string]int `json:"categories"`
}

// Summary backs the report page's header cards.
type Summary struct {
	TotalEmployees   int `json:"totalEmployees"`
	ExpiredDocuments int `json:"expiredDocuments"`
	TotalFiles       int `json:"totalFiles"`
	Nationalities    int `json:"nationalities"`
}

// ExpiredDocuments flattens every expired document of every record into rows,
// in collection order.
func ExpiredDocuments(records []registry.Record, today time.Time) []ExpiredRow {
	var rows []ExpiredRow
	for i := range records {
		rec := &records[i]
		for _, doc := range rec.ExpiredDocuments(today) {
			rows = append(rows, ExpiredRow{
				EmployeeID:   rec.EmployeeID,
				NameAr:       rec.NameAr,
				NameEn:       rec.NameEn,
				Nationality:  rec.Nationality,
				DocumentType: doc.DocumentType,
				ExpiryDate:   doc.ExpiryDate,
			})
		}
	}
	return rows
}

// NationalityHistogram counts records per nationality code, sorted by count
// descending. Percentages are taken against the full collection size, so
// records without a nationality still weigh in the denominator. Ties keep
// first-seen order.
func NationalityHistogram(records []registry.Record) []HistogramEntry {
	counts := map[string]int{}
	var order []string
	for i := range records {
		code := records[i].Nationality
		if code == "" {
			continue
		}
		if _, seen := counts[code]; !seen {
			order = append(order, code)
		}
		counts[code]++
	}

	entries := make([]HistogramEntry, 0, len(order))
	for _, code := range order {
		entries = append(entries, HistogramEntry{
			Code:       code,
			LabelAr:    registry.LabelAr(code, registry.Nationalities),
			LabelEn:    registry.LabelEn(code, registry.Nationalities),
			Count:      counts[code],
			Percentage: percentage(counts[code], len(records)),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	return entries
}

// EducationHistogram counts records per degree code, restricted to degrees
// actually present, sorted by count descending. Ties keep option-table order.
func EducationHistogram(records []registry.Record) []HistogramEntry {
	counts := map[string]int{}
	for i := range records {
		if code := records[i].Degree; code != "" {
			counts[code]++
		}
	}

	var entries []HistogramEntry
	for _, option := range registry.Degrees {
		count := counts[option.Value]
		if count == 0 {
			continue
		}
		entries = append(entries, HistogramEntry{
			Code:       option.Value,
			LabelAr:    registry.LabelAr(option.Value, registry.Degrees),
			LabelEn:    registry.LabelEn(option.Value, registry.Degrees),
			Count:      count,
			Percentage: percentage(count, len(records)),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	return entries
}

// FileStatistics counts every stored attachment once: in the total, in its
// MIME bucket (application/pdf vs image/*), and in its semantic category.
func FileStatistics(records []registry.Record) FileStats {
	stats := FileStats{Categories: map[string]int{
		registry.FileProfile:   0,
		registry.FileEducation: 0,
		registry.FilePassport:  0,
		registry.FileEID:       0,
		registry.FileLicense:   0,
		registry.FileGCC:       0,
	}}

	count := func(file *registry.Attachment, category string) {
		if file == nil {
			return
		}
		stats.TotalFiles++
		stats.Categories[category]++
		switch {
		case file.ContentType == "application/pdf":
			stats.PDFCount++
		case strings.HasPrefix(file.ContentType, "image/"):
			stats.ImageCount++
		}
	}

	for i := range records {
		rec := &records[i]
		count(rec.ProfilePicture, registry.FileProfile)
		count(rec.EducationCertificateFile, registry.FileEducation)
		count(rec.PassportFile, registry.FilePassport)
		count(rec.EIDFile, registry.FileEID)
		count(rec.LicenseFile, registry.FileLicense)
		count(rec.GCCIDFile, registry.FileGCC)
	}
	return stats
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
