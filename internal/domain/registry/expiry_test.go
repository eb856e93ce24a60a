package registry

import (
	"testing"
	"time"
)

func TestTodayStripsClock(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	today := Today(now)
	if today != time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected midnight value %v", today)
	}
}

func TestExpiredDocumentsStrictPastCheck(t *testing.T) {
	today := Today(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	rec := testRecord("EMP-1")
	rec.PassportExpiry = "2025-06-15"
	if docs := rec.ExpiredDocuments(today); len(docs) != 0 {
		t.Fatalf("a document expiring today is still valid, got %v", docs)
	}

	rec.PassportExpiry = "2025-06-14"
	docs := rec.ExpiredDocuments(today)
	if len(docs) != 1 {
		t.Fatalf("expected one expired document, got %v", docs)
	}
	if docs[0].DocumentType != DocPassport || docs[0].ExpiryDate != "2025-06-14" {
		t.Fatalf("unexpected row %+v", docs[0])
	}
}

func TestExpiredDocumentsGCCGatedOnNumber(t *testing.T) {
	today := Today(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	rec := testRecord("EMP-1")
	rec.GCCID = ""
	rec.GCCIDExpiry = "2020-01-01"
	if docs := rec.ExpiredDocuments(today); len(docs) != 0 {
		t.Fatalf("GCC expiry must be ignored without a GCC id, got %v", docs)
	}

	rec.GCCID = "123456"
	docs := rec.ExpiredDocuments(today)
	if len(docs) != 1 || docs[0].DocumentType != DocGCCID {
		t.Fatalf("expected a GCC row, got %v", docs)
	}
}

func TestExpiredDocumentsLicenseGatedOnType(t *testing.T) {
	today := Today(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	rec := testRecord("EMP-1")
	rec.LicenseType = LicenseTypeNone
	rec.LicenseExpiry = "2020-01-01"
	if docs := rec.ExpiredDocuments(today); len(docs) != 0 {
		t.Fatalf("license expiry must be ignored for type none, got %v", docs)
	}

	rec.LicenseType = "private"
	docs := rec.ExpiredDocuments(today)
	if len(docs) != 1 || docs[0].DocumentType != DocLicense {
		t.Fatalf("expected a license row, got %v", docs)
	}
}

func TestExpiredDocumentsAllFour(t *testing.T) {
	today := Today(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	rec := testRecord("EMP-1")
	rec.PassportExpiry = "2024-01-01"
	rec.EmiratesExpiry = "2024-02-01"
	rec.GCCID = "654321"
	rec.GCCIDExpiry = "2024-03-01"
	rec.LicenseType = "bus"
	rec.LicenseExpiry = "2024-04-01"

	docs := rec.ExpiredDocuments(today)
	if len(docs) != 4 {
		t.Fatalf("expected four rows, got %v", docs)
	}
	order := []string{DocPassport, DocEmiratesID, DocGCCID, DocLicense}
	for i, want := range order {
		if docs[i].DocumentType != want {
			t.Fatalf("row %d: expected %q, got %q", i, want, docs[i].DocumentType)
		}
	}
	if !rec.HasExpiredDocument(today) {
		t.Fatal("HasExpiredDocument must agree with ExpiredDocuments")
	}
}

func TestMalformedDatesNeverExpire(t *testing.T) {
	today := Today(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	rec := testRecord("EMP-1")
	rec.PassportExpiry = "not-a-date"
	rec.EmiratesExpiry = ""
	if rec.HasExpiredDocument(today) {
		t.Fatal("unparsable and empty dates must not count as expired")
	}
}
