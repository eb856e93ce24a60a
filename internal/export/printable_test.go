package export

import (
	"strings"
	"testing"
	"time"

	"empreg/internal/domain/registry"
)

func TestRecordsHTMLList(t *testing.T) {
	doc, err := RecordsHTML([]registry.Record{exportRecord()}, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(doc, `dir="rtl"`) {
		t.Fatal("list document must be right-to-left")
	}
	for _, want := range []string{"EMP-1", "أحمد خالد", "Ahmed Khalid", "الإمارات العربية المتحدة", "بكالوريوس", "10/03/2025"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q", want)
		}
	}
	if !strings.Contains(doc, "تاريخ الإدخال") {
		t.Fatal("active list must show the submission date column")
	}
}

func TestRecordsHTMLArchiveUsesDeletedDate(t *testing.T) {
	rec := exportRecord()
	deleted := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	rec.DeletedAt = &deleted

	doc, err := RecordsHTML([]registry.Record{rec}, true)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(doc, "تاريخ الحذف") || !strings.Contains(doc, "02/04/2025") {
		t.Fatal("archive document must show the deletion date")
	}
}

func TestRecordHTMLDetail(t *testing.T) {
	rec := exportRecord()
	rec.MaritalStatus = "married"
	rec.DateOfBirth = "1988-03-14"
	rec.Phone = "0501234567"
	rec.PassportNumber = "A1234567"
	rec.PassportExpiry = "2030-06-01"
	rec.EmergencyName = "خالد"
	rec.EmergencyRelation = "parent"
	rec.EmergencyPhone = "0507654321"

	doc, err := RecordHTML(rec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(doc, `dir="rtl"`) {
		t.Fatal("detail document must be right-to-left")
	}
	for _, want := range []string{
		"A1234567",
		"01/06/2030",
		"14/03/1988",
		"متزوج/متزوجة",
		"أب / أم",
		"المستندات الرسمية | Official Documents",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q", want)
		}
	}
}

func TestRecordHTMLEmptyOptionalsRenderDash(t *testing.T) {
	rec := exportRecord()
	rec.Specialization = ""
	rec.GCCID = ""

	doc, err := RecordHTML(rec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(doc, ">-<") {
		t.Fatal("empty optional fields must render as a dash")
	}
}

func TestRosterPDF(t *testing.T) {
	data, err := RosterPDF([]registry.Record{exportRecord()}, "Employee Roster")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data[:8]), "%PDF") {
		t.Fatal("expected a PDF payload")
	}
}
