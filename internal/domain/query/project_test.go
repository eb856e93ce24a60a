package query

import (
	"reflect"
	"testing"
	"time"

	"empreg/internal/domain/registry"
)

func record(employeeID, nameAr, nameEn, nationality, degree, passportExpiry string) registry.Record {
	return registry.Record{
		EmployeeID:     employeeID,
		NameAr:         nameAr,
		NameEn:         nameEn,
		Nationality:    nationality,
		Degree:         degree,
		PassportExpiry: passportExpiry,
		LicenseType:    registry.LicenseTypeNone,
	}
}

func fixedToday() time.Time {
	return registry.Today(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
}

func TestSearchMatchesSubstringAcrossFields(t *testing.T) {
	records := []registry.Record{
		record("EMP-1", "أحمد", "Ahmed", "UAE", "ba", "2030-01-01"),
		record("EMP-10", "سالم", "Salem", "UAE", "ba", "2030-01-01"),
		record("X-2", "خالد", "Khaled EMP-1x", "UAE", "ba", "2030-01-01"),
	}

	got := Project(records, Spec{SearchTerm: "emp-1"}, fixedToday())
	if got.TotalCount != 3 {
		t.Fatalf("substring search should match all three, got %d", got.TotalCount)
	}

	got = Project(records, Spec{SearchTerm: "salem"}, fixedToday())
	if got.TotalCount != 1 || got.Page[0].EmployeeID != "EMP-10" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestFiltersAreANDed(t *testing.T) {
	records := []registry.Record{
		record("EMP-1", "أ", "A", "UAE", "ba", "2030-01-01"),
		record("EMP-2", "ب", "B", "UAE", "ma", "2030-01-01"),
		record("EMP-3", "ج", "C", "IND", "ba", "2030-01-01"),
		record("EMP-4", "د", "D", "UAE", "ba", "2020-01-01"),
	}

	got := Project(records, Spec{Nationality: "UAE", Degree: "ba", ExpiryStatus: ExpiryValid}, fixedToday())
	if got.TotalCount != 1 || got.Page[0].EmployeeID != "EMP-1" {
		t.Fatalf("unexpected projection %+v", got)
	}

	got = Project(records, Spec{Nationality: "UAE", ExpiryStatus: ExpiryExpired}, fixedToday())
	if got.TotalCount != 1 || got.Page[0].EmployeeID != "EMP-4" {
		t.Fatalf("unexpected projection %+v", got)
	}
}

func TestSortByNationalityUsesLabelNotCode(t *testing.T) {
	// Code order puts EGY before IND; the Arabic labels sort the other way
	// round ("الهند" before "مصر").
	records := []registry.Record{
		record("EMP-EGY", "أ", "A", "EGY", "ba", "2030-01-01"),
		record("EMP-IND", "ب", "B", "IND", "ba", "2030-01-01"),
	}

	got := Project(records, Spec{SortKey: "nationality", SortDirection: DirectionAsc}, fixedToday())
	if got.Page[0].EmployeeID != "EMP-IND" || got.Page[1].EmployeeID != "EMP-EGY" {
		t.Fatalf("expected label-based order IND then EGY, got %s then %s", got.Page[0].EmployeeID, got.Page[1].EmployeeID)
	}

	got = Project(records, Spec{SortKey: "nationality", SortDirection: DirectionDesc}, fixedToday())
	if got.Page[0].EmployeeID != "EMP-EGY" {
		t.Fatalf("descending order should reverse, got %s first", got.Page[0].EmployeeID)
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	records := []registry.Record{
		record("EMP-1", "أ", "A", "UAE", "ba", "2030-01-01"),
		record("EMP-2", "ب", "B", "UAE", "ba", "2030-01-01"),
		record("EMP-3", "ج", "C", "UAE", "ba", "2030-01-01"),
	}

	got := Project(records, Spec{SortKey: "nationality"}, fixedToday())
	for i, want := range []string{"EMP-1", "EMP-2", "EMP-3"} {
		if got.Page[i].EmployeeID != want {
			t.Fatalf("tie order changed at %d: got %s", i, got.Page[i].EmployeeID)
		}
	}
}

func TestMissingDatesSortFirst(t *testing.T) {
	withDate := record("EMP-1", "أ", "A", "UAE", "ba", "2030-01-01")
	stamped := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	withDate.SubmissionDate = &stamped
	withoutDate := record("EMP-2", "ب", "B", "UAE", "ba", "2030-01-01")

	got := Project([]registry.Record{withDate, withoutDate}, Spec{SortKey: "submissionDate", SortDirection: DirectionAsc}, fixedToday())
	if got.Page[0].EmployeeID != "EMP-2" {
		t.Fatalf("missing date must sort before real dates, got %s first", got.Page[0].EmployeeID)
	}
}

func TestPagination(t *testing.T) {
	var records []registry.Record
	for i := 0; i < 7; i++ {
		records = append(records, record("EMP-"+string(rune('A'+i)), "أ", "A", "UAE", "ba", "2030-01-01"))
	}

	first := Project(records, Spec{PageNumber: 1, PageSize: 3}, fixedToday())
	if len(first.Page) != 3 || first.TotalCount != 7 {
		t.Fatalf("unexpected first page %+v", first)
	}

	last := Project(records, Spec{PageNumber: 3, PageSize: 3}, fixedToday())
	if len(last.Page) != 1 || last.TotalCount != 7 {
		t.Fatalf("unexpected last page %+v", last)
	}

	beyond := Project(records, Spec{PageNumber: 9, PageSize: 3}, fixedToday())
	if len(beyond.Page) != 0 || beyond.TotalCount != 7 {
		t.Fatalf("page beyond the end must be empty with full count, got %+v", beyond)
	}
}

func TestProjectLeavesInputUntouched(t *testing.T) {
	records := []registry.Record{
		record("EMP-2", "ب", "B", "IND", "ba", "2030-01-01"),
		record("EMP-1", "أ", "A", "UAE", "ba", "2030-01-01"),
	}
	original := make([]registry.Record, len(records))
	copy(original, records)

	spec := Spec{SortKey: "employeeId", SortDirection: DirectionAsc}
	first := Project(records, spec, fixedToday())
	second := Project(records, spec, fixedToday())

	if !reflect.DeepEqual(records, original) {
		t.Fatal("projection must not mutate its input")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must yield identical projections")
	}
}
