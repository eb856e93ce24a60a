package reports

import (
	"testing"
	"time"

	"empreg/internal/domain/registry"
)

func storeWithRecord(t *testing.T, employeeID string) *registry.Store {
	t.Helper()
	store := registry.NewStore()
	file := &registry.Attachment{FileName: "doc.pdf", ContentType: "application/pdf", Size: 3, Data: []byte("pdf")}
	_, err := store.Create(registry.Record{
		EmployeeID:        employeeID,
		Nationality:       "UAE",
		NameAr:            "اسم",
		NameEn:            "Name",
		MaritalStatus:     "single",
		DateOfBirth:       "1990-01-01",
		Degree:            "ba",
		Phone:             "0501111111",
		PassportNumber:    "P1",
		PassportExpiry:    "2030-01-01",
		EmiratesID:        "784",
		EmiratesExpiry:    "2030-01-01",
		LicenseType:       registry.LicenseTypeNone,
		EmergencyName:     "جهة",
		EmergencyRelation: "parent",
		EmergencyPhone:    "0502222222",
		PassportFile:      file,
		EIDFile:           file,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return store
}

func TestSnapshotSummary(t *testing.T) {
	store := storeWithRecord(t, "EMP-1")
	service := NewService(store)

	snap := service.Snapshot(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	if snap.Summary.TotalEmployees != 1 || snap.Summary.TotalFiles != 2 || snap.Summary.Nationalities != 1 {
		t.Fatalf("unexpected summary %+v", snap.Summary)
	}
	if snap.Summary.ExpiredDocuments != 0 {
		t.Fatalf("expected no expired documents, got %d", snap.Summary.ExpiredDocuments)
	}
}

func TestSnapshotMemoizedUntilStoreChanges(t *testing.T) {
	store := storeWithRecord(t, "EMP-1")
	service := NewService(store)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	first := service.Snapshot(now)
	second := service.Snapshot(now.Add(time.Hour))
	if &first.Nationalities[0] != &second.Nationalities[0] {
		t.Fatal("same store version and day must return the cached snapshot")
	}

	before := store.Version()
	storeAddSecond(t, store)
	if store.Version() == before {
		t.Fatal("expected version bump")
	}
	third := service.Snapshot(now)
	if third.Summary.TotalEmployees != 2 {
		t.Fatalf("snapshot must recompute after a mutation, got %+v", third.Summary)
	}
}

func TestSnapshotRecomputesOnDayRollover(t *testing.T) {
	store := storeWithRecord(t, "EMP-1")
	service := NewService(store)

	day1 := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	first := service.Snapshot(day1)
	second := service.Snapshot(day1.Add(2 * time.Hour))
	if len(second.Nationalities) != len(first.Nationalities) {
		t.Fatal("rollover recompute must yield equivalent aggregates")
	}
	if len(first.Nationalities) > 0 && &first.Nationalities[0] == &second.Nationalities[0] {
		t.Fatal("a new calendar day must recompute the snapshot")
	}
}

func storeAddSecond(t *testing.T, store *registry.Store) {
	t.Helper()
	file := &registry.Attachment{FileName: "doc.pdf", ContentType: "application/pdf", Size: 3, Data: []byte("pdf")}
	_, err := store.Create(registry.Record{
		EmployeeID:        "EMP-2",
		Nationality:       "IND",
		NameAr:            "اسم",
		NameEn:            "Name",
		MaritalStatus:     "single",
		DateOfBirth:       "1991-01-01",
		Degree:            "ma",
		Phone:             "0503333333",
		PassportNumber:    "P2",
		PassportExpiry:    "2030-01-01",
		EmiratesID:        "785",
		EmiratesExpiry:    "2030-01-01",
		LicenseType:       registry.LicenseTypeNone,
		EmergencyName:     "جهة",
		EmergencyRelation: "parent",
		EmergencyPhone:    "0504444444",
		PassportFile:      file,
		EIDFile:           file,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
}
