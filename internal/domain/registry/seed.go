package registry

import "log/slog"

// Seed loads a handful of demo records into an empty store so the list,
// archive and report views have data during development. Returns the number
// of records created.
func Seed(store *Store) int {
	if active, archived := store.Counts(); active+archived > 0 {
		return 0
	}

	demoPDF := func(name string) *Attachment {
		data := []byte("%PDF-1.4\n% demo attachment\n%%EOF\n")
		return &Attachment{FileName: name, ContentType: "application/pdf", Size: int64(len(data)), Data: data}
	}

	drafts := []Record{
		{
			EmployeeID:          "EMP-10001",
			Nationality:         "UAE",
			NameAr:              "أحمد خالد المنصوري",
			NameEn:              "Ahmed Khalid Almansoori",
			MaritalStatus:       "married",
			DateOfBirth:         "1988-03-14",
			Degree:              "ba",
			Specialization:      "هندسة برمجيات | Software Engineering",
			Phone:               "0501234567",
			Email:               "ahmed@example.com",
			PassportNumber:      "A1234567",
			PassportExpiry:      "2030-06-01",
			EmiratesID:          "784-1988-1234567-1",
			EmiratesExpiry:      "2027-01-15",
			LicenseType:         "private",
			LicenseExpiry:       "2028-09-30",
			EmergencyName:       "خالد المنصوري",
			EmergencyRelation:   "parent",
			EmergencyPhone:      "0507654321",
			PassportFile:        demoPDF("passport.pdf"),
			EIDFile:             demoPDF("eid.pdf"),
			LicenseFile:         demoPDF("license.pdf"),
			DeclarationAccepted: true,
		},
		{
			EmployeeID:          "EMP-10002",
			Nationality:         "IND",
			NameAr:              "راجيش كومار",
			NameEn:              "Rajesh Kumar",
			MaritalStatus:       "single",
			DateOfBirth:         "1992-11-02",
			Degree:              "ma",
			Specialization:      "محاسبة | Accounting",
			Phone:               "0529876543",
			Email:               "rajesh@example.com",
			PassportNumber:      "Z7654321",
			PassportExpiry:      "2024-02-01",
			EmiratesID:          "784-1992-7654321-2",
			EmiratesExpiry:      "2026-08-20",
			LicenseType:         "none",
			EmergencyName:       "Sunita Kumar",
			EmergencyRelation:   "spouse",
			EmergencyPhone:      "0551112233",
			PassportFile:        demoPDF("passport.pdf"),
			EIDFile:             demoPDF("eid.pdf"),
			DeclarationAccepted: true,
		},
	}

	created := 0
	for _, draft := range drafts {
		if _, err := store.Create(draft); err != nil {
			slog.Warn("seed record rejected", "employeeId", draft.EmployeeID, "err", err)
			continue
		}
		created++
	}
	return created
}
