package registry

import "time"

// Attachment is an uploaded file held in memory for the lifetime of its
// record. Bytes, declared content type and file name are stored exactly as
// received and handed back unchanged.
type Attachment struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// Attachment categories, used for lookup routes and file statistics.
const (
	FileProfile   = "profile"
	FileEducation = "education"
	FilePassport  = "passport"
	FileEID       = "eid"
	FileLicense   = "license"
	FileGCC       = "gcc"
)

// Record is one employee's complete profile. Enum-coded fields carry the raw
// option codes; dates are ISO 8601 "YYYY-MM-DD" strings or empty.
type Record struct {
	ID                       string      `json:"id"`
	EmployeeID               string      `json:"employeeId"`
	ProfilePicture           *Attachment `json:"profilePicture,omitempty"`
	Nationality              string      `json:"nationality"`
	NameAr                   string      `json:"nameAr"`
	NameEn                   string      `json:"nameEn"`
	MaritalStatus            string      `json:"maritalStatus"`
	DateOfBirth              string      `json:"dateOfBirth"`
	Degree                   string      `json:"degree"`
	Specialization           string      `json:"specialization"`
	EducationCertificateFile *Attachment `json:"educationCertificateFile,omitempty"`
	Phone                    string      `json:"phone"`
	Email                    string      `json:"email"`
	PassportNumber           string      `json:"passportNumber"`
	PassportExpiry           string      `json:"passportExpiry"`
	EmiratesID               string      `json:"emiratesId"`
	EmiratesExpiry           string      `json:"emiratesExpiry"`
	GCCID                    string      `json:"gccId"`
	GCCIDExpiry              string      `json:"gccIdExpiry"`
	LicenseType              string      `json:"licenseType"`
	LicenseExpiry            string      `json:"licenseExpiry"`
	PassportFile             *Attachment `json:"passportFile,omitempty"`
	EIDFile                  *Attachment `json:"eidFile,omitempty"`
	LicenseFile              *Attachment `json:"licenseFile,omitempty"`
	GCCIDFile                *Attachment `json:"gccIdFile,omitempty"`
	EmergencyName            string      `json:"emergencyName"`
	EmergencyRelation        string      `json:"emergencyRelation"`
	EmergencyPhone           string      `json:"emergencyPhone"`
	DeclarationAccepted      bool        `json:"declarationAccepted"`
	SubmissionDate           *time.Time  `json:"submissionDate,omitempty"`
	DeletedAt                *time.Time  `json:"deletedAt,omitempty"`
}

// AttachmentByCategory returns the attachment stored under the given
// category, or nil when the category is unknown or the slot is empty.
func (r *Record) AttachmentByCategory(category string) *Attachment {
	switch category {
	case FileProfile:
		return r.ProfilePicture
	case FileEducation:
		return r.EducationCertificateFile
	case FilePassport:
		return r.PassportFile
	case FileEID:
		return r.EIDFile
	case FileLicense:
		return r.LicenseFile
	case FileGCC:
		return r.GCCIDFile
	}
	return nil
}
