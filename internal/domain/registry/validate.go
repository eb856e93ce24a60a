package registry

import "strings"

// Bilingual field labels surfaced in validation errors, taken from the form.
const (
	LabelEmployeeID     = "الرقم الوظيفي | Employee ID"
	LabelNationality    = "الجنسية | Nationality"
	LabelNameAr         = "الاسم الكامل (باللغة العربية) | Full Name (Arabic)"
	LabelNameEn         = "الاسم الكامل (باللغة الإنجليزية) | Full Name (English)"
	LabelMaritalStatus  = "الحالة الاجتماعية | Marital Status"
	LabelDateOfBirth    = "تاريخ الميلاد | Date of Birth"
	LabelDegree         = "المؤهل العلمي | Educational Qualification"
	LabelPhone          = "رقم الهاتف | Phone Number"
	LabelPassportNumber = "رقم جواز السفر | Passport Number"
	LabelPassportExpiry = "تاريخ انتهاء جواز السفر | Passport Expiry Date"
	LabelEmiratesID     = "رقم الهوية الإماراتية | Emirates ID Number"
	LabelEmiratesExpiry = "تاريخ انتهاء الهوية الإماراتية | Emirates ID Expiry"
	LabelLicenseType    = "نوع الرخصة | License Type"
	LabelLicenseExpiry  = "تاريخ انتهاء الرخصة | License Expiry"
	LabelEmergencyName  = "اسم شخص للطوارئ | Emergency Contact Name"
	LabelEmergencyRel   = "صلة القرابة | Relationship"
	LabelEmergencyPhone = "رقم التواصل في حالات الطوارئ | Emergency Contact Number"
	LabelPassportFile   = "صورة جواز السفر | Passport Copy"
	LabelEIDFile        = "صورة الهوية الإماراتية | Emirates ID Copy"
	LabelLicenseFile    = "صورة رخصة القيادة | Driving License Copy"
)

type validator struct {
	missing []string
}

func (v *validator) required(value, label string) {
	if strings.TrimSpace(value) == "" {
		v.missing = append(v.missing, label)
	}
}

func (v *validator) requiredFile(file *Attachment, label string) {
	if file == nil || len(file.Data) == 0 {
		v.missing = append(v.missing, label)
	}
}

func (v *validator) err() error {
	if len(v.missing) == 0 {
		return nil
	}
	return &ValidationError{Missing: v.missing}
}

// Validate checks the required-field policy for a draft record and reports
// every missing field at once. License expiry and license file are exempt
// when the license type is "none".
func Validate(r Record) error {
	v := &validator{}
	v.required(r.EmployeeID, LabelEmployeeID)
	v.required(r.Nationality, LabelNationality)
	v.required(r.NameAr, LabelNameAr)
	v.required(r.NameEn, LabelNameEn)
	v.required(r.MaritalStatus, LabelMaritalStatus)
	v.required(r.DateOfBirth, LabelDateOfBirth)
	v.required(r.Degree, LabelDegree)
	v.required(r.Phone, LabelPhone)
	v.required(r.PassportNumber, LabelPassportNumber)
	v.required(r.PassportExpiry, LabelPassportExpiry)
	v.required(r.EmiratesID, LabelEmiratesID)
	v.required(r.EmiratesExpiry, LabelEmiratesExpiry)
	v.required(r.LicenseType, LabelLicenseType)
	v.required(r.EmergencyName, LabelEmergencyName)
	v.required(r.EmergencyRelation, LabelEmergencyRel)
	v.required(r.EmergencyPhone, LabelEmergencyPhone)
	v.requiredFile(r.PassportFile, LabelPassportFile)
	v.requiredFile(r.EIDFile, LabelEIDFile)
	if r.LicenseType != LicenseTypeNone {
		v.required(r.LicenseExpiry, LabelLicenseExpiry)
		v.requiredFile(r.LicenseFile, LabelLicenseFile)
	}
	return v.err()
}
