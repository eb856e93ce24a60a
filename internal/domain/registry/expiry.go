package registry

import "time"

// Document type labels used in the expiry report and its exports.
const (
	DocPassport   = "جواز السفر | Passport"
	DocEmiratesID = "الهوية الإماراتية | Emirates ID"
	DocGCCID      = "الهوية الخليجية | GCC ID"
	DocLicense    = "رخصة القيادة | Driving License"
)

// ExpiredDocument is one expired document of a record.
type ExpiredDocument struct {
	DocumentType string `json:"documentType"`
	ExpiryDate   string `json:"expiryDate"`
}

// Today strips the time-of-day from now. Expiry comparisons are strict
// past-date checks against this midnight value, so a document expiring today
// is still valid.
func Today(now time.Time) time.Time {
	year, month, day := now.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dateExpired(value string, today time.Time) bool {
	if value == "" {
		return false
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}
	return parsed.Before(today)
}

// ExpiredDocuments returns one entry per expired document: passport, Emirates
// ID, GCC ID when a GCC ID number is present, and license when the license
// type is not "none". A record contributes between zero and four entries.
func (r *Record) ExpiredDocuments(today time.Time) []ExpiredDocument {
	var expired []ExpiredDocument
	if dateExpired(r.PassportExpiry, today) {
		expired = append(expired, ExpiredDocument{DocumentType: DocPassport, ExpiryDate: r.PassportExpiry})
	}
	if dateExpired(r.EmiratesExpiry, today) {
		expired = append(expired, ExpiredDocument{DocumentType: DocEmiratesID, ExpiryDate: r.EmiratesExpiry})
	}
	if r.GCCID != "" && dateExpired(r.GCCIDExpiry, today) {
		expired = append(expired, ExpiredDocument{DocumentType: DocGCCID, ExpiryDate: r.GCCIDExpiry})
	}
	if r.LicenseType != LicenseTypeNone && dateExpired(r.LicenseExpiry, today) {
		expired = append(expired, ExpiredDocument{DocumentType: DocLicense, ExpiryDate: r.LicenseExpiry})
	}
	return expired
}

// HasExpiredDocument reports whether any of the record's documents is
// expired. Empty or unparsable expiry dates never count as expired.
func (r *Record) HasExpiredDocument(today time.Time) bool {
	return len(r.ExpiredDocuments(today)) > 0
}
