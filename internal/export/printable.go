package export

import (
	"html/template"
	"strings"
	"time"

	"empreg/internal/domain/registry"
)

var listTemplate = template.Must(template.New("list").Parse(`<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; padding: 20px; }
h2 { text-align: center; margin-bottom: 20px; color: #1e293b; }
table { width: 100%; border-collapse: collapse; font-size: 12px; }
th, td { border: 1px solid #cbd5e1; padding: 8px 12px; text-align: right; }
th { background-color: #f1f5f9; color: #475569; font-weight: bold; text-transform: uppercase; }
tr:nth-child(even) { background-color: #f8fafc; }
.text-center { text-align: center; }
.sub-text { font-size: 10px; color: #64748b; display: block; margin-top: 2px; }
</style>
</head>
<body>
<h2>{{.Title}}</h2>
<table>
<thead>
<tr>
<th class="text-center">#</th>
<th class="text-center">ID</th>
<th>الموظف | Employee</th>
<th class="text-center">الجنسية | Nationality</th>
<th class="text-center">المؤهل | Qualification</th>
<th class="text-center">{{.DateHeader}}</th>
</tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td class="text-center">{{.Seq}}</td>
<td class="text-center" dir="ltr"><b>{{.EmployeeID}}</b></td>
<td><b>{{.NameAr}}</b><span class="sub-text">{{.NameEn}}</span></td>
<td class="text-center">{{.Nationality}}</td>
<td class="text-center">{{.Degree}}</td>
<td class="text-center" dir="ltr">{{.Date}}</td>
</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

var detailTemplate = template.Must(template.New("detail").Parse(`<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
<title>Employee Record - {{.EmployeeID}}</title>
<style>
body { font-family: sans-serif; padding: 30px; direction: rtl; }
.header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #1e4b8a; padding-bottom: 20px; }
.header h1 { margin: 0; color: #1e4b8a; font-size: 24px; }
.header h2 { margin: 5px 0 0; color: #64748b; font-size: 18px; }
.section { margin-bottom: 20px; border: 1px solid #e2e8f0; border-radius: 6px; overflow: hidden; break-inside: avoid; }
.section-header { background: #f8fafc; padding: 8px 15px; border-bottom: 1px solid #e2e8f0; font-weight: bold; color: #334155; font-size: 14px; }
.grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 15px; padding: 15px; }
.field { display: flex; flex-direction: column; gap: 2px; }
.label { font-size: 10px; color: #64748b; font-weight: bold; text-transform: uppercase; }
.value { font-size: 13px; color: #0f172a; font-weight: bold; }
@media print { body { padding: 0; } .section { break-inside: avoid; } }
</style>
</head>
<body>
<div class="header">
<h1>{{.NameAr}}</h1>
<h2 dir="ltr">{{.NameEn}}</h2>
</div>
{{range .Sections}}<div class="section">
<div class="section-header">{{.Title}}</div>
<div class="grid">
{{range .Fields}}<div class="field"><span class="label">{{.Label}}</span><span class="value"{{if .LTR}} dir="ltr"{{end}}>{{.Value}}</span></div>
{{end}}</div>
</div>
{{end}}</body>
</html>
`))

type listRow struct {
	Seq         int
	EmployeeID  string
	NameAr      string
	NameEn      string
	Nationality string
	Degree      string
	Date        string
}

type listView struct {
	Title      string
	DateHeader string
	Rows       []listRow
}

type detailField struct {
	Label string
	Value string
	LTR   bool
}

type detailSection struct {
	Title  string
	Fields []detailField
}

type detailView struct {
	EmployeeID string
	NameAr     string
	NameEn     string
	Sections   []detailSection
}

// RecordsHTML renders a static right-to-left table of the given records,
// mirroring the on-screen list, for the browser print dialog. The date
// column shows the submission date for active records and the deletion date
// when archive is set.
func RecordsHTML(records []registry.Record, archive bool) (string, error) {
	view := listView{Title: "سجلات الموظفين | Employee Records", DateHeader: "تاريخ الإدخال | Submission Date"}
	if archive {
		view.Title = "أرشيف الموظفين | Employee Archive"
		view.DateHeader = "تاريخ الحذف | Deleted Date"
	}
	for i := range records {
		rec := &records[i]
		date := rec.SubmissionDate
		if archive {
			date = rec.DeletedAt
		}
		view.Rows = append(view.Rows, listRow{
			Seq:         i + 1,
			EmployeeID:  rec.EmployeeID,
			NameAr:      rec.NameAr,
			NameEn:      rec.NameEn,
			Nationality: registry.LabelAr(rec.Nationality, registry.Nationalities),
			Degree:      registry.LabelAr(rec.Degree, registry.Degrees),
			Date:        displayTimestamp(date),
		})
	}

	var b strings.Builder
	if err := listTemplate.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RecordHTML renders one record as a printable detail document with the same
// sections as the on-screen detail view.
func RecordHTML(rec registry.Record) (string, error) {
	view := detailView{
		EmployeeID: rec.EmployeeID,
		NameAr:     rec.NameAr,
		NameEn:     rec.NameEn,
		Sections: []detailSection{
			{
				Title: "المعلومات الشخصية | Personal Information",
				Fields: []detailField{
					{Label: "الرقم الوظيفي | Employee ID", Value: rec.EmployeeID, LTR: true},
					{Label: "الجنسية | Nationality", Value: registry.LabelAr(rec.Nationality, registry.Nationalities)},
					{Label: "الحالة الاجتماعية | Marital Status", Value: registry.LabelAr(rec.MaritalStatus, registry.MaritalStatuses)},
					{Label: "تاريخ الميلاد | Date of Birth", Value: displayDate(rec.DateOfBirth), LTR: true},
					{Label: "رقم الهاتف | Phone Number", Value: rec.Phone, LTR: true},
					{Label: "البريد الإلكتروني | Email", Value: rec.Email, LTR: true},
				},
			},
			{
				Title: "المؤهلات العلمية | Education",
				Fields: []detailField{
					{Label: "المؤهل العلمي | Qualification", Value: registry.LabelAr(rec.Degree, registry.Degrees)},
					{Label: "التخصص | Specialization", Value: orDash(rec.Specialization)},
				},
			},
			{
				Title: "المستندات الرسمية | Official Documents",
				Fields: []detailField{
					{Label: "رقم جواز السفر | Passport No", Value: rec.PassportNumber, LTR: true},
					{Label: "تاريخ الانتهاء | Expiry Date", Value: displayDate(rec.PassportExpiry), LTR: true},
					{Label: "رقم الهوية | Emirates ID", Value: rec.EmiratesID, LTR: true},
					{Label: "تاريخ الانتهاء | Expiry Date", Value: displayDate(rec.EmiratesExpiry), LTR: true},
					{Label: "رقم الهوية (خليجي) | GCC ID", Value: orDash(rec.GCCID), LTR: true},
					{Label: "تاريخ الانتهاء | Expiry Date", Value: displayDate(rec.GCCIDExpiry), LTR: true},
					{Label: "نوع الرخصة | License Type", Value: registry.LabelAr(rec.LicenseType, registry.LicenseTypes)},
					{Label: "تاريخ الانتهاء | Expiry Date", Value: displayDate(rec.LicenseExpiry), LTR: true},
				},
			},
			{
				Title: "جهة الاتصال للطوارئ | Emergency Contact",
				Fields: []detailField{
					{Label: "الاسم | Name", Value: rec.EmergencyName},
					{Label: "الصلة | Relationship", Value: registry.LabelAr(rec.EmergencyRelation, registry.Relationships)},
					{Label: "رقم الهاتف | Phone Number", Value: rec.EmergencyPhone, LTR: true},
				},
			},
		},
	}

	var b strings.Builder
	if err := detailTemplate.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

// displayDate turns "YYYY-MM-DD" into "DD/MM/YYYY", matching the views.
func displayDate(value string) string {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return orDash(value)
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

func displayTimestamp(ts *time.Time) string {
	if ts == nil {
		return "-"
	}
	return ts.Format("02/01/2006")
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
