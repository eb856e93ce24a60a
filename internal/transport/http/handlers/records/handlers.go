package recordhandler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"empreg/internal/domain/query"
	"empreg/internal/domain/registry"
	"empreg/internal/export"
	"empreg/internal/transport/http/api"
	"empreg/internal/transport/http/middleware"
	"empreg/internal/transport/http/shared"
)

const multipartMemory = 8 << 20

type Handler struct {
	Store              *registry.Store
	MaxAttachmentBytes int64
	DefaultPageSize    int
}

func NewHandler(store *registry.Store, maxAttachmentBytes int64, defaultPageSize int) *Handler {
	return &Handler{Store: store, MaxAttachmentBytes: maxAttachmentBytes, DefaultPageSize: defaultPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListActive)
		r.Post("/", h.handleCreate)
		r.Get("/export.csv", h.handleActiveCSV)
		r.Get("/export.pdf", h.handleActivePDF)
		r.Get("/print", h.handleActivePrint)
		r.Route("/{recordID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Post("/archive", h.handleArchive)
			r.Get("/print", h.handleDetailPrint)
			r.Get("/attachments/{category}", h.handleAttachment)
		})
	})
	r.Route("/archive", func(r chi.Router) {
		r.Get("/", h.handleListArchived)
		r.Get("/export.csv", h.handleArchiveCSV)
		r.Get("/print", h.handleArchivePrint)
		r.Route("/{recordID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Post("/restore", h.handleRestore)
			r.Delete("/", h.handlePurge)
			r.Get("/print", h.handleDetailPrint)
		})
	})
}

type listResponse struct {
	Items      []registry.Record `json:"items"`
	TotalCount int               `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
}

func (h *Handler) handleListActive(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.Store.Active())
}

func (h *Handler) handleListArchived(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.Store.Archived())
}

func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, records []registry.Record) {
	spec := shared.ParseListSpec(r, h.DefaultPageSize)
	projection := query.Project(records, spec, registry.Today(time.Now()))
	api.Success(w, listResponse{
		Items:      projection.Page,
		TotalCount: projection.TotalCount,
		Page:       spec.PageNumber,
		PageSize:   spec.PageSize,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.parseRecordForm(w, r, nil)
	if !ok {
		return
	}

	created, err := h.Store.Create(draft)
	if err != nil {
		h.failStoreError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")
	existing, found := h.Store.Get(recordID)
	if !found {
		h.failNotFound(w, r)
		return
	}

	draft, ok := h.parseRecordForm(w, r, &existing)
	if !ok {
		return
	}

	updated, err := h.Store.Update(recordID, draft)
	if err != nil {
		h.failStoreError(w, r, err)
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, found := h.Store.Get(chi.URLParam(r, "recordID"))
	if !found {
		h.failNotFound(w, r)
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.Archive(chi.URLParam(r, "recordID"))
	if err != nil {
		h.failStoreError(w, r, err)
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.Restore(chi.URLParam(r, "recordID"))
	if err != nil {
		h.failStoreError(w, r, err)
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePurge(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Purge(chi.URLParam(r, "recordID")); err != nil {
		h.failStoreError(w, r, err)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAttachment(w http.ResponseWriter, r *http.Request) {
	rec, found := h.Store.Get(chi.URLParam(r, "recordID"))
	if !found {
		h.failNotFound(w, r)
		return
	}
	attachment := rec.AttachmentByCategory(chi.URLParam(r, "category"))
	if attachment == nil {
		api.Fail(w, http.StatusNotFound, "attachment_not_found", "no file stored under this category", middleware.GetRequestID(r.Context()))
		return
	}

	contentType := attachment.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", attachment.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(attachment.Data)
}

func (h *Handler) handleActiveCSV(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, "employees", export.ActiveListCSV(h.Store.Active()))
}

func (h *Handler) handleArchiveCSV(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, "employees_archive", export.ArchiveCSV(h.Store.Archived()))
}

func (h *Handler) handleActivePDF(w http.ResponseWriter, r *http.Request) {
	data, err := export.RosterPDF(h.Store.Active(), "Employee Roster")
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render roster", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName("employees", "pdf")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) handleActivePrint(w http.ResponseWriter, r *http.Request) {
	h.respondPrintList(w, r, h.Store.Active(), false)
}

func (h *Handler) handleArchivePrint(w http.ResponseWriter, r *http.Request) {
	h.respondPrintList(w, r, h.Store.Archived(), true)
}

func (h *Handler) respondPrintList(w http.ResponseWriter, r *http.Request, records []registry.Record, archive bool) {
	doc, err := export.RecordsHTML(records, archive)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "print_failed", "failed to render document", middleware.GetRequestID(r.Context()))
		return
	}
	writeHTML(w, doc)
}

func (h *Handler) handleDetailPrint(w http.ResponseWriter, r *http.Request) {
	rec, found := h.Store.Get(chi.URLParam(r, "recordID"))
	if !found {
		h.failNotFound(w, r)
		return
	}
	doc, err := export.RecordHTML(rec)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "print_failed", "failed to render document", middleware.GetRequestID(r.Context()))
		return
	}
	writeHTML(w, doc)
}

// parseRecordForm reads the multipart submission into a draft record. When
// existing is set, attachment slots with no new upload keep the stored file.
// On failure it writes the error response and reports ok=false.
func (h *Handler) parseRecordForm(w http.ResponseWriter, r *http.Request, existing *registry.Record) (registry.Record, bool) {
	requestID := middleware.GetRequestID(r.Context())

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body exceeds the allowed size", requestID)
			return registry.Record{}, false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_form", "expected a multipart form submission", requestID)
		return registry.Record{}, false
	}

	draft := registry.Record{
		EmployeeID:          shared.FieldTrim(r, "emp_id"),
		Nationality:         shared.FieldTrim(r, "nationality"),
		NameAr:              shared.FieldTrim(r, "name_ar"),
		NameEn:              shared.FieldTrim(r, "name_en"),
		MaritalStatus:       shared.FieldTrim(r, "marital_status"),
		DateOfBirth:         shared.FieldTrim(r, "dob"),
		Degree:              shared.FieldTrim(r, "degree"),
		Specialization:      shared.FieldTrim(r, "specialization"),
		Phone:               shared.FieldTrim(r, "phone"),
		Email:               shared.FieldTrim(r, "email"),
		PassportNumber:      shared.FieldTrim(r, "passport_no"),
		PassportExpiry:      shared.FieldTrim(r, "passport_expiry"),
		EmiratesID:          shared.FieldTrim(r, "emirates_id"),
		EmiratesExpiry:      shared.FieldTrim(r, "emirates_expiry"),
		GCCID:               shared.FieldTrim(r, "gcc_id"),
		GCCIDExpiry:         shared.FieldTrim(r, "gcc_id_expiry"),
		LicenseType:         shared.FieldTrim(r, "license_type"),
		LicenseExpiry:       shared.FieldTrim(r, "license_expiry"),
		EmergencyName:       shared.FieldTrim(r, "emergency_name"),
		EmergencyRelation:   shared.FieldTrim(r, "emergency_relation"),
		EmergencyPhone:      shared.FieldTrim(r, "emergency_phone"),
		DeclarationAccepted: acceptedValue(shared.FieldTrim(r, "declaration_accepted")),
	}

	slots := []struct {
		field  string
		target **registry.Attachment
		kept   *registry.Attachment
	}{
		{"profile_picture", &draft.ProfilePicture, existingAttachment(existing, registry.FileProfile)},
		{"education_certificate_file", &draft.EducationCertificateFile, existingAttachment(existing, registry.FileEducation)},
		{"passport_file", &draft.PassportFile, existingAttachment(existing, registry.FilePassport)},
		{"eid_file", &draft.EIDFile, existingAttachment(existing, registry.FileEID)},
		{"license_file", &draft.LicenseFile, existingAttachment(existing, registry.FileLicense)},
		{"gcc_id_file", &draft.GCCIDFile, existingAttachment(existing, registry.FileGCC)},
	}
	for _, slot := range slots {
		attachment, err := h.readAttachment(r, slot.field)
		if err != nil {
			if errors.Is(err, registry.ErrAttachmentTooLarge) {
				api.FailWithDetails(
					w,
					http.StatusRequestEntityTooLarge,
					"file_too_large",
					"uploaded file exceeds the allowed size",
					map[string]any{"field": slot.field, "maxBytes": h.MaxAttachmentBytes},
					requestID,
				)
				return registry.Record{}, false
			}
			api.Fail(w, http.StatusBadRequest, "invalid_form", "failed to read uploaded file "+slot.field, requestID)
			return registry.Record{}, false
		}
		if attachment == nil {
			attachment = slot.kept
		}
		*slot.target = attachment
	}

	if existing != nil {
		draft.SubmissionDate = existing.SubmissionDate
	}

	if err := registry.Validate(draft); err != nil {
		var verr *registry.ValidationError
		if errors.As(err, &verr) {
			shared.FailRecordValidation(w, requestID, verr)
			return registry.Record{}, false
		}
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
		return registry.Record{}, false
	}
	return draft, true
}

func (h *Handler) readAttachment(r *http.Request, field string) (*registry.Attachment, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if header.Size > h.MaxAttachmentBytes {
		return nil, registry.ErrAttachmentTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(file, h.MaxAttachmentBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.MaxAttachmentBytes {
		return nil, registry.ErrAttachmentTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &registry.Attachment{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func (h *Handler) failStoreError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	var verr *registry.ValidationError
	switch {
	case errors.As(err, &verr):
		shared.FailRecordValidation(w, requestID, verr)
	case errors.Is(err, registry.ErrRecordNotFound):
		api.Fail(w, http.StatusNotFound, "record_not_found", "no record with this id", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", requestID)
	}
}

func (h *Handler) failNotFound(w http.ResponseWriter, r *http.Request) {
	api.Fail(w, http.StatusNotFound, "record_not_found", "no record with this id", middleware.GetRequestID(r.Context()))
}

func existingAttachment(rec *registry.Record, category string) *registry.Attachment {
	if rec == nil {
		return nil
	}
	return rec.AttachmentByCategory(category)
}

func acceptedValue(value string) bool {
	switch value {
	case "true", "on", "1":
		return true
	}
	return false
}

func writeCSV(w http.ResponseWriter, name, payload string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(name, "csv")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(payload))
}

func writeHTML(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func exportFileName(name, ext string) string {
	return fmt.Sprintf("%s_%s.%s", name, time.Now().UTC().Format("2006-01-02"), ext)
}
