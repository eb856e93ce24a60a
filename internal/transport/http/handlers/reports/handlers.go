package reporthandler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"empreg/internal/domain/reports"
	"empreg/internal/export"
	"empreg/internal/transport/http/api"
	"empreg/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Get("/expired", h.handleExpired)
		r.Get("/expired/export.csv", h.handleExpiredCSV)
		r.Get("/nationalities", h.handleNationalities)
		r.Get("/education", h.handleEducation)
		r.Get("/files", h.handleFiles)
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot(time.Now())
	api.Success(w, snap.Summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExpired(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot(time.Now())
	api.Success(w, snap.Expired, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExpiredCSV(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot(time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	name := fmt.Sprintf("expired_documents_%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.ExpiredReportCSV(snap.Expired)))
}

func (h *Handler) handleNationalities(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot(time.Now())
	api.Success(w, snap.Nationalities, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEducation(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot(time.Now())
	api.Success(w, snap.Education, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleFiles(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot(time.Now())
	api.Success(w, snap.Files, middleware.GetRequestID(r.Context()))
}
