package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fleetops/fleet-dashboard/internal/fleet"
	"github.com/fleetops/fleet-dashboard/internal/logging"
)

const exportDateLayout = "2006-01-02"

type exportHandler struct {
	service *fleet.Service
}

func NewExportHandler(r *chi.Mux, service *fleet.Service) {
	handler := &exportHandler{
		service: service,
	}

	r.Route("/export", func(r chi.Router) {
		r.Get("/", HandlerFunc(handler.GetProgramTripExport).ServeHTTP)
	})
}

// GetProgramTripExport streams the program-trip subset for [start, end] as a
// CSV download. The end date is inclusive through end of day.
func (h *exportHandler) GetProgramTripExport(w http.ResponseWriter, r *http.Request) *HandlerError {
	ctx := r.Context()
	now := time.Now()

	// Range endpoints live in the same local frame as the feed timestamps.
	start, err := time.ParseInLocation(exportDateLayout, r.URL.Query().Get("start"), time.Local)
	if err != nil {
		return NewHandlerError("start must be a YYYY-MM-DD date", http.StatusBadRequest)
	}
	end, err := time.ParseInLocation(exportDateLayout, r.URL.Query().Get("end"), time.Local)
	if err != nil {
		return NewHandlerError("end must be a YYYY-MM-DD date", http.StatusBadRequest)
	}
	if end.Before(start) {
		return NewHandlerError("end must not be before start", http.StatusBadRequest)
	}

	trips := h.service.ProgramTripExport(ctx, now, start, end)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fleet.ExportFilename(start, end)))
	if err := fleet.WriteTripsCSV(w, trips); err != nil {
		// Headers are already out; all we can do is log the broken stream.
		logging.GetLogger().Error("writing program trip export: %v", err)
	}
	return nil
}
