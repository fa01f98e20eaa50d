package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/fleetops/fleet-dashboard/internal/fleet"
	"github.com/fleetops/fleet-dashboard/internal/models"
)

type dashboardHandler struct {
	service *fleet.Service
}

func NewDashboardHandler(r *chi.Mux, service *fleet.Service) {
	handler := &dashboardHandler{
		service: service,
	}

	r.Route("/status", func(r chi.Router) {
		r.Get("/", HandlerFunc(handler.GetCurrentStatus).ServeHTTP)
	})
	r.Route("/checkouts", func(r chi.Router) {
		r.Get("/", HandlerFunc(handler.GetCheckoutHistory).ServeHTTP)
	})
	r.Route("/vehicles/{vehicle}/oil-status", func(r chi.Router) {
		r.Get("/", HandlerFunc(handler.GetOilStatus).ServeHTTP)
	})
	r.Post("/refresh", HandlerFunc(handler.PostRefresh).ServeHTTP)
}

// GetCurrentStatus returns one status card per vehicle plus feed health so
// the dashboard can surface stale or missing data.
func (h *dashboardHandler) GetCurrentStatus(w http.ResponseWriter, r *http.Request) *HandlerError {
	ctx := r.Context()
	now := time.Now()

	statuses := h.service.CurrentStatus(ctx, now)
	fetchedAt, feedErrors := h.service.FeedHealth(ctx, now)

	data := make(map[string]interface{})
	data["data"] = statuses
	data["fetched_at"] = fetchedAt
	data["feed_errors"] = feedErrors
	if len(statuses) == 0 {
		data["message"] = "no checkout data found"
	} else {
		data["message"] = "received current vehicle status"
	}
	render.JSON(w, r, data)
	return nil
}

// GetCheckoutHistory returns the filtered checkout table and its summary
// metrics. An empty result is a normal response, never an error.
func (h *dashboardHandler) GetCheckoutHistory(w http.ResponseWriter, r *http.Request) *HandlerError {
	ctx := r.Context()
	now := time.Now()

	filters, handlerErr := parseCheckoutFilters(r, now)
	if handlerErr != nil {
		return handlerErr
	}

	result := h.service.CheckoutHistory(ctx, now, *filters)

	data := make(map[string]interface{})
	data["data"] = result
	if len(result.Records) == 0 {
		data["message"] = "no checkout data found"
	} else {
		data["message"] = "received checkout history"
	}
	render.JSON(w, r, data)
	return nil
}

// GetOilStatus computes the oil-change status for one vehicle. An explicit
// ?mileage= overrides the mileage inferred from the checkout table.
func (h *dashboardHandler) GetOilStatus(w http.ResponseWriter, r *http.Request) *HandlerError {
	ctx := r.Context()
	now := time.Now()

	vehicle := chi.URLParam(r, "vehicle")
	if vehicle == "" {
		return NewHandlerError("vehicle is required", http.StatusBadRequest)
	}

	mileage, handlerErr := parseMileageParam(r)
	if handlerErr != nil {
		return handlerErr
	}

	status := h.service.OilStatus(ctx, now, vehicle, mileage)

	data := make(map[string]interface{})
	data["data"] = status
	data["message"] = "received oil change status"
	render.JSON(w, r, data)
	return nil
}

// PostRefresh drops the snapshot cache so the next view refetches the feeds.
func (h *dashboardHandler) PostRefresh(w http.ResponseWriter, r *http.Request) *HandlerError {
	h.service.Refresh()

	data := make(map[string]interface{})
	data["message"] = "cache invalidated, next request will refetch"
	render.JSON(w, r, data)
	return nil
}

func parseCheckoutFilters(r *http.Request, now time.Time) (*models.CheckoutFilters, *HandlerError) {
	filters := &models.CheckoutFilters{}
	query := r.URL.Query()

	if vehicle := query.Get("vehicle"); vehicle != "" {
		filters.Vehicle = &vehicle
	}
	if staff := query.Get("staff"); staff != "" {
		filters.Staff = &staff
	}

	switch query.Get("window") {
	case "", "all":
	case "7d":
		since := now.AddDate(0, 0, -7)
		filters.Since = &since
	case "30d":
		since := now.AddDate(0, 0, -30)
		filters.Since = &since
	default:
		return nil, NewHandlerError("window must be one of 7d, 30d, all", http.StatusBadRequest)
	}

	switch query.Get("program") {
	case "", "all":
	case "program":
		yes := true
		filters.ProgramTrip = &yes
	case "nonprogram":
		no := false
		filters.ProgramTrip = &no
	default:
		return nil, NewHandlerError("program must be one of program, nonprogram, all", http.StatusBadRequest)
	}

	return filters, nil
}

func parseMileageParam(r *http.Request) (*float64, *HandlerError) {
	raw := r.URL.Query().Get("mileage")
	if raw == "" {
		return nil, nil
	}
	mileage, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, NewHandlerError("mileage must be a number", http.StatusBadRequest)
	}
	return &mileage, nil
}
