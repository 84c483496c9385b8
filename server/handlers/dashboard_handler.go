package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"weather-dashboard/config"
	"weather-dashboard/models"
	"weather-dashboard/server/middleware"
	"weather-dashboard/util"
	"weather-dashboard/weather"
)

const CITY_QUERY_ARG = "city"

var validate = validator.New()

// locationQuery holds the location a user asked for.
type locationQuery struct {
	City string `validate:"required,max=100"`
}

// DashboardLookup produces the dashboard data for one location.
type DashboardLookup interface {
	Lookup(ctx context.Context, location string) (*models.Dashboard, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type DashboardHandler struct {
	lookup          DashboardLookup
	display         config.DisplayConfig
	defaultLocation string
}

func NewDashboardHandler(lookup DashboardLookup, display config.DisplayConfig, defaultLocation string) *DashboardHandler {
	return &DashboardHandler{
		lookup:          lookup,
		display:         display,
		defaultLocation: defaultLocation,
	}
}

// GetDashboard renders the full dashboard page for ?city=.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	query, err := h.parseQuery(r)
	page := dashboardPage{
		Display:    h.display,
		EChartsURL: config.ECHARTS_JS_URL,
		Location:   query.City,
	}
	status := http.StatusOK

	if err != nil {
		status = http.StatusBadRequest
		page.Error = invalidLocationMessage()
	} else if dashboard, err := h.lookup.Lookup(r.Context(), query.City); err != nil {
		h.logFailure(r, query.City, err)
		status = statusFor(err)
		page.Error = messageFor(err)
	} else {
		page.Dashboard = dashboard
		page.Charts = util.RenderChartSnippets(dashboard, h.display)
	}

	// render fully before writing so a template failure can still send a 500
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		log.Printf("[DashboardHandler] %s Error rendering dashboard page: %v", middleware.RequestIDFrom(r.Context()), err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// GetCharts renders only the three charts as a standalone page for ?city=.
func (h *DashboardHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	query, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, invalidLocationMessage(), http.StatusBadRequest)
		return
	}

	dashboard, err := h.lookup.Lookup(r.Context(), query.City)
	if err != nil {
		h.logFailure(r, query.City, err)
		http.Error(w, messageFor(err), statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := util.RenderDashboardCharts(&buf, dashboard, h.display); err != nil {
		log.Printf("[DashboardHandler] %s Error rendering charts: %v", middleware.RequestIDFrom(r.Context()), err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetWeather returns the dashboard data for ?city= as JSON.
func (h *DashboardHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	query, err := h.parseQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalidLocationMessage()})
		return
	}

	dashboard, err := h.lookup.Lookup(r.Context(), query.City)
	if err != nil {
		h.logFailure(r, query.City, err)
		writeJSON(w, statusFor(err), errorResponse{Error: messageFor(err)})
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

// Ping reports that the server is up.
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
}

// parseQuery trims ?city= and falls back to the default location when blank.
func (h *DashboardHandler) parseQuery(r *http.Request) (locationQuery, error) {
	q := locationQuery{City: strings.TrimSpace(r.URL.Query().Get(CITY_QUERY_ARG))}
	if q.City == "" {
		q.City = h.defaultLocation
	}

	if err := validate.Struct(q); err != nil {
		log.Printf("[DashboardHandler] %s Invalid location query: %v", middleware.RequestIDFrom(r.Context()), err)
		return q, err
	}
	return q, nil
}

func (h *DashboardHandler) logFailure(r *http.Request, location string, err error) {
	log.Printf("[DashboardHandler] %s Lookup for %q failed: %v", middleware.RequestIDFrom(r.Context()), location, err)
}

func invalidLocationMessage() string {
	return fmt.Sprintf("Please enter a location of at most %d characters.", config.MAX_LOCATION_LENGTH)
}

// statusFor maps a lookup error to the HTTP status returned to the client.
func statusFor(err error) int {
	switch {
	case weather.IsTimeout(err):
		return http.StatusGatewayTimeout
	case weather.IsLookupFailure(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// messageFor keeps provider and payload details out of responses.
func messageFor(err error) string {
	if weather.IsLookupFailure(err) {
		return weather.LookupFailedMessage
	}
	return "Internal server error"
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("[DashboardHandler] Error encoding response:", err)
	}
}
