package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"weather-dashboard/server/middleware"
)

// DashboardRoutes is the handler set the router dispatches to.
type DashboardRoutes interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetCharts(w http.ResponseWriter, r *http.Request)
	GetWeather(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dashboardHandler DashboardRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	dashboardHandler DashboardRoutes,
	router *mux.Router) *Router {
	return &Router{
		dashboardHandler: dashboardHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(middleware.RequestID)

	// all lookups expect ?city={location}, blank means the default location
	r.router.HandleFunc("/", r.dashboardHandler.GetDashboard).Methods("GET")
	r.router.HandleFunc("/charts", r.dashboardHandler.GetCharts).Methods("GET")
	r.router.HandleFunc("/api/v1/weather", r.dashboardHandler.GetWeather).Methods("GET")

	r.router.HandleFunc("/ping", r.dashboardHandler.Ping).Methods("GET")
}
