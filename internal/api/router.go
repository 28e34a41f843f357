package api

import (
	"net/http"

	"route-cost-service/internal/api/handlers"
	"route-cost-service/internal/catalog"
	"route-cost-service/internal/ports"
	"route-cost-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	calculator *services.Calculator,
	recorder *services.SampleRecorder,
	vehicles *catalog.VehiclePark,
	audit ports.QueryLog,
) http.Handler {
	mux := http.NewServeMux()

	calcHandler := &handlers.CalculateHandler{
		Calculator: calculator,
		Vehicles:   vehicles,
		Audit:      audit,
	}
	vehHandler := &handlers.VehiclesHandler{Vehicles: vehicles}
	samplesHandler := &handlers.SamplesHandler{Recorder: recorder}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/calculate/", calcHandler.Calculate)
	mux.HandleFunc("/get-available-vehicles/", vehHandler.List)
	mux.HandleFunc("/samples/", samplesHandler.Submit)

	return corsMiddleware(loggingMiddleware(mux))
}
