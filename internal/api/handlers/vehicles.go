package handlers

import (
	"net/http"

	"route-cost-service/internal/catalog"
)

type VehiclesHandler struct {
	Vehicles *catalog.VehiclePark
}

// List returns the vehicle catalog for the frontend picker. The response is
// the bare array, not the envelope, which is what the frontend consumes.
func (h *VehiclesHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, h.Vehicles.All())
}
