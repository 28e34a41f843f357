package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"route-cost-service/internal/api/dto"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeEnvelope renders the standardized response body the frontend expects
// on every endpoint: an application-level status, optional details and an
// optional workload payload.
func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, jsonStatus, details string, workload any) {
	writeJSON(w, r, status, dto.Envelope{
		Status:   jsonStatus,
		Details:  details,
		Workload: workload,
	})
}
