package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"route-cost-service/internal/api/dto"
	"route-cost-service/internal/services"
)

type SamplesHandler struct {
	Recorder *services.SampleRecorder
}

// Submit records an operator price correction for a past calculation.
func (h *SamplesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeEnvelope(w, r, http.StatusMethodNotAllowed, "ERROR", "method not allowed", nil)
		return
	}

	var req dto.SampleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeEnvelope(w, r, http.StatusBadRequest, "ERROR", "Invalid input", nil)
		return
	}
	if err := req.Validate(); err != nil {
		writeEnvelope(w, r, http.StatusBadRequest, "ERROR", "Input validation error", nil)
		return
	}

	if err := h.Recorder.AddSample(r.Context(), req.CalculationID, req.Price); err != nil {
		log.Printf("sample intake failed id=%s err=%v", req.CalculationID, err)
		writeEnvelope(w, r, http.StatusNotFound, "ERROR", "Unknown calculation", nil)
		return
	}

	writeEnvelope(w, r, http.StatusOK, "SAMPLE_RECORDED", "", nil)
}
