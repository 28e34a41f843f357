package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"route-cost-service/internal/api/dto"
	"route-cost-service/internal/catalog"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/obs"
	"route-cost-service/internal/ports"
	"route-cost-service/internal/services"
)

type CalculateHandler struct {
	Calculator *services.Calculator
	Vehicles   *catalog.VehiclePark
	Audit      ports.QueryLog
}

// Calculate runs the full pricing pipeline for one trip request and returns
// the calculation inside the standard envelope.
func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeEnvelope(w, r, http.StatusMethodNotAllowed, "ERROR", "method not allowed", nil)
		return
	}

	var req dto.CalcRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeEnvelope(w, r, http.StatusBadRequest, "ERROR", "Invalid input", nil)
		return
	}

	phone, err := req.Validate()
	if err != nil {
		writeValidationFailure(w, r, err)
		return
	}

	vehicle, err := h.Vehicles.ByID(req.TransportID)
	if err != nil {
		writeEnvelope(w, r, http.StatusBadRequest, "ERROR", "Input validation error", nil)
		return
	}

	result, err := h.Calculator.Process(r.Context(), services.Request{
		Origin:      req.From.Place(),
		Destination: req.To.Place(),
		Vehicle:     vehicle,
		Locale:      domain.Locale(strings.TrimSpace(req.Locale)),
	})
	if err != nil {
		if errors.Is(err, services.ErrZeroDistanceResults) {
			writeEnvelope(w, r, http.StatusNotFound, "ZeroDistanceResultsError", err.Error(), nil)
			return
		}
		log.Printf("calculate failed: %v", err)
		writeEnvelope(w, r, http.StatusInternalServerError, "ERROR", "Internal server error", nil)
		return
	}

	h.audit(r.Context(), result, phone, &req)

	writeEnvelope(w, r, http.StatusOK, "WORKLOAD", "", result)
}

// audit persists the request/response pair. Failures never affect the caller.
func (h *CalculateHandler) audit(ctx context.Context, result *domain.CalculationResult, phone string, req *dto.CalcRequest) {
	if h.Audit == nil {
		return
	}
	defer obs.Time(ctx, "calculate.audit")(nil)

	reqJSON, err := json.Marshal(req)
	if err != nil {
		log.Printf("audit marshal request failed id=%s err=%v", result.CalculationID, err)
		return
	}
	respJSON, err := json.Marshal(result)
	if err != nil {
		log.Printf("audit marshal result failed id=%s err=%v", result.CalculationID, err)
		return
	}

	if err := h.Audit.Record(ctx, result.CalculationID, phone, reqJSON, respJSON); err != nil {
		log.Printf("audit record failed id=%s err=%v", result.CalculationID, err)
	}
}

// writeValidationFailure maps input errors to the original status taxonomy:
// a disallowed operator prefix is its own 422, everything else is a 400.
func writeValidationFailure(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, dto.ErrWrongNumber) {
		writeEnvelope(w, r, http.StatusUnprocessableEntity, "WrongNumberError", err.Error(), nil)
		return
	}
	writeEnvelope(w, r, http.StatusBadRequest, "ERROR", "Input validation error", nil)
}
