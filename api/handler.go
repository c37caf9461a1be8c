// Package api - HTTP handlers for freight quoting
// Handlers coerce JSON into typed engine requests and serialize results.
// They contain NO pricing logic; everything is delegated to core packages.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dung89nm/ghn-baogia/core/extract"
	"github.com/dung89nm/ghn-baogia/core/output"
	"github.com/dung89nm/ghn-baogia/core/pricing"
	"github.com/dung89nm/ghn-baogia/internal/errors"
	"github.com/dung89nm/ghn-baogia/internal/logging"
)

// Handler handles quoting requests
type Handler struct {
	engine   *pricing.Engine
	defaults pricing.Defaults
	renderer output.Renderer
}

// NewHandler creates a handler over an engine.
func NewHandler(engine *pricing.Engine, defaults pricing.Defaults) *Handler {
	return &Handler{
		engine:   engine,
		defaults: defaults,
		renderer: output.Renderer{},
	}
}

// HandleQuote handles POST /quote
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID()
	start := time.Now()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, requestID, &ErrorBody{Code: "INVALID_JSON", Message: err.Error()}, http.StatusBadRequest)
		return
	}

	shipment, errBody := h.coerce(&req)
	if errBody != nil {
		h.writeError(w, requestID, errBody, http.StatusBadRequest)
		return
	}

	breakdown, err := h.engine.Quote(shipment)
	if err != nil {
		h.writeDomainError(w, requestID, err)
		return
	}

	logging.Debug("quote computed",
		zap.String("request_id", requestID),
		zap.Float64("distance_km", shipment.DistanceKm),
		zap.Float64("chargeable_kg", breakdown.ChargeableWeightKg))

	h.writeJSON(w, &QuoteResponse{
		RequestID:     requestID,
		Timestamp:     time.Now().UTC(),
		Shipment:      shipment,
		Breakdown:     breakdown,
		TariffVersion: h.engine.Table().Version(),
		DurationMs:    time.Since(start).Milliseconds(),
	}, http.StatusOK)
}

// HandleParse handles POST /parse
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID()

	req, errBody := readParseRequest(r)
	if errBody != nil {
		h.writeError(w, requestID, errBody, http.StatusBadRequest)
		return
	}

	h.writeJSON(w, &ParseResponse{
		RequestID: requestID,
		Parsed:    extract.Extract(req.Text),
	}, http.StatusOK)
}

// HandleQuery handles POST /query: extract, then quote when the query
// carried enough fields. Missing distance or weight is not an HTTP error;
// the response just has no quote and a prompt message, so the caller can
// ask for more input.
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID()
	start := time.Now()

	req, errBody := readParseRequest(r)
	if errBody != nil {
		h.writeError(w, requestID, errBody, http.StatusBadRequest)
		return
	}

	parsed := extract.Extract(req.Text)
	resp := &QueryResponse{
		RequestID:     requestID,
		Parsed:        parsed,
		TariffVersion: h.engine.Table().Version(),
	}

	shipment, breakdown, err := h.engine.QuoteFromParsed(parsed, h.defaults)
	switch {
	case err == nil:
		resp.Shipment = &shipment
		resp.Quote = breakdown
		resp.Reply = h.renderer.RenderString(shipment, breakdown)
	case errors.IsType(err, errors.TypeValidation):
		resp.Message = err.(*errors.Error).Message
		logging.Debug("query incomplete",
			zap.String("request_id", requestID),
			zap.Float64("confidence", parsed.Confidence),
			zap.String("missing", err.(*errors.Error).Field))
	default:
		h.writeDomainError(w, requestID, err)
		return
	}

	resp.DurationMs = time.Since(start).Milliseconds()
	h.writeJSON(w, resp, http.StatusOK)
}

// coerce turns an API quote request into an engine request, resolving
// free-text locations to zones. It reports missing required fields.
func (h *Handler) coerce(req *QuoteRequest) (pricing.Request, *ErrorBody) {
	if req.DistanceKm == nil {
		return pricing.Request{}, &ErrorBody{Code: "VALIDATION_ERROR", Message: "distance_km is required", Field: "distance_km"}
	}
	if req.WeightKg == nil {
		return pricing.Request{}, &ErrorBody{Code: "VALIDATION_ERROR", Message: "weight_kg is required", Field: "weight_kg"}
	}

	table := h.engine.Table()
	pickupZone := req.PickupZone
	if pickupZone == "" {
		pickupZone = table.ResolveZone(req.PickupLocation)
	}
	deliveryZone := req.DeliveryZone
	if deliveryZone == "" {
		deliveryZone = table.ResolveZone(req.DeliveryLocation)
	}

	shipment := pricing.Request{
		DistanceKm:    *req.DistanceKm,
		WeightKg:      *req.WeightKg,
		Quantity:      req.Quantity,
		PickupZone:    pickupZone,
		DeliveryZone:  deliveryZone,
		DeliveryPoint: req.DeliveryPoint,
		GoodsType:     req.GoodsType,
		VehicleType:   req.VehicleType,
		ProposedCoef:  req.ProposedCoef,
	}
	if req.Dims != nil {
		shipment.Dims = &pricing.Dims{
			LengthCm: req.Dims.LengthCm,
			WidthCm:  req.Dims.WidthCm,
			HeightCm: req.Dims.HeightCm,
		}
	}
	return shipment, nil
}

func readParseRequest(r *http.Request) (*ParseRequest, *ErrorBody) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrorBody{Code: "INVALID_JSON", Message: err.Error()}
	}
	if req.Text == "" {
		return nil, &ErrorBody{Code: "VALIDATION_ERROR", Message: "text is required", Field: "text"}
	}
	return &req, nil
}

// writeDomainError maps engine errors onto HTTP statuses: validation
// errors are the caller's fault, configuration errors are ours.
func (h *Handler) writeDomainError(w http.ResponseWriter, requestID string, err error) {
	body := &ErrorBody{Code: string(errors.TypeInternal), Message: err.Error()}
	status := http.StatusInternalServerError

	if e, ok := err.(*errors.Error); ok {
		body.Code = string(e.Type)
		body.Message = e.Message
		body.Field = e.Field
		if e.Type == errors.TypeValidation {
			status = http.StatusBadRequest
		}
	}

	if status >= 500 {
		logging.Error("quote failed", zap.String("request_id", requestID), zap.Error(err))
	}
	h.writeError(w, requestID, body, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, requestID string, body *ErrorBody, status int) {
	h.writeJSON(w, &ErrorResponse{RequestID: requestID, Error: *body}, status)
}

func newRequestID() string {
	return uuid.NewString()
}
