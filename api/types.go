// Package api - API types for freight quoting
// These types define the contracts for the /quote, /parse and /query
// endpoints. The API is stateless, idempotent, and deterministic.
package api

import (
	"time"

	"github.com/dung89nm/ghn-baogia/core/extract"
	"github.com/dung89nm/ghn-baogia/core/pricing"
)

// QuoteRequest is the input to POST /quote. Numeric fields arrive typed;
// the caller has already coerced raw strings. Distance and weight are
// required, which the pointer types make detectable.
type QuoteRequest struct {
	DistanceKm *float64 `json:"distance_km"`
	WeightKg   *float64 `json:"weight_kg"`

	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity,omitempty"`

	Dims *DimsPayload `json:"dims,omitempty"`

	// PickupZone / DeliveryZone name tariff zones directly. When empty,
	// PickupLocation / DeliveryLocation free text is resolved through
	// the table's zone rules instead.
	PickupZone       string `json:"pickup_zone,omitempty"`
	DeliveryZone     string `json:"delivery_zone,omitempty"`
	PickupLocation   string `json:"pickup_location,omitempty"`
	DeliveryLocation string `json:"delivery_location,omitempty"`

	DeliveryPoint string `json:"delivery_point,omitempty"`

	GoodsType    string  `json:"goods_type,omitempty"`
	VehicleType  string  `json:"vehicle_type,omitempty"`
	ProposedCoef float64 `json:"proposed_coef,omitempty"`
}

// DimsPayload carries volumetric dimensions, all three required together.
type DimsPayload struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// QuoteResponse is the output of POST /quote.
type QuoteResponse struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`

	// Shipment echoes the request the engine actually quoted,
	// zones resolved.
	Shipment pricing.Request `json:"shipment"`

	Breakdown *pricing.Breakdown `json:"breakdown"`

	TariffVersion string `json:"tariff_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// ParseRequest is the input to POST /parse and POST /query.
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseResponse is the output of POST /parse.
type ParseResponse struct {
	RequestID string         `json:"request_id"`
	Parsed    extract.Parsed `json:"parsed"`
}

// QueryResponse is the output of POST /query: the parsed fields plus a
// quote when enough of them were found. When Quote is null, Message says
// what is missing so the conversational caller can prompt for it.
type QueryResponse struct {
	RequestID string         `json:"request_id"`
	Parsed    extract.Parsed `json:"parsed"`

	Shipment *pricing.Request   `json:"shipment,omitempty"`
	Quote    *pricing.Breakdown `json:"quote,omitempty"`

	// Reply is the rendered human-readable quote text.
	Reply string `json:"reply,omitempty"`

	// Message explains why no quote was produced.
	Message string `json:"message,omitempty"`

	TariffVersion string `json:"tariff_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// ErrorBody is the error payload shared by all endpoints.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse wraps an ErrorBody.
type ErrorResponse struct {
	RequestID string    `json:"request_id,omitempty"`
	Error     ErrorBody `json:"error"`
}
