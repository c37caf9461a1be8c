// Package pricing computes freight price quotes against an injected
// tariff table. The engine is stateless and pure: identical requests
// produce identical breakdowns, and it is safe for concurrent use.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/dung89nm/ghn-baogia/core/tariff"
	"github.com/dung89nm/ghn-baogia/internal/errors"
)

// sharedVehicleDiscount is the flat discount for consolidated shipments.
var sharedVehicleDiscount = decimal.NewFromFloat(0.9)

// Dims are the volumetric dimensions of a single package in centimeters.
// A request either carries all three or none.
type Dims struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// Max returns the largest single dimension.
func (d Dims) Max() float64 {
	return math.Max(d.LengthCm, math.Max(d.WidthCm, d.HeightCm))
}

// Request describes one shipment to quote. Callers coerce raw string or
// JSON inputs into typed fields before building a Request; the engine
// validates domain ranges only.
type Request struct {
	DistanceKm float64 `json:"distance_km"`
	WeightKg   float64 `json:"weight_kg"`

	// Quantity is the package count. Zero means unset and defaults to 1.
	Quantity int `json:"quantity"`

	// Dims is nil when the shipment has no volumetric dimensions.
	Dims *Dims `json:"dims,omitempty"`

	PickupZone    string `json:"pickup_zone"`
	DeliveryZone  string `json:"delivery_zone"`
	DeliveryPoint string `json:"delivery_point"`

	GoodsType   string `json:"goods_type"`
	VehicleType string `json:"vehicle_type"`

	// ProposedCoef is a negotiated multiplier. Zero means unset and
	// defaults to 1.0.
	ProposedCoef float64 `json:"proposed_coef"`
}

// Engine computes quotes against one immutable tariff table.
type Engine struct {
	table *tariff.Table
}

// New creates an engine over the given tariff table.
func New(table *tariff.Table) *Engine {
	return &Engine{table: table}
}

// Table returns the engine's tariff table.
func (e *Engine) Table() *tariff.Table {
	return e.table
}

// Quote computes the full price breakdown for a shipment.
// Malformed requests return a validation error; a structurally broken
// tariff table returns a configuration error. Quote never panics.
func (e *Engine) Quote(req Request) (*Breakdown, error) {
	req = normalize(req)
	if err := validate(req); err != nil {
		return nil, err
	}

	t := e.table
	qty := float64(req.Quantity)

	// Volumetric weight: (L x W x H) / divisor, zero without dimensions.
	var volWeight, maxDim float64
	if req.Dims != nil {
		volWeight = (req.Dims.LengthCm * req.Dims.WidthCm * req.Dims.HeightCm) / t.VolumetricDivisor()
		maxDim = req.Dims.Max()
	}
	volTotal := volWeight * qty
	actualTotal := req.WeightKg * qty

	// Chargeable weight is the larger of actual and volumetric totals,
	// with a floor of 1 kg so the rate formula stays non-degenerate.
	chargeable := actualTotal
	if volTotal > 0 && volTotal > actualTotal {
		chargeable = volTotal
	}
	if chargeable <= 0 {
		chargeable = 1
	}

	// The higher of origin and destination zone surcharge applies.
	pickupCoef := t.ZoneCoefficient(req.PickupZone)
	deliveryCoef := t.ZoneCoefficient(req.DeliveryZone)
	zoneCoef := math.Max(pickupCoef, deliveryCoef)

	coefs := Coefficients{
		Distance: t.DistanceCoefficient(req.DistanceKm),
		Zone:     zoneCoef,
		Goods:    t.GoodsCoefficient(req.GoodsType),
		Vehicle:  t.VehicleCoefficient(req.VehicleType),
		Size:     t.SizeCoefficient(maxDim),
		Proposed: req.ProposedCoef,
	}

	weight := decimal.NewFromFloat(chargeable)
	shipmentCoef := weight.
		Mul(decimal.NewFromFloat(coefs.Distance)).
		Mul(decimal.NewFromFloat(coefs.Zone)).
		Mul(decimal.NewFromFloat(coefs.Goods)).
		Mul(decimal.NewFromFloat(coefs.Proposed))

	baseFreight := shipmentCoef.Mul(decimal.NewFromFloat(coefs.Size)).Mul(t.BaseRate(chargeable))
	deliveryFee := t.DeliveryFee(req.DeliveryPoint)
	total := baseFreight.Add(deliveryFee)
	shared := baseFreight.Mul(sharedVehicleDiscount)
	fullVehicle := shipmentCoef.Mul(decimal.NewFromFloat(coefs.Vehicle)).Mul(t.FullVehicleRate())

	return &Breakdown{
		ChargeableWeightKg: chargeable,
		VolumetricWeightKg: volTotal,
		ActualWeightKg:     actualTotal,
		Coefficients:       coefs,
		BaseFreight:        round(baseFreight),
		DeliveryFee:        round(deliveryFee),
		TotalCost:          round(total),
		SharedVehicleCost:  round(shared),
		FullVehicleCost:    round(fullVehicle),
		CustomerPrice:      round(total),
	}, nil
}

// round applies the monetary rounding convention: round-half-to-even to
// whole currency units.
func round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(0)
}

func normalize(req Request) Request {
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.ProposedCoef == 0 {
		req.ProposedCoef = 1.0
	}
	return req
}

func validate(req Request) error {
	if err := checkNumber("distance_km", req.DistanceKm); err != nil {
		return err
	}
	if err := checkNumber("weight_kg", req.WeightKg); err != nil {
		return err
	}
	if req.Quantity < 1 {
		return errors.Validationf("quantity", "must be at least 1, got %d", req.Quantity)
	}
	if req.ProposedCoef < 0 || math.IsNaN(req.ProposedCoef) || math.IsInf(req.ProposedCoef, 0) {
		return errors.Validationf("proposed_coef", "must be a positive number, got %v", req.ProposedCoef)
	}
	if req.Dims != nil {
		if err := checkDimension("dims.length_cm", req.Dims.LengthCm); err != nil {
			return err
		}
		if err := checkDimension("dims.width_cm", req.Dims.WidthCm); err != nil {
			return err
		}
		if err := checkDimension("dims.height_cm", req.Dims.HeightCm); err != nil {
			return err
		}
	}
	return nil
}

func checkNumber(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Validationf(field, "must be a finite number, got %v", v)
	}
	if v < 0 {
		return errors.Validationf(field, "must not be negative, got %v", v)
	}
	return nil
}

func checkDimension(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errors.Validationf(field, "must be a positive number, got %v", v)
	}
	return nil
}
