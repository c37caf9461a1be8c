package pricing

import (
	"github.com/shopspring/decimal"
)

// Coefficients are the multipliers that were applied to a quote.
type Coefficients struct {
	Distance float64 `json:"distance"`
	Zone     float64 `json:"zone"`
	Goods    float64 `json:"goods"`
	Vehicle  float64 `json:"vehicle"`
	Size     float64 `json:"size"`
	Proposed float64 `json:"proposed"`
}

// Breakdown is the complete result of a quote computation.
// Monetary fields are rounded to whole currency units (round-half-to-even).
type Breakdown struct {
	ChargeableWeightKg float64 `json:"chargeable_weight_kg"`
	VolumetricWeightKg float64 `json:"volumetric_weight_kg"`
	ActualWeightKg     float64 `json:"actual_weight_kg"`

	Coefficients Coefficients `json:"coefficients"`

	// BaseFreight is chargeable weight x coefficients x per-kg base rate.
	BaseFreight decimal.Decimal `json:"base_freight"`

	// DeliveryFee is the named-destination surcharge, zero for ordinary points.
	DeliveryFee decimal.Decimal `json:"delivery_fee"`

	// TotalCost is base freight plus delivery fee.
	TotalCost decimal.Decimal `json:"total_cost"`

	// SharedVehicleCost is the consolidated-shipment price (10% off base freight).
	SharedVehicleCost decimal.Decimal `json:"shared_vehicle_cost"`

	// FullVehicleCost is the dedicated vehicle charter price, computed on
	// the vehicle coefficient instead of the size coefficient.
	FullVehicleCost decimal.Decimal `json:"full_vehicle_cost"`

	// CustomerPrice is the quoted price. Currently equal to TotalCost;
	// kept separate so a markup can be introduced without touching the
	// freight formula.
	CustomerPrice decimal.Decimal `json:"customer_price"`
}
