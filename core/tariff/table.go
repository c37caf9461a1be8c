// Package tariff holds the static coefficient tables the pricing engine
// computes against. A Table is immutable once constructed and safe for
// concurrent use; alternate tables are injected through New, never set
// globally.
package tariff

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dung89nm/ghn-baogia/internal/errors"
)

// Band is one step of a piecewise coefficient curve. The coefficient
// applies to every value from Threshold up to the next band's threshold.
type Band struct {
	Threshold   float64 `json:"threshold"`
	Coefficient float64 `json:"coefficient"`
}

// RateBracket is one step of the per-kg base-rate curve over chargeable
// weight. Heavier brackets carry lower rates.
type RateBracket struct {
	ThresholdKg float64         `json:"threshold_kg"`
	Rate        decimal.Decimal `json:"rate"`
}

// ZoneRule maps a known place-name substring to a zone name. Rules are
// ordered; the first matching rule wins.
type ZoneRule struct {
	Match string `json:"match"`
	Zone  string `json:"zone"`
}

// Surcharge is the fixed named-destination delivery surcharge.
// The fee is Base * Rate and applies only when the delivery-point text
// equals Point, case-insensitively, surrounding whitespace ignored.
type Surcharge struct {
	Point string          `json:"point"`
	Base  decimal.Decimal `json:"base"`
	Rate  decimal.Decimal `json:"rate"`
}

// Data is the raw material for a Table. Band slices need not be sorted;
// New sorts and validates them.
type Data struct {
	Version string

	DistanceBands  []Band
	SizeBands      []Band
	WeightBrackets []RateBracket

	ZoneCoefficients    map[string]float64
	GoodsCoefficients   map[string]float64
	VehicleCoefficients map[string]float64

	// ZoneRules resolve free-text locations to zone names, in order.
	ZoneRules   []ZoneRule
	DefaultZone string

	FullVehicleRate   decimal.Decimal
	DeliverySurcharge Surcharge
	VolumetricDivisor float64
}

// Table is the immutable tariff table.
type Table struct {
	version string

	distanceBands  []Band
	sizeBands      []Band
	weightBrackets []RateBracket

	zoneCoefficients    map[string]float64
	goodsCoefficients   map[string]float64
	vehicleCoefficients map[string]float64

	zoneRules   []ZoneRule
	defaultZone string

	fullVehicleRate   decimal.Decimal
	deliverySurcharge Surcharge
	volumetricDivisor float64
}

// New builds a Table from Data. It copies every slice and map, sorts the
// band sequences ascending by threshold, and rejects structurally broken
// input with a configuration error.
func New(d Data) (*Table, error) {
	t := &Table{
		version:             d.Version,
		distanceBands:       sortedBands(d.DistanceBands),
		sizeBands:           sortedBands(d.SizeBands),
		weightBrackets:      sortedBrackets(d.WeightBrackets),
		zoneCoefficients:    copyCoefficients(d.ZoneCoefficients),
		goodsCoefficients:   copyCoefficients(d.GoodsCoefficients),
		vehicleCoefficients: copyCoefficients(d.VehicleCoefficients),
		zoneRules:           append([]ZoneRule(nil), d.ZoneRules...),
		defaultZone:         d.DefaultZone,
		fullVehicleRate:     d.FullVehicleRate,
		deliverySurcharge:   d.DeliverySurcharge,
		volumetricDivisor:   d.VolumetricDivisor,
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) validate() error {
	if len(t.distanceBands) == 0 {
		return errors.Config("tariff table has no distance bands")
	}
	if len(t.sizeBands) == 0 {
		return errors.Config("tariff table has no size bands")
	}
	if len(t.weightBrackets) == 0 {
		return errors.Config("tariff table has no weight brackets")
	}
	if t.distanceBands[0].Threshold != 0 {
		return errors.Configf("first distance band threshold must be 0, got %v", t.distanceBands[0].Threshold)
	}
	if t.sizeBands[0].Threshold != 0 {
		return errors.Configf("first size band threshold must be 0, got %v", t.sizeBands[0].Threshold)
	}
	if t.weightBrackets[0].ThresholdKg != 0 {
		return errors.Configf("first weight bracket threshold must be 0, got %v", t.weightBrackets[0].ThresholdKg)
	}
	if err := checkStrictlyIncreasing("distance", thresholds(t.distanceBands)); err != nil {
		return err
	}
	if err := checkStrictlyIncreasing("size", thresholds(t.sizeBands)); err != nil {
		return err
	}
	if err := checkStrictlyIncreasing("weight", bracketThresholds(t.weightBrackets)); err != nil {
		return err
	}
	if t.volumetricDivisor <= 0 {
		return errors.Configf("volumetric divisor must be positive, got %v", t.volumetricDivisor)
	}
	if t.fullVehicleRate.IsNegative() || t.fullVehicleRate.IsZero() {
		return errors.Config("full vehicle rate must be positive")
	}
	if t.defaultZone == "" {
		return errors.Config("tariff table has no default zone")
	}
	return nil
}

// Version returns the tariff table version string.
func (t *Table) Version() string {
	return t.version
}

// DistanceCoefficient returns the coefficient of the highest distance band
// whose threshold is <= km. Values beyond the last band take the last
// band's coefficient.
func (t *Table) DistanceCoefficient(km float64) float64 {
	return stepCoefficient(t.distanceBands, km)
}

// SizeCoefficient returns the coefficient for the largest single
// dimension in centimeters.
func (t *Table) SizeCoefficient(maxDimCm float64) float64 {
	return stepCoefficient(t.sizeBands, maxDimCm)
}

// BaseRate returns the per-kg base rate for the chargeable weight.
func (t *Table) BaseRate(chargeableKg float64) decimal.Decimal {
	rate := t.weightBrackets[0].Rate
	for _, b := range t.weightBrackets {
		if chargeableKg >= b.ThresholdKg {
			rate = b.Rate
		} else {
			break
		}
	}
	return rate
}

// ZoneCoefficient returns the coefficient for a zone name.
// Unknown zones are neutral (1.0) so an unrecognized name never blocks a quote.
func (t *Table) ZoneCoefficient(name string) float64 {
	return lookupCoefficient(t.zoneCoefficients, name)
}

// GoodsCoefficient returns the coefficient for a goods category.
// Unknown categories are neutral (1.0).
func (t *Table) GoodsCoefficient(name string) float64 {
	return lookupCoefficient(t.goodsCoefficients, name)
}

// VehicleCoefficient returns the coefficient for a vehicle category.
// Unknown categories are neutral (1.0).
func (t *Table) VehicleCoefficient(name string) float64 {
	return lookupCoefficient(t.vehicleCoefficients, name)
}

// ResolveZone maps free-text location to a zone name by case-insensitive
// substring match against the zone rules, first match wins. Unmatched or
// empty locations resolve to the default zone.
func (t *Table) ResolveZone(locationText string) string {
	loc := strings.ToLower(strings.TrimSpace(locationText))
	if loc == "" {
		return t.defaultZone
	}
	for _, r := range t.zoneRules {
		if strings.Contains(loc, strings.ToLower(r.Match)) {
			return r.Zone
		}
	}
	return t.defaultZone
}

// DefaultZone returns the zone used for unresolved locations.
func (t *Table) DefaultZone() string {
	return t.defaultZone
}

// FullVehicleRate returns the per-kg rate for a dedicated vehicle charter.
func (t *Table) FullVehicleRate() decimal.Decimal {
	return t.fullVehicleRate
}

// DeliveryFee returns the named-destination surcharge for the given
// delivery-point text, or zero when the point is not the recognized
// destination. This is a binary flag rule, not a distance-based fee.
func (t *Table) DeliveryFee(deliveryPoint string) decimal.Decimal {
	point := strings.ToLower(strings.TrimSpace(deliveryPoint))
	if point == "" || point != strings.ToLower(strings.TrimSpace(t.deliverySurcharge.Point)) {
		return decimal.Zero
	}
	return t.deliverySurcharge.Base.Mul(t.deliverySurcharge.Rate)
}

// VolumetricDivisor returns the divisor used to convert cm³ to kg.
func (t *Table) VolumetricDivisor() float64 {
	return t.volumetricDivisor
}

// Summary describes a table's shape for display and health endpoints.
type Summary struct {
	Version        string `json:"version"`
	DistanceBands  int    `json:"distance_bands"`
	SizeBands      int    `json:"size_bands"`
	WeightBrackets int    `json:"weight_brackets"`
	Zones          int    `json:"zones"`
	GoodsTypes     int    `json:"goods_types"`
	VehicleTypes   int    `json:"vehicle_types"`
	ZoneRules      int    `json:"zone_rules"`
	DefaultZone    string `json:"default_zone"`
}

// Summarize returns the table's shape.
func (t *Table) Summarize() Summary {
	return Summary{
		Version:        t.version,
		DistanceBands:  len(t.distanceBands),
		SizeBands:      len(t.sizeBands),
		WeightBrackets: len(t.weightBrackets),
		Zones:          len(t.zoneCoefficients),
		GoodsTypes:     len(t.goodsCoefficients),
		VehicleTypes:   len(t.vehicleCoefficients),
		ZoneRules:      len(t.zoneRules),
		DefaultZone:    t.defaultZone,
	}
}

// stepCoefficient walks sorted bands and keeps the coefficient of the
// highest band whose threshold is <= value. Values below every threshold
// take the first band's coefficient.
func stepCoefficient(bands []Band, value float64) float64 {
	coef := bands[0].Coefficient
	for _, b := range bands {
		if value >= b.Threshold {
			coef = b.Coefficient
		} else {
			break
		}
	}
	return coef
}

func lookupCoefficient(m map[string]float64, name string) float64 {
	if c, ok := m[name]; ok {
		return c
	}
	return 1.0
}

func sortedBands(bands []Band) []Band {
	out := append([]Band(nil), bands...)
	sort.Slice(out, func(i, j int) bool { return out[i].Threshold < out[j].Threshold })
	return out
}

func sortedBrackets(brackets []RateBracket) []RateBracket {
	out := append([]RateBracket(nil), brackets...)
	sort.Slice(out, func(i, j int) bool { return out[i].ThresholdKg < out[j].ThresholdKg })
	return out
}

func copyCoefficients(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func thresholds(bands []Band) []float64 {
	out := make([]float64, len(bands))
	for i, b := range bands {
		out[i] = b.Threshold
	}
	return out
}

func bracketThresholds(brackets []RateBracket) []float64 {
	out := make([]float64, len(brackets))
	for i, b := range brackets {
		out[i] = b.ThresholdKg
	}
	return out
}

func checkStrictlyIncreasing(name string, values []float64) error {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return errors.Configf("%s band thresholds must be strictly increasing (%v after %v)", name, values[i], values[i-1])
		}
	}
	return nil
}
