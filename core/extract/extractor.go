// Package extract pulls shipment attributes out of free-text quote
// requests. Each field is found by an independent pattern scan over the
// same text; the first match per field wins and overlapping phrases are
// not reconciled. This is a best-effort heuristic, not a grammar: a
// conversational caller decides from the confidence score whether the
// extraction is usable as a pricing request.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Per-field confidence increments. The total is a plain sum, not
// normalized by field count.
const (
	confOrigin       = 0.2
	confDestination  = 0.2
	confDelivery     = 0.1
	confWeight       = 0.2
	confQuantity     = 0.1
	confDims         = 0.15
	confDistance     = 0.2
	confGoods        = 0.1
	confVehicle      = 0.1
	confProposedCoef = 0.1
)

var (
	originPattern = regexp.MustCompile(
		`(?i)(?:chở từ|vận chuyển từ|đi từ|từ|transport(?:ed)?\s+from|shipped\s+from|\bfrom)\s+` +
			`([\p{L}\p{N}\s.,/-]+?)\s*(?:đến|tới|về|to\b|reaching\b|$)`)

	// \b is ASCII-only in RE2, so it guards just the English tokens; the
	// accented Vietnamese tokens cannot sit at an ASCII word boundary.
	destinationPattern = regexp.MustCompile(
		`(?i)(?:đến|tới|về|\bto\b|\bdestination\b|\breaching\b)\s+([\p{L}\p{N}\s.,/-]+?)\s*(?:,|\.|\n|$)`)

	deliveryPattern = regexp.MustCompile(
		`(?i)(?:giao\s*(?:tận nơi|tới)?|deliver(?:y)?\s*(?:to|onsite|at)?)\s*` +
			`([\p{L}\p{N}\s.,/-]+?)\s*(?:,|\.|\n|$)`)

	weightPattern = regexp.MustCompile(
		`(?i)(\d+(?:[.,]\d+)?)\s*(tấn|tonnes?|tons?|kilogram|kilogam|kilo|kg|cân)\b`)

	quantityPattern = regexp.MustCompile(
		`(?i)(?:số kiện|số lượng kiện|packages?|pieces?|qty|quantity)\s*[:=]?\s*(\d+)`)

	dimsPattern = regexp.MustCompile(
		`(\d+(?:[.,]\d+)?)\s*[x×*]\s*(\d+(?:[.,]\d+)?)\s*[x×*]\s*(\d+(?:[.,]\d+)?)\s*(?:cm|centimet(?:er|re)?s?)?`)

	distancePattern = regexp.MustCompile(
		`(?i)(\d+(?:[.,]\d+)?)\s*(?:km|kilomet(?:er|re)?s?)\b`)

	goodsPattern = regexp.MustCompile(
		`(?i)(?:loại hàng|goods(?:\s*(?:type|category))?|cargo(?:\s*type)?)\s*[:=]?\s*` +
			`([\p{L}\p{N}\s]+?)\s*(?:,|\.|\n|$)`)

	vehiclePattern = regexp.MustCompile(
		`(?i)(?:loại xe|vehicle(?:\s*(?:type|category))?|truck\s*type)\s*[:=]?\s*` +
			`([\p{L}\p{N}\s]+?)\s*(?:,|\.|\n|$)`)

	coefPattern = regexp.MustCompile(
		`(?i)(?:hệ số đề xuất|proposed\s+coef(?:ficient)?)\s*[:=]?\s*(\d+(?:[.,]\d+)?)`)

	tonUnits = map[string]bool{
		"tấn": true, "ton": true, "tons": true, "tonne": true, "tonnes": true,
	}
)

// Dims are parsed volumetric dimensions, all three or none.
type Dims struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// Parsed is the extraction result. Unmatched fields are nil; Quantity
// defaults to 1 and ProposedCoef to 1.0. Confidence is the sum of the
// matched fields' fixed increments, rounded to two decimals.
type Parsed struct {
	Origin        *string `json:"origin,omitempty"`
	Destination   *string `json:"destination,omitempty"`
	DeliveryPoint *string `json:"delivery_point,omitempty"`

	WeightKg   *float64 `json:"weight_kg,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`

	Quantity int   `json:"quantity"`
	Dims     *Dims `json:"dims,omitempty"`

	GoodsType   *string `json:"goods_type,omitempty"`
	VehicleType *string `json:"vehicle_type,omitempty"`

	ProposedCoef float64 `json:"proposed_coef"`
	Confidence   float64 `json:"confidence"`
}

// Extract parses a free-text quote request. It never fails: fields
// without a recognizable fragment are simply left unset.
func Extract(text string) Parsed {
	p := Parsed{
		Quantity:     1,
		ProposedCoef: 1.0,
	}
	var confidence float64

	if m := originPattern.FindStringSubmatch(text); m != nil {
		if v := trimmed(m[1]); v != nil {
			p.Origin = v
			confidence += confOrigin
		}
	}
	if m := destinationPattern.FindStringSubmatch(text); m != nil {
		if v := trimmed(m[1]); v != nil {
			p.Destination = v
			confidence += confDestination
		}
	}
	if m := deliveryPattern.FindStringSubmatch(text); m != nil {
		if v := trimmed(m[1]); v != nil {
			p.DeliveryPoint = v
			confidence += confDelivery
		}
	}

	if m := weightPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			if tonUnits[strings.ToLower(m[2])] {
				v *= 1000
			}
			p.WeightKg = &v
			confidence += confWeight
		}
	}

	if m := quantityPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			p.Quantity = n
			confidence += confQuantity
		}
	}

	if m := dimsPattern.FindStringSubmatch(text); m != nil {
		l, okL := parseNumber(m[1])
		w, okW := parseNumber(m[2])
		h, okH := parseNumber(m[3])
		if okL && okW && okH {
			p.Dims = &Dims{LengthCm: l, WidthCm: w, HeightCm: h}
			confidence += confDims
		}
	}

	if m := distancePattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			p.DistanceKm = &v
			confidence += confDistance
		}
	}

	if m := goodsPattern.FindStringSubmatch(text); m != nil {
		if v := trimmed(m[1]); v != nil {
			p.GoodsType = v
			confidence += confGoods
		}
	}
	if m := vehiclePattern.FindStringSubmatch(text); m != nil {
		if v := trimmed(m[1]); v != nil {
			p.VehicleType = v
			confidence += confVehicle
		}
	}

	if m := coefPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			p.ProposedCoef = v
			confidence += confProposedCoef
		}
	}

	p.Confidence = math.Round(confidence*100) / 100
	return p
}

// parseNumber parses a decimal that may use a comma separator.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func trimmed(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
