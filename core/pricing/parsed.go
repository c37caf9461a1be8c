package pricing

import (
	"github.com/dung89nm/ghn-baogia/core/extract"
	"github.com/dung89nm/ghn-baogia/internal/errors"
)

// Defaults fill the categories a free-text query did not name.
type Defaults struct {
	GoodsType   string
	VehicleType string
}

// QuoteFromParsed builds a Request from extractor output and quotes it.
// Origin and destination texts are resolved to zones through the tariff
// table's zone rules. Distance and weight are required; their absence is
// a validation error so a conversational caller can prompt for them.
// The resolved Request is returned alongside the breakdown so callers
// can echo what was actually quoted.
func (e *Engine) QuoteFromParsed(p extract.Parsed, d Defaults) (Request, *Breakdown, error) {
	if p.DistanceKm == nil {
		return Request{}, nil, errors.Validation("distance_km", "not found in query; supply the distance in km")
	}
	if p.WeightKg == nil {
		return Request{}, nil, errors.Validation("weight_kg", "not found in query; supply the weight in kg or tons")
	}

	req := Request{
		DistanceKm:    *p.DistanceKm,
		WeightKg:      *p.WeightKg,
		Quantity:      p.Quantity,
		PickupZone:    e.table.ResolveZone(deref(p.Origin)),
		DeliveryZone:  e.table.ResolveZone(deref(p.Destination)),
		DeliveryPoint: deref(p.DeliveryPoint),
		GoodsType:     orDefault(p.GoodsType, d.GoodsType),
		VehicleType:   orDefault(p.VehicleType, d.VehicleType),
		ProposedCoef:  p.ProposedCoef,
	}
	if p.Dims != nil {
		req.Dims = &Dims{
			LengthCm: p.Dims.LengthCm,
			WidthCm:  p.Dims.WidthCm,
			HeightCm: p.Dims.HeightCm,
		}
	}

	b, err := e.Quote(req)
	if err != nil {
		return req, nil, err
	}
	return req, b, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
