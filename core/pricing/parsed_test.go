package pricing

import (
	"testing"

	"github.com/dung89nm/ghn-baogia/core/extract"
	"github.com/dung89nm/ghn-baogia/internal/errors"
)

func strp(s string) *string     { return &s }
func floatp(f float64) *float64 { return &f }

func TestQuoteFromParsed(t *testing.T) {
	e := newTestEngine(t)
	defaults := Defaults{GoodsType: "Hàng đóng hộp tiêu dùng", VehicleType: "Tải"}

	p := extract.Parsed{
		Origin:      strp("Hà Nội"),
		Destination: strp("Đà Nẵng"),
		DistanceKm:  floatp(300),
		WeightKg:    floatp(2000),
	}

	req, b, err := e.QuoteFromParsed(p, defaults)
	if err != nil {
		t.Fatalf("QuoteFromParsed: %v", err)
	}

	if req.PickupZone != "Vùng 1" {
		t.Errorf("PickupZone = %q, want Vùng 1 for Hà Nội", req.PickupZone)
	}
	if req.DeliveryZone != "Vùng 5" {
		t.Errorf("DeliveryZone = %q, want Vùng 5 for Đà Nẵng", req.DeliveryZone)
	}
	if req.GoodsType != defaults.GoodsType {
		t.Errorf("GoodsType = %q, want default %q", req.GoodsType, defaults.GoodsType)
	}
	if req.VehicleType != defaults.VehicleType {
		t.Errorf("VehicleType = %q, want default %q", req.VehicleType, defaults.VehicleType)
	}
	if b.Coefficients.Zone != 1.4 {
		t.Errorf("zone coefficient = %v, want 1.4", b.Coefficients.Zone)
	}
	if b.ChargeableWeightKg != 2000 {
		t.Errorf("ChargeableWeightKg = %v, want 2000", b.ChargeableWeightKg)
	}
}

func TestQuoteFromParsedExtractedCategoriesWin(t *testing.T) {
	e := newTestEngine(t)

	p := extract.Parsed{
		DistanceKm:   floatp(156),
		WeightKg:     floatp(1000),
		GoodsType:    strp("Lúa thóc"),
		VehicleType:  strp("Fooc"),
		ProposedCoef: 1.1,
	}

	req, b, err := e.QuoteFromParsed(p, Defaults{GoodsType: "Hàng đóng hộp tiêu dùng", VehicleType: "Tải"})
	if err != nil {
		t.Fatalf("QuoteFromParsed: %v", err)
	}
	if req.GoodsType != "Lúa thóc" {
		t.Errorf("GoodsType = %q, extracted value should win over default", req.GoodsType)
	}
	if b.Coefficients.Goods != 0.65 {
		t.Errorf("goods coefficient = %v, want 0.65", b.Coefficients.Goods)
	}
	if b.Coefficients.Vehicle != 2.25 {
		t.Errorf("vehicle coefficient = %v, want 2.25", b.Coefficients.Vehicle)
	}
	if b.Coefficients.Proposed != 1.1 {
		t.Errorf("proposed coefficient = %v, want 1.1", b.Coefficients.Proposed)
	}
}

func TestQuoteFromParsedMissingRequiredFields(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name  string
		p     extract.Parsed
		field string
	}{
		{"missing distance", extract.Parsed{WeightKg: floatp(100)}, "distance_km"},
		{"missing weight", extract.Parsed{DistanceKm: floatp(100)}, "weight_kg"},
		{"missing both reports distance first", extract.Parsed{}, "distance_km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := e.QuoteFromParsed(tt.p, Defaults{})
			if err == nil {
				t.Fatal("expected a validation error, got nil")
			}
			de, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("expected *errors.Error, got %T", err)
			}
			if de.Field != tt.field {
				t.Errorf("error field = %q, want %q", de.Field, tt.field)
			}
		})
	}
}

func TestQuoteFromParsedDims(t *testing.T) {
	e := newTestEngine(t)

	p := extract.Parsed{
		DistanceKm: floatp(156),
		WeightKg:   floatp(50),
		Quantity:   2,
		Dims:       &extract.Dims{LengthCm: 100, WidthCm: 100, HeightCm: 120},
	}

	req, b, err := e.QuoteFromParsed(p, Defaults{})
	if err != nil {
		t.Fatalf("QuoteFromParsed: %v", err)
	}
	if req.Dims == nil {
		t.Fatal("Dims not carried into the request")
	}
	if b.VolumetricWeightKg != 400 {
		t.Errorf("VolumetricWeightKg = %v, want 400", b.VolumetricWeightKg)
	}
}
