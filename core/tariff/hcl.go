package tariff

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"github.com/dung89nm/ghn-baogia/internal/errors"
)

// HCL tariff file schema:
//
//	tariff {
//	  version            = "2024.1"
//	  default_zone       = "Vùng còn lại"
//	  volumetric_divisor = 6000
//	  full_vehicle_rate  = 4076.05
//
//	  distance_band {
//	    threshold   = 0
//	    coefficient = 0.35
//	  }
//	  size_band {
//	    threshold   = 0
//	    coefficient = 1.0
//	  }
//	  weight_bracket {
//	    threshold_kg = 0
//	    rate         = 5230.78
//	  }
//
//	  zone "Vùng 1"  { coefficient = 1.4 }
//	  goods "Lúa thóc" { coefficient = 0.65 }
//	  vehicle "Tải"  { coefficient = 1.0 }
//	  zone_rule "Hà Nội" { zone = "Vùng 1" }
//
//	  delivery_surcharge {
//	    point = "TP Vinh"
//	    base  = 5445000
//	    rate  = 0.18
//	  }
//	}

type hclRoot struct {
	Tariff hclTariff `hcl:"tariff,block"`
}

type hclTariff struct {
	Version           string  `hcl:"version,optional"`
	DefaultZone       string  `hcl:"default_zone"`
	VolumetricDivisor float64 `hcl:"volumetric_divisor"`
	FullVehicleRate   float64 `hcl:"full_vehicle_rate"`

	DistanceBands  []hclBand    `hcl:"distance_band,block"`
	SizeBands      []hclBand    `hcl:"size_band,block"`
	WeightBrackets []hclBracket `hcl:"weight_bracket,block"`

	Zones     []hclCoefficient `hcl:"zone,block"`
	Goods     []hclCoefficient `hcl:"goods,block"`
	Vehicles  []hclCoefficient `hcl:"vehicle,block"`
	ZoneRules []hclZoneRule    `hcl:"zone_rule,block"`

	Surcharge *hclSurcharge `hcl:"delivery_surcharge,block"`
}

type hclBand struct {
	Threshold   float64 `hcl:"threshold"`
	Coefficient float64 `hcl:"coefficient"`
}

type hclBracket struct {
	ThresholdKg float64 `hcl:"threshold_kg"`
	Rate        float64 `hcl:"rate"`
}

type hclCoefficient struct {
	Name        string  `hcl:"name,label"`
	Coefficient float64 `hcl:"coefficient"`
}

type hclZoneRule struct {
	Match string `hcl:"match,label"`
	Zone  string `hcl:"zone"`
}

type hclSurcharge struct {
	Point string  `hcl:"point"`
	Base  float64 `hcl:"base"`
	Rate  float64 `hcl:"rate"`
}

// LoadHCL reads and parses a tariff table from an HCL file.
func LoadHCL(path string) (*Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "read tariff file", err)
	}
	return ParseHCL(src, path)
}

// ParseHCL parses tariff HCL source into a validated Table.
func ParseHCL(src []byte, filename string) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parse tariff HCL", diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, errors.Parsing("decode tariff HCL", diags)
	}

	return New(dataFromHCL(root.Tariff))
}

func dataFromHCL(t hclTariff) Data {
	d := Data{
		Version:             t.Version,
		DistanceBands:       make([]Band, 0, len(t.DistanceBands)),
		SizeBands:           make([]Band, 0, len(t.SizeBands)),
		WeightBrackets:      make([]RateBracket, 0, len(t.WeightBrackets)),
		ZoneCoefficients:    make(map[string]float64, len(t.Zones)),
		GoodsCoefficients:   make(map[string]float64, len(t.Goods)),
		VehicleCoefficients: make(map[string]float64, len(t.Vehicles)),
		ZoneRules:           make([]ZoneRule, 0, len(t.ZoneRules)),
		DefaultZone:         t.DefaultZone,
		FullVehicleRate:     decimal.NewFromFloat(t.FullVehicleRate),
		VolumetricDivisor:   t.VolumetricDivisor,
	}

	for _, b := range t.DistanceBands {
		d.DistanceBands = append(d.DistanceBands, Band{b.Threshold, b.Coefficient})
	}
	for _, b := range t.SizeBands {
		d.SizeBands = append(d.SizeBands, Band{b.Threshold, b.Coefficient})
	}
	for _, b := range t.WeightBrackets {
		d.WeightBrackets = append(d.WeightBrackets, RateBracket{b.ThresholdKg, decimal.NewFromFloat(b.Rate)})
	}
	for _, c := range t.Zones {
		d.ZoneCoefficients[c.Name] = c.Coefficient
	}
	for _, c := range t.Goods {
		d.GoodsCoefficients[c.Name] = c.Coefficient
	}
	for _, c := range t.Vehicles {
		d.VehicleCoefficients[c.Name] = c.Coefficient
	}
	for _, r := range t.ZoneRules {
		d.ZoneRules = append(d.ZoneRules, ZoneRule{r.Match, r.Zone})
	}
	if t.Surcharge != nil {
		d.DeliverySurcharge = Surcharge{
			Point: t.Surcharge.Point,
			Base:  decimal.NewFromFloat(t.Surcharge.Base),
			Rate:  decimal.NewFromFloat(t.Surcharge.Rate),
		}
	}
	return d
}
