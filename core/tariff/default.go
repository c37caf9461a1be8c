package tariff

import (
	"github.com/shopspring/decimal"
)

// defaultVersion identifies the embedded production tariff.
const defaultVersion = "2024.1"

// Default returns the embedded production tariff table. Construction
// cannot fail for the embedded data; Default panics if it ever does.
func Default() *Table {
	t, err := New(DefaultData())
	if err != nil {
		panic("tariff: embedded default table invalid: " + err.Error())
	}
	return t
}

// DefaultData returns a fresh copy of the embedded production tariff data.
// Tests use it as a baseline for alternate tables.
func DefaultData() Data {
	return Data{
		Version: defaultVersion,

		DistanceBands: []Band{
			{0, 0.35}, {50, 0.35}, {100, 0.4}, {150, 0.45}, {200, 0.5}, {250, 0.55},
			{300, 0.6}, {350, 0.65}, {400, 0.7}, {450, 0.75}, {500, 0.8}, {550, 0.825},
			{600, 0.85}, {650, 0.875}, {700, 0.9}, {750, 0.925}, {800, 0.95}, {850, 0.975},
			{900, 1.0}, {950, 1.025}, {1000, 1.05}, {1100, 1.075}, {1200, 1.1}, {1300, 1.125},
			{1400, 1.15}, {1500, 1.175}, {1600, 1.2}, {1700, 1.225}, {1800, 1.25}, {1900, 1.275},
			{2000, 1.3}, {2100, 1.325}, {2200, 1.35}, {2300, 1.375}, {2400, 1.4}, {2500, 1.6},
		},

		SizeBands: []Band{
			{0, 1.0}, {200, 1.2}, {300, 1.3}, {400, 1.4}, {600, 1.5}, {800, 1.8}, {1100, 2.0},
		},

		WeightBrackets: []RateBracket{
			{0, decimal.NewFromFloat(5230.78)},     // under 1 ton
			{1000, decimal.NewFromFloat(3130.78)},  // 1 ton to under 3 tons
			{3000, decimal.NewFromFloat(2180.78)},  // 3 tons to under 10 tons
			{10000, decimal.NewFromFloat(1200.78)}, // 10 tons and up
		},

		ZoneCoefficients: map[string]float64{
			"Vùng 1":         1.4,
			"Vùng 5":         1.3,
			"Vùng còn lại":   1.0,
			"Vùng huyện đảo": 1.5,
		},

		GoodsCoefficients: map[string]float64{
			"Hàng trần VLXD":           0.8,
			"Hàng dễ vỡ":               1.5,
			"Hàng tiêu dùng":           1.0,
			"Hàng đông lạnh":           1.5,
			"Hàng hóa chất":            1.5,
			"Hàng đóng hộp tiêu dùng":  1.0,
			"Lúa thóc":                 0.65,
		},

		VehicleCoefficients: map[string]float64{
			"Tải":      1.0,
			"Đầu kéo":  1.25,
			"Mooc sàn": 1.5,
			"Fooc":     2.25,
		},

		ZoneRules: []ZoneRule{
			{"Hà Nội", "Vùng 1"},
			{"TP HCM", "Vùng 1"},
			{"Hải Phòng", "Vùng 1"},
			{"Đà Nẵng", "Vùng 5"},
			{"Cần Thơ", "Vùng 5"},
			{"Phú Quốc", "Vùng huyện đảo"},
			{"Côn Đảo", "Vùng huyện đảo"},
			{"Lý Sơn", "Vùng huyện đảo"},
			{"Nghệ An", "Vùng còn lại"},
			{"Thái Hòa", "Vùng còn lại"},
			{"Thanh Hóa", "Vùng còn lại"},
			{"Bắc Giang", "Vùng còn lại"},
			{"Bình Dương", "Vùng còn lại"},
		},
		DefaultZone: "Vùng còn lại",

		FullVehicleRate: decimal.NewFromFloat(4076.05),
		DeliverySurcharge: Surcharge{
			Point: "TP Vinh",
			Base:  decimal.NewFromInt(5445000),
			Rate:  decimal.NewFromFloat(0.18),
		},
		VolumetricDivisor: 6000,
	}
}
