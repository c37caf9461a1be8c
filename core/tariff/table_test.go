package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDistanceCoefficientStepFunction(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		km       float64
		expected float64
	}{
		{"zero distance takes floor band", 0, 0.35},
		{"below second threshold keeps floor", 49, 0.35},
		{"exactly at threshold takes that band", 100, 0.4},
		{"inside a band", 156, 0.45},
		{"exactly at 150", 150, 0.45},
		{"just under a threshold keeps previous band", 199.9, 0.45},
		{"mid table", 1000, 1.05},
		{"last band", 2500, 1.6},
		{"beyond last band keeps last coefficient", 99999, 1.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.DistanceCoefficient(tt.km); got != tt.expected {
				t.Errorf("DistanceCoefficient(%v) = %v, want %v", tt.km, got, tt.expected)
			}
		})
	}
}

func TestDistanceCoefficientMonotonic(t *testing.T) {
	table := Default()

	prev := table.DistanceCoefficient(0)
	for km := 1.0; km <= 3000; km++ {
		cur := table.DistanceCoefficient(km)
		if cur < prev {
			t.Fatalf("coefficient decreased at %v km: %v -> %v", km, prev, cur)
		}
		prev = cur
	}
}

func TestSizeCoefficient(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		dim      float64
		expected float64
	}{
		{"no dimension", 0, 1.0},
		{"small package", 150, 1.0},
		{"at 200", 200, 1.2},
		{"between bands", 500, 1.4},
		{"oversized", 2000, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.SizeCoefficient(tt.dim); got != tt.expected {
				t.Errorf("SizeCoefficient(%v) = %v, want %v", tt.dim, got, tt.expected)
			}
		})
	}
}

func TestBaseRateBrackets(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		weightKg float64
		expected string
	}{
		{"under one ton", 999, "5230.78"},
		{"exactly one ton", 1000, "3130.78"},
		{"under three tons", 2999.9, "3130.78"},
		{"three tons", 3000, "2180.78"},
		{"under ten tons", 9999, "2180.78"},
		{"ten tons and up", 10000, "1200.78"},
		{"very heavy", 50000, "1200.78"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, _ := decimal.NewFromString(tt.expected)
			if got := table.BaseRate(tt.weightKg); !got.Equal(want) {
				t.Errorf("BaseRate(%v) = %s, want %s", tt.weightKg, got, want)
			}
		})
	}
}

func TestBaseRateStrictlyDecreasingAcrossBrackets(t *testing.T) {
	table := Default()

	boundaries := []float64{500, 1000, 3000, 10000}
	for i := 1; i < len(boundaries); i++ {
		lighter := table.BaseRate(boundaries[i-1])
		heavier := table.BaseRate(boundaries[i])
		if !heavier.LessThan(lighter) {
			t.Errorf("rate at %v kg (%s) not below rate at %v kg (%s)",
				boundaries[i], heavier, boundaries[i-1], lighter)
		}
	}
}

func TestNamedCoefficientsFallBackToNeutral(t *testing.T) {
	table := Default()

	if got := table.ZoneCoefficient("Vùng 1"); got != 1.4 {
		t.Errorf("ZoneCoefficient(Vùng 1) = %v, want 1.4", got)
	}
	if got := table.GoodsCoefficient("Lúa thóc"); got != 0.65 {
		t.Errorf("GoodsCoefficient(Lúa thóc) = %v, want 0.65", got)
	}
	if got := table.VehicleCoefficient("Fooc"); got != 2.25 {
		t.Errorf("VehicleCoefficient(Fooc) = %v, want 2.25", got)
	}

	// Unknown names never error, they are neutral.
	for _, name := range []string{"", "không tồn tại", "Zone 51"} {
		if got := table.ZoneCoefficient(name); got != 1.0 {
			t.Errorf("ZoneCoefficient(%q) = %v, want 1.0", name, got)
		}
		if got := table.GoodsCoefficient(name); got != 1.0 {
			t.Errorf("GoodsCoefficient(%q) = %v, want 1.0", name, got)
		}
		if got := table.VehicleCoefficient(name); got != 1.0 {
			t.Errorf("VehicleCoefficient(%q) = %v, want 1.0", name, got)
		}
	}
}

func TestResolveZone(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		location string
		expected string
	}{
		{"exact place name", "Hà Nội", "Vùng 1"},
		{"case insensitive", "hà nội", "Vùng 1"},
		{"substring in a longer address", "123 Lê Lợi, TP HCM", "Vùng 1"},
		{"island zone", "đảo Phú Quốc", "Vùng huyện đảo"},
		{"mapped to remaining zone", "Thanh Hóa", "Vùng còn lại"},
		{"unknown place", "Somewhere Else", "Vùng còn lại"},
		{"empty input", "", "Vùng còn lại"},
		{"whitespace only", "   ", "Vùng còn lại"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.ResolveZone(tt.location); got != tt.expected {
				t.Errorf("ResolveZone(%q) = %q, want %q", tt.location, got, tt.expected)
			}
		})
	}
}

func TestResolveZoneFirstRuleWins(t *testing.T) {
	d := DefaultData()
	d.ZoneRules = []ZoneRule{
		{"Vinh", "Vùng 5"},
		{"Vinh Long", "Vùng 1"},
	}
	table, err := New(d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Both rules match; the first in table order applies.
	if got := table.ResolveZone("Vinh Long"); got != "Vùng 5" {
		t.Errorf("ResolveZone(Vinh Long) = %q, want first rule's zone", got)
	}
}

func TestDeliveryFee(t *testing.T) {
	table := Default()
	want := decimal.NewFromInt(5445000).Mul(decimal.NewFromFloat(0.18))

	tests := []struct {
		name  string
		point string
		fee   decimal.Decimal
	}{
		{"exact match", "TP Vinh", want},
		{"case insensitive", "tp vinh", want},
		{"surrounding whitespace", "  TP VINH  ", want},
		{"different point", "TP Hà Tĩnh", decimal.Zero},
		{"substring is not a match", "gần TP Vinh", decimal.Zero},
		{"empty", "", decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.DeliveryFee(tt.point); !got.Equal(tt.fee) {
				t.Errorf("DeliveryFee(%q) = %s, want %s", tt.point, got, tt.fee)
			}
		})
	}
}

func TestNewRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Data)
	}{
		{"no distance bands", func(d *Data) { d.DistanceBands = nil }},
		{"no size bands", func(d *Data) { d.SizeBands = nil }},
		{"no weight brackets", func(d *Data) { d.WeightBrackets = nil }},
		{"distance floor not zero", func(d *Data) { d.DistanceBands = []Band{{50, 0.35}} }},
		{"duplicate threshold", func(d *Data) {
			d.SizeBands = []Band{{0, 1.0}, {200, 1.2}, {200, 1.3}}
		}},
		{"zero volumetric divisor", func(d *Data) { d.VolumetricDivisor = 0 }},
		{"zero full vehicle rate", func(d *Data) { d.FullVehicleRate = decimal.Zero }},
		{"no default zone", func(d *Data) { d.DefaultZone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultData()
			tt.mutate(&d)
			if _, err := New(d); err == nil {
				t.Error("expected a configuration error, got nil")
			}
		})
	}
}

func TestNewSortsBands(t *testing.T) {
	d := DefaultData()
	d.DistanceBands = []Band{{100, 0.5}, {0, 0.3}, {50, 0.4}}
	table, err := New(d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := table.DistanceCoefficient(75); got != 0.4 {
		t.Errorf("DistanceCoefficient(75) = %v, want 0.4 after sorting", got)
	}
}

func TestTableIsolatedFromInputData(t *testing.T) {
	d := DefaultData()
	table, err := New(d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Mutating the source data must not reach through to the table.
	d.ZoneCoefficients["Vùng 1"] = 99
	d.DistanceBands[0] = Band{0, 99}
	d.ZoneRules[0] = ZoneRule{"Hà Nội", "Vùng huyện đảo"}

	if got := table.ZoneCoefficient("Vùng 1"); got != 1.4 {
		t.Errorf("table shares zone map with input: got %v", got)
	}
	if got := table.DistanceCoefficient(0); got != 0.35 {
		t.Errorf("table shares band slice with input: got %v", got)
	}
	if got := table.ResolveZone("Hà Nội"); got != "Vùng 1" {
		t.Errorf("table shares zone rules with input: got %q", got)
	}
}
