package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dung89nm/ghn-baogia/core/pricing"
	"github.com/dung89nm/ghn-baogia/core/tariff"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		name string
		in   decimal.Decimal
		want string
	}{
		{"zero", decimal.Zero, "0"},
		{"under a thousand", decimal.NewFromInt(980), "980"},
		{"exact thousand", decimal.NewFromInt(1000), "1.000"},
		{"millions", decimal.NewFromInt(1408851), "1.408.851"},
		{"even groups", decimal.NewFromInt(980100), "980.100"},
		{"billions", decimal.NewFromInt(1234567890), "1.234.567.890"},
		{"negative", decimal.NewFromInt(-1408851), "-1.408.851"},
		{"fraction rounds first", decimal.NewFromFloat(1500.4), "1.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatVND(tt.in); got != tt.want {
				t.Errorf("FormatVND(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	engine := pricing.New(tariff.Default())
	req := pricing.Request{
		DistanceKm:    156,
		WeightKg:      1000,
		Quantity:      1,
		DeliveryPoint: "TP Vinh",
		GoodsType:     "Hàng đóng hộp tiêu dùng",
		VehicleType:   "Tải",
	}
	b, err := engine.Quote(req)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	out := Renderer{ShowCoefficients: true}.RenderString(req, b)

	for _, want := range []string{
		"Báo giá vận chuyển",
		"- Số kiện: 1\n",
		"- Trọng lượng tính cước: 1000.00 kg\n",
		"- Khoảng cách: 156 km\n",
		"- Loại hàng: Hàng đóng hộp tiêu dùng\n",
		"- Loại xe: Tải\n",
		"- Hệ số áp dụng: km 0.45",
		"- Cước tạm tính: 1.408.851 VNĐ\n",
		"- Phí giao tận nơi: 980.100 VNĐ\n",
		"- Tổng tiền: 2.388.951 VNĐ\n",
		"- Giá xe ghép: 1.267.966 VNĐ\n",
		"- Giá nguyên xe: 1.834.222 VNĐ\n",
		"- Giá báo khách: 2.388.951 VNĐ\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered quote missing %q\nfull output:\n%s", want, out)
		}
	}

	if strings.Contains(out, "Trọng lượng quy đổi") {
		t.Error("volumetric line should be omitted without dimensions")
	}
}

func TestRenderHidesCoefficients(t *testing.T) {
	engine := pricing.New(tariff.Default())
	req := pricing.Request{DistanceKm: 50, WeightKg: 100, Quantity: 1}
	b, err := engine.Quote(req)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	out := Renderer{}.RenderString(req, b)
	if strings.Contains(out, "Hệ số áp dụng") {
		t.Error("coefficient line rendered despite ShowCoefficients=false")
	}
}

func TestRenderDims(t *testing.T) {
	engine := pricing.New(tariff.Default())
	req := pricing.Request{
		DistanceKm: 100,
		WeightKg:   50,
		Quantity:   2,
		Dims:       &pricing.Dims{LengthCm: 100, WidthCm: 100, HeightCm: 120},
	}
	b, err := engine.Quote(req)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	out := Renderer{}.RenderString(req, b)
	for _, want := range []string{
		"- Kích thước: 100x100x120 cm\n",
		"- Trọng lượng quy đổi: 400.00 kg\n",
		"- Trọng lượng thực: 100.00 kg\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered quote missing %q\nfull output:\n%s", want, out)
		}
	}
}
