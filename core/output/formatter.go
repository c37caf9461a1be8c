// Package output renders price breakdowns for humans. Computation and
// presentation are kept apart: the engine produces numbers, this package
// produces text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dung89nm/ghn-baogia/core/pricing"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is human-readable text
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// FormatVND formats a whole-unit amount in the Vietnamese convention,
// with '.' as the thousands separator: 1408851 -> "1.408.851".
func FormatVND(d decimal.Decimal) string {
	s := d.Round(0).String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	var groups []string
	lead := len(s) % 3
	if lead > 0 {
		groups = append(groups, s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		groups = append(groups, s[i:i+3])
	}
	return sign + strings.Join(groups, ".")
}

// Renderer writes quote summaries in the shop's reply format.
type Renderer struct {
	// ShowCoefficients includes the applied coefficients.
	ShowCoefficients bool
}

// Render writes the full human-readable quote for a shipment.
func (r Renderer) Render(w io.Writer, req pricing.Request, b *pricing.Breakdown) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Báo giá vận chuyển (vùng lấy: %s, vùng giao: %s):\n\n", req.PickupZone, req.DeliveryZone)
	fmt.Fprintf(&sb, "- Số kiện: %d\n", req.Quantity)
	if req.Dims != nil {
		fmt.Fprintf(&sb, "- Kích thước: %gx%gx%g cm\n", req.Dims.LengthCm, req.Dims.WidthCm, req.Dims.HeightCm)
	}
	fmt.Fprintf(&sb, "- Trọng lượng thực: %.2f kg\n", b.ActualWeightKg)
	if b.VolumetricWeightKg > 0 {
		fmt.Fprintf(&sb, "- Trọng lượng quy đổi: %.2f kg\n", b.VolumetricWeightKg)
	}
	fmt.Fprintf(&sb, "- Trọng lượng tính cước: %.2f kg\n", b.ChargeableWeightKg)
	fmt.Fprintf(&sb, "- Khoảng cách: %g km\n", req.DistanceKm)
	if req.GoodsType != "" {
		fmt.Fprintf(&sb, "- Loại hàng: %s\n", req.GoodsType)
	}
	if req.VehicleType != "" {
		fmt.Fprintf(&sb, "- Loại xe: %s\n", req.VehicleType)
	}
	fmt.Fprintf(&sb, "- Hệ số đề xuất: %g\n", b.Coefficients.Proposed)

	if r.ShowCoefficients {
		c := b.Coefficients
		fmt.Fprintf(&sb, "- Hệ số áp dụng: km %g, vùng %g, hàng %g, xe %g, kích thước %g\n",
			c.Distance, c.Zone, c.Goods, c.Vehicle, c.Size)
	}

	sb.WriteString("\nKết quả tính cước:\n")
	fmt.Fprintf(&sb, "- Cước tạm tính: %s VNĐ\n", FormatVND(b.BaseFreight))
	fmt.Fprintf(&sb, "- Phí giao tận nơi: %s VNĐ\n", FormatVND(b.DeliveryFee))
	fmt.Fprintf(&sb, "- Tổng tiền: %s VNĐ\n", FormatVND(b.TotalCost))
	fmt.Fprintf(&sb, "- Giá xe ghép: %s VNĐ\n", FormatVND(b.SharedVehicleCost))
	fmt.Fprintf(&sb, "- Giá nguyên xe: %s VNĐ\n", FormatVND(b.FullVehicleCost))
	fmt.Fprintf(&sb, "- Giá báo khách: %s VNĐ\n", FormatVND(b.CustomerPrice))

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderString renders the quote to a string, for chat-style replies.
func (r Renderer) RenderString(req pricing.Request, b *pricing.Breakdown) string {
	var sb strings.Builder
	_ = r.Render(&sb, req, b)
	return sb.String()
}
