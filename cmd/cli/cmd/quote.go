// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dung89nm/ghn-baogia/core/output"
	"github.com/dung89nm/ghn-baogia/core/pricing"
	"github.com/dung89nm/ghn-baogia/internal/config"
)

var (
	quoteDistance      float64
	quoteWeight        float64
	quoteQty           int
	quoteDims          string
	quoteFrom          string
	quoteTo            string
	quotePickupZone    string
	quoteDeliveryZone  string
	quoteDeliveryPoint string
	quoteGoods         string
	quoteVehicle       string
	quoteCoef          float64
	quoteFormat        string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a freight price quote from structured shipment attributes",
	Long: `Compute a full price breakdown for one shipment.

Locations given with --from/--to are resolved to tariff zones by the
table's place-name rules; --pickup-zone/--delivery-zone name zones
directly and take precedence.

Examples:
  ghn-baogia quote --distance 156 --weight 1000
  ghn-baogia quote --distance 300 --weight 500 --qty 2 --dims 120x80x100
  ghn-baogia quote --distance 300 --weight 2000 --from "Hà Nội" --to "Vinh" --delivery-point "TP Vinh"`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().Float64Var(&quoteDistance, "distance", 0, "distance in km (required)")
	quoteCmd.Flags().Float64Var(&quoteWeight, "weight", 0, "actual weight in kg (required)")
	quoteCmd.Flags().IntVar(&quoteQty, "qty", 1, "package count")
	quoteCmd.Flags().StringVar(&quoteDims, "dims", "", "volumetric dimensions in cm, e.g. 120x80x100")
	quoteCmd.Flags().StringVar(&quoteFrom, "from", "", "pickup location (free text)")
	quoteCmd.Flags().StringVar(&quoteTo, "to", "", "delivery location (free text)")
	quoteCmd.Flags().StringVar(&quotePickupZone, "pickup-zone", "", "pickup zone name (overrides --from)")
	quoteCmd.Flags().StringVar(&quoteDeliveryZone, "delivery-zone", "", "delivery zone name (overrides --to)")
	quoteCmd.Flags().StringVar(&quoteDeliveryPoint, "delivery-point", "", "delivery point text (may trigger a surcharge)")
	quoteCmd.Flags().StringVar(&quoteGoods, "goods", "", "goods category")
	quoteCmd.Flags().StringVar(&quoteVehicle, "vehicle", "", "vehicle category")
	quoteCmd.Flags().Float64Var(&quoteCoef, "coef", 1.0, "proposed multiplier")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")

	quoteCmd.MarkFlagRequired("distance")
	quoteCmd.MarkFlagRequired("weight")
}

func runQuote(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	engine := pricing.New(table)
	cfg := config.Get()

	pickupZone := quotePickupZone
	if pickupZone == "" {
		pickupZone = table.ResolveZone(quoteFrom)
	}
	deliveryZone := quoteDeliveryZone
	if deliveryZone == "" {
		deliveryZone = table.ResolveZone(quoteTo)
	}

	goods := quoteGoods
	if goods == "" {
		goods = cfg.Extractor.DefaultGoodsType
	}
	vehicle := quoteVehicle
	if vehicle == "" {
		vehicle = cfg.Extractor.DefaultVehicleType
	}

	req := pricing.Request{
		DistanceKm:    quoteDistance,
		WeightKg:      quoteWeight,
		Quantity:      quoteQty,
		PickupZone:    pickupZone,
		DeliveryZone:  deliveryZone,
		DeliveryPoint: quoteDeliveryPoint,
		GoodsType:     goods,
		VehicleType:   vehicle,
		ProposedCoef:  quoteCoef,
	}

	if quoteDims != "" {
		dims, err := parseDims(quoteDims)
		if err != nil {
			return err
		}
		req.Dims = dims
	}

	breakdown, err := engine.Quote(req)
	if err != nil {
		return err
	}

	format := quoteFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if format == string(output.FormatJSON) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(breakdown)
	}

	renderer := output.Renderer{ShowCoefficients: cfg.Output.ShowCoefficients}
	return renderer.Render(os.Stdout, req, breakdown)
}

// parseDims parses "LxWxH" centimeter dimensions.
func parseDims(s string) (*pricing.Dims, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == 'x' || r == 'X' || r == '×' || r == '*'
	})
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid dims %q: want LxWxH, e.g. 120x80x100", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dims %q: %w", s, err)
		}
		vals[i] = v
	}
	return &pricing.Dims{LengthCm: vals[0], WidthCm: vals[1], HeightCm: vals[2]}, nil
}
