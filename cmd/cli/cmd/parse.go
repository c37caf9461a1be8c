// Package cmd - parse command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dung89nm/ghn-baogia/core/extract"
	"github.com/dung89nm/ghn-baogia/core/output"
	"github.com/dung89nm/ghn-baogia/core/pricing"
	"github.com/dung89nm/ghn-baogia/internal/config"
	"github.com/dung89nm/ghn-baogia/internal/errors"
)

var parseJSON bool

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Extract shipment attributes from a free-text request and quote it",
	Long: `Run the pattern-based extractor over a free-text quote request,
then compute the quote when distance and weight were found.

Extraction is a best-effort heuristic; check the reported confidence.

Examples:
  ghn-baogia parse "chở 2 tấn từ Hà Nội đến Vinh, 300km"
  ghn-baogia parse "transport from Bắc Giang to Đà Nẵng, 1 ton, 156km"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the parsed fields as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	parsed := extract.Extract(text)

	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	}

	fmt.Printf("Confidence: %.2f\n", parsed.Confidence)
	printField("Origin", parsed.Origin)
	printField("Destination", parsed.Destination)
	printField("Delivery point", parsed.DeliveryPoint)
	printNumber("Weight (kg)", parsed.WeightKg)
	printNumber("Distance (km)", parsed.DistanceKm)
	fmt.Printf("  Quantity: %d\n", parsed.Quantity)
	if parsed.Dims != nil {
		fmt.Printf("  Dimensions: %gx%gx%g cm\n", parsed.Dims.LengthCm, parsed.Dims.WidthCm, parsed.Dims.HeightCm)
	}
	printField("Goods type", parsed.GoodsType)
	printField("Vehicle type", parsed.VehicleType)
	fmt.Printf("  Proposed coefficient: %g\n", parsed.ProposedCoef)

	table, err := loadTable()
	if err != nil {
		return err
	}
	cfg := config.Get()
	engine := pricing.New(table)
	defaults := pricing.Defaults{
		GoodsType:   cfg.Extractor.DefaultGoodsType,
		VehicleType: cfg.Extractor.DefaultVehicleType,
	}

	req, breakdown, err := engine.QuoteFromParsed(parsed, defaults)
	if err != nil {
		if errors.IsType(err, errors.TypeValidation) {
			fmt.Printf("\nNo quote: %s\n", err.(*errors.Error).Message)
			return nil
		}
		return err
	}

	fmt.Println()
	renderer := output.Renderer{ShowCoefficients: cfg.Output.ShowCoefficients}
	return renderer.Render(os.Stdout, req, breakdown)
}

func printField(label string, v *string) {
	if v != nil {
		fmt.Printf("  %s: %s\n", label, *v)
	}
}

func printNumber(label string, v *float64) {
	if v != nil {
		fmt.Printf("  %s: %g\n", label, *v)
	}
}
