// Package cmd - tariff command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tariffCmd validates and summarizes the active tariff table
var tariffCmd = &cobra.Command{
	Use:   "tariff",
	Short: "Validate and summarize the active tariff table",
	Long: `Load the tariff table (embedded default, or --tariff/config file),
validate its structure, and print its shape.

Examples:
  ghn-baogia tariff
  ghn-baogia tariff --tariff ./tariff.hcl`,
	RunE: runTariff,
}

func runTariff(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	s := table.Summarize()
	fmt.Printf("Tariff table %s\n", s.Version)
	fmt.Printf("  Distance bands:  %d\n", s.DistanceBands)
	fmt.Printf("  Size bands:      %d\n", s.SizeBands)
	fmt.Printf("  Weight brackets: %d\n", s.WeightBrackets)
	fmt.Printf("  Zones:           %d\n", s.Zones)
	fmt.Printf("  Goods types:     %d\n", s.GoodsTypes)
	fmt.Printf("  Vehicle types:   %d\n", s.VehicleTypes)
	fmt.Printf("  Zone rules:      %d\n", s.ZoneRules)
	fmt.Printf("  Default zone:    %s\n", s.DefaultZone)
	return nil
}
