// Package cmd provides the CLI commands for ghn-baogia.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dung89nm/ghn-baogia/core/tariff"
	"github.com/dung89nm/ghn-baogia/internal/config"
	"github.com/dung89nm/ghn-baogia/internal/logging"
)

var (
	cfgFile    string
	tariffFile string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ghn-baogia",
	Short: "Quote freight shipping prices",
	Long: `ghn-baogia computes freight price quotes from shipment attributes
(distance, weight, dimensions, goods and vehicle type, zones), or extracts
those attributes from a free-text request first.

Examples:
  ghn-baogia quote --distance 156 --weight 1000
  ghn-baogia quote --distance 300 --weight 500 --dims 120x80x100 --from "Hà Nội" --to "Vinh"
  ghn-baogia parse "chở 2 tấn từ Hà Nội đến Vinh, 300km"
  ghn-baogia tariff --file tariff.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&tariffFile, "tariff", "", "HCL tariff file (default is the embedded table)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tariffCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadTable resolves the tariff table from --tariff, the config file, or
// the embedded default, in that order.
func loadTable() (*tariff.Table, error) {
	path := tariffFile
	if path == "" {
		path = config.Get().Tariff.File
	}
	if path == "" {
		return tariff.Default(), nil
	}
	return tariff.LoadHCL(path)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ghn-baogia version 1.0.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}
