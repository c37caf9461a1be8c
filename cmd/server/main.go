// Package main - Entry point for the freight quote server
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dung89nm/ghn-baogia/api"
	"github.com/dung89nm/ghn-baogia/core/pricing"
	"github.com/dung89nm/ghn-baogia/core/tariff"
	"github.com/dung89nm/ghn-baogia/internal/config"
	"github.com/dung89nm/ghn-baogia/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	cfgFile := flag.String("config", "", "config file path")
	tariffFile := flag.String("tariff", "", "HCL tariff file (overrides config; empty = embedded table)")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	tariffPath := cfg.Tariff.File
	if *tariffFile != "" {
		tariffPath = *tariffFile
	}
	table, err := loadTable(tariffPath)
	if err != nil {
		logging.Fatal("load tariff table", zap.Error(err))
	}

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	engine := pricing.New(table)
	defaults := pricing.Defaults{
		GoodsType:   cfg.Extractor.DefaultGoodsType,
		VehicleType: cfg.Extractor.DefaultVehicleType,
	}
	server := api.NewServer(version, engine, defaults)

	logging.Info("server starting",
		zap.String("addr", listen),
		zap.String("version", version),
		zap.String("tariff_version", table.Version()))

	if err := server.ListenAndServe(listen); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}

func loadTable(path string) (*tariff.Table, error) {
	if path == "" {
		return tariff.Default(), nil
	}
	return tariff.LoadHCL(path)
}
