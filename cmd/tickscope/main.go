package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "tickscope",
		Short:        "Uniswap V3 tick, price and position calculator",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Convert between tick, price and sqrtPriceX96",
		RunE:  runPrice,
	}

	priceCmd.Flags().Int("tick", 0, "tick to convert")
	priceCmd.Flags().Float64("price", 0, "price to convert")
	priceCmd.Flags().String("sqrt-price-x96", "", "sqrtPriceX96 to convert (decimal string)")
	priceCmd.Flags().Int("decimals0", 18, "token0 decimals")
	priceCmd.Flags().Int("decimals1", 18, "token1 decimals")

	root.AddCommand(priceCmd)

	rangeCmd := &cobra.Command{
		Use:   "range",
		Short: "Construct and inspect position tick ranges",
		RunE:  runRange,
	}

	rangeCmd.Flags().Int("current-tick", 0, "current pool tick")
	rangeCmd.Flags().Int("fee", 3000, "fee tier (100, 500, 3000, 10000)")
	rangeCmd.Flags().Float64("percent", 0, "symmetric percent price band")
	rangeCmd.Flags().Float64("volatility", 0, "daily volatility (fraction) for statistical sizing")
	rangeCmd.Flags().Float64("days", 0, "holding period in days for statistical sizing")
	rangeCmd.Flags().Float64("confidence", 0.95, "confidence level (0.90, 0.95, 0.99)")
	rangeCmd.Flags().Bool("full-range", false, "return the widest mintable range")

	root.AddCommand(rangeCmd)

	positionCmd := &cobra.Command{
		Use:   "position",
		Short: "Compute liquidity and token amounts for a position",
		RunE:  runPosition,
	}

	positionCmd.Flags().String("sqrt-price-x96", "", "current sqrtPriceX96 (decimal string)")
	positionCmd.Flags().Int("tick-lower", 0, "lower tick of the range")
	positionCmd.Flags().Int("tick-upper", 0, "upper tick of the range")
	positionCmd.Flags().Int("fee", 3000, "fee tier (100, 500, 3000, 10000)")
	positionCmd.Flags().String("amount0", "", "token0 budget (decimal string)")
	positionCmd.Flags().String("amount1", "", "token1 budget (decimal string)")
	positionCmd.Flags().String("liquidity", "", "liquidity to resolve into amounts (decimal string)")

	root.AddCommand(positionCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute metrics for position snapshots",
		RunE:  runAnalyze,
	}

	analyzeCmd.Flags().String("in", "", "input position snapshots JSONL")
	analyzeCmd.Flags().String("out", "./data/position_metrics.jsonl", "output metrics JSONL path")
	analyzeCmd.Flags().String("pg-dsn", "", "optional Postgres DSN")
	analyzeCmd.Flags().Int("batch-size", 1000, "batch size for writes")
	analyzeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(analyzeCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
