package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"positionScope/internal/render"
	"positionScope/internal/tickmath"
)

func main() {
	root := &cobra.Command{
		Use:          "descriptor",
		Short:        "Position descriptor string renderer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render position records into descriptor metadata",
		RunE:  runRender,
	}

	renderCmd.Flags().String("in", "", "input positions JSONL")
	renderCmd.Flags().String("out", "./data/descriptors.jsonl", "output descriptors JSONL")
	renderCmd.Flags().String("errors", "./data/render_errors.jsonl", "render errors JSONL")
	renderCmd.Flags().String("rpc", "", "RPC URL for resolving missing token metadata")
	renderCmd.Flags().String("pg-dsn", "", "Postgres DSN (optional second sink)")
	renderCmd.Flags().Int("batch-size", 500, "records per sink batch")
	renderCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(renderCmd)

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Render the price string at a single tick",
		RunE:  runPrice,
	}

	priceCmd.Flags().Int32("tick", 0, "tick index")
	priceCmd.Flags().Int32("tick-spacing", 60, "tick spacing of the pool")
	priceCmd.Flags().Uint8("base-decimals", 18, "base token decimals")
	priceCmd.Flags().Uint8("quote-decimals", 18, "quote token decimals")
	priceCmd.Flags().Bool("flip", false, "invert the price orientation")

	root.AddCommand(priceCmd)

	feeCmd := &cobra.Command{
		Use:   "fee",
		Short: "Render the percent string for a fee amount",
		RunE:  runFee,
	}

	feeCmd.Flags().Uint32("fee", 0, "fee in parts-per-million units (10000 = 1%)")

	root.AddCommand(feeCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPrice(cmd *cobra.Command, _ []string) error {
	tick, _ := cmd.Flags().GetInt32("tick")
	tickSpacing, _ := cmd.Flags().GetInt32("tick-spacing")
	baseDecimals, _ := cmd.Flags().GetUint8("base-decimals")
	quoteDecimals, _ := cmd.Flags().GetUint8("quote-decimals")
	flip, _ := cmd.Flags().GetBool("flip")

	out, err := render.TickToDecimalString(tickmath.GetSqrtRatioAtTick, tick, tickSpacing, baseDecimals, quoteDecimals, flip)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runFee(cmd *cobra.Command, _ []string) error {
	fee, _ := cmd.Flags().GetUint32("fee")
	if fee >= 1<<24 {
		return fmt.Errorf("fee exceeds uint24: %d", fee)
	}
	fmt.Println(render.FeeToPercentString(fee))
	return nil
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
