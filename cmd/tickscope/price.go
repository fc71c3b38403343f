package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickScope/internal/tickmath"
)

type priceResult struct {
	Tick         int     `json:"tick"`
	Price        float64 `json:"price"`
	SqrtPriceX96 string  `json:"sqrt_price_x96"`
	Decimals0    int     `json:"decimals0"`
	Decimals1    int     `json:"decimals1"`
}

func runPrice(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	decimals0, _ := flags.GetInt("decimals0")
	decimals1, _ := flags.GetInt("decimals1")
	adjustment := tickmath.DecimalAdjustment(decimals0, decimals1)

	switch {
	case flags.Changed("tick"):
		tick, _ := flags.GetInt("tick")
		sqrtPrice, err := tickmath.TickToSqrtPriceX96(tick)
		if err != nil {
			return err
		}
		return printJSON(priceResult{
			Tick:         tick,
			Price:        tickmath.TickToPrice(tick) * adjustment,
			SqrtPriceX96: sqrtPrice.String(),
			Decimals0:    decimals0,
			Decimals1:    decimals1,
		})

	case flags.Changed("price"):
		price, _ := flags.GetFloat64("price")
		tick, err := tickmath.PriceToTick(price / adjustment)
		if err != nil {
			return err
		}
		sqrtPrice, err := tickmath.TickToSqrtPriceX96(tick)
		if err != nil {
			return err
		}
		return printJSON(priceResult{
			Tick:         tick,
			Price:        tickmath.TickToPrice(tick) * adjustment,
			SqrtPriceX96: sqrtPrice.String(),
			Decimals0:    decimals0,
			Decimals1:    decimals1,
		})

	case flags.Changed("sqrt-price-x96"):
		raw, _ := flags.GetString("sqrt-price-x96")
		sqrtPrice, err := tickmath.ParseSqrtPriceX96(raw)
		if err != nil {
			return err
		}
		tick, err := tickmath.SqrtPriceX96ToTick(sqrtPrice)
		if err != nil {
			return err
		}
		price, err := tickmath.SqrtPriceX96ToPrice(sqrtPrice, decimals0, decimals1)
		if err != nil {
			return err
		}
		return printJSON(priceResult{
			Tick:         tick,
			Price:        price,
			SqrtPriceX96: sqrtPrice.String(),
			Decimals0:    decimals0,
			Decimals1:    decimals1,
		})

	default:
		return fmt.Errorf("one of --tick, --price or --sqrt-price-x96 is required")
	}
}
