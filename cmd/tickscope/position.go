package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"tickScope/internal/position"
	"tickScope/internal/tickmath"
)

type positionResult struct {
	TickLower    int    `json:"tick_lower"`
	TickUpper    int    `json:"tick_upper"`
	SqrtPriceX96 string `json:"sqrt_price_x96"`
	Liquidity    string `json:"liquidity"`
	Amount0      string `json:"amount0"`
	Amount1      string `json:"amount1"`
}

func runPosition(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	fee, _ := flags.GetInt("fee")
	tickLower, _ := flags.GetInt("tick-lower")
	tickUpper, _ := flags.GetInt("tick-upper")

	spacing, err := tickmath.TickSpacingForFee(fee)
	if err != nil {
		return err
	}
	if err := tickmath.ValidateTicks(tickLower, tickUpper, spacing); err != nil {
		return err
	}

	rawSqrt, _ := flags.GetString("sqrt-price-x96")
	if rawSqrt == "" {
		return fmt.Errorf("--sqrt-price-x96 is required")
	}
	sqrtPrice, err := tickmath.ParseSqrtPriceX96(rawSqrt)
	if err != nil {
		return err
	}

	sqrtLower, err := tickmath.TickToSqrtPriceX96(tickLower)
	if err != nil {
		return err
	}
	sqrtUpper, err := tickmath.TickToSqrtPriceX96(tickUpper)
	if err != nil {
		return err
	}

	var liquidity *big.Int
	if raw, _ := flags.GetString("liquidity"); raw != "" {
		liquidity, err = parseAmountFlag("liquidity", raw)
		if err != nil {
			return err
		}
	} else {
		rawAmount0, _ := flags.GetString("amount0")
		rawAmount1, _ := flags.GetString("amount1")
		if rawAmount0 == "" || rawAmount1 == "" {
			return fmt.Errorf("either --liquidity or both --amount0 and --amount1 are required")
		}
		amount0, err := parseAmountFlag("amount0", rawAmount0)
		if err != nil {
			return err
		}
		amount1, err := parseAmountFlag("amount1", rawAmount1)
		if err != nil {
			return err
		}
		liquidity = position.LiquidityForAmounts(sqrtPrice, sqrtLower, sqrtUpper, amount0, amount1)
	}

	amounts := position.AmountsForLiquidity(sqrtPrice, sqrtLower, sqrtUpper, liquidity)

	return printJSON(positionResult{
		TickLower:    tickLower,
		TickUpper:    tickUpper,
		SqrtPriceX96: sqrtPrice.String(),
		Liquidity:    liquidity.String(),
		Amount0:      amounts.Amount0.String(),
		Amount1:      amounts.Amount1.String(),
	})
}

func parseAmountFlag(name, raw string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("--%s: invalid decimal integer %q", name, raw)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("--%s must be non-negative", name)
	}
	return value, nil
}
