package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickScope/internal/position"
	"tickScope/internal/tickmath"
)

type rangeResult struct {
	TickLower         int     `json:"tick_lower"`
	TickUpper         int     `json:"tick_upper"`
	PriceLower        float64 `json:"price_lower"`
	PriceUpper        float64 `json:"price_upper"`
	InRange           bool    `json:"in_range"`
	PercentInRange    float64 `json:"percent_in_range"`
	CapitalEfficiency float64 `json:"capital_efficiency"`
}

func runRange(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	currentTick, _ := flags.GetInt("current-tick")
	fee, _ := flags.GetInt("fee")

	fullRange, _ := flags.GetBool("full-range")

	var (
		tickRange position.TickRange
		err       error
	)
	switch {
	case fullRange:
		tickRange, err = position.FullRangeTicks(fee)
	case flags.Changed("volatility"):
		volatility, _ := flags.GetFloat64("volatility")
		days, _ := flags.GetFloat64("days")
		confidence, _ := flags.GetFloat64("confidence")
		tickRange, err = position.SuggestTickRange(currentTick, volatility, days, confidence, fee)
	case flags.Changed("percent"):
		percent, _ := flags.GetFloat64("percent")
		tickRange, err = position.CalculateTickRange(currentTick, percent, fee)
	default:
		return fmt.Errorf("one of --percent, --volatility or --full-range is required")
	}
	if err != nil {
		return err
	}

	dist, err := position.Distance(currentTick, tickRange.TickLower, tickRange.TickUpper)
	if err != nil {
		return err
	}
	efficiency, err := position.CapitalEfficiency(tickRange.TickLower, tickRange.TickUpper)
	if err != nil {
		return err
	}

	return printJSON(rangeResult{
		TickLower:         tickRange.TickLower,
		TickUpper:         tickRange.TickUpper,
		PriceLower:        tickmath.TickToPrice(tickRange.TickLower),
		PriceUpper:        tickmath.TickToPrice(tickRange.TickUpper),
		InRange:           position.InRange(tickRange.TickLower, tickRange.TickUpper, currentTick),
		PercentInRange:    dist.PercentInRange,
		CapitalEfficiency: efficiency,
	})
}
