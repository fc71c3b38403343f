package position

import (
	"math/big"

	"tickScope/internal/tickmath"
)

// TokenAmounts holds the token sides of a position. At most one side is
// nonzero when the current price sits outside the position's range.
type TokenAmounts struct {
	Amount0 *big.Int
	Amount1 *big.Int
}

// mulDiv computes a * b / c at full width, rounding down.
func mulDiv(a, b, c *big.Int) *big.Int {
	product := new(big.Int).Mul(a, b)
	return product.Div(product, c)
}

// LiquidityForAmounts returns the maximum liquidity obtainable from the given
// token budgets over [sqrtPriceA, sqrtPriceB]. Below the range only amount0
// matters, above it only amount1; in range each side yields a candidate and
// the smaller one wins, since the token that runs out first caps the position.
func LiquidityForAmounts(sqrtPrice, sqrtPriceA, sqrtPriceB, amount0, amount1 *big.Int) *big.Int {
	if sqrtPriceA.Cmp(sqrtPriceB) > 0 {
		sqrtPriceA, sqrtPriceB = sqrtPriceB, sqrtPriceA
	}

	switch {
	case sqrtPrice.Cmp(sqrtPriceA) <= 0:
		return liquidityForAmount0(sqrtPriceA, sqrtPriceB, amount0)
	case sqrtPrice.Cmp(sqrtPriceB) < 0:
		liquidity0 := liquidityForAmount0(sqrtPrice, sqrtPriceB, amount0)
		liquidity1 := liquidityForAmount1(sqrtPriceA, sqrtPrice, amount1)
		if liquidity0.Cmp(liquidity1) < 0 {
			return liquidity0
		}
		return liquidity1
	default:
		return liquidityForAmount1(sqrtPriceA, sqrtPriceB, amount1)
	}
}

// L = amount0 * (sqrtA * sqrtB / Q96) / (sqrtB - sqrtA)
func liquidityForAmount0(sqrtPriceA, sqrtPriceB, amount0 *big.Int) *big.Int {
	intermediate := mulDiv(sqrtPriceA, sqrtPriceB, tickmath.Q96)
	return mulDiv(amount0, intermediate, new(big.Int).Sub(sqrtPriceB, sqrtPriceA))
}

// L = amount1 * Q96 / (sqrtB - sqrtA)
func liquidityForAmount1(sqrtPriceA, sqrtPriceB, amount1 *big.Int) *big.Int {
	return mulDiv(amount1, tickmath.Q96, new(big.Int).Sub(sqrtPriceB, sqrtPriceA))
}

// AmountsForLiquidity is the inverse of LiquidityForAmounts: the token
// amounts a position of the given liquidity holds at the current price.
func AmountsForLiquidity(sqrtPrice, sqrtPriceA, sqrtPriceB, liquidity *big.Int) TokenAmounts {
	if sqrtPriceA.Cmp(sqrtPriceB) > 0 {
		sqrtPriceA, sqrtPriceB = sqrtPriceB, sqrtPriceA
	}

	amounts := TokenAmounts{Amount0: new(big.Int), Amount1: new(big.Int)}
	switch {
	case sqrtPrice.Cmp(sqrtPriceA) <= 0:
		amounts.Amount0 = amount0ForLiquidity(sqrtPriceA, sqrtPriceB, liquidity)
	case sqrtPrice.Cmp(sqrtPriceB) < 0:
		amounts.Amount0 = amount0ForLiquidity(sqrtPrice, sqrtPriceB, liquidity)
		amounts.Amount1 = amount1ForLiquidity(sqrtPriceA, sqrtPrice, liquidity)
	default:
		amounts.Amount1 = amount1ForLiquidity(sqrtPriceA, sqrtPriceB, liquidity)
	}
	return amounts
}

// amount0 = (L << 96) * (sqrtB - sqrtA) / sqrtB / sqrtA
func amount0ForLiquidity(sqrtPriceA, sqrtPriceB, liquidity *big.Int) *big.Int {
	shifted := new(big.Int).Lsh(liquidity, 96)
	numerator := mulDiv(shifted, new(big.Int).Sub(sqrtPriceB, sqrtPriceA), sqrtPriceB)
	return numerator.Div(numerator, sqrtPriceA)
}

// amount1 = L * (sqrtB - sqrtA) / Q96
func amount1ForLiquidity(sqrtPriceA, sqrtPriceB, liquidity *big.Int) *big.Int {
	return mulDiv(liquidity, new(big.Int).Sub(sqrtPriceB, sqrtPriceA), tickmath.Q96)
}
