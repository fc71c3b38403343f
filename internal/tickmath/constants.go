package tickmath

import "math/big"

// Tick bounds from the V3 core TickMath library.
const (
	MinTick = -887272
	MaxTick = 887272
)

// tickBase is the per-tick price factor: price = tickBase^tick.
const tickBase = 1.0001

var (
	// Q96 is the fixed-point scale of sqrtPriceX96 (2^96).
	Q96 = new(big.Int).Lsh(big.NewInt(1), 96)

	// Q128 is the fixed-point scale of fee growth accumulators (2^128).
	Q128 = new(big.Int).Lsh(big.NewInt(1), 128)

	// Q192 is Q96 squared, the scale of a squared sqrt price.
	Q192 = new(big.Int).Lsh(big.NewInt(1), 192)

	// MinSqrtRatio is the sqrt ratio at MinTick.
	MinSqrtRatio = big.NewInt(4295128739)

	// MaxSqrtRatio is the sqrt ratio at MaxTick.
	MaxSqrtRatio = mustBig("1461446703485210103287273052203988822378723970342")

	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// tickSpacings maps a fee tier (hundredths of a bip) to its tick spacing.
var tickSpacings = map[int]int{
	100:   1,
	500:   10,
	3000:  60,
	10000: 200,
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("tickmath: invalid big integer literal " + s)
	}
	return n
}
