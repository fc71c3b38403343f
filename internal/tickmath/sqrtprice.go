package tickmath

import (
	"fmt"
	"math/big"
)

// sqrtRatioMultipliers[i] is sqrt(1.0001^-(2^i)) as a Q128 fixed-point value,
// the precomputed ladder used by the on-chain TickMath library.
var sqrtRatioMultipliers = [20]*big.Int{
	mustHex("fffcb933bd6fad37aa2d162d1a594001"),
	mustHex("fff97272373d413259a46990580e213a"),
	mustHex("fff2e50f5f656932ef12357cf3c7fdcc"),
	mustHex("ffe5caca7e10e4e61c3624eaa0941cd0"),
	mustHex("ffcb9843d60f6159c9db58835c926644"),
	mustHex("ff973b41fa98c081472e6896dfb254c0"),
	mustHex("ff2ea16466c96a3843ec78b326b52861"),
	mustHex("fe5dee046a99a2a811c461f1969c3053"),
	mustHex("fcbe86c7900a88aedcffc83b479aa3a4"),
	mustHex("f987a7253ac413176f2b074cf7815e54"),
	mustHex("f3392b0822b70005940c7a398e4b70f3"),
	mustHex("e7159475a2c29b7443b29c7fa6e889d9"),
	mustHex("d097f3bdfd2022b8845ad8f792aa5825"),
	mustHex("a9f746462d870fdf8a65dc1f90e061e5"),
	mustHex("70d869a156d2a1b890bb3df62baf32f7"),
	mustHex("31be135f97d08fd981231505542fcfa6"),
	mustHex("9aa508b5b7a84e1c677de54f3e99bc9"),
	mustHex("5d6af8dedb81196699c329225ee604"),
	mustHex("2216e584f5fa1ea926041bedfe98"),
	mustHex("48a170391f7dc42444e8fa2"),
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("tickmath: invalid hex literal " + s)
	}
	return n
}

// TickToSqrtPriceX96 returns sqrt(1.0001^tick) * 2^96 as an integer, using the
// same bit-decomposition ladder as the on-chain library so results match the
// protocol exactly. Tick 0 yields exactly 2^96.
func TickToSqrtPriceX96(tick int) (*big.Int, error) {
	if tick < MinTick || tick > MaxTick {
		return nil, fmt.Errorf("tick %d out of range [%d, %d]", tick, MinTick, MaxTick)
	}

	absTick := tick
	if absTick < 0 {
		absTick = -absTick
	}

	// Product over the ladder gives sqrt(1.0001^-absTick) in Q128.
	ratio := new(big.Int).Lsh(big.NewInt(1), 128)
	for i := 0; i < len(sqrtRatioMultipliers); i++ {
		if absTick&(1<<uint(i)) != 0 {
			ratio.Mul(ratio, sqrtRatioMultipliers[i])
			ratio.Rsh(ratio, 128)
		}
	}

	if tick > 0 {
		ratio = new(big.Int).Div(maxUint256, ratio)
	}

	// Q128 -> Q96, rounding up like the on-chain library so the boundary
	// values land on MinSqrtRatio/MaxSqrtRatio.
	remainder := new(big.Int).And(ratio, big.NewInt(0xFFFFFFFF))
	ratio.Rsh(ratio, 32)
	if remainder.Sign() != 0 {
		ratio.Add(ratio, big.NewInt(1))
	}

	return ratio, nil
}

// SqrtPriceX96ToTick returns the tick for a sqrt price. It squares the
// normalized value and floors the log, accepting floating-point precision
// loss; use it for display and estimation, not wei-exact math.
func SqrtPriceX96ToTick(sqrtPriceX96 *big.Int) (int, error) {
	if err := checkSqrtRatio(sqrtPriceX96); err != nil {
		return 0, err
	}

	price := normalizedPrice(sqrtPriceX96)
	return PriceToTick(price)
}

// SqrtPriceX96ToPrice returns the decimal-adjusted token1/token0 price for a
// sqrt price: (sqrtPriceX96 / 2^96)^2 * 10^(decimals0 - decimals1).
func SqrtPriceX96ToPrice(sqrtPriceX96 *big.Int, decimals0, decimals1 int) (float64, error) {
	if err := checkSqrtRatio(sqrtPriceX96); err != nil {
		return 0, err
	}
	return normalizedPrice(sqrtPriceX96) * DecimalAdjustment(decimals0, decimals1), nil
}

// ParseSqrtPriceX96 parses a decimal string into a bounds-checked sqrt price.
// Big integers cross process boundaries as decimal strings since they exceed
// native integer range.
func ParseSqrtPriceX96(s string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid sqrt price string: %q", s)
	}
	if err := checkSqrtRatio(value); err != nil {
		return nil, err
	}
	return value, nil
}

func checkSqrtRatio(sqrtPriceX96 *big.Int) error {
	if sqrtPriceX96 == nil {
		return fmt.Errorf("sqrt price is nil")
	}
	if sqrtPriceX96.Cmp(MinSqrtRatio) < 0 || sqrtPriceX96.Cmp(MaxSqrtRatio) > 0 {
		return fmt.Errorf("sqrt price %s out of range [%s, %s]", sqrtPriceX96, MinSqrtRatio, MaxSqrtRatio)
	}
	return nil
}

func normalizedPrice(sqrtPriceX96 *big.Int) float64 {
	sqrt := new(big.Float).SetInt(sqrtPriceX96)
	sqrt.Quo(sqrt, new(big.Float).SetInt(Q96))
	value, _ := sqrt.Float64()
	return value * value
}
