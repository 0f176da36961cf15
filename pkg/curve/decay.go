package curve

import "github.com/elasticamm/ammcore/pkg/decimalx"

// IsSufficientDecayPresent classifies whether externalBase has diverged
// from internal.BaseTokenReserveQty by enough to require rebalancing.
// Returns true iff:
//
//	|externalBase - internalBase| / (internalBase / internalQuote) > 1
//
// i.e. the absolute base divergence, re-expressed in quote-token units at
// the internal price ratio, exceeds one unit. Below this threshold decay is
// ignored and liquidity entry proceeds as a simple double-asset add.
// Exactly-at-threshold (== 1) is NOT sufficient — the comparison is a
// strict greater-than.
func IsSufficientDecayPresent(externalBase decimalx.Decimal, internal InternalBalances) (bool, error) {
	if err := validateReserve(internal.BaseTokenReserveQty); err != nil {
		return false, err
	}
	if err := validateReserve(internal.QuoteTokenReserveQty); err != nil {
		return false, err
	}
	if externalBase.IsNegative() {
		return false, ErrNegativeInput
	}

	omega, err := internal.BaseTokenReserveQty.Div(internal.QuoteTokenReserveQty)
	if err != nil {
		return false, err
	}
	if omega.IsZero() {
		return false, ErrInsufficientLiquidity
	}

	divergence := externalBase.Sub(internal.BaseTokenReserveQty).Abs()
	ratio, err := divergence.Div(omega)
	if err != nil {
		return false, err
	}

	return ratio.GreaterThan(decimalx.One()), nil
}

// decayDirection classifies which side of the curve is in decay, given
// externalBase relative to the internal base reserve.
type decayDirection int

const (
	// decayNone indicates externalBase == internal base reserve.
	decayNone decayDirection = iota
	// decayQuote indicates a rebase-down: externalBase < internalBase, so
	// the curve claims more base than exists and new base tokens are
	// needed to close the gap.
	decayQuote
	// decayBase indicates a rebase-up: externalBase > internalBase, so
	// surplus base tokens exist that are not yet priced in and new quote
	// tokens are needed to absorb them.
	decayBase
)

// classifyDecay determines which decay branch, if any, applies.
func classifyDecay(externalBase decimalx.Decimal, internal InternalBalances) decayDirection {
	if externalBase.GreaterThan(internal.BaseTokenReserveQty) {
		return decayBase
	}
	if externalBase.LessThan(internal.BaseTokenReserveQty) {
		return decayQuote
	}
	return decayNone
}
