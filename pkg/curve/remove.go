package curve

import "github.com/elasticamm/ammcore/pkg/decimalx"

// RemoveLiquidity computes the pro-rata reserve share owed to a redeemer,
// reduced by a slippage floor:
//
//	ratio        = lpToRedeem / lpSupply
//	slipMult     = 1 - slip%/100
//	baseReceived = externalBase  * ratio * slipMult
//	quoteReceived = externalQuote * ratio * slipMult
//
// The returned amounts are minimums: the caller passes them on-chain as
// baseMin/quoteMin so the transaction reverts if reserves move adversely
// between quoting and execution.
func RemoveLiquidity(lpToRedeem, lpSupply, externalBase, externalQuote, slippagePercent decimalx.Decimal) (TokenAmounts, error) {
	if err := validateNonNegative(lpToRedeem); err != nil {
		return TokenAmounts{}, err
	}
	if err := validateReserve(lpSupply); err != nil {
		return TokenAmounts{}, err
	}
	if err := validateNonNegative(externalBase); err != nil {
		return TokenAmounts{}, err
	}
	if err := validateNonNegative(externalQuote); err != nil {
		return TokenAmounts{}, err
	}
	if slippagePercent.IsNegative() {
		return TokenAmounts{}, ErrNegativeInput
	}

	ratio, err := lpToRedeem.Div(lpSupply)
	if err != nil {
		return TokenAmounts{}, err
	}

	slipFraction, err := slippagePercent.Div(decimalx.New(100))
	if err != nil {
		return TokenAmounts{}, err
	}
	slipMult := decimalx.One().Sub(slipFraction)

	baseReceived := externalBase.Mul(ratio).Mul(slipMult).Round(wadPlaces, decimalx.RoundDown)
	quoteReceived := externalQuote.Mul(ratio).Mul(slipMult).Round(wadPlaces, decimalx.RoundDown)

	return TokenAmounts{
		BaseTokenQty:  baseReceived,
		QuoteTokenQty: quoteReceived,
	}, nil
}
