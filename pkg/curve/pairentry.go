package curve

import "github.com/elasticamm/ammcore/pkg/decimalx"

// calculateQty is the shared ratio primitive underlying both
// CalculateQuoteTokenQty and CalculateBaseTokenQty:
//
//	tokenBQty = tokenASwapQty * tokenBReserveQty / tokenAReserveQty   (ROUND_DOWN 18dp)
//
// A non-positive tokenASwapQty is rejected on its own, independent of
// whichever caller-declared minimum the wrapping function also checks.
func calculateQty(tokenASwapQty, tokenAReserveQty, tokenBReserveQty decimalx.Decimal) (decimalx.Decimal, error) {
	if tokenASwapQty.LessThanOrEqual(decimalx.Zero()) {
		return decimalx.Decimal{}, ErrInsufficientQty
	}
	if err := validateReserve(tokenAReserveQty); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateReserve(tokenBReserveQty); err != nil {
		return decimalx.Decimal{}, err
	}

	tokenBQty := tokenASwapQty.Mul(tokenBReserveQty)
	return tokenBQty.DivRound(tokenAReserveQty, wadPlaces, decimalx.RoundDown)
}

// CalculateQuoteTokenQty computes the quote-token quantity that preserves
// the internal ratio for a given base-token contribution:
//
//	requiredQuote = baseTokenQty * internalQuote / internalBase   (ROUND_DOWN 18dp)
//
// Preserves a documented quirk of the source: the guard rejecting
// non-positive inputs uses "baseTokenQty <= 0 AND quoteTokenQtyMin <= 0"
// rather than the seemingly-intended "baseTokenQty <= 0 OR quoteTokenQtyMin
// < 0". This is almost certainly a defect upstream, but quoting semantics
// must reproduce on-chain behavior bit-for-bit, so it is implemented
// as-is rather than "fixed".
func CalculateQuoteTokenQty(baseTokenQty, quoteTokenQtyMin, internalBase, internalQuote decimalx.Decimal) (decimalx.Decimal, error) {
	if baseTokenQty.LessThanOrEqual(decimalx.Zero()) && quoteTokenQtyMin.LessThanOrEqual(decimalx.Zero()) {
		return decimalx.Decimal{}, ErrInsufficientTokenQty
	}

	return calculateQty(baseTokenQty, internalBase, internalQuote)
}

// CalculateBaseTokenQty computes the base-token quantity that preserves the
// internal ratio for a given quote-token contribution. Symmetric to
// CalculateQuoteTokenQty, reproducing the same guard quirk in the
// quote/base-swapped direction.
func CalculateBaseTokenQty(quoteTokenQty, baseTokenQtyMin, internalBase, internalQuote decimalx.Decimal) (decimalx.Decimal, error) {
	if quoteTokenQty.LessThanOrEqual(decimalx.Zero()) && baseTokenQtyMin.LessThanOrEqual(decimalx.Zero()) {
		return decimalx.Decimal{}, ErrInsufficientTokenQty
	}

	return calculateQty(quoteTokenQty, internalQuote, internalBase)
}

// CalculateRequiredPair computes the (base, quote) contribution pair that
// preserves the internal ratio, given a provider's desired amounts and
// declared minimums:
//
//   - Compute requiredQuote for baseDesired. If requiredQuote <= quoteDesired,
//     use (baseDesired, requiredQuote); reject if requiredQuote < quoteMin.
//   - Otherwise compute requiredBase for quoteDesired and use
//     (requiredBase, quoteDesired); reject if requiredBase < baseMin.
func CalculateRequiredPair(baseDesired, quoteDesired, baseMin, quoteMin decimalx.Decimal, internal InternalBalances) (base, quote decimalx.Decimal, err error) {
	requiredQuote, err := CalculateQuoteTokenQty(baseDesired, quoteMin, internal.BaseTokenReserveQty, internal.QuoteTokenReserveQty)
	if err != nil {
		return decimalx.Decimal{}, decimalx.Decimal{}, err
	}

	if requiredQuote.LessThanOrEqual(quoteDesired) {
		if requiredQuote.LessThan(quoteMin) {
			return decimalx.Decimal{}, decimalx.Decimal{}, ErrInsufficientQuoteQty
		}
		return baseDesired, requiredQuote, nil
	}

	requiredBase, err := CalculateBaseTokenQty(quoteDesired, baseMin, internal.BaseTokenReserveQty, internal.QuoteTokenReserveQty)
	if err != nil {
		return decimalx.Decimal{}, decimalx.Decimal{}, err
	}
	if requiredBase.LessThan(baseMin) {
		return decimalx.Decimal{}, decimalx.Decimal{}, ErrInsufficientBaseQty
	}
	return requiredBase, quoteDesired, nil
}

// CalculateLiquidityTokenQtyForDoubleAssetEntry computes the LP tokens
// issued for a double-asset contribution against an established pool:
//
//	deltaLP = quoteContributed * lpSupply / externalQuote   (ROUND_DOWN 18dp)
//
// Truncated at 18dp, whereas single-asset LP issuance (gammaLiquidity)
// truncates to 0dp.
func CalculateLiquidityTokenQtyForDoubleAssetEntry(quoteContributed, lpSupply, externalQuote decimalx.Decimal) (decimalx.Decimal, error) {
	if err := validateReserve(externalQuote); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateNonNegative(quoteContributed); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateNonNegative(lpSupply); err != nil {
		return decimalx.Decimal{}, err
	}

	lp := quoteContributed.Mul(lpSupply)
	return lp.DivRound(externalQuote, wadPlaces, decimalx.RoundDown)
}

// CalculateFirstLiquidityTokenQty computes LP issuance for the very first
// deposit into an empty pool: the geometric mean of the contributed
// amounts. Both reserves are taken as-is; there is no existing ratio to
// preserve.
func CalculateFirstLiquidityTokenQty(baseDesired, quoteDesired decimalx.Decimal) (decimalx.Decimal, error) {
	if baseDesired.LessThanOrEqual(decimalx.Zero()) {
		return decimalx.Decimal{}, ErrInsufficientBaseQtyDesired
	}
	if quoteDesired.LessThanOrEqual(decimalx.Zero()) {
		return decimalx.Decimal{}, ErrInsufficientQuoteQtyDesired
	}

	product := baseDesired.Mul(quoteDesired)
	return product.Sqrt()
}
