package curve

import "github.com/elasticamm/ammcore/pkg/decimalx"

// CalculateDaoLPFee computes the DAO's growth-in-k liquidity fee, minted as
// LP dilution rather than paid from reserves:
//
//	rootK     = sqrt(internalBase * internalQuote)
//	rootKLast = sqrt(kLast)
//	if rootK > rootKLast:
//	    fee = lpSupply * (rootK - rootKLast) / (rootK*5 + rootKLast)
//	else fee = 0
//
// The denominator factor of 5 mints the DAO one sixth of the growth in
// sqrt(k) since the last checkpoint, the same constant Uniswap V2 uses for
// its protocol fee; see DESIGN.md. It is kept exactly as on-chain because
// quoting must match on-chain minting bit-for-bit.
func CalculateDaoLPFee(internal InternalBalances, lpSupply decimalx.Decimal) (decimalx.Decimal, error) {
	if err := validateNonNegative(internal.BaseTokenReserveQty); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateNonNegative(internal.QuoteTokenReserveQty); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateNonNegative(internal.KLast); err != nil {
		return decimalx.Decimal{}, err
	}

	rootK, err := internal.BaseTokenReserveQty.Mul(internal.QuoteTokenReserveQty).Sqrt()
	if err != nil {
		return decimalx.Decimal{}, err
	}
	rootKLast, err := internal.KLast.Sqrt()
	if err != nil {
		return decimalx.Decimal{}, err
	}

	if !rootK.GreaterThan(rootKLast) {
		return decimalx.Zero(), nil
	}

	numerator := lpSupply.Mul(rootK.Sub(rootKLast))
	denominator := rootK.Mul(decimalx.New(5)).Add(rootKLast)
	if denominator.IsZero() {
		return decimalx.Decimal{}, ErrInsufficientLiquidity
	}

	return numerator.DivRound(denominator, 0, decimalx.RoundDown)
}

// AddLiquidity is the add-liquidity orchestrator: it composes the decay
// detector (C3), single-asset entry (C4), and double-asset entry (C5) into
// the full decision tree a liquidity deposit follows.
//
// States:
//
//  1. lpSupply == 0: INITIAL, delegate entirely to the first-ever-liquidity
//     branch of double-asset entry.
//  2. lpSupply > 0:
//     - Mint the DAO's growth-in-k fee and fold it into the LP supply used
//       for every downstream computation in this call.
//     - If decay is not sufficient, PAIR-ONLY: a plain double-asset add.
//     - Else if externalBase > internal base reserve, BASE-DECAY: resolve
//       via quote-side single-asset entry.
//     - Else QUOTE-DECAY: resolve via base-side single-asset entry.
//     - If desire remains on both sides after decay resolution,
//       PAIR-RESIDUAL: a further double-asset add against the post-decay
//       internal balances, for the undesired remainder.
//     - Validate the accumulated contribution against the caller's
//       declared minimums.
//
// Returns the composed result, the updated internal balances (decay
// resolution and any pair entry folded in, kLast refreshed to the new
// product), and an error from whichever stage failed first.
func AddLiquidity(
	externalBase, externalQuote decimalx.Decimal,
	baseDesired, quoteDesired, baseMin, quoteMin decimalx.Decimal,
	lpSupply decimalx.Decimal,
	internal InternalBalances,
) (PairEntryResult, InternalBalances, error) {
	if lpSupply.IsZero() {
		lp, err := CalculateFirstLiquidityTokenQty(baseDesired, quoteDesired)
		if err != nil {
			return PairEntryResult{}, internal, err
		}
		updated := InternalBalances{
			BaseTokenReserveQty:  baseDesired,
			QuoteTokenReserveQty: quoteDesired,
			KLast:                baseDesired.Mul(quoteDesired),
		}
		return PairEntryResult{
			BaseTokenQty:         baseDesired,
			QuoteTokenQty:        quoteDesired,
			LiquidityTokenQty:    lp,
			LiquidityTokenFeeQty: decimalx.Zero(),
		}, updated, nil
	}

	fee, err := CalculateDaoLPFee(internal, lpSupply)
	if err != nil {
		return PairEntryResult{}, internal, err
	}
	runningSupply := lpSupply.Add(fee)

	decayPresent, err := IsSufficientDecayPresent(externalBase, internal)
	if err != nil {
		return PairEntryResult{}, internal, err
	}

	updatedInternal := internal
	baseAccum, quoteAccum, lpAccum := decimalx.Zero(), decimalx.Zero(), decimalx.Zero()

	switch {
	case !decayPresent:
		base, quote, pairErr := CalculateRequiredPair(baseDesired, quoteDesired, baseMin, quoteMin, internal)
		if pairErr != nil {
			return PairEntryResult{}, internal, pairErr
		}
		lpIssued, lpErr := CalculateLiquidityTokenQtyForDoubleAssetEntry(quote, runningSupply, externalQuote)
		if lpErr != nil {
			return PairEntryResult{}, internal, lpErr
		}
		baseAccum, quoteAccum, lpAccum = base, quote, lpIssued
		updatedInternal.BaseTokenReserveQty = internal.BaseTokenReserveQty.Add(base)
		updatedInternal.QuoteTokenReserveQty = internal.QuoteTokenReserveQty.Add(quote)

	case externalBase.GreaterThan(internal.BaseTokenReserveQty):
		single, postDecay, decayErr := AddQuoteToResolveBaseDecay(quoteDesired, decimalx.Zero(), externalBase, runningSupply, internal)
		if decayErr != nil {
			return PairEntryResult{}, internal, decayErr
		}
		quoteFromDecay := single.SingleTokenQty
		baseFromDecay := decimalx.Zero()
		updatedInternal = postDecay
		runningSupply = runningSupply.Add(single.LiquidityTokenQty)
		baseAccum, quoteAccum, lpAccum = baseFromDecay, quoteFromDecay, single.LiquidityTokenQty

		if quoteFromDecay.LessThan(quoteDesired) && baseFromDecay.LessThan(baseDesired) {
			resBase, resQuote, resErr := CalculateRequiredPair(
				baseDesired.Sub(baseFromDecay), quoteDesired.Sub(quoteFromDecay),
				decimalx.Zero(), decimalx.Zero(), updatedInternal,
			)
			if resErr != nil {
				return PairEntryResult{}, internal, resErr
			}
			resLP, resLPErr := CalculateLiquidityTokenQtyForDoubleAssetEntry(resQuote, runningSupply, externalQuote)
			if resLPErr != nil {
				return PairEntryResult{}, internal, resLPErr
			}
			baseAccum = baseAccum.Add(resBase)
			quoteAccum = quoteAccum.Add(resQuote)
			lpAccum = lpAccum.Add(resLP)
			updatedInternal.BaseTokenReserveQty = updatedInternal.BaseTokenReserveQty.Add(resBase)
			updatedInternal.QuoteTokenReserveQty = updatedInternal.QuoteTokenReserveQty.Add(resQuote)
		}

	default:
		single, postDecay, decayErr := AddBaseToResolveQuoteDecay(baseDesired, decimalx.Zero(), externalBase, runningSupply, internal)
		if decayErr != nil {
			return PairEntryResult{}, internal, decayErr
		}
		baseFromDecay := single.SingleTokenQty
		quoteFromDecay := decimalx.Zero()
		updatedInternal = postDecay
		runningSupply = runningSupply.Add(single.LiquidityTokenQty)
		baseAccum, quoteAccum, lpAccum = baseFromDecay, quoteFromDecay, single.LiquidityTokenQty

		if quoteFromDecay.LessThan(quoteDesired) && baseFromDecay.LessThan(baseDesired) {
			resBase, resQuote, resErr := CalculateRequiredPair(
				baseDesired.Sub(baseFromDecay), quoteDesired.Sub(quoteFromDecay),
				decimalx.Zero(), decimalx.Zero(), updatedInternal,
			)
			if resErr != nil {
				return PairEntryResult{}, internal, resErr
			}
			resLP, resLPErr := CalculateLiquidityTokenQtyForDoubleAssetEntry(resQuote, runningSupply, externalQuote)
			if resLPErr != nil {
				return PairEntryResult{}, internal, resLPErr
			}
			baseAccum = baseAccum.Add(resBase)
			quoteAccum = quoteAccum.Add(resQuote)
			lpAccum = lpAccum.Add(resLP)
			updatedInternal.BaseTokenReserveQty = updatedInternal.BaseTokenReserveQty.Add(resBase)
			updatedInternal.QuoteTokenReserveQty = updatedInternal.QuoteTokenReserveQty.Add(resQuote)
		}
	}

	if baseAccum.LessThan(baseMin) {
		return PairEntryResult{}, internal, ErrInsufficientBaseQty
	}
	if quoteAccum.LessThan(quoteMin) {
		return PairEntryResult{}, internal, ErrInsufficientQuoteQty
	}

	updatedInternal.KLast = updatedInternal.BaseTokenReserveQty.Mul(updatedInternal.QuoteTokenReserveQty)

	return PairEntryResult{
		BaseTokenQty:         baseAccum,
		QuoteTokenQty:        quoteAccum,
		LiquidityTokenQty:    lpAccum,
		LiquidityTokenFeeQty: fee,
	}, updatedInternal, nil
}
