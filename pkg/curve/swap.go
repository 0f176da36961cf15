package curve

import "github.com/elasticamm/ammcore/pkg/decimalx"

// wadPlaces is the decimal-places bound for token quantities (18dp, the
// on-chain scale for WAD-denominated integers).
const wadPlaces = 18

// CalculateFees returns the fee charged on swapAmount at feeBP basis points.
// fee = swapAmount * feeBP / 10000.
func CalculateFees(swapAmount decimalx.Decimal, feeBP BasisPoints) (decimalx.Decimal, error) {
	if swapAmount.IsNegative() {
		return decimalx.Decimal{}, ErrNegativeInput
	}
	fee, err := swapAmount.Mul(feeBP.Decimal()).DivRound(decimalx.New(decimalx.BasisPointsDenominator), wadPlaces, decimalx.RoundDown)
	if err != nil {
		return decimalx.Decimal{}, err
	}
	return fee, nil
}

// QtyOutAfterFees implements the constant-product rule with an input-side
// fee:
//
//	diffBP       = 10000 - feeBP
//	inQtyLessFee = inQty * diffBP                    (ROUND_DOWN 18dp)
//	numerator    = inQtyLessFee * outReserve          (ROUND_DOWN 18dp)
//	denominator  = inReserve * 10000 + inQtyLessFee
//	result       = numerator / denominator            (ROUND_DOWN 0dp)
//
// The final result is truncated to integer (0dp) because on-chain reserves
// are integer wei; truncation never produces ties.
func QtyOutAfterFees(inQty, inReserve, outReserve decimalx.Decimal, feeBP BasisPoints) (decimalx.Decimal, error) {
	if err := validateNonNegative(inQty); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateReserve(inReserve); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateReserve(outReserve); err != nil {
		return decimalx.Decimal{}, err
	}

	diffBP := decimalx.New(decimalx.BasisPointsDenominator).Sub(feeBP.Decimal())

	inQtyLessFee := inQty.Mul(diffBP).Round(wadPlaces, decimalx.RoundDown)
	numerator := inQtyLessFee.Mul(outReserve).Round(wadPlaces, decimalx.RoundDown)

	denominator := inReserve.Mul(decimalx.New(decimalx.BasisPointsDenominator)).Add(inQtyLessFee)
	if denominator.IsZero() {
		return decimalx.Decimal{}, ErrInsufficientLiquidity
	}

	result, err := numerator.DivRound(denominator, 0, decimalx.RoundDown)
	if err != nil {
		return decimalx.Decimal{}, err
	}
	return result, nil
}

// CalculateBaseOutput computes the base-token output for a quote-token
// input, accounting for quote decay. When externalBase < internal base
// reserve (a rebase-down shrank the real reserve below the virtual curve),
// the curve is rescaled before applying the fee formula:
//
//	Omega        = internalBase / internalQuote
//	impliedQuote = externalBase / Omega
//	out          = QtyOutAfterFees(quoteIn, impliedQuote, externalBase, feeBP)
//
// Otherwise the usual formula is applied directly against the internal
// balances. Rescaling preserves the quote-token price of base during a
// rebase-down; computing against the unmodified curve would over-price the
// output. baseOutMin is the caller's declared minimum acceptable output;
// a computed output below it fails the quote rather than silently
// returning a worse price than the caller committed to.
func CalculateBaseOutput(quoteIn, baseOutMin, externalBase decimalx.Decimal, internal InternalBalances, feeBP BasisPoints) (decimalx.Decimal, error) {
	if err := validateReserve(internal.BaseTokenReserveQty); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateReserve(internal.QuoteTokenReserveQty); err != nil {
		return decimalx.Decimal{}, err
	}

	var out decimalx.Decimal
	if externalBase.LessThan(internal.BaseTokenReserveQty) {
		omega, err := internal.BaseTokenReserveQty.Div(internal.QuoteTokenReserveQty)
		if err != nil {
			return decimalx.Decimal{}, err
		}
		if omega.IsZero() {
			return decimalx.Decimal{}, ErrInsufficientLiquidity
		}
		impliedQuote, err := externalBase.Div(omega)
		if err != nil {
			return decimalx.Decimal{}, err
		}
		out, err = QtyOutAfterFees(quoteIn, impliedQuote, externalBase, feeBP)
		if err != nil {
			return decimalx.Decimal{}, err
		}
	} else {
		var err error
		out, err = QtyOutAfterFees(quoteIn, internal.QuoteTokenReserveQty, internal.BaseTokenReserveQty, feeBP)
		if err != nil {
			return decimalx.Decimal{}, err
		}
	}

	if out.LessThan(baseOutMin) {
		return decimalx.Decimal{}, ErrInsufficientBaseTokenQty
	}
	return out, nil
}

// CalculateQuoteOutput computes the quote-token output for a base-token
// input against the internal balances directly; no decay rescaling is
// defined for this direction (see ElasticPool.Quote). quoteOutMin is the
// caller's declared minimum acceptable output.
func CalculateQuoteOutput(baseIn, quoteOutMin decimalx.Decimal, internal InternalBalances, feeBP BasisPoints) (decimalx.Decimal, error) {
	out, err := QtyOutAfterFees(baseIn, internal.BaseTokenReserveQty, internal.QuoteTokenReserveQty, feeBP)
	if err != nil {
		return decimalx.Decimal{}, err
	}
	if out.LessThan(quoteOutMin) {
		return decimalx.Decimal{}, ErrInsufficientQuoteTokenQty
	}
	return out, nil
}

// CalculateInputAmountFromOutputAmount inverts QtyOutAfterFees: given a
// desired output and slippage tolerance, solves for the required input.
//
//	numerator        = outQty * inReserve * 10000
//	slipTerm          = outReserve * (slipPercent / 100)
//	denomReserveTerm  = outQty + slipTerm - outReserve
//	denominator       = denomReserveTerm * (10000 - feeBP)
//	inQty             = |numerator / denominator|
//
// denomReserveTerm is negative whenever outQty < outReserve (the common
// case), so the absolute value is taken at the end.
func CalculateInputAmountFromOutputAmount(outQty, outReserve, inReserve decimalx.Decimal, slippagePercent decimalx.Decimal, feeBP BasisPoints) (decimalx.Decimal, error) {
	if err := validateNonNegative(outQty); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateReserve(outReserve); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateReserve(inReserve); err != nil {
		return decimalx.Decimal{}, err
	}
	if slippagePercent.IsNegative() {
		return decimalx.Decimal{}, ErrNegativeInput
	}

	numerator := outQty.Mul(inReserve).Mul(decimalx.New(decimalx.BasisPointsDenominator))

	slipFraction, err := slippagePercent.Div(decimalx.New(100))
	if err != nil {
		return decimalx.Decimal{}, err
	}
	slipTerm := outReserve.Mul(slipFraction)

	denomReserveTerm := outQty.Add(slipTerm).Sub(outReserve)
	diffBP := decimalx.New(decimalx.BasisPointsDenominator).Sub(feeBP.Decimal())
	denominator := denomReserveTerm.Mul(diffBP)

	if denominator.IsZero() {
		return decimalx.Decimal{}, ErrInsufficientLiquidity
	}

	inQty, err := numerator.DivRound(denominator, wadPlaces, decimalx.RoundDown)
	if err != nil {
		return decimalx.Decimal{}, err
	}
	return inQty.Abs(), nil
}

// CalculateExchangeRate returns inReserve / outReserve, unrounded.
func CalculateExchangeRate(inReserve, outReserve decimalx.Decimal) (decimalx.Decimal, error) {
	if err := validateReserve(inReserve); err != nil {
		return decimalx.Decimal{}, err
	}
	if err := validateReserve(outReserve); err != nil {
		return decimalx.Decimal{}, err
	}
	return inReserve.Div(outReserve)
}

// CalculatePriceImpact returns the percentage price impact of a trade of
// inQty against inReserve/outReserve at the given slippage tolerance and
// fee:
//
//	initialRate     = inReserve / outReserve
//	initialOut      = inQty / initialRate
//	outLessFeesSlip = CalculateInputAmountFromOutputAmount's counterpart:
//	                  the actual output after fees and slippage
//	impact          = 100 - (outLessFeesSlip / initialOut * 100)
//
// Always non-negative for a non-trivial trade.
func CalculatePriceImpact(inQty, inReserve, outReserve decimalx.Decimal, slippagePercent decimalx.Decimal, feeBP BasisPoints) (decimalx.Decimal, error) {
	initialRate, err := CalculateExchangeRate(inReserve, outReserve)
	if err != nil {
		return decimalx.Decimal{}, err
	}
	if initialRate.IsZero() {
		return decimalx.Decimal{}, ErrInsufficientLiquidity
	}
	initialOut, err := inQty.Div(initialRate)
	if err != nil {
		return decimalx.Decimal{}, err
	}
	if initialOut.IsZero() {
		return decimalx.Decimal{}, ErrInsufficientLiquidity
	}

	outAfterFees, err := QtyOutAfterFees(inQty, inReserve, outReserve, feeBP)
	if err != nil {
		return decimalx.Decimal{}, err
	}

	slipFraction, err := slippagePercent.Div(decimalx.New(100))
	if err != nil {
		return decimalx.Decimal{}, err
	}
	outLessSlip := outAfterFees.Mul(decimalx.One().Sub(slipFraction))

	ratio, err := outLessSlip.Div(initialOut)
	if err != nil {
		return decimalx.Decimal{}, err
	}

	impact := decimalx.New(100).Sub(ratio.Mul(decimalx.New(100)))
	return impact, nil
}
