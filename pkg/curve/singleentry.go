package curve

import "github.com/elasticamm/ammcore/pkg/decimalx"

// AddBaseToResolveQuoteDecay computes the token and LP quantities issued
// when a liquidity provider adds base tokens to close a quote-decay gap
// (externalBase < internal.BaseTokenReserveQty, left by a rebase-down).
//
//	maxBase          = internalBase - externalBase
//	base             = min(baseDesired, maxBase)
//	quoteDecayChange = base * (internalQuote / internalBase)
//	quoteDecay       = maxBase * (internalQuote / internalBase)
//
// LP issued via the gamma formula (see gammaLiquidity). Returns the updated
// internal balances with the resolved decay folded in, since the caller
// must see post-decay state before any following pair-entry.
func AddBaseToResolveQuoteDecay(
	baseDesired, baseMin, externalBase, lpSupply decimalx.Decimal,
	internal InternalBalances,
) (SingleEntryResult, InternalBalances, error) {
	if err := validateNonNegative(baseDesired); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := validateNonNegative(baseMin); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := validateReserve(internal.BaseTokenReserveQty); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := validateReserve(internal.QuoteTokenReserveQty); err != nil {
		return SingleEntryResult{}, internal, err
	}

	maxBase := internal.BaseTokenReserveQty.Sub(externalBase)
	if baseMin.GreaterThanOrEqual(maxBase) {
		return SingleEntryResult{}, internal, ErrInsufficientDecay
	}

	base := baseDesired
	if base.GreaterThan(maxBase) {
		base = maxBase
	}

	quoteOverBase, err := internal.QuoteTokenReserveQty.Div(internal.BaseTokenReserveQty)
	if err != nil {
		return SingleEntryResult{}, internal, err
	}

	quoteDecayChange := base.Mul(quoteOverBase)
	if quoteDecayChange.LessThanOrEqual(decimalx.Zero()) {
		return SingleEntryResult{}, internal, ErrInsufficientChangeInDecay
	}

	quoteDecay := maxBase.Mul(quoteOverBase)
	if quoteDecay.LessThanOrEqual(decimalx.Zero()) {
		return SingleEntryResult{}, internal, ErrNoQuoteDecay
	}

	lpIssued, err := gammaLiquidity(base, internal.BaseTokenReserveQty, quoteDecayChange, quoteDecay, lpSupply)
	if err != nil {
		return SingleEntryResult{}, internal, err
	}

	updated := internal
	updated.BaseTokenReserveQty = internal.BaseTokenReserveQty.Add(base)
	updated.QuoteTokenReserveQty = internal.QuoteTokenReserveQty.Add(quoteDecayChange)

	return SingleEntryResult{
		SingleTokenQty:    base,
		LiquidityTokenQty: lpIssued,
	}, updated, nil
}

// AddQuoteToResolveBaseDecay computes the token and LP quantities issued
// when a liquidity provider adds quote tokens to close a base-decay gap
// (externalBase > internal.BaseTokenReserveQty, left by a rebase-up).
// Symmetric to AddBaseToResolveQuoteDecay with base/quote roles swapped:
//
//	baseDecay       = externalBase - internalBase
//	Omega           = internalBase / internalQuote
//	maxQuote        = baseDecay / Omega
//	quote           = min(quoteDesired, maxQuote)
//	baseDecayChange = quote * Omega
func AddQuoteToResolveBaseDecay(
	quoteDesired, quoteMin, externalBase, lpSupply decimalx.Decimal,
	internal InternalBalances,
) (SingleEntryResult, InternalBalances, error) {
	if err := validateNonNegative(quoteDesired); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := validateNonNegative(quoteMin); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := validateReserve(internal.BaseTokenReserveQty); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := validateReserve(internal.QuoteTokenReserveQty); err != nil {
		return SingleEntryResult{}, internal, err
	}

	baseDecay := externalBase.Sub(internal.BaseTokenReserveQty)

	omega, err := internal.BaseTokenReserveQty.Div(internal.QuoteTokenReserveQty)
	if err != nil {
		return SingleEntryResult{}, internal, err
	}
	if omega.IsZero() {
		return SingleEntryResult{}, internal, ErrInsufficientLiquidity
	}

	maxQuote, err := baseDecay.Div(omega)
	if err != nil {
		return SingleEntryResult{}, internal, err
	}
	if quoteMin.GreaterThanOrEqual(maxQuote) {
		return SingleEntryResult{}, internal, ErrInsufficientDecay
	}

	quote := quoteDesired
	if quote.GreaterThan(maxQuote) {
		quote = maxQuote
	}

	baseDecayChange := quote.Mul(omega)
	if baseDecayChange.LessThanOrEqual(decimalx.Zero()) {
		return SingleEntryResult{}, internal, ErrInsufficientChangeInDecay
	}
	if baseDecay.LessThanOrEqual(decimalx.Zero()) {
		return SingleEntryResult{}, internal, ErrNoQuoteDecay
	}

	lpIssued, err := gammaLiquidity(quote, internal.QuoteTokenReserveQty, baseDecayChange, baseDecay, lpSupply)
	if err != nil {
		return SingleEntryResult{}, internal, err
	}

	updated := internal
	updated.BaseTokenReserveQty = internal.BaseTokenReserveQty.Add(baseDecayChange)
	updated.QuoteTokenReserveQty = internal.QuoteTokenReserveQty.Add(quote)

	return SingleEntryResult{
		SingleTokenQty:    quote,
		LiquidityTokenQty: lpIssued,
	}, updated, nil
}

// gammaLiquidity computes the LP tokens issued to a single-asset decay
// resolver, given the decay-closing deposit tuple (deltaA, aPrime,
// deltaBChange, bDecay):
//
//	gamma = (deltaA / aPrime / 2) * (deltaBChange / bDecay)
//	deltaLP = lpSupply * gamma / (1 - gamma)   (ROUND_DOWN 0dp)
//
// The /2 reflects that a single-asset provider only supplies one side of
// what would otherwise be a paired contribution: they are entitled to
// half-weight LP credit per unit of decay closed.
func gammaLiquidity(deltaA, aPrime, deltaBChange, bDecay, lpSupply decimalx.Decimal) (decimalx.Decimal, error) {
	halfShare, err := deltaA.Div(aPrime)
	if err != nil {
		return decimalx.Decimal{}, err
	}
	halfShare, err = halfShare.Div(decimalx.New(2))
	if err != nil {
		return decimalx.Decimal{}, err
	}

	decayFraction, err := deltaBChange.Div(bDecay)
	if err != nil {
		return decimalx.Decimal{}, err
	}

	gamma := halfShare.Mul(decayFraction)

	denominator := decimalx.One().Sub(gamma)
	if denominator.IsZero() {
		return decimalx.Decimal{}, decimalx.ErrDivisionByZero
	}

	lp, err := lpSupply.Mul(gamma).DivRound(denominator, 0, decimalx.RoundDown)
	if err != nil {
		return decimalx.Decimal{}, err
	}
	return lp, nil
}
