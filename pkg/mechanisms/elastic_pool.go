package mechanisms

import (
	"context"

	"github.com/elasticamm/ammcore/pkg/curve"
	"github.com/elasticamm/ammcore/pkg/decimalx"
	"github.com/elasticamm/ammcore/pkg/token"
)

// ElasticPool adapts pkg/curve's decay-aware constant-product math to the
// LiquidityPool interface. It holds no reserve state of its own: every
// method takes the caller's current on-chain reads as parameters and
// returns computed results, matching pkg/curve's pure-function contract.
type ElasticPool struct {
	poolID string
	venue  string
	pair   token.Pair
}

// NewElasticPool constructs an ElasticPool identified by poolID and venue,
// trading the given token pair. base may be a rebasing token; quote is
// assumed fixed-supply.
func NewElasticPool(poolID, venue string, pair token.Pair) *ElasticPool {
	return &ElasticPool{poolID: poolID, venue: venue, pair: pair}
}

// Mechanism identifies this as an elastic liquidity pool.
func (p *ElasticPool) Mechanism() MechanismType {
	return MechanismTypeElasticLiquidityPool
}

// Venue returns the configured venue identifier.
func (p *ElasticPool) Venue() string {
	return p.venue
}

// Pair returns the base/quote tokens this pool trades.
func (p *ElasticPool) Pair() token.Pair {
	return p.pair
}

// Calculate derives spot price and decay status from the given reserve
// snapshot. Spot price is the internal quote-per-base ratio (internal quote
// reserve / internal base reserve), not the external one, since the
// internal balances define the price curve.
func (p *ElasticPool) Calculate(ctx context.Context, params PoolParams) (PoolState, error) {
	if err := ctx.Err(); err != nil {
		return PoolState{}, err
	}

	rate, err := curve.CalculateExchangeRate(params.Internal.QuoteTokenReserveQty, params.Internal.BaseTokenReserveQty)
	if err != nil {
		return PoolState{}, err
	}

	decayPresent, err := curve.IsSufficientDecayPresent(params.ExternalBaseQty, params.Internal)
	if err != nil {
		return PoolState{}, err
	}

	return PoolState{
		SpotPrice:    rate,
		DecayPresent: decayPresent,
	}, nil
}

// AddLiquidity runs the full add-liquidity orchestrator (decay resolution,
// pair entry, DAO fee) against the caller-supplied reserve state.
func (p *ElasticPool) AddLiquidity(ctx context.Context, params AddLiquidityParams) (PoolPosition, error) {
	if err := ctx.Err(); err != nil {
		return PoolPosition{}, err
	}

	result, updatedInternal, err := curve.AddLiquidity(
		params.ExternalBaseQty, params.ExternalQuoteQty,
		params.BaseDesired, params.QuoteDesired,
		params.BaseMin, params.QuoteMin,
		params.LPSupply,
		params.Internal,
	)
	if err != nil {
		return PoolPosition{}, err
	}

	return PoolPosition{
		PoolID:            p.poolID,
		LiquidityTokenQty: result.LiquidityTokenQty,
		TokensDeposited: curve.TokenAmounts{
			BaseTokenQty:  result.BaseTokenQty,
			QuoteTokenQty: result.QuoteTokenQty,
		},
		InternalAfter: updatedInternal,
	}, nil
}

// RemoveLiquidity computes the pro-rata, slippage-adjusted redemption
// amounts for an LP token burn.
func (p *ElasticPool) RemoveLiquidity(ctx context.Context, params RemoveLiquidityParams) (curve.TokenAmounts, error) {
	if err := ctx.Err(); err != nil {
		return curve.TokenAmounts{}, err
	}

	return curve.RemoveLiquidity(
		params.LPToRedeem, params.LPSupply,
		params.ExternalBaseQty, params.ExternalQuoteQty,
		params.SlippagePercent,
	)
}

// Quote previews a swap through this pool without mutating any state,
// returning the output quantity for inQty of the given side. inIsBase
// selects which side is supplied: true swaps base-in/quote-out (no decay
// rescaling is defined for this direction); false swaps quote-in/base-out,
// handled by pkg/curve's decay-aware formula. outMin is the caller's
// declared minimum acceptable output.
func (p *ElasticPool) Quote(ctx context.Context, inQty, outMin decimalx.Decimal, inIsBase bool, externalBase decimalx.Decimal, internal curve.InternalBalances, feeBP curve.BasisPoints) (decimalx.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimalx.Decimal{}, err
	}
	if inIsBase {
		return curve.CalculateQuoteOutput(inQty, outMin, internal, feeBP)
	}
	return curve.CalculateBaseOutput(inQty, outMin, externalBase, internal, feeBP)
}

var _ LiquidityPool = (*ElasticPool)(nil)
