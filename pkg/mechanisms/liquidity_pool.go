// Package mechanisms adapts pkg/curve's elastic AMM math to a venue-facing
// interface: identity (Mechanism, Venue) plus the three pool operations a
// caller previewing a trade or a deposit needs. A mechanism never holds
// reserve state; every call takes the caller's current on-chain read as a
// parameter and returns computed results.
package mechanisms

import (
	"context"

	"github.com/elasticamm/ammcore/pkg/curve"
	"github.com/elasticamm/ammcore/pkg/decimalx"
)

// MechanismType identifies the shape of pricing curve a mechanism
// implements, distinct from the venue it trades on (two venues can both
// run an ElasticLiquidityPool).
type MechanismType string

const (
	// MechanismTypeElasticLiquidityPool is a constant-product pool whose
	// base token may rebase, requiring decay-aware pricing and LP issuance
	// (see pkg/curve and ElasticPool).
	MechanismTypeElasticLiquidityPool MechanismType = "elastic_liquidity_pool"
)

// MarketMechanism identifies a pricing mechanism and the venue it trades
// on. LiquidityPool embeds it; a future derivative or order-book mechanism
// would do the same without touching this interface.
type MarketMechanism interface {
	// Mechanism returns the type of market mechanism this implements.
	Mechanism() MechanismType

	// Venue returns an identifier for where this mechanism exists, e.g.
	// "elastic-amm-mainnet". May be empty if venue identification is not
	// relevant to the caller.
	Venue() string
}

// LiquidityPool represents AMM-style liquidity provision for an elastic
// pair: a base token that may rebase, traded against a fixed-supply quote
// token. ElasticPool is the sole implementation; the interface exists so a
// caller can preview trades and deposits without depending on pkg/curve
// directly.
//
// Contract:
//   - Calculate must return pool state for given parameters without
//     modifying pool state.
//   - AddLiquidity must return a PoolPosition whose InternalAfter reflects
//     any decay resolved during the deposit.
//   - RemoveLiquidity returns minimums only, suitable for passing on-chain
//     as baseMin/quoteMin.
//
// Error Conditions:
//   - Invalid token amounts (negative, zero when required)
//   - Insufficient liquidity for operations
//   - Decay-resolving minimum exceeds the maximum addressable decay
//
// Thread Safety: pkg/curve is pure, so implementations built only from it
// are safe for concurrent use without extra synchronization.
type LiquidityPool interface {
	MarketMechanism

	// Calculate computes the current state of a liquidity pool given
	// parameters. This is a pure function that does not modify pool state.
	Calculate(ctx context.Context, params PoolParams) (PoolState, error)

	// AddLiquidity simulates adding liquidity to the pool, accounting for
	// any decay between external and internal base reserves.
	AddLiquidity(ctx context.Context, params AddLiquidityParams) (PoolPosition, error)

	// RemoveLiquidity simulates removing liquidity from the pool, returning
	// the base/quote minimums a redeemer would receive.
	RemoveLiquidity(ctx context.Context, params RemoveLiquidityParams) (curve.TokenAmounts, error)
}

// PoolParams carries the external and internal reserve state Calculate
// needs to derive spot price and decay status.
type PoolParams struct {
	// ExternalBaseQty is the real on-chain base token balance held by the
	// exchange contract.
	ExternalBaseQty decimalx.Decimal

	// ExternalQuoteQty is the real on-chain quote token balance held by
	// the exchange contract.
	ExternalQuoteQty decimalx.Decimal

	// Internal is the exchange's virtual reserve book defining the price
	// curve.
	Internal curve.InternalBalances

	// FeeBP is the swap fee charged to the input side, in basis points.
	FeeBP curve.BasisPoints
}

// PoolState is the computed, read-only state of a pool at the given
// PoolParams.
type PoolState struct {
	// SpotPrice is the internal quote-per-base ratio (quote units per base
	// unit), derived from internal reserves, not external ones.
	SpotPrice decimalx.Decimal

	// DecayPresent reports whether rebalancing is required before a plain
	// double-asset liquidity add would be accepted without distortion.
	DecayPresent bool
}

// AddLiquidityParams carries a liquidity provider's desired deposit and
// slippage tolerance, together with the reserve state the deposit is
// evaluated against.
type AddLiquidityParams struct {
	ExternalBaseQty  decimalx.Decimal
	ExternalQuoteQty decimalx.Decimal
	BaseDesired      decimalx.Decimal
	QuoteDesired     decimalx.Decimal
	BaseMin          decimalx.Decimal
	QuoteMin         decimalx.Decimal
	LPSupply         decimalx.Decimal
	Internal         curve.InternalBalances
}

// RemoveLiquidityParams carries a redemption request and slippage
// tolerance against the reserve state it is evaluated over.
type RemoveLiquidityParams struct {
	LPToRedeem       decimalx.Decimal
	LPSupply         decimalx.Decimal
	ExternalBaseQty  decimalx.Decimal
	ExternalQuoteQty decimalx.Decimal
	SlippagePercent  decimalx.Decimal
}

// PoolPosition is the outcome of a simulated AddLiquidity call.
type PoolPosition struct {
	// PoolID identifies the pool this position belongs to.
	PoolID string

	// LiquidityTokenQty is the LP tokens this deposit would mint,
	// including any share credited for closing decay.
	LiquidityTokenQty decimalx.Decimal

	// TokensDeposited are the actual base/quote amounts this deposit would
	// consume, which may differ from the caller's desired amounts (e.g.
	// clamped to the maximum addressable decay).
	TokensDeposited curve.TokenAmounts

	// InternalAfter is the internal balances as they would stand after
	// this deposit, including any decay resolved and kLast refreshed.
	InternalAfter curve.InternalBalances
}
