// Package curve implements the off-chain pricing, liquidity-issuance, and
// decay-rebalancing math of an elastic automated market maker. Every
// function here is pure: inputs are passed by value, outputs are returned
// by value, and nothing is mutated outside the return. The package performs
// no I/O, no logging, and holds no state across calls — it is safe to call
// concurrently from independent goroutines without synchronization.
//
// The pricing curve is a constant-product curve x*y=k augmented by a
// virtual reserve book ("internal balances") that can diverge from the
// real on-chain token balances after a rebase on an elastic-supply base
// token. Single- and double-asset liquidity entry reconcile that
// divergence ("decay") back into the curve.
package curve

import "github.com/elasticamm/ammcore/pkg/decimalx"

// BasisPoints is an integer in [0, 10000]; 10000 represents 100%. Used for
// swap fees and as the denominator of slippage tolerances.
type BasisPoints = decimalx.BasisPoints

// InternalBalances is the exchange's virtual view of reserves that defines
// the price curve. It may diverge from the real on-chain token balances
// (the "external" reserves) after a rebase on the base token.
type InternalBalances struct {
	// BaseTokenReserveQty is the virtual base reserve (alpha').
	BaseTokenReserveQty decimalx.Decimal
	// QuoteTokenReserveQty is the virtual quote reserve (beta').
	QuoteTokenReserveQty decimalx.Decimal
	// KLast is the product BaseTokenReserveQty * QuoteTokenReserveQty
	// observed at the last fee checkpoint. Zero only when the pool has
	// never been initialized.
	KLast decimalx.Decimal
}

// PairEntryResult is the outcome of a double-asset liquidity contribution.
type PairEntryResult struct {
	BaseTokenQty         decimalx.Decimal
	QuoteTokenQty        decimalx.Decimal
	LiquidityTokenQty    decimalx.Decimal
	LiquidityTokenFeeQty decimalx.Decimal
}

// SingleEntryResult is the outcome of a single-asset decay-resolving
// liquidity contribution.
type SingleEntryResult struct {
	SingleTokenQty    decimalx.Decimal
	LiquidityTokenQty decimalx.Decimal
}

// TokenAmounts is a pair of base/quote token quantities, used as the
// minimums returned by RemoveLiquidity.
type TokenAmounts struct {
	BaseTokenQty  decimalx.Decimal
	QuoteTokenQty decimalx.Decimal
}

// validateReserve checks a reserve value that must be positive. NaN-class
// failures are caught earlier, at decimalx's string-parse boundary (see
// decimalx.ErrNaN); by the time a Decimal reaches this package it is
// already a finite value, so this only distinguishes negative from zero.
// A zero reserve where a non-zero reserve is required surfaces as
// ErrInsufficientLiquidity rather than a generic arithmetic failure, since
// callers render that specific error as an empty-pool UI state.
func validateReserve(v decimalx.Decimal) error {
	if v.IsNegative() {
		return ErrNegativeInput
	}
	if v.IsZero() {
		return ErrInsufficientLiquidity
	}
	return nil
}

// validateNonNegative rejects negative quantities that are not reserves
// (e.g. desired deposit amounts, which may legitimately be zero).
func validateNonNegative(v decimalx.Decimal) error {
	if v.IsNegative() {
		return ErrNegativeInput
	}
	return nil
}
