package curve

import (
	"errors"

	"github.com/elasticamm/ammcore/pkg/decimalx"
)

// Error kinds are stable identifiers callers can match on programmatically.
// None represent a recoverable condition: each indicates either invalid
// caller input or a transient market state the caller must re-evaluate
// against a fresh on-chain read. The core performs no logging and no
// recovery; errors propagate to the caller at the point of detection.
var (
	// ErrNaN is returned when an input fails to parse as a finite number.
	// Aliased to decimalx.ErrNaN: detection happens at decimalx's
	// string-parse boundary, before a value ever reaches this package, so
	// curve re-exports the same identifier rather than declaring an
	// unreachable duplicate.
	ErrNaN = decimalx.ErrNaN

	// ErrNegativeInput is returned when a quantity input is negative.
	ErrNegativeInput = errors.New("negative_input")

	// ErrInsufficientQty is returned when tokenAQty <= 0 in calculateQty.
	ErrInsufficientQty = errors.New("insufficient_qty")

	// ErrInsufficientLiquidity is returned when a reserve value is zero
	// when a non-zero reserve is required.
	ErrInsufficientLiquidity = errors.New("insufficient_liquidity")

	// ErrInsufficientBaseTokenQty is returned when the computed base
	// output is below the user's declared minimum.
	ErrInsufficientBaseTokenQty = errors.New("insufficient_base_token_qty")

	// ErrInsufficientQuoteTokenQty is returned when the computed quote
	// output is below the user's declared minimum.
	ErrInsufficientQuoteTokenQty = errors.New("insufficient_quote_token_qty")

	// ErrInsufficientBaseQty is returned when the post-orchestration base
	// contribution is below the declared minimum.
	ErrInsufficientBaseQty = errors.New("insufficient_base_qty")

	// ErrInsufficientQuoteQty is returned when the post-orchestration
	// quote contribution is below the declared minimum.
	ErrInsufficientQuoteQty = errors.New("insufficient_quote_qty")

	// ErrInsufficientBaseQtyDesired is returned for first-liquidity with
	// baseDesired <= 0.
	ErrInsufficientBaseQtyDesired = errors.New("insufficient_base_qty_desired")

	// ErrInsufficientQuoteQtyDesired is returned for first-liquidity with
	// quoteDesired <= 0.
	ErrInsufficientQuoteQtyDesired = errors.New("insufficient_quote_qty_desired")

	// ErrInsufficientDecay is returned when a decay-resolving minimum
	// exceeds the maximum addressable decay.
	ErrInsufficientDecay = errors.New("insufficient_decay")

	// ErrInsufficientChangeInDecay is returned when a decay-closing
	// contribution yields zero opposite-side change.
	ErrInsufficientChangeInDecay = errors.New("insufficient_change_in_decay")

	// ErrNoQuoteDecay is returned when the decay computation finds no
	// decay present to resolve.
	ErrNoQuoteDecay = errors.New("no_quote_decay")

	// ErrInsufficientTokenQty is returned by quote-out calculation with
	// non-positive inputs.
	ErrInsufficientTokenQty = errors.New("insufficient_token_qty")
)
