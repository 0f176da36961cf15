package mechanisms

import (
	"context"
	"testing"

	"github.com/elasticamm/ammcore/pkg/curve"
	"github.com/elasticamm/ammcore/pkg/decimalx"
	"github.com/elasticamm/ammcore/pkg/token"
	"github.com/ethereum/go-ethereum/common"
)

func testPair(t *testing.T) token.Pair {
	t.Helper()
	base := token.MustNewToken(1, common.HexToAddress("0x1111111111111111111111111111111111111111"), 9, "AMPL", token.Rebasing)
	quote := token.MustNewToken(1, common.HexToAddress("0x2222222222222222222222222222222222222222"), 18, "WETH", token.Fixed)
	pair, err := token.NewPair(base, quote)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return pair
}

func dec(v string) decimalx.Decimal { return decimalx.MustFromString(v) }

func TestElasticPoolIdentity(t *testing.T) {
	pool := NewElasticPool("amplx-weth", "elastic-amm-mainnet", testPair(t))
	if pool.Mechanism() != MechanismTypeElasticLiquidityPool {
		t.Errorf("Mechanism() = %s, want %s", pool.Mechanism(), MechanismTypeElasticLiquidityPool)
	}
	if pool.Venue() != "elastic-amm-mainnet" {
		t.Errorf("Venue() = %s, want elastic-amm-mainnet", pool.Venue())
	}
}

func TestElasticPoolCalculate(t *testing.T) {
	pool := NewElasticPool("amplx-weth", "elastic-amm-mainnet", testPair(t))
	internal := curve.InternalBalances{
		BaseTokenReserveQty:  dec("10000"),
		QuoteTokenReserveQty: dec("50000"),
		KLast:                dec("500000000"),
	}

	t.Run("no decay", func(t *testing.T) {
		state, err := pool.Calculate(context.Background(), PoolParams{
			ExternalBaseQty:  dec("10000"),
			ExternalQuoteQty: dec("50000"),
			Internal:         internal,
			FeeBP:            30,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.DecayPresent {
			t.Error("matching external/internal base should not register decay")
		}
	})

	t.Run("decay present", func(t *testing.T) {
		state, err := pool.Calculate(context.Background(), PoolParams{
			ExternalBaseQty:  dec("9000"),
			ExternalQuoteQty: dec("50000"),
			Internal:         internal,
			FeeBP:            30,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !state.DecayPresent {
			t.Error("large base divergence should register as decay")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := pool.Calculate(ctx, PoolParams{Internal: internal}); err == nil {
			t.Error("expected an error from a cancelled context")
		}
	})
}

func TestElasticPoolAddAndRemoveLiquidity(t *testing.T) {
	pool := NewElasticPool("amplx-weth", "elastic-amm-mainnet", testPair(t))
	internal := curve.InternalBalances{
		BaseTokenReserveQty:  dec("10000"),
		QuoteTokenReserveQty: dec("50000"),
		KLast:                dec("500000000"),
	}

	position, err := pool.AddLiquidity(context.Background(), AddLiquidityParams{
		ExternalBaseQty:  dec("10000"),
		ExternalQuoteQty: dec("50000"),
		BaseDesired:      dec("1000"),
		QuoteDesired:     dec("5000"),
		BaseMin:          dec("1"),
		QuoteMin:         dec("1"),
		LPSupply:         dec("22360"),
		Internal:         internal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if position.LiquidityTokenQty.String() != "2236" {
		t.Errorf("LP issued = %s, want 2236", position.LiquidityTokenQty)
	}

	amounts, err := pool.RemoveLiquidity(context.Background(), RemoveLiquidityParams{
		LPToRedeem:       position.LiquidityTokenQty,
		LPSupply:         dec("22360").Add(position.LiquidityTokenQty),
		ExternalBaseQty:  position.InternalAfter.BaseTokenReserveQty,
		ExternalQuoteQty: position.InternalAfter.QuoteTokenReserveQty,
		SlippagePercent:  dec("0"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amounts.BaseTokenQty.IsNegative() || amounts.QuoteTokenQty.IsNegative() {
		t.Errorf("redeemed amounts should be non-negative, got %+v", amounts)
	}
}

func TestElasticPoolQuote(t *testing.T) {
	pool := NewElasticPool("amplx-weth", "elastic-amm-mainnet", testPair(t))
	internal := curve.InternalBalances{
		BaseTokenReserveQty:  dec("10000"),
		QuoteTokenReserveQty: dec("50000"),
		KLast:                dec("500000000"),
	}

	out, err := pool.Quote(context.Background(), dec("100"), decimalx.Zero(), true, dec("10000"), internal, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsPositive() {
		t.Errorf("expected a positive quote output, got %s", out)
	}

	t.Run("declared minimum above actual output is rejected", func(t *testing.T) {
		if _, err := pool.Quote(context.Background(), dec("100"), out.Add(dec("1")), true, dec("10000"), internal, 30); err != curve.ErrInsufficientQuoteTokenQty {
			t.Errorf("expected ErrInsufficientQuoteTokenQty, got %v", err)
		}
	})
}
