package curve

import "testing"

func TestCalculateDaoLPFee(t *testing.T) {
	t.Run("no growth means no fee", func(t *testing.T) {
		internal := InternalBalances{BaseTokenReserveQty: d("10000"), QuoteTokenReserveQty: d("50000"), KLast: d("500000000")}
		fee, err := CalculateDaoLPFee(internal, d("22360"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fee.IsZero() {
			t.Errorf("rootK==rootKLast should mint no fee, got %s", fee)
		}
	})

	t.Run("growth mints a fee using the preserved constant", func(t *testing.T) {
		// rootK = sqrt(10000*55000) > rootKLast = sqrt(500000000)
		internal := InternalBalances{BaseTokenReserveQty: d("10000"), QuoteTokenReserveQty: d("55000"), KLast: d("500000000")}
		fee, err := CalculateDaoLPFee(internal, d("22360"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fee.IsPositive() {
			t.Errorf("k growth should mint a positive fee, got %s", fee)
		}
	})

	t.Run("never initialized pool has zero kLast", func(t *testing.T) {
		internal := InternalBalances{BaseTokenReserveQty: d("10000"), QuoteTokenReserveQty: d("50000"), KLast: d("0")}
		fee, err := CalculateDaoLPFee(internal, d("22360"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fee.IsPositive() {
			t.Errorf("rootKLast=0 should always be exceeded by a positive rootK, got fee=%s", fee)
		}
	})
}

func TestAddLiquidityInitial(t *testing.T) {
	// S2: LPsupply=0, baseDesired=10000, quoteDesired=50000.
	result, updated, err := AddLiquidity(
		d("0"), d("0"),
		d("10000"), d("50000"), d("0"), d("0"),
		d("0"),
		InternalBalances{},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BaseTokenQty.String() != "10000" || result.QuoteTokenQty.String() != "50000" {
		t.Errorf("first-liquidity should take both desired amounts as-is, got (%s, %s)", result.BaseTokenQty, result.QuoteTokenQty)
	}
	low, high := d("22360"), d("22361")
	if result.LiquidityTokenQty.LessThan(low) || result.LiquidityTokenQty.GreaterThan(high) {
		t.Errorf("LP issued = %s, want ~22360.68", result.LiquidityTokenQty)
	}
	if !result.LiquidityTokenFeeQty.IsZero() {
		t.Errorf("no DAO fee on first liquidity, got %s", result.LiquidityTokenFeeQty)
	}
	if !updated.KLast.Equal(d("10000").Mul(d("50000"))) {
		t.Errorf("kLast = %s, want 500000000", updated.KLast)
	}
}

func TestAddLiquidityPairOnly(t *testing.T) {
	// S3: external=(10000,50000), internal=(10000,50000,5e8), LPsupply=22360,
	// baseDesired=1000, quoteDesired=5000, mins=1,1.
	internal := InternalBalances{BaseTokenReserveQty: d("10000"), QuoteTokenReserveQty: d("50000"), KLast: d("500000000")}
	result, _, err := AddLiquidity(
		d("10000"), d("50000"),
		d("1000"), d("5000"), d("1"), d("1"),
		d("22360"),
		internal,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BaseTokenQty.String() != "1000" || result.QuoteTokenQty.String() != "5000" {
		t.Errorf("pair-only entry should accept both desired amounts, got (%s, %s)", result.BaseTokenQty, result.QuoteTokenQty)
	}
	if got := result.LiquidityTokenQty.String(); got != "2236" {
		t.Errorf("LP issued = %s, want 2236", got)
	}
}

func TestAddLiquidityQuoteDecayFullyAbsorbed(t *testing.T) {
	// Quote decay (externalBase < internalBase) is closed entirely by the
	// base contribution; with no quote desired, no pair-residual add runs.
	internal := InternalBalances{BaseTokenReserveQty: d("1000"), QuoteTokenReserveQty: d("5000"), KLast: d("5000000")}
	result, updated, err := AddLiquidity(
		d("950"), d("5000"),
		d("50"), d("0"), d("0"), d("0"),
		d("5000"),
		internal,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// baseDesired==maxBase exactly (50), so no residual remains: the whole
	// contribution is absorbed by decay resolution.
	if result.BaseTokenQty.String() != "50" {
		t.Errorf("base contributed = %s, want 50", result.BaseTokenQty)
	}
	if updated.BaseTokenReserveQty.String() != "1050" {
		t.Errorf("updated base reserve = %s, want 1050", updated.BaseTokenReserveQty)
	}
}

func TestAddLiquidityInsufficientMinimums(t *testing.T) {
	internal := InternalBalances{BaseTokenReserveQty: d("10000"), QuoteTokenReserveQty: d("50000"), KLast: d("500000000")}
	_, _, err := AddLiquidity(
		d("10000"), d("50000"),
		d("1000"), d("5000"), d("1"), d("5001"),
		d("22360"),
		internal,
	)
	if err != ErrInsufficientQuoteQty {
		t.Errorf("expected ErrInsufficientQuoteQty, got %v", err)
	}
}
