package curve

import "testing"

func TestCalculateRequiredPair(t *testing.T) {
	internal := InternalBalances{BaseTokenReserveQty: d("10000"), QuoteTokenReserveQty: d("50000"), KLast: d("500000000")}

	t.Run("exact ratio accepts both desired amounts", func(t *testing.T) {
		// S3: baseDesired=1000, quoteDesired=5000, exactly on-ratio.
		base, quote, err := CalculateRequiredPair(d("1000"), d("5000"), d("1"), d("1"), internal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if base.String() != "1000" || quote.String() != "5000" {
			t.Errorf("got (%s, %s), want (1000, 5000)", base, quote)
		}
	})

	t.Run("excess quote desired falls back to required quote", func(t *testing.T) {
		// baseDesired=1000 requires quote=5000; quoteDesired=6000 is more than needed.
		base, quote, err := CalculateRequiredPair(d("1000"), d("6000"), d("1"), d("1"), internal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if base.String() != "1000" || quote.String() != "5000" {
			t.Errorf("got (%s, %s), want (1000, 5000)", base, quote)
		}
	})

	t.Run("insufficient quote desired falls to required base", func(t *testing.T) {
		// baseDesired=1000 requires quote=5000; quoteDesired=2000 is short, so
		// fall back to computing requiredBase for the smaller quote amount.
		base, quote, err := CalculateRequiredPair(d("1000"), d("2000"), d("1"), d("1"), internal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.String() != "2000" {
			t.Errorf("quote should equal quoteDesired=2000, got %s", quote)
		}
		// requiredBase = 2000*10000/50000 = 400
		if base.String() != "400" {
			t.Errorf("base = %s, want 400", base)
		}
	})

	t.Run("below quote minimum rejected", func(t *testing.T) {
		if _, _, err := CalculateRequiredPair(d("1000"), d("6000"), d("1"), d("5001"), internal); err != ErrInsufficientQuoteQty {
			t.Errorf("expected ErrInsufficientQuoteQty, got %v", err)
		}
	})

	t.Run("below base minimum rejected", func(t *testing.T) {
		if _, _, err := CalculateRequiredPair(d("1000"), d("2000"), d("401"), d("1"), internal); err != ErrInsufficientBaseQty {
			t.Errorf("expected ErrInsufficientBaseQty, got %v", err)
		}
	})
}

func TestCalculateQuoteTokenQtyGuardQuirk(t *testing.T) {
	// Documented quirk: the guard only rejects when BOTH base and min are
	// non-positive, not when either is. A zero base with a positive min
	// should not hit the guard, exposing the && rather than the "intended" ||.
	_, err := CalculateQuoteTokenQty(d("0"), d("5"), d("10000"), d("50000"))
	if err == ErrInsufficientTokenQty {
		t.Error("guard should not fire when quoteTokenQtyMin is positive, even with baseTokenQty==0 (preserves the && quirk)")
	}

	t.Run("both non-positive triggers the guard", func(t *testing.T) {
		if _, err := CalculateQuoteTokenQty(d("0"), d("0"), d("10000"), d("50000")); err != ErrInsufficientTokenQty {
			t.Errorf("expected ErrInsufficientTokenQty, got %v", err)
		}
	})
}

func TestCalculateLiquidityTokenQtyForDoubleAssetEntry(t *testing.T) {
	// S3: quoteContributed=5000, lpSupply=22360, externalQuote=50000 => 2236.
	lp, err := CalculateLiquidityTokenQtyForDoubleAssetEntry(d("5000"), d("22360"), d("50000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lp.String(); got != "2236" {
		t.Errorf("LP issued = %s, want 2236", got)
	}

	t.Run("ratio invariant", func(t *testing.T) {
		// deltaLP/(lpSupply+deltaLP) == quoteContributed/(externalQuote+quoteContributed)
		lhs, err := lp.Div(d("22360").Add(lp))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rhs, err := d("5000").Div(d("50000").Add(d("5000")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		diff := lhs.Sub(rhs).Abs()
		if diff.GreaterThan(d("0.001")) {
			t.Errorf("ratio invariant violated: lhs=%s rhs=%s", lhs, rhs)
		}
	})
}

func TestCalculateFirstLiquidityTokenQty(t *testing.T) {
	// S2: baseDesired=10000, quoteDesired=50000 => sqrt(5e8) ~= 22360.67
	lp, err := CalculateFirstLiquidityTokenQty(d("10000"), d("50000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	low, high := d("22360"), d("22361")
	if lp.LessThan(low) || lp.GreaterThan(high) {
		t.Errorf("first-liquidity LP = %s, want ~22360.68", lp)
	}

	t.Run("zero base desired rejected", func(t *testing.T) {
		if _, err := CalculateFirstLiquidityTokenQty(d("0"), d("50000")); err != ErrInsufficientBaseQtyDesired {
			t.Errorf("expected ErrInsufficientBaseQtyDesired, got %v", err)
		}
	})

	t.Run("zero quote desired rejected", func(t *testing.T) {
		if _, err := CalculateFirstLiquidityTokenQty(d("10000"), d("0")); err != ErrInsufficientQuoteQtyDesired {
			t.Errorf("expected ErrInsufficientQuoteQtyDesired, got %v", err)
		}
	})
}
