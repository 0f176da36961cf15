// Package token identifies the two sides of an elastic AMM trading pair.
// It carries no pricing logic of its own — pkg/curve operates entirely on
// Decimal quantities — but gives callers a stable, comparable identity for
// "base" and "quote" so a pool can be addressed the same way the on-chain
// contract is.
package token

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ErrZeroAddress is returned when a token is constructed with the zero
// address, which never identifies a real deployed token.
var ErrZeroAddress = errors.New("token: zero address")

// Elastic marks whether a token's balances can change outside of transfers
// (a rebase). Only the base side of a pair may be Elastic in this model;
// a quote-side rebase is out of scope.
type Elastic bool

const (
	// Fixed identifies a token whose balances change only via transfers.
	Fixed Elastic = false
	// Rebasing identifies a token whose total supply (and every holder's
	// balance) can change algorithmically, producing decay against a
	// pool's internal balances.
	Rebasing Elastic = true
)

// Token identifies one side of a trading pair by on-chain address and
// decimals. It is an immutable value: two Tokens with the same address
// and chain ID are interchangeable.
type Token struct {
	chainID  uint64
	address  common.Address
	decimals uint8
	symbol   string
	elastic  Elastic
}

// NewToken constructs a Token. Returns ErrZeroAddress if address is the
// zero address.
func NewToken(chainID uint64, address common.Address, decimals uint8, symbol string, elastic Elastic) (Token, error) {
	if address == (common.Address{}) {
		return Token{}, ErrZeroAddress
	}
	return Token{
		chainID:  chainID,
		address:  address,
		decimals: decimals,
		symbol:   symbol,
		elastic:  elastic,
	}, nil
}

// MustNewToken constructs a Token, panicking on error. Only use for known-
// valid constants (test fixtures, well-known pair definitions).
func MustNewToken(chainID uint64, address common.Address, decimals uint8, symbol string, elastic Elastic) Token {
	tok, err := NewToken(chainID, address, decimals, symbol, elastic)
	if err != nil {
		panic(err)
	}
	return tok
}

// ChainID returns the EIP-155 chain ID this token is deployed on.
func (t Token) ChainID() uint64 { return t.chainID }

// Address returns the token's on-chain contract address.
func (t Token) Address() common.Address { return t.address }

// Decimals returns the token's on-chain decimal scale.
func (t Token) Decimals() uint8 { return t.decimals }

// Symbol returns the token's display symbol, if known.
func (t Token) Symbol() string { return t.symbol }

// IsElastic reports whether this token's balances can change via rebase.
func (t Token) IsElastic() bool { return bool(t.elastic) }

// Equal reports whether two Tokens identify the same deployed contract on
// the same chain.
func (t Token) Equal(other Token) bool {
	return t.chainID == other.chainID && t.address == other.address
}

// String returns a human-readable identifier, preferring the symbol when
// known.
func (t Token) String() string {
	if t.symbol != "" {
		return t.symbol
	}
	return fmt.Sprintf("%s (chain %d)", t.address.Hex(), t.chainID)
}

// Pair identifies the base and quote tokens of an elastic AMM pool. Base
// may be Rebasing; Quote is always assumed Fixed in this model since the
// decay protocol only ever resolves base-side divergence.
type Pair struct {
	Base  Token
	Quote Token
}

// ErrIdenticalTokens is returned when a Pair's base and quote resolve to
// the same on-chain token.
var ErrIdenticalTokens = errors.New("token: base and quote are identical")

// NewPair constructs a Pair, rejecting a base/quote that name the same
// token.
func NewPair(base, quote Token) (Pair, error) {
	if base.Equal(quote) {
		return Pair{}, ErrIdenticalTokens
	}
	return Pair{Base: base, Quote: quote}, nil
}
