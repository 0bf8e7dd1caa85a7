package domain

import (
	"math/big"
	"strings"
)

type Table string

const (
	TableAuctionRequests    Table = "auction_requests"
	TableRegisteredAuctions Table = "registered_auctions"
	TableAuctions           Table = "auctions"
	TableBids               Table = "bids"
	TableAuctionEvents      Table = "auction_events"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// WeiAmount is a decimal wei value kept as string so mongo documents stay
// lossless for 256-bit amounts.
type WeiAmount string

const ZeroWei = WeiAmount("0")

func WeiFromBig(v *big.Int) WeiAmount {
	if v == nil {
		return ZeroWei
	}
	return WeiAmount(v.String())
}

func (w WeiAmount) Big() (*big.Int, bool) {
	if len(w) == 0 {
		return new(big.Int), true
	}
	return new(big.Int).SetString(string(w), 10)
}

func (w WeiAmount) IsZero() bool {
	v, ok := w.Big()
	return ok && v.Sign() == 0
}

// Cmp returns -1, 0 or 1. Malformed values compare as zero.
func (w WeiAmount) Cmp(o WeiAmount) int {
	a, ok := w.Big()
	if !ok {
		a = new(big.Int)
	}
	b, ok := o.Big()
	if !ok {
		b = new(big.Int)
	}
	return a.Cmp(b)
}
