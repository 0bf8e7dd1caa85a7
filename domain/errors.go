package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	// factory admission errors
	ErrInvalidInput = errors.New("invalid request input")
	ErrNotPending   = errors.New("request is not pending")

	// bidding preconditions
	ErrAuctionExpired = errors.New("auction expired")
	ErrBelowMinimum   = errors.New("escrow below minimum bid")
	ErrNFTNotReady    = errors.New("nft not deposited")
	ErrNotStarted     = errors.New("auction not started")

	// lifecycle transition guards
	ErrStillActive     = errors.New("auction still active")
	ErrAlreadyEnded    = errors.New("auction already ended")
	ErrNotEnded        = errors.New("auction not ended")
	ErrAlreadyRevealed = errors.New("winner already revealed")
	ErrNoBids          = errors.New("auction has no bids")

	// reveal trust-boundary failures
	ErrInvalidIndex   = errors.New("invalid winner index")
	ErrInvalidProof   = errors.New("invalid decryption proof")
	ErrSignerMismatch = errors.New("proof signer not trusted")

	// claim authorization and eligibility
	ErrNotRevealed    = errors.New("winner not revealed")
	ErrNotABidder     = errors.New("caller never bid")
	ErrIsWinner       = errors.New("winner cannot claim refund")
	ErrNotWinner      = errors.New("caller is not the winner")
	ErrNotSeller      = errors.New("caller is not the seller")
	ErrAlreadyClaimed = errors.New("already claimed")
	ErrReserveNotMet  = errors.New("reserve price not met")
	ErrReserveMet     = errors.New("reserve price was met")
)
