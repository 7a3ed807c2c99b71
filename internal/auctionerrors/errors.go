package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrEventNotFound  = errors.New("event not found")
	ErrLotNotFound    = errors.New("lot not found")
	ErrPlayerNotFound = errors.New("player not found")
)

// business logic errors
var (
	ErrInvalidRuleSet    = errors.New("invalid rule set")
	ErrInvalidTransition = errors.New("invalid lot transition")
	ErrLotNotOpen        = errors.New("lot not open")
	ErrInvalidBid        = errors.New("invalid bid")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrNoBidToAccept     = errors.New("no bid to accept")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrCannotUndoBid     = errors.New("cannot undo bid")
)
