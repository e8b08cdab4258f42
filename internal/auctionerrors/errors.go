package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrTeamNotFound  = errors.New("team not found")
	ErrDuplicateID   = errors.New("id already exists")
)

// Validation errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidBid    = errors.New("invalid bid")
	ErrBidBelowMin   = errors.New("bid below asset minimum")
	ErrBidOverBudget = errors.New("bid exceeds team budget")
	ErrAuctionClosed = errors.New("auction is not running")
)

// State conflict errors
var (
	ErrAlreadyRunning = errors.New("auction already running")
	ErrAlreadyStopped = errors.New("auction already stopped")
	ErrRunningLocked  = errors.New("operation not allowed while auction is running")
	ErrNeedsReset     = errors.New("round must be reset before starting")
)
