package service

import (
	"errors"

	"github.com/Francieverton/ACOLD-MKT/internal/state"
)

// Sentinel errors, dispatched with errors.Is in the HTTP layer. None of
// them are fatal: every failure surfaces as a dismissable notice.
var (
	// Validation failures: operation aborted, no state change.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("invalid field value")

	// Authorization failures: redirected to a safe screen.
	ErrLoginRequired   = errors.New("login required")
	ErrSellerCannotBuy = errors.New("sellers cannot buy products")

	// Availability failure.
	ErrSoldOut = errors.New("product sold out")

	// Reentrancy guard for the deferred purchase continuation.
	ErrPurchaseInFlight = errors.New("purchase already in progress")
)

// ErrNoSuchProduct is shared with the state container so errors.Is works
// across both layers.
var ErrNoSuchProduct = state.ErrNoSuchProduct

// Notice is a transient user-facing toast. Level mirrors the two toast
// kinds the UI renders.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

func successNotice(msg string) Notice { return Notice{Level: NoticeSuccess, Message: msg} }
func errorNotice(msg string) Notice   { return Notice{Level: NoticeError, Message: msg} }
