package protocol

import "errors"

// Error kinds a WAKE driver can abort with. Strings are bit-exact with the
// original source's error messages so tests can match on them the same way.
var (
	ErrBalanceLength             = errors.New("balances not correct length")
	ErrInvalidLength             = errors.New("Invalid length")
	ErrBalanceBelowMin           = errors.New("one or more balances are smaller than minimum_balance")
	ErrRangeProofBelowMin        = errors.New("minimum balance requirement was not met")
	ErrInvalidNonces             = errors.New("Invalid nonces")
	ErrInvalidVk                 = errors.New("Invalid VK was send")
	ErrWrongRoundNumber          = errors.New("Incorrect round number N")
	ErrSignatureVerificationFail = errors.New("Verification of signature failed")
)
