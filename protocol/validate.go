package protocol

import "fmt"

// CheckBatchLength verifies a received batch of peer round-results has the
// expected size before a driver indexes into it by party position, the
// check the original's round_recieve runs ahead of its per-party loop.
func CheckBatchLength(want, got int) error {
	if got != want {
		return fmt.Errorf("%w expected: %d, found %d", ErrInvalidLength, want, got)
	}
	return nil
}

// ValidateBalances checks the setup-time preconditions common to every
// WAKE backend: exactly n balances, each at or above minBal. Upperbound
// membership in the valid set is checked separately by
// field.UpperboundLog, which every backend's Setup already calls while
// deriving its range-proof/MiMC bit width.
func ValidateBalances(balances []uint64, minBal uint64, n int) error {
	if len(balances) != n {
		return ErrBalanceLength
	}
	for _, b := range balances {
		if b < minBal {
			return ErrBalanceBelowMin
		}
	}
	return nil
}

// CheckRoundIdx verifies a received message claims the expected round
// number, the check every compiler-family peer-verification step runs
// before touching the attached signature.
func CheckRoundIdx(got, want int) error {
	if got != want {
		return ErrWrongRoundNumber
	}
	return nil
}

// CheckNonces verifies a received Nonces table matches the local one,
// the compiler family's session-authentication check.
func CheckNonces(received, local *Nonces) error {
	if !received.Equal(local) {
		return ErrInvalidNonces
	}
	return nil
}

// CheckVk verifies a received VkTable matches the local one, the
// optimized family's session-authentication check.
func CheckVk(received, local *VkTable) error {
	if !received.Equal(local) {
		return ErrInvalidVk
	}
	return nil
}
