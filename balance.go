package payledger

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrAccountLocked reports an attempt to mutate a locked account. The journal
// refuses to emit effects for locked accounts, so hitting it means the run is
// corrupt and must stop.
var ErrAccountLocked = errors.New("account is locked")

// AccountBalance is the running balance of one client.
//
// Total is derived, not maintained: it is only meaningful after the sheet's
// ComputeTotals has run, once, at the end of the input.
type AccountBalance struct {
	Client    uint16
	Available SignedAmount
	Held      SignedAmount
	Total     SignedAmount
	Locked    bool
}

// Apply mutates the balance per the effect. Locked is monotonic: once set it
// never clears and the account must never be touched again.
func (b *AccountBalance) Apply(e Effect) error {
	if b.Locked {
		return fmt.Errorf("client %d: %w", b.Client, ErrAccountLocked)
	}
	amount := e.Amount.Signed()
	b.Available = applyDelta(b.Available, e.Available, amount)
	b.Held = applyDelta(b.Held, e.Held, amount)
	b.Locked = b.Locked || e.Locks
	return nil
}

func applyDelta(cur SignedAmount, d Delta, amount SignedAmount) SignedAmount {
	switch d {
	case DeltaIncrease:
		return cur.Add(amount)
	case DeltaDecrease:
		return cur.Sub(amount)
	}
	return cur
}

// BalanceSheet holds one slot per possible client id. The 16-bit id space
// makes a dense table cheaper than hashing: one fixed allocation per run,
// regardless of how many clients actually appear.
type BalanceSheet struct {
	accounts []*AccountBalance
}

// NewBalanceSheet creates a sheet covering the whole client id space.
func NewBalanceSheet() *BalanceSheet {
	return &BalanceSheet{accounts: make([]*AccountBalance, math.MaxUint16+1)}
}

// Get returns the client's balance, or nil when no effect ever touched it.
func (s *BalanceSheet) Get(client uint16) *AccountBalance {
	return s.accounts[client]
}

// Apply routes the effect to the client's balance, creating the balance on
// first use. Accounts that never receive an effect are never created.
func (s *BalanceSheet) Apply(client uint16, e Effect) error {
	b := s.accounts[client]
	if b == nil {
		b = &AccountBalance{Client: client}
		s.accounts[client] = b
	}
	return b.Apply(e)
}

// ComputeTotals derives total = available + held for every active account.
// Call it exactly once, after the whole input has been consumed; totals read
// before that are stale.
func (s *BalanceSheet) ComputeTotals() {
	for _, b := range s.accounts {
		if b != nil {
			b.Total = b.Available.Add(b.Held)
		}
	}
}

// All iterates the active accounts in ascending client order.
func (s *BalanceSheet) All() iter.Seq[*AccountBalance] {
	return func(yield func(*AccountBalance) bool) {
		for _, b := range s.accounts {
			if b != nil && !yield(b) {
				return
			}
		}
	}
}
