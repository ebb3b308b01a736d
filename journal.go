package payledger

// entryKind is the last known lifecycle stage of a transaction.
type entryKind uint8

const (
	entryDeposited entryKind = iota
	entryWithdrawn
	entryDisputed
	entryLocked
)

// entry is the journal's record of one transaction. Only deposited and
// disputed entries retain the amount; withdrawals cannot be disputed, so
// theirs is not kept.
type entry struct {
	kind   entryKind
	amount Amount
}

// Delta says which way an effect moves a balance field. DeltaNone leaves the
// field unchanged.
type Delta uint8

const (
	DeltaNone Delta = iota
	DeltaIncrease
	DeltaDecrease
)

// Effect is the sole channel through which an accepted transaction mutates a
// balance: two optional field deltas of Amount, plus the lock flag.
type Effect struct {
	Amount    Amount
	Available Delta
	Held      Delta
	Locks     bool
}

type journalKey struct {
	client uint16
	tx     uint32
}

// Journal tracks the lifecycle stage of every accepted transaction, keyed by
// (client, tx). Entries are never deleted: history must persist for later
// disputes. Keying on the client id means a dispute naming the wrong client
// finds no entry and is rejected.
type Journal struct {
	entries map[journalKey]entry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{entries: make(map[journalKey]entry)}
}

// Record runs the transaction through the lifecycle rules against the
// client's current balance (nil when no effect ever touched that client).
// When the transaction is accepted the new entry state is committed and the
// balance effect returned. A rejected transaction leaves no trace, so its tx
// id remains usable by a later legitimate transaction.
func (j *Journal) Record(tx Transaction, balance *AccountBalance) (Effect, bool) {
	key := journalKey{client: tx.Client, tx: tx.Tx}
	var prev *entry
	if e, ok := j.entries[key]; ok {
		prev = &e
	}
	next, effect, ok := deriveEffect(prev, tx, balance)
	if !ok {
		return Effect{}, false
	}
	j.entries[key] = next
	return effect, true
}

// deriveEffect is the pure lifecycle function: current entry state (nil when
// none exists) plus record plus current balance in, new entry state plus
// effect out. The caller commits the state and applies the effect only when
// ok is true.
func deriveEffect(prev *entry, tx Transaction, balance *AccountBalance) (entry, Effect, bool) {
	if prev == nil {
		switch tx.Type {
		case TxDeposit:
			return entry{kind: entryDeposited, amount: tx.Amount},
				Effect{Amount: tx.Amount, Available: DeltaIncrease}, true
		case TxWithdrawal:
			// An absent balance holds nothing, so the withdrawal always fails.
			if balance == nil || !balance.Available.GreaterOrEqual(tx.Amount) {
				return entry{}, Effect{}, false
			}
			return entry{kind: entryWithdrawn},
				Effect{Amount: tx.Amount, Available: DeltaDecrease}, true
		}
		// Dispute/resolve/chargeback of a transaction never seen.
		return entry{}, Effect{}, false
	}

	switch {
	case prev.kind == entryDeposited && tx.Type == TxDispute:
		return entry{kind: entryDisputed, amount: prev.amount},
			Effect{Amount: prev.amount, Available: DeltaDecrease, Held: DeltaIncrease}, true
	case prev.kind == entryDisputed && tx.Type == TxResolve:
		return entry{kind: entryDeposited, amount: prev.amount},
			Effect{Amount: prev.amount, Available: DeltaIncrease, Held: DeltaDecrease}, true
	case prev.kind == entryDisputed && tx.Type == TxChargeback:
		return entry{kind: entryLocked},
			Effect{Amount: prev.amount, Held: DeltaDecrease, Locks: true}, true
	}
	// Everything else, duplicate ids included, is rejected.
	return entry{}, Effect{}, false
}
