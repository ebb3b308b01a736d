package payledger

import "fmt"

// TxType identifies the kind of a transaction record.
type TxType string

const (
	TxDeposit    TxType = "deposit"
	TxWithdrawal TxType = "withdrawal"
	TxDispute    TxType = "dispute"
	TxResolve    TxType = "resolve"
	TxChargeback TxType = "chargeback"
)

// ParseTxType maps a row's type field to its TxType.
func ParseTxType(s string) (TxType, bool) {
	switch TxType(s) {
	case TxDeposit, TxWithdrawal, TxDispute, TxResolve, TxChargeback:
		return TxType(s), true
	}
	return "", false
}

// HasAmount reports whether rows of this type must carry an amount field.
// Disputes, resolves and chargebacks reference a prior transaction's amount
// instead of carrying their own.
func (t TxType) HasAmount() bool { return t == TxDeposit || t == TxWithdrawal }

// Transaction is one parsed input record. It is transient: the grammar
// produces it and the journal consumes it immediately.
type Transaction struct {
	Type   TxType
	Client uint16
	Tx     uint32
	Amount Amount // meaningful only when Type.HasAmount()
}

// String renders the transaction in its input row form, so a rendered
// transaction parses back to an equal value.
func (t Transaction) String() string {
	if t.Type.HasAmount() {
		return fmt.Sprintf("%s,%d,%d,%s", t.Type, t.Client, t.Tx, t.Amount)
	}
	return fmt.Sprintf("%s,%d,%d", t.Type, t.Client, t.Tx)
}
