package payledger

import "math/rand/v2"

// RandomTransaction produces a random well-formed transaction: any type, any
// client and tx id, and for the amount-carrying types an amount with up to 12
// integer digits. Round-trip tests and the gen subcommand feed on it.
func RandomTransaction(rng *rand.Rand) Transaction {
	types := [...]TxType{TxDeposit, TxWithdrawal, TxDispute, TxResolve, TxChargeback}
	t := types[rng.IntN(len(types))]
	tx := Transaction{
		Type:   t,
		Client: uint16(rng.UintN(1 << 16)),
		Tx:     rng.Uint32(),
	}
	if t.HasAmount() {
		// frac stays below one whole unit, so the constructor cannot fail.
		amount, _ := NewAmount(rng.Uint64N(1_000_000_000_000), uint32(rng.UintN(fracScale)))
		tx.Amount = amount
	}
	return tx
}
