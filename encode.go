package payledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// This file is the output side of the run: a plain field projection of the
// finalized sheet. Amount fields use the 4-digit rendering of amount.go.

// balanceColumns are the output columns, in order.
var balanceColumns = []string{"client", "available", "held", "total", "locked"}

// WriteBalanceSheet writes the final sheet as CSV: a header, then one row per
// account that saw any activity, in ascending client order.
func WriteBalanceSheet(w io.Writer, sheet *BalanceSheet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(balanceColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for b := range sheet.All() {
		record := []string{
			strconv.FormatUint(uint64(b.Client), 10),
			b.Available.String(),
			b.Held.String(),
			b.Total.String(),
			strconv.FormatBool(b.Locked),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write client %d: %w", b.Client, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeTransaction writes a transaction in its input row form, newline
// terminated. The generator uses it to produce synthetic input files.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	_, err := fmt.Fprintln(w, tx.String())
	return err
}
