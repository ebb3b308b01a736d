// Package renderer turns a finalized balance sheet into a markdown report
// for human consumption. The CSV projection in the root package stays the
// machine-readable output.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/veyra/payledger"
)

// BalanceSheetMarkdown renders the sheet as a markdown document: a short
// summary, the per-account table and the grand totals.
func BalanceSheetMarkdown(sheet *payledger.BalanceSheet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balance Sheet")

	var rows [][]string
	var accounts, locked int
	var available, held, total payledger.SignedAmount
	for b := range sheet.All() {
		accounts++
		if b.Locked {
			locked++
		}
		available = available.Add(b.Available)
		held = held.Add(b.Held)
		total = total.Add(b.Total)
		rows = append(rows, []string{
			strconv.FormatUint(uint64(b.Client), 10),
			b.Available.String(),
			b.Held.String(),
			b.Total.String(),
			lockedMark(b.Locked),
		})
	}

	doc.PlainText(fmt.Sprintf("%d accounts, %d locked.", accounts, locked))

	doc.H2("Accounts")
	if len(rows) == 0 {
		doc.PlainText("No account saw any activity.")
	} else {
		doc.Table(md.TableSet{
			Header: []string{"Client", "Available", "Held", "Total", "Locked"},
			Rows:   rows,
		})
	}

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"Available", "Held", "Total"},
		Rows: [][]string{
			{available.String(), held.String(), total.String()},
		},
	})

	return doc.String()
}

func lockedMark(locked bool) string {
	if locked {
		return "locked"
	}
	return ""
}
