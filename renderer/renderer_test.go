package renderer

import (
	"strings"
	"testing"

	"github.com/veyra/payledger"
)

func deposit(t *testing.T, sheet *payledger.BalanceSheet, client uint16, integer uint64) {
	t.Helper()
	a, err := payledger.NewAmount(integer, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := sheet.Apply(client, payledger.Effect{Amount: a, Available: payledger.DeltaIncrease}); err != nil {
		t.Fatal(err)
	}
}

func TestBalanceSheetMarkdown(t *testing.T) {
	sheet := payledger.NewBalanceSheet()
	deposit(t, sheet, 1, 100)
	deposit(t, sheet, 2, 200)
	a, err := payledger.NewAmount(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := sheet.Apply(2, payledger.Effect{Amount: a, Locks: true}); err != nil {
		t.Fatal(err)
	}
	sheet.ComputeTotals()

	got := BalanceSheetMarkdown(sheet)

	for _, want := range []string{
		"# Balance Sheet",
		"2 accounts, 1 locked.",
		"## Accounts",
		"## Totals",
		"100",
		"200",
		"300",
		"locked",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestBalanceSheetMarkdown_Empty(t *testing.T) {
	sheet := payledger.NewBalanceSheet()
	sheet.ComputeTotals()

	got := BalanceSheetMarkdown(sheet)
	if !strings.Contains(got, "0 accounts, 0 locked.") {
		t.Errorf("report:\n%s", got)
	}
	if !strings.Contains(got, "No account saw any activity.") {
		t.Errorf("report:\n%s", got)
	}
}
