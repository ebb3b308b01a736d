package payledger

import (
	"math/rand/v2"
	"testing"
)

// Both back-ends must agree on unquoted input, so the row grammar tests run
// against each of them.
var rowParsers = map[string]RowParser{
	"scan": ScanParser{},
	"csv":  CSVParser{},
}

func TestRowParser_HappyPath(t *testing.T) {
	opts := DefaultParseOptions()
	for name, parser := range rowParsers {
		t.Run(name, func(t *testing.T) {
			res := parser.ParseRow(opts, "deposit,1,10,50")
			if res.Status != RowParsed {
				t.Fatalf("status = %v, want RowParsed", res.Status)
			}
			want := Transaction{Type: TxDeposit, Client: 1, Tx: 10, Amount: mustAmount(t, 50, 0)}
			if res.Tx.Type != want.Type || res.Tx.Client != want.Client || res.Tx.Tx != want.Tx || !res.Tx.Amount.Equal(want.Amount) {
				t.Errorf("tx = %+v, want %+v", res.Tx, want)
			}

			res = parser.ParseRow(opts, "withdrawal,2,20,30.5")
			if res.Status != RowParsed || res.Tx.Amount.String() != "30.5000" {
				t.Errorf("withdrawal: %+v", res)
			}

			// A trailing empty amount field is fine for dispute.
			res = parser.ParseRow(opts, "dispute,3,30,")
			if res.Status != RowParsed || res.Tx.Type != TxDispute {
				t.Errorf("dispute: %+v", res)
			}

			// So is no amount field at all.
			res = parser.ParseRow(opts, "resolve,3,30")
			if res.Status != RowParsed || res.Tx.Type != TxResolve {
				t.Errorf("resolve: %+v", res)
			}
		})
	}
}

func TestRowParser_MissingField(t *testing.T) {
	opts := DefaultParseOptions()
	rows := []string{
		"deposit,1,10",    // no amount for a type that needs one
		"deposit,1,10,",   // empty amount
		"deposit,,10,50",  // empty client
		"withdrawal,1,,5", // empty tx
		",1,2,3",          // empty type
	}
	for name, parser := range rowParsers {
		t.Run(name, func(t *testing.T) {
			for _, row := range rows {
				if res := parser.ParseRow(opts, row); res.Status != RowMissingField {
					t.Errorf("%q: status = %v, want RowMissingField", row, res.Status)
				}
			}
		})
	}
}

func TestRowParser_ExcessFields(t *testing.T) {
	opts := DefaultParseOptions()
	for name, parser := range rowParsers {
		t.Run(name, func(t *testing.T) {
			res := parser.ParseRow(opts, "dispute,1,42,999")
			if res.Status != RowExcessFields {
				t.Fatalf("status = %v, want RowExcessFields", res.Status)
			}
			// The best-effort record is usable under an Allow policy.
			if res.Tx.Type != TxDispute || res.Tx.Client != 1 || res.Tx.Tx != 42 {
				t.Errorf("best-effort tx = %+v", res.Tx)
			}
		})
	}
}

func TestRowParser_Garbage(t *testing.T) {
	opts := DefaultParseOptions()
	rows := []string{
		"foobar,1,2,3",      // unknown type
		"deposit,1,2,30xxx", // trailing garbage on the amount
		"deposit,1x,2,30",   // garbage in the client id
		"deposit,70000,2,3", // client id out of 16-bit range
		"deposit,1,2,-5",    // negative amount on the wire
		"deposit,1,2,.5",    // fraction without integer digits
		"deposit,1,2,5.",    // dot without fraction digits
	}
	for name, parser := range rowParsers {
		t.Run(name, func(t *testing.T) {
			for _, row := range rows {
				if res := parser.ParseRow(opts, row); res.Status != RowFailed {
					t.Errorf("%q: status = %v, want RowFailed", row, res.Status)
				}
			}
		})
	}
}

func TestRowParser_Spaces(t *testing.T) {
	opts := DefaultParseOptions()
	for name, parser := range rowParsers {
		t.Run(name, func(t *testing.T) {
			res := parser.ParseRow(opts, "deposit ,   42 ,  99 ,   1000")
			if res.Status != RowParsed {
				t.Fatalf("status = %v, want RowParsed", res.Status)
			}
			if res.Tx.Client != 42 || res.Tx.Tx != 99 || res.Tx.Amount.String() != "1000" {
				t.Errorf("tx = %+v", res.Tx)
			}
		})
	}

	strict := opts
	strict.KeepSpaces = true
	for name, parser := range rowParsers {
		t.Run(name+" keep spaces", func(t *testing.T) {
			if res := parser.ParseRow(strict, "deposit, 42,99,1000"); res.Status != RowFailed {
				t.Errorf("padded client with KeepSpaces: status = %v, want RowFailed", res.Status)
			}
		})
	}
}

func TestRowParser_Header(t *testing.T) {
	opts := DefaultParseOptions()
	headers := []string{
		"type,client,tx,amount",
		"type, client, tx, amount",
		"type,client,tx",
	}
	notHeaders := []string{
		"deposit,1,2,3",
		"client,type,tx,amount",
		"",
	}
	for name, parser := range rowParsers {
		t.Run(name, func(t *testing.T) {
			for _, line := range headers {
				if !parser.ParseHeader(opts, line) {
					t.Errorf("%q should be a header", line)
				}
			}
			for _, line := range notHeaders {
				if parser.ParseHeader(opts, line) {
					t.Errorf("%q should not be a header", line)
				}
			}
		})
	}
}

func TestParseAmount_Truncation(t *testing.T) {
	opts := DefaultParseOptions()
	a, err := parseUnsignedAmount(opts, "1.123456")
	if err != nil {
		t.Fatal(err)
	}
	// Only the first 4 fraction digits are kept, never rounded.
	if got := a.String(); got != "1.1234" {
		t.Errorf("amount = %s, want 1.1234", got)
	}

	a, err = parseUnsignedAmount(opts, "12345.99999")
	if err != nil {
		t.Fatal(err)
	}
	if got := a.String(); got != "12345.9999" {
		t.Errorf("amount = %s, want 12345.9999", got)
	}
}

// Short fractions are taken as-is: ".1" is one fractional unit, not one
// tenth.
func TestParseAmount_ShortFraction(t *testing.T) {
	opts := DefaultParseOptions()
	testCases := []struct {
		in   string
		want string
	}{
		{"0.1", "0.0001"},
		{"0.001", "0.0001"},
		{"0.12", "0.0012"},
		{"3.7", "3.0007"},
		{"1.5000", "1.5000"},
	}
	for _, tc := range testCases {
		a, err := parseUnsignedAmount(opts, tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := a.String(); got != tc.want {
			t.Errorf("parse %q = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount_DigitLimit(t *testing.T) {
	opts := DefaultParseOptions()
	opts.MaxIntDigits = 5

	if _, err := parseUnsignedAmount(opts, "12345"); err != nil {
		t.Errorf("5 digits within limit: %v", err)
	}
	if _, err := parseUnsignedAmount(opts, "123456"); err == nil {
		t.Error("6 digits should exceed the limit")
	}

	// A generous limit admits numbers far beyond any machine word.
	opts.MaxIntDigits = 50
	wide := "99999999999999999999999999999999999999999999999999"
	a, err := parseUnsignedAmount(opts, wide)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.String(); got != wide {
		t.Errorf("amount = %s, want %s", got, wide)
	}
}

func TestParseAmount_Signed(t *testing.T) {
	opts := DefaultParseOptions()
	testCases := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"-456", "-456"},
		{"123.7890", "123.7890"},
		{"-456.0123", "-456.0123"},
		{"+7.1000", "7.1000"},
	}
	for _, tc := range testCases {
		s, err := parseSignedAmount(opts, tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := s.String(); got != tc.want {
			t.Errorf("parse %q = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := parseUnsignedAmount(opts, "-456"); err == nil {
		t.Error("unsigned parse should reject a leading minus")
	}
}

// A rendered transaction parses back to an equal record, whichever back-end
// reads it.
func TestTransaction_RoundTrip(t *testing.T) {
	opts := DefaultParseOptions()
	rng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 100; i++ {
		tx := RandomTransaction(rng)
		line := tx.String()
		for name, parser := range rowParsers {
			res := parser.ParseRow(opts, line)
			if res.Status != RowParsed {
				t.Fatalf("%s: %q: status = %v", name, line, res.Status)
			}
			if res.Tx.Type != tx.Type || res.Tx.Client != tx.Client || res.Tx.Tx != tx.Tx || !res.Tx.Amount.Equal(tx.Amount) {
				t.Fatalf("%s: round trip %q -> %+v", name, line, res.Tx)
			}
		}
	}
}
