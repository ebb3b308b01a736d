package payledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// jsonObjectWriter builds a JSON object with a fixed field order, which
// encoding/json's map marshalling cannot guarantee. Its zero value is ready
// to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Field appends one name/value pair. The value goes through encoding/json.
func (w *jsonObjectWriter) Field(name string, v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("marshal field %q: %w", name, err)
		return w
	}
	if w.Len() > 0 {
		w.WriteString(",")
	}
	name, err = quoteJSON(name)
	if err != nil {
		w.err = err
		return w
	}
	w.WriteString(name)
	w.WriteString(":")
	w.Write(raw)
	return w
}

// Object returns the completed JSON object.
func (w *jsonObjectWriter) Object() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return append(append([]byte("{"), w.Bytes()...), '}'), nil
}

func quoteJSON(s string) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// WriteBalanceSheetJSON writes the final sheet as a JSON array, one object
// per account that saw any activity, in ascending client order and with the
// same field order as the CSV projection. Amounts are rendered as strings so
// no reader mangles them into floats.
func WriteBalanceSheetJSON(w io.Writer, sheet *BalanceSheet) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	for b := range sheet.All() {
		var ow jsonObjectWriter
		ow.Field("client", b.Client).
			Field("available", b.Available.String()).
			Field("held", b.Held.String()).
			Field("total", b.Total.String()).
			Field("locked", b.Locked)
		obj, err := ow.Object()
		if err != nil {
			return fmt.Errorf("client %d: %w", b.Client, err)
		}
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		if _, err := w.Write(obj); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
