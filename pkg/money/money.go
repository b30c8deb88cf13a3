package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// KRW is an amount of Korean won. The won has no minor unit in this
// domain, so all arithmetic stays in int64 — never binary floating
// point, which would drift on VAT computation.
//
// Amounts cross the API boundary as decimal strings to stay safe in
// clients whose number type cannot hold large integers exactly.
type KRW int64

// VAT returns the value-added tax for a supply value: a flat 10%,
// floored. Integer division floors for the non-negative amounts this
// domain deals in.
func (m KRW) VAT() KRW {
	return m / 10
}

// String returns the plain decimal representation, e.g. "2200000".
func (m KRW) String() string {
	return strconv.FormatInt(int64(m), 10)
}

// Format returns the amount with thousands separators, e.g. "2,200,000".
func (m KRW) Format() string {
	s := strconv.FormatInt(int64(m), 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// MarshalJSON serializes the amount as a decimal string.
func (m KRW) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a decimal string or a JSON number.
func (m *KRW) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n int64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid money value %s", string(data))
		}
		*m = KRW(n)
		return nil
	}
	if s == "" {
		*m = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid money value %q", s)
	}
	*m = KRW(n)
	return nil
}

// Value stores the amount as a plain integer.
func (m KRW) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan reads the amount back from an integer, string or byte column.
func (m *KRW) Scan(value interface{}) error {
	if value == nil {
		*m = 0
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = KRW(v)
	case int:
		*m = KRW(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return err
		}
		*m = KRW(n)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*m = KRW(n)
	default:
		return fmt.Errorf("cannot scan %T into KRW", value)
	}
	return nil
}
