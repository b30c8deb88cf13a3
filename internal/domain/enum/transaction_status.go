package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionStatus represents the settlement status of a sales transaction
type TransactionStatus int

const (
	TransactionStatusPending   TransactionStatus = 0
	TransactionStatusCompleted TransactionStatus = 1
)

func (s TransactionStatus) String() string {
	return [...]string{"pending", "completed"}[s]
}

// ParseTransactionStatus parses the wire representation of a status.
func ParseTransactionStatus(str string) (TransactionStatus, bool) {
	switch str {
	case "pending":
		return TransactionStatusPending, true
	case "completed":
		return TransactionStatusCompleted, true
	}
	return TransactionStatusPending, false
}

func (s TransactionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TransactionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TransactionStatus(i)
		return nil
	}
	if parsed, ok := ParseTransactionStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s TransactionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TransactionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TransactionStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TransactionStatus(v)
	case int:
		*s = TransactionStatus(v)
	}
	return nil
}
