package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CustomerStatus represents the status of a customer record
type CustomerStatus int

const (
	CustomerStatusPending  CustomerStatus = 0
	CustomerStatusActive   CustomerStatus = 1
	CustomerStatusInactive CustomerStatus = 2
)

func (s CustomerStatus) String() string {
	return [...]string{"pending", "active", "inactive"}[s]
}

// ParseCustomerStatus parses the wire representation of a status.
// The legacy aliases "processing" and "closed" are accepted.
func ParseCustomerStatus(str string) (CustomerStatus, bool) {
	switch str {
	case "pending":
		return CustomerStatusPending, true
	case "active", "processing":
		return CustomerStatusActive, true
	case "inactive", "closed":
		return CustomerStatusInactive, true
	}
	return CustomerStatusPending, false
}

func (s CustomerStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CustomerStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CustomerStatus(i)
		return nil
	}
	if parsed, ok := ParseCustomerStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s CustomerStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *CustomerStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CustomerStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = CustomerStatus(v)
	case int:
		*s = CustomerStatus(v)
	}
	return nil
}
