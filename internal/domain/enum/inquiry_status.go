package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InquiryStatus represents the status of a customer inquiry
type InquiryStatus int

const (
	InquiryStatusPending  InquiryStatus = 0
	InquiryStatusAnswered InquiryStatus = 1
	InquiryStatusClosed   InquiryStatus = 2
)

func (s InquiryStatus) String() string {
	return [...]string{"pending", "answered", "closed"}[s]
}

// ParseInquiryStatus parses the wire representation of a status.
func ParseInquiryStatus(str string) (InquiryStatus, bool) {
	switch str {
	case "pending":
		return InquiryStatusPending, true
	case "answered":
		return InquiryStatusAnswered, true
	case "closed":
		return InquiryStatusClosed, true
	}
	return InquiryStatusPending, false
}

func (s InquiryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InquiryStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InquiryStatus(i)
		return nil
	}
	if parsed, ok := ParseInquiryStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s InquiryStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InquiryStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InquiryStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InquiryStatus(v)
	case int:
		*s = InquiryStatus(v)
	}
	return nil
}
