package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EstimateStatus represents the lifecycle state of an estimate.
// Documents move pending -> sent -> approved | rejected.
type EstimateStatus int

const (
	EstimateStatusPending  EstimateStatus = 0
	EstimateStatusSent     EstimateStatus = 1
	EstimateStatusApproved EstimateStatus = 2
	EstimateStatusRejected EstimateStatus = 3
)

func (s EstimateStatus) String() string {
	return [...]string{"pending", "sent", "approved", "rejected"}[s]
}

// IsValid reports whether s is one of the defined statuses.
func (s EstimateStatus) IsValid() bool {
	return s >= EstimateStatusPending && s <= EstimateStatusRejected
}

// CanTransitionTo reports whether moving from s to next is a legal
// document-state transition.
func (s EstimateStatus) CanTransitionTo(next EstimateStatus) bool {
	switch s {
	case EstimateStatusPending:
		return next == EstimateStatusSent
	case EstimateStatusSent:
		return next == EstimateStatusApproved || next == EstimateStatusRejected
	default:
		return false
	}
}

// ParseEstimateStatus parses the wire representation of a status.
func ParseEstimateStatus(str string) (EstimateStatus, bool) {
	switch str {
	case "pending":
		return EstimateStatusPending, true
	case "sent":
		return EstimateStatusSent, true
	case "approved":
		return EstimateStatusApproved, true
	case "rejected":
		return EstimateStatusRejected, true
	}
	return EstimateStatusPending, false
}

func (s EstimateStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EstimateStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = EstimateStatus(i)
		return nil
	}
	if parsed, ok := ParseEstimateStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s EstimateStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *EstimateStatus) Scan(value interface{}) error {
	if value == nil {
		*s = EstimateStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = EstimateStatus(v)
	case int:
		*s = EstimateStatus(v)
	}
	return nil
}
