package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateStatusTransitions(t *testing.T) {
	tests := []struct {
		from EstimateStatus
		to   EstimateStatus
		ok   bool
	}{
		{EstimateStatusPending, EstimateStatusSent, true},
		{EstimateStatusPending, EstimateStatusApproved, false},
		{EstimateStatusPending, EstimateStatusRejected, false},
		{EstimateStatusSent, EstimateStatusApproved, true},
		{EstimateStatusSent, EstimateStatusRejected, true},
		{EstimateStatusSent, EstimateStatusPending, false},
		{EstimateStatusApproved, EstimateStatusRejected, false},
		{EstimateStatusRejected, EstimateStatusSent, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestEstimateStatusJSON(t *testing.T) {
	data, err := json.Marshal(EstimateStatusSent)
	require.NoError(t, err)
	assert.Equal(t, `"sent"`, string(data))

	var s EstimateStatus
	require.NoError(t, json.Unmarshal([]byte(`"approved"`), &s))
	assert.Equal(t, EstimateStatusApproved, s)
}

func TestParseCustomerStatusAliases(t *testing.T) {
	// Legacy clients still send the old status names.
	s, ok := ParseCustomerStatus("processing")
	assert.True(t, ok)
	assert.Equal(t, CustomerStatusActive, s)

	s, ok = ParseCustomerStatus("closed")
	assert.True(t, ok)
	assert.Equal(t, CustomerStatusInactive, s)

	_, ok = ParseCustomerStatus("unknown")
	assert.False(t, ok)
}
