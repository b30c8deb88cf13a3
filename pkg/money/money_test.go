package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVAT(t *testing.T) {
	tests := []struct {
		supply KRW
		want   KRW
	}{
		{2000000, 200000},
		{999, 99},
		{9, 0},
		{0, 0},
		{10, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.supply.VAT())
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2,200,000", KRW(2200000).Format())
	assert.Equal(t, "999", KRW(999).Format())
	assert.Equal(t, "1,000", KRW(1000).Format())
	assert.Equal(t, "0", KRW(0).Format())
	assert.Equal(t, "-1,234,567", KRW(-1234567).Format())
}

func TestMarshalJSONAsString(t *testing.T) {
	data, err := json.Marshal(KRW(2750000))
	require.NoError(t, err)
	assert.Equal(t, `"2750000"`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	var m KRW
	require.NoError(t, json.Unmarshal([]byte(`"1500000"`), &m))
	assert.Equal(t, KRW(1500000), m)

	// Plain numbers are accepted too.
	require.NoError(t, json.Unmarshal([]byte(`42`), &m))
	assert.Equal(t, KRW(42), m)

	require.NoError(t, json.Unmarshal([]byte(`""`), &m))
	assert.Equal(t, KRW(0), m)

	assert.Error(t, json.Unmarshal([]byte(`"12.5"`), &m))
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
}

func TestScan(t *testing.T) {
	var m KRW
	require.NoError(t, m.Scan(int64(77000)))
	assert.Equal(t, KRW(77000), m)

	require.NoError(t, m.Scan([]byte("88000")))
	assert.Equal(t, KRW(88000), m)

	require.NoError(t, m.Scan(nil))
	assert.Equal(t, KRW(0), m)
}
