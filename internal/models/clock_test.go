package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{in: "00:42:30", want: ClockTime{0, 42, 30}},
		{in: "23:59:59", want: ClockTime{23, 59, 59}},
		{in: "06:30:00", want: ClockTime{6, 30, 0}},
		{in: "24:00:00", wantErr: true},
		{in: "12:60:00", wantErr: true},
		{in: "12:00", wantErr: true},
		{in: "garbage", wantErr: true},
		{in: "", wantErr: true},
		{in: "12:34:5x", wantErr: true},
		{in: "12:+4:05", wantErr: true},
		{in: "1x:00:00", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseClockTime(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestClockTimeJSONRoundTrip(t *testing.T) {
	ct := ClockTime{Hour: 6, Minute: 30, Second: 5}

	b, err := json.Marshal(ct)
	require.NoError(t, err)
	assert.Equal(t, `"06:30:05"`, string(b))

	var back ClockTime
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, ct, back)

	var bad ClockTime
	assert.Error(t, json.Unmarshal([]byte(`"25:00:00"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestClockTimeScan(t *testing.T) {
	var ct ClockTime

	require.NoError(t, ct.Scan("19:00:00"))
	assert.Equal(t, ClockTime{19, 0, 0}, ct)

	require.NoError(t, ct.Scan([]byte("07:15:30")))
	assert.Equal(t, ClockTime{7, 15, 30}, ct)

	require.NoError(t, ct.Scan(time.Date(2026, 1, 2, 12, 15, 0, 0, time.UTC)))
	assert.Equal(t, ClockTime{12, 15, 0}, ct)

	assert.Error(t, ct.Scan(42))
}

func TestDateJSONAndScan(t *testing.T) {
	d, err := ParseDate("1990-04-15")
	require.NoError(t, err)
	assert.Equal(t, "1990-04-15", d.String())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-04-15"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.String(), back.String())

	assert.Error(t, json.Unmarshal([]byte(`"15/04/1990"`), &back))

	var scanned Date
	require.NoError(t, scanned.Scan(time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1990-04-15", scanned.String())
}
