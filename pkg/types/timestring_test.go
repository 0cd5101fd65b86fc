package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: "08:00"},
		{name: "evening", input: "18:00", want: "18:00"},
		{name: "minutes", input: "13:01", want: "13:01"},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "hour overflow", input: "24:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	end, err := NewTimeStringFromString("13:01")
	require.NoError(t, err)

	assert.Equal(t, 4*time.Hour+time.Minute, end.Sub(start))
	assert.True(t, end.IsAfter(start))
	assert.False(t, start.IsAfter(end))
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 13*60+1, end.Minutes())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("14:30:00")))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
