package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateKey(t *testing.T) {
	k, err := NewDateKey(2025, time.March, 10)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", k.String())

	_, err = NewDateKey(2025, time.February, 30)
	assert.ErrorIs(t, err, ErrInvalidDateKey)

	_, err = NewDateKey(0, time.January, 1)
	assert.ErrorIs(t, err, ErrInvalidDateKey)

	// leap day
	k, err = NewDateKey(2024, time.February, 29)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", k.String())

	_, err = NewDateKey(2025, time.February, 29)
	assert.ErrorIs(t, err, ErrInvalidDateKey)
}

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"2025-03-10", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"2025-3-10", false},
		{"20250310", false},
		{"", false},
		{"2025-03-10T00:00:00", false},
	}
	for _, tt := range tests {
		k, err := ParseDateKey(tt.in)
		if tt.valid {
			assert.NoError(t, err, tt.in)
			assert.Equal(t, tt.in, k.String())
		} else {
			assert.ErrorIs(t, err, ErrInvalidDateKey, tt.in)
		}
	}
}

func TestDateKeyOrdering(t *testing.T) {
	// lexical order on keys is calendar order
	a, _ := NewDateKey(2025, time.January, 9)
	b, _ := NewDateKey(2025, time.January, 10)
	c, _ := NewDateKey(2025, time.February, 1)
	assert.True(t, a < b)
	assert.True(t, b < c)
}

func TestDateKeyTime(t *testing.T) {
	k, _ := NewDateKey(2025, time.August, 25)
	tm := k.Time()
	assert.Equal(t, 2025, tm.Year())
	assert.Equal(t, time.August, tm.Month())
	assert.Equal(t, 25, tm.Day())
}
