package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"token-tool/infrastructure/utils"
)

func TestSplitIDList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"commas", "10, 30", []string{"10", "30"}},
		{"newlines", "1234567890, 9988776655\n1122334455", []string{"1234567890", "9988776655", "1122334455"}},
		{"blank lines dropped", "10,\n\n ,20", []string{"10", "20"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.SplitIDList(tt.raw))
		})
	}
}

func TestFormatEpoch(t *testing.T) {
	assert.Empty(t, utils.FormatEpoch(0, "UTC"))
	assert.Equal(t, "2023-11-14 22:13:20 UTC", utils.FormatEpoch(1700000000, "UTC"))
}

func TestFormatLocalUnknownZoneFallsBackToUTC(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01 12:00:00 UTC", utils.FormatLocal(ts, "Not/AZone"))
}

func TestFormatLocalZeroTime(t *testing.T) {
	assert.Empty(t, utils.FormatLocal(time.Time{}, "UTC"))
}
