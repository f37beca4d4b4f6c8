package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	d, err := ParseDate("25/12/2026", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 25, 0, 0, 0, 0, loc), d)

	_, err = ParseDate("2026-12-25", loc)
	assert.Error(t, err)

	_, err = ParseDate("31/02/2026", loc)
	assert.Error(t, err)

	_, err = ParseDate("", loc)
	assert.Error(t, err)
}

func TestParseTimeSlot(t *testing.T) {
	slot, err := ParseTimeSlot("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", slot)

	_, err = ParseTimeSlot("25:00")
	assert.Error(t, err)

	_, err = ParseTimeSlot("9:30")
	assert.Error(t, err)

	_, err = ParseTimeSlot("09h30")
	assert.Error(t, err)
}
