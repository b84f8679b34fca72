package localization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetrack-service/internal/models"
)

func TestConvertToUserTimeKeepsInstant(t *testing.T) {
	user := &models.User{Timezone: "America/New_York"}
	instant := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)

	got, err := ConvertToUserTime(instant, user)
	require.NoError(t, err)

	// Same instant, different wall clock: 23:30 UTC is 18:30 EST.
	assert.True(t, got.Equal(instant))
	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 1, got.Day())
}

func TestConvertToUserTimeNoTimezoneConfigured(t *testing.T) {
	instant := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	got, err := ConvertToUserTime(instant, &models.User{})
	require.NoError(t, err)
	assert.Equal(t, instant, got)

	got, err = ConvertToUserTime(instant, nil)
	require.NoError(t, err)
	assert.Equal(t, instant, got)
}

func TestConvertToUserTimeUnknownZone(t *testing.T) {
	user := &models.User{Timezone: "Mars/Olympus_Mons"}

	_, err := ConvertToUserTime(time.Now(), user)
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestConvertToUserTimeRoundTrip(t *testing.T) {
	user := &models.User{Timezone: "Asia/Tokyo"}
	instant := time.Date(2024, 11, 3, 5, 45, 0, 0, time.UTC)

	local, err := ConvertToUserTime(instant, user)
	require.NoError(t, err)
	assert.True(t, local.UTC().Equal(instant))
}

func TestUserNow(t *testing.T) {
	user := &models.User{Timezone: "Europe/Berlin"}

	before := time.Now()
	got, err := UserNow(user)
	require.NoError(t, err)
	after := time.Now()

	assert.False(t, got.Before(before.Add(-time.Second)))
	assert.False(t, got.After(after.Add(time.Second)))
	assert.Equal(t, "Europe/Berlin", got.Location().String())
}
