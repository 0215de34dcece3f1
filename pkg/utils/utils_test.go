package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-03-15", time.UTC)
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("", time.UTC)
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("15/03/2026", time.UTC)
	assert.Error(t, err)
}

func TestEndOfDay(t *testing.T) {
	date := time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC), EndOfDay(date))
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed("42")
	require.NoError(t, err)
	require.NotNil(t, seed)
	assert.Equal(t, int64(42), *seed)

	seed, err = ParseSeed("")
	assert.NoError(t, err)
	assert.Nil(t, seed)

	_, err = ParseSeed("abc")
	assert.Error(t, err)
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 20, ParseLimit("", 20, 100))
	assert.Equal(t, 20, ParseLimit("-3", 20, 100))
	assert.Equal(t, 5, ParseLimit("5", 20, 100))
	assert.Equal(t, 100, ParseLimit("500", 20, 100))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
}
