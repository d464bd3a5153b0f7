package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, ok := ParseDate("2021-07-01")
		require.True(t, ok)
		assert.Equal(t, time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, ok := ParseDate("2024-10-10T10:10:10Z")
		require.True(t, ok)
		assert.Equal(t, "2024-10-10T10:10:10Z", got.UTC().Format(time.RFC3339))
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "01/07/2021", "yesterday"} {
			_, ok := ParseDate(s)
			assert.False(t, ok, s)
		}
	})
}

func TestParseDateDefault(t *testing.T) {
	def := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, def, ParseDateDefault("", def))
	assert.Equal(t, def.AddDate(0, 0, 1), ParseDateDefault("2021-07-02", def))
}
