package memberships

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndDateFor(t *testing.T) {
	start := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	end, err := endDateFor("6m", start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), end)

	end, err = endDateFor("1y", start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, time.March, 15, 0, 0, 0, 0, time.UTC), end)

	end, err = endDateFor("2y", start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2028, time.March, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestEndDateForInvalidDuration(t *testing.T) {
	_, err := endDateFor("3m", time.Now())
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = endDateFor("", time.Now())
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
