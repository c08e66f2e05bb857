package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	for _, id := range IDs() {
		got, err := ParseID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	got, err := ParseID(" Exposure ")
	require.NoError(t, err)
	assert.Equal(t, Exposure, got)

	_, err = ParseID("focus")
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestIDString_Unknown(t *testing.T) {
	assert.Equal(t, "property(99)", ID(99).String())
}

func TestOutcome(t *testing.T) {
	assert.False(t, NotHandled.Handled())
	assert.True(t, Failure.Handled())
	assert.True(t, Success.Handled())
	assert.Equal(t, NotHandled, Result{}.Outcome, "zero Result must not claim the property")
}

func TestRangeContains(t *testing.T) {
	r := Range{Outcome: Success, Min: 16, Max: 500}
	assert.True(t, r.Contains(16))
	assert.True(t, r.Contains(500))
	assert.False(t, r.Contains(15.9))
	assert.False(t, r.Contains(501))
}
