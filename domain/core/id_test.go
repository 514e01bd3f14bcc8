package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 1000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		require.False(t, id.IsEmpty(), "generated empty ID at iteration %d", i)
		require.False(t, ids[id], "generated duplicate ID: %s", id)
		ids[id] = true
	}
	assert.Len(t, ids, numIDs)
}

func TestParseRunID(t *testing.T) {
	id := NewRunID()
	parsed, err := ParseRunID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseRunID("  ")
	assert.Error(t, err)

	_, err = ParseRunID("not-a-uuid")
	assert.Error(t, err)
}

func TestErrorHelpers(t *testing.T) {
	err := NewSheetNotFoundError("ab.xlsx", "Control Group")
	assert.True(t, errors.Is(err, ErrSheetNotFound))
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsDataError(err))

	err = NewInsufficientDataError("shapiro", 2, 3)
	assert.True(t, IsDataError(err))
	assert.Contains(t, err.Error(), "got 2")
}
