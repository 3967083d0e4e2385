package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashSaltsPerCall(t *testing.T) {
	first, err := Hash("letmein", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := Hash("letmein", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify(first, "letmein"))
	assert.True(t, Verify(second, "letmein"))
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	hash, err := Hash("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, Verify(hash, "wrong horse"))
	assert.False(t, Verify("not a bcrypt hash", "correct horse"))
}

func TestHashCostIsTunable(t *testing.T) {
	hash, err := Hash("letmein", 6)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestHashFallsBackToDefaultCost(t *testing.T) {
	hash, err := Hash("letmein", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
	assert.True(t, Verify(hash, "letmein"))
}
