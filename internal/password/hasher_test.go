package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, h.Check("hunter22", hash))
	assert.False(t, h.Check("hunter22x", hash))
	assert.False(t, h.Check("wrong", hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-secret")
	require.NoError(t, err)
	second, err := h.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Check("same-secret", first))
	assert.True(t, h.Check("same-secret", second))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	assert.False(t, h.Check("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Check("anything", ""))
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}

func TestBcryptHasher_SecretLengthLimit(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	longest := strings.Repeat("a", MaxSecretBytes)

	hash, err := h.Hash(longest)
	require.NoError(t, err)
	assert.True(t, h.Check(longest, hash))
	assert.False(t, h.Check(longest+"x", hash))

	_, err = h.Hash(longest + "x")
	assert.Error(t, err)
}
