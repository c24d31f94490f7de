package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c := NewCipher("test-master-key")

	blob, err := c.Encrypt("sk-live-abc123")
	require.NoError(t, err)
	assert.NotEmpty(t, blob)
	assert.NotContains(t, blob, "sk-live")

	plain, err := c.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, "sk-live-abc123", plain)
}

func TestEncryptProducesUniqueBlobs(t *testing.T) {
	c := NewCipher("test-master-key")

	a, err := c.Encrypt("same-secret")
	require.NoError(t, err)
	b, err := c.Encrypt("same-secret")
	require.NoError(t, err)

	// Fresh salt and nonce per call.
	assert.NotEqual(t, a, b)
}

func TestDecryptWrongMasterKey(t *testing.T) {
	blob, err := NewCipher("key-one").Encrypt("secret")
	require.NoError(t, err)

	_, err = NewCipher("key-two").Decrypt(blob)
	assert.Error(t, err)
}

func TestDecryptMalformedBlob(t *testing.T) {
	c := NewCipher("test-master-key")

	t.Run("not base64", func(t *testing.T) {
		_, err := c.Decrypt("%%%not-base64%%%")
		assert.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := c.Decrypt("c2hvcnQ=")
		assert.Error(t, err)
	})
}

func TestMissingMasterKey(t *testing.T) {
	c := NewCipher("")

	_, err := c.Encrypt("anything")
	assert.ErrorIs(t, err, ErrNoMasterKey)

	_, err = c.Decrypt("anything")
	assert.ErrorIs(t, err, ErrNoMasterKey)
}
