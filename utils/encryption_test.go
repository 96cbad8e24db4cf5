package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEncryptionKey(t *testing.T) {
	t.Helper()
	key := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	t.Setenv("ENCRYPTION_KEY", key)
}

func TestCardPANRoundTrip(t *testing.T) {
	setEncryptionKey(t)

	sealed, err := EncryptCardPAN("4111111111111111")
	require.NoError(t, err)
	require.NotEmpty(t, sealed)
	assert.NotContains(t, sealed, "4111111111111111")

	pan, err := DecryptCardPAN(sealed)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", pan)
}

func TestCardPANEncryptionIsNonDeterministic(t *testing.T) {
	setEncryptionKey(t)

	first, err := EncryptCardPAN("4111111111111111")
	require.NoError(t, err)
	second, err := EncryptCardPAN("4111111111111111")
	require.NoError(t, err)

	// A fresh nonce per seal means identical pans never share ciphertext.
	assert.NotEqual(t, first, second)
}

func TestDecryptCardPANRejectsTampering(t *testing.T) {
	setEncryptionKey(t)

	sealed, err := EncryptCardPAN("4111111111111111")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01

	_, err = DecryptCardPAN(base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err)
}

func TestCardPANEmptyValues(t *testing.T) {
	setEncryptionKey(t)

	sealed, err := EncryptCardPAN("")
	require.NoError(t, err)
	assert.Empty(t, sealed)

	pan, err := DecryptCardPAN("")
	require.NoError(t, err)
	assert.Empty(t, pan)
}

func TestCardPANMissingKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")

	_, err := EncryptCardPAN("4111111111111111")
	assert.Error(t, err)
}

func TestMaskPAN(t *testing.T) {
	assert.Equal(t, "411111******1111", MaskPAN("4111111111111111"))
	assert.Equal(t, "1234", MaskPAN("1234"))
}
