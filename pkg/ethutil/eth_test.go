package ethutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_IsHexAddress(t *testing.T) {
	require.True(t, IsHexAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F"))
	require.False(t, IsHexAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976"))
	require.False(t, IsHexAddress("71C7656EC7ab88b098defB751B7401B5f6d8976F"))
	require.False(t, IsHexAddress(""))
}

func Test_IsNumericString(t *testing.T) {
	require.True(t, IsNumericString("21000"))
	require.True(t, IsNumericString("0"))
	require.False(t, IsNumericString("0x5208"))
	require.False(t, IsNumericString("-1"))
	require.False(t, IsNumericString("1.5"))
	require.False(t, IsNumericString(""))
}

func Test_IsHexData(t *testing.T) {
	require.True(t, IsHexData("0x"))
	require.True(t, IsHexData("0xdeadbeef"))
	require.False(t, IsHexData("deadbeef"))
	require.False(t, IsHexData("0xgg"))
}

func Test_VerifyTxHash(t *testing.T) {
	encoded := "0x01020304"
	hash := Keccak256Hex([]byte{0x01, 0x02, 0x03, 0x04})
	require.NoError(t, VerifyTxHash(encoded, hash))

	// Case differences in the hex digits do not matter.
	require.NoError(t, VerifyTxHash(encoded, "0x"+strings.ToUpper(hash[2:])))

	require.Error(t, VerifyTxHash(encoded, "0x0000000000000000000000000000000000000000000000000000000000000000"))
	require.Error(t, VerifyTxHash("not-hex", hash))
}

func Test_Keccak256Hex_KnownVector(t *testing.T) {
	// keccak256 of the empty input.
	require.Equal(t,
		"0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		Keccak256Hex(nil))
}
