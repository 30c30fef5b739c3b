package wallet

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func Test_localSigner_Address(t *testing.T) {
	signer, err := NewLocalSigner(testKey)
	require.NoError(t, err)
	require.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", signer.Address())

	_, err = NewLocalSigner("not-a-key")
	require.Error(t, err)
}

func Test_localSigner_SignHash(t *testing.T) {
	signer, err := NewLocalSigner(testKey)
	require.NoError(t, err)

	digest := crypto.Keccak256([]byte("payload"))
	signature, err := signer.SignHash(hexutil.Encode(digest))
	require.NoError(t, err)

	// 65 byte signature, recoverable to the signer's key.
	raw, err := hexutil.Decode(signature)
	require.NoError(t, err)
	require.Len(t, raw, 65)

	pub, err := crypto.SigToPub(digest, raw)
	require.NoError(t, err)
	require.Equal(t, signer.Address(), crypto.PubkeyToAddress(*pub).Hex())
}

func Test_localSigner_SignHash_RejectsBadDigest(t *testing.T) {
	signer, err := NewLocalSigner(testKey)
	require.NoError(t, err)

	_, err = signer.SignHash("0x1234")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "32 bytes"))

	_, err = signer.SignHash("zz")
	require.Error(t, err)
}
