package wallet

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer is the wallet collaborator of the delegation protocol. It signs the
// exact digest the signing preparation returned, nothing else.
type Signer interface {
	Address() string
	SignHash(txHash string) (string, error)
}

type localSigner struct {
	key *ecdsa.PrivateKey
}

// NewLocalSigner creates a signer from a hex-encoded ECDSA key. It stands in
// for the external wallet extension of the web client.
func NewLocalSigner(privKeyHex string) (*localSigner, error) {
	key, err := crypto.HexToECDSA(privKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet key: %w", err)
	}

	return &localSigner{key: key}, nil
}

func (s *localSigner) Address() string {
	return crypto.PubkeyToAddress(s.key.PublicKey).Hex()
}

func (s *localSigner) SignHash(txHash string) (string, error) {
	digest, err := hexutil.Decode(txHash)
	if err != nil {
		return "", fmt.Errorf("invalid transaction hash: %w", err)
	}

	if len(digest) != 32 {
		return "", fmt.Errorf("transaction hash must be 32 bytes, got %d", len(digest))
	}

	signature, err := crypto.Sign(digest, s.key)
	if err != nil {
		return "", err
	}

	return hexutil.Encode(signature), nil
}
