package ethutil

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

var (
	numericPattern = regexp.MustCompile(`^[0-9]+$`)
	hexDataPattern = regexp.MustCompile(`^0x[0-9a-fA-F]*$`)
)

func IsHexAddress(s string) bool {
	return common.IsHexAddress(s)
}

// IsNumericString reports whether s is a base-10 unsigned integer string, the
// shape gas and value fields must have.
func IsNumericString(s string) bool {
	return numericPattern.MatchString(s)
}

// IsHexData reports whether s is 0x-prefixed hex payload data.
func IsHexData(s string) bool {
	return hexDataPattern.MatchString(s)
}

func Keccak256Hex(data []byte) string {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	return "0x" + hex.EncodeToString(hash.Sum(nil))
}

// VerifyTxHash checks that the backend-reported transaction hash is the
// keccak256 digest of the encoded transaction. The caller signs exactly this
// digest, so any mismatch means the canonical encoding and the displayed hash
// have diverged.
func VerifyTxHash(encodedTx, txHash string) error {
	raw, err := hexutil.Decode(encodedTx)
	if err != nil {
		return fmt.Errorf("invalid encoded transaction: %w", err)
	}

	if !strings.EqualFold(Keccak256Hex(raw), txHash) {
		return fmt.Errorf("transaction hash does not match encoded transaction")
	}

	return nil
}
