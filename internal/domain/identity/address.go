package identity

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
)

// AnonymousPrincipalHex is the raw principal of an unauthenticated caller.
const AnonymousPrincipalHex = "04"

var ErrInvalidPrincipal = errors.New("invalid principal")

const accountDomainSeparator = "\x0Aaccount-id"

// AddressFromPrincipalHex derives the ledger display address for a principal
// given as a hex string: a big-endian CRC32 of the SHA-224 account hash,
// prepended to the hash itself, hex-encoded. The default (all-zero)
// subaccount is used. Pure derivation, no store access.
func AddressFromPrincipalHex(principalHex string) (string, error) {
	raw, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(principalHex)))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPrincipal, principalHex)
	}
	if len(raw) == 0 || len(raw) > 29 {
		return "", fmt.Errorf("%w: principal must be 1..29 bytes", ErrInvalidPrincipal)
	}

	h := sha256.New224()
	h.Write([]byte(accountDomainSeparator))
	h.Write(raw)
	var subaccount [32]byte
	h.Write(subaccount[:])
	sum := h.Sum(nil)

	var checksum [4]byte
	binary.BigEndian.PutUint32(checksum[:], crc32.ChecksumIEEE(sum))

	return hex.EncodeToString(checksum[:]) + hex.EncodeToString(sum), nil
}
