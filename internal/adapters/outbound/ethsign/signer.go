package ethsign

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sufield/signet/internal/domain"
)

// Signer holds the approver key pair and signs approval messages.
// Implements ports.ApprovalSigner. Safe for concurrent use: the key material
// is read-only after construction and is never logged or returned.
type Signer struct {
	key  *ecdsa.PrivateKey
	addr domain.Address
}

// NewSigner loads the approver key from its 0x-hex encoding.
//
// Error Contract:
//   - Returns domain.ErrSigningUnavailable if the key is empty or not a valid
//     secp256k1 private key. Callers treat this as a fatal startup error.
func NewSigner(hexKey string) (*Signer, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: no private key configured", domain.ErrSigningUnavailable)
	}

	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		// err carries no key material, only the parse failure reason
		return nil, fmt.Errorf("%w: %v", domain.ErrSigningUnavailable, err)
	}

	addr := crypto.PubkeyToAddress(key.PublicKey)
	return &Signer{
		key:  key,
		addr: domain.NewAddressFromChecksummed(addr.Hex()),
	}, nil
}

// Address returns the approver's checksummed address.
func (s *Signer) Address() domain.Address {
	return s.addr
}

// SignMessage signs message per EIP-191 (personal_sign) and returns the
// 65-byte signature as 0x-hex with V in {27, 28}.
func (s *Signer) SignMessage(message string) (string, error) {
	sig, err := crypto.Sign(MessageDigest(message), s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSigningUnavailable, err)
	}
	sig[64] += 27 // recovery id -> ethereum V convention
	return hexutil.Encode(sig), nil
}

// MessageDigest returns the EIP-191 digest a personal-message signature
// covers: keccak256("\x19Ethereum Signed Message:\n" + len(message) + message).
// Exported so verifiers can recompute the signed hash.
func MessageDigest(message string) []byte {
	return crypto.Keccak256([]byte(fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)))
}
