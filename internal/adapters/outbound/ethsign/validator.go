package ethsign

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sufield/signet/internal/domain"
)

// Validator validates candidate ethereum address strings.
// Implements ports.AddressValidator. Stateless and safe for concurrent use.
type Validator struct{}

// NewValidator creates an address validator.
func NewValidator() Validator {
	return Validator{}
}

// Validate checks syntax (0x-prefixed or bare 40 hex chars) and checksum,
// and returns the canonical EIP-55 checksummed form.
//
// Checksum policy: all-lowercase and all-uppercase hex carry no checksum and
// are accepted; mixed-case input must match the EIP-55 casing exactly.
func (Validator) Validate(candidate string) (domain.Address, error) {
	if !common.IsHexAddress(candidate) {
		return domain.Address{}, fmt.Errorf("%w: %q is not a hex address", domain.ErrInvalidAddress, candidate)
	}

	checksummed := common.HexToAddress(candidate).Hex()

	hexPart := candidate
	if strings.HasPrefix(hexPart, "0x") || strings.HasPrefix(hexPart, "0X") {
		hexPart = hexPart[2:]
	}
	mixedCase := hexPart != strings.ToLower(hexPart) && hexPart != strings.ToUpper(hexPart)
	if mixedCase && hexPart != checksummed[2:] {
		return domain.Address{}, fmt.Errorf("%w: %q fails EIP-55 checksum", domain.ErrInvalidAddress, candidate)
	}

	return domain.NewAddressFromChecksummed(checksummed), nil
}
