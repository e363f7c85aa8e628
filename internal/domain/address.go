package domain

// Address represents an ethereum address in EIP-55 checksummed form.
// This is a minimal domain type that holds an already-validated address.
// Syntax and checksum validation are delegated to the AddressValidator port
// (implemented in adapters).
//
// Design Note: We avoid duplicating go-ethereum's address parsing and
// checksum logic (hex syntax, Keccak-based EIP-55 casing) by moving that to
// an adapter. The domain only models the concept of a validated address.
type Address struct {
	hex string
}

// NewAddressFromChecksummed creates an Address from an already-checksummed
// hex string. This is used by the AddressValidator adapter after validation.
// The value must not be empty.
func NewAddressFromChecksummed(hex string) Address {
	return Address{hex: hex}
}

// String returns the checksummed 0x-prefixed hex form.
func (a Address) String() string {
	return a.hex
}

// IsZero reports whether the address is the zero value (never validated).
func (a Address) IsZero() bool {
	return a.hex == ""
}

// Equals checks if two addresses are equal (checksummed forms compared
// byte for byte; both sides come from the same validator, so casing agrees)
func (a Address) Equals(other Address) bool {
	return a.hex == other.hex
}
