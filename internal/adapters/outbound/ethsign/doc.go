// Package ethsign implements the AddressValidator and ApprovalSigner ports
// using go-ethereum primitives.
//
// The validator applies go-ethereum's hex-address syntax rules plus the
// EIP-55 checksum policy (all-lowercase and all-uppercase accepted,
// mixed-case must match the checksum casing exactly).
//
// The signer holds the process's approver key, loaded once at startup, and
// produces EIP-191 personal-message signatures in the ethereum V={27,28}
// convention so they are recoverable by standard tooling.
package ethsign
