package domain

import "fmt"

// BuildApprovalMessage renders the human-readable statement the approver key
// signs, binding {gateway, resolver, chain, signer}.
//
// The template is part of the external contract: third parties re-verify
// approval signatures against this exact byte sequence, so it must stay
// stable across versions. Pure function of its four inputs.
func BuildApprovalMessage(identifier, resolver string, chainID uint64, signer Address) string {
	return fmt.Sprintf(
		"Requesting Signature To Approve ENS Records Signer\n\nGateway: %s\nResolver: eip155:%d:%s\nApproved Signer: eip155:%d:%s",
		GatewayURL(identifier), chainID, resolver, chainID, signer,
	)
}

// ApprovalResult is the unit returned to callers on successful verification
// and the payload written to the audit trail consumers read.
type ApprovalResult struct {
	// Gateway is the verified gateway host, e.g. "alice.github.io".
	Gateway string `json:"gateway"`

	// Payload is the approval message the signature covers, byte for byte.
	Payload string `json:"payload"`

	// Approver is the checksummed address of this service's signing key.
	Approver string `json:"approver"`

	// ApprovedFor is the checksummed signer address the gateway declared.
	ApprovedFor string `json:"approvedFor"`

	// ApprovalSig is the 0x-hex EIP-191 signature over Payload.
	ApprovalSig string `json:"approvalSig"`
}

// IndexRecord is one audit-log entry for a verification event.
//
// Index carries the identifier's own counter value at the time of the event
// (1 for the first verification, 2 for the second, ...). Timestamp is
// milliseconds since the Unix epoch.
type IndexRecord struct {
	State     bool   `json:"state"`
	Index     uint64 `json:"index"`
	Timestamp int64  `json:"timestamp"`
}
