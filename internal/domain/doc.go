// Package domain contains the domain model for gateway signer verification.
//
// This package is the CORE of the hexagonal architecture - it defines value
// objects, the approval message contract, and domain errors with ZERO
// dependencies on external frameworks, SDKs, or infrastructure.
//
// Hexagonal Architecture Boundaries:
//   - Domain NEVER imports from: internal/adapters, internal/ports, external SDKs
//   - Domain ONLY imports from: standard library, other domain types
//   - Domain does NOT: perform I/O, call external APIs, depend on frameworks
//
// Address syntax/checksum validation and signing are delegated to adapter
// ports (defined in internal/ports); the domain only models the concepts.
//
// Files and types
// -----------------------
//   - address.go
//   - Address: value object holding an EIP-55 checksummed ethereum address.
//     Validation is delegated to AddressValidator adapters.
//
//   - gateway.go
//   - Identifier normalization and the well-known declaration URL scheme,
//     plus GatewayDeclaration, the remote document shape.
//
//   - approval.go
//   - BuildApprovalMessage: the byte-stable statement the approver signs.
//   - ApprovalResult: the unit returned to callers and written to logs.
//   - IndexRecord: one audit-log entry for a verification event.
//
//   - errors.go
//   - Sentinel errors for the verification failure taxonomy.
package domain
